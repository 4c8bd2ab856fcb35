package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"escapade/pkg/utils"
)

func TestFavoriteLifecycle(t *testing.T) {
	repo := newMockFavoriteRepo()
	svc := NewFavoriteService(repo, quizTestCatalog())
	ctx := context.Background()
	account := uuid.New()

	if err := svc.AddFavorite(ctx, account, 1); err != nil {
		t.Fatalf("AddFavorite error: %v", err)
	}
	if err := svc.AddFavorite(ctx, account, 3); err != nil {
		t.Fatalf("AddFavorite error: %v", err)
	}
	// Adding twice stays idempotent.
	if err := svc.AddFavorite(ctx, account, 1); err != nil {
		t.Fatalf("repeat AddFavorite error: %v", err)
	}

	list, err := svc.ListFavorites(ctx, account)
	if err != nil {
		t.Fatalf("ListFavorites error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d favorites, want 2", len(list))
	}
	if list[0].ID != 1 || list[1].ID != 3 {
		t.Errorf("favorites order [%d %d], want [1 3]", list[0].ID, list[1].ID)
	}

	is, err := svc.IsFavorite(ctx, account, 3)
	if err != nil || !is {
		t.Errorf("IsFavorite(3) = (%v, %v), want (true, nil)", is, err)
	}

	if err := svc.RemoveFavorite(ctx, account, 3); err != nil {
		t.Fatalf("RemoveFavorite error: %v", err)
	}
	is, _ = svc.IsFavorite(ctx, account, 3)
	if is {
		t.Error("favorite still present after removal")
	}
}

func TestAddFavoriteUnknownActivity(t *testing.T) {
	svc := NewFavoriteService(newMockFavoriteRepo(), quizTestCatalog())

	err := svc.AddFavorite(context.Background(), uuid.New(), 999)
	if !errors.Is(err, utils.ErrActivityNotFound) {
		t.Errorf("err = %v, want ErrActivityNotFound", err)
	}
}

func TestListFavoritesSkipsStaleIDs(t *testing.T) {
	repo := newMockFavoriteRepo()
	account := uuid.New()
	key := favKey{account, 999}
	repo.favorites[key] = true
	repo.order = append(repo.order, key)

	svc := NewFavoriteService(repo, quizTestCatalog())
	list, err := svc.ListFavorites(context.Background(), account)
	if err != nil {
		t.Fatalf("ListFavorites error: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("got %d favorites, want 0: stale catalog ids are dropped", len(list))
	}
}

func TestFavoriteRepoFailure(t *testing.T) {
	repo := newMockFavoriteRepo()
	repo.err = errMockDB
	svc := NewFavoriteService(repo, quizTestCatalog())

	if err := svc.AddFavorite(context.Background(), uuid.New(), 1); !errors.Is(err, utils.ErrDatabaseError) {
		t.Errorf("err = %v, want ErrDatabaseError", err)
	}
}
