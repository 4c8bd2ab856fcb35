package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"escapade/pkg/utils"
)

func TestAddOrUpdateRatingUpserts(t *testing.T) {
	repo := newMockRatingRepo()
	svc := NewRatingService(repo, quizTestCatalog())
	ctx := context.Background()
	account := uuid.New()

	if err := svc.AddOrUpdateRating(ctx, account, 1, 4, "Bien"); err != nil {
		t.Fatalf("first rating error: %v", err)
	}
	if err := svc.AddOrUpdateRating(ctx, account, 1, 2, "Moins bien"); err != nil {
		t.Fatalf("second rating error: %v", err)
	}

	if repo.createCalls != 1 || repo.updateCalls != 1 {
		t.Errorf("create/update calls = %d/%d, want 1/1", repo.createCalls, repo.updateCalls)
	}

	stored := repo.ratings[favKey{account, 1}]
	if stored.Rating != 2 || stored.Comment != "Moins bien" {
		t.Errorf("stored rating = %d %q, want the updated values", stored.Rating, stored.Comment)
	}
}

func TestRatingStarsValidation(t *testing.T) {
	svc := NewRatingService(newMockRatingRepo(), quizTestCatalog())
	ctx := context.Background()

	for _, stars := range []int{0, -1, 6} {
		err := svc.AddOrUpdateRating(ctx, uuid.New(), 1, stars, "")
		if !errors.Is(err, utils.ErrInvalidRating) {
			t.Errorf("stars=%d: err = %v, want ErrInvalidRating", stars, err)
		}
	}
}

func TestRatingUnknownActivity(t *testing.T) {
	svc := NewRatingService(newMockRatingRepo(), quizTestCatalog())

	err := svc.AddOrUpdateRating(context.Background(), uuid.New(), 999, 3, "")
	if !errors.Is(err, utils.ErrActivityNotFound) {
		t.Errorf("err = %v, want ErrActivityNotFound", err)
	}
}

func TestRatingSummary(t *testing.T) {
	repo := newMockRatingRepo()
	svc := NewRatingService(repo, quizTestCatalog())
	ctx := context.Background()

	_ = svc.AddOrUpdateRating(ctx, uuid.New(), 1, 5, "")
	_ = svc.AddOrUpdateRating(ctx, uuid.New(), 1, 4, "")
	_ = svc.AddOrUpdateRating(ctx, uuid.New(), 2, 1, "")

	summary, err := svc.Summary(ctx, 1)
	if err != nil {
		t.Fatalf("Summary error: %v", err)
	}
	if summary.Count != 2 {
		t.Errorf("Count = %d, want 2", summary.Count)
	}
	if summary.Average != 4.5 {
		t.Errorf("Average = %v, want 4.5", summary.Average)
	}
}

func TestRatingSummaryEmpty(t *testing.T) {
	svc := NewRatingService(newMockRatingRepo(), quizTestCatalog())

	summary, err := svc.Summary(context.Background(), 1)
	if err != nil {
		t.Fatalf("Summary error: %v", err)
	}
	if summary.Average != 0 || summary.Count != 0 {
		t.Errorf("empty summary = %+v, want zeros", summary)
	}
}
