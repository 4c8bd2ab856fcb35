package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"escapade/internal/models/db_models"
	"escapade/pkg/utils"
)

func TestAddReviewCarriesUserName(t *testing.T) {
	accountRepo := newMockAccountRepo()
	reviewRepo := newMockReviewRepo()
	svc := NewReviewService(reviewRepo, accountRepo, quizTestCatalog())
	ctx := context.Background()

	account := &db_models.Account{FirstName: "Nadia", Email: "n@example.com"}
	_ = accountRepo.Insert(ctx, account)

	if err := svc.AddReview(ctx, account.ID, 1, 5, "Superbe"); err != nil {
		t.Fatalf("AddReview error: %v", err)
	}

	stored := reviewRepo.reviews[favKey{account.ID, 1}]
	if stored == nil {
		t.Fatal("review not stored")
	}
	if stored.UserName != "Nadia" {
		t.Errorf("UserName = %q, want Nadia", stored.UserName)
	}
}

func TestAddReviewReplacesPrevious(t *testing.T) {
	accountRepo := newMockAccountRepo()
	reviewRepo := newMockReviewRepo()
	svc := NewReviewService(reviewRepo, accountRepo, quizTestCatalog())
	ctx := context.Background()

	account := &db_models.Account{FirstName: "Omar"}
	_ = accountRepo.Insert(ctx, account)

	_ = svc.AddReview(ctx, account.ID, 1, 2, "Bof")
	_ = svc.AddReview(ctx, account.ID, 1, 5, "Finalement très bien")

	reviews, err := svc.ListByActivity(ctx, 1)
	if err != nil {
		t.Fatalf("ListByActivity error: %v", err)
	}
	if len(reviews) != 1 {
		t.Fatalf("got %d reviews, want 1: resubmission replaces", len(reviews))
	}
	if reviews[0].Rating != 5 || reviews[0].Comment != "Finalement très bien" {
		t.Errorf("kept review = %+v, want the latest one", reviews[0])
	}
}

func TestAddReviewUnknownAccount(t *testing.T) {
	svc := NewReviewService(newMockReviewRepo(), newMockAccountRepo(), quizTestCatalog())

	err := svc.AddReview(context.Background(), uuid.New(), 1, 4, "")
	if !errors.Is(err, utils.ErrAccountNotFound) {
		t.Errorf("err = %v, want ErrAccountNotFound", err)
	}
}

func TestAddReviewValidation(t *testing.T) {
	svc := NewReviewService(newMockReviewRepo(), newMockAccountRepo(), quizTestCatalog())
	ctx := context.Background()

	if err := svc.AddReview(ctx, uuid.New(), 1, 0, ""); !errors.Is(err, utils.ErrInvalidRating) {
		t.Errorf("stars=0: err = %v, want ErrInvalidRating", err)
	}
	if err := svc.AddReview(ctx, uuid.New(), 999, 3, ""); !errors.Is(err, utils.ErrActivityNotFound) {
		t.Errorf("unknown activity: err = %v, want ErrActivityNotFound", err)
	}
}

func TestReviewAverage(t *testing.T) {
	accountRepo := newMockAccountRepo()
	reviewRepo := newMockReviewRepo()
	svc := NewReviewService(reviewRepo, accountRepo, quizTestCatalog())
	ctx := context.Background()

	for _, stars := range []int{2, 4} {
		account := &db_models.Account{FirstName: "R"}
		_ = accountRepo.Insert(ctx, account)
		_ = svc.AddReview(ctx, account.ID, 2, stars, "")
	}

	average, err := svc.AverageRating(ctx, 2)
	if err != nil {
		t.Fatalf("AverageRating error: %v", err)
	}
	if average != 3 {
		t.Errorf("average = %v, want 3", average)
	}
}
