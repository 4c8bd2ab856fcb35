package services

import (
	"context"
	"errors"
	"testing"

	"escapade/internal/models/request_models"
	"escapade/pkg/utils"
)

func TestCreateAccountAndLogin(t *testing.T) {
	repo := newMockAccountRepo()
	svc := NewAccountService(repo)
	ctx := context.Background()

	created, err := svc.CreateAccount(ctx, request_models.SignUpRequest{
		Email:     "lea@example.com",
		Password:  "motdepasse",
		FirstName: "Léa",
	})
	if err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}
	if created.Token == "" {
		t.Error("no token issued on signup")
	}
	if created.Account.Role != "user" {
		t.Errorf("role = %q, want user", created.Account.Role)
	}

	stored, _ := repo.FindByEmail(ctx, "lea@example.com")
	if stored == nil {
		t.Fatal("account not stored")
	}
	if stored.PasswordHash == "motdepasse" {
		t.Error("password stored in clear")
	}
	if stored.AvatarURL == "" {
		t.Error("no default avatar assigned")
	}

	logged, err := svc.Login(ctx, request_models.LoginRequest{Email: "lea@example.com", Password: "motdepasse"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if logged.Account.FirstName != "Léa" {
		t.Errorf("FirstName = %q, want Léa", logged.Account.FirstName)
	}
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	repo := newMockAccountRepo()
	svc := NewAccountService(repo)
	ctx := context.Background()

	req := request_models.SignUpRequest{Email: "dup@example.com", Password: "secret123", FirstName: "A"}
	if _, err := svc.CreateAccount(ctx, req); err != nil {
		t.Fatalf("first CreateAccount error: %v", err)
	}

	_, err := svc.CreateAccount(ctx, req)
	if !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Errorf("err = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMockAccountRepo()
	svc := NewAccountService(repo)
	ctx := context.Background()

	_, _ = svc.CreateAccount(ctx, request_models.SignUpRequest{Email: "x@example.com", Password: "rightpass", FirstName: "X"})

	_, err := svc.Login(ctx, request_models.LoginRequest{Email: "x@example.com", Password: "wrongpass"})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAccountService(newMockAccountRepo())

	_, err := svc.Login(context.Background(), request_models.LoginRequest{Email: "nobody@example.com", Password: "p"})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	repo := newMockAccountRepo()
	svc := NewAccountService(repo)
	ctx := context.Background()

	created, _ := svc.CreateAccount(ctx, request_models.SignUpRequest{Email: "p@example.com", Password: "secret123", FirstName: "Paul"})

	updated, err := svc.UpdateProfile(ctx, created.Account.ID, request_models.UpdateProfileRequest{
		AvatarID:  "avatar7",
		Interests: []string{"randonnée", "cuisine"},
	})
	if err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}
	if updated.FirstName != "Paul" {
		t.Errorf("FirstName changed to %q on a partial update", updated.FirstName)
	}
	if updated.AvatarID != "avatar7" {
		t.Errorf("AvatarID = %q, want avatar7", updated.AvatarID)
	}
	if len(updated.Interests) != 2 {
		t.Errorf("Interests = %v, want 2 entries", updated.Interests)
	}
}

func TestUpdateProfileUnknownAccount(t *testing.T) {
	svc := NewAccountService(newMockAccountRepo())

	_, err := svc.UpdateProfile(context.Background(), "2b1f8f1e-0000-0000-0000-000000000000", request_models.UpdateProfileRequest{FirstName: "X"})
	if !errors.Is(err, utils.ErrAccountNotFound) {
		t.Errorf("err = %v, want ErrAccountNotFound", err)
	}
}

func TestLoginRepoFailure(t *testing.T) {
	repo := newMockAccountRepo()
	repo.findErr = errMockDB
	svc := NewAccountService(repo)

	_, err := svc.Login(context.Background(), request_models.LoginRequest{Email: "a@b.c", Password: "p"})
	if !errors.Is(err, utils.ErrDatabaseError) {
		t.Errorf("err = %v, want ErrDatabaseError", err)
	}
}
