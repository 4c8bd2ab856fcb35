package services

import (
	"context"
	"log"

	"escapade/internal/models/db_models"
	"escapade/internal/models/request_models"
	"escapade/internal/models/response_models"
	"escapade/internal/repositories"
	"escapade/pkg/utils"
)

// defaultAvatarURL is assigned at registration until the user picks one.
const defaultAvatarURL = "https://api.dicebear.com/7.x/adventurer-neutral/svg?seed=Felix&backgroundColor=b6e3f4"

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (response_models.LoginResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (response_models.LoginResponse, error)
	UpdateProfile(ctx context.Context, userID string, request request_models.UpdateProfileRequest) (response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{accountRepo: accountRepo}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		log.Printf("Error fetching account: %v", err)
		return response_models.LoginResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}

	return response_models.LoginResponse{
		Token:   token,
		Account: toAccountResponse(account),
	}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (response_models.LoginResponse, error) {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return response_models.LoginResponse{}, utils.ErrDatabaseError
	}
	if existing != nil {
		return response_models.LoginResponse{}, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return response_models.LoginResponse{}, utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		FirstName:    request.FirstName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         "user",
		AvatarURL:    defaultAvatarURL,
		AvatarID:     "avatar1",
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return response_models.LoginResponse{}, utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(newAccount.ID, newAccount.Role)
	if err != nil {
		return response_models.LoginResponse{}, utils.ErrDatabaseError
	}

	return response_models.LoginResponse{
		Token:   token,
		Account: toAccountResponse(newAccount),
	}, nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, userID string, request request_models.UpdateProfileRequest) (response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, userID)
	if err != nil {
		return response_models.AccountResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.AccountResponse{}, utils.ErrAccountNotFound
	}

	if request.FirstName != "" {
		account.FirstName = request.FirstName
	}
	if request.AvatarURL != "" {
		account.AvatarURL = request.AvatarURL
	}
	if request.AvatarID != "" {
		account.AvatarID = request.AvatarID
	}
	if request.Interests != nil {
		account.Interests = request.Interests
	}

	if err := a.accountRepo.Update(ctx, account); err != nil {
		log.Printf("Error updating account: %v", err)
		return response_models.AccountResponse{}, utils.ErrDatabaseError
	}

	return toAccountResponse(account), nil
}

func toAccountResponse(account *db_models.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:        account.ID.String(),
		Email:     account.Email,
		FirstName: account.FirstName,
		AvatarURL: account.AvatarURL,
		AvatarID:  account.AvatarID,
		Role:      account.Role,
		Interests: account.Interests,
	}
}
