package services

import (
	"context"
	"errors"
	"net/http"

	"contactform-server/internal/models"
	"contactform-server/internal/store"
	"contactform-server/internal/token"
	"contactform-server/internal/utils"
)

type AuthService struct {
	accounts store.AccountStore
	tokens   *token.Manager
}

// TokenResponse is what register and login hand back: a fresh token plus
// the public profile of the account it identifies.
type TokenResponse struct {
	Token string         `json:"token"`
	User  models.Profile `json:"user"`
}

func NewAuthService(accounts store.AccountStore, tokens *token.Manager) *AuthService {
	return &AuthService{accounts: accounts, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, username, password, role string) (*TokenResponse, error) {
	if username == "" || password == "" || role == "" {
		return nil, utils.NewAppError(http.StatusBadRequest, "Username, password, and role are required")
	}

	account := &models.Account{
		Username: username,
		Password: password,
		Role:     role,
	}
	if err := s.accounts.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, utils.NewAppError(http.StatusConflict, "Username already exists")
		}
		return nil, err
	}

	return s.tokenResponse(account)
}

// Login matches credentials by exact equality; the stored password is the
// raw registration value.
func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	if username == "" || password == "" {
		return nil, utils.NewAppError(http.StatusBadRequest, "Username and password are required")
	}

	account, err := s.accounts.AccountByUsername(ctx, username)
	if err != nil || account.Password != password {
		return nil, utils.NewAppError(http.StatusUnauthorized, "Invalid credentials")
	}

	return s.tokenResponse(account)
}

func (s *AuthService) Me(ctx context.Context, id string) (*models.Profile, error) {
	account, err := s.accounts.AccountByID(ctx, id)
	if err != nil {
		return nil, utils.NewAppError(http.StatusNotFound, "User not found")
	}

	profile := account.ToProfile()
	return &profile, nil
}

func (s *AuthService) tokenResponse(account *models.Account) (*TokenResponse, error) {
	signed, err := s.tokens.Issue(account.ID, account.Username, account.Role)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "Could not generate token")
	}

	return &TokenResponse{
		Token: signed,
		User:  account.ToProfile(),
	}, nil
}
