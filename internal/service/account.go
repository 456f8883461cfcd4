package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"credtrack/internal/apperror"
	"credtrack/internal/auth"
	"credtrack/internal/model"
	"credtrack/internal/repository"
)

// CreateAccountInput carries the admin-provided fields for provisioning.
// Secret is the plaintext credential; it is hashed before it reaches the store.
type CreateAccountInput struct {
	LoginID     string     `json:"login_id"`
	Secret      string     `json:"secret"`
	DisplayName string     `json:"display_name"`
	Role        model.Role `json:"role"`
}

// LoginResult is what a successful credential check returns.
type LoginResult struct {
	Token string     `json:"token"`
	Role  model.Role `json:"role"`
	Name  string     `json:"name"`
}

// AccountService covers credential verification and admin provisioning.
type AccountService interface {
	// Login verifies a credential and issues a signed-claims token.
	Login(ctx context.Context, loginID, secret string) (*LoginResult, error)

	// Create provisions a new active account. Admin-only; the route gate
	// enforces that before this is reached.
	Create(ctx context.Context, in CreateAccountInput) (*model.Account, error)

	// ListEmployees returns the active accounts with the user role.
	ListEmployees(ctx context.Context) ([]model.Account, error)
}

type accountService struct {
	accounts repository.AccountStore
	gate     *auth.Gate
}

func NewAccountService(accounts repository.AccountStore, gate *auth.Gate) AccountService {
	return &accountService{accounts: accounts, gate: gate}
}

func (s *accountService) Login(ctx context.Context, loginID, secret string) (*LoginResult, error) {
	if loginID == "" || secret == "" {
		return nil, apperror.New(apperror.CodeValidation, "login id and secret are required")
	}

	acct, err := s.accounts.FindByLoginID(ctx, loginID)
	if err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			// Same answer as a wrong secret; the caller learns nothing about
			// which half of the credential was bad.
			return nil, apperror.New(apperror.CodeUnauthenticated, "invalid credentials")
		}
		return nil, apperror.Wrap(err, apperror.CodePersistence, "account lookup failed")
	}

	if bcrypt.CompareHashAndPassword([]byte(acct.SecretHash), []byte(secret)) != nil {
		return nil, apperror.New(apperror.CodeUnauthenticated, "invalid credentials")
	}

	token, err := s.gate.Issue(acct.ID, acct.Role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, Role: acct.Role, Name: acct.DisplayName}, nil
}

func (s *accountService) Create(ctx context.Context, in CreateAccountInput) (*model.Account, error) {
	if in.LoginID == "" || in.Secret == "" || in.DisplayName == "" {
		return nil, apperror.New(apperror.CodeValidation, "login id, secret, and display name are required")
	}
	if !in.Role.Valid() {
		return nil, apperror.New(apperror.CodeValidation, "role must be admin or user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	acct, err := s.accounts.Create(ctx, &model.Account{
		ID:          uuid.NewString(),
		LoginID:     in.LoginID,
		SecretHash:  string(hash),
		DisplayName: in.DisplayName,
		Role:        in.Role,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodePersistence, "account create failed")
	}
	return acct, nil
}

func (s *accountService) ListEmployees(ctx context.Context) ([]model.Account, error) {
	accounts, err := s.accounts.ListByRole(ctx, model.RoleUser)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodePersistence, "employee list failed")
	}
	return accounts, nil
}
