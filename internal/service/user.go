package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jmaurer/placedir/internal/domain"
	"github.com/jmaurer/placedir/internal/repo"
)

// NewUser is the input for registering an account.
type NewUser struct {
	Username string
	Password string
	Email    string
}

// Login is the input for authenticating an account.
type Login struct {
	Username string
	Password string
}

// UserService implements account registration and authentication.
// Session handling is not its concern; Login only yields the user id.
type UserService struct {
	users repo.UserRepo
}

// NewUserService constructs a UserService backed by the provided repo.
func NewUserService(users repo.UserRepo) *UserService {
	return &UserService{users: users}
}

// Register validates the input, hashes the password with bcrypt, and
// persists the new account with an unconfirmed email address.
// Returns domain.ErrUserExists if the username is taken.
func (s *UserService) Register(ctx context.Context, u NewUser) error {
	if err := validateNewUser(u); err != nil {
		return err
	}
	if _, err := s.users.GetByUsername(ctx, u.Username); err == nil {
		return domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("service.UserService.Register: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("service.UserService.Register: %w", err)
	}
	user := domain.User{
		ID:             newID(),
		Username:       u.Username,
		Password:       string(hash),
		Email:          u.Email,
		EmailConfirmed: false,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("service.UserService.Register: %w", err)
	}
	return nil
}

// Login verifies the credentials and returns the user id.
// An unknown username and a wrong password both yield domain.ErrCredentials,
// so callers cannot probe which usernames exist. A correct password against
// an unconfirmed email yields domain.ErrEmailNotConfirmed.
func (s *UserService) Login(ctx context.Context, l Login) (string, error) {
	u, err := s.users.GetByUsername(ctx, l.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrCredentials
		}
		return "", fmt.Errorf("service.UserService.Login: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(l.Password)) != nil {
		return "", domain.ErrCredentials
	}
	if !u.EmailConfirmed {
		return "", domain.ErrEmailNotConfirmed
	}
	return u.ID, nil
}

// Get returns the id and email of username, on behalf of the logged-in user
// loginID. Returns domain.ErrForbidden unless the account is the caller's own.
func (s *UserService) Get(ctx context.Context, loginID, username string) (domain.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Get: %w", err)
	}
	if u.ID != loginID {
		return domain.User{}, domain.ErrForbidden
	}
	return u, nil
}

// Delete removes the account userID on behalf of loginID.
// Returns domain.ErrForbidden unless the account is the caller's own.
func (s *UserService) Delete(ctx context.Context, loginID, userID string) error {
	if loginID != userID {
		return domain.ErrForbidden
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("service.UserService.Delete: %w", err)
	}
	return nil
}

// validateNewUser enforces the account registration rules.
func validateNewUser(u NewUser) error {
	if strings.TrimSpace(u.Username) == "" || strings.ContainsAny(u.Username, " \t") {
		return fmt.Errorf("%w: invalid username", domain.ErrValidation)
	}
	if len(u.Password) < 8 {
		return fmt.Errorf("%w: password must have at least 8 characters", domain.ErrValidation)
	}
	at := strings.Index(u.Email, "@")
	if at < 1 || at == len(u.Email)-1 {
		return fmt.Errorf("%w: invalid email address", domain.ErrValidation)
	}
	return nil
}
