package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"taskmaster/internal/feature/auth/domain/entity"
)

const (
	minNameLength     = 2
	maxNameLength     = 100
	maxEmailLength    = 150
	minPasswordLength = 6
	maxPasswordLength = 100
)

// emailPattern is a syntactic check only; deliverability is not verified.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// UserRepository abstracts the persistence layer for user entities. The
// interface lives with its consumer, not the adapters that implement it.
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists when the
	// email is already taken; duplicate races are caught by the store's
	// uniqueness constraint, not serialized here.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user registered under email, or
	// ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves the user with the given id, or ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// ExistsByEmail reports whether a user is registered under email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// TokenIssuer creates a signed bearer credential for an authenticated user.
type TokenIssuer interface {
	Issue(email string, userID uint) (string, error)
}

// authUsecase implements registration and login.
type authUsecase struct {
	users  UserRepository
	tokens TokenIssuer
}

// NewAuthUsecase wires the auth business logic to its collaborators.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer) *authUsecase {
	return &authUsecase{
		users:  users,
		tokens: tokens,
	}
}

// Register creates a new user with a hashed password and, on success, logs
// the user in immediately and returns the issued token.
func (u *authUsecase) Register(ctx context.Context, name, email, password string) (*entity.User, string, error) {
	if err := validateRegistration(name, email, password); err != nil {
		return nil, "", err
	}

	if exists, err := u.users.ExistsByEmail(ctx, email); err != nil {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	} else if exists {
		return nil, "", ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Name: strings.TrimSpace(name), Email: email, Password: string(hashed)}
	// Create still fails with ErrEmailAlreadyExists if a concurrent
	// registration won the race; the unique index is the arbiter.
	if err := u.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.Issue(user.Email, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Login authenticates the user and returns a signed token on success. An
// unknown email and a wrong password produce the same ErrInvalidCredentials.
// A bcrypt compare runs even when the user does not exist to keep the two
// failure paths close in timing.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if err := validateLogin(email, password); err != nil {
		return nil, "", err
	}

	user, err := u.users.FindByEmail(ctx, email)

	// Dummy bcrypt hash compared against when the email is unknown.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		if err != nil && !errors.Is(err, ErrUserNotFound) {
			return nil, "", fmt.Errorf("failed to look up user: %w", err)
		}
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.Email, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

func validateRegistration(name, email, password string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return validationErr("name cannot be empty")
	}
	if len(trimmed) < minNameLength || len(trimmed) > maxNameLength {
		return validationErr(fmt.Sprintf("name must be between %d and %d characters", minNameLength, maxNameLength))
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return validationErr(fmt.Sprintf("password must be between %d and %d characters", minPasswordLength, maxPasswordLength))
	}
	return nil
}

func validateLogin(email, password string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	if strings.TrimSpace(password) == "" {
		return validationErr("password cannot be empty")
	}
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return validationErr("email cannot be empty")
	}
	if len(email) > maxEmailLength {
		return validationErr(fmt.Sprintf("email must not exceed %d characters", maxEmailLength))
	}
	if !emailPattern.MatchString(email) {
		return validationErr("invalid email format")
	}
	return nil
}
