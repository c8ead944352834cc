package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yukikurage/smart-workspace/internal/auth"
	"github.com/yukikurage/smart-workspace/internal/constants"
	"github.com/yukikurage/smart-workspace/internal/models"
	"github.com/yukikurage/smart-workspace/internal/storage"
)

var (
	ErrNameTooShort        = errors.New("name must be at least 2 characters")
	ErrCredentialsTooShort = errors.New("username and password must be at least 2 characters")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUserNotFound        = errors.New("user not found")
)

// AuthService handles registration, login and identity resolution against
// the flat store.
type AuthService struct {
	repo storage.Repository
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo storage.Repository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

// CheckUsername reports whether a username is already taken. Inputs too
// short to ever register report not-taken without touching storage.
func (s *AuthService) CheckUsername(username string) (bool, error) {
	username = strings.TrimSpace(username)
	if utf8.RuneCountInString(username) < constants.MinUsernameLength {
		return false, nil
	}

	store, err := s.repo.Load()
	if err != nil {
		return false, fmt.Errorf("failed to load store: %w", err)
	}

	return store.FindUserByUsername(username) != nil, nil
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Name     string
	Username string
	Password string
}

// Register creates a new user with a hashed password and returns it.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	username := strings.TrimSpace(input.Username)
	password := strings.TrimSpace(input.Password)

	if utf8.RuneCountInString(name) < constants.MinNameLength {
		return nil, ErrNameTooShort
	}
	if utf8.RuneCountInString(username) < constants.MinUsernameLength ||
		utf8.RuneCountInString(password) < constants.MinPasswordLength {
		return nil, ErrCredentialsTooShort
	}

	store, err := s.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load store: %w", err)
	}

	if store.FindUserByUsername(username) != nil {
		return nil, ErrUsernameTaken
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       store.NextUserID(),
		Name:     name,
		Username: username,
		Password: hashed,
	}
	store.Users = append(store.Users, user)

	if err := s.repo.Save(store); err != nil {
		return nil, fmt.Errorf("failed to save store: %w", err)
	}

	return &user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and returns the authenticated user. Unknown
// usernames and wrong passwords yield the same error so callers cannot
// enumerate accounts.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	password := strings.TrimSpace(input.Password)

	store, err := s.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load store: %w", err)
	}

	user := store.FindUserByUsername(username)
	if user == nil || !auth.Verify(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser resolves a user id from the latest persisted state. A session
// whose user has since been deleted resolves to ErrUserNotFound.
func (s *AuthService) GetUser(id int) (*models.User, error) {
	store, err := s.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load store: %w", err)
	}

	user := store.FindUserByID(id)
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}
