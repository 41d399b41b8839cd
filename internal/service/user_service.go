package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/raduapetrei/bookshelf-api/internal/domain"
	"github.com/raduapetrei/bookshelf-api/internal/service/auth"
	"github.com/raduapetrei/bookshelf-api/internal/store"
)

// UserService provides registration and authentication operations.
type UserService interface {
	// Register validates and persists a new user. Passwords are hashed
	// before storage. No duplicate-username check is performed.
	Register(ctx context.Context, username, email, password string) error

	// Login authenticates a user and returns a signed bearer token.
	// Returns ErrInvalidCredentials for an unknown username or a wrong
	// password, without distinguishing the two.
	Login(ctx context.Context, username, password string) (string, error)
}

type userService struct {
	users      store.UserStore
	jwtService auth.JWTService
	hasher     auth.PasswordHasher
	verifier   auth.PasswordVerifier
	logger     *slog.Logger
}

var _ UserService = (*userService)(nil)

// NewUserService creates a UserService with the given dependencies.
func NewUserService(
	users store.UserStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	log *slog.Logger,
) UserService {
	if log == nil {
		log = slog.Default()
	}
	return &userService{
		users:      users,
		jwtService: jwtService,
		hasher:     hasher,
		verifier:   verifier,
		logger:     log.With(slog.String("component", "user_service")),
	}
}

func (s *userService) Register(ctx context.Context, username, email, password string) error {
	user, err := domain.NewUser(username, email, password)
	if err != nil {
		return err
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		s.logger.Error("failed to hash password",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (s *userService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, user.Username)
	if err != nil {
		s.logger.Error("failed to generate token",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}
