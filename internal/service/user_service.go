package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/fincalc-service/internal/auth"
	"github.com/spec-kit/fincalc-service/internal/config"
	"github.com/spec-kit/fincalc-service/internal/domain"
	"github.com/spec-kit/fincalc-service/internal/repository"
	apperrors "github.com/spec-kit/fincalc-service/pkg/util/errorutil"
)

const uniqueViolationCode = "23505"

// UserService coordinates registration, login and profile flows.
type UserService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(cfg config.Config, users repository.UserRepository) *UserService {
	return &UserService{
		users:      users,
		tokens:     auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenLifetime()),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new account. The exists check gives a friendly 409; the
// UNIQUE constraint on users.email is the guard that holds under races.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if exists {
		return nil, apperrors.NewConflict("EMAIL_EXISTS", "Email already exists")
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflict("EMAIL_EXISTS", "Email already exists")
		}
		return nil, apperrors.NewInternalError(err)
	}
	return user, nil
}

// Login authenticates an account and mints a token. Unknown email and wrong
// password fail with the exact same error value.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, string, int64, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", 0, apperrors.NewUnauthorized()
		}
		return nil, "", 0, apperrors.NewInternalError(err)
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", 0, apperrors.NewUnauthorized()
	}

	token, _, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, "", 0, apperrors.NewInternalError(err)
	}
	return user, token, int64(s.tokens.Lifetime().Seconds()), nil
}

// Profile loads the account behind a verified token.
func (s *UserService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("User not found")
		}
		return nil, apperrors.NewInternalError(err)
	}
	return user, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *UserService) TokenManager() *auth.TokenManager {
	return s.tokens
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
