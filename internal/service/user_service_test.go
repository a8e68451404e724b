package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/fincalc-service/internal/auth"
	"github.com/spec-kit/fincalc-service/internal/config"
	"github.com/spec-kit/fincalc-service/internal/domain"
	apperrors "github.com/spec-kit/fincalc-service/pkg/util/errorutil"
)

type stubUserRepo struct {
	createFn  func(ctx context.Context, user *domain.User) error
	byIDFn    func(ctx context.Context, id int64) (*domain.User, error)
	byEmailFn func(ctx context.Context, email string) (*domain.User, error)
	existsFn  func(ctx context.Context, email string) (bool, error)
}

func (r *stubUserRepo) Create(ctx context.Context, user *domain.User) error {
	return r.createFn(ctx, user)
}

func (r *stubUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.byIDFn(ctx, id)
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.byEmailFn(ctx, email)
}

func (r *stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.existsFn(ctx, email)
}

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:          "test-secret",
			Issuer:             "fincalc-api",
			TokenLifetimeHours: 1,
			BcryptCost:         4,
		},
	}
}

func TestRegisterHashesPasswordAndReturnsUser(t *testing.T) {
	repo := &stubUserRepo{
		existsFn: func(context.Context, string) (bool, error) { return false, nil },
		createFn: func(_ context.Context, user *domain.User) error {
			user.ID = 7
			return nil
		},
	}
	svc := NewUserService(testConfig(), repo)

	user, err := svc.Register(context.Background(), "John Doe", "john@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.NoError(t, auth.ComparePassword(user.PasswordHash, "secret1"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &stubUserRepo{
		existsFn: func(context.Context, string) (bool, error) { return true, nil },
	}
	svc := NewUserService(testConfig(), repo)

	_, err := svc.Register(context.Background(), "", "john@x.com", "secret1")
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "EMAIL_EXISTS", domainErr.Code)
	assert.Equal(t, 409, domainErr.HTTPStatus)
}

func TestRegisterUniqueViolationUnderRace(t *testing.T) {
	// Exists check passes, then the INSERT loses a race and trips the
	// UNIQUE constraint. Still a conflict, never a 500.
	repo := &stubUserRepo{
		existsFn: func(context.Context, string) (bool, error) { return false, nil },
		createFn: func(context.Context, *domain.User) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
		},
	}
	svc := NewUserService(testConfig(), repo)

	_, err := svc.Register(context.Background(), "", "john@x.com", "secret1")
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "EMAIL_EXISTS", domainErr.Code)
	assert.Equal(t, 409, domainErr.HTTPStatus)
}

func TestLoginReturnsVerifiableToken(t *testing.T) {
	hash, err := auth.HashPassword("secret1", 4)
	require.NoError(t, err)

	repo := &stubUserRepo{
		byEmailFn: func(context.Context, string) (*domain.User, error) {
			return &domain.User{ID: 3, Email: "john@x.com", PasswordHash: hash}, nil
		},
	}
	svc := NewUserService(testConfig(), repo)

	user, token, expiresIn, err := svc.Login(context.Background(), "john@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := svc.TokenManager().Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(3), claims.UserID)
	assert.Equal(t, "john@x.com", claims.Email)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	hash, err := auth.HashPassword("secret1", 4)
	require.NoError(t, err)

	repo := &stubUserRepo{
		byEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			if email == "known@x.com" {
				return &domain.User{ID: 3, Email: email, PasswordHash: hash}, nil
			}
			return nil, pgx.ErrNoRows
		},
	}
	svc := NewUserService(testConfig(), repo)

	_, _, _, unknownErr := svc.Login(context.Background(), "unknown@x.com", "secret1")
	_, _, _, wrongErr := svc.Login(context.Background(), "known@x.com", "wrong-password")

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, *apperrors.ToDomainError(unknownErr), *apperrors.ToDomainError(wrongErr))
	assert.Equal(t, "Invalid credentials", apperrors.ToDomainError(unknownErr).Message)
	assert.Equal(t, 401, apperrors.ToDomainError(unknownErr).HTTPStatus)
}

func TestProfileUnknownUser(t *testing.T) {
	repo := &stubUserRepo{
		byIDFn: func(context.Context, int64) (*domain.User, error) { return nil, pgx.ErrNoRows },
	}
	svc := NewUserService(testConfig(), repo)

	_, err := svc.Profile(context.Background(), 99)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 404, domainErr.HTTPStatus)
	assert.Equal(t, "User not found", domainErr.Message)
}
