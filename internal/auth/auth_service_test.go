package auth_test

import (
	"context"
	"testing"

	"jobtrack/internal/auth"
	autherrors "jobtrack/internal/auth/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type fakeAuthRepo struct {
	CreateFn     func(ctx context.Context, user *auth.User) error
	GetByEmailFn func(ctx context.Context, email string) (*auth.User, error)
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*auth.User, error)
	FindAllFn    func(ctx context.Context) ([]auth.User, error)
}

func (f *fakeAuthRepo) Create(ctx context.Context, user *auth.User) error {
	return f.CreateFn(ctx, user)
}
func (f *fakeAuthRepo) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	return f.GetByEmailFn(ctx, email)
}
func (f *fakeAuthRepo) GetByID(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeAuthRepo) FindAll(ctx context.Context) ([]auth.User, error) {
	return f.FindAllFn(ctx)
}

func TestAuthService_Register(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("success hashes the password and stamps defaults", func(t *testing.T) {
		var persisted *auth.User
		repo := &fakeAuthRepo{
			CreateFn: func(ctx context.Context, user *auth.User) error {
				persisted = user
				return nil
			},
		}

		svc := auth.NewService(repo)
		resp, pair, err := svc.Register(context.Background(), auth.RegisterRequest{
			Email:    "Jane@Example.com",
			Password: "supersecret",
		})

		assert.NoError(t, err)
		assert.Equal(t, "jane@example.com", resp.Email)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		assert.NotEqual(t, "supersecret", persisted.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted.Password), []byte("supersecret")))
		assert.True(t, persisted.IsActive)
		assert.False(t, persisted.IsStaff)
	})

	t.Run("duplicate email maps to a client error", func(t *testing.T) {
		repo := &fakeAuthRepo{
			CreateFn: func(ctx context.Context, user *auth.User) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
			},
		}

		svc := auth.NewService(repo)
		_, _, err := svc.Register(context.Background(), auth.RegisterRequest{
			Email:    "jane@example.com",
			Password: "supersecret",
		})

		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})

	t.Run("duplicate username maps to its own error", func(t *testing.T) {
		repo := &fakeAuthRepo{
			CreateFn: func(ctx context.Context, user *auth.User) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
			},
		}

		svc := auth.NewService(repo)
		_, _, err := svc.Register(context.Background(), auth.RegisterRequest{
			Email:    "jane@example.com",
			Password: "supersecret",
		})

		assert.ErrorIs(t, err, autherrors.ErrUsernameAlreadyTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hashed, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	user := &auth.User{
		ID:       uuid.New(),
		Email:    "jane@example.com",
		Password: string(hashed),
		IsActive: true,
	}

	t.Run("success", func(t *testing.T) {
		repo := &fakeAuthRepo{
			GetByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				assert.Equal(t, "jane@example.com", email)
				return user, nil
			},
		}

		svc := auth.NewService(repo)
		resp, pair, err := svc.Login(context.Background(), "Jane@Example.com ", "supersecret")

		assert.NoError(t, err)
		assert.Equal(t, user.ID.String(), resp.ID)
		assert.NotEmpty(t, pair.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := &fakeAuthRepo{
			GetByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				return user, nil
			},
		}

		svc := auth.NewService(repo)
		_, _, err := svc.Login(context.Background(), "jane@example.com", "nope")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email yields the same error as a bad password", func(t *testing.T) {
		repo := &fakeAuthRepo{
			GetByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				return nil, assert.AnError
			},
		}

		svc := auth.NewService(repo)
		_, _, err := svc.Login(context.Background(), "nobody@example.com", "supersecret")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hashed, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	user := &auth.User{
		ID:       uuid.New(),
		Email:    "jane@example.com",
		Password: string(hashed),
		IsActive: true,
	}

	repo := &fakeAuthRepo{
		GetByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
			return user, nil
		},
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*auth.User, error) {
			assert.Equal(t, user.ID, id)
			return user, nil
		},
	}
	svc := auth.NewService(repo)

	t.Run("refresh token yields a new pair", func(t *testing.T) {
		_, pair, err := svc.Login(context.Background(), "jane@example.com", "supersecret")
		assert.NoError(t, err)

		resp, newPair, err := svc.Refresh(context.Background(), pair.RefreshToken)

		assert.NoError(t, err)
		assert.Equal(t, user.ID.String(), resp.ID)
		assert.NotEmpty(t, newPair.AccessToken)
	})

	t.Run("access token is rejected", func(t *testing.T) {
		_, pair, err := svc.Login(context.Background(), "jane@example.com", "supersecret")
		assert.NoError(t, err)

		_, _, err = svc.Refresh(context.Background(), pair.AccessToken)

		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, _, err := svc.Refresh(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}

func TestAuthService_ListUsers(t *testing.T) {
	repo := &fakeAuthRepo{
		FindAllFn: func(ctx context.Context) ([]auth.User, error) {
			return []auth.User{
				{ID: uuid.New(), Email: "a@example.com"},
				{ID: uuid.New(), Email: "b@example.com", IsStaff: true},
			}, nil
		},
	}

	svc := auth.NewService(repo)
	users, err := svc.ListUsers(context.Background())

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.True(t, users[1].IsStaff)
}
