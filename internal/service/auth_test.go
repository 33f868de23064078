package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/intellichat/backend/internal/domain"
	"github.com/intellichat/backend/internal/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestJWTManager() *security.JWTManager {
	return security.NewJWTManager("test-secret-key", 15*time.Minute, 24*time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success stores a bcrypt hash, not the password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewAuthService(mockRepo, newTestJWTManager(), bcrypt.MinCost)

		var stored *domain.User
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*domain.User)
			}).Return(nil)

		user, err := svc.Register(ctx, domain.UserCreate{
			Username: "alice",
			Password: "s3cretpass",
			Email:    "alice@example.com",
		})
		require.NoError(t, err)
		require.NotNil(t, stored)

		assert.Equal(t, "alice", user.Username)
		assert.NotEqual(t, "s3cretpass", stored.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword(
			[]byte(stored.PasswordHash), []byte("s3cretpass")))

		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate username surfaces ErrDuplicateUser", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewAuthService(mockRepo, newTestJWTManager(), bcrypt.MinCost)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
			Return(domain.ErrDuplicateUser)

		_, err := svc.Register(ctx, domain.UserCreate{
			Username: "alice",
			Password: "s3cretpass",
			Email:    "alice@example.com",
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateUser)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		jwtManager := newTestJWTManager()
		svc := NewAuthService(mockRepo, jwtManager, bcrypt.MinCost)

		mockRepo.On("GetByUsername", ctx, "alice").Return(user, nil)

		pair, err := svc.Login(ctx, domain.UserLogin{Username: "alice", Password: "s3cretpass"})
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		assert.Greater(t, pair.ExpiresIn, int64(0))

		claims, err := jwtManager.ValidateAccessToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewAuthService(mockRepo, newTestJWTManager(), bcrypt.MinCost)

		mockRepo.On("GetByUsername", ctx, "alice").Return(user, nil)

		_, err := svc.Login(ctx, domain.UserLogin{Username: "alice", Password: "wrong"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown username gets the same error as a wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewAuthService(mockRepo, newTestJWTManager(), bcrypt.MinCost)

		mockRepo.On("GetByUsername", ctx, "nobody").Return(nil, nil)

		_, err := svc.Login(ctx, domain.UserLogin{Username: "nobody", Password: "s3cretpass"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	jwtManager := newTestJWTManager()
	user := &domain.User{ID: uuid.New(), Username: "alice"}

	t.Run("valid refresh token yields a new pair", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewAuthService(mockRepo, jwtManager, bcrypt.MinCost)

		refreshToken, err := jwtManager.GenerateRefreshToken(user.ID)
		require.NoError(t, err)
		mockRepo.On("GetByID", ctx, user.ID).Return(user, nil)

		pair, err := svc.Refresh(ctx, refreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
	})

	t.Run("access token is rejected as a refresh token", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewAuthService(mockRepo, jwtManager, bcrypt.MinCost)

		accessToken, err := jwtManager.GenerateAccessToken(user.ID, user.Username)
		require.NoError(t, err)

		_, err = svc.Refresh(ctx, accessToken)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("deleted user cannot refresh", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewAuthService(mockRepo, jwtManager, bcrypt.MinCost)

		refreshToken, err := jwtManager.GenerateRefreshToken(user.ID)
		require.NoError(t, err)
		mockRepo.On("GetByID", ctx, user.ID).Return(nil, nil)

		_, err = svc.Refresh(ctx, refreshToken)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
