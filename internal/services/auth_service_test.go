package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/materialmap-backend/internal/config"
	"github.com/javajoker/materialmap-backend/internal/models"
	"github.com/javajoker/materialmap-backend/internal/repository"
	"github.com/javajoker/materialmap-backend/internal/repository/mocks"
	"github.com/javajoker/materialmap-backend/internal/utils"
)

func newAuthFixture() (*mocks.UserRepository, *AuthService) {
	utils.SetJWTSecret("auth-service-test")
	repo := new(mocks.UserRepository)
	cfg := &config.Config{JWT: config.JWTConfig{SecretKey: "auth-service-test", AccessTokenTTL: 24}}
	return repo, NewAuthService(repo, cfg)
}

func TestAuthService_Register(t *testing.T) {
	repo, service := newAuthFixture()
	repo.On("FindByEmail", anyCtx, "new@example.com").Return(nil, repository.ErrNotFound)
	repo.On("Create", anyCtx, mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.User).ID = uuid.New()
		}).
		Return(nil)

	resp, err := service.Register(context.Background(), &RegisterRequest{
		Email:    "New@Example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "new@example.com", resp.User.Email)
	assert.Equal(t, 24*3600, resp.ExpiresIn)

	claims, err := utils.ValidateJWT(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID.String(), claims.Subject)
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	repo, service := newAuthFixture()
	repo.On("FindByEmail", anyCtx, "taken@example.com").Return(&models.User{Email: "taken@example.com"}, nil)

	_, err := service.Register(context.Background(), &RegisterRequest{Email: "taken@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Login(t *testing.T) {
	repo, service := newAuthFixture()
	user := &models.User{Email: "a@example.com"}
	user.ID = uuid.New()
	require.NoError(t, user.SetPassword("secret1"))
	repo.On("FindByEmail", anyCtx, "a@example.com").Return(user, nil)
	repo.On("FindByEmail", anyCtx, "nobody@example.com").Return(nil, repository.ErrNotFound)

	resp, err := service.Login(context.Background(), &LoginRequest{Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = service.Login(context.Background(), &LoginRequest{Email: "a@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Login(context.Background(), &LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_GetUserByID(t *testing.T) {
	repo, service := newAuthFixture()
	id := uuid.New()
	repo.On("FindByID", anyCtx, id).Return(nil, repository.ErrNotFound)

	_, err := service.GetUserByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
