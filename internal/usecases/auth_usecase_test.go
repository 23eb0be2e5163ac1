package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"aeobro.backend/internal/domain/entities"
	domainerrors "aeobro.backend/internal/domain/errors"
	"aeobro.backend/pkg/crypto"
	"aeobro.backend/pkg/jwt"
)

func newAuthFixture() (*AuthUsecase, *MockUserRepository) {
	userRepo := new(MockUserRepository)
	jwtService := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	return NewAuthUsecase(userRepo, jwtService), userRepo
}

func TestAuthUsecase_Register(t *testing.T) {
	usecase, userRepo := newAuthFixture()

	userRepo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, domainerrors.ErrNotFound)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
		return u.Email == "new@example.com" && u.Role == entities.UserRoleUser &&
			u.PasswordHash != "" && u.PasswordHash != "password123"
	})).Return(nil)

	user, err := usecase.Register(context.Background(), &entities.CreateUserInput{
		Email:    "  New@Example.COM ",
		Name:     "New User",
		Password: "password123",
	})
	require.NoError(t, err)
	require.Equal(t, "new@example.com", user.Email)
	require.True(t, crypto.CheckPassword("password123", user.PasswordHash))
	userRepo.AssertExpectations(t)
}

func TestAuthUsecase_RegisterDuplicateEmail(t *testing.T) {
	usecase, userRepo := newAuthFixture()
	existing := &entities.User{ID: uuid.New(), Email: "taken@example.com"}

	userRepo.On("GetByEmail", mock.Anything, "taken@example.com").Return(existing, nil)

	_, err := usecase.Register(context.Background(), &entities.CreateUserInput{
		Email:    "taken@example.com",
		Name:     "Dup",
		Password: "password123",
	})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthUsecase_Login(t *testing.T) {
	usecase, userRepo := newAuthFixture()
	hash, err := crypto.HashPassword("password123")
	require.NoError(t, err)
	user := &entities.User{
		ID: uuid.New(), Email: "user@example.com",
		PasswordHash: hash, Role: entities.UserRoleUser,
	}

	userRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(user, nil)

	resp, err := usecase.Login(context.Background(), &entities.LoginInput{
		Email:    "user@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)
	require.Equal(t, user.ID, resp.User.ID)
}

func TestAuthUsecase_LoginWrongPassword(t *testing.T) {
	usecase, userRepo := newAuthFixture()
	hash, err := crypto.HashPassword("password123")
	require.NoError(t, err)
	user := &entities.User{ID: uuid.New(), Email: "user@example.com", PasswordHash: hash}

	userRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(user, nil)

	_, err = usecase.Login(context.Background(), &entities.LoginInput{
		Email:    "user@example.com",
		Password: "wrong",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthUsecase_LoginUnknownEmailIndistinguishable(t *testing.T) {
	usecase, userRepo := newAuthFixture()

	userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domainerrors.ErrNotFound)

	// Unknown account and wrong password both read as invalid credentials.
	_, err := usecase.Login(context.Background(), &entities.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever1",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthUsecase_RefreshToken(t *testing.T) {
	usecase, userRepo := newAuthFixture()
	hash, err := crypto.HashPassword("password123")
	require.NoError(t, err)
	user := &entities.User{
		ID: uuid.New(), Email: "user@example.com",
		PasswordHash: hash, Role: entities.UserRoleUser,
	}

	userRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(user, nil)
	userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	resp, err := usecase.Login(context.Background(), &entities.LoginInput{
		Email:    "user@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	pair, err := usecase.RefreshToken(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
}

func TestAuthUsecase_RefreshTokenGarbage(t *testing.T) {
	usecase, userRepo := newAuthFixture()

	_, err := usecase.RefreshToken(context.Background(), "not-a-jwt")
	require.Error(t, err)
	userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
