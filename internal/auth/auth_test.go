package auth

import (
	"testing"
	"time"

	"crm-portal-backend/internal/database/models"
	apperrors "crm-portal-backend/internal/errors"
	"crm-portal-backend/internal/mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*AuthService, *mocks.MockUserRepositoryInterface, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepositoryInterface(ctrl)
	service := NewAuthService(userRepo, validator.New(), "test-signing-key", 24)
	return service, userRepo, ctrl
}

func TestRegister(t *testing.T) {
	t.Run("success with default role", func(t *testing.T) {
		service, userRepo, ctrl := newTestService(t)
		defer ctrl.Finish()

		userRepo.EXPECT().GetByEmail("jane.doe@example.com").Return(nil, gorm.ErrRecordNotFound)
		userRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
			assert.Equal(t, "jane.doe@example.com", user.Email)
			assert.Equal(t, "agent", user.Role)
			// the stored hash must verify against the original password
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")))
			return nil
		})

		resp, err := service.Register(&RegisterRequest{
			Email:    "Jane.Doe@Example.com",
			Password: "s3cret-pass",
			FullName: "Jane Doe",
		})

		require.NoError(t, err)
		assert.Equal(t, "jane.doe@example.com", resp.Email)
		assert.Equal(t, "agent", resp.Role)
	})

	t.Run("duplicate email", func(t *testing.T) {
		service, userRepo, ctrl := newTestService(t)
		defer ctrl.Finish()

		userRepo.EXPECT().GetByEmail("jane.doe@example.com").Return(&models.User{Email: "jane.doe@example.com"}, nil)

		resp, err := service.Register(&RegisterRequest{
			Email:    "jane.doe@example.com",
			Password: "s3cret-pass",
			FullName: "Jane Doe",
		})

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.True(t, apperrors.IsAlreadyExists(err))
	})

	t.Run("short password rejected", func(t *testing.T) {
		service, _, ctrl := newTestService(t)
		defer ctrl.Finish()

		resp, err := service.Register(&RegisterRequest{
			Email:    "jane.doe@example.com",
			Password: "short",
			FullName: "Jane Doe",
		})

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	storedUser := &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Email:        "jane.doe@example.com",
		PasswordHash: string(hash),
		FullName:     "Jane Doe",
		Role:         "agent",
	}

	t.Run("success issues bearer token", func(t *testing.T) {
		service, userRepo, ctrl := newTestService(t)
		defer ctrl.Finish()

		userRepo.EXPECT().GetByEmail("jane.doe@example.com").Return(storedUser, nil)

		resp, err := service.Login(&LoginRequest{Email: "Jane.Doe@Example.com", Password: "s3cret-pass"})

		require.NoError(t, err)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, int64(24*3600), resp.ExpiresIn)
		assert.Equal(t, storedUser.ID, resp.User.ID)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		service, userRepo, ctrl := newTestService(t)
		defer ctrl.Finish()

		userRepo.EXPECT().GetByEmail("jane.doe@example.com").Return(storedUser, nil)

		resp, err := service.Login(&LoginRequest{Email: "jane.doe@example.com", Password: "wrong"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown user gets the same error as wrong password", func(t *testing.T) {
		service, userRepo, ctrl := newTestService(t)
		defer ctrl.Finish()

		userRepo.EXPECT().GetByEmail("nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

		resp, err := service.Login(&LoginRequest{Email: "nobody@example.com", Password: "whatever"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestJWTRoundTrip(t *testing.T) {
	service, _, ctrl := newTestService(t)
	defer ctrl.Finish()

	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "jane.doe@example.com",
		FullName:  "Jane Doe",
		Role:      "admin",
	}

	token, err := service.GenerateJWT(user)
	require.NoError(t, err)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "jane.doe@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "crm-portal-backend", claims.Issuer)
}

func TestValidateJWT(t *testing.T) {
	service, _, ctrl := newTestService(t)
	defer ctrl.Finish()

	t.Run("garbage token", func(t *testing.T) {
		claims, err := service.ValidateJWT("not-a-token")

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		other := NewAuthService(nil, validator.New(), "different-key", 24)
		token, err := other.GenerateJWT(&models.User{BaseModel: models.BaseModel{ID: uuid.New()}})
		require.NoError(t, err)

		claims, err := service.ValidateJWT(token)

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &AuthClaims{
			UserID: uuid.New(),
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			},
		})
		tokenString, err := expired.SignedString([]byte("test-signing-key"))
		require.NoError(t, err)

		claims, err := service.ValidateJWT(tokenString)

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &AuthClaims{UserID: uuid.New()})
		tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		claims, err := service.ValidateJWT(tokenString)

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}
