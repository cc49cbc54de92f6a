package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itai/estagios/internal/app/models"
	"github.com/itai/estagios/internal/app/models/dto"
	"github.com/itai/estagios/internal/app/services"
	"github.com/itai/estagios/internal/pkg/apperrors"
	"github.com/itai/estagios/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "estagios.test",
	})
}

func seedStudent(t *testing.T, repo *stubStudentRepo, email string, role models.RoleType) *models.Student {
	t.Helper()

	hash, err := auth.HashPassword("password")
	require.NoError(t, err)

	return repo.add(models.Student{
		Email:     email,
		Password:  hash,
		FirstName: "Thaina",
		LastName:  "Silva",
		RoleType:  role,
	})
}

func TestLogin_Success(t *testing.T) {
	repo := newStubStudentRepo()
	student := seedStudent(t, repo, "thaina@gmail.com", models.RoleStudent)
	jwtService := newTestJWTService()
	service := services.NewAuthService(repo, jwtService, zerolog.Nop())

	resp, err := service.Login(context.Background(), &dto.LoginRequest{
		Username: "thaina@gmail.com",
		Password: "password",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)

	claims, err := jwtService.ValidateAndExtractClaims(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, student.ID, claims.StudentID)
	assert.Equal(t, "thaina@gmail.com", claims.Email)
	assert.Equal(t, string(models.RoleStudent), claims.RoleType)
}

func TestLogin_RecordsLastLogin(t *testing.T) {
	repo := newStubStudentRepo()
	student := seedStudent(t, repo, "thaina@gmail.com", models.RoleStudent)
	service := services.NewAuthService(repo, newTestJWTService(), zerolog.Nop())

	_, err := service.Login(context.Background(), &dto.LoginRequest{
		Username: "thaina@gmail.com",
		Password: "password",
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{student.ID}, repo.lastLoginCalls)
}

func TestLogin_LastLoginFailureDoesNotFailLogin(t *testing.T) {
	repo := newStubStudentRepo()
	seedStudent(t, repo, "thaina@gmail.com", models.RoleStudent)
	repo.lastLoginErr = errors.New("write timeout")
	service := services.NewAuthService(repo, newTestJWTService(), zerolog.Nop())

	resp, err := service.Login(context.Background(), &dto.LoginRequest{
		Username: "thaina@gmail.com",
		Password: "password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

// Unknown user and wrong password must be indistinguishable to the caller
func TestLogin_InvalidCredentials(t *testing.T) {
	repo := newStubStudentRepo()
	seedStudent(t, repo, "thaina@gmail.com", models.RoleStudent)
	service := services.NewAuthService(repo, newTestJWTService(), zerolog.Nop())

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "unknown user", username: "nobody@gmail.com", password: "password"},
		{name: "wrong password", username: "thaina@gmail.com", password: "wrong"},
		{name: "empty username", username: "", password: "password"},
		{name: "empty password", username: "thaina@gmail.com", password: ""},
		{name: "whitespace username", username: "   ", password: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := service.Login(context.Background(), &dto.LoginRequest{
				Username: tt.username,
				Password: tt.password,
			})
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		})
	}
}

func TestLogin_TrimsUsername(t *testing.T) {
	repo := newStubStudentRepo()
	seedStudent(t, repo, "admin@gmail.com", models.RoleAdmin)
	service := services.NewAuthService(repo, newTestJWTService(), zerolog.Nop())

	resp, err := service.Login(context.Background(), &dto.LoginRequest{
		Username: "  admin@gmail.com  ",
		Password: "password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}
