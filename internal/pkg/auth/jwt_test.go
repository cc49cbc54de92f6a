package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itai/estagios/internal/app/models"
)

func newTestJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: exp,
		TokenIssuer:    "estagios.test",
	})
}

func testStudent() *models.Student {
	return &models.Student{
		ID:        7,
		Email:     "thaina@gmail.com",
		FirstName: "Thaina",
		LastName:  "Silva",
		RoleType:  models.RoleStudent,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := newTestJWTService(time.Hour)

	token, expiresIn, err := service.GenerateToken(testStudent())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, 3600, expiresIn)

	claims, err := service.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.StudentID)
	assert.Equal(t, "thaina@gmail.com", claims.Email)
	assert.Equal(t, string(models.RoleStudent), claims.RoleType)
	assert.Equal(t, "estagios.test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken_Expired(t *testing.T) {
	service := newTestJWTService(-time.Minute)

	token, _, err := service.GenerateToken(testStudent())
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service := newTestJWTService(time.Hour)
	token, _, err := service.GenerateToken(testStudent())
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:      "a-different-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "estagios.test",
	})

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateAndExtractClaims_EmptyToken(t *testing.T) {
	service := newTestJWTService(time.Hour)

	_, err := service.ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAndExtractClaims_Garbage(t *testing.T) {
	service := newTestJWTService(time.Hour)

	_, err := service.ValidateAndExtractClaims("not.a.token")
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "with bearer prefix", header: "Bearer abc123", want: "abc123"},
		{name: "raw token", header: "abc123", want: "abc123"},
		{name: "empty header", header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
