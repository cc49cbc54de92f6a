package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itai/estagios/internal/app/models"
	"github.com/itai/estagios/internal/app/models/dto"
	"github.com/itai/estagios/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, tokenExp time.Duration) (*gin.Engine, *auth.JWTService) {
	t.Helper()

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: tokenExp,
		TokenIssuer:    "estagios.test",
	})
	authMiddleware := NewAuthMiddleware(jwtService)

	router := gin.New()

	protected := router.Group("/protected")
	protected.Use(authMiddleware.JWTAuth())
	{
		protected.GET("/me", func(c *gin.Context) {
			id, _ := StudentIDFromContext(c)
			c.JSON(http.StatusOK, gin.H{"studentID": id})
		})

		admin := protected.Group("")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			admin.GET("/admin", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"ok": true})
			})
		}
	}

	return router, jwtService
}

func issueToken(t *testing.T, jwtService *auth.JWTService, role models.RoleType) string {
	t.Helper()

	token, _, err := jwtService.GenerateToken(&models.Student{
		ID:       1,
		Email:    "thaina@gmail.com",
		RoleType: role,
	})
	require.NoError(t, err)
	return token
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return &resp
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router, _ := newTestRouter(t, time.Hour)

	w := doRequest(router, "/protected/me", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeUnauthorized, resp.Error.Code)
	assert.False(t, resp.Success)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	router, _ := newTestRouter(t, time.Hour)

	w := doRequest(router, "/protected/me", "Bearer not.a.valid.token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeInvalidToken, resp.Error.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	router, jwtService := newTestRouter(t, -time.Minute)

	token := issueToken(t, jwtService, models.RoleStudent)
	w := doRequest(router, "/protected/me", "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeExpiredToken, resp.Error.Code)
}

func TestJWTAuth_ValidToken(t *testing.T) {
	router, jwtService := newTestRouter(t, time.Hour)

	token := issueToken(t, jwtService, models.RoleStudent)
	w := doRequest(router, "/protected/me", "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["studentID"])
}

func TestJWTAuth_RawTokenWithoutBearerPrefix(t *testing.T) {
	router, jwtService := newTestRouter(t, time.Hour)

	token := issueToken(t, jwtService, models.RoleStudent)
	w := doRequest(router, "/protected/me", token)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleRequired_InsufficientRole(t *testing.T) {
	router, jwtService := newTestRouter(t, time.Hour)

	token := issueToken(t, jwtService, models.RoleStudent)
	w := doRequest(router, "/protected/admin", "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeForbidden, resp.Error.Code)
}

func TestRoleRequired_AdminAllowed(t *testing.T) {
	router, jwtService := newTestRouter(t, time.Hour)

	token := issueToken(t, jwtService, models.RoleAdmin)
	w := doRequest(router, "/protected/admin", "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
}

// A request that fails authentication must get 401 even on a role-guarded
// route. 403 is reserved for authenticated callers with the wrong role.
func TestRoleRequired_UnauthenticatedGets401Not403(t *testing.T) {
	router, _ := newTestRouter(t, time.Hour)

	t.Run("missing token", func(t *testing.T) {
		w := doRequest(router, "/protected/admin", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		w := doRequest(router, "/protected/admin", "Bearer garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestStudentIDFromContext_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := StudentIDFromContext(c)
	assert.False(t, ok)
}
