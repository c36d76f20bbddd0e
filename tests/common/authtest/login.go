//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"tablestay/internal/handler/dto/request"
	"tablestay/tests/common/dbtest"
	"tablestay/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

// CreateAndLogin seeds a user and returns a usable access token. All fixture
// users share the password "password123".
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) (userID string, token string) {
	t.Helper()
	id := dbtest.CreateTestUser(t, db, email, role)
	return id.String(), LoginUser(t, router, email, "password123")
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
