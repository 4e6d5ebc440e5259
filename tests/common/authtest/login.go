//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"marketplace-api/internal/handler/dto/request"
	"marketplace-api/internal/pkg/cookie"
	"marketplace-api/tests/common/dbtest"
	"marketplace-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// LoginUser authenticates through the real endpoint and returns the session
// cookies the browser would carry on subsequent requests.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) []*http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return httptest.ExtractCookies(w)
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string, companyID *uuid.UUID) []*http.Cookie {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role, companyID)
	return LoginUser(t, router, email, "password123")
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
