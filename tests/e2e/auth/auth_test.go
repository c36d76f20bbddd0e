//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"tablestay/internal/handler/dto/request"
	"tablestay/internal/handler/dto/response"
	"tablestay/tests/common/authtest"
	"tablestay/tests/common/dbtest"
	"tablestay/tests/common/httptest"
	"tablestay/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "guest@example.com", "guest")
	dbtest.CreateTestUser(s.T(), s.DB, "host@example.com", "host")
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "guest@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "guest@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
			description:    "空のメールアドレスは拒否されること",
		},
		{
			name:           "短すぎるパスワード",
			email:          "guest@example.com",
			password:       "short",
			expectedStatus: http.StatusBadRequest,
			description:    "8文字未満のパスワードは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var body response.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
				require.NotEmpty(t, body.AccessToken)
				require.Equal(t, tt.email, body.User.Email)

				cookie := httptest.ExtractCookie(w, "access_token")
				require.NotNil(t, cookie, "アクセストークンのCookieが設定されること")
				require.NotEmpty(t, cookie.Value)
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("認証済みユーザーは自分の情報を取得できる", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "host@example.com", "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body response.UserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Equal(t, "host@example.com", body.Email)
		require.Equal(t, "host", body.Role)
	})

	s.Run("未認証のリクエストは拒否される", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("ログアウトでCookieが破棄される", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "guest@example.com", "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		cookie := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, cookie)
		require.Empty(t, cookie.Value, "Cookieの値が空になること")
	})
}
