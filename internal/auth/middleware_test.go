package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func newEchoHandler(captured **Principal) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := FromContext(r.Context())
		if ok {
			*captured = principal
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddlewareAcceptsBearerToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub":   "user-7",
		"email": "u7@example.com",
		"iss":   testIssuer,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	var captured *Principal
	middleware := NewMiddleware(testConfig(), nil)
	handler := middleware.Wrap(newEchoHandler(&captured))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/get-userInfo", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, captured)
	require.Equal(t, "user-7", captured.UID)
	require.Equal(t, "u7@example.com", captured.Email)
}

func TestMiddlewareRejectsMalformedHeaders(t *testing.T) {
	middleware := NewMiddleware(testConfig(), nil)

	cases := map[string]string{
		"absent":       "",
		"no scheme":    "some-token",
		"wrong scheme": "Basic dXNlcjpwYXNz",
		"lowercase":    "bearer abc",
		"scheme only":  "Bearer ",
		"blank token":  "Bearer  ",
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			var captured *Principal
			handler := middleware.Wrap(newEchoHandler(&captured))

			req := httptest.NewRequest(http.MethodGet, "/api/auth/get-userInfo", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.Equal(t, http.StatusUnauthorized, rr.Code)
			require.Contains(t, rr.Body.String(), "authorization header")
			require.Nil(t, captured)
		})
	}
}

func TestMiddlewareRejectsInvalidToken(t *testing.T) {
	middleware := NewMiddleware(testConfig(), nil)
	var captured *Principal
	handler := middleware.Wrap(newEchoHandler(&captured))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/get-userInfo", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Contains(t, rr.Body.String(), "invalid or expired token")
	require.Nil(t, captured)
}

func TestMiddlewareSkipsConfiguredPaths(t *testing.T) {
	middleware := NewMiddleware(testConfig(), func(r *http.Request) bool {
		return r.URL.Path == "/healthz"
	})
	var captured *Principal
	handler := middleware.Wrap(newEchoHandler(&captured))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Nil(t, captured)
}
