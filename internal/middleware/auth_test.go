package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestTokenRoundtrip(t *testing.T) {
	token, err := GenerateToken("64f1c0ffee0000000000abcd", testSecret)
	require.NoError(t, err)

	claims, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "64f1c0ffee0000000000abcd", claims.UserID)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("user1", testSecret)
	require.NoError(t, err)

	_, err = ParseToken(token, "a-different-secret")
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	claims := Claims{
		UserID: "user1",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	assert.Equal(t, "abc.def.ghi", ExtractBearerToken("Bearer abc.def.ghi"))
	assert.Equal(t, "abc.def.ghi", ExtractBearerToken("bearer abc.def.ghi"))
	assert.Equal(t, "", ExtractBearerToken("abc.def.ghi"))
	assert.Equal(t, "", ExtractBearerToken(""))
	assert.Equal(t, "", ExtractBearerToken("Basic dXNlcjpwYXNz"))
}

func authTestHandler(t *testing.T) (http.Handler, *string) {
	t.Helper()
	var seenUserID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return RequireAuth(testSecret)(inner), &seenUserID
}

func TestRequireAuthMissingToken(t *testing.T) {
	handler, _ := authTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/goals", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Authentication required"}`, rec.Body.String())
}

func TestRequireAuthInvalidToken(t *testing.T) {
	handler, _ := authTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/goals", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid or expired token"}`, rec.Body.String())
}

func TestRequireAuthValidToken(t *testing.T) {
	handler, seenUserID := authTestHandler(t)

	token, err := GenerateToken("64f1c0ffee0000000000abcd", testSecret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/goals", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "64f1c0ffee0000000000abcd", *seenUserID)
}

func TestUserIDFromTokenForWebSocket(t *testing.T) {
	token, err := GenerateToken("user42", testSecret)
	require.NoError(t, err)

	userID, err := UserIDFromToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user42", userID)

	_, err = UserIDFromToken("garbage", testSecret)
	assert.Error(t, err)
}
