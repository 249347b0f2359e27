package jwtmw

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"task_backend/internal/feature/auth/domain/entity"
)

// TestMain はテスト実行前にGinをテストモードに設定します。
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockUserFinder is a mock implementation of the UserFinder interface.
type mockUserFinder struct {
	FindByIDFunc func(ctx context.Context, id uint) (*entity.User, error)
}

// FindByID is the mock implementation of the FindByID method.
func (m *mockUserFinder) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return &entity.User{ID: id, Fname: "Test", Lname: "User", Email: "test@example.com", Password: "hash"}, nil
}

// signToken builds a token for test requests.
func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

// TestAuthRequired_MissingBearerToken はBearerトークンがない場合やプレフィックスが不正な場合に401が返されることを検証します。
func TestAuthRequired_MissingBearerToken(t *testing.T) {
	t.Setenv(EnvKeyJWTSecret, "test-secret")

	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"basic auth", "Basic dXNlcjpwYXNz"},
		{"bearer lowercase", "bearer token123"},
		{"no space after Bearer", "Bearertoken123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				c.Request.Header.Set("Authorization", tt.authHeader)
			}

			handler := AuthRequired(&mockUserFinder{})
			handler(c)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
			if !c.IsAborted() {
				t.Error("expected request to be aborted")
			}
		})
	}
}

// TestAuthRequired_MissingJWTSecret はJWT_SECRET環境変数が未設定の場合に500が返されることを検証します。
func TestAuthRequired_MissingJWTSecret(t *testing.T) {
	t.Setenv(EnvKeyJWTSecret, "")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Authorization", "Bearer sometoken")

	handler := AuthRequired(&mockUserFinder{})
	handler(c)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

// TestAuthRequired_InvalidToken は不正なトークン（改ざん・期限切れ等）で401が返されることを検証します。
func TestAuthRequired_InvalidToken(t *testing.T) {
	const testSecret = "test-secret-key-for-invalid"
	t.Setenv(EnvKeyJWTSecret, testSecret)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage token", "not-a-jwt"},
		{"wrong secret", signToken(t, "other-secret", jwt.MapClaims{"sub": 1, "exp": time.Now().Add(time.Hour).Unix()})},
		{"expired token", signToken(t, testSecret, jwt.MapClaims{"sub": 1, "exp": time.Now().Add(-time.Hour).Unix()})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.Header.Set("Authorization", "Bearer "+tt.token)

			handler := AuthRequired(&mockUserFinder{})
			handler(c)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
		})
	}
}

// TestAuthRequired_UserNotFound はトークンが有効でもユーザーが存在しない場合に401が返されることを検証します。
func TestAuthRequired_UserNotFound(t *testing.T) {
	const testSecret = "test-secret-key-for-vanished"
	t.Setenv(EnvKeyJWTSecret, testSecret)

	finder := &mockUserFinder{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
			return nil, errors.New("user not found")
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	token := signToken(t, testSecret, jwt.MapClaims{"sub": 7, "exp": time.Now().Add(time.Hour).Unix()})
	c.Request.Header.Set("Authorization", "Bearer "+token)

	handler := AuthRequired(finder)
	handler(c)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

// TestAuthRequired_ValidToken は有効なトークンでユーザーが解決され、コンテキストに設定されることを検証します。
func TestAuthRequired_ValidToken(t *testing.T) {
	const testSecret = "test-secret-key-for-valid"
	t.Setenv(EnvKeyJWTSecret, testSecret)

	finder := &mockUserFinder{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
			return &entity.User{ID: id, Fname: "Alice", Lname: "Smith", Email: "alice@example.com", Password: "hash"}, nil
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	token := signToken(t, testSecret, jwt.MapClaims{"sub": 42, "email": "alice@example.com", "exp": time.Now().Add(time.Hour).Unix()})
	c.Request.Header.Set("Authorization", "Bearer "+token)

	handler := AuthRequired(finder)
	handler(c)

	if c.IsAborted() {
		t.Fatal("expected request to pass through")
	}
	if got := c.GetUint(ContextUserID); got != 42 {
		t.Errorf("expected userID 42 in context, got %d", got)
	}

	val, ok := c.Get(ContextUser)
	if !ok {
		t.Fatal("expected user in context")
	}
	user, ok := val.(*entity.User)
	if !ok {
		t.Fatalf("expected *entity.User in context, got %T", val)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("expected resolved user email, got %q", user.Email)
	}
	if user.Password != "" {
		t.Error("expected password hash to be cleared before storing in context")
	}
}
