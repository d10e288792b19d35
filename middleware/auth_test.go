package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/LovationAdmin/travel-api/utils"

	"github.com/gin-gonic/gin"
)

func buildAuthApp(tokens *utils.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": GetUserID(c), "role": c.GetString(ContextRole)})
	})
	r.GET("/admin", AuthMiddleware(tokens), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func serve(r *gin.Engine, req *http.Request) int {
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp.Code
}

func TestAuthMiddlewareTokenSources(t *testing.T) {
	tokens := utils.NewTokenIssuer("secret", time.Hour)
	r := buildAuthApp(tokens)
	token, err := tokens.Generate(3, "user", "user")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	bearer := httptest.NewRequest(http.MethodGet, "/me", nil)
	bearer.Header.Set("Authorization", "Bearer "+token)

	legacy := httptest.NewRequest(http.MethodGet, "/me", nil)
	legacy.Header.Set("x-auth-token", token)

	query := httptest.NewRequest(http.MethodGet, "/me?token="+token, nil)

	for name, req := range map[string]*http.Request{"bearer": bearer, "x-auth-token": legacy, "query": query} {
		if code := serve(r, req); code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", name, code)
		}
	}
}

func TestAuthMiddlewareRejects(t *testing.T) {
	tokens := utils.NewTokenIssuer("secret", time.Hour)
	r := buildAuthApp(tokens)

	expired, _ := utils.NewTokenIssuer("secret", -time.Minute).Generate(1, "user", "user")
	foreign, _ := utils.NewTokenIssuer("other-secret", time.Hour).Generate(1, "user", "user")

	for name, header := range map[string]string{
		"missing": "",
		"expired": "Bearer " + expired,
		"foreign": "Bearer " + foreign,
		"basic":   "Basic dXNlcjpwYXNz",
	} {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		if code := serve(r, req); code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, code)
		}
	}
}

func TestRequireAdmin(t *testing.T) {
	tokens := utils.NewTokenIssuer("secret", time.Hour)
	r := buildAuthApp(tokens)

	for role, want := range map[string]int{"user": http.StatusForbidden, "admin": http.StatusNoContent} {
		token, _ := tokens.Generate(1, role, role)
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		if code := serve(r, req); code != want {
			t.Fatalf("role %s: expected %d, got %d", role, want, code)
		}
	}
}
