package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"grocery/utils"

	"github.com/gin-gonic/gin"
)

const testSecret = "test-secret"

func newGateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/mine", AuthMiddleware(testSecret), func(c *gin.Context) {
		c.JSON(200, gin.H{"userId": utils.CurrentUserID(c)})
	})
	r.GET("/admin", AuthMiddleware(testSecret, "admin"), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	return r
}

func doGet(t *testing.T, r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newGateRouter()

	customer, err := utils.GenerateToken(7, "customer", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	admin, err := utils.GenerateToken(1, "admin", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	t.Run("no token -> 401", func(t *testing.T) {
		if w := doGet(t, r, "/mine", ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("got %d", w.Code)
		}
	})

	t.Run("garbage token -> 401", func(t *testing.T) {
		if w := doGet(t, r, "/mine", "not-a-jwt"); w.Code != http.StatusUnauthorized {
			t.Fatalf("got %d", w.Code)
		}
	})

	t.Run("wrong secret -> 401", func(t *testing.T) {
		tok, err := utils.GenerateToken(7, "customer", "other-secret", time.Hour)
		if err != nil {
			t.Fatalf("token: %v", err)
		}
		if w := doGet(t, r, "/mine", tok); w.Code != http.StatusUnauthorized {
			t.Fatalf("got %d", w.Code)
		}
	})

	t.Run("valid token passes and carries the user id", func(t *testing.T) {
		w := doGet(t, r, "/mine", customer)
		if w.Code != http.StatusOK {
			t.Fatalf("got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("customer on the admin gate -> 403", func(t *testing.T) {
		if w := doGet(t, r, "/admin", customer); w.Code != http.StatusForbidden {
			t.Fatalf("got %d", w.Code)
		}
	})

	t.Run("admin on the admin gate -> 200", func(t *testing.T) {
		if w := doGet(t, r, "/admin", admin); w.Code != http.StatusOK {
			t.Fatalf("got %d", w.Code)
		}
	})
}
