package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"biomind/ent"
	"biomind/internal/store"
)

func TestPasswordRoundtrip(t *testing.T) {
	hash, err := HashPassword("s3cret-passphrase")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret-passphrase" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword("s3cret-passphrase", hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("wrong", hash) {
		t.Error("wrong password accepted")
	}
}

func TestTokenRoundtrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	tok, err := issuer.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	id, err := issuer.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id != 42 {
		t.Errorf("id = %d, want 42", id)
	}
}

func TestVerify_Failures(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	t.Run("garbage", func(t *testing.T) {
		if _, err := issuer.Verify("not.a.token"); err != ErrInvalidToken {
			t.Errorf("err = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenIssuer("different-secret", time.Hour)
		tok, _ := other.Issue(1)
		if _, err := issuer.Verify(tok); err != ErrInvalidToken {
			t.Errorf("err = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   "1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		}
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if _, err := issuer.Verify(tok); err != ErrInvalidToken {
			t.Errorf("err = %v, want ErrInvalidToken", err)
		}
	})
}

type stubUserRepo struct {
	user *ent.User
}

func (s *stubUserRepo) Create(context.Context, store.CreateUserParams) (*ent.User, error) {
	panic("not used")
}

func (s *stubUserRepo) ByEmail(context.Context, string) (*ent.User, error) {
	panic("not used")
}

func (s *stubUserRepo) ByID(_ context.Context, id int) (*ent.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, store.ErrNotFound
	}
	return s.user, nil
}

func (s *stubUserRepo) SetProgress(context.Context, int, int, string) error {
	return nil
}

func newAuthRouter(issuer *TokenIssuer, users store.UserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Middleware(issuer, users), func(c *gin.Context) {
		u, ok := UserFrom(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": u.ID})
	})
	return r
}

func TestMiddleware(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	users := &stubUserRepo{user: &ent.User{ID: 42, IsActive: true}}
	router := newAuthRouter(issuer, users)

	t.Run("valid token", func(t *testing.T) {
		tok, _ := issuer.Issue(42)
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, body = %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		tok, _ := issuer.Issue(99)
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("disabled account", func(t *testing.T) {
		disabled := newAuthRouter(issuer, &stubUserRepo{user: &ent.User{ID: 42, IsActive: false}})
		tok, _ := issuer.Issue(42)
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		disabled.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}

func TestNewTokenIssuer_NonPositiveTTLFallsBack(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)
	tok, err := issuer.Issue(1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if id, err := issuer.Verify(tok); err != nil || id != 1 {
		t.Errorf("verify = (%d, %v), want the default ttl applied", id, err)
	}
}
