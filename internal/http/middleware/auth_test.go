package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/rathoremon/car-repair-sub000/domain"
	"github.com/rathoremon/car-repair-sub000/internal/mocks"
)

func newProtectedRouter(tokens domain.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewAuthMW(tokens).WithJWT())
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"accountID": c.GetString("account_id"),
			"role":      c.GetString("account_role"),
		})
	})
	return r
}

func performAuthed(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWithJWT(t *testing.T) {
	t.Run("missing header is 401", func(t *testing.T) {
		r := newProtectedRouter(mocks.NewMockTokenService())
		assert.Equal(t, http.StatusUnauthorized, performAuthed(r, "").Code)
	})

	t.Run("non-bearer header is 401", func(t *testing.T) {
		r := newProtectedRouter(mocks.NewMockTokenService())
		assert.Equal(t, http.StatusUnauthorized, performAuthed(r, "Basic abc").Code)
	})

	t.Run("invalid token is 401", func(t *testing.T) {
		r := newProtectedRouter(mocks.NewMockTokenService())
		assert.Equal(t, http.StatusUnauthorized, performAuthed(r, "Bearer garbage").Code)
	})

	t.Run("expired token is 401", func(t *testing.T) {
		tokens := mocks.NewMockTokenService()
		tokens.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
			return nil, domain.ErrTokenExpired
		}
		r := newProtectedRouter(tokens)
		w := performAuthed(r, "Bearer old")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "expired")
	})

	t.Run("valid token exposes identity", func(t *testing.T) {
		tokens := mocks.NewMockTokenService()
		tokens.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
			assert.Equal(t, "good", token)
			return &domain.TokenClaims{AccountID: "acc-1", Role: domain.RoleProvider}, nil
		}
		r := newProtectedRouter(tokens)
		w := performAuthed(r, "Bearer good")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "acc-1")
		assert.Contains(t, w.Body.String(), "provider")
	})
}
