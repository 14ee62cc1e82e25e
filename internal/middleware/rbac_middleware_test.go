package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/marvik-ai/success-orchestry-api/internal/domain"
	"github.com/marvik-ai/success-orchestry-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeEnforcer struct {
	allowed bool
	err     error
	got     domain.EnforceRequest
}

func (f *fakeEnforcer) Enforce(req domain.EnforceRequest) (bool, error) {
	f.got = req
	return f.allowed, f.err
}

func rbacRouter(role string, enforcer middleware.RBACService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/employees",
		func(c *gin.Context) {
			if role != "" {
				c.Set("role", role)
			}
		},
		middleware.RBACAuthorize(enforcer, "employee", "read"),
		func(c *gin.Context) { c.Status(http.StatusNoContent) },
	)
	return r
}

func TestRBACAuthorize(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		enforcer := &fakeEnforcer{allowed: true}
		w := httptest.NewRecorder()

		rbacRouter("viewer", enforcer).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, domain.EnforceRequest{Role: "viewer", Resource: "employee", Action: "read"}, enforcer.got)
	})

	t.Run("denied", func(t *testing.T) {
		w := httptest.NewRecorder()

		rbacRouter("viewer", &fakeEnforcer{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("no role", func(t *testing.T) {
		w := httptest.NewRecorder()

		rbacRouter("", &fakeEnforcer{allowed: true}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("enforcer failure", func(t *testing.T) {
		w := httptest.NewRecorder()

		rbacRouter("hr", &fakeEnforcer{err: errors.New("policy broken")}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "policy broken")
	})
}
