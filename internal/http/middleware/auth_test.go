package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpack/carwash-service/internal/model"
)

type parserStub struct {
	principal model.Principal
	err       error
}

func (p parserStub) Parse(string) (model.Principal, error) {
	return p.principal, p.err
}

func newAuthRouter(parser TokenParser) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth(parser))
	router.GET("/ping", func(c *gin.Context) {
		principal, ok := MustPrincipal(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no principal"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": principal.Role})
	})
	return router
}

func TestAuthMissingHeader(t *testing.T) {
	router := newAuthRouter(parserStub{})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "missing bearer token")
}

func TestAuthInvalidToken(t *testing.T) {
	router := newAuthRouter(parserStub{err: errors.New("bad signature")})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer whatever")
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "invalid token")
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(parser TokenParser) *gin.Engine {
		router := gin.New()
		router.DELETE("/things/:id", Auth(parser), RequireAdmin(), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "deleted"})
		})
		return router
	}

	do := func(router *gin.Engine) *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/things/1", nil)
		req.Header.Set("Authorization", "Bearer token")
		router.ServeHTTP(recorder, req)
		return recorder
	}

	recorder := do(newRouter(parserStub{principal: model.Principal{UserID: uuid.New(), Role: "STAFF"}}))
	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "admin role required")

	recorder = do(newRouter(parserStub{principal: model.Principal{UserID: uuid.New(), Role: "ADMIN"}}))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestAuthSetsPrincipal(t *testing.T) {
	router := newAuthRouter(parserStub{principal: model.Principal{UserID: uuid.New(), Role: "ADMIN"}})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer token")
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "ADMIN")
}
