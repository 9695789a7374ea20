//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userHeader = "X-Sharer-User-Id"

func newActorRouter(tokens *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.Config{Auth: config.AuthConfig{UserIDHeader: userHeader}}
	m := middleware.NewActorMiddleware(cfg, tokens)

	r := gin.New()
	r.GET("/whoami", m.RequireActor(), func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	return r
}

func serve(r *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireActor(t *testing.T) {
	tokens := jwt.NewService("secret", time.Hour)
	token, err := tokens.GenerateToken(7)
	require.NoError(t, err)

	tests := []struct {
		name     string
		tokens   *jwt.Service
		headers  map[string]string
		wantCode int
		wantBody string
	}{
		{name: "header identity", tokens: tokens, headers: map[string]string{userHeader: "3"}, wantCode: http.StatusOK, wantBody: `{"id":3}`},
		{name: "header wins over token", tokens: tokens, headers: map[string]string{userHeader: "3", "Authorization": "Bearer " + token}, wantCode: http.StatusOK, wantBody: `{"id":3}`},
		{name: "non-numeric header", tokens: tokens, headers: map[string]string{userHeader: "abc"}, wantCode: http.StatusBadRequest},
		{name: "non-positive header", tokens: tokens, headers: map[string]string{userHeader: "0"}, wantCode: http.StatusBadRequest},
		{name: "bearer token", tokens: tokens, headers: map[string]string{"Authorization": "Bearer " + token}, wantCode: http.StatusOK, wantBody: `{"id":7}`},
		{name: "garbage token", tokens: tokens, headers: map[string]string{"Authorization": "Bearer nope"}, wantCode: http.StatusUnauthorized},
		{name: "token ignored when signing is off", tokens: jwt.NewService("", time.Hour), headers: map[string]string{"Authorization": "Bearer " + token}, wantCode: http.StatusUnauthorized},
		{name: "no identity", tokens: tokens, wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(newActorRouter(tt.tokens), tt.headers)

			assert.Equal(t, tt.wantCode, w.Code, w.Body.String())
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}
