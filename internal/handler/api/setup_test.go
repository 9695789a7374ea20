//go:build unit

package api_test

import (
	"time"

	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/jwt"
	"shareit/tests/common/httptest"

	"github.com/gin-gonic/gin"
)

// newTestEngine returns a bare engine plus the actor middleware the router uses.
func newTestEngine() (*gin.Engine, gin.HandlerFunc) {
	gin.SetMode(gin.TestMode)
	reqdto.RegisterValidations()

	cfg := config.Config{Auth: config.AuthConfig{UserIDHeader: httptest.HeaderUserID}}
	actor := middleware.NewActorMiddleware(cfg, jwt.NewService("", time.Hour))
	return gin.New(), actor.RequireActor()
}
