package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/userhub/internal/health"
	"github.com/polkiloo/userhub/internal/server/http/handlers"
	"github.com/polkiloo/userhub/internal/usecase"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(newRouter)

type routerParams struct {
	fx.In

	Users  *usecase.UserUseCase
	Probes []health.Probe `group:"probes"`
	Logger *slog.Logger
}

func newRouter(p routerParams) *gin.Engine {
	var users handlers.UserService = p.Users
	return Setup(users, p.Probes, p.Logger)
}
