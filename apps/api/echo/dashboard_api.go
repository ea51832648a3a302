package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edumanage/backend/core/school"
)

type dashboardApi struct {
	svc *school.Service
}

func registerDashboardAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := dashboardApi{svc: deps.SchoolSvc}

	dg := g.Group("/dashboard", jwt)
	dg.GET("/stats", api.stats)
}

func (api *dashboardApi) stats(ctx echo.Context) error {
	stats, err := api.svc.Stats(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, stats)
}
