package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edumanage/backend/core"
	"github.com/edumanage/backend/core/school"
)

type timetableApi struct {
	svc  *school.Service
	conf *core.Config
}

func registerTimetableAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := timetableApi{svc: deps.SchoolSvc, conf: deps.Conf}

	tg := g.Group("/timetable", jwt)
	tg.GET("", api.query)
	tg.POST("", api.create, adminMiddleware())
	tg.PUT("/:id", api.update, adminMiddleware())
	tg.DELETE("/:id", api.delete, adminMiddleware())
}

func (api *timetableApi) query(ctx echo.Context) error {
	viewer, err := getContextViewer(ctx)
	if err != nil {
		return err
	}
	items, err := api.svc.Timetable.List(ctx.Request().Context())
	if err != nil {
		return err
	}
	students, err := api.svc.Students.List(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, school.ScopeTimetable(viewer, items, students))
}

func (api *timetableApi) create(ctx echo.Context) error {
	var data school.TimetableInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to TimetableInput")
	}
	var created school.TimetableItem
	err := commitCreate(ctx, api.conf, data, func(c context.Context, in school.TimetableInput) error {
		var err error
		created, err = api.svc.CreateTimetableItem(c, in)
		return err
	})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, created)
}

func (api *timetableApi) update(ctx echo.Context) error {
	var data school.TimetableInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to TimetableInput")
	}
	var updated school.TimetableItem
	err := commitUpdate(ctx, api.conf, ctx.Param("id"), data, func(c context.Context, id string, in school.TimetableInput) error {
		var err error
		updated, err = api.svc.UpdateTimetableItem(c, id, in)
		return err
	})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, updated)
}

func (api *timetableApi) delete(ctx echo.Context) error {
	if err := api.svc.Timetable.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
