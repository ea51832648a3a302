package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edumanage/backend/core"
	"github.com/edumanage/backend/core/school"
)

type classApi struct {
	svc  *school.Service
	conf *core.Config
}

func registerClassAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := classApi{svc: deps.SchoolSvc, conf: deps.Conf}

	cg := g.Group("/classes", jwt)
	cg.GET("", api.query)
	cg.GET("/:id", api.retrieve)
	cg.POST("", api.create, adminMiddleware())
	cg.PUT("/:id", api.update, adminMiddleware())
	cg.DELETE("/:id", api.delete, adminMiddleware())
}

func (api *classApi) query(ctx echo.Context) error {
	viewer, err := getContextViewer(ctx)
	if err != nil {
		return err
	}
	classes, err := api.svc.Classes.List(ctx.Request().Context())
	if err != nil {
		return err
	}
	students, err := api.svc.Students.List(ctx.Request().Context())
	if err != nil {
		return err
	}
	q := bindListQuery(ctx, "grade")
	scoped := school.ScopeClasses(viewer, classes, students)
	return ctx.JSON(http.StatusOK, school.ClassPipeline.Apply(scoped, q.Search, q.Filters))
}

func (api *classApi) retrieve(ctx echo.Context) error {
	cls, err := api.svc.Classes.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, cls)
}

func (api *classApi) create(ctx echo.Context) error {
	var data school.ClassInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ClassInput")
	}
	var created school.Class
	err := commitCreate(ctx, api.conf, data, func(c context.Context, in school.ClassInput) error {
		var err error
		created, err = api.svc.CreateClass(c, in)
		return err
	})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, created)
}

func (api *classApi) update(ctx echo.Context) error {
	var data school.ClassInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ClassInput")
	}
	var updated school.Class
	err := commitUpdate(ctx, api.conf, ctx.Param("id"), data, func(c context.Context, id string, in school.ClassInput) error {
		var err error
		updated, err = api.svc.UpdateClass(c, id, in)
		return err
	})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, updated)
}

func (api *classApi) delete(ctx echo.Context) error {
	if err := api.svc.Classes.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
