package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edumanage/backend/core"
	"github.com/edumanage/backend/core/school"
)

type teacherApi struct {
	svc  *school.Service
	conf *core.Config
}

func registerTeacherAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := teacherApi{svc: deps.SchoolSvc, conf: deps.Conf}

	tg := g.Group("/teachers", jwt)
	tg.GET("", api.query)
	tg.GET("/:id", api.retrieve)
	tg.POST("", api.create, adminMiddleware())
	tg.PUT("/:id", api.update, adminMiddleware())
	tg.DELETE("/:id", api.delete, adminMiddleware())
}

func (api *teacherApi) query(ctx echo.Context) error {
	teachers, err := api.svc.Teachers.List(ctx.Request().Context())
	if err != nil {
		return err
	}
	q := bindListQuery(ctx, "subject")
	return ctx.JSON(http.StatusOK, school.TeacherPipeline.Apply(teachers, q.Search, q.Filters))
}

func (api *teacherApi) retrieve(ctx echo.Context) error {
	tch, err := api.svc.Teachers.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, tch)
}

func (api *teacherApi) create(ctx echo.Context) error {
	var data school.TeacherInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to TeacherInput")
	}
	var created school.Teacher
	err := commitCreate(ctx, api.conf, data, func(c context.Context, in school.TeacherInput) error {
		var err error
		created, err = api.svc.CreateTeacher(c, in)
		return err
	})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, created)
}

func (api *teacherApi) update(ctx echo.Context) error {
	var data school.TeacherInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to TeacherInput")
	}
	var updated school.Teacher
	err := commitUpdate(ctx, api.conf, ctx.Param("id"), data, func(c context.Context, id string, in school.TeacherInput) error {
		var err error
		updated, err = api.svc.UpdateTeacher(c, id, in)
		return err
	})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, updated)
}

func (api *teacherApi) delete(ctx echo.Context) error {
	if err := api.svc.Teachers.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
