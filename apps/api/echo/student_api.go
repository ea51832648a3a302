package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edumanage/backend/core"
	"github.com/edumanage/backend/core/school"
)

type studentApi struct {
	svc  *school.Service
	conf *core.Config
}

func registerStudentAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := studentApi{svc: deps.SchoolSvc, conf: deps.Conf}

	sg := g.Group("/students", jwt)
	sg.GET("", api.query)
	sg.GET("/:id", api.retrieve, staffMiddleware())
	sg.POST("", api.create, adminMiddleware())
	sg.PUT("/:id", api.update, adminMiddleware())
	sg.DELETE("/:id", api.delete, adminMiddleware())
}

func (api *studentApi) query(ctx echo.Context) error {
	viewer, err := getContextViewer(ctx)
	if err != nil {
		return err
	}
	students, err := api.svc.Students.List(ctx.Request().Context())
	if err != nil {
		return err
	}
	q := bindListQuery(ctx, "grade", "section", "status")
	scoped := school.ScopeStudents(viewer, students)
	return ctx.JSON(http.StatusOK, school.StudentPipeline.Apply(scoped, q.Search, q.Filters))
}

func (api *studentApi) retrieve(ctx echo.Context) error {
	stu, err := api.svc.Students.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, stu)
}

func (api *studentApi) create(ctx echo.Context) error {
	var data school.NewStudentInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudentInput")
	}
	var created school.Student
	err := commitCreate(ctx, api.conf, data, func(c context.Context, in school.NewStudentInput) error {
		var err error
		created, err = api.svc.CreateStudent(c, in)
		return err
	})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, created)
}

func (api *studentApi) update(ctx echo.Context) error {
	var data school.UpdateStudentInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateStudentInput")
	}
	var updated school.Student
	err := commitUpdate(ctx, api.conf, ctx.Param("id"), data, func(c context.Context, id string, in school.UpdateStudentInput) error {
		var err error
		updated, err = api.svc.UpdateStudent(c, id, in)
		return err
	})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, updated)
}

func (api *studentApi) delete(ctx echo.Context) error {
	if err := api.svc.Students.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
