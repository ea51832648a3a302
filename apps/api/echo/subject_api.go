package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edumanage/backend/core"
	"github.com/edumanage/backend/core/school"
)

type subjectApi struct {
	svc  *school.Service
	conf *core.Config
}

func registerSubjectAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := subjectApi{svc: deps.SchoolSvc, conf: deps.Conf}

	sg := g.Group("/subjects", jwt)
	sg.GET("", api.query)
	sg.GET("/:id", api.retrieve)
	sg.POST("", api.create, adminMiddleware())
	sg.PUT("/:id", api.update, adminMiddleware())
	sg.DELETE("/:id", api.delete, adminMiddleware())
}

func (api *subjectApi) query(ctx echo.Context) error {
	viewer, err := getContextViewer(ctx)
	if err != nil {
		return err
	}
	subjects, err := api.svc.Subjects.List(ctx.Request().Context())
	if err != nil {
		return err
	}
	students, err := api.svc.Students.List(ctx.Request().Context())
	if err != nil {
		return err
	}
	q := bindListQuery(ctx, "grade")
	scoped := school.ScopeSubjects(viewer, subjects, students)
	return ctx.JSON(http.StatusOK, school.SubjectPipeline.Apply(scoped, q.Search, q.Filters))
}

func (api *subjectApi) retrieve(ctx echo.Context) error {
	sub, err := api.svc.Subjects.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sub)
}

func (api *subjectApi) create(ctx echo.Context) error {
	var data school.SubjectInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SubjectInput")
	}
	var created school.Subject
	err := commitCreate(ctx, api.conf, data, func(c context.Context, in school.SubjectInput) error {
		var err error
		created, err = api.svc.CreateSubject(c, in)
		return err
	})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, created)
}

func (api *subjectApi) update(ctx echo.Context) error {
	var data school.SubjectInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SubjectInput")
	}
	var updated school.Subject
	err := commitUpdate(ctx, api.conf, ctx.Param("id"), data, func(c context.Context, id string, in school.SubjectInput) error {
		var err error
		updated, err = api.svc.UpdateSubject(c, id, in)
		return err
	})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, updated)
}

func (api *subjectApi) delete(ctx echo.Context) error {
	if err := api.svc.Subjects.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
