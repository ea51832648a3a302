package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edumanage/backend/core"
	"github.com/edumanage/backend/core/school"
)

type examApi struct {
	svc  *school.Service
	conf *core.Config
}

func registerExamAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := examApi{svc: deps.SchoolSvc, conf: deps.Conf}

	eg := g.Group("/exams", jwt)
	eg.GET("", api.query)
	eg.POST("", api.create, staffMiddleware())
	eg.PUT("/:id", api.update, staffMiddleware())
	eg.DELETE("/:id", api.delete, staffMiddleware())
}

func (api *examApi) query(ctx echo.Context) error {
	viewer, err := getContextViewer(ctx)
	if err != nil {
		return err
	}
	exams, err := api.svc.Exams.List(ctx.Request().Context())
	if err != nil {
		return err
	}
	students, err := api.svc.Students.List(ctx.Request().Context())
	if err != nil {
		return err
	}
	q := bindListQuery(ctx, "grade", "subject")
	scoped := school.ScopeExams(viewer, exams, students)
	return ctx.JSON(http.StatusOK, school.ExamPipeline.Apply(scoped, q.Search, q.Filters))
}

func (api *examApi) create(ctx echo.Context) error {
	var data school.ExamInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ExamInput")
	}
	var created school.Exam
	err := commitCreate(ctx, api.conf, data, func(c context.Context, in school.ExamInput) error {
		var err error
		created, err = api.svc.CreateExam(c, in)
		return err
	})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, created)
}

func (api *examApi) update(ctx echo.Context) error {
	var data school.ExamInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ExamInput")
	}
	var updated school.Exam
	err := commitUpdate(ctx, api.conf, ctx.Param("id"), data, func(c context.Context, id string, in school.ExamInput) error {
		var err error
		updated, err = api.svc.UpdateExam(c, id, in)
		return err
	})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, updated)
}

func (api *examApi) delete(ctx echo.Context) error {
	if err := api.svc.Exams.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
