package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edumanage/backend/core"
	"github.com/edumanage/backend/core/school"
)

type assignmentApi struct {
	svc  *school.Service
	conf *core.Config
}

func registerAssignmentAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := assignmentApi{svc: deps.SchoolSvc, conf: deps.Conf}

	ag := g.Group("/assignments", jwt)
	ag.GET("", api.query)
	ag.POST("", api.create, staffMiddleware())
	ag.PUT("/:id", api.update, staffMiddleware())
	ag.DELETE("/:id", api.delete, staffMiddleware())
}

func (api *assignmentApi) query(ctx echo.Context) error {
	viewer, err := getContextViewer(ctx)
	if err != nil {
		return err
	}
	items, err := api.svc.Assignments.List(ctx.Request().Context())
	if err != nil {
		return err
	}
	students, err := api.svc.Students.List(ctx.Request().Context())
	if err != nil {
		return err
	}
	q := bindListQuery(ctx, "status", "grade")
	scoped := school.ScopeAssignments(viewer, items, students)
	return ctx.JSON(http.StatusOK, school.AssignmentPipeline.Apply(scoped, q.Search, q.Filters))
}

func (api *assignmentApi) create(ctx echo.Context) error {
	var data school.AssignmentInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AssignmentInput")
	}
	var created school.Assignment
	err := commitCreate(ctx, api.conf, data, func(c context.Context, in school.AssignmentInput) error {
		var err error
		created, err = api.svc.CreateAssignment(c, in)
		return err
	})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, created)
}

func (api *assignmentApi) update(ctx echo.Context) error {
	var data school.AssignmentInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AssignmentInput")
	}
	var updated school.Assignment
	err := commitUpdate(ctx, api.conf, ctx.Param("id"), data, func(c context.Context, id string, in school.AssignmentInput) error {
		var err error
		updated, err = api.svc.UpdateAssignment(c, id, in)
		return err
	})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, updated)
}

func (api *assignmentApi) delete(ctx echo.Context) error {
	if err := api.svc.Assignments.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
