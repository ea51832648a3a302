package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edumanage/backend/core"
	"github.com/edumanage/backend/core/school"
	"github.com/edumanage/backend/services/export"
)

type resultApi struct {
	svc  *school.Service
	conf *core.Config
}

func registerResultAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := resultApi{svc: deps.SchoolSvc, conf: deps.Conf}

	rg := g.Group("/results", jwt)
	rg.GET("", api.query)
	rg.GET("/export/csv", api.exportCSV)
	rg.GET("/export/xlsx", api.exportXLSX, staffMiddleware())
	rg.POST("", api.create, staffMiddleware())
	rg.PUT("/:id", api.update, staffMiddleware())
	rg.DELETE("/:id", api.delete, staffMiddleware())
}

// scopedResults is the viewer's projection with search and filters applied,
// shared by the list and both export handlers.
func (api *resultApi) scopedResults(ctx echo.Context) ([]school.ExamResult, error) {
	viewer, err := getContextViewer(ctx)
	if err != nil {
		return nil, err
	}
	results, err := api.svc.Results.List(ctx.Request().Context())
	if err != nil {
		return nil, err
	}
	students, err := api.svc.Students.List(ctx.Request().Context())
	if err != nil {
		return nil, err
	}
	q := bindListQuery(ctx, "examType", "term", "status")
	scoped := school.ScopeResults(viewer, results, students)
	return school.ResultPipeline.Apply(scoped, q.Search, q.Filters), nil
}

func (api *resultApi) query(ctx echo.Context) error {
	results, err := api.scopedResults(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, results)
}

func (api *resultApi) exportCSV(ctx echo.Context) error {
	results, err := api.scopedResults(ctx)
	if err != nil {
		return err
	}
	buf, err := export.ResultsCSV(results)
	if err != nil {
		return errors.Wrap(err, "rendering results CSV")
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="exam_results.csv"`)
	return ctx.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

func (api *resultApi) exportXLSX(ctx echo.Context) error {
	results, err := api.scopedResults(ctx)
	if err != nil {
		return err
	}
	wb, err := export.NewResultsWorkbook(results)
	if err != nil {
		return errors.Wrap(err, "building results workbook")
	}
	buf, err := wb.Bytes()
	if err != nil {
		return errors.Wrap(err, "rendering results workbook")
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="exam_results.xlsx"`)
	return ctx.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (api *resultApi) create(ctx echo.Context) error {
	var data school.ExamResultInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ExamResultInput")
	}
	var created school.ExamResult
	err := commitCreate(ctx, api.conf, data, func(c context.Context, in school.ExamResultInput) error {
		var err error
		created, err = api.svc.CreateResult(c, in)
		return err
	})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, created)
}

func (api *resultApi) update(ctx echo.Context) error {
	var data school.ExamResultInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ExamResultInput")
	}
	var updated school.ExamResult
	err := commitUpdate(ctx, api.conf, ctx.Param("id"), data, func(c context.Context, id string, in school.ExamResultInput) error {
		var err error
		updated, err = api.svc.UpdateResult(c, id, in)
		return err
	})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, updated)
}

func (api *resultApi) delete(ctx echo.Context) error {
	if err := api.svc.Results.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
