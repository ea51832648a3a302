package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edumanage/backend/core"
	"github.com/edumanage/backend/core/school"
)

type feeApi struct {
	svc  *school.Service
	conf *core.Config
}

func registerFeeAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := feeApi{svc: deps.SchoolSvc, conf: deps.Conf}

	fg := g.Group("/fees", jwt)
	fg.GET("", api.query)
	fg.POST("", api.create, adminMiddleware())
	fg.PUT("/:id", api.update, adminMiddleware())
	fg.POST("/:id/payment", api.recordPayment, adminMiddleware())
	fg.DELETE("/:id", api.delete, adminMiddleware())
}

func (api *feeApi) query(ctx echo.Context) error {
	viewer, err := getContextViewer(ctx)
	if err != nil {
		return err
	}
	fees, err := api.svc.Fees.List(ctx.Request().Context())
	if err != nil {
		return err
	}
	students, err := api.svc.Students.List(ctx.Request().Context())
	if err != nil {
		return err
	}
	q := bindListQuery(ctx, "status", "type")
	scoped := school.ScopeFees(viewer, fees, students)
	return ctx.JSON(http.StatusOK, school.FeePipeline.Apply(scoped, q.Search, q.Filters))
}

func (api *feeApi) create(ctx echo.Context) error {
	var data school.FeeInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to FeeInput")
	}
	var created school.Fee
	err := commitCreate(ctx, api.conf, data, func(c context.Context, in school.FeeInput) error {
		var err error
		created, err = api.svc.CreateFee(c, in)
		return err
	})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, created)
}

func (api *feeApi) update(ctx echo.Context) error {
	var data school.FeeInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to FeeInput")
	}
	var updated school.Fee
	err := commitUpdate(ctx, api.conf, ctx.Param("id"), data, func(c context.Context, id string, in school.FeeInput) error {
		var err error
		updated, err = api.svc.UpdateFee(c, id, in)
		return err
	})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, updated)
}

func (api *feeApi) recordPayment(ctx echo.Context) error {
	fee, err := api.svc.RecordFeePayment(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, fee)
}

func (api *feeApi) delete(ctx echo.Context) error {
	if err := api.svc.Fees.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
