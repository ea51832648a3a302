package echoapi

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/edumanage/backend/core"
	"github.com/edumanage/backend/core/entity"
	"github.com/edumanage/backend/core/school"
)

// Each mutating request runs through its own form session: open, validate
// the bound draft, wait out the configured commit latency, commit to the
// service. Validation failures surface as 400s without touching any store.

func commitCreate[D any](ctx echo.Context, conf *core.Config, data D, create func(context.Context, D) error) error {
	form := entity.FormSession[D]{
		Validate: func(d D) error { return school.ValidateInput(ctx.Request().Context(), d) },
		Create:   create,
		Latency:  commitLatency(conf),
	}
	form.OpenCreate(data)
	return form.Commit(ctx.Request().Context())
}

func commitUpdate[D any](ctx echo.Context, conf *core.Config, id string, data D, update func(context.Context, string, D) error) error {
	form := entity.FormSession[D]{
		Validate: func(d D) error { return school.ValidateInput(ctx.Request().Context(), d) },
		Update:   update,
		Latency:  commitLatency(conf),
	}
	form.OpenEdit(id, data)
	return form.Commit(ctx.Request().Context())
}
