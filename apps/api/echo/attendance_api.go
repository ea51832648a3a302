package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edumanage/backend/core"
	"github.com/edumanage/backend/core/school"
)

type attendanceApi struct {
	svc  *school.Service
	conf *core.Config
}

func registerAttendanceAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := attendanceApi{svc: deps.SchoolSvc, conf: deps.Conf}

	ag := g.Group("/attendance", jwt)
	ag.GET("", api.query, staffMiddleware())
	ag.POST("", api.saveSheet, staffMiddleware())
}

func (api *attendanceApi) query(ctx echo.Context) error {
	records, err := api.svc.Attendance.List(ctx.Request().Context())
	if err != nil {
		return err
	}
	date := ctx.QueryParam("date")
	studentID := ctx.QueryParam("studentId")

	out := make([]school.AttendanceRecord, 0, len(records))
	for _, rec := range records {
		if date != "" && rec.Date != date {
			continue
		}
		if studentID != "" && rec.StudentID != studentID {
			continue
		}
		out = append(out, rec)
	}
	return ctx.JSON(http.StatusOK, out)
}

func (api *attendanceApi) saveSheet(ctx echo.Context) error {
	var data school.AttendanceSheetInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AttendanceSheetInput")
	}
	var saved []school.AttendanceRecord
	err := commitCreate(ctx, api.conf, data, func(c context.Context, in school.AttendanceSheetInput) error {
		var err error
		saved, err = api.svc.SaveAttendanceSheet(c, in)
		return err
	})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, saved)
}
