package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edumanage/backend/core"
	"github.com/edumanage/backend/core/school"
)

type notificationApi struct {
	svc  *school.Service
	conf *core.Config
}

func registerNotificationAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := notificationApi{svc: deps.SchoolSvc, conf: deps.Conf}

	ng := g.Group("/notifications", jwt)
	ng.GET("", api.query)
	ng.GET("/unread-count", api.unreadCount)
	ng.POST("", api.create, staffMiddleware())
	ng.PUT("/read-all", api.markAllRead)
	ng.PUT("/:id/read", api.markRead)
	ng.DELETE("/:id", api.delete, staffMiddleware())
}

func (api *notificationApi) query(ctx echo.Context) error {
	items, err := api.svc.Notifications.List(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, items)
}

func (api *notificationApi) unreadCount(ctx echo.Context) error {
	count, err := api.svc.UnreadCount(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"unread": count})
}

func (api *notificationApi) create(ctx echo.Context) error {
	var data school.NotificationInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NotificationInput")
	}
	var created school.Notification
	err := commitCreate(ctx, api.conf, data, func(c context.Context, in school.NotificationInput) error {
		var err error
		created, err = api.svc.AddNotification(c, in)
		return err
	})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, created)
}

func (api *notificationApi) markRead(ctx echo.Context) error {
	n, err := api.svc.MarkNotificationRead(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, n)
}

func (api *notificationApi) markAllRead(ctx echo.Context) error {
	if err := api.svc.MarkAllNotificationsRead(ctx.Request().Context()); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "all notifications read"})
}

func (api *notificationApi) delete(ctx echo.Context) error {
	if err := api.svc.Notifications.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
