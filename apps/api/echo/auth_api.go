package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edumanage/backend/core"
	"github.com/edumanage/backend/core/session"
)

type authApi struct {
	svc  *session.Service
	conf *core.Config
}

func registerAuthAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := authApi{svc: deps.SessionSvc, conf: deps.Conf}

	ag := g.Group("/auth")
	ag.POST("/login", api.login)

	pg := g.Group("/profile", jwt)
	pg.GET("", api.retrieveProfile)
	pg.PUT("", api.updateProfile)
	pg.PUT("/password", api.changePassword)
}

func (api *authApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := core.TranslateValidationErrors(core.Validate.Struct(data)); err != nil {
		return err
	}

	usr, err := authenticate(ctx.Request().Context(), data.Email, session.Role(data.Role), api.svc)
	if err != nil {
		return err
	}
	token, err := GenerateToken(GetUserClaims(api.conf, usr))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, User: usr.Public()})
}

func (api *authApi) retrieveProfile(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}
	usr, err := api.svc.GetUser(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, usr.Public())
}

func (api *authApi) updateProfile(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}
	var data session.ProfileInput
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ProfileInput")
	}
	usr, err := api.svc.UpdateProfile(ctx.Request().Context(), claims.Subject, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, usr.Public())
}

func (api *authApi) changePassword(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}
	var data session.PasswordInput
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to PasswordInput")
	}
	if err = api.svc.ChangePassword(ctx.Request().Context(), claims.Subject, data); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "password updated"})
}
