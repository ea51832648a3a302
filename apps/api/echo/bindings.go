package echoapi

import (
	"github.com/labstack/echo/v4"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"` // accepted, never checked
	Role     string `json:"role" validate:"required,oneof=admin teacher student"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

type SuccessResponse struct {
	Success string `json:"success"`
}

// ListQuery carries the free-text search and discrete filter inputs every
// list endpoint accepts.
type ListQuery struct {
	Search  string
	Filters map[string]string
}

// bindListQuery reads ?q= plus the named discrete filter params.
func bindListQuery(ctx echo.Context, filterNames ...string) ListQuery {
	q := ListQuery{
		Search:  ctx.QueryParam("q"),
		Filters: make(map[string]string, len(filterNames)),
	}
	for _, name := range filterNames {
		if val := ctx.QueryParam(name); val != "" {
			q.Filters[name] = val
		}
	}
	return q
}
