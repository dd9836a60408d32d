package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/base/delivery"
	"github.com/x-xyz/aptos-market/domain"
	"github.com/x-xyz/aptos-market/domain/notification"
)

const defaultLimit = 20

type handler struct {
	nu notification.Usecase
}

func New(e *echo.Echo, nu notification.Usecase) {
	h := &handler{
		nu: nu,
	}
	g := e.Group("/notifications")
	g.GET("", h.getRecent)
}

func (h *handler) getRecent(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.NewValidationError("limit", domain.ErrInvalidNumberFormat))
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.Limit == 0 {
		p.Limit = defaultLimit
	}
	return delivery.MakeJsonResp(c, http.StatusOK, h.nu.Recent(ctx, p.Limit))
}
