package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/base/delivery"
	"github.com/x-xyz/aptos-market/domain"
	"github.com/x-xyz/aptos-market/domain/analytics"
	"github.com/x-xyz/aptos-market/middleware"
)

type handler struct {
	au analytics.Usecase
}

// New mounts the analytics routes, responses are cached for cacheDuration
func New(e *echo.Echo, au analytics.Usecase, cacheDuration time.Duration) {
	h := &handler{
		au: au,
	}
	g := e.Group("/analytics")
	g.GET("/metrics", h.getMetrics, middleware.CacheHttp(cacheDuration))
	g.GET("/series", h.getSeries, middleware.CacheHttp(cacheDuration))
	g.GET("/minting", h.getMinting)
}

func (h *handler) getMetrics(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	m, err := h.au.Metrics(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, m)
}

func (h *handler) getSeries(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Days int `query:"days" validate:"omitempty,min=1,max=365"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.NewValidationError("days", domain.ErrInvalidNumberFormat))
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	series, err := h.au.TimeSeries(ctx, p.Days)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, series)
}

func (h *handler) getMinting(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Account string `query:"account" validate:"omitempty,address"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.NewValidationError("account", err))
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	cfg, err := h.au.MintingConfig(ctx, domain.Address(p.Account))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, cfg)
}
