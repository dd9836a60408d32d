package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/base/delivery"
	"github.com/x-xyz/aptos-market/domain"
	"github.com/x-xyz/aptos-market/domain/listing"
)

type handler struct {
	lu listing.Usecase
}

func New(e *echo.Echo, lu listing.Usecase) {
	h := &handler{
		lu: lu,
	}
	g := e.Group("/listings")
	g.GET("", h.query)
	g.GET("/view", h.view)
	g.PUT("/view/filters", h.setFilters)
	g.PUT("/view/page", h.setPage)
	g.POST("/refresh", h.refresh)
	g.POST("/sweep", h.sweep)
}

// respondView keeps the last good snapshot in the body when the fetch failed
func respondView(c echo.Context, v *listing.View, err error) error {
	if err != nil {
		if v == nil {
			return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
		}
		return delivery.MakeErrorWithData(c, err, v)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, v)
}

func (h *handler) query(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &listing.SearchParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.NewValidationError("query", err))
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	filters, err := p.ToFilterState()
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	page, err := h.lu.Query(ctx, filters, p.PageOrDefault())
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, page)
}

func (h *handler) view(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	v, err := h.lu.View(ctx)
	return respondView(c, v, err)
}

func (h *handler) setFilters(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &listing.SearchParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.NewValidationError("body", err))
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	filters, err := p.ToFilterState()
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	v, err := h.lu.SetFilters(ctx, filters)
	return respondView(c, v, err)
}

func (h *handler) setPage(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Page int `json:"page" validate:"required,min=1"`
	}
	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.NewValidationError("body", err))
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	v, err := h.lu.SetPage(ctx, p.Page)
	return respondView(c, v, err)
}

func (h *handler) refresh(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	if err := h.lu.Refresh(ctx); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	v, err := h.lu.View(ctx)
	return respondView(c, v, err)
}

func (h *handler) sweep(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	invoked, err := h.lu.Sweep(ctx, time.Now())
	res := map[string]interface{}{"invoked": invoked}
	if err != nil {
		return delivery.MakeErrorWithData(c, err, res)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
