package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/base/delivery"
	"github.com/x-xyz/aptos-market/domain"
	"github.com/x-xyz/aptos-market/domain/collection"
	"github.com/x-xyz/aptos-market/domain/listing"
	"github.com/x-xyz/aptos-market/middleware"
)

type handler struct {
	cu collection.Usecase
}

func New(e *echo.Echo, cu collection.Usecase) {
	h := &handler{
		cu: cu,
	}
	g := e.Group("/owners")
	g.GET("/:owner/nfts", h.getOwned, middleware.IsValidAddress("owner"))
}

func (h *handler) getOwned(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	owner := domain.Address(c.Param("owner"))

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

	page, err := h.cu.Owned(ctx, owner, filters, p.PageOrDefault())
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, page)
}
