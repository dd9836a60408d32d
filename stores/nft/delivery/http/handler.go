package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/base/delivery"
	"github.com/x-xyz/aptos-market/domain"
	"github.com/x-xyz/aptos-market/domain/nft"
)

type handler struct {
	repo nft.Repository
}

func New(e *echo.Echo, repo nft.Repository) {
	h := &handler{
		repo: repo,
	}
	g := e.Group("/nfts/:id")
	g.GET("", h.getNft)
	g.GET("/gift", h.getGift)
}

type idParam struct {
	ID uint64 `param:"id"`
}

// getNft prefers the marketplace entry, which carries auction fields, and
// falls back to get_nft_details for unlisted ids
func (h *handler) getNft(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	p := &idParam{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.NewValidationError("id", domain.ErrInvalidNumberFormat))
	}

	record, err := h.repo.FindOne(ctx, p.ID)
	if errors.Is(err, domain.ErrNotFound) {
		record, err = h.repo.FindDetails(ctx, p.ID)
	}
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, record)
}

func (h *handler) getGift(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	p := &idParam{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.NewValidationError("id", domain.ErrInvalidNumberFormat))
	}

	gift, err := h.repo.FindGift(ctx, p.ID)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, gift)
}
