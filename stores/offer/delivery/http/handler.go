package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/base/delivery"
	"github.com/x-xyz/aptos-market/domain"
	"github.com/x-xyz/aptos-market/domain/nft"
	"github.com/x-xyz/aptos-market/domain/offer"
)

type handler struct {
	ou offer.Usecase
}

func New(e *echo.Echo, ou offer.Usecase) {
	h := &handler{
		ou: ou,
	}
	g := e.Group("/nfts/:id/offers")
	g.GET("", h.getBook)
	g.POST("", h.make)
	g.POST("/:offerId/accept", h.accept)
}

func (h *handler) getBook(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		ID   uint64 `param:"id"`
		Live bool   `query:"live"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.NewValidationError("id", domain.ErrInvalidNumberFormat))
	}

	book, err := h.ou.FindBook(ctx, p.ID, p.Live)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, book)
}

func (h *handler) make(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		ID     uint64 `param:"id"`
		Amount string `json:"amount" validate:"required,amount"`
		// Expiration is a unix timestamp in seconds
		Expiration int64 `json:"expiration" validate:"required,min=1"`
	}
	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.NewValidationError("body", err))
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	d, err := decimal.NewFromString(p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.NewValidationError("amount", domain.ErrInvalidNumberFormat))
	}
	amount, err := nft.ToMinorUnits(d)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.NewValidationError("amount", err))
	}

	res, err := h.ou.Make(ctx, p.ID, amount, time.Unix(p.Expiration, 0))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) accept(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		ID      uint64 `param:"id"`
		OfferID uint64 `param:"offerId"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.NewValidationError("id", domain.ErrInvalidNumberFormat))
	}

	res, err := h.ou.Accept(ctx, p.ID, p.OfferID)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
