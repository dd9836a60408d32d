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
	"github.com/x-xyz/aptos-market/domain/transaction"
)

type handler struct {
	tu transaction.Usecase
}

// New mounts the write actions under /nfts/:id
func New(e *echo.Echo, tu transaction.Usecase) {
	h := &handler{
		tu: tu,
	}
	g := e.Group("/nfts/:id")
	g.POST("/purchase", h.purchase)
	g.POST("/bid", h.placeBid)
	g.POST("/end-auction", h.endAuction)
	g.POST("/list", h.listForSale)
	g.POST("/auction", h.createAuction)
	g.POST("/transfer", h.transfer)
}

type idParam struct {
	ID uint64 `param:"id"`
}

// bind reads the path id and the json body into p
func bind(c echo.Context, p interface{}) (uint64, error) {
	id := &idParam{}
	if err := (&echo.DefaultBinder{}).BindPathParams(c, id); err != nil {
		return 0, domain.NewValidationError("id", domain.ErrInvalidNumberFormat)
	}
	if p == nil {
		return id.ID, nil
	}
	if err := c.Bind(p); err != nil {
		return 0, domain.NewValidationError("body", err)
	}
	if err := c.Validate(p); err != nil {
		return 0, err
	}
	return id.ID, nil
}

func minorUnits(field, major string) (nft.MinorUnits, error) {
	d, err := decimal.NewFromString(major)
	if err != nil {
		return 0, domain.NewValidationError(field, domain.ErrInvalidNumberFormat)
	}
	m, err := nft.ToMinorUnits(d)
	if err != nil {
		return 0, domain.NewValidationError(field, err)
	}
	return m, nil
}

func respond(c echo.Context, res *transaction.Result, err error) error {
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) purchase(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	id, err := bind(c, nil)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	res, err := h.tu.Purchase(ctx, id)
	return respond(c, res, err)
}

func (h *handler) placeBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Amount string `json:"amount" validate:"required,amount"`
	}
	p := &payload{}
	id, err := bind(c, p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	amount, err := minorUnits("amount", p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	res, err := h.tu.PlaceBid(ctx, id, amount)
	return respond(c, res, err)
}

func (h *handler) endAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	id, err := bind(c, nil)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	res, err := h.tu.EndAuction(ctx, id)
	return respond(c, res, err)
}

func (h *handler) listForSale(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Price string `json:"price" validate:"required,amount"`
	}
	p := &payload{}
	id, err := bind(c, p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	price, err := minorUnits("price", p.Price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	res, err := h.tu.ListForSale(ctx, id, price)
	return respond(c, res, err)
}

func (h *handler) createAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		StartingBid     string `json:"startingBid" validate:"required,amount"`
		DurationSeconds int64  `json:"durationSeconds" validate:"required,min=1"`
	}
	p := &payload{}
	id, err := bind(c, p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	startingBid, err := minorUnits("startingBid", p.StartingBid)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	res, err := h.tu.CreateAuction(ctx, id, startingBid, time.Duration(p.DurationSeconds)*time.Second)
	return respond(c, res, err)
}

func (h *handler) transfer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		To      string `json:"to" validate:"required,address"`
		Message string `json:"message"`
		IsGift  bool   `json:"isGift"`
	}
	p := &payload{}
	id, err := bind(c, p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	res, err := h.tu.TransferWithMessage(ctx, id, domain.Address(p.To), p.Message, p.IsGift)
	return respond(c, res, err)
}
