package offer

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/domain/nft"
	"github.com/x-xyz/aptos-market/domain/transaction"
)

type Item struct {
	*nft.Offer
	AmountMajor decimal.Decimal `json:"amountMajor"`
	Live        bool            `json:"live"`
	Expired     bool            `json:"expired"`
}

// Book is every offer on one nft as reported by the chain.
type Book struct {
	NftID  uint64  `json:"nftId"`
	Offers []*Item `json:"offers"`
	// Best is the highest live offer, nil when none is live
	Best *Item `json:"best,omitempty"`
}

type Usecase interface {
	FindBook(c ctx.Ctx, nftID uint64, liveOnly bool) (*Book, error)
	Make(c ctx.Ctx, nftID uint64, amount nft.MinorUnits, expiration time.Time) (*transaction.Result, error)
	// Accept checks the offer is still live before submitting
	Accept(c ctx.Ctx, nftID uint64, offerID uint64) (*transaction.Result, error)
}
