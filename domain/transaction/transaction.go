package transaction

import (
	"time"

	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/domain"
	"github.com/x-xyz/aptos-market/domain/nft"
)

const ModuleName = nft.MarketplaceModule

// entry functions of the marketplace module
const (
	FuncPurchaseNft            = "purchase_nft"
	FuncPlaceBid               = "place_bid"
	FuncEndAuction             = "end_auction"
	FuncListForSale            = "list_for_sale"
	FuncCreateAuction          = "create_auction"
	FuncTransferNftWithMessage = "transfer_nft_with_message"
	FuncMakeOffer              = "make_offer"
	FuncAcceptOffer            = "accept_offer"
)

// MinAuctionIncrement is the min increment passed to create_auction, 0.1 major.
const MinAuctionIncrement = nft.MinorUnits(nft.MinorUnitsPerMajor / 10)

type Result struct {
	Hash     domain.TxHash `json:"hash"`
	Function string        `json:"function"`
	Version  string        `json:"version,omitempty"`
}

type Usecase interface {
	// Purchase buys at the price currently listed on chain
	Purchase(c ctx.Ctx, nftID uint64) (*Result, error)
	PlaceBid(c ctx.Ctx, nftID uint64, bid nft.MinorUnits) (*Result, error)
	EndAuction(c ctx.Ctx, nftID uint64) (*Result, error)
	ListForSale(c ctx.Ctx, nftID uint64, price nft.MinorUnits) (*Result, error)
	CreateAuction(c ctx.Ctx, nftID uint64, startingBid nft.MinorUnits, duration time.Duration) (*Result, error)
	TransferWithMessage(c ctx.Ctx, nftID uint64, to domain.Address, message string, isGift bool) (*Result, error)
	MakeOffer(c ctx.Ctx, nftID uint64, amount nft.MinorUnits, expiration time.Time) (*Result, error)
	AcceptOffer(c ctx.Ctx, nftID uint64, offerID uint64) (*Result, error)
	// Submit forwards a prebuilt payload and waits for it to be executed
	Submit(c ctx.Ctx, payload domain.EntryFunctionPayload) (*Result, error)
}
