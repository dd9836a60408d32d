package nft

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/domain"
)

const (
	MarketplaceModule       = "NFTMarketplace"
	MarketplaceResourceName = "Marketplace"
)

// view functions of the marketplace module
const (
	ViewAllNftsForOwner = "get_all_nfts_for_owner"
	ViewNftDetails      = "get_nft_details"
	ViewNftGiftDetails  = "get_nft_gift_details"
	ViewOffersForNft    = "get_offers_for_nft"
	ViewMintingFee      = "get_minting_fee"
	ViewIsWhitelisted   = "is_whitelisted"
)

type Rarity uint8

const (
	RarityAll       Rarity = 0
	RarityCommon    Rarity = 1
	RarityUncommon  Rarity = 2
	RarityRare      Rarity = 3
	RaritySuperRare Rarity = 4
)

var rarityLabels = map[Rarity]string{
	RarityCommon:    "Common",
	RarityUncommon:  "Uncommon",
	RarityRare:      "Rare",
	RaritySuperRare: "Super Rare",
}

func (r Rarity) IsValid() bool {
	_, ok := rarityLabels[r]
	return ok
}

// UnmarshalParam binds a query value, "all" or empty being RarityAll.
func (r *Rarity) UnmarshalParam(param string) error {
	if param == "" || param == "all" {
		*r = RarityAll
		return nil
	}
	v, err := strconv.ParseUint(param, 10, 8)
	if err != nil {
		return domain.ErrInvalidNumberFormat
	}
	*r = Rarity(v)
	return nil
}

func (r Rarity) String() string {
	if l, ok := rarityLabels[r]; ok {
		return l
	}
	return "Unknown"
}

type AuctionState string

const (
	AuctionStateNone    AuctionState = "none"
	AuctionStateActive  AuctionState = "active"
	AuctionStateExpired AuctionState = "expired"
)

// NFTRecord is rebuilt from chain state on every fetch; nothing here is authoritative.
type NFTRecord struct {
	ID            uint64          `json:"id"`
	Owner         domain.Address  `json:"owner"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	URI           string          `json:"uri"`
	Price         decimal.Decimal `json:"price"`
	ForSale       bool            `json:"forSale"`
	Rarity        Rarity          `json:"rarity"`
	IsAuction     bool            `json:"isAuction"`
	AuctionEnd    int64           `json:"auctionEnd"`
	HighestBid    MinorUnits      `json:"highestBid"`
	HighestBidder domain.Address  `json:"highestBidder,omitempty"`
	StartingBid   MinorUnits      `json:"startingBid"`
}

// IsActionable reports whether the record shows up in the default market view.
func (r *NFTRecord) IsActionable(now time.Time) bool {
	return r.ForSale || (r.IsAuction && r.AuctionEnd > now.Unix())
}

// IsExpiredAuction is the sweep criterion, strictly past the end time.
func (r *NFTRecord) IsExpiredAuction(now time.Time) bool {
	return r.IsAuction && r.AuctionEnd < now.Unix()
}

// AuctionState can't report settled, that is only seen as IsAuction going false on re-fetch.
func (r *NFTRecord) AuctionState(now time.Time) AuctionState {
	switch {
	case !r.IsAuction:
		return AuctionStateNone
	case now.Unix() < r.AuctionEnd:
		return AuctionStateActive
	default:
		return AuctionStateExpired
	}
}

// ComparisonPrice is the price used for range filters and price sorting.
func (r *NFTRecord) ComparisonPrice() decimal.Decimal {
	if r.IsAuction {
		return r.HighestBid.Major()
	}
	return r.Price
}

// MinimumNextBid returns max(startingBid, highestBid) + 0.1 in major units.
func (r *NFTRecord) MinimumNextBid() decimal.Decimal {
	return decimal.Max(r.StartingBid.Major(), r.HighestBid.Major()).Add(MinBidIncrement)
}

// PriceMinorUnits converts the listing price back for purchase_nft.
func (r *NFTRecord) PriceMinorUnits() (MinorUnits, error) {
	return ToMinorUnits(r.Price)
}

// Repository is the only reader of marketplace records.
type Repository interface {
	// FindAll returns every record in the marketplace resource, decode failures dropped
	FindAll(c ctx.Ctx) ([]*NFTRecord, error)
	// FindOne looks the id up in the marketplace resource, auction fields included
	FindOne(c ctx.Ctx, id uint64) (*NFTRecord, error)
	// FindDetails reads get_nft_details, which carries no auction fields
	FindDetails(c ctx.Ctx, id uint64) (*NFTRecord, error)
	// FindByOwner lists the owner's ids then fetches their details
	FindByOwner(c ctx.Ctx, owner domain.Address) ([]*NFTRecord, error)
	FindGift(c ctx.Ctx, id uint64) (*GiftDetail, error)
	FindOffers(c ctx.Ctx, id uint64) ([]*Offer, error)
}
