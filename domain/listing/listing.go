package listing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/domain/nft"
)

const DefaultPageSize = 8

type StatusFilter string

const (
	StatusAll     StatusFilter = "all"
	StatusAuction StatusFilter = "auction"
	StatusBuyNow  StatusFilter = "buyNow"
)

func (s StatusFilter) IsValid() bool {
	switch s {
	case StatusAll, StatusAuction, StatusBuyNow:
		return true
	}
	return false
}

type SortOption string

const (
	SortNewest    SortOption = "newest"
	SortOldest    SortOption = "oldest"
	SortPriceHigh SortOption = "priceHigh"
	SortPriceLow  SortOption = "priceLow"
)

func (s SortOption) IsValid() bool {
	switch s {
	case SortNewest, SortOldest, SortPriceHigh, SortPriceLow:
		return true
	}
	return false
}

// PriceRange bounds are inclusive, a nil bound is open.
type PriceRange struct {
	Min *decimal.Decimal `json:"min,omitempty"`
	Max *decimal.Decimal `json:"max,omitempty"`
}

func (p PriceRange) Contains(v decimal.Decimal) bool {
	if p.Min != nil && v.LessThan(*p.Min) {
		return false
	}
	if p.Max != nil && v.GreaterThan(*p.Max) {
		return false
	}
	return true
}

// FilterState is the single parameter set of the listing pipeline. The zero
// value matches every actionable record in newest-first order.
type FilterState struct {
	Rarity      nft.Rarity   `json:"rarity"`
	PriceRange  PriceRange   `json:"priceRange"`
	SearchQuery string       `json:"searchQuery"`
	Status      StatusFilter `json:"status"`
	SortBy      SortOption   `json:"sortBy"`
}

// Normalize fills unset enum fields with their defaults.
func (f FilterState) Normalize() FilterState {
	if f.Status == "" {
		f.Status = StatusAll
	}
	if f.SortBy == "" {
		f.SortBy = SortNewest
	}
	return f
}

type Page struct {
	Items      []*nft.NFTRecord `json:"items"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	Total      int              `json:"total"`
	TotalPages int              `json:"totalPages"`
}

// View is the stateful marketplace view: latest snapshot, filters and page.
type View struct {
	Page
	Filters   FilterState `json:"filters"`
	FetchedAt time.Time   `json:"fetchedAt"`
	// Stale is set when the last fetch failed and an older snapshot is shown
	Stale     bool   `json:"stale"`
	LastError string `json:"lastError,omitempty"`
}

type Usecase interface {
	// Query fetches a fresh snapshot and runs the pipeline without touching view state
	Query(c ctx.Ctx, filters FilterState, page int) (*Page, error)
	View(c ctx.Ctx) (*View, error)
	SetFilters(c ctx.Ctx, filters FilterState) (*View, error)
	SetPage(c ctx.Ctx, page int) (*View, error)
	// Refresh replaces the snapshot, a failure keeps the previous one
	Refresh(c ctx.Ctx) error
	// Sweep invokes end auction for every expired auction in the snapshot
	Sweep(c ctx.Ctx, now time.Time) (int, error)
	Start(c ctx.Ctx) error
	Stop()
}
