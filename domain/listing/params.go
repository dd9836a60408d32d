package listing

import (
	"github.com/shopspring/decimal"

	"github.com/x-xyz/aptos-market/domain"
	"github.com/x-xyz/aptos-market/domain/nft"
)

// SearchParams is the query string form of FilterState. Prices are in major units.
type SearchParams struct {
	Rarity      nft.Rarity   `query:"rarity" json:"rarity"`
	MinPrice    string       `query:"minPrice" json:"minPrice" validate:"omitempty,amount"`
	MaxPrice    string       `query:"maxPrice" json:"maxPrice" validate:"omitempty,amount"`
	SearchQuery string       `query:"q" json:"searchQuery"`
	Status      StatusFilter `query:"status" json:"status"`
	SortBy      SortOption   `query:"sortBy" json:"sortBy"`
	Page        int          `query:"page" json:"page" validate:"omitempty,min=1"`
}

func (p *SearchParams) ToFilterState() (FilterState, error) {
	f := FilterState{
		Rarity:      p.Rarity,
		SearchQuery: p.SearchQuery,
		Status:      p.Status,
		SortBy:      p.SortBy,
	}
	if p.MinPrice != "" {
		min, err := decimal.NewFromString(p.MinPrice)
		if err != nil {
			return f, domain.NewValidationError("minPrice", domain.ErrInvalidNumberFormat)
		}
		f.PriceRange.Min = &min
	}
	if p.MaxPrice != "" {
		max, err := decimal.NewFromString(p.MaxPrice)
		if err != nil {
			return f, domain.NewValidationError("maxPrice", domain.ErrInvalidNumberFormat)
		}
		f.PriceRange.Max = &max
	}
	return f.Normalize(), nil
}

// PageOrDefault returns the requested page, 1 when unset.
func (p *SearchParams) PageOrDefault() int {
	if p.Page < 1 {
		return 1
	}
	return p.Page
}
