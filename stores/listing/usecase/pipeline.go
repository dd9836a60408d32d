package usecase

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/aptos-market/domain"
	"github.com/x-xyz/aptos-market/domain/listing"
	"github.com/x-xyz/aptos-market/domain/nft"
)

// ComputeVisibleListings keeps the actionable records matching every active
// filter, then stable-sorts them. The input slice is not modified.
func ComputeVisibleListings(records []*nft.NFTRecord, filters listing.FilterState, now time.Time) []*nft.NFTRecord {
	return compute(records, filters.Normalize(), func(r *nft.NFTRecord) bool {
		return r.IsActionable(now)
	})
}

// FilterAndSort is ComputeVisibleListings without the visibility rule, for
// views over records that need not be listed.
func FilterAndSort(records []*nft.NFTRecord, filters listing.FilterState) []*nft.NFTRecord {
	return compute(records, filters.Normalize(), nil)
}

func compute(records []*nft.NFTRecord, f listing.FilterState, visible func(*nft.NFTRecord) bool) []*nft.NFTRecord {
	query := strings.ToLower(f.SearchQuery)

	type entry struct {
		record *nft.NFTRecord
		price  decimal.Decimal
	}
	entries := make([]entry, 0, len(records))
	for _, r := range records {
		if visible != nil && !visible(r) {
			continue
		}
		if f.Rarity != nft.RarityAll && r.Rarity != f.Rarity {
			continue
		}
		price := r.ComparisonPrice()
		if !f.PriceRange.Contains(price) {
			continue
		}
		if !matchQuery(r, query) {
			continue
		}
		switch f.Status {
		case listing.StatusAuction:
			if !r.IsAuction {
				continue
			}
		case listing.StatusBuyNow:
			if r.IsAuction {
				continue
			}
		}
		entries = append(entries, entry{r, price})
	}

	var less func(a, b entry) bool
	switch f.SortBy {
	case listing.SortOldest:
		less = func(a, b entry) bool { return a.record.ID < b.record.ID }
	case listing.SortPriceHigh:
		less = func(a, b entry) bool { return a.price.GreaterThan(b.price) }
	case listing.SortPriceLow:
		less = func(a, b entry) bool { return a.price.LessThan(b.price) }
	default:
		less = func(a, b entry) bool { return a.record.ID > b.record.ID }
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i], entries[j])
	})

	res := make([]*nft.NFTRecord, len(entries))
	for i, e := range entries {
		res[i] = e.record
	}
	return res
}

// matchQuery is a case-insensitive substring match on the name or the decimal id.
func matchQuery(r *nft.NFTRecord, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), query) ||
		strings.Contains(strconv.FormatUint(r.ID, 10), query)
}

// Paginate returns records[(page-1)*pageSize : page*pageSize], clamped to
// the slice. A page past the end is empty.
func Paginate(records []*nft.NFTRecord, page, pageSize int) listing.Page {
	if pageSize <= 0 {
		pageSize = listing.DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	total := len(records)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	items := make([]*nft.NFTRecord, end-start)
	copy(items, records[start:end])
	return listing.Page{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: (total + pageSize - 1) / pageSize,
	}
}

// ValidateFilters rejects enum values and ranges the pipeline can't apply.
func ValidateFilters(f listing.FilterState) error {
	f = f.Normalize()
	if f.Rarity != nft.RarityAll && !f.Rarity.IsValid() {
		return domain.NewValidationError("rarity", domain.ErrBadParamInput)
	}
	if !f.Status.IsValid() {
		return domain.NewValidationError("status", domain.ErrBadParamInput)
	}
	if !f.SortBy.IsValid() {
		return domain.NewValidationError("sortBy", domain.ErrBadParamInput)
	}
	pr := f.PriceRange
	if (pr.Min != nil && pr.Min.IsNegative()) || (pr.Max != nil && pr.Max.IsNegative()) {
		return domain.NewValidationError("priceRange", domain.ErrNegativeAmount)
	}
	if pr.Min != nil && pr.Max != nil && pr.Min.GreaterThan(*pr.Max) {
		return domain.NewValidationError("priceRange", domain.ErrBadParamInput)
	}
	return nil
}
