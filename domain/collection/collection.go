package collection

import (
	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/domain"
	"github.com/x-xyz/aptos-market/domain/listing"
	"github.com/x-xyz/aptos-market/domain/nft"
)

// OwnedItem is one entry of a user's collection with its gift note, if any.
type OwnedItem struct {
	*nft.NFTRecord
	Gift *nft.GiftDetail `json:"gift,omitempty"`
}

type OwnedPage struct {
	Owner      domain.Address `json:"owner"`
	Items      []*OwnedItem   `json:"items"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	Total      int            `json:"total"`
	TotalPages int            `json:"totalPages"`
}

type Usecase interface {
	// Owned lists the owner's items with the market view's filter and sort,
	// visibility not applied since owned items need not be listed
	Owned(c ctx.Ctx, owner domain.Address, filters listing.FilterState, page int) (*OwnedPage, error)
}
