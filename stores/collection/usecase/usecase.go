package usecase

import (
	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/base/log"
	"github.com/x-xyz/aptos-market/domain"
	"github.com/x-xyz/aptos-market/domain/collection"
	"github.com/x-xyz/aptos-market/domain/listing"
	"github.com/x-xyz/aptos-market/domain/nft"
	listingUsecase "github.com/x-xyz/aptos-market/stores/listing/usecase"
)

type Config struct {
	PageSize int
	// WithGift looks up the gift note of every item on the returned page
	WithGift bool
}

type impl struct {
	repo     nft.Repository
	pageSize int
	withGift bool
}

func New(repo nft.Repository, cfg Config) collection.Usecase {
	if cfg.PageSize <= 0 {
		cfg.PageSize = listing.DefaultPageSize
	}
	return &impl{
		repo:     repo,
		pageSize: cfg.PageSize,
		withGift: cfg.WithGift,
	}
}

func (im *impl) Owned(c ctx.Ctx, owner domain.Address, filters listing.FilterState, page int) (*collection.OwnedPage, error) {
	if err := listingUsecase.ValidateFilters(filters); err != nil {
		return nil, err
	}
	if page < 1 {
		return nil, domain.NewValidationError("page", domain.ErrBadParamInput)
	}

	records, err := im.repo.FindByOwner(c, owner)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "owner": owner}).Error("repo.FindByOwner failed")
		return nil, err
	}

	p := listingUsecase.Paginate(listingUsecase.FilterAndSort(records, filters), page, im.pageSize)
	res := &collection.OwnedPage{
		Owner:      owner,
		Items:      make([]*collection.OwnedItem, 0, len(p.Items)),
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
	for _, r := range p.Items {
		item := &collection.OwnedItem{NFTRecord: r}
		if im.withGift {
			gift, err := im.repo.FindGift(c, r.ID)
			if err != nil {
				c.WithFields(log.Fields{"err": err, "nftId": r.ID}).Warn("repo.FindGift failed")
			} else if gift.IsGift {
				item.Gift = gift
			}
		}
		res.Items = append(res.Items, item)
	}
	return res, nil
}
