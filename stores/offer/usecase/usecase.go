package usecase

import (
	"time"

	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/base/log"
	"github.com/x-xyz/aptos-market/domain"
	"github.com/x-xyz/aptos-market/domain/nft"
	"github.com/x-xyz/aptos-market/domain/offer"
	"github.com/x-xyz/aptos-market/domain/transaction"
)

type impl struct {
	repo nft.Repository
	tx   transaction.Usecase
	now  func() time.Time
}

func New(repo nft.Repository, tx transaction.Usecase, now func() time.Time) offer.Usecase {
	if now == nil {
		now = time.Now
	}
	return &impl{repo: repo, tx: tx, now: now}
}

func (im *impl) FindBook(c ctx.Ctx, nftID uint64, liveOnly bool) (*offer.Book, error) {
	offers, err := im.repo.FindOffers(c, nftID)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "nftId": nftID}).Error("repo.FindOffers failed")
		return nil, err
	}

	now := im.now()
	book := &offer.Book{NftID: nftID, Offers: []*offer.Item{}}
	for _, o := range offers {
		item := &offer.Item{
			Offer:       o,
			AmountMajor: o.Amount.Major(),
			Live:        o.IsLive(now),
			Expired:     o.IsExpired(now),
		}
		if liveOnly && !item.Live {
			continue
		}
		book.Offers = append(book.Offers, item)
		if item.Live && (book.Best == nil || item.Amount > book.Best.Amount) {
			book.Best = item
		}
	}
	return book, nil
}

func (im *impl) Make(c ctx.Ctx, nftID uint64, amount nft.MinorUnits, expiration time.Time) (*transaction.Result, error) {
	return im.tx.MakeOffer(c, nftID, amount, expiration)
}

func (im *impl) Accept(c ctx.Ctx, nftID uint64, offerID uint64) (*transaction.Result, error) {
	book, err := im.FindBook(c, nftID, false)
	if err != nil {
		return nil, err
	}
	for _, item := range book.Offers {
		if item.OfferID != offerID {
			continue
		}
		if !item.Live {
			return nil, domain.NewValidationError("offerId", domain.ErrOfferNotLive)
		}
		return im.tx.AcceptOffer(c, nftID, offerID)
	}
	return nil, domain.ErrNotFound
}
