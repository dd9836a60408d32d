package repository

import (
	"strconv"

	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/base/log"
	"github.com/x-xyz/aptos-market/base/metrics"
	"github.com/x-xyz/aptos-market/domain"
	"github.com/x-xyz/aptos-market/domain/nft"
	"github.com/x-xyz/aptos-market/service/cache"
)

const (
	defaultOwnerLimit  = 100
	defaultConcurrency = 8
)

type Config struct {
	// MarketAddress holds the Marketplace resource and is the first argument of every call
	MarketAddress domain.Address
	// ModuleAddress publishes the NFTMarketplace module, defaults to MarketAddress
	ModuleAddress domain.Address
	// OwnerLimit is the page size of get_all_nfts_for_owner
	OwnerLimit  int
	Concurrency int
	// DetailsCache fronts get_nft_details, nil disables caching
	DetailsCache cache.Service
}

type impl struct {
	reader      domain.ChainReader
	market      domain.Address
	module      domain.Address
	ownerLimit  int
	concurrency int
	cache       cache.Service
	metrics     metrics.Service
}

func New(reader domain.ChainReader, cfg Config) nft.Repository {
	module := cfg.ModuleAddress
	if module.IsEmpty() {
		module = cfg.MarketAddress
	}
	ownerLimit := cfg.OwnerLimit
	if ownerLimit <= 0 {
		ownerLimit = defaultOwnerLimit
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &impl{
		reader:      reader,
		market:      cfg.MarketAddress,
		module:      module,
		ownerLimit:  ownerLimit,
		concurrency: concurrency,
		cache:       cfg.DetailsCache,
		metrics:     metrics.New("nft_repo"),
	}
}

func (im *impl) function(name string) string {
	return domain.FunctionID(im.module, nft.MarketplaceModule, name)
}

func (im *impl) FindAll(c ctx.Ctx) ([]*nft.NFTRecord, error) {
	defer im.metrics.BumpTime("find_all.time").End()

	resourceType := domain.FunctionID(im.module, nft.MarketplaceModule, nft.MarketplaceResourceName)
	data, err := im.reader.AccountResource(c, im.market, resourceType)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "market": im.market}).Error("reader.AccountResource failed")
		return nil, domain.NewFetchError("marketplace", err)
	}

	records, decodeErrs, err := nft.DecodeMarketplace(c, data)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "market": im.market}).Error("nft.DecodeMarketplace failed")
		return nil, domain.NewFetchError("marketplace", err)
	}
	if len(decodeErrs) > 0 {
		im.metrics.BumpSum("decode.dropped", float64(len(decodeErrs)))
	}
	return records, nil
}

func (im *impl) FindOne(c ctx.Ctx, id uint64) (*nft.NFTRecord, error) {
	records, err := im.FindAll(c)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (im *impl) FindDetails(c ctx.Ctx, id uint64) (*nft.NFTRecord, error) {
	if im.cache == nil {
		return im.findDetails(c, id)
	}

	record := nft.NFTRecord{}
	key := cache.Key("details", strconv.FormatUint(id, 10))
	if err := im.cache.GetByFunc(c, key, &record, func() (interface{}, error) {
		return im.findDetails(c, id)
	}); err != nil {
		return nil, err
	}
	return &record, nil
}

func (im *impl) findDetails(c ctx.Ctx, id uint64) (*nft.NFTRecord, error) {
	vals, err := im.reader.View(c, im.function(nft.ViewNftDetails), nil, im.market.String(), strconv.FormatUint(id, 10))
	if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Error("reader.View failed")
		return nil, domain.NewFetchError(nft.ViewNftDetails, err)
	}
	record, err := nft.DecodeDetails(vals)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Warn("nft.DecodeDetails failed")
		return nil, err
	}
	return record, nil
}

type indexed struct {
	idx    int
	record *nft.NFTRecord
}

func (im *impl) FindByOwner(c ctx.Ctx, owner domain.Address) ([]*nft.NFTRecord, error) {
	defer im.metrics.BumpTime("find_by_owner.time").End()

	if !owner.IsValid() {
		return nil, domain.NewValidationError("owner", domain.ErrInvalidAddress)
	}

	vals, err := im.reader.View(c, im.function(nft.ViewAllNftsForOwner), nil,
		im.market.String(), owner.String(), strconv.Itoa(im.ownerLimit), "0")
	if err != nil {
		c.WithFields(log.Fields{"err": err, "owner": owner}).Error("reader.View failed")
		return nil, domain.NewFetchError(nft.ViewAllNftsForOwner, err)
	}
	ids, err := nft.DecodeIDList(vals)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "owner": owner}).Error("nft.DecodeIDList failed")
		return nil, domain.NewFetchError(nft.ViewAllNftsForOwner, err)
	}
	if len(ids) == 0 {
		return []*nft.NFTRecord{}, nil
	}

	b := goroutines.NewBatch(im.concurrency, goroutines.WithBatchSize(len(ids)))
	defer b.Close()
	for i := range ids {
		idx := i
		b.Queue(func() (interface{}, error) {
			record, err := im.FindDetails(c, ids[idx])
			if err != nil {
				return nil, err
			}
			return &indexed{idx: idx, record: record}, nil
		})
	}
	b.QueueComplete()

	slots := make([]*nft.NFTRecord, len(ids))
	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithFields(log.Fields{"err": ret.Error(), "owner": owner}).Warn("owned nft dropped")
			continue
		}
		v := ret.Value().(*indexed)
		slots[v.idx] = v.record
	}

	res := make([]*nft.NFTRecord, 0, len(ids))
	for _, r := range slots {
		if r != nil {
			res = append(res, r)
		}
	}
	return res, nil
}

func (im *impl) FindGift(c ctx.Ctx, id uint64) (*nft.GiftDetail, error) {
	vals, err := im.reader.View(c, im.function(nft.ViewNftGiftDetails), nil, im.market.String(), strconv.FormatUint(id, 10))
	if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Error("reader.View failed")
		return nil, domain.NewFetchError(nft.ViewNftGiftDetails, err)
	}
	gift, err := nft.DecodeGift(vals)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Warn("nft.DecodeGift failed")
		return nil, err
	}
	return gift, nil
}

func (im *impl) FindOffers(c ctx.Ctx, id uint64) ([]*nft.Offer, error) {
	vals, err := im.reader.View(c, im.function(nft.ViewOffersForNft), nil, strconv.FormatUint(id, 10))
	if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Error("reader.View failed")
		return nil, domain.NewFetchError(nft.ViewOffersForNft, err)
	}
	offers, err := nft.DecodeOffers(c, vals)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Error("nft.DecodeOffers failed")
		return nil, domain.NewFetchError(nft.ViewOffersForNft, err)
	}
	return offers, nil
}
