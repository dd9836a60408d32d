package usecase

import (
	"strconv"

	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/base/log"
	"github.com/x-xyz/aptos-market/domain"
	"github.com/x-xyz/aptos-market/domain/analytics"
	"github.com/x-xyz/aptos-market/domain/nft"
	"github.com/x-xyz/aptos-market/service/cache"
)

type Config struct {
	MarketAddress domain.Address
	// ModuleAddress publishes both modules, defaults to MarketAddress
	ModuleAddress domain.Address
	// Cache fronts metrics and series, nil disables caching
	Cache cache.Service
}

type impl struct {
	reader domain.ChainReader
	market domain.Address
	module domain.Address
	cache  cache.Service
}

func New(reader domain.ChainReader, cfg Config) analytics.Usecase {
	module := cfg.ModuleAddress
	if module.IsEmpty() {
		module = cfg.MarketAddress
	}
	return &impl{
		reader: reader,
		market: cfg.MarketAddress,
		module: module,
		cache:  cfg.Cache,
	}
}

func (im *impl) Metrics(c ctx.Ctx) (*analytics.MarketMetrics, error) {
	if im.cache == nil {
		return im.metrics(c)
	}
	m := analytics.MarketMetrics{}
	if err := im.cache.GetByFunc(c, "metrics", &m, func() (interface{}, error) {
		return im.metrics(c)
	}); err != nil {
		return nil, err
	}
	return &m, nil
}

func (im *impl) metrics(c ctx.Ctx) (*analytics.MarketMetrics, error) {
	fn := domain.FunctionID(im.module, analytics.ModuleName, analytics.ViewMarketMetrics)
	vals, err := im.reader.View(c, fn, nil, im.module.String())
	if err != nil {
		c.WithField("err", err).Error("reader.View failed")
		return nil, domain.NewFetchError(analytics.ViewMarketMetrics, err)
	}
	m, err := analytics.DecodeMetrics(vals)
	if err != nil {
		c.WithField("err", err).Error("analytics.DecodeMetrics failed")
		return nil, err
	}
	return m, nil
}

func (im *impl) TimeSeries(c ctx.Ctx, days int) ([]*analytics.DailyMetric, error) {
	if days <= 0 {
		days = analytics.DefaultSeriesDays
	}
	if im.cache == nil {
		return im.timeSeries(c, days)
	}
	series := []*analytics.DailyMetric{}
	if err := im.cache.GetByFunc(c, cache.Key("series", strconv.Itoa(days)), &series, func() (interface{}, error) {
		res, err := im.timeSeries(c, days)
		if err != nil {
			return nil, err
		}
		return &res, nil
	}); err != nil {
		return nil, err
	}
	return series, nil
}

func (im *impl) timeSeries(c ctx.Ctx, days int) ([]*analytics.DailyMetric, error) {
	fn := domain.FunctionID(im.module, analytics.ModuleName, analytics.ViewTimeSeriesData)
	vals, err := im.reader.View(c, fn, nil, im.module.String(), strconv.Itoa(days))
	if err != nil {
		c.WithFields(log.Fields{"err": err, "days": days}).Error("reader.View failed")
		return nil, domain.NewFetchError(analytics.ViewTimeSeriesData, err)
	}
	series, err := analytics.DecodeTimeSeries(vals)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "days": days}).Error("analytics.DecodeTimeSeries failed")
		return nil, err
	}
	return series, nil
}

func (im *impl) MintingConfig(c ctx.Ctx, account domain.Address) (*analytics.MintingConfig, error) {
	if !account.IsEmpty() && !account.IsValid() {
		return nil, domain.NewValidationError("account", domain.ErrInvalidAddress)
	}

	vals, err := im.reader.View(c, domain.FunctionID(im.module, nft.MarketplaceModule, nft.ViewMintingFee), nil, im.market.String())
	if err != nil {
		c.WithField("err", err).Error("reader.View failed")
		return nil, domain.NewFetchError(nft.ViewMintingFee, err)
	}
	fee, err := analytics.DecodeMintingFee(vals)
	if err != nil {
		return nil, err
	}
	res := &analytics.MintingConfig{Account: account, Fee: fee, FeeMajor: fee.Major()}
	if account.IsEmpty() {
		return res, nil
	}

	vals, err = im.reader.View(c, domain.FunctionID(im.module, nft.MarketplaceModule, nft.ViewIsWhitelisted), nil, im.market.String(), account.String())
	if err != nil {
		c.WithFields(log.Fields{"err": err, "account": account}).Error("reader.View failed")
		return nil, domain.NewFetchError(nft.ViewIsWhitelisted, err)
	}
	if res.Whitelisted, err = analytics.DecodeWhitelisted(vals); err != nil {
		return nil, err
	}
	return res, nil
}
