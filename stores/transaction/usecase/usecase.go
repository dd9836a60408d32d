package usecase

import (
	"strconv"
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/base/log"
	"github.com/x-xyz/aptos-market/base/metrics"
	"github.com/x-xyz/aptos-market/domain"
	"github.com/x-xyz/aptos-market/domain/nft"
	"github.com/x-xyz/aptos-market/domain/transaction"
)

type Config struct {
	MarketAddress domain.Address
	// ModuleAddress publishes the NFTMarketplace module, defaults to MarketAddress
	ModuleAddress domain.Address
	// SkipWait returns right after the wallet accepted the payload
	SkipWait bool
	Now      func() time.Time
}

type impl struct {
	repo     nft.Repository
	wallet   domain.Wallet
	reader   domain.ChainReader
	market   domain.Address
	module   domain.Address
	skipWait bool
	now      func() time.Time
	metrics  metrics.Service
}

func New(repo nft.Repository, wallet domain.Wallet, reader domain.ChainReader, cfg Config) transaction.Usecase {
	module := cfg.ModuleAddress
	if module.IsEmpty() {
		module = cfg.MarketAddress
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &impl{
		repo:     repo,
		wallet:   wallet,
		reader:   reader,
		market:   cfg.MarketAddress,
		module:   module,
		skipWait: cfg.SkipWait,
		now:      cfg.Now,
		metrics:  metrics.New("transaction"),
	}
}

// Payload builds the entry function call. The marketplace address always
// leads the argument list.
func (im *impl) Payload(function string, args ...interface{}) domain.EntryFunctionPayload {
	return domain.EntryFunctionPayload{
		Type:          domain.EntryFunctionPayloadType,
		Function:      domain.FunctionID(im.module, transaction.ModuleName, function),
		TypeArguments: []string{},
		Arguments:     append([]interface{}{im.market.String()}, args...),
	}
}

func id(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func (im *impl) Purchase(c ctx.Ctx, nftID uint64) (*transaction.Result, error) {
	record, err := im.repo.FindOne(c, nftID)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "nftId": nftID}).Error("repo.FindOne failed")
		return nil, err
	}
	if !record.ForSale {
		return nil, domain.NewValidationError("nftId", domain.ErrNotForSale)
	}
	price, err := record.PriceMinorUnits()
	if err != nil {
		return nil, domain.NewValidationError("price", err)
	}
	return im.Submit(c, im.Payload(transaction.FuncPurchaseNft, id(nftID), price.String()))
}

func (im *impl) PlaceBid(c ctx.Ctx, nftID uint64, bid nft.MinorUnits) (*transaction.Result, error) {
	record, err := im.repo.FindOne(c, nftID)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "nftId": nftID}).Error("repo.FindOne failed")
		return nil, err
	}
	if !record.IsAuction {
		return nil, domain.NewValidationError("nftId", domain.ErrNotOnAuction)
	}
	if record.AuctionState(im.now()) != nft.AuctionStateActive {
		return nil, domain.NewValidationError("nftId", domain.ErrAuctionEnded)
	}
	if bid.Major().LessThan(record.MinimumNextBid()) {
		c.WithFields(log.Fields{"bid": bid, "min": record.MinimumNextBid()}).Info("bid below minimum")
		return nil, domain.NewValidationError("bid", domain.ErrBidTooLow)
	}
	return im.Submit(c, im.Payload(transaction.FuncPlaceBid, id(nftID), bid.String()))
}

func (im *impl) EndAuction(c ctx.Ctx, nftID uint64) (*transaction.Result, error) {
	return im.Submit(c, im.Payload(transaction.FuncEndAuction, id(nftID)))
}

func (im *impl) ListForSale(c ctx.Ctx, nftID uint64, price nft.MinorUnits) (*transaction.Result, error) {
	if price == 0 {
		return nil, domain.NewValidationError("price", domain.ErrNonPositive)
	}
	return im.Submit(c, im.Payload(transaction.FuncListForSale, id(nftID), price.String()))
}

func (im *impl) CreateAuction(c ctx.Ctx, nftID uint64, startingBid nft.MinorUnits, duration time.Duration) (*transaction.Result, error) {
	if startingBid == 0 {
		return nil, domain.NewValidationError("startingBid", domain.ErrNonPositive)
	}
	seconds := int64(duration / time.Second)
	if seconds <= 0 {
		return nil, domain.NewValidationError("duration", domain.ErrNonPositive)
	}
	return im.Submit(c, im.Payload(transaction.FuncCreateAuction,
		id(nftID), startingBid.String(), strconv.FormatInt(seconds, 10), transaction.MinAuctionIncrement.String()))
}

func (im *impl) TransferWithMessage(c ctx.Ctx, nftID uint64, to domain.Address, message string, isGift bool) (*transaction.Result, error) {
	if !to.IsValid() {
		return nil, domain.NewValidationError("to", domain.ErrInvalidAddress)
	}
	return im.Submit(c, im.Payload(transaction.FuncTransferNftWithMessage,
		id(nftID), to.String(), nft.EncodeHexText(message), isGift))
}

func (im *impl) MakeOffer(c ctx.Ctx, nftID uint64, amount nft.MinorUnits, expiration time.Time) (*transaction.Result, error) {
	if amount == 0 {
		return nil, domain.NewValidationError("amount", domain.ErrNonPositive)
	}
	if !expiration.After(im.now()) {
		return nil, domain.NewValidationError("expiration", domain.ErrExpirationPassed)
	}
	return im.Submit(c, im.Payload(transaction.FuncMakeOffer,
		id(nftID), amount.String(), strconv.FormatInt(expiration.Unix(), 10)))
}

func (im *impl) AcceptOffer(c ctx.Ctx, nftID uint64, offerID uint64) (*transaction.Result, error) {
	return im.Submit(c, im.Payload(transaction.FuncAcceptOffer, id(nftID), id(offerID)))
}

// Submit hands the payload to the wallet, then waits for execution. Every
// failure is reported as a SubmissionError and nothing is retried.
func (im *impl) Submit(c ctx.Ctx, payload domain.EntryFunctionPayload) (*transaction.Result, error) {
	fn := payload.Function
	defer im.metrics.BumpTime("submit.time", "function", fn).End()
	c = ctx.WithFields(c, log.Fields{"function": fn})

	hash, err := im.wallet.SignAndSubmit(c, payload)
	if err != nil {
		im.metrics.BumpSum("submit.err", 1, "function", fn)
		c.WithField("err", err).Error("wallet.SignAndSubmit failed")
		return nil, domain.NewSubmissionError(fn, err)
	}
	res := &transaction.Result{Hash: hash, Function: fn}
	if im.skipWait || im.reader == nil {
		return res, nil
	}

	tx, err := im.reader.WaitForTransaction(c, hash)
	if err != nil {
		im.metrics.BumpSum("submit.err", 1, "function", fn)
		c.WithFields(log.Fields{"err": err, "hash": hash}).Error("reader.WaitForTransaction failed")
		return nil, domain.NewSubmissionError(fn, err)
	}
	if !tx.Success {
		im.metrics.BumpSum("submit.err", 1, "function", fn)
		c.WithFields(log.Fields{"hash": hash, "vmStatus": tx.VmStatus}).Warn("transaction failed on chain")
		return nil, domain.NewSubmissionError(fn, xerrors.Errorf("%s: %w", tx.VmStatus, domain.ErrTxFailed))
	}

	res.Version = tx.Version
	im.metrics.BumpSum("submit.ok", 1, "function", fn)
	c.WithFields(log.Fields{"hash": hash, "version": tx.Version}).Info("transaction executed")
	return res, nil
}
