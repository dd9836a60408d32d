package usecase

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/base/log"
	"github.com/x-xyz/aptos-market/base/metrics"
	"github.com/x-xyz/aptos-market/base/scheduler"
	"github.com/x-xyz/aptos-market/domain"
	"github.com/x-xyz/aptos-market/domain/listing"
	"github.com/x-xyz/aptos-market/domain/nft"
	"github.com/x-xyz/aptos-market/domain/notification"
	"github.com/x-xyz/aptos-market/domain/transaction"
)

const (
	DefaultRefreshInterval = 10 * time.Second
	DefaultSweepInterval   = 30 * time.Second

	taskRefresh = "refresh"
	taskSweep   = "sweep"
)

var (
	ErrAlreadyStarted = errors.New("listing pipeline already started")
)

type Config struct {
	PageSize        int
	RefreshInterval time.Duration
	SweepInterval   time.Duration
	// Now defaults to time.Now
	Now func() time.Time
}

type impl struct {
	repo     nft.Repository
	tx       transaction.Usecase
	notifier notification.Usecase
	metrics  metrics.Service

	pageSize        int
	refreshInterval time.Duration
	sweepInterval   time.Duration
	now             func() time.Time

	mu        sync.RWMutex
	scheduler *scheduler.Scheduler
	stopped   bool
	hasData   bool
	snapshot  []*nft.NFTRecord
	fetchedAt time.Time
	lastErr   error
	filters   listing.FilterState
	page      int
}

func New(repo nft.Repository, tx transaction.Usecase, notifier notification.Usecase, cfg Config) listing.Usecase {
	if cfg.PageSize <= 0 {
		cfg.PageSize = listing.DefaultPageSize
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = DefaultRefreshInterval
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = DefaultSweepInterval
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &impl{
		repo:            repo,
		tx:              tx,
		notifier:        notifier,
		metrics:         metrics.New("listing"),
		pageSize:        cfg.PageSize,
		refreshInterval: cfg.RefreshInterval,
		sweepInterval:   cfg.SweepInterval,
		now:             cfg.Now,
		filters:         listing.FilterState{}.Normalize(),
		page:            1,
	}
}

func (im *impl) Query(c ctx.Ctx, filters listing.FilterState, page int) (*listing.Page, error) {
	if err := ValidateFilters(filters); err != nil {
		return nil, err
	}
	if page < 1 {
		return nil, domain.NewValidationError("page", domain.ErrBadParamInput)
	}

	records, err := im.repo.FindAll(c)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		im.notifier.NotifyError(c, err)
		return nil, err
	}
	p := Paginate(ComputeVisibleListings(records, filters, im.now()), page, im.pageSize)
	return &p, nil
}

func (im *impl) View(c ctx.Ctx) (*listing.View, error) {
	im.mu.RLock()
	hasData := im.hasData
	im.mu.RUnlock()

	if !hasData {
		if err := im.Refresh(c); err != nil {
			return im.buildView(), err
		}
	}
	return im.buildView(), nil
}

// SetFilters resets the page to 1 and re-fetches. A failed fetch leaves the
// previous snapshot in the view.
func (im *impl) SetFilters(c ctx.Ctx, filters listing.FilterState) (*listing.View, error) {
	if err := ValidateFilters(filters); err != nil {
		return nil, err
	}

	im.mu.Lock()
	im.filters = filters.Normalize()
	im.page = 1
	im.mu.Unlock()

	if err := im.Refresh(c); err != nil {
		return im.buildView(), err
	}
	return im.buildView(), nil
}

func (im *impl) SetPage(c ctx.Ctx, page int) (*listing.View, error) {
	if page < 1 {
		return nil, domain.NewValidationError("page", domain.ErrBadParamInput)
	}

	im.mu.Lock()
	im.page = page
	im.mu.Unlock()
	return im.buildView(), nil
}

// Refresh is not serialized with other refreshes: the last one to finish
// overwrites the snapshot.
func (im *impl) Refresh(c ctx.Ctx) error {
	defer im.metrics.BumpTime("refresh.time").End()

	records, err := im.repo.FindAll(c)

	im.mu.Lock()
	if im.stopped {
		im.mu.Unlock()
		return nil
	}
	if err != nil {
		im.lastErr = err
		im.mu.Unlock()

		im.metrics.BumpSum("refresh.err", 1)
		c.WithField("err", err).Error("repo.FindAll failed, keeping previous snapshot")
		im.notifier.NotifyError(c, err)
		return err
	}
	im.snapshot = records
	im.hasData = true
	im.fetchedAt = im.now()
	im.lastErr = nil
	im.mu.Unlock()

	im.metrics.BumpAvg("snapshot.size", float64(len(records)))
	return nil
}

// Sweep invokes end auction once for every held auction whose end time has
// passed. Ids are not remembered across ticks, so an auction whose settlement
// is not yet visible is ended again on the next tick.
func (im *impl) Sweep(c ctx.Ctx, now time.Time) (int, error) {
	im.mu.RLock()
	snapshot := im.snapshot
	im.mu.RUnlock()

	invoked, ended := 0, 0
	var firstErr error
	for _, r := range snapshot {
		if !r.IsExpiredAuction(now) {
			continue
		}
		invoked++
		res, err := im.tx.EndAuction(c, r.ID)
		if err != nil {
			c.WithFields(log.Fields{"err": err, "nftId": r.ID}).Warn("tx.EndAuction failed")
			im.notifier.NotifyError(c, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		ended++
		c.WithFields(log.Fields{"nftId": r.ID, "hash": res.Hash}).Info("expired auction ended")
		im.notifier.Notify(c, notification.LevelInfo, notification.KindSuccess, fmt.Sprintf("auction for nft %d ended", r.ID))
	}
	im.metrics.BumpSum("sweep.invoked", float64(invoked))

	if ended > 0 {
		_ = im.Refresh(c)
	}
	return invoked, firstErr
}

// Start fetches once and schedules the refresh loop and the expiry sweep.
func (im *impl) Start(c ctx.Ctx) error {
	im.mu.Lock()
	if im.scheduler != nil {
		im.mu.Unlock()
		return ErrAlreadyStarted
	}
	s := scheduler.New(c)
	im.scheduler = s
	im.stopped = false
	im.mu.Unlock()

	if err := im.Refresh(c); err != nil {
		c.WithField("err", err).Warn("initial refresh failed")
	}

	if err := s.Every(taskRefresh, im.refreshInterval, func(c ctx.Ctx) {
		_ = im.Refresh(c)
	}); err != nil {
		c.WithField("err", err).Error("scheduler.Every failed")
		return err
	}
	if err := s.Every(taskSweep, im.sweepInterval, func(c ctx.Ctx) {
		_, _ = im.Sweep(c, im.now())
	}); err != nil {
		c.WithField("err", err).Error("scheduler.Every failed")
		return err
	}
	s.Start()
	c.WithFields(log.Fields{"refresh": im.refreshInterval, "sweep": im.sweepInterval}).Info("listing pipeline started")
	return nil
}

// Stop clears both tasks. Fetches still in flight finish but their result
// is discarded.
func (im *impl) Stop() {
	im.mu.Lock()
	s := im.scheduler
	im.scheduler = nil
	im.stopped = true
	im.mu.Unlock()

	if s != nil {
		s.Stop()
	}
}

func (im *impl) buildView() *listing.View {
	im.mu.RLock()
	snapshot := im.snapshot
	filters := im.filters
	page := im.page
	fetchedAt := im.fetchedAt
	lastErr := im.lastErr
	im.mu.RUnlock()

	v := &listing.View{
		Page:      Paginate(ComputeVisibleListings(snapshot, filters, im.now()), page, im.pageSize),
		Filters:   filters,
		FetchedAt: fetchedAt,
	}
	if lastErr != nil {
		v.Stale = true
		v.LastError = lastErr.Error()
	}
	return v
}
