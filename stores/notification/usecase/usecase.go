package usecase

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/base/log"
	"github.com/x-xyz/aptos-market/base/metrics"
	"github.com/x-xyz/aptos-market/domain"
	"github.com/x-xyz/aptos-market/domain/notification"
)

const DefaultCapacity = 100

type Config struct {
	// Capacity bounds the feed, the oldest entries are evicted first
	Capacity int
	Now      func() time.Time
}

type impl struct {
	capacity int
	now      func() time.Time
	metrics  metrics.Service

	mu    sync.Mutex
	feed  []*notification.Notification
	start int
}

func New(cfg Config) notification.Usecase {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &impl{
		capacity: cfg.Capacity,
		now:      cfg.Now,
		metrics:  metrics.New("notification"),
		feed:     make([]*notification.Notification, 0, cfg.Capacity),
	}
}

func (im *impl) Notify(c ctx.Ctx, level notification.Level, kind notification.Kind, message string) *notification.Notification {
	n := &notification.Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Kind:      kind,
		Message:   message,
		CreatedAt: im.now(),
	}

	im.mu.Lock()
	if len(im.feed) < im.capacity {
		im.feed = append(im.feed, n)
	} else {
		im.feed[im.start] = n
		im.start = (im.start + 1) % im.capacity
	}
	im.mu.Unlock()

	im.metrics.BumpSum("notify", 1, "level", string(level), "kind", string(kind))
	entry := c.WithFields(log.Fields{"id": n.ID, "kind": kind})
	switch level {
	case notification.LevelError:
		entry.Error(message)
	case notification.LevelWarning:
		entry.Warn(message)
	default:
		entry.Info(message)
	}
	return n
}

func (im *impl) NotifyError(c ctx.Ctx, err error) *notification.Notification {
	if err == nil {
		return nil
	}
	level, kind := Classify(err)
	return im.Notify(c, level, kind, err.Error())
}

// Recent returns up to limit notifications, newest first. limit <= 0 returns all.
func (im *impl) Recent(c ctx.Ctx, limit int) []*notification.Notification {
	im.mu.Lock()
	defer im.mu.Unlock()

	n := len(im.feed)
	if limit <= 0 || limit > n {
		limit = n
	}
	res := make([]*notification.Notification, 0, limit)
	for i := 0; i < limit; i++ {
		// newest sits right before start once the ring is full
		idx := (im.start + n - 1 - i) % n
		res = append(res, im.feed[idx])
	}
	return res
}

// Classify maps an error onto the notification taxonomy.
func Classify(err error) (notification.Level, notification.Kind) {
	switch {
	case domain.IsValidationError(err):
		return notification.LevelWarning, notification.KindValidation
	case domain.IsSubmissionError(err):
		return notification.LevelError, notification.KindSubmission
	case domain.IsDecodeError(err):
		return notification.LevelWarning, notification.KindDecode
	case domain.IsFetchError(err), errors.Is(err, domain.ErrNotFound):
		return notification.LevelError, notification.KindFetch
	default:
		return notification.LevelError, notification.KindOther
	}
}
