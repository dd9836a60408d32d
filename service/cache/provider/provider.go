package provider

import (
	"errors"
	"time"

	"github.com/x-xyz/aptos-market/base/ctx"
)

var (
	ErrNotFound = errors.New("key not found")
)

// Provider is the raw byte store under cache.Service. Get returns the
// remaining ttl, zero when the entry never expires.
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}
