package cache

import (
	"errors"
	"strings"
	"time"

	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/service/cache/provider"
)

var (
	ErrNotFound = errors.New("cache entry not found")
	// ErrBadGetterResult is returned when a getter hands back something
	// other than a non-nil pointer
	ErrBadGetterResult = errors.New("getter must return a non-nil pointer")
)

// OneTimeGetter loads the value on a miss. It must return a pointer of the
// container's type.
type OneTimeGetter func() (interface{}, error)

type Serializer func(interface{}) ([]byte, error)

type Deserializer func([]byte, interface{}) error

// Service stores json encoded values under a prefix on top of a Provider.
type Service interface {
	GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, key string) error
}

type ServiceConfig struct {
	Ttl time.Duration
	// Pfx scopes the keys, several services can share one Provider
	Pfx         string
	Cache       provider.Provider
	Serialize   Serializer
	Deserialize Deserializer
}

// Key joins key parts with ':'
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}
