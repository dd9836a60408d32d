package cache

import (
	"encoding/json"
	"reflect"
	"time"

	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/base/log"
	"github.com/x-xyz/aptos-market/base/metrics"
	"github.com/x-xyz/aptos-market/service/cache/provider"
)

type impl struct {
	ttl         time.Duration
	pfx         string
	provider    provider.Provider
	serialize   Serializer
	deserialize Deserializer
	metrics     metrics.Service
}

func New(config ServiceConfig) Service {
	if config.Serialize == nil {
		config.Serialize = json.Marshal
	}
	if config.Deserialize == nil {
		config.Deserialize = json.Unmarshal
	}
	return &impl{
		ttl:         config.Ttl,
		pfx:         config.Pfx,
		provider:    config.Cache,
		serialize:   config.Serialize,
		deserialize: config.Deserialize,
		metrics:     metrics.New("cache"),
	}
}

// GetByFunc fills container from cache, or from getter on a miss. A getter
// error is returned as is and nothing is stored.
func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error {
	err := im.Get(c, key, container)
	if err == nil {
		im.metrics.BumpSum("hit", 1, "pfx", im.pfx)
		return nil
	} else if err != ErrNotFound {
		return err
	}
	im.metrics.BumpSum("miss", 1, "pfx", im.pfx)

	val, err := getter()
	if err != nil {
		return err
	}
	rv := reflect.ValueOf(val)
	if !rv.IsValid() || rv.Kind() != reflect.Ptr || rv.IsNil() {
		c.WithFields(log.Fields{"key": key, "pfx": im.pfx}).Error("getter returned a non pointer")
		return ErrBadGetterResult
	}

	// store failures are logged by Set and not returned
	_ = im.Set(c, key, val)

	reflect.ValueOf(container).Elem().Set(rv.Elem())
	return nil
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	key = Key(im.pfx, key)
	c = ctx.WithFields(c, log.Fields{"key": key})

	val, _, err := im.provider.Get(c, key)
	if err == provider.ErrNotFound {
		return ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("provider.Get failed")
		return err
	}
	if err := im.deserialize(val, container); err != nil {
		im.metrics.BumpSum("decode.err", 1, "pfx", im.pfx)
		c.WithField("err", err).Warn("deserialize failed, dropping entry")
		_ = im.provider.Del(c, key)
		return ErrNotFound
	}
	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	key = Key(im.pfx, key)
	c = ctx.WithFields(c, log.Fields{"key": key})

	val, err := im.serialize(value)
	if err != nil {
		c.WithField("err", err).Error("serialize failed")
		return err
	}
	if err := im.provider.Set(c, key, val, im.ttl); err != nil {
		c.WithField("err", err).Error("provider.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	key = Key(im.pfx, key)
	if err := im.provider.Del(c, key); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("provider.Del failed")
		return err
	}
	return nil
}
