package cache

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/service/cache/provider"
	"github.com/x-xyz/aptos-market/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type value struct {
	Value string `json:"value"`
}

type testsuite struct {
	suite.Suite
	im    *impl
	cache provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.cache = primitive.NewPrimitive("test", 1)
	ts.im = New(ServiceConfig{
		Ttl:   time.Second,
		Pfx:   "testing",
		Cache: ts.cache,
	}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGet() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))

	sv, err := json.Marshal(v)
	ts.NoError(err)
	ts.NoError(ts.cache.Set(mockCtx, Key(ts.im.pfx, k), sv, time.Second))
	ts.NoError(ts.im.Get(mockCtx, k, c))
	ts.Equal(v, *c)
}

func (ts *testsuite) TestSet() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.NoError(ts.im.Set(mockCtx, k, v))

	sv, _, err := ts.cache.Get(mockCtx, Key(ts.im.pfx, k))
	ts.NoError(err)

	ts.NoError(json.Unmarshal(sv, c))
	ts.Equal(v, *c)

	time.Sleep(1100 * time.Millisecond)

	_, _, err = ts.cache.Get(mockCtx, Key(ts.im.pfx, k))
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestGetByFunc() {
	var (
		k     = "key"
		v     = value{"value"}
		c     = &value{}
		calls = 0
	)

	getter := func() (interface{}, error) {
		calls++
		return &v, nil
	}
	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, getter))
	ts.Equal(v, *c)

	c2 := &value{}
	ts.NoError(ts.im.GetByFunc(mockCtx, k, c2, getter))
	ts.Equal(v, *c2)
	ts.Equal(1, calls)

	errGetter := errors.New("node down")
	err := ts.im.GetByFunc(mockCtx, "other", &value{}, func() (interface{}, error) {
		return nil, errGetter
	})
	ts.Equal(errGetter, err)
}

func (ts *testsuite) TestCorruptEntryIsDropped() {
	k := "corrupt"
	ts.NoError(ts.cache.Set(mockCtx, Key(ts.im.pfx, k), []byte("{not json"), time.Minute))

	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, &value{}))
	_, _, err := ts.cache.Get(mockCtx, Key(ts.im.pfx, k))
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestGetterMustReturnPointer() {
	err := ts.im.GetByFunc(mockCtx, "plain", &value{}, func() (interface{}, error) {
		return value{"value"}, nil
	})
	ts.Equal(ErrBadGetterResult, err)

	var nilValue *value
	err = ts.im.GetByFunc(mockCtx, "nil", &value{}, func() (interface{}, error) {
		return nilValue, nil
	})
	ts.Equal(ErrBadGetterResult, err)
}
