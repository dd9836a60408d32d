package aptos

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/xerrors"

	"github.com/x-xyz/aptos-market/base/backoff"
	bCtx "github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/base/log"
	"github.com/x-xyz/aptos-market/base/metrics"
	"github.com/x-xyz/aptos-market/domain"
)

const (
	defaultTimeout      = 10 * time.Second
	defaultWaitTimeout  = 30 * time.Second
	defaultPollInterval = 250 * time.Millisecond
	maxPollInterval     = 2 * time.Second
)

type client struct {
	rc           *resty.Client
	waitTimeout  time.Duration
	pollInterval time.Duration
	metrics      metrics.Service
}

func NewClient(cfg *ClientCfg) domain.ChainReader {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	waitTimeout := cfg.WaitTimeout
	if waitTimeout <= 0 {
		waitTimeout = defaultWaitTimeout
	}
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	rc := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.NodeUrl, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return resp.StatusCode() == http.StatusTooManyRequests || resp.StatusCode() >= http.StatusInternalServerError
		})

	return &client{
		rc:           rc,
		waitTimeout:  waitTimeout,
		pollInterval: pollInterval,
		metrics:      metrics.New("aptos"),
	}
}

func (c *client) View(ctx bCtx.Ctx, function string, typeArgs []string, args ...interface{}) ([]json.RawMessage, error) {
	if typeArgs == nil {
		typeArgs = []string{}
	}
	if args == nil {
		args = []interface{}{}
	}
	body := domain.ViewRequest{
		Function:      function,
		TypeArguments: typeArgs,
		Arguments:     args,
	}

	res := []json.RawMessage{}
	req := c.rc.R().SetBody(body).SetResult(&res)
	if err := c.do(ctx, "view", req, http.MethodPost, "/view"); err != nil {
		ctx.WithFields(log.Fields{"err": err, "function": function}).Error("c.do failed")
		return nil, err
	}
	return res, nil
}

func (c *client) AccountResource(ctx bCtx.Ctx, addr domain.Address, resourceType string) (json.RawMessage, error) {
	if !addr.IsValid() {
		return nil, domain.ErrInvalidAddress
	}

	res := resource{}
	path := "/accounts/" + addr.String() + "/resource/" + url.PathEscape(resourceType)
	req := c.rc.R().SetResult(&res)
	if err := c.do(ctx, "resource", req, http.MethodGet, path); err != nil {
		ctx.WithFields(log.Fields{"err": err, "addr": addr, "type": resourceType}).Error("c.do failed")
		return nil, err
	}
	if len(res.Data) == 0 {
		return nil, domain.ErrUnexpectedShape
	}
	return res.Data, nil
}

func (c *client) TransactionByHash(ctx bCtx.Ctx, hash domain.TxHash) (*domain.Transaction, error) {
	res := &domain.Transaction{}
	req := c.rc.R().SetResult(res)
	if err := c.do(ctx, "tx", req, http.MethodGet, "/transactions/by_hash/"+string(hash)); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			ctx.WithFields(log.Fields{"err": err, "hash": hash}).Error("c.do failed")
		}
		return nil, err
	}
	return res, nil
}

func (c *client) WaitForTransaction(ctx bCtx.Ctx, hash domain.TxHash) (*domain.Transaction, error) {
	waitCtx, cancel := bCtx.WithTimeout(ctx, c.waitTimeout)
	defer cancel()

	b := backoff.NewExponential(c.pollInterval, maxPollInterval)
	for {
		tx, err := c.TransactionByHash(waitCtx, hash)
		switch {
		case err == nil && !tx.IsPending():
			return tx, nil
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			if waitCtx.Err() == nil {
				return nil, err
			}
		}

		if err := b.Backoff(waitCtx); err != nil {
			ctx.WithFields(log.Fields{"hash": hash, "polls": b.Count()}).Warn("wait for transaction timed out")
			return nil, xerrors.Errorf("%s: %w", hash, domain.ErrTxTimeout)
		}
	}
}

func (c *client) LedgerInfo(ctx bCtx.Ctx) (*domain.LedgerInfo, error) {
	res := &domain.LedgerInfo{}
	req := c.rc.R().SetResult(res)
	if err := c.do(ctx, "ledger", req, http.MethodGet, "/"); err != nil {
		ctx.WithField("err", err).Error("c.do failed")
		return nil, err
	}
	return res, nil
}

func (c *client) do(ctx bCtx.Ctx, op string, req *resty.Request, method, path string) error {
	defer c.metrics.BumpTime("latency", "op", op).End()

	resp, err := req.SetContext(ctx).SetError(&ApiError{}).Execute(method, path)
	if err != nil {
		c.metrics.BumpSum("err", 1, "op", op)
		return err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return domain.ErrNotFound
	}
	if resp.IsError() {
		c.metrics.BumpSum("err", 1, "op", op)
		msg := resp.Status()
		if apiErr, ok := resp.Error().(*ApiError); ok && apiErr.Message != "" {
			msg = apiErr.Message
		}
		return xerrors.Errorf("%d %s: %w", resp.StatusCode(), msg, ErrStatusCodeNotOk)
	}
	return nil
}
