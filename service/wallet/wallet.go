package wallet

import (
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/base/log"
	"github.com/x-xyz/aptos-market/domain"
)

type SignerCfg struct {
	// Url of the signer bridge endpoint accepting an entry function payload
	Url       string
	Timeout   time.Duration
	AuthToken string
}

type submitResponse struct {
	Hash domain.TxHash `json:"hash"`
}

type errorResponse struct {
	Message string `json:"message"`
}

type remoteSigner struct {
	url string
	rc  *resty.Client
}

// NewRemoteSigner hands payloads to an external signer over HTTP. The signer
// owns the keys, this side never sees them.
func NewRemoteSigner(cfg *SignerCfg) domain.Wallet {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	rc := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if cfg.AuthToken != "" {
		rc.SetAuthToken(cfg.AuthToken)
	}
	return &remoteSigner{url: cfg.Url, rc: rc}
}

func (w *remoteSigner) SignAndSubmit(ctx bCtx.Ctx, payload domain.EntryFunctionPayload) (domain.TxHash, error) {
	res := &submitResponse{}
	resp, err := w.rc.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(res).
		SetError(&errorResponse{}).
		Post(w.url)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "function": payload.Function}).Error("signer request failed")
		return "", err
	}
	if resp.IsError() {
		msg := resp.Status()
		if e, ok := resp.Error().(*errorResponse); ok && e.Message != "" {
			msg = e.Message
		}
		ctx.WithFields(log.Fields{"status": resp.StatusCode(), "msg": msg, "function": payload.Function}).Warn("signer rejected payload")
		return "", xerrors.Errorf("signer: %s", msg)
	}
	if res.Hash == "" {
		return "", domain.ErrUnexpectedShape
	}
	return res.Hash, nil
}

type disabled struct{}

// NewDisabled is the wallet of read-only deployments.
func NewDisabled() domain.Wallet {
	return disabled{}
}

func (disabled) SignAndSubmit(ctx bCtx.Ctx, payload domain.EntryFunctionPayload) (domain.TxHash, error) {
	return "", domain.ErrWalletUnavailable
}
