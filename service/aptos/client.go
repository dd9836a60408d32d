package aptos

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status not 2xx")
)

type ClientCfg struct {
	// NodeUrl is the fullnode REST root, e.g. https://fullnode.testnet.aptoslabs.com/v1
	NodeUrl string
	Timeout time.Duration
	// WaitTimeout bounds WaitForTransaction
	WaitTimeout time.Duration
	// PollInterval is the first backoff step of WaitForTransaction
	PollInterval time.Duration
	RetryCount   int
}

// ApiError is the error body of the fullnode REST api.
type ApiError struct {
	Message     string `json:"message"`
	ErrorCode   string `json:"error_code"`
	VmErrorCode *int   `json:"vm_error_code,omitempty"`
}

type resource struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}
