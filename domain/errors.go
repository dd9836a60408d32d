package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	ErrInvalidAddress      = errors.New("invalid address")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidHex          = errors.New("invalid hex string")
	ErrInvalidUtf8         = errors.New("invalid utf-8 sequence")
	ErrUnexpectedShape     = errors.New("unexpected response shape")

	ErrAuctionEnded     = errors.New("auction has ended")
	ErrNotOnAuction     = errors.New("nft is not on auction")
	ErrNotForSale       = errors.New("nft is not for sale")
	ErrBidTooLow        = errors.New("bid below minimum")
	ErrNonPositive      = errors.New("amount must be positive")
	ErrNegativeAmount   = errors.New("amount must not be negative")
	ErrExpirationPassed = errors.New("expiration is in the past")
	ErrOfferNotLive     = errors.New("offer is not pending or has expired")

	ErrWalletUnavailable = errors.New("wallet unavailable")
	ErrTxFailed          = errors.New("transaction failed on chain")
	ErrTxTimeout         = errors.New("timed out waiting for transaction")
)

// DecodeError marks a raw record that could not be decoded. The record is
// dropped from the result set and never surfaced to the caller.
type DecodeError struct {
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// FetchError marks a failed chain read. The previous snapshot stays displayed.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// SubmissionError is the single opaque failure of a wallet or chain write.
// User rejection, insufficient balance and aborts are not told apart.
type SubmissionError struct {
	Function string
	Err      error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submit %s: %v", e.Function, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// Retryable is always true, the user re-triggers the action explicitly.
func (e *SubmissionError) Retryable() bool { return true }

// ValidationError blocks a submission before it reaches the network.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func NewDecodeError(field string, err error) error {
	return &DecodeError{Field: field, Err: err}
}

func NewFetchError(op string, err error) error {
	return &FetchError{Op: op, Err: err}
}

func NewSubmissionError(function string, err error) error {
	return &SubmissionError{Function: function, Err: err}
}

func NewValidationError(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

func IsDecodeError(err error) bool {
	var e *DecodeError
	return errors.As(err, &e)
}

func IsFetchError(err error) bool {
	var e *FetchError
	return errors.As(err, &e)
}

func IsSubmissionError(err error) bool {
	var e *SubmissionError
	return errors.As(err, &e)
}

func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}
