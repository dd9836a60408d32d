package domain

import (
	"encoding/json"

	"github.com/x-xyz/aptos-market/base/ctx"
)

const EntryFunctionPayloadType = "entry_function_payload"

// EntryFunctionPayload is a state changing call handed to the wallet. The
// program does no type level validation, so Arguments must be in the exact
// order and unit convention the entry function expects.
type EntryFunctionPayload struct {
	Type          string        `json:"type"`
	Function      string        `json:"function"`
	TypeArguments []string      `json:"type_arguments"`
	Arguments     []interface{} `json:"arguments"`
}

// ViewRequest is a read-only call, no fee and no side effect.
type ViewRequest struct {
	Function      string        `json:"function"`
	TypeArguments []string      `json:"type_arguments"`
	Arguments     []interface{} `json:"arguments"`
}

type Transaction struct {
	Hash     TxHash `json:"hash"`
	Type     string `json:"type"`
	Version  string `json:"version"`
	Success  bool   `json:"success"`
	VmStatus string `json:"vm_status"`
}

func (t *Transaction) IsPending() bool {
	return t.Type == "pending_transaction"
}

type LedgerInfo struct {
	ChainId         int    `json:"chain_id"`
	LedgerVersion   string `json:"ledger_version"`
	LedgerTimestamp string `json:"ledger_timestamp"`
	BlockHeight     string `json:"block_height"`
}

// ChainReader issues read-only queries against the chain node.
type ChainReader interface {
	// View returns the positional results of a view function
	View(c ctx.Ctx, function string, typeArgs []string, args ...interface{}) ([]json.RawMessage, error)
	// AccountResource returns the data field of a resource stored under addr
	AccountResource(c ctx.Ctx, addr Address, resourceType string) (json.RawMessage, error)
	TransactionByHash(c ctx.Ctx, hash TxHash) (*Transaction, error)
	// WaitForTransaction polls until the transaction leaves the pending state
	WaitForTransaction(c ctx.Ctx, hash TxHash) (*Transaction, error)
	LedgerInfo(c ctx.Ctx) (*LedgerInfo, error)
}

// Wallet signs and submits payloads. Key management is the wallet's own.
type Wallet interface {
	SignAndSubmit(c ctx.Ctx, payload EntryFunctionPayload) (TxHash, error)
}
