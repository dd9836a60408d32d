package domain

import (
	"regexp"
	"strings"
)

type SortDir int8

const (
	SortDirAsc  SortDir = 1
	SortDirDesc SortDir = -1
)

// Address is an account address on the marketplace chain: 0x followed by
// up to 64 hex digits.
type Address string

var addressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{1,64}$`)

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) IsValid() bool {
	return addressRe.MatchString(string(a))
}

// Long returns the zero padded 64 digit form, the canonical form for comparison.
func (a Address) Long() Address {
	s := strings.TrimPrefix(strings.ToLower(string(a)), "0x")
	if len(s) >= 64 {
		return Address("0x" + s)
	}
	return Address("0x" + strings.Repeat("0", 64-len(s)) + s)
}

func (a Address) Equals(b Address) bool {
	return a.Long() == b.Long()
}

// Short renders 0x1234...abcd for display.
func (a Address) Short() string {
	s := string(a)
	if len(s) <= 10 {
		return s
	}
	return s[:6] + "..." + s[len(s)-4:]
}

func (a Address) String() string {
	return string(a)
}

// TxHash is the hash returned by the wallet for a submitted transaction.
type TxHash string

// FunctionID renders <module>::<moduleName>::<name>, the id of an on-chain function or type.
func FunctionID(module Address, moduleName, name string) string {
	return module.String() + "::" + moduleName + "::" + name
}
