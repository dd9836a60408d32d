package nft

import (
	"time"

	"github.com/x-xyz/aptos-market/domain"
)

type OfferStatus uint8

const (
	OfferStatusPending   OfferStatus = 0
	OfferStatusAccepted  OfferStatus = 1
	OfferStatusCancelled OfferStatus = 2
)

func (s OfferStatus) String() string {
	switch s {
	case OfferStatusPending:
		return "pending"
	case OfferStatusAccepted:
		return "accepted"
	case OfferStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

func (s OfferStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Offer lifecycle is decided on chain, the client only displays it.
type Offer struct {
	OfferID    uint64         `json:"offerId"`
	NftID      uint64         `json:"nftId"`
	Buyer      domain.Address `json:"buyer"`
	Amount     MinorUnits     `json:"amount"`
	Expiration int64          `json:"expiration"`
	Status     OfferStatus    `json:"status"`
}

func (o *Offer) IsExpired(now time.Time) bool {
	return o.Expiration <= now.Unix()
}

// IsLive reports a pending offer that has not expired yet.
func (o *Offer) IsLive(now time.Time) bool {
	return o.Status == OfferStatusPending && !o.IsExpired(now)
}

// GiftDetail is attached by transfer_nft_with_message.
type GiftDetail struct {
	IsGift    bool           `json:"isGift"`
	Message   string         `json:"message"`
	From      domain.Address `json:"from"`
	Timestamp int64          `json:"timestamp"`
}
