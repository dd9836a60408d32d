package nft

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/base/log"
	"github.com/x-xyz/aptos-market/domain"
)

// DecodeHexText turns a "0x"-prefixed vector<u8> into UTF-8 text.
func DecodeHexText(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return "", domain.ErrInvalidHex
	}
	if !utf8.Valid(b) {
		return "", domain.ErrInvalidUtf8
	}
	return string(b), nil
}

// EncodeHexText is the inverse of DecodeHexText, used for message arguments.
func EncodeHexText(s string) string {
	return hexutil.Encode([]byte(s))
}

// RawRecord is one entry of the marketplace resource's nfts vector.
type RawRecord struct {
	ID            U64        `json:"id"`
	Owner         string     `json:"owner"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	URI           string     `json:"uri"`
	Price         MinorUnits `json:"price"`
	ForSale       bool       `json:"for_sale"`
	Rarity        uint8      `json:"rarity"`
	IsAuction     bool       `json:"is_auction"`
	AuctionEnd    U64        `json:"auction_end"`
	HighestBid    MinorUnits `json:"highest_bid"`
	HighestBidder string     `json:"highest_bidder"`
	StartingBid   MinorUnits `json:"starting_bid"`
}

// MarketplaceResource is the data of <module>::NFTMarketplace::Marketplace.
type MarketplaceResource struct {
	Nfts []json.RawMessage `json:"nfts"`
}

var requiredRecordFields = []string{"id", "owner", "name", "description", "uri", "price", "for_sale", "rarity"}

// DecodeRecord validates the shape of one resource entry and decodes it.
func DecodeRecord(raw json.RawMessage) (*NFTRecord, error) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, domain.NewDecodeError("record", domain.ErrUnexpectedShape)
	}
	for _, f := range requiredRecordFields {
		if _, ok := fields[f]; !ok {
			return nil, domain.NewDecodeError(f, domain.ErrUnexpectedShape)
		}
	}

	r := RawRecord{}
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, domain.NewDecodeError("record", err)
	}
	return r.ToRecord()
}

func (r *RawRecord) ToRecord() (*NFTRecord, error) {
	name, err := DecodeHexText(r.Name)
	if err != nil {
		return nil, domain.NewDecodeError("name", err)
	}
	description, err := DecodeHexText(r.Description)
	if err != nil {
		return nil, domain.NewDecodeError("description", err)
	}
	uri, err := DecodeHexText(r.URI)
	if err != nil {
		return nil, domain.NewDecodeError("uri", err)
	}
	owner := domain.Address(r.Owner)
	if !owner.IsValid() {
		return nil, domain.NewDecodeError("owner", domain.ErrInvalidAddress)
	}
	bidder := domain.Address(r.HighestBidder)
	if !bidder.IsEmpty() && !bidder.IsValid() {
		return nil, domain.NewDecodeError("highest_bidder", domain.ErrInvalidAddress)
	}
	if !Rarity(r.Rarity).IsValid() {
		return nil, domain.NewDecodeError("rarity", domain.ErrUnexpectedShape)
	}

	return &NFTRecord{
		ID:            uint64(r.ID),
		Owner:         owner,
		Name:          name,
		Description:   description,
		URI:           uri,
		Price:         r.Price.Major(),
		ForSale:       r.ForSale,
		Rarity:        Rarity(r.Rarity),
		IsAuction:     r.IsAuction,
		AuctionEnd:    int64(r.AuctionEnd),
		HighestBid:    r.HighestBid,
		HighestBidder: bidder,
		StartingBid:   r.StartingBid,
	}, nil
}

// DecodeAll decodes every raw record. Failures are logged and dropped, the
// survivors keep their input order.
func DecodeAll(c ctx.Ctx, raws []json.RawMessage) ([]*NFTRecord, []error) {
	res := make([]*NFTRecord, 0, len(raws))
	errs := []error{}
	for i, raw := range raws {
		r, err := DecodeRecord(raw)
		if err != nil {
			c.WithFields(log.Fields{"err": err, "index": i}).Warn("nft.DecodeRecord failed, record dropped")
			errs = append(errs, err)
			continue
		}
		res = append(res, r)
	}
	return res, errs
}

// DecodeMarketplace decodes the marketplace resource. Only a malformed
// resource is an error, malformed entries are dropped.
func DecodeMarketplace(c ctx.Ctx, data json.RawMessage) ([]*NFTRecord, []error, error) {
	res := MarketplaceResource{}
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, nil, domain.NewDecodeError("marketplace", domain.ErrUnexpectedShape)
	}
	records, errs := DecodeAll(c, res.Nfts)
	return records, errs, nil
}

const detailsArity = 8

// DecodeDetails decodes the positional get_nft_details result
// [id, owner, name, description, uri, price, for_sale, rarity].
func DecodeDetails(vals []json.RawMessage) (*NFTRecord, error) {
	if len(vals) != detailsArity {
		return nil, domain.NewDecodeError("details", domain.ErrUnexpectedShape)
	}

	r := RawRecord{}
	targets := []struct {
		field string
		dst   interface{}
	}{
		{"id", &r.ID},
		{"owner", &r.Owner},
		{"name", &r.Name},
		{"description", &r.Description},
		{"uri", &r.URI},
		{"price", &r.Price},
		{"for_sale", &r.ForSale},
		{"rarity", &r.Rarity},
	}
	for i, t := range targets {
		if err := json.Unmarshal(vals[i], t.dst); err != nil {
			return nil, domain.NewDecodeError(t.field, domain.ErrUnexpectedShape)
		}
	}
	return r.ToRecord()
}

// DecodeIDList accepts both [[ids...]] and [ids...] as returned by
// get_all_nfts_for_owner.
func DecodeIDList(vals []json.RawMessage) ([]uint64, error) {
	if len(vals) == 1 {
		inner := []json.RawMessage{}
		if err := json.Unmarshal(vals[0], &inner); err == nil {
			vals = inner
		}
	}
	ids := make([]uint64, 0, len(vals))
	for _, v := range vals {
		var id U64
		if err := json.Unmarshal(v, &id); err != nil {
			return nil, domain.NewDecodeError("id", domain.ErrUnexpectedShape)
		}
		ids = append(ids, uint64(id))
	}
	return ids, nil
}

// DecodeGift decodes [is_gift, message, from, timestamp].
func DecodeGift(vals []json.RawMessage) (*GiftDetail, error) {
	if len(vals) != 4 {
		return nil, domain.NewDecodeError("gift", domain.ErrUnexpectedShape)
	}
	var (
		isGift  bool
		message string
		from    string
		ts      U64
	)
	if err := json.Unmarshal(vals[0], &isGift); err != nil {
		return nil, domain.NewDecodeError("is_gift", domain.ErrUnexpectedShape)
	}
	if err := json.Unmarshal(vals[1], &message); err != nil {
		return nil, domain.NewDecodeError("message", domain.ErrUnexpectedShape)
	}
	if err := json.Unmarshal(vals[2], &from); err != nil {
		return nil, domain.NewDecodeError("from", domain.ErrUnexpectedShape)
	}
	if err := json.Unmarshal(vals[3], &ts); err != nil {
		return nil, domain.NewDecodeError("timestamp", domain.ErrUnexpectedShape)
	}

	g := &GiftDetail{IsGift: isGift, From: domain.Address(from), Timestamp: int64(ts)}
	if !isGift {
		return g, nil
	}
	text, err := DecodeHexText(message)
	if err != nil {
		return nil, domain.NewDecodeError("message", err)
	}
	g.Message = text
	return g, nil
}

type rawOffer struct {
	OfferID    U64        `json:"offer_id"`
	NftID      U64        `json:"nft_id"`
	Buyer      string     `json:"buyer"`
	Amount     MinorUnits `json:"amount"`
	Expiration U64        `json:"expiration"`
	Status     uint8      `json:"status"`
}

// DecodeOffers decodes the get_offers_for_nft result, a single vector of
// offer structs. Malformed offers are dropped.
func DecodeOffers(c ctx.Ctx, vals []json.RawMessage) ([]*Offer, error) {
	if len(vals) == 0 {
		return []*Offer{}, nil
	}
	raws := []json.RawMessage{}
	if err := json.Unmarshal(vals[0], &raws); err != nil {
		return nil, domain.NewDecodeError("offers", domain.ErrUnexpectedShape)
	}

	res := make([]*Offer, 0, len(raws))
	for i, raw := range raws {
		o := rawOffer{}
		if err := json.Unmarshal(raw, &o); err != nil {
			c.WithFields(log.Fields{"err": err, "index": i}).Warn("decode offer failed, offer dropped")
			continue
		}
		buyer := domain.Address(o.Buyer)
		if !buyer.IsValid() {
			c.WithFields(log.Fields{"buyer": o.Buyer, "index": i}).Warn("invalid offer buyer, offer dropped")
			continue
		}
		res = append(res, &Offer{
			OfferID:    uint64(o.OfferID),
			NftID:      uint64(o.NftID),
			Buyer:      buyer,
			Amount:     o.Amount,
			Expiration: int64(o.Expiration),
			Status:     OfferStatus(o.Status),
		})
	}
	return res, nil
}
