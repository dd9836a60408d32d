package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/x-xyz/aptos-market/domain/analytics"
	"github.com/x-xyz/aptos-market/domain/collection"
	"github.com/x-xyz/aptos-market/domain/listing"
	"github.com/x-xyz/aptos-market/domain/nft"
	"github.com/x-xyz/aptos-market/domain/offer"
	"github.com/x-xyz/aptos-market/domain/transaction"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6"))
	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)
	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))
	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("2"))
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("1"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(statsStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers(headers...)
}

func priceCell(r *nft.NFTRecord) string {
	if r.IsAuction {
		return r.HighestBid.Major().String() + " (bid)"
	}
	if r.ForSale {
		return r.Price.String()
	}
	return "-"
}

func statusCell(r *nft.NFTRecord, now time.Time) string {
	switch {
	case r.IsAuction:
		state := r.AuctionState(now)
		if state == nft.AuctionStateActive {
			return fmt.Sprintf("auction, ends %s", time.Unix(r.AuctionEnd, 0).UTC().Format(time.RFC3339))
		}
		return "auction " + string(state)
	case r.ForSale:
		return "buy now"
	}
	return "unlisted"
}

func recordRow(r *nft.NFTRecord, now time.Time) []string {
	return []string{
		strconv.FormatUint(r.ID, 10),
		r.Name,
		r.Rarity.String(),
		priceCell(r),
		statusCell(r, now),
		r.Owner.String(),
	}
}

func pageFooter(page, totalPages, total int) string {
	return statsStyle.Render(fmt.Sprintf("page %d/%d, %d items", page, totalPages, total))
}

func renderListings(p *listing.Page, now time.Time) string {
	t := newTable("ID", "NAME", "RARITY", "PRICE", "STATUS", "OWNER")
	for _, r := range p.Items {
		t.Row(recordRow(r, now)...)
	}
	return t.String() + "\n" + pageFooter(p.Page, p.TotalPages, p.Total)
}

func renderOwned(p *collection.OwnedPage, now time.Time) string {
	t := newTable("ID", "NAME", "RARITY", "PRICE", "STATUS", "GIFT")
	for _, item := range p.Items {
		row := recordRow(item.NFTRecord, now)
		gift := ""
		if item.Gift != nil {
			gift = item.Gift.Message
		}
		t.Row(append(row[:5], gift)...)
	}
	return headerStyle.Render(p.Owner.String()) + "\n" + t.String() + "\n" + pageFooter(p.Page, p.TotalPages, p.Total)
}

func renderBook(b *offer.Book, now time.Time) string {
	t := newTable("OFFER", "BUYER", "AMOUNT", "EXPIRES", "STATUS")
	for _, o := range b.Offers {
		status := o.Status.String()
		if o.Expired {
			status = "expired"
		}
		t.Row(
			strconv.FormatUint(o.OfferID, 10),
			o.Buyer.String(),
			o.AmountMajor.String(),
			time.Unix(o.Expiration, 0).UTC().Format(time.RFC3339),
			status,
		)
	}
	out := t.String()
	if b.Best != nil {
		out += "\n" + okStyle.Render(fmt.Sprintf("best live offer #%d at %s", b.Best.OfferID, b.Best.AmountMajor))
	} else {
		out += "\n" + statsStyle.Render("no live offer")
	}
	return out
}

func renderMetrics(m *analytics.MarketMetrics) string {
	return newTable("VOLUME", "LISTINGS", "SALES", "AVG PRICE", "SELLERS", "BUYERS").
		Row(
			m.TotalVolume.Major().String(),
			strconv.FormatUint(m.TotalListings, 10),
			strconv.FormatUint(m.TotalSales, 10),
			m.AveragePrice.Major().String(),
			strconv.FormatUint(m.UniqueSellers, 10),
			strconv.FormatUint(m.UniqueBuyers, 10),
		).
		String()
}

func renderSeries(series []*analytics.DailyMetric) string {
	t := newTable("DAY", "VOLUME", "TXS")
	for _, d := range series {
		t.Row(
			time.Unix(d.Timestamp, 0).UTC().Format("2006-01-02"),
			d.Volume.Major().String(),
			strconv.FormatUint(d.Transactions, 10),
		)
	}
	return t.String()
}

func renderMinting(m *analytics.MintingConfig) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("minting fee: %s", m.FeeMajor))
	if !m.Account.IsEmpty() {
		b.WriteString(fmt.Sprintf("\n%s whitelisted: %t", m.Account, m.Whitelisted))
	}
	return statsStyle.Render(b.String())
}

func renderResult(res *transaction.Result) string {
	out := fmt.Sprintf("%s submitted, hash %s", res.Function, res.Hash)
	if res.Version != "" {
		out += ", version " + res.Version
	}
	return okStyle.Render(out)
}
