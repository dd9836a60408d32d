package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/x-xyz/aptos-market/domain"
	"github.com/x-xyz/aptos-market/domain/analytics"
	"github.com/x-xyz/aptos-market/domain/listing"
	"github.com/x-xyz/aptos-market/domain/nft"
)

type filterFlags struct {
	rarity uint8
	min    string
	max    string
	query  string
	status string
	sortBy string
	page   int
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint8Var(&f.rarity, "rarity", 0, "rarity tier 1-4, 0 for any")
	cmd.Flags().StringVar(&f.min, "min", "", "minimum price, inclusive")
	cmd.Flags().StringVar(&f.max, "max", "", "maximum price, inclusive")
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "match against name or id")
	cmd.Flags().StringVar(&f.status, "status", string(listing.StatusAll), "all, auction or buyNow")
	cmd.Flags().StringVar(&f.sortBy, "sort", string(listing.SortNewest), "newest, oldest, priceHigh or priceLow")
	cmd.Flags().IntVarP(&f.page, "page", "p", 1, "page number, starting at 1")
}

func (f *filterFlags) filterState() (listing.FilterState, error) {
	state := listing.FilterState{
		Rarity:      nft.Rarity(f.rarity),
		SearchQuery: f.query,
		Status:      listing.StatusFilter(f.status),
		SortBy:      listing.SortOption(f.sortBy),
	}
	bound := func(field, s string) (*decimal.Decimal, error) {
		if s == "" {
			return nil, nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil, domain.NewValidationError(field, domain.ErrInvalidNumberFormat)
		}
		return &d, nil
	}
	var err error
	if state.PriceRange.Min, err = bound("min", f.min); err != nil {
		return state, err
	}
	if state.PriceRange.Max, err = bound("max", f.max); err != nil {
		return state, err
	}
	return state, nil
}

var listingFilters filterFlags

var listingsCmd = &cobra.Command{
	Use:   "listings",
	Short: "Show the actionable marketplace listings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filters, err := listingFilters.filterState()
		if err != nil {
			return err
		}
		p, err := stack.Listing.Query(cmdCtx, filters, listingFilters.page)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderListings(p, time.Now()))
		return nil
	},
}

var ownedFilters filterFlags

var ownedCmd = &cobra.Command{
	Use:   "owned <address>",
	Short: "Show the nfts held by an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner := domain.Address(args[0])
		if !owner.IsValid() {
			return domain.NewValidationError("owner", domain.ErrInvalidAddress)
		}
		filters, err := ownedFilters.filterState()
		if err != nil {
			return err
		}
		p, err := stack.Collection.Owned(cmdCtx, owner, filters, ownedFilters.page)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderOwned(p, time.Now()))
		return nil
	},
}

var offersLiveOnly bool

var offersCmd = &cobra.Command{
	Use:   "offers <nftId>",
	Short: "Show the offers made on an nft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("nftId", args[0])
		if err != nil {
			return err
		}
		book, err := stack.Offer.FindBook(cmdCtx, id, offersLiveOnly)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderBook(book, time.Now()))
		return nil
	},
}

var (
	analyticsDays    int
	analyticsAccount string
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show market metrics, daily volume and the minting config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		m, err := stack.Analytics.Metrics(cmdCtx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, renderMetrics(m))

		series, err := stack.Analytics.TimeSeries(cmdCtx, analyticsDays)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, renderSeries(series))

		cfg, err := stack.Analytics.MintingConfig(cmdCtx, domain.Address(analyticsAccount))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, renderMinting(cfg))
		return nil
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "End every auction whose end time has passed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := stack.Listing.Refresh(cmdCtx); err != nil {
			return err
		}
		invoked, err := stack.Listing.Sweep(cmdCtx, time.Now())
		fmt.Fprintln(cmd.OutOrStdout(), statsStyle.Render(fmt.Sprintf("end auction invoked for %d nfts", invoked)))
		return err
	},
}

func init() {
	listingFilters.register(listingsCmd)
	ownedFilters.register(ownedCmd)
	offersCmd.Flags().BoolVar(&offersLiveOnly, "live", false, "only pending, unexpired offers")
	analyticsCmd.Flags().IntVar(&analyticsDays, "days", analytics.DefaultSeriesDays, "days of daily metrics")
	analyticsCmd.Flags().StringVar(&analyticsAccount, "account", "", "also report whether this account is whitelisted")
}
