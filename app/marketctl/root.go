package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/x-xyz/aptos-market/app/bootstrap"
	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/domain"
	"github.com/x-xyz/aptos-market/domain/nft"
)

var (
	configFile string
	stack      *bootstrap.Stack
	cmdCtx     ctx.Ctx
)

var rootCmd = &cobra.Command{
	Use:   "marketctl",
	Short: "Inspect and act on the NFT marketplace from a terminal",
	Long: `marketctl reads listings, collections, offers and analytics straight from the
chain and submits marketplace transactions through the configured signer.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := bootstrap.LoadConfig(configFile); err != nil {
			return err
		}
		cmdCtx = ctx.From(cmd.Context())
		s, err := bootstrap.Wire(cmdCtx)
		if err != nil {
			return err
		}
		stack = s
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", bootstrap.DefaultConfigFile, "path of the yaml config")

	rootCmd.AddCommand(
		listingsCmd,
		ownedCmd,
		offersCmd,
		analyticsCmd,
		sweepCmd,
		buyCmd,
		bidCmd,
		endAuctionCmd,
		listCmd,
		auctionCmd,
		transferCmd,
		offerCmd,
		acceptOfferCmd,
	)
}

func parseID(field, s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(field, domain.ErrInvalidNumberFormat)
	}
	return id, nil
}

func parseAmount(field, s string) (nft.MinorUnits, error) {
	m, err := nft.ParseMajor(s)
	if err != nil {
		return 0, domain.NewValidationError(field, err)
	}
	return m, nil
}
