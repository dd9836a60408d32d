package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/x-xyz/aptos-market/domain"
	"github.com/x-xyz/aptos-market/domain/transaction"
)

// txCommand wraps a submission so every command prints its result the same way.
func txCommand(use, short string, args cobra.PositionalArgs, run func(args []string) (*transaction.Result, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := run(args)
			if err != nil {
				stack.Notification.NotifyError(cmdCtx, err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderResult(res))
			return nil
		},
	}
}

var buyCmd = txCommand("buy <nftId>", "Purchase an nft at its listed price", cobra.ExactArgs(1),
	func(args []string) (*transaction.Result, error) {
		id, err := parseID("nftId", args[0])
		if err != nil {
			return nil, err
		}
		return stack.Transaction.Purchase(cmdCtx, id)
	})

var bidCmd = txCommand("bid <nftId> <amount>", "Place a bid on a running auction", cobra.ExactArgs(2),
	func(args []string) (*transaction.Result, error) {
		id, err := parseID("nftId", args[0])
		if err != nil {
			return nil, err
		}
		amount, err := parseAmount("amount", args[1])
		if err != nil {
			return nil, err
		}
		return stack.Transaction.PlaceBid(cmdCtx, id, amount)
	})

var endAuctionCmd = txCommand("end-auction <nftId>", "Settle an auction", cobra.ExactArgs(1),
	func(args []string) (*transaction.Result, error) {
		id, err := parseID("nftId", args[0])
		if err != nil {
			return nil, err
		}
		return stack.Transaction.EndAuction(cmdCtx, id)
	})

var listCmd = txCommand("list <nftId> <price>", "List an nft for sale", cobra.ExactArgs(2),
	func(args []string) (*transaction.Result, error) {
		id, err := parseID("nftId", args[0])
		if err != nil {
			return nil, err
		}
		price, err := parseAmount("price", args[1])
		if err != nil {
			return nil, err
		}
		return stack.Transaction.ListForSale(cmdCtx, id, price)
	})

var auctionCmd = txCommand("auction <nftId> <startingBid> <duration>", "Start an auction, duration like 24h", cobra.ExactArgs(3),
	func(args []string) (*transaction.Result, error) {
		id, err := parseID("nftId", args[0])
		if err != nil {
			return nil, err
		}
		startingBid, err := parseAmount("startingBid", args[1])
		if err != nil {
			return nil, err
		}
		duration, err := time.ParseDuration(args[2])
		if err != nil {
			return nil, domain.NewValidationError("duration", domain.ErrBadParamInput)
		}
		return stack.Transaction.CreateAuction(cmdCtx, id, startingBid, duration)
	})

var (
	transferMessage string
	transferGift    bool
)

var transferCmd = txCommand("transfer <nftId> <to>", "Transfer an nft with an optional note", cobra.ExactArgs(2),
	func(args []string) (*transaction.Result, error) {
		id, err := parseID("nftId", args[0])
		if err != nil {
			return nil, err
		}
		return stack.Transaction.TransferWithMessage(cmdCtx, id, domain.Address(args[1]), transferMessage, transferGift)
	})

var offerCmd = txCommand("offer <nftId> <amount> <expiresIn>", "Make an offer valid for expiresIn, like 72h", cobra.ExactArgs(3),
	func(args []string) (*transaction.Result, error) {
		id, err := parseID("nftId", args[0])
		if err != nil {
			return nil, err
		}
		amount, err := parseAmount("amount", args[1])
		if err != nil {
			return nil, err
		}
		expiresIn, err := time.ParseDuration(args[2])
		if err != nil {
			return nil, domain.NewValidationError("expiration", domain.ErrBadParamInput)
		}
		return stack.Offer.Make(cmdCtx, id, amount, time.Now().Add(expiresIn))
	})

var acceptOfferCmd = txCommand("accept-offer <nftId> <offerId>", "Accept a live offer on an nft you own", cobra.ExactArgs(2),
	func(args []string) (*transaction.Result, error) {
		id, err := parseID("nftId", args[0])
		if err != nil {
			return nil, err
		}
		offerID, err := parseID("offerId", args[1])
		if err != nil {
			return nil, err
		}
		return stack.Offer.Accept(cmdCtx, id, offerID)
	})

func init() {
	transferCmd.Flags().StringVarP(&transferMessage, "message", "m", "", "note stored with the transfer")
	transferCmd.Flags().BoolVar(&transferGift, "gift", false, "mark the transfer as a gift")
}
