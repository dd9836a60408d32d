// Package bootstrap loads configuration and wires the marketplace services
// shared by marketview and marketctl.
package bootstrap

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/base/env"
	"github.com/x-xyz/aptos-market/base/log"
	"github.com/x-xyz/aptos-market/domain"
	"github.com/x-xyz/aptos-market/domain/analytics"
	"github.com/x-xyz/aptos-market/domain/collection"
	"github.com/x-xyz/aptos-market/domain/listing"
	"github.com/x-xyz/aptos-market/domain/nft"
	"github.com/x-xyz/aptos-market/domain/notification"
	"github.com/x-xyz/aptos-market/domain/offer"
	"github.com/x-xyz/aptos-market/domain/transaction"
	"github.com/x-xyz/aptos-market/service/aptos"
	"github.com/x-xyz/aptos-market/service/cache"
	"github.com/x-xyz/aptos-market/service/cache/provider/primitive"
	"github.com/x-xyz/aptos-market/service/wallet"
	analytics_usecase "github.com/x-xyz/aptos-market/stores/analytics/usecase"
	collection_usecase "github.com/x-xyz/aptos-market/stores/collection/usecase"
	listing_usecase "github.com/x-xyz/aptos-market/stores/listing/usecase"
	nft_repository "github.com/x-xyz/aptos-market/stores/nft/repository"
	notification_usecase "github.com/x-xyz/aptos-market/stores/notification/usecase"
	offer_usecase "github.com/x-xyz/aptos-market/stores/offer/usecase"
	transaction_usecase "github.com/x-xyz/aptos-market/stores/transaction/usecase"
)

const (
	DefaultConfigFile = "infra/configs/config.yaml"
	envPrefix         = "MARKETVIEW"
)

// LoadConfig reads .env, then the yaml config, then environment overrides
// such as MARKETVIEW_APTOS_NODEURL.
func LoadConfig(file string) error {
	if err := env.Load(".env"); err != nil {
		return err
	}
	if file == "" {
		file = DefaultConfigFile
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(file)
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		return err
	}

	level := viper.GetString("log.level")
	if viper.GetBool("debug") {
		level = "debug"
	}
	if err := log.Setup(log.Config{
		Level:      level,
		File:       viper.GetString("log.file"),
		MaxSizeMB:  viper.GetInt("log.maxSizeMB"),
		MaxBackups: viper.GetInt("log.maxBackups"),
		MaxAgeDays: viper.GetInt("log.maxAgeDays"),
	}); err != nil {
		return err
	}
	if viper.GetBool("debug") {
		log.Log().Info("Service RUN on DEBUG mode")
	}
	return nil
}

// Stack holds every wired service.
type Stack struct {
	Market       domain.Address
	Reader       domain.ChainReader
	Wallet       domain.Wallet
	NftRepo      nft.Repository
	Notification notification.Usecase
	Transaction  transaction.Usecase
	Listing      listing.Usecase
	Collection   collection.Usecase
	Offer        offer.Usecase
	Analytics    analytics.Usecase
}

// Wire builds the stack from the loaded configuration.
func Wire(c ctx.Ctx) (*Stack, error) {
	market := domain.Address(viper.GetString("marketplace.address"))
	if !market.IsValid() {
		return nil, domain.NewValidationError("marketplace.address", domain.ErrInvalidAddress)
	}
	module := domain.Address(viper.GetString("marketplace.moduleAddress"))
	if !module.IsEmpty() && !module.IsValid() {
		return nil, domain.NewValidationError("marketplace.moduleAddress", domain.ErrInvalidAddress)
	}

	c.WithField("nodeUrl", viper.GetString("aptos.nodeUrl")).Info("init aptos client")
	reader := aptos.NewClient(&aptos.ClientCfg{
		NodeUrl:      viper.GetString("aptos.nodeUrl"),
		Timeout:      viper.GetDuration("aptos.timeout"),
		WaitTimeout:  viper.GetDuration("tx.waitTimeout"),
		PollInterval: viper.GetDuration("tx.pollInterval"),
		RetryCount:   viper.GetInt("aptos.retryCount"),
	})

	var w domain.Wallet
	if url := viper.GetString("wallet.signerUrl"); url != "" {
		c.WithField("signerUrl", url).Info("init remote signer")
		w = wallet.NewRemoteSigner(&wallet.SignerCfg{
			Url:       url,
			Timeout:   viper.GetDuration("wallet.timeout"),
			AuthToken: viper.GetString("wallet.authToken"),
		})
	} else {
		c.Warn("no wallet.signerUrl, submissions are disabled")
		w = wallet.NewDisabled()
	}

	local := primitive.NewPrimitive("marketview", viper.GetInt("cache.sizeMB"))
	ttl := viper.GetDuration("cache.ttl")

	nftRepo := nft_repository.New(reader, nft_repository.Config{
		MarketAddress: market,
		ModuleAddress: module,
		OwnerLimit:    viper.GetInt("marketplace.ownerLimit"),
		Concurrency:   viper.GetInt("marketplace.concurrency"),
		DetailsCache: cache.New(cache.ServiceConfig{
			Ttl:   ttl,
			Pfx:   "nft",
			Cache: local,
		}),
	})

	notifier := notification_usecase.New(notification_usecase.Config{
		Capacity: viper.GetInt("notification.capacity"),
	})
	tx := transaction_usecase.New(nftRepo, w, reader, transaction_usecase.Config{
		MarketAddress: market,
		ModuleAddress: module,
		SkipWait:      viper.GetBool("tx.skipWait"),
	})
	pageSize := viper.GetInt("pipeline.pageSize")

	return &Stack{
		Market:       market,
		Reader:       reader,
		Wallet:       w,
		NftRepo:      nftRepo,
		Notification: notifier,
		Transaction:  tx,
		Listing: listing_usecase.New(nftRepo, tx, notifier, listing_usecase.Config{
			PageSize:        pageSize,
			RefreshInterval: viper.GetDuration("pipeline.refreshInterval"),
			SweepInterval:   viper.GetDuration("pipeline.sweepInterval"),
		}),
		Collection: collection_usecase.New(nftRepo, collection_usecase.Config{
			PageSize: pageSize,
			WithGift: true,
		}),
		Offer: offer_usecase.New(nftRepo, tx, nil),
		Analytics: analytics_usecase.New(reader, analytics_usecase.Config{
			MarketAddress: market,
			ModuleAddress: module,
			Cache: cache.New(cache.ServiceConfig{
				Ttl:   ttl,
				Pfx:   "analytics",
				Cache: local,
			}),
		}),
	}, nil
}
