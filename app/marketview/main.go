package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/aptos-market/app/bootstrap"
	"github.com/x-xyz/aptos-market/base/ctx"
	"github.com/x-xyz/aptos-market/base/goroutine"
	"github.com/x-xyz/aptos-market/base/log"
	bValidator "github.com/x-xyz/aptos-market/base/validator"
	mmiddleware "github.com/x-xyz/aptos-market/middleware"
	analytics_delivery "github.com/x-xyz/aptos-market/stores/analytics/delivery/http"
	collection_delivery "github.com/x-xyz/aptos-market/stores/collection/delivery/http"
	hc_delivery "github.com/x-xyz/aptos-market/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/aptos-market/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/aptos-market/stores/healthcheck/usecase"
	listing_delivery "github.com/x-xyz/aptos-market/stores/listing/delivery/http"
	nft_delivery "github.com/x-xyz/aptos-market/stores/nft/delivery/http"
	notification_delivery "github.com/x-xyz/aptos-market/stores/notification/delivery/http"
	offer_delivery "github.com/x-xyz/aptos-market/stores/offer/delivery/http"
	transaction_delivery "github.com/x-xyz/aptos-market/stores/transaction/delivery/http"
)

var (
	configFile = flag.String("config", bootstrap.DefaultConfigFile, "path of the yaml config")
	noSweep    = flag.Bool("no-sweep", false, "serve without the refresh and sweep tasks")
)

func init() {
	flag.Parse()
	if err := bootstrap.LoadConfig(*configFile); err != nil {
		panic(err)
	}
}

func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.AddContext())
	e.Use(middL.ResponseLogger())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	context := ctx.Background()

	stack, err := bootstrap.Wire(context)
	if err != nil {
		context.WithField("err", err).Error("bootstrap.Wire failed")
		os.Exit(1)
	}
	mmiddleware.SetupCache(viper.GetInt("cache.httpSizeMB"))

	hc := hc_usecase.New(hc_repo.New(stack.Reader))
	hc_delivery.New(e, hc)
	listing_delivery.New(e, stack.Listing)
	nft_delivery.New(e, stack.NftRepo)
	transaction_delivery.New(e, stack.Transaction)
	offer_delivery.New(e, stack.Offer)
	collection_delivery.New(e, stack.Collection)
	analytics_delivery.New(e, stack.Analytics, viper.GetDuration("cache.ttl"))
	notification_delivery.New(e, stack.Notification)

	if !*noSweep {
		if err := stack.Listing.Start(context); err != nil {
			context.WithField("err", err).Error("listing.Start failed")
			os.Exit(1)
		}
	}

	addr := fmt.Sprintf(":%d", viper.GetInt("http.port"))
	serverDone := goroutine.RecoverableGo(func() {
		context.WithField("addr", addr).Info("start server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}, goroutine.WithName("http"))

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-quit:
		log.Log().WithField("signal", sig).Info("received signal")
	case ev, ok := <-serverDone:
		if ok {
			log.Log().WithField("name", ev.Name).Error("server panicked")
		}
	}

	stack.Listing.Stop()
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
