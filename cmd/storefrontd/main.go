package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/insiderdeals/storefront/config"
	"github.com/insiderdeals/storefront/internal/adminapi"
	"github.com/insiderdeals/storefront/internal/app"
	"github.com/insiderdeals/storefront/internal/publicapi"
	"github.com/insiderdeals/storefront/internal/webserver"
)

var (
	h        = flag.Bool("h", false, "help usage")
	showVer  = flag.Bool("v", false, "show version")
	conffile = flag.String("c", "", "config file, eg: storefront.yml")

	// set at build time
	BuildVersion = "dev"
)

func printHelp() {
	if *h {
		fmt.Fprintf(os.Stderr, "storefrontd version: %s\nUsage: storefrontd -c storefront.yml\n\nOptions:\n", BuildVersion)
		flag.PrintDefaults()
		os.Exit(0)
	}
}

func main() {
	flag.Parse()
	printHelp()

	if *showVer {
		fmt.Println(BuildVersion)
		os.Exit(0)
	}

	cfg := config.LoadConfig(*conffile)

	application := app.NewApplication(cfg)
	if err := application.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer application.Release()

	server := webserver.New(cfg, application.Auth())
	publicapi.InitRouter(server, application)
	adminapi.InitRouter(server, application)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
	zap.L().Info("server stopped")
}
