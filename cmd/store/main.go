package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	cartapp "github.com/dwikikusuma/tamrin-store/internal/cart/app"
	cartfile "github.com/dwikikusuma/tamrin-store/internal/cart/infra/file"
	catalogapp "github.com/dwikikusuma/tamrin-store/internal/catalog/app"
	"github.com/dwikikusuma/tamrin-store/internal/catalog/infra/fakestore"
	checkoutapp "github.com/dwikikusuma/tamrin-store/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/tamrin-store/internal/checkout/infra/adapter"

	"github.com/dwikikusuma/tamrin-store/cmd/store/ui"
	"github.com/dwikikusuma/tamrin-store/pkg/config"
	"github.com/dwikikusuma/tamrin-store/pkg/logger"
	"github.com/dwikikusuma/tamrin-store/pkg/shutdown"
)

func main() {
	root := &cobra.Command{
		Use:          "store",
		Short:        "Terminal storefront for the Tamrin online store",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logW, closeLog, err := logWriter(cfg.Logging.File)
	if err != nil {
		return err
	}
	defer closeLog()

	log := logger.New(logger.Options{
		Service: "store",
		Env:     cfg.AppEnv,
		Level:   cfg.Logging.Level,
		W:       logW,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	// Catalog
	source := fakestore.NewClient(cfg.API.BaseURL, nil)
	catalogSvc := catalogapp.NewService(source, cfg.API.Limit, log)

	// Cart
	cartStore := cartfile.NewStore(cfg.Cart.Path)
	cartSvc := cartapp.NewService(cartStore, log)

	// Checkout
	cartReader := checkoutadapter.NewCartServiceReader(cartSvc)
	checkoutSvc := checkoutapp.NewService(cartReader, log)

	model := ui.New(catalogSvc, cartSvc, checkoutSvc, cfg.Display.CurrencySymbol)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	log.Info("bye")
	return nil
}

func logWriter(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
