// Package app wires the storefront together: configuration, the API
// gateway, the domain models, the controller and the terminal UI.
package app

import (
	"context"
	"fmt"

	"github.com/Vladislav970/weblarek/internal/api"
	"github.com/Vladislav970/weblarek/internal/config"
	"github.com/Vladislav970/weblarek/internal/events"
	"github.com/Vladislav970/weblarek/internal/model"
	"github.com/Vladislav970/weblarek/internal/shop"
	"github.com/Vladislav970/weblarek/internal/ui"
)

// Options configure an application run.
type Options struct {
	ConfigPath string
	PrefsPath  string
}

// Run builds the full object graph and blocks until the UI exits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	prefs := config.LoadPrefs(opts.PrefsPath)

	client, err := api.NewClient(cfg.APIBaseURL())
	if err != nil {
		return fmt.Errorf("create api client: %w", err)
	}

	bus := events.NewBus()
	catalog := model.NewCatalog(bus)
	cart := model.NewCart(bus)
	buyer := model.NewBuyer(bus)
	gateway := api.NewGateway(client, bus)
	controller := shop.NewController(bus, catalog, cart, buyer, gateway)

	return ui.Run(ui.Options{
		Context:    ctx,
		Bus:        bus,
		Controller: controller,
		Catalog:    catalog,
		Cart:       cart,
		Buyer:      buyer,
		Config:     cfg,
		ThemeName:  prefs.Theme,
		PrefsPath:  opts.PrefsPath,
	})
}
