package main

import (
	"fmt"
	"os"

	"auction-settlement/internal/bank"
	"auction-settlement/internal/clock"
	"auction-settlement/internal/config"
	"auction-settlement/internal/escrow"
	model "auction-settlement/internal/models"
	"auction-settlement/internal/registry"
	"auction-settlement/internal/server"
	"auction-settlement/internal/storage"
	"auction-settlement/internal/trading"
	"auction-settlement/utils"
)

func main() {
	cfg := loadConfig()
	utils.SetupLogger(cfg.Logging.Level, cfg.Logging.Dir)

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		utils.Fatal("failed to open storage", map[string]any{"path": cfg.Storage.Path, "error": err.Error()})
	}
	defer store.Close()

	clk := clock.NewSystem()
	accounts := bank.NewMemoryBank()
	titles := registry.NewMemoryRegistry()
	ledger := escrow.NewLedger(accounts, clk, cfg.Market.MaxPrice)

	prepopulateMarket(accounts, titles)

	service := trading.NewService(ledger, accounts, titles, store, store, clk, trading.Options{
		SettlementWindow: cfg.Market.SettlementWindow.Std(),
		MinListingLead:   cfg.Market.MinListingLead.Std(),
		MaxListingLead:   cfg.Market.MaxListingLead.Std(),
		MaxPrice:         cfg.Market.MaxPrice,
	})

	router := server.SetupRouter(service, store)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("Starting settlement server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file named by SETTLEMENT_CONFIG (default
// config.yaml), falling back to defaults when the file does not exist.
func loadConfig() config.Config {
	path := os.Getenv("SETTLEMENT_CONFIG")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config.Default()
		}
		utils.Fatal("failed to load config", map[string]any{"path": path, "error": err.Error()})
	}
	return cfg
}

// prepopulateMarket seeds sample accounts and items into the in-memory
// collaborators so the API is usable out of the box.
func prepopulateMarket(accounts *bank.MemoryBank, titles *registry.MemoryRegistry) {
	accounts.Deposit("alice", 10_000)
	accounts.Deposit("bob", 10_000)
	accounts.Deposit("carol", 10_000)

	items := []struct {
		id         model.ItemID
		collection string
		name       string
		owner      model.AccountID
	}{
		{"item1", "genesis", "Sunrise #1", "alice"},
		{"item2", "genesis", "Sunrise #2", "bob"},
		{"item3", "landscapes", "Valley Mist", "carol"},
	}
	for _, item := range items {
		titles.Register(item.id, item.collection, item.name, item.owner)
	}
}
