package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stokwatch/stokwatch/internal/config"
	"github.com/stokwatch/stokwatch/internal/engine"
	"github.com/stokwatch/stokwatch/internal/notify"
	"github.com/stokwatch/stokwatch/internal/scrape"
	"github.com/stokwatch/stokwatch/internal/store"
	"github.com/stokwatch/stokwatch/pkg/logger"
)

var checkItemID string

var checkCmd = &cobra.Command{
	Use:   "check [wishlist-id]",
	Short: "Run a one-off stock check for a wishlist",
	Long: "Scrapes the wishlist page once, applies stock transitions, and\n" +
		"dispatches any alerts, without going through the scheduler.",
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkItemID, "item", "", "check a single tracked item by ID")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Schedule.HardTimeout)
	defer cancel()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	var notifier notify.Notifier
	if cfg.Notifications.FCM.Enabled {
		notifier = notify.NewFCMNotifier(cfg.Notifications.FCM)
	} else {
		notifier = notify.NewNoOpNotifier(log)
	}

	registry := scrape.NewRegistry(scrape.NewFetcher(cfg.Scrape, log))
	dispatcher := engine.NewDispatcher(st, notifier, log)
	eng := engine.NewEngine(st, registry, dispatcher,
		engine.WithLogger(log),
		engine.WithSoftTimeout(cfg.Schedule.SoftTimeout),
	)

	if checkItemID != "" {
		if err := eng.CheckItem(ctx, args[0], checkItemID); err != nil {
			return fmt.Errorf("checking item: %w", err)
		}
		fmt.Println("item check complete")
		return nil
	}

	processed, err := eng.CheckList(ctx, args[0])
	if err != nil {
		return fmt.Errorf("checking wishlist: %w", err)
	}

	fmt.Printf("check complete, %d items processed\n", processed)
	return nil
}
