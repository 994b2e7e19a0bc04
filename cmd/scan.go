package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/people-moves/internal/logger"
)

func scanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Run one aggregation pass over all tracked companies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			defer func() {
				_ = log.Sync()
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			db, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			scanner, err := buildScanner(cfg, db, log)
			if err != nil {
				return err
			}

			stored, err := scanner.Scan(ctx)
			if err != nil {
				return fmt.Errorf("scan: %w", err)
			}

			log.Info("scan finished", logger.Int("stored", stored))
			fmt.Printf("Stored %d pending announcements\n", stored)
			return nil
		},
	}
}
