package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/people-moves/internal/api"
	"github.com/jonesrussell/people-moves/internal/drafting"
	"github.com/jonesrussell/people-moves/internal/logger"
	"github.com/jonesrussell/people-moves/internal/store"
)

// scheduledScanTimeout bounds one cron-triggered aggregation pass.
const scheduledScanTimeout = 30 * time.Minute

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard API with scheduled background scans",
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

			handler := api.NewHandler(
				store.NewAnnouncementRepository(db),
				store.NewPostRepository(db),
				drafting.New(rand.New(rand.NewSource(time.Now().UnixNano()))),
				scanner,
				log,
			)
			server := api.NewServer(handler, api.ServerConfig{
				Port:  cfg.Service.Port,
				Debug: debug,
			}, log)

			scheduler := cron.New()
			_, err = scheduler.AddFunc(cfg.Service.ScanSchedule, func() {
				scanCtx, cancel := context.WithTimeout(ctx, scheduledScanTimeout)
				defer cancel()

				stored, scanErr := scanner.Scan(scanCtx)
				if scanErr != nil {
					log.Error("scheduled scan failed", logger.Error(scanErr))
					return
				}
				log.Info("scheduled scan finished", logger.Int("stored", stored))
			})
			if err != nil {
				return fmt.Errorf("invalid scan schedule %q: %w", cfg.Service.ScanSchedule, err)
			}
			scheduler.Start()
			defer scheduler.Stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.Start()
			}()

			select {
			case err = <-errCh:
				return err
			case <-ctx.Done():
			}

			log.Info("shutting down")
			return server.Shutdown(context.Background())
		},
	}
}
