package cli

import (
	"errors"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/haulware/haulbot/internal/adapters/driving/telegram"
	"github.com/haulware/haulbot/internal/config"
	"github.com/haulware/haulbot/internal/core/domain"
	"github.com/haulware/haulbot/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the chat bot daemon",
	Long: `Run the long-polling chat bot.

Configuration problems (missing token, unreadable credentials, an
unreachable sheet) are fatal at startup. Once polling, a single
message's failure never stops the loop. Edits to the settings file are
picked up without a restart.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	svc, err := requireSettings()
	if err != nil {
		return err
	}
	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if !settings.Bot.IsConfigured() {
		return errors.New("bot token is not set; run 'haulbot settings wizard' or set BOT_TOKEN")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	intake, cleanup, err := buildIntake(ctx, settings)
	if err != nil {
		return err
	}
	// cleanup is swapped on reload from the watch goroutine; close
	// whichever pipeline is current at exit.
	var cleanupMu sync.Mutex
	defer func() {
		cleanupMu.Lock()
		defer cleanupMu.Unlock()
		cleanup()
	}()

	bot, err := telegram.NewBot(telegram.Config{
		Token:   settings.Bot.Token,
		Workers: settings.Intake.Workers,
	}, intake)
	if err != nil {
		return fmt.Errorf("connecting to the bot API: %w", err)
	}

	// Rebuild the pipeline when the settings file changes. The bot keeps
	// its old pipeline when the new settings fail to connect.
	manager := config.NewManager(svc)
	manager.Subscribe(func(updated *domain.AppSettings) {
		newIntake, newCleanup, err := buildIntake(ctx, updated)
		if err != nil {
			logger.Error("Keeping previous settings, reload failed: %v", err)
			return
		}
		cleanupMu.Lock()
		oldCleanup := cleanup
		cleanup = newCleanup
		cleanupMu.Unlock()
		bot.SetIntake(newIntake)
		oldCleanup()
	})
	go func() {
		if err := manager.Watch(ctx); err != nil {
			logger.Warn("Settings watch stopped: %v", err)
		}
	}()

	return bot.Run(ctx)
}
