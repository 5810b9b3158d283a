package cli

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/haulware/haulbot/internal/adapters/driving/tui"
)

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Launch the control panel",
	Long: `Launch the terminal control panel.

The panel drives the same pipeline as the chat bot: paste a report,
check the extracted fields, and send the row to the sheet. Sending is
synchronous; the panel waits for delivery to succeed or exhaust its
attempts.

Controls:
  ctrl+d   Check (preview the extracted fields)
  ctrl+s   Send to the sheet
  ctrl+x   Clear
  ctrl+c   Quit`,
	RunE: runPanel,
}

func init() {
	rootCmd.AddCommand(panelCmd)
}

func runPanel(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in panel: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	svc, err := requireSettings()
	if err != nil {
		return err
	}
	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	intake, cleanup, err := buildIntake(ctx, settings)
	if err != nil {
		return err
	}
	defer cleanup()

	app, err := tui.NewApp(intake)
	if err != nil {
		return fmt.Errorf("failed to create panel: %w", err)
	}
	app.WithContext(ctx)

	if err := app.Run(); err != nil {
		return fmt.Errorf("panel error: %w", err)
	}
	return nil
}
