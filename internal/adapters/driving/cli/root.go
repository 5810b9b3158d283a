// Package cli wires the cobra command tree. Commands talk to the core
// through the driving ports; dependency construction for the delivery
// path lives in pipeline.go.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/haulware/haulbot/internal/adapters/driven/config/file"
	"github.com/haulware/haulbot/internal/core/ports/driving"
	"github.com/haulware/haulbot/internal/core/services"
	"github.com/haulware/haulbot/internal/logger"
)

// version is set at build time via ldflags, or through SetVersion.
var version = "dev"

// settingsService is the settings driving port. Tests inject a double
// via SetSettingsService; otherwise it is built from the config file on
// first command run.
var settingsService driving.Settings

var (
	verboseFlag bool
	configDir   string
)

var rootCmd = &cobra.Command{
	Use:   "haulbot",
	Short: "File free-text failure reports into a spreadsheet",
	Long: `haulbot turns free-text machine failure reports into spreadsheet rows.

It listens for chat messages (or takes text from the control panel),
extracts the organization, chassis number, model, mileage or engine
hours and the failure description, and appends one row per report to a
Google Sheet.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		if settingsService != nil {
			return nil
		}
		store, err := file.NewConfigStore(configDir)
		if err != nil {
			return err
		}
		settingsService = services.NewSettingsService(store)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.haulbot)")
}

// SetVersion sets the version string shown by the version command.
func SetVersion(v string) {
	version = v
}

// SetSettingsService injects the settings service. Used by tests.
func SetSettingsService(s driving.Settings) {
	settingsService = s
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// requireSettings returns the settings service or an error when not
// yet configured.
func requireSettings() (driving.Settings, error) {
	if settingsService == nil {
		return nil, errors.New("settings service not configured")
	}
	return settingsService, nil
}
