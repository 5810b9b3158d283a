package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <text>",
	Short: "Preview extraction for a report",
	Long: `Parse a report and print the extracted fields without sending
anything to the sheet. Useful for checking how a message will be filed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	svc, err := requireSettings()
	if err != nil {
		return err
	}
	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	extractor, err := newExtractor(settings)
	if err != nil {
		return err
	}

	report := extractor.Extract(strings.Join(args, " "))

	fields := []struct {
		label string
		value string
	}{
		{"Organization", report.Organization},
		{"Date", report.Timestamp},
		{"Chassis number", report.ChassisNumber},
		{"Model", report.Model},
		{"Failure description", report.FailureDescription},
		{"Description", report.Description},
		{"Mileage/hours", report.MileageHours},
	}
	for _, f := range fields {
		value := f.value
		if value == "" {
			value = "(empty)"
		}
		cmd.Printf("%-20s %s\n", f.label+":", value)
	}
	return nil
}
