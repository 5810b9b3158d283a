package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haulware/haulbot/internal/adapters/driven/sheets"
	"github.com/haulware/haulbot/internal/adapters/driven/storage/sqlite"
	"github.com/haulware/haulbot/internal/logger"
)

var spoolCmd = &cobra.Command{
	Use:   "spool",
	Short: "Manage undelivered rows",
	Long: `Inspect and resubmit rows whose delivery attempts were exhausted.

Undelivered rows are journalled locally so no report is lost while the
sheet is unreachable.`,
	RunE: runSpoolList,
}

var spoolListCmd = &cobra.Command{
	Use:   "list",
	Short: "List undelivered rows",
	RunE:  runSpoolList,
}

var spoolResubmitCmd = &cobra.Command{
	Use:   "resubmit",
	Short: "Resubmit undelivered rows to the sheet",
	RunE:  runSpoolResubmit,
}

func init() {
	spoolCmd.AddCommand(spoolListCmd)
	spoolCmd.AddCommand(spoolResubmitCmd)
	rootCmd.AddCommand(spoolCmd)
}

func runSpoolList(cmd *cobra.Command, _ []string) error {
	spool, err := sqlite.NewSpool("")
	if err != nil {
		return fmt.Errorf("opening spool: %w", err)
	}
	defer spool.Close()

	rows, err := spool.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing spool: %w", err)
	}
	if len(rows) == 0 {
		cmd.Println("Spool is empty.")
		return nil
	}

	for _, r := range rows {
		cmd.Printf("%s  %s\n  %s\n", r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"),
			strings.Join(r.Row, " | "))
	}
	cmd.Printf("\n%d undelivered row(s).\n", len(rows))
	return nil
}

func runSpoolResubmit(cmd *cobra.Command, _ []string) error {
	svc, err := requireSettings()
	if err != nil {
		return err
	}
	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	spool, err := sqlite.NewSpool("")
	if err != nil {
		return fmt.Errorf("opening spool: %w", err)
	}
	defer spool.Close()

	ctx := cmd.Context()
	rows, err := spool.List(ctx)
	if err != nil {
		return fmt.Errorf("listing spool: %w", err)
	}
	if len(rows) == 0 {
		cmd.Println("Spool is empty.")
		return nil
	}

	store, err := sheets.Connect(ctx, settings.Sheets.CredentialsPath, settings.Sheets.Spreadsheet)
	if err != nil {
		return fmt.Errorf("connecting to the sheet: %w", err)
	}

	var delivered int
	for _, r := range rows {
		if err := store.Append(ctx, r.Row); err != nil {
			logger.Error("Resubmit failed for row %s: %v", r.ID, err)
			continue
		}
		if err := spool.Delete(ctx, r.ID); err != nil {
			logger.Warn("Row %s delivered but not removed from spool: %v", r.ID, err)
		}
		delivered++
	}

	cmd.Printf("Resubmitted %d of %d row(s).\n", delivered, len(rows))
	if delivered < len(rows) {
		return fmt.Errorf("%d row(s) still undelivered", len(rows)-delivered)
	}
	return nil
}
