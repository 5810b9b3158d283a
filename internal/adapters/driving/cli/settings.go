package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/haulware/haulbot/internal/core/domain"
	"github.com/haulware/haulbot/internal/core/services"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the bot token, sheet access, delivery policy and
parser lexicon.

Values set through the environment (BOT_TOKEN, GOOGLE_APPLICATION_CREDENTIALS,
SPREADSHEET_ID, TOGETHER_API_KEY) take precedence over the settings file.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a settings key",
	Long: `Set one settings key in the settings file.

Keys:
  bot.token                 chat bot token
  sheets.credentials_path   service-account JSON key file
  sheets.spreadsheet        spreadsheet ID or full link
  delivery.max_attempts     append attempt ceiling
  delivery.delay_seconds    pause between failed attempts
  llm.api_key               reply augmentation API key
  llm.base_url              OpenAI-compatible endpoint
  llm.model                 chat model name
  parser.lexicon            keyword lexicon (en, ru)
  intake.workers            concurrent chat deliveries`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

// intKeys are the settings keys whose values are stored as integers.
var intKeys = map[string]bool{
	services.KeyMaxAttempts:  true,
	services.KeyDelaySeconds: true,
	services.KeyWorkers:      true,
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := requireSettings()
	if err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Bot]")
	if settings.Bot.Token != "" {
		cmd.Printf("  Token: %s\n", maskSecret(settings.Bot.Token))
	} else {
		cmd.Printf("  Token: (not set)\n")
	}
	cmd.Println()

	cmd.Println("[Sheet]")
	printOrNotSet(cmd, "Credentials", settings.Sheets.CredentialsPath)
	printOrNotSet(cmd, "Spreadsheet", settings.Sheets.Spreadsheet)
	status := "configured"
	if !settings.Sheets.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[Delivery]")
	cmd.Printf("  Max attempts: %d\n", settings.Delivery.MaxAttempts)
	cmd.Printf("  Delay: %s\n", settings.Delivery.Delay)
	cmd.Println()

	cmd.Println("[LLM]")
	if settings.LLM.IsConfigured() {
		cmd.Printf("  API Key: %s\n", maskSecret(settings.LLM.APIKey))
		cmd.Printf("  Base URL: %s\n", settings.LLM.BaseURL)
		cmd.Printf("  Model: %s\n", settings.LLM.Model)
	} else {
		cmd.Printf("  API Key: (not set, reply augmentation disabled)\n")
	}
	cmd.Println()

	cmd.Println("[Parser]")
	cmd.Printf("  Lexicon: %s\n", settings.Parser.Lexicon.Description())
	cmd.Println()

	cmd.Println("[Intake]")
	cmd.Printf("  Workers: %d\n", settings.Intake.Workers)
	cmd.Println()

	if err := settings.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'haulbot settings wizard' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	svc, err := requireSettings()
	if err != nil {
		return err
	}

	key, raw := args[0], args[1]

	var value any = raw
	if intKeys[key] {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return fmt.Errorf("%s needs a positive integer, got %q", key, raw)
		}
		value = n
	}
	if key == services.KeyLexicon && !domain.LexiconName(raw).IsValid() {
		return fmt.Errorf("unknown lexicon %q (available: %s)", raw, lexiconNames())
	}

	if err := svc.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	cmd.Printf("Set %s\n", key)
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	svc, err := requireSettings()
	if err != nil {
		return err
	}

	cmd.Println("haulbot Settings Wizard")
	cmd.Println("=======================")
	cmd.Println()

	reader := bufio.NewReader(os.Stdin)

	// Step 1: Bot token
	cmd.Println("Step 1: Chat Bot")
	cmd.Println("----------------")
	cmd.Print("Enter bot token (empty to keep current): ")
	token := readPassword()
	cmd.Println()
	if token != "" {
		if err := svc.Set(services.KeyBotToken, token); err != nil {
			return fmt.Errorf("failed to save bot token: %w", err)
		}
	}
	cmd.Println()

	// Step 2: Sheet access
	cmd.Println("Step 2: Sheet Access")
	cmd.Println("--------------------")
	cmd.Print("Path to service-account JSON key: ")
	credsPath := readLine(reader)
	if credsPath != "" {
		if _, err := os.Stat(credsPath); err != nil {
			return fmt.Errorf("credentials file: %w", err)
		}
		if err := svc.Set(services.KeyCredsPath, credsPath); err != nil {
			return fmt.Errorf("failed to save credentials path: %w", err)
		}
	}
	cmd.Print("Spreadsheet ID or full link: ")
	spreadsheet := readLine(reader)
	if spreadsheet != "" {
		if err := svc.Set(services.KeySpreadsheet, spreadsheet); err != nil {
			return fmt.Errorf("failed to save spreadsheet: %w", err)
		}
	}
	cmd.Println()

	// Step 3: Parser lexicon
	cmd.Println("Step 3: Parser Lexicon")
	cmd.Println("----------------------")
	lexicons := domain.AllLexicons()
	for i, name := range lexicons {
		cmd.Printf("  %d. %s\n", i+1, name.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	input := readLine(reader)
	idx := parseChoice(input, len(lexicons), 1)
	if err := svc.Set(services.KeyLexicon, lexicons[idx-1].String()); err != nil {
		return fmt.Errorf("failed to save lexicon: %w", err)
	}
	cmd.Println()

	// Step 4: Reply augmentation (optional)
	cmd.Println("Step 4: Reply Augmentation (optional)")
	cmd.Println("-------------------------------------")
	cmd.Print("Enter LLM API key (empty to skip): ")
	apiKey := readPassword()
	cmd.Println()
	if apiKey != "" {
		if err := svc.Set(services.KeyLLMAPIKey, apiKey); err != nil {
			return fmt.Errorf("failed to save LLM API key: %w", err)
		}
	}
	cmd.Println()

	// Final validation
	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("All settings are valid and saved.")
	}

	return nil
}

// Helper functions.

func printOrNotSet(cmd *cobra.Command, label, value string) {
	if value == "" {
		value = "(not set)"
	}
	cmd.Printf("  %s: %s\n", label, value)
}

func lexiconNames() string {
	names := make([]string, 0, len(domain.AllLexicons()))
	for _, n := range domain.AllLexicons() {
		names = append(names, n.String())
	}
	return strings.Join(names, ", ")
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read the secret without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(secret)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskSecret(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
