package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulware/haulbot/internal/adapters/driven/storage/memory"
	"github.com/haulware/haulbot/internal/core/services"
)

// executeCommand runs the root command with an injected in-memory
// settings service and returns the combined output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	prev := settingsService
	SetSettingsService(services.NewSettingsService(memory.NewConfigStore()))
	t.Cleanup(func() { settingsService = prev })

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	SetVersion("1.2.3")
	t.Cleanup(func() { SetVersion("dev") })

	out, err := executeCommand(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "haulbot version 1.2.3")
}

func TestCheckCommand(t *testing.T) {
	out, err := executeCommand(t, "check",
		"Acme Corp - chassis: 773 23310 km 2245 h failure: hydraulic fault")
	require.NoError(t, err)

	assert.Contains(t, out, "Organization:        Acme Corp")
	assert.Contains(t, out, "Chassis number:      773")
	assert.Contains(t, out, "Mileage/hours:       23310 km, 2245 h")
	assert.Contains(t, out, "Failure description: hydraulic fault")
}

func TestCheckCommand_JoinsArguments(t *testing.T) {
	out, err := executeCommand(t, "check", "pump", "stopped")
	require.NoError(t, err)

	assert.Contains(t, out, "Description:         pump stopped")
	assert.Contains(t, out, "Organization:        (empty)")
}

func TestCheckCommand_RequiresText(t *testing.T) {
	_, err := executeCommand(t, "check")
	assert.Error(t, err)
}
