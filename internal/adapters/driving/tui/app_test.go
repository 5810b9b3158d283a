package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulware/haulbot/internal/core/domain"
)

// fakeIntake is a canned-outcome pipeline double.
type fakeIntake struct {
	report  domain.Report
	outcome domain.Outcome
	submits []string
}

func (f *fakeIntake) Preview(string) domain.Report { return f.report }

func (f *fakeIntake) Submit(_ context.Context, text string) domain.Outcome {
	f.submits = append(f.submits, text)
	return f.outcome
}

func TestNewApp_RequiresIntake(t *testing.T) {
	_, err := NewApp(nil)
	assert.Error(t, err)
}

func TestUpdate_WindowSizeMakesReady(t *testing.T) {
	app, err := NewApp(&fakeIntake{})
	require.NoError(t, err)
	assert.False(t, app.Ready())

	model, _ := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.True(t, model.(*App).Ready())
	assert.NotEqual(t, "Initialising...", model.(*App).View())
}

func TestUpdate_CheckPreviewsWithoutSending(t *testing.T) {
	intake := &fakeIntake{report: domain.Report{Organization: "Acme Corp", ChassisNumber: "773"}}
	app, err := NewApp(intake)
	require.NoError(t, err)

	app.input.SetValue("Acme Corp - chassis: 773")
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyCtrlD})

	got := model.(*App)
	require.NotNil(t, got.Preview())
	assert.Equal(t, "Acme Corp", got.Preview().Organization)
	assert.Equal(t, "Preview only. Nothing was sent.", got.Status())
	assert.Empty(t, intake.submits)
}

func TestUpdate_CheckWithEmptyInput(t *testing.T) {
	app, err := NewApp(&fakeIntake{})
	require.NoError(t, err)

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyCtrlD})

	got := model.(*App)
	assert.Nil(t, got.Preview())
	assert.Equal(t, "Nothing to check: the input is empty.", got.Status())
}

func TestUpdate_SendRunsPipeline(t *testing.T) {
	intake := &fakeIntake{outcome: domain.Outcome{
		Delivered: true,
		Report:    domain.Report{Organization: "Acme Corp"},
		Note:      "Noted.",
	}}
	app, err := NewApp(intake)
	require.NoError(t, err)

	app.input.SetValue("pump stopped")
	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	// The returned command executes the submit and produces the done message.
	msg := cmd()
	model, _ = model.Update(msg)

	got := model.(*App)
	assert.Equal(t, []string{"pump stopped"}, intake.submits)
	assert.Equal(t, "Row appended to the sheet. Noted.", got.Status())
	assert.Empty(t, got.input.Value())
}

func TestUpdate_FailedDeliveryKeepsInput(t *testing.T) {
	intake := &fakeIntake{outcome: domain.Outcome{Delivered: false}}
	app, err := NewApp(intake)
	require.NoError(t, err)

	app.input.SetValue("pump stopped")
	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	model, _ = model.Update(cmd())

	got := model.(*App)
	assert.Equal(t, "Delivery failed after all attempts. See the log below.", got.Status())
	assert.Equal(t, "pump stopped", got.input.Value())
}

func TestUpdate_ClearResetsState(t *testing.T) {
	app, err := NewApp(&fakeIntake{report: domain.Report{Organization: "Acme"}})
	require.NoError(t, err)

	app.input.SetValue("something")
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyCtrlX})

	got := model.(*App)
	assert.Empty(t, got.input.Value())
	assert.Nil(t, got.Preview())
	assert.Empty(t, got.Status())
}

func TestUpdate_CtrlCQuits(t *testing.T) {
	app, err := NewApp(&fakeIntake{})
	require.NoError(t, err)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
