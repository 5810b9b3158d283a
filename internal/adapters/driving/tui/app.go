// Package tui implements the desktop control panel as a terminal UI.
// It drives the same intake pipeline as the chat transport: Check
// previews the extracted fields, Send delivers the row synchronously
// on the panel's own flow, and a log pane tails the process log.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/haulware/haulbot/internal/core/domain"
	"github.com/haulware/haulbot/internal/core/ports/driving"
	"github.com/haulware/haulbot/internal/logger"
)

// logPaneLines is how many log lines the log pane shows.
const logPaneLines = 8

// tickInterval is the log pane refresh rate.
const tickInterval = 500 * time.Millisecond

// sendDoneMsg carries the delivery outcome back into the update loop.
type sendDoneMsg struct {
	outcome domain.Outcome
}

// tickMsg refreshes the log pane.
type tickMsg time.Time

// App is the control panel application. It implements tea.Model.
type App struct {
	intake driving.Intake
	ctx    context.Context

	styles *Styles
	input  textarea.Model
	logBuf *LogBuffer

	// preview holds the last checked report, nil before the first check.
	preview *domain.Report

	// status is the last action's result line.
	status      string
	statusStyle lipgloss.Style

	// sending blocks input while a delivery is in flight.
	sending bool

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a control panel over the given intake pipeline. The
// process logger is redirected into the panel's log pane for the
// lifetime of the program.
func NewApp(intake driving.Intake) (*App, error) {
	if intake == nil {
		return nil, fmt.Errorf("creating panel: intake is required")
	}

	input := textarea.New()
	input.Placeholder = "Paste or type a failure report..."
	input.Focus()
	input.SetHeight(5)

	logBuf := NewLogBuffer()
	logger.SetOutput(logBuf)

	return &App{
		intake:      intake,
		ctx:         context.Background(),
		styles:      DefaultStyles(),
		input:       input,
		logBuf:      logBuf,
		statusStyle: lipgloss.NewStyle(),
	}, nil
}

// WithContext sets the context used for delivery.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		tea.SetWindowTitle("haulbot - control panel"),
		tick(),
	)
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.input.SetWidth(msg.Width - 4)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.sending {
			// A delivery attempt sequence is never cancelled once
			// started; swallow input until it resolves.
			return a, nil
		}

		switch msg.String() {
		case "ctrl+d":
			a.check()
			return a, nil
		case "ctrl+s":
			return a, a.send()
		case "ctrl+x":
			a.clear()
			return a, nil
		}

		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd

	case sendDoneMsg:
		a.sending = false
		a.preview = &msg.outcome.Report
		if msg.outcome.Delivered {
			a.status = "Row appended to the sheet."
			if msg.outcome.Note != "" {
				a.status += " " + msg.outcome.Note
			}
			a.statusStyle = a.styles.Success
			a.input.Reset()
		} else {
			a.status = "Delivery failed after all attempts. See the log below."
			a.statusStyle = a.styles.Error
		}
		return a, nil

	case tickMsg:
		return a, tick()
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// check previews extraction without delivering anything.
func (a *App) check() {
	text := strings.TrimSpace(a.input.Value())
	if text == "" {
		a.status = "Nothing to check: the input is empty."
		a.statusStyle = a.styles.Muted
		return
	}
	report := a.intake.Preview(text)
	a.preview = &report
	a.status = "Preview only. Nothing was sent."
	a.statusStyle = a.styles.Muted
}

// send runs the full pipeline. The panel blocks until delivery succeeds
// or exhausts its attempts.
func (a *App) send() tea.Cmd {
	text := strings.TrimSpace(a.input.Value())
	if text == "" {
		a.status = "Nothing to send: the input is empty."
		a.statusStyle = a.styles.Muted
		return nil
	}

	a.sending = true
	a.status = "Sending..."
	a.statusStyle = a.styles.Muted

	return func() tea.Msg {
		return sendDoneMsg{outcome: a.intake.Submit(a.ctx, text)}
	}
}

// clear resets the input and preview.
func (a *App) clear() {
	a.input.Reset()
	a.preview = nil
	a.status = ""
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var sb strings.Builder
	sb.WriteString(a.styles.Title.Render("haulbot control panel"))
	sb.WriteString("\n\n")
	sb.WriteString(a.input.View())
	sb.WriteString("\n\n")
	sb.WriteString(a.viewPreview())
	sb.WriteString("\n")

	if a.status != "" {
		sb.WriteString(a.statusStyle.Render(a.status))
		sb.WriteString("\n")
	}

	sb.WriteString(a.viewLog())
	sb.WriteString("\n")
	sb.WriteString(a.styles.StatusBar.Render(
		"ctrl+d check · ctrl+s send · ctrl+x clear · ctrl+c quit"))
	return sb.String()
}

// viewPreview renders the extracted fields of the last check or send.
func (a *App) viewPreview() string {
	if a.preview == nil {
		return a.styles.Pane.Render(a.styles.Muted.Render("No preview yet."))
	}

	fields := []struct {
		label string
		value string
	}{
		{"Organization", a.preview.Organization},
		{"Date", a.preview.Timestamp},
		{"Chassis", a.preview.ChassisNumber},
		{"Model", a.preview.Model},
		{"Failure", a.preview.FailureDescription},
		{"Description", a.preview.Description},
		{"Mileage/hours", a.preview.MileageHours},
	}

	var sb strings.Builder
	for i, f := range fields {
		if i > 0 {
			sb.WriteString("\n")
		}
		value := f.value
		if value == "" {
			value = a.styles.Muted.Render("(empty)")
		}
		sb.WriteString(a.styles.Label.Render(f.label+": ") + value)
	}
	return a.styles.Pane.Render(sb.String())
}

// viewLog renders the tail of the process log.
func (a *App) viewLog() string {
	lines := a.logBuf.Tail(logPaneLines)
	if len(lines) == 0 {
		return a.styles.Pane.Render(a.styles.Muted.Render("Log is empty."))
	}
	return a.styles.Pane.Render(a.styles.Muted.Render(strings.Join(lines, "\n")))
}

// Run starts the panel.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Preview returns the last previewed report (for testing).
func (a *App) Preview() *domain.Report {
	return a.preview
}

// Status returns the current status line (for testing).
func (a *App) Status() string {
	return a.status
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}
