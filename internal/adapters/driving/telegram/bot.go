// Package telegram drives the intake pipeline from Telegram long
// polling. Each text message becomes one Submit call; replies are
// best-effort.
package telegram

import (
	"context"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/haulware/haulbot/internal/core/domain"
	"github.com/haulware/haulbot/internal/core/ports/driving"
	"github.com/haulware/haulbot/internal/logger"
)

// pollTimeout is the long poll timeout in seconds.
const pollTimeout = 30

const helpText = `Send me a free-text failure report and I will file it.

I pick out the organization, chassis number, machine model, mileage or
engine hours, and the failure description, and append them as one row
to the report sheet. Anything I cannot find is left blank - the full
original text always goes into the Description column.`

const emptyTextReply = "Please send the report as text."

// Config holds bot configuration.
type Config struct {
	// Token is the bot API token (required).
	Token string

	// Workers bounds the number of messages processed concurrently.
	Workers int
}

// Bot long-polls the Telegram API and dispatches each incoming text
// message to the intake pipeline on a bounded worker pool, so one slow
// delivery never stalls the poll loop.
type Bot struct {
	api *tgbotapi.BotAPI
	sem chan struct{}
	wg  sync.WaitGroup

	mu     sync.RWMutex
	intake driving.Intake
}

// NewBot authenticates against the bot API and returns a bot bound to
// the given intake pipeline.
func NewBot(cfg Config, intake driving.Intake) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = domain.DefaultWorkers
	}

	return &Bot{
		api:    api,
		sem:    make(chan struct{}, workers),
		intake: intake,
	}, nil
}

// Username returns the authenticated bot account name.
func (b *Bot) Username() string {
	return b.api.Self.UserName
}

// SetIntake swaps the intake pipeline. Called after a settings reload;
// messages already in flight finish on the pipeline they started with.
func (b *Bot) SetIntake(intake driving.Intake) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.intake = intake
}

func (b *Bot) currentIntake() driving.Intake {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.intake
}

// Run polls for updates until ctx is cancelled, then waits for in-flight
// messages to finish.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout
	updates := b.api.GetUpdatesChan(u)

	logger.Info("Bot @%s polling for updates", b.Username())

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.wg.Wait()
			return nil

		case update, ok := <-updates:
			if !ok {
				b.wg.Wait()
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.dispatch(ctx, update.Message)
		}
	}
}

// dispatch hands one message to a worker slot. Blocks only when all
// workers are busy.
func (b *Bot) dispatch(ctx context.Context, msg *tgbotapi.Message) {
	select {
	case b.sem <- struct{}{}:
	case <-ctx.Done():
		return
	}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		defer func() { <-b.sem }()
		b.handle(ctx, msg)
	}()
}

// handle processes one message end to end. Failures are contained to
// the message: they are logged and never stop the poll loop.
func (b *Bot) handle(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		if msg.Command() == "start" || msg.Command() == "help" {
			b.reply(msg, helpText)
		}
		return
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		b.reply(msg, emptyTextReply)
		return
	}

	outcome := b.currentIntake().Submit(ctx, text)
	b.reply(msg, formatOutcome(outcome))
}

// reply sends a response, logging failures. A lost reply never rolls
// back the appended row.
func (b *Bot) reply(msg *tgbotapi.Message, text string) {
	out := tgbotapi.NewMessage(msg.Chat.ID, text)
	out.ReplyToMessageID = msg.MessageID
	if _, err := b.api.Send(out); err != nil {
		logger.Error("Failed to send reply to chat %d: %v", msg.Chat.ID, err)
	}
}

// formatOutcome renders the confirmation the sender sees: key extracted
// fields on success, a short notice on exhausted delivery.
func formatOutcome(outcome domain.Outcome) string {
	if !outcome.Delivered {
		return "⚠️ Could not write to the sheet right now. The report was kept and will be resubmitted."
	}

	var sb strings.Builder
	sb.WriteString("✅ Saved to the sheet.\n")
	writeField(&sb, "Organization", outcome.Report.Organization)
	writeField(&sb, "Chassis", outcome.Report.ChassisNumber)
	writeField(&sb, "Model", outcome.Report.Model)
	writeField(&sb, "Failure", outcome.Report.FailureDescription)
	writeField(&sb, "Mileage/hours", outcome.Report.MileageHours)

	if outcome.Note != "" {
		sb.WriteString("\n")
		sb.WriteString(outcome.Note)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func writeField(sb *strings.Builder, label, value string) {
	if value == "" {
		value = "—"
	}
	sb.WriteString(label)
	sb.WriteString(": ")
	sb.WriteString(value)
	sb.WriteString("\n")
}
