package dispatcher

import (
	"context"
	"time"

	"github.com/ReshadVerse/english-bot/internal/domain"
	"github.com/ReshadVerse/english-bot/internal/repository"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// DefaultInterval is the sweep period. Due entries are re-notified on every
// sweep until the user answers or deletes them; that repetition is intended.
const DefaultInterval = 60 * time.Second

// sweepTimeout bounds one due-scan plus its sends.
const sweepTimeout = 45 * time.Second

// ReminderSender delivers one review prompt to the entry's owner.
// Implemented by the handler layer on top of the bot transport.
type ReminderSender interface {
	SendReminder(entry domain.WordEntry) error
}

// Dispatcher periodically scans for due words and sends review prompts.
// It never mutates entries; stages move only when the user answers.
type Dispatcher struct {
	scheduler *gocron.Scheduler
	words     repository.WordRepository
	sender    ReminderSender
	logger    *zap.Logger
	interval  time.Duration
}

// New creates a dispatcher sweeping at the given interval.
func New(words repository.WordRepository, sender ReminderSender, interval time.Duration, logger *zap.Logger) *Dispatcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Dispatcher{
		scheduler: gocron.NewScheduler(time.UTC),
		words:     words,
		sender:    sender,
		logger:    logger,
		interval:  interval,
	}
}

// Start schedules the sweep and runs it in the background. The first sweep
// fires one interval after startup.
func (d *Dispatcher) Start() error {
	if _, err := d.scheduler.Every(d.interval).Do(d.sweep); err != nil {
		return err
	}
	d.scheduler.StartAsync()
	d.logger.Info("Reminder dispatcher started", zap.Duration("interval", d.interval))
	return nil
}

// Stop halts scheduling; an in-flight sweep is allowed to finish.
func (d *Dispatcher) Stop() {
	d.scheduler.Stop()
	d.logger.Info("Reminder dispatcher stopped")
}

func (d *Dispatcher) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	due, err := d.words.DueWords(ctx, time.Now())
	if err != nil {
		d.logger.Error("Failed to query due words", zap.Error(err))
		return
	}

	if len(due) == 0 {
		return
	}

	d.logger.Info("Sending review reminders", zap.Int("due", len(due)))

	for _, entry := range due {
		// One user's delivery failure (blocked bot, network blip) must
		// never abort the sweep for everyone else.
		if err := d.sender.SendReminder(entry); err != nil {
			d.logger.Warn("Failed to deliver reminder",
				zap.Int64("user_id", entry.UserID),
				zap.Int64("word_id", entry.ID),
				zap.Error(err),
			)
			continue
		}
	}
}
