package scheduler

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"portfolioBot/internal/storage"
)

// Sink delivers one reminder notification for a fired plan.
type Sink interface {
	SendReminder(plan string, amount decimal.Decimal) error
}

// SIPReminderJob fires once a day: it loads the portfolio fresh and sends a
// reminder for every plan whose trigger day equals today's day-of-month.
// The fired-log debounces repeat runs on the same calendar day. Exact-day
// matching only: a plan keyed to day 31 never fires in a 30-day month.
type SIPReminderJob struct {
	store *storage.FileStore
	fired *storage.ReminderLog
	sink  Sink
	now   func() time.Time
	log   zerolog.Logger
}

func NewSIPReminderJob(store *storage.FileStore, fired *storage.ReminderLog, sink Sink, log zerolog.Logger) *SIPReminderJob {
	return &SIPReminderJob{
		store: store,
		fired: fired,
		sink:  sink,
		now:   func() time.Time { return time.Now().In(istLocation()) },
		log:   log.With().Str("component", "sip_reminders").Logger(),
	}
}

func (j *SIPReminderJob) Name() string { return "sip_reminders" }

func (j *SIPReminderJob) Run() error {
	today := j.now()
	day := today.Day()

	snap := j.store.Load()
	for _, plan := range snap.SIPs {
		if plan.Day != day {
			continue
		}
		fired, err := j.fired.AlreadyFired(plan.Name, today)
		if err != nil {
			// A broken fired-log risks a duplicate, which beats dropping the
			// reminder outright.
			j.log.Warn().Err(err).Str("plan", plan.Name).Msg("fired-log read failed")
		}
		if fired {
			continue
		}
		if err := j.sink.SendReminder(plan.Name, plan.Amount); err != nil {
			j.log.Error().Err(err).Str("plan", plan.Name).Msg("reminder delivery failed")
			continue
		}
		j.log.Info().Str("plan", plan.Name).Int("day", day).Msg("reminder sent")
		if err := j.fired.MarkFired(plan.Name, today); err != nil {
			j.log.Warn().Err(err).Str("plan", plan.Name).Msg("fired-log write failed")
		}
	}
	return nil
}
