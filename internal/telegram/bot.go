package telegram

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Bot runs the long-polling update loop. Updates are consumed sequentially,
// so commands never race each other; only the reminder job runs beside the
// loop, and both go through the store's lock.
type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
	router *Router
	log    zerolog.Logger
}

func NewBot(token string, chatID int64, router *Router, log zerolog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:    api,
		chatID: chatID,
		router: router,
		log:    log.With().Str("component", "telegram").Logger(),
	}, nil
}

// Run blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)
	b.log.Info().Str("bot", b.api.Self.UserName).Msg("polling for updates")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}
			b.handle(update.Message)
		}
	}
}

func (b *Bot) handle(m *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	reply := b.router.Dispatch(ctx, m.Text)
	switch {
	case reply.Photo != nil:
		photo := tgbotapi.NewPhoto(m.Chat.ID, tgbotapi.FileBytes{Name: reply.PhotoName, Bytes: reply.Photo})
		photo.Caption = reply.Text
		if _, err := b.api.Send(photo); err != nil {
			b.log.Error().Err(err).Msg("send photo failed")
		}
	case reply.Text != "":
		if _, err := b.api.Send(tgbotapi.NewMessage(m.Chat.ID, reply.Text)); err != nil {
			b.log.Error().Err(err).Msg("send reply failed")
		}
	}
}

// SendReminder delivers one SIP reminder to the configured chat. Bot is the
// scheduler's notification sink.
func (b *Bot) SendReminder(plan string, amount decimal.Decimal) error {
	_, err := b.api.Send(tgbotapi.NewMessage(b.chatID, fmt.Sprintf("🔔 SIP Reminder: %s – ₹%s", plan, amount)))
	return err
}
