// Package botkit runs the Telegram long-polling loop and routes commands
// to registered views.
package botkit

import (
	"context"
	"log"
	"runtime/debug"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/snchkv/newswatcher/internal/reporter"
)

// ViewFunc handles a single command update.
type ViewFunc func(ctx context.Context, bot *tgbotapi.BotAPI, update tgbotapi.Update) error

type Bot struct {
	api      *tgbotapi.BotAPI
	reporter *reporter.Reporter
	cmdViews map[string]ViewFunc
}

func New(api *tgbotapi.BotAPI, reporter *reporter.Reporter) *Bot {
	return &Bot{
		api:      api,
		reporter: reporter,
	}
}

func (b *Bot) RegisterCmdView(cmd string, view ViewFunc) {
	if b.cmdViews == nil {
		b.cmdViews = make(map[string]ViewFunc)
	}
	b.cmdViews[cmd] = view
}

func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case update := <-updates:
			go func(update tgbotapi.Update) {
				updateCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
				defer cancel()

				b.handleUpdate(updateCtx, update)
			}(update)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("[ERROR] panic while handling update: %v\n%s", p, string(debug.Stack()))
		}
	}()

	if update.Message == nil || !update.Message.IsCommand() {
		return
	}

	cmd := update.Message.Command()
	view, ok := b.cmdViews[cmd]
	if !ok {
		return
	}

	if err := view(ctx, b.api, update); err != nil {
		log.Printf("[ERROR] failed to handle /%s: %v", cmd, err)
		b.reporter.Notify("command /" + cmd + " failed: " + err.Error())

		reply := tgbotapi.NewMessage(update.Message.Chat.ID,
			"❌ Произошла ошибка. Попробуйте позже.")
		if _, err := b.api.Send(reply); err != nil {
			log.Printf("[ERROR] failed to send error message: %v", err)
		}
	}
}
