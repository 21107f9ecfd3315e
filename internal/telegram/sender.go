// Package telegram implements the delivery surface over the Bot API.
package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/snchkv/newswatcher/internal/model"
)

type Sender struct {
	bot *tgbotapi.BotAPI
}

func NewSender(bot *tgbotapi.BotAPI) *Sender {
	return &Sender{bot: bot}
}

// Deliver sends one message to the user's private chat. html switches on
// HTML formatting, noPreview suppresses the link preview. Chunking of
// over-length texts is the caller's responsibility.
func (s *Sender) Deliver(user model.UserID, text string, html, noPreview bool) error {
	msg := tgbotapi.NewMessage(int64(user), text)
	if html {
		msg.ParseMode = tgbotapi.ModeHTML
	}
	msg.DisableWebPagePreview = noPreview

	_, err := s.bot.Send(msg)
	return err
}
