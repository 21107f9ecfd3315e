package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/snchkv/newswatcher/internal/botkit"
	"github.com/snchkv/newswatcher/internal/model"
)

type NewsSender interface {
	SendTopicNews(ctx context.Context, user model.UserID, query string) error
}

// ViewCmdGetNews handles /get_news <тема>: a one-shot search delivered
// through the digest pipeline.
func ViewCmdGetNews(orchestrator NewsSender) botkit.ViewFunc {
	return func(ctx context.Context, bot *tgbotapi.BotAPI, update tgbotapi.Update) error {
		topic := strings.TrimSpace(update.Message.CommandArguments())
		if topic == "" {
			reply := tgbotapi.NewMessage(update.Message.Chat.ID,
				"Использование: /get_news <тема>\n"+
					"Пример: /get_news программирование")
			_, err := bot.Send(reply)
			return err
		}

		return orchestrator.SendTopicNews(ctx, model.UserID(update.Message.From.ID), topic)
	}
}
