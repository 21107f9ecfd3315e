package bot

import (
	"context"
	"fmt"
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/snchkv/newswatcher/internal/botkit"
	"github.com/snchkv/newswatcher/internal/model"
)

type TopicLister interface {
	Topics(user model.UserID) []model.Topic
}

func ViewCmdMyTopics(store TopicLister) botkit.ViewFunc {
	return func(ctx context.Context, bot *tgbotapi.BotAPI, update tgbotapi.Update) error {
		topics := store.Topics(model.UserID(update.Message.From.ID))

		if len(topics) == 0 {
			_, err := bot.Send(tgbotapi.NewMessage(update.Message.Chat.ID,
				"📝 У вас пока нет добавленных тем."))
			return err
		}

		var b strings.Builder
		b.WriteString("📝 <b>Ваши темы:</b>\n\n")
		for i, topic := range topics {
			fmt.Fprintf(&b, "%d. <b>%s</b>\n", i+1, html.EscapeString(topic.Name))
			if len(topic.Keywords) > 0 {
				fmt.Fprintf(&b, "   🔍 Ключевые слова: %s\n", html.EscapeString(strings.Join(topic.Keywords, ", ")))
			}
			if !topic.AddedAt.IsZero() {
				fmt.Fprintf(&b, "   📅 Добавлено: %s\n", topic.AddedAt.Format("02.01.2006"))
			}
			b.WriteString("\n")
		}

		reply := tgbotapi.NewMessage(update.Message.Chat.ID, b.String())
		reply.ParseMode = tgbotapi.ModeHTML

		_, err := bot.Send(reply)
		return err
	}
}
