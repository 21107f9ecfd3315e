package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/lo"

	"github.com/snchkv/newswatcher/internal/botkit"
	"github.com/snchkv/newswatcher/internal/model"
)

type TopicAdder interface {
	AddTopic(user model.UserID, name string, keywords []string)
}

// ViewCmdAddTopic handles /add_topic <тема> [ключевые слова через запятую].
// The first word is the topic name, everything after it is a
// comma-separated keyword list.
func ViewCmdAddTopic(store TopicAdder) botkit.ViewFunc {
	return func(ctx context.Context, bot *tgbotapi.BotAPI, update tgbotapi.Update) error {
		args := strings.Fields(update.Message.CommandArguments())
		if len(args) == 0 {
			reply := tgbotapi.NewMessage(update.Message.Chat.ID,
				"Использование: /add_topic <тема> [ключевые слова через запятую]\n"+
					"Пример: /add_topic космос NASA, ракета")
			_, err := bot.Send(reply)
			return err
		}

		topic := args[0]

		var keywords []string
		if len(args) > 1 {
			keywords = lo.FilterMap(strings.Split(strings.Join(args[1:], " "), ","), func(kw string, _ int) (string, bool) {
				kw = strings.TrimSpace(kw)
				return kw, kw != ""
			})
		}

		store.AddTopic(model.UserID(update.Message.From.ID), topic, keywords)

		text := fmt.Sprintf("✅ Тема '%s' добавлена!", topic)
		if len(keywords) > 0 {
			text += fmt.Sprintf("\n🔍 Ключевые слова: %s", strings.Join(keywords, ", "))
		}

		_, err := bot.Send(tgbotapi.NewMessage(update.Message.Chat.ID, text))
		return err
	}
}
