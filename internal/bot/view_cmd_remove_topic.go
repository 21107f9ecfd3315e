package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/snchkv/newswatcher/internal/botkit"
	"github.com/snchkv/newswatcher/internal/model"
	"github.com/snchkv/newswatcher/internal/storage"
)

type TopicRemover interface {
	RemoveTopic(user model.UserID, name string) (bool, error)
}

// ViewCmdRemoveTopic handles /remove_topic <тема>. Every topic with the
// exact name is removed.
func ViewCmdRemoveTopic(store TopicRemover) botkit.ViewFunc {
	return func(ctx context.Context, bot *tgbotapi.BotAPI, update tgbotapi.Update) error {
		topic := strings.TrimSpace(update.Message.CommandArguments())
		if topic == "" {
			reply := tgbotapi.NewMessage(update.Message.Chat.ID,
				"Использование: /remove_topic <тема>\n"+
					"Пример: /remove_topic космос")
			_, err := bot.Send(reply)
			return err
		}

		removed, err := store.RemoveTopic(model.UserID(update.Message.From.ID), topic)

		var text string
		switch {
		case errors.Is(err, storage.ErrUnknownUser):
			text = "📝 У вас пока нет добавленных тем."
		case err != nil:
			return err
		case removed:
			text = fmt.Sprintf("✅ Тема '%s' удалена!", topic)
		default:
			text = fmt.Sprintf("❌ Тема '%s' не найдена!", topic)
		}

		_, err = bot.Send(tgbotapi.NewMessage(update.Message.Chat.ID, text))
		return err
	}
}
