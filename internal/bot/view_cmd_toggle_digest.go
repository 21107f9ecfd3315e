package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/snchkv/newswatcher/internal/botkit"
	"github.com/snchkv/newswatcher/internal/model"
)

type DigestToggler interface {
	ToggleDigest(user model.UserID) bool
}

func ViewCmdToggleDigest(store DigestToggler) botkit.ViewFunc {
	return func(ctx context.Context, bot *tgbotapi.BotAPI, update tgbotapi.Update) error {
		enabled := store.ToggleDigest(model.UserID(update.Message.From.ID))

		status := "выключены"
		if enabled {
			status = "включены"
		}

		_, err := bot.Send(tgbotapi.NewMessage(update.Message.Chat.ID,
			fmt.Sprintf("📅 Ежедневные дайджесты %s!", status)))
		return err
	}
}
