package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/snchkv/newswatcher/internal/botkit"
	"github.com/snchkv/newswatcher/internal/model"
)

type SubscriptionGetter interface {
	Get(user model.UserID) (model.Subscription, bool)
}

type DigestRunner interface {
	DigestForUser(ctx context.Context, user model.UserID, sub model.Subscription) error
}

// ViewCmdDigest handles /digest: an on-demand run of the same per-user
// pipeline the daily schedule uses.
func ViewCmdDigest(store SubscriptionGetter, orchestrator DigestRunner) botkit.ViewFunc {
	return func(ctx context.Context, bot *tgbotapi.BotAPI, update tgbotapi.Update) error {
		user := model.UserID(update.Message.From.ID)

		sub, ok := store.Get(user)
		if !ok || len(sub.Topics) == 0 {
			_, err := bot.Send(tgbotapi.NewMessage(update.Message.Chat.ID,
				"📝 У вас нет добавленных тем для дайджеста."))
			return err
		}

		progress := tgbotapi.NewMessage(update.Message.Chat.ID, "🔍 Собираю дайджест по вашим темам...")
		if _, err := bot.Send(progress); err != nil {
			return err
		}

		return orchestrator.DigestForUser(ctx, user, sub)
	}
}
