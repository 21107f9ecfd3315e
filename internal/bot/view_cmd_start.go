package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/snchkv/newswatcher/internal/botkit"
)

func ViewCmdStart() botkit.ViewFunc {
	return func(ctx context.Context, bot *tgbotapi.BotAPI, update tgbotapi.Update) error {
		username := update.Message.From.UserName
		if username == "" {
			username = "пользователь"
		}

		text := fmt.Sprintf(`👋 Привет, %s!

Я бот для новостей и погоды.

<b>Доступные команды:</b>
/start - Начать работу с ботом
/weather - Получить погоду для города
/add_topic - Добавить тему для отслеживания
/remove_topic - Удалить тему
/my_topics - Показать мои темы
/get_news - Получить новости по теме
/digest - Получить дайджест новостей
/toggle_digest - Включить/выключить ежедневные дайджесты
/help - Показать справку

<b>Как использовать:</b>
1. Получите погоду: /weather Москва
2. Добавьте темы новостей: /add_topic программирование
3. Получайте новости: /get_news программирование
4. Включите ежедневные дайджесты: /toggle_digest`, username)

		reply := tgbotapi.NewMessage(update.Message.Chat.ID, text)
		reply.ParseMode = tgbotapi.ModeHTML

		_, err := bot.Send(reply)
		return err
	}
}
