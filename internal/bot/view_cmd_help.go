package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/snchkv/newswatcher/internal/botkit"
)

func ViewCmdHelp() botkit.ViewFunc {
	const text = `📖 <b>Справка по командам:</b>

<b>Погода:</b>
/weather &lt;город&gt; - Получить актуальную погоду

<b>Управление темами:</b>
/add_topic &lt;тема&gt; [ключевые слова через запятую] - Добавить тему
/remove_topic &lt;тема&gt; - Удалить тему
/my_topics - Показать все ваши темы

<b>Получение новостей:</b>
/get_news &lt;тема&gt; - Получить новости по конкретной теме
/digest - Получить дайджест по всем вашим темам

<b>Настройки:</b>
/toggle_digest - Включить/выключить ежедневные дайджесты

<b>Примеры:</b>
/weather Москва
/add_topic искусственный интеллект машинное обучение, нейросети
/get_news программирование`

	return func(ctx context.Context, bot *tgbotapi.BotAPI, update tgbotapi.Update) error {
		reply := tgbotapi.NewMessage(update.Message.Chat.ID, text)
		reply.ParseMode = tgbotapi.ModeHTML

		_, err := bot.Send(reply)
		return err
	}
}
