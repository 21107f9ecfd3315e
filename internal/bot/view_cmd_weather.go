package bot

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/snchkv/newswatcher/internal/botkit"
	"github.com/snchkv/newswatcher/internal/model"
	"github.com/snchkv/newswatcher/internal/weather"
)

type WeatherProvider interface {
	Weather(ctx context.Context, location string) (*model.Forecast, error)
}

// ViewCmdWeather handles /weather <город>. A failed lookup is answered
// with a "check the city name" reply, never an error escaping the view.
func ViewCmdWeather(provider WeatherProvider) botkit.ViewFunc {
	return func(ctx context.Context, bot *tgbotapi.BotAPI, update tgbotapi.Update) error {
		location := strings.TrimSpace(update.Message.CommandArguments())
		if location == "" {
			reply := tgbotapi.NewMessage(update.Message.Chat.ID,
				"Использование: /weather <город>\n"+
					"Пример: /weather Москва")
			_, err := bot.Send(reply)
			return err
		}

		progress := tgbotapi.NewMessage(update.Message.Chat.ID,
			fmt.Sprintf("🌤️ Получаю погоду для %s...", location))
		if _, err := bot.Send(progress); err != nil {
			return err
		}

		forecast, err := provider.Weather(ctx, location)
		if err != nil {
			log.Printf("[ERROR] failed to get weather for %q: %v", location, err)
			reply := tgbotapi.NewMessage(update.Message.Chat.ID,
				fmt.Sprintf("❌ Не удалось получить погоду для '%s'\nПроверьте правильность названия города.", location))
			_, err := bot.Send(reply)
			return err
		}

		reply := tgbotapi.NewMessage(update.Message.Chat.ID, weather.Format(forecast))
		reply.ParseMode = tgbotapi.ModeHTML

		_, err = bot.Send(reply)
		return err
	}
}
