package config

import (
	"log/slog"
	"sync"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfighcl"
)

type Config struct {
	TelegramBotToken    string        `hcl:"telegram_bot_token" env:"TELEGRAM_BOT_TOKEN" required:"true"`
	TelegramAdminChatID int64         `hcl:"telegram_admin_chat_id" env:"TELEGRAM_ADMIN_CHAT_ID"`
	NewsAPIKey          string        `hcl:"news_api_key" env:"NEWS_API_KEY"`
	NewsAPIURL          string        `hcl:"news_api_url" env:"NEWS_API_URL" default:"https://newsapi.org/v2/everything"`
	NewsLanguage        string        `hcl:"news_language" env:"NEWS_LANGUAGE" default:"ru"`
	NewsPageSize        int           `hcl:"news_page_size" env:"NEWS_PAGE_SIZE" default:"10"`
	FetchTimeout        time.Duration `hcl:"fetch_timeout" env:"FETCH_TIMEOUT" default:"10s"`
	DataFile            string        `hcl:"data_file" env:"DATA_FILE" default:"news_data.json"`
	DigestTime          string        `hcl:"digest_time" env:"DIGEST_TIME" default:"09:00"`
	GeocodingAPIURL     string        `hcl:"geocoding_api_url" env:"GEOCODING_API_URL" default:"https://geocoding-api.open-meteo.com/v1/search"`
	WeatherAPIURL       string        `hcl:"weather_api_url" env:"WEATHER_API_URL" default:"https://api.open-meteo.com/v1/forecast"`
}

var (
	cfg  Config
	once sync.Once
)

func Get() Config {
	once.Do(func() {
		loader := aconfig.LoaderFor(&cfg, aconfig.Config{
			EnvPrefix: "NWB",
			Files:     []string{"./config.hcl", "./config.local.hcl", "$HOME/.config/newswatcher/config.hcl"},
			FileDecoders: map[string]aconfig.FileDecoder{
				".hcl": aconfighcl.New(),
			},
		})

		if err := loader.Load(); err != nil {
			slog.Error("failed to load config", "err", err)
		}
	})

	return cfg
}
