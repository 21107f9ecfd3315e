package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/snchkv/newswatcher/internal/bot"
	"github.com/snchkv/newswatcher/internal/botkit"
	"github.com/snchkv/newswatcher/internal/config"
	"github.com/snchkv/newswatcher/internal/digest"
	"github.com/snchkv/newswatcher/internal/newsapi"
	"github.com/snchkv/newswatcher/internal/reporter"
	"github.com/snchkv/newswatcher/internal/storage"
	"github.com/snchkv/newswatcher/internal/telegram"
	"github.com/snchkv/newswatcher/internal/weather"
)

func main() {
	botAPI, err := tgbotapi.NewBotAPI(config.Get().TelegramBotToken)
	if err != nil {
		log.Printf("[ERROR] failed to create botAPI: %v", err)
		return
	}

	var (
		store      = storage.Load(config.Get().DataFile)
		newsClient = newsapi.New(
			config.Get().NewsAPIKey,
			config.Get().NewsAPIURL,
			config.Get().NewsLanguage,
			config.Get().NewsPageSize,
			config.Get().FetchTimeout,
		)
		weatherClient = weather.New(
			config.Get().GeocodingAPIURL,
			config.Get().WeatherAPIURL,
			config.Get().FetchTimeout,
		)
		sender       = telegram.NewSender(botAPI)
		rep          = reporter.New(botAPI, config.Get().TelegramAdminChatID)
		orchestrator = digest.New(store, newsClient, sender, rep)
	)

	scheduler, err := digest.NewScheduler(orchestrator, config.Get().DigestTime)
	if err != nil {
		log.Printf("[ERROR] failed to create scheduler: %v", err)
		return
	}

	newsBot := botkit.New(botAPI, rep)
	newsBot.RegisterCmdView("start", bot.ViewCmdStart())
	newsBot.RegisterCmdView("help", bot.ViewCmdHelp())
	newsBot.RegisterCmdView("add_topic", bot.ViewCmdAddTopic(store))
	newsBot.RegisterCmdView("remove_topic", bot.ViewCmdRemoveTopic(store))
	newsBot.RegisterCmdView("my_topics", bot.ViewCmdMyTopics(store))
	newsBot.RegisterCmdView("get_news", bot.ViewCmdGetNews(orchestrator))
	newsBot.RegisterCmdView("digest", bot.ViewCmdDigest(store, orchestrator))
	newsBot.RegisterCmdView("toggle_digest", bot.ViewCmdToggleDigest(store))
	newsBot.RegisterCmdView("weather", bot.ViewCmdWeather(weatherClient))

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func(ctx context.Context) {
		if err := scheduler.Start(ctx); err != nil {
			if !errors.Is(err, context.Canceled) {
				log.Printf("[ERROR] failed to run scheduler: %v", err)
				return
			}

			log.Printf("[INFO] scheduler stopped")
		}
	}(ctx)

	go func(ctx context.Context) {
		if err := http.ListenAndServe("127.0.0.1:8088", mux); err != nil {
			if !errors.Is(err, context.Canceled) {
				log.Printf("[ERROR] failed to run http server: %v", err)
				return
			}

			log.Printf("[INFO] http server stopped")
		}
	}(ctx)

	if err := newsBot.Run(ctx); err != nil {
		log.Printf("[ERROR] failed to run botkit: %v", err)
	}
}
