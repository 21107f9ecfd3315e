package digest

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/snchkv/newswatcher/internal/model"
)

const (
	// MessageLimit is the Telegram per-message size bound; longer composed
	// texts are delivered as consecutive chunks.
	MessageLimit = 4000

	maxArticlesPerTopic = 5
	descriptionLimit    = 200
)

// FormatNews renders articles as an HTML news block for one topic. Only
// the first 5 articles are shown, in the order received. An empty input
// yields a fixed "nothing found" sentence. The function is pure: a
// malformed publish date falls back to a sentinel, it never fails.
func FormatNews(articles []model.Article, topic string) string {
	if len(articles) == 0 {
		return fmt.Sprintf("📰 По теме '%s' новостей не найдено.", topic)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📰 <b>Новости по теме: %s</b>\n\n", html.EscapeString(topic))

	for i, article := range articles {
		if i == maxArticlesPerTopic {
			break
		}

		title := article.Title
		if title == "" {
			title = "Без заголовка"
		}

		fmt.Fprintf(&b, "%d. <b>%s</b>\n", i+1, html.EscapeString(title))
		if article.Description != "" {
			fmt.Fprintf(&b, "   %s\n", html.EscapeString(truncate(article.Description, descriptionLimit)))
		}
		if article.URL != "" {
			fmt.Fprintf(&b, "   🔗 <a href=\"%s\">Читать далее</a>\n", html.EscapeString(article.URL))
		}
		fmt.Fprintf(&b, "   📅 %s\n\n", formatDate(article.PublishedAt))
	}

	return b.String()
}

// SplitMessage chunks text into consecutive pieces of at most MessageLimit
// runes, preserving order. No attempt is made to avoid splitting inside an
// article entry.
func SplitMessage(text string) []string {
	if text == "" {
		return nil
	}
	return lo.ChunkString(text, MessageLimit)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

func formatDate(raw string) string {
	const sentinel = "Дата неизвестна"
	if raw == "" {
		return sentinel
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return sentinel
	}
	return t.Format("02.01.2006 15:04")
}
