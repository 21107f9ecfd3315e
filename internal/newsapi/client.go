// Package newsapi is a client for the NewsAPI "everything" search endpoint.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/samber/lo"

	"github.com/snchkv/newswatcher/internal/model"
)

type Client struct {
	apiKey   string
	baseURL  string
	language string
	pageSize int
	client   *http.Client
}

func New(apiKey, baseURL, language string, pageSize int, timeout time.Duration) *Client {
	return &Client{
		apiKey:   apiKey,
		baseURL:  baseURL,
		language: language,
		pageSize: pageSize,
		client:   &http.Client{Timeout: timeout},
	}
}

type apiArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

type apiResponse struct {
	Status   string       `json:"status"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Articles []apiArticle `json:"articles"`
}

// News searches articles matching query, newest first. Without an API key
// it returns an empty result so the bot keeps working in a degraded mode.
func (c *Client) News(ctx context.Context, query string) ([]model.Article, error) {
	if c.apiKey == "" {
		log.Printf("[WARN] news api key is not configured, returning no articles")
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("language", c.language)
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", fmt.Sprint(c.pageSize))
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching news for %q: %w", query, err)
	}
	defer resp.Body.Close()

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding news response: %w", err)
	}

	if body.Status != "ok" {
		return nil, fmt.Errorf("news api error %s: %s", body.Code, body.Message)
	}

	return lo.Map(body.Articles, func(a apiArticle, _ int) model.Article {
		return model.Article{
			SourceName:  a.Source.Name,
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
		}
	}), nil
}
