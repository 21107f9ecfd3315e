// Package model defines the data structures shared across the bot: user
// subscriptions with their topics, news articles as returned by the search
// provider, and resolved weather data.
package model

import "time"

// UserID identifies a Telegram user; it is also the partition key of the
// subscription store.
type UserID int64

// Topic is a named news subscription. Keywords, when non-empty, narrow the
// delivered articles to those mentioning at least one of them.
type Topic struct {
	Name     string    `json:"name"`
	Keywords []string  `json:"keywords"`
	AddedAt  time.Time `json:"added_at"`
}

// Subscription holds one user's topics and digest preference. LastDigest is
// nil until the first digest run completes for the user.
type Subscription struct {
	Topics      []Topic    `json:"topics"`
	DailyDigest bool       `json:"daily_digest"`
	LastDigest  *time.Time `json:"last_digest"`
}

// Article is a single news item as returned by the search provider.
// PublishedAt is kept as the raw provider string; it is parsed only at
// display time so a malformed date can never break the pipeline.
type Article struct {
	SourceName  string
	Title       string
	Description string
	URL         string
	PublishedAt string
}

// Location is a geocoded place.
type Location struct {
	Name      string
	Latitude  float64
	Longitude float64
	Country   string
	Admin1    string
}

// CurrentWeather is the current-conditions block of a forecast.
type CurrentWeather struct {
	Temperature   float64
	Humidity      float64
	Precipitation float64
	WeatherCode   int
	WindSpeed     float64
}

// DailyForecast holds per-day series; index 0 is today, index 1 tomorrow.
type DailyForecast struct {
	Time             []string
	WeatherCode      []int
	TemperatureMax   []float64
	TemperatureMin   []float64
	PrecipitationSum []float64
	WindSpeedMax     []float64
}

// Forecast is a resolved weather report for a location.
type Forecast struct {
	Location Location
	Current  CurrentWeather
	Daily    DailyForecast
}
