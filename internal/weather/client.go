// Package weather resolves a free-form location to coordinates and fetches
// the current conditions plus a two-day forecast from Open-Meteo.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/snchkv/newswatcher/internal/model"
)

type Client struct {
	geocodingURL string
	forecastURL  string
	client       *http.Client
}

func New(geocodingURL, forecastURL string, timeout time.Duration) *Client {
	return &Client{
		geocodingURL: geocodingURL,
		forecastURL:  forecastURL,
		client:       &http.Client{Timeout: timeout},
	}
}

type geocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
		Admin1    string  `json:"admin1"`
	} `json:"results"`
}

type forecastResponse struct {
	Current struct {
		Temperature   float64 `json:"temperature_2m"`
		Humidity      float64 `json:"relative_humidity_2m"`
		Precipitation float64 `json:"precipitation"`
		WeatherCode   int     `json:"weather_code"`
		WindSpeed     float64 `json:"wind_speed_10m"`
	} `json:"current"`
	Daily struct {
		Time             []string  `json:"time"`
		WeatherCode      []int     `json:"weather_code"`
		TemperatureMax   []float64 `json:"temperature_2m_max"`
		TemperatureMin   []float64 `json:"temperature_2m_min"`
		PrecipitationSum []float64 `json:"precipitation_sum"`
		WindSpeedMax     []float64 `json:"windspeed_10m_max"`
	} `json:"daily"`
}

// Location resolves name to coordinates. An unknown place is an error, not
// a partial result.
func (c *Client) Location(ctx context.Context, name string) (*model.Location, error) {
	params := url.Values{}
	params.Set("name", name)
	params.Set("count", "1")
	params.Set("language", "ru")

	var body geocodingResponse
	if err := c.getJSON(ctx, c.geocodingURL+"?"+params.Encode(), &body); err != nil {
		return nil, fmt.Errorf("geocoding %q: %w", name, err)
	}
	if len(body.Results) == 0 {
		return nil, fmt.Errorf("location %q not found", name)
	}

	r := body.Results[0]
	return &model.Location{
		Name:      r.Name,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Country:   r.Country,
		Admin1:    r.Admin1,
	}, nil
}

// Forecast fetches current conditions and a two-day daily forecast for loc.
func (c *Client) Forecast(ctx context.Context, loc *model.Location) (*model.Forecast, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.4f", loc.Latitude))
	params.Set("longitude", fmt.Sprintf("%.4f", loc.Longitude))
	params.Set("current", "temperature_2m,relative_humidity_2m,precipitation,weather_code,wind_speed_10m")
	params.Set("hourly", "temperature_2m,precipitation,weather_code")
	params.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min,precipitation_sum,windspeed_10m_max")
	params.Set("timezone", "auto")
	params.Set("forecast_days", "2")

	var body forecastResponse
	if err := c.getJSON(ctx, c.forecastURL+"?"+params.Encode(), &body); err != nil {
		return nil, fmt.Errorf("fetching forecast for %s: %w", loc.Name, err)
	}

	return &model.Forecast{
		Location: *loc,
		Current: model.CurrentWeather{
			Temperature:   body.Current.Temperature,
			Humidity:      body.Current.Humidity,
			Precipitation: body.Current.Precipitation,
			WeatherCode:   body.Current.WeatherCode,
			WindSpeed:     body.Current.WindSpeed,
		},
		Daily: model.DailyForecast{
			Time:             body.Daily.Time,
			WeatherCode:      body.Daily.WeatherCode,
			TemperatureMax:   body.Daily.TemperatureMax,
			TemperatureMin:   body.Daily.TemperatureMin,
			PrecipitationSum: body.Daily.PrecipitationSum,
			WindSpeedMax:     body.Daily.WindSpeedMax,
		},
	}, nil
}

// Weather is the two-step lookup: geocode, then forecast. Either step
// failing means no data at all.
func (c *Client) Weather(ctx context.Context, location string) (*model.Forecast, error) {
	loc, err := c.Location(ctx, location)
	if err != nil {
		return nil, err
	}
	return c.Forecast(ctx, loc)
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
