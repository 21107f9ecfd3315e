package weather

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snchkv/newswatcher/internal/model"
)

func TestWeatherTwoStepLookup(t *testing.T) {
	geo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Москва", r.URL.Query().Get("name"))
		assert.Equal(t, "1", r.URL.Query().Get("count"))

		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{{
				"name":      "Москва",
				"latitude":  55.7522,
				"longitude": 37.6156,
				"country":   "Россия",
				"admin1":    "Москва",
			}},
		})
	}))
	defer geo.Close()

	forecast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "55.7522", r.URL.Query().Get("latitude"))
		assert.Equal(t, "2", r.URL.Query().Get("forecast_days"))

		json.NewEncoder(w).Encode(map[string]any{
			"current": map[string]any{
				"temperature_2m":       21.4,
				"relative_humidity_2m": 60,
				"precipitation":        0.0,
				"weather_code":         2,
				"wind_speed_10m":       12.3,
			},
			"daily": map[string]any{
				"time":                []string{"2025-06-01", "2025-06-02"},
				"weather_code":        []int{2, 61},
				"temperature_2m_max":  []float64{24.0, 18.5},
				"temperature_2m_min":  []float64{14.1, 12.0},
				"precipitation_sum":   []float64{0, 4.2},
				"windspeed_10m_max":   []float64{15.0, 22.1},
			},
		})
	}))
	defer forecast.Close()

	c := New(geo.URL, forecast.URL, time.Second)

	got, err := c.Weather(context.Background(), "Москва")
	require.NoError(t, err)
	assert.Equal(t, "Москва", got.Location.Name)
	assert.InDelta(t, 21.4, got.Current.Temperature, 0.01)
	assert.Equal(t, []int{2, 61}, got.Daily.WeatherCode)
}

func TestWeatherUnknownLocation(t *testing.T) {
	geo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"results": []any{}})
	}))
	defer geo.Close()

	c := New(geo.URL, "http://127.0.0.1:1", time.Second)

	_, err := c.Weather(context.Background(), "Атлантида")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestFormat(t *testing.T) {
	f := &model.Forecast{
		Location: model.Location{Name: "Москва", Admin1: "Москва", Country: "Россия"},
		Current: model.CurrentWeather{
			Temperature:   21.4,
			Humidity:      60,
			Precipitation: 1.2,
			WeatherCode:   61,
			WindSpeed:     12.3,
		},
		Daily: model.DailyForecast{
			Time:             []string{"2025-06-01", "2025-06-02"},
			WeatherCode:      []int{0, 95},
			TemperatureMax:   []float64{24.0, 18.5},
			TemperatureMin:   []float64{14.1, 12.0},
			PrecipitationSum: []float64{0, 4.2},
			WindSpeedMax:     []float64{15.0, 22.1},
		},
	}

	got := Format(f)

	assert.Contains(t, got, "Погода в Москва, Москва, Россия")
	assert.Contains(t, got, "Небольшой дождь")
	assert.Contains(t, got, "🌡️ 21.4°C")
	assert.Contains(t, got, "Влажность: 60%")
	assert.Contains(t, got, "Сегодня")
	assert.Contains(t, got, "Ясно")
	assert.Contains(t, got, "Завтра")
	assert.Contains(t, got, "Гроза")
	assert.Contains(t, got, "Осадки: 4.2 мм")
}

func TestFormatNilForecast(t *testing.T) {
	assert.Equal(t, "❌ Не удалось получить данные о погоде", Format(nil))
}

func TestWeatherCodeMapping(t *testing.T) {
	tests := []struct {
		code  int
		emoji string
		desc  string
	}{
		{0, "☀️", "Ясно"},
		{3, "🌤️", "Пасмурно"},
		{45, "🌫️", "Туман"},
		{55, "🌦️", "Сильная морось"},
		{65, "🌧️", "Сильный дождь"},
		{75, "🌨️", "Сильный снег"},
		{99, "⛈️", "Сильная гроза с градом"},
		{123, "☁️", "Неизвестная погода"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.emoji, emoji(tc.code), "code %d", tc.code)
		assert.Equal(t, tc.desc, description(tc.code), "code %d", tc.code)
	}
}
