package weather

import (
	"fmt"
	"strings"

	"github.com/snchkv/newswatcher/internal/model"
)

// Format renders a forecast as an HTML Telegram message: current
// conditions plus today's and tomorrow's outlook.
func Format(f *model.Forecast) string {
	if f == nil {
		return "❌ Не удалось получить данные о погоде"
	}

	place := f.Location.Name
	if f.Location.Admin1 != "" {
		place += ", " + f.Location.Admin1
	}
	if f.Location.Country != "" {
		place += ", " + f.Location.Country
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🌤️ <b>Погода в %s</b>\n\n", place)

	b.WriteString("📅 <b>Сейчас:</b>\n")
	fmt.Fprintf(&b, "%s %s\n", emoji(f.Current.WeatherCode), description(f.Current.WeatherCode))
	fmt.Fprintf(&b, "🌡️ %.1f°C\n", f.Current.Temperature)
	fmt.Fprintf(&b, "💧 Влажность: %.0f%%\n", f.Current.Humidity)
	fmt.Fprintf(&b, "💨 Ветер: %.1f км/ч\n", f.Current.WindSpeed)
	if f.Current.Precipitation > 0 {
		fmt.Fprintf(&b, "🌧️ Осадки: %.1f мм\n", f.Current.Precipitation)
	}
	b.WriteString("\n")

	writeDay(&b, f.Daily, 0, "☀️ <b>Сегодня:</b>")
	writeDay(&b, f.Daily, 1, "📅 <b>Завтра:</b>")

	return b.String()
}

func writeDay(b *strings.Builder, d model.DailyForecast, day int, header string) {
	if day >= len(d.TemperatureMax) || day >= len(d.TemperatureMin) {
		return
	}

	code := 0
	if day < len(d.WeatherCode) {
		code = d.WeatherCode[day]
	}

	fmt.Fprintf(b, "%s\n", header)
	fmt.Fprintf(b, "%s %s\n", emoji(code), description(code))
	fmt.Fprintf(b, "🌡️ %.1f°C / %.1f°C\n", d.TemperatureMin[day], d.TemperatureMax[day])
	if day < len(d.WindSpeedMax) {
		fmt.Fprintf(b, "💨 Ветер: %.1f км/ч\n", d.WindSpeedMax[day])
	}
	if day < len(d.PrecipitationSum) && d.PrecipitationSum[day] > 0 {
		fmt.Fprintf(b, "🌧️ Осадки: %.1f мм\n", d.PrecipitationSum[day])
	}
	b.WriteString("\n")
}

// emoji maps a WMO weather code to a rough emoji class.
func emoji(code int) string {
	switch {
	case code == 0:
		return "☀️"
	case code >= 1 && code <= 3:
		return "🌤️"
	case code == 45 || code == 48:
		return "🌫️"
	case code >= 51 && code <= 57:
		return "🌦️"
	case (code >= 61 && code <= 67) || (code >= 80 && code <= 82):
		return "🌧️"
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return "🌨️"
	case code == 95 || code == 96 || code == 99:
		return "⛈️"
	default:
		return "☁️"
	}
}

var descriptions = map[int]string{
	0:  "Ясно",
	1:  "Преимущественно ясно",
	2:  "Переменная облачность",
	3:  "Пасмурно",
	45: "Туман",
	48: "Замерзающий туман",
	51: "Легкая морось",
	53: "Умеренная морось",
	55: "Сильная морось",
	56: "Легкая замерзающая морось",
	57: "Сильная замерзающая морось",
	61: "Небольшой дождь",
	63: "Умеренный дождь",
	65: "Сильный дождь",
	66: "Легкий замерзающий дождь",
	67: "Сильный замерзающий дождь",
	71: "Небольшой снег",
	73: "Умеренный снег",
	75: "Сильный снег",
	77: "Снежные зерна",
	80: "Небольшой ливень",
	81: "Умеренный ливень",
	82: "Сильный ливень",
	85: "Небольшая снежная буря",
	86: "Сильная снежная буря",
	95: "Гроза",
	96: "Гроза с градом",
	99: "Сильная гроза с градом",
}

func description(code int) string {
	if d, ok := descriptions[code]; ok {
		return d
	}
	return "Неизвестная погода"
}
