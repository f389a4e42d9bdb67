package weather

import (
	"context"
	"fmt"
	"strings"

	"github.com/reagentic/reagent/core/cost"
	"github.com/reagentic/reagent/providers/tool"
)

// report is the canned weather snapshot for one city.
type report struct {
	city      string
	tempF     int
	condition string
	humidity  int
}

// reports holds the simulated weather table. Order matters: the
// available-cities hint in the miss message lists cities in this order.
func reports() []report {
	return []report{
		{"new york", 45, "Partly Cloudy", 65},
		{"london", 50, "Rainy", 80},
		{"tokyo", 55, "Clear", 55},
		{"sydney", 75, "Sunny", 60},
		{"paris", 48, "Overcast", 70},
		{"mumbai", 85, "Humid", 85},
	}
}

// NewWeatherTool returns a [tool.Tool] serving simulated weather data for a
// fixed set of cities.
func NewWeatherTool() *tool.Tool[Input, Output] {
	return tool.NewTool[Input, Output](
		"get_weather",
		Lookup,
		tool.WithDescription("Get weather information for a city (simulated)."),
		tool.WithMetrics(cost.ToolMetrics{
			Amount:          0.0,
			Currency:        "USD",
			CostDescription: "simulated weather, no external API",
			Accuracy:        1.0,
		}),
	)
}

// Lookup returns the canned weather for req.City, matched case-insensitively.
// Temperature is reported in Fahrenheit with a Celsius conversion. A miss
// lists the cities that are available instead of failing the call.
func Lookup(ctx context.Context, req Input) (Output, error) {
	cityLower := strings.ToLower(strings.TrimSpace(req.City))

	for _, r := range reports() {
		if r.city == cityLower {
			celsius := float64(r.tempF-32) * 5 / 9
			return Output{Report: fmt.Sprintf(
				"Weather in %s:\n"+
					"- Temperature: %d°F (%.1f°C)\n"+
					"- Condition: %s\n"+
					"- Humidity: %d%%",
				titleCase(cityLower), r.tempF, celsius, r.condition, r.humidity)}, nil
		}
	}

	names := make([]string, 0, len(reports()))
	for _, r := range reports() {
		names = append(names, r.city)
	}
	return Output{Report: fmt.Sprintf(
		"Weather data not available for '%s'. Available cities: %s",
		req.City, strings.Join(names, ", "))}, nil
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Input holds the city to look up.
type Input struct {
	City string `json:"city" jsonschema:"description=Name of the city,required"`
}

// Output carries the formatted weather report.
type Output struct {
	Report string `json:"report" jsonschema:"description=Weather information for the specified city"`
}
