package meteo

import (
	"context"
	"net/url"
	"strconv"
)

// Field lists for the two forecast calls. The hourly list matches the series
// the dashboard samples; ordering follows the Open-Meteo documentation.
const (
	currentFields = "temperature_2m,relative_humidity_2m,apparent_temperature,weather_code,wind_speed_10m,surface_pressure"
	dailyFields   = "weather_code,temperature_2m_max,temperature_2m_min,sunrise,sunset"
	hourlyFields  = "temperature_2m,apparent_temperature,relative_humidity_2m,surface_pressure,wind_speed_10m,wind_direction_10m"

	// forecastDays is the fixed horizon of the extended call: 7 days at
	// hourly granularity, 168 samples per hourly field.
	forecastDays = "7"
)

// CurrentWeather is the provider's current-conditions block, untranslated.
type CurrentWeather struct {
	Temperature         float64 `json:"temperature_2m"`
	Humidity            int     `json:"relative_humidity_2m"`
	ApparentTemperature float64 `json:"apparent_temperature"`
	WeatherCode         int     `json:"weather_code"`
	WindSpeed           float64 `json:"wind_speed_10m"`
	SurfacePressure     float64 `json:"surface_pressure"`
}

type currentResponse struct {
	Current CurrentWeather `json:"current"`
}

// DailySeries holds the per-day aggregate arrays, index-aligned on Time.
type DailySeries struct {
	Time           []string  `json:"time"`
	WeatherCode    []int     `json:"weather_code"`
	TemperatureMax []float64 `json:"temperature_2m_max"`
	TemperatureMin []float64 `json:"temperature_2m_min"`
	Sunrise        []string  `json:"sunrise"`
	Sunset         []string  `json:"sunset"`
}

// HourlySeries holds the hourly arrays. The request uses timezone=auto, so
// index 0 corresponds to local midnight of day 0 and index d*24+h to hour h
// of day d.
type HourlySeries struct {
	Time                []string  `json:"time"`
	Temperature         []float64 `json:"temperature_2m"`
	ApparentTemperature []float64 `json:"apparent_temperature"`
	Humidity            []int     `json:"relative_humidity_2m"`
	SurfacePressure     []float64 `json:"surface_pressure"`
	WindSpeed           []float64 `json:"wind_speed_10m"`
	WindDirection       []int     `json:"wind_direction_10m"`
}

// ExtendedForecast is the 7-day daily plus hourly payload.
type ExtendedForecast struct {
	Daily  DailySeries  `json:"daily"`
	Hourly HourlySeries `json:"hourly"`
}

func coordinateQuery(lat, lon float64) url.Values {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	return q
}

// Current fetches only the current conditions for the given coordinates.
func (c *Client) Current(ctx context.Context, lat, lon float64) (CurrentWeather, error) {
	q := coordinateQuery(lat, lon)
	q.Set("current", currentFields)

	var decoded currentResponse
	if err := c.getJSON(ctx, c.forecastURL+"?"+q.Encode(), "weather", &decoded); err != nil {
		return CurrentWeather{}, err
	}
	return decoded.Current, nil
}

// Extended fetches the 7-day daily aggregates and hourly series for the
// given coordinates, timezone-adjusted so hourly index 0 is local midnight.
func (c *Client) Extended(ctx context.Context, lat, lon float64) (*ExtendedForecast, error) {
	q := coordinateQuery(lat, lon)
	q.Set("daily", dailyFields)
	q.Set("hourly", hourlyFields)
	q.Set("forecast_days", forecastDays)
	q.Set("timezone", "auto")

	var decoded ExtendedForecast
	if err := c.getJSON(ctx, c.forecastURL+"?"+q.Encode(), "forecast", &decoded); err != nil {
		return nil, err
	}
	return &decoded, nil
}
