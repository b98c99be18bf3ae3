// Package weather implements the city lookup pipeline: resolve a free-text
// city name to coordinates, fetch current conditions and the extended
// forecast, and assemble the display-ready snapshot.
package weather

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"golang.org/x/sync/singleflight"

	"skycast/internal/display"
	"skycast/internal/meteo"
	"skycast/internal/types"
)

// sampleHours are the fixed hours sampled from each forecast day's hourly
// series. Note the jump from 3 to 9: the dashboard's hourly strip skips the
// early morning.
var sampleHours = [...]int{0, 3, 9, 12, 15, 18, 21}

// hoursPerDay offsets into the flat hourly arrays, which start at local
// midnight of day 0 (timezone=auto).
const hoursPerDay = 24

// defaultVisibilityKM is a placeholder: Open-Meteo's current block carries
// no visibility, the dashboard shows a fixed 10 km.
const defaultVisibilityKM = 10

// maxForecastDays caps the day strip at one week.
const maxForecastDays = 7

// Geocoder resolves a city name to its best-matching location.
type Geocoder interface {
	Geocode(ctx context.Context, city string) (types.Location, error)
}

// ForecastFetcher retrieves weather data for resolved coordinates.
type ForecastFetcher interface {
	Current(ctx context.Context, lat, lon float64) (meteo.CurrentWeather, error)
	Extended(ctx context.Context, lat, lon float64) (*meteo.ExtendedForecast, error)
}

// Service is the single entry point exposed to the presentation layer. Each
// Lookup builds an independent snapshot; nothing persists between searches.
type Service struct {
	geocoder Geocoder
	fetcher  ForecastFetcher
	logger   *slog.Logger

	// flights coalesces concurrent lookups for the same city so a burst of
	// identical searches costs one upstream pipeline.
	flights singleflight.Group
}

// NewService creates a lookup Service.
func NewService(geocoder Geocoder, fetcher ForecastFetcher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		geocoder: geocoder,
		fetcher:  fetcher,
		logger:   logger,
	}
}

// Lookup resolves city and assembles a fresh WeatherSnapshot.
//
// The pipeline is strictly sequenced: coordinates must resolve before either
// weather call is made, and the current-conditions call precedes the extended
// one. A geocoding or current-conditions failure aborts the lookup; an
// extended-forecast failure degrades to a snapshot without Days.
func (s *Service) Lookup(ctx context.Context, city string) (*types.WeatherSnapshot, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, types.NewAppError(types.ErrCodeValidationMissingCity, "please enter a city name", nil)
	}

	// The shared flight runs on a context detached from the initiating
	// request, so one caller's cancellation cannot fail the lookups
	// coalesced onto it. Each caller still honors its own context while
	// waiting; the upstream client's timeouts bound the detached call.
	key := strings.ToLower(city)
	ch := s.flights.DoChan(key, func() (any, error) {
		return s.lookup(context.WithoutCancel(ctx), city)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*types.WeatherSnapshot), nil
	case <-ctx.Done():
		return nil, types.NewAppError(types.ErrCodeUpstreamNetwork,
			"network error: lookup canceled", ctx.Err())
	}
}

func (s *Service) lookup(ctx context.Context, city string) (*types.WeatherSnapshot, error) {
	loc, err := s.geocoder.Geocode(ctx, city)
	if err != nil {
		return nil, err
	}

	cur, err := s.fetcher.Current(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		return nil, err
	}

	cond := display.Weather(cur.WeatherCode)
	snapshot := &types.WeatherSnapshot{
		City:        loc.Name,
		Country:     loc.Country,
		Description: cond.Description,
		Icon:        cond.Icon,
		IconColor:   cond.Color,
		Current: types.CurrentConditions{
			Temperature:         cur.Temperature,
			ApparentTemperature: cur.ApparentTemperature,
			Humidity:            cur.Humidity,
			PressureHPA:         int(cur.SurfacePressure),
			WindSpeedMS:         display.WindSpeedMS(cur.WindSpeed),
			WeatherCode:         cur.WeatherCode,
		},
		VisibilityKM: defaultVisibilityKM,
	}

	// The extended forecast is best-effort: current conditions still render
	// when it fails.
	forecast, err := s.fetcher.Extended(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		s.logger.WarnContext(ctx, "extended forecast unavailable",
			"city", loc.Name,
			"error", err,
		)
		return snapshot, nil
	}

	snapshot.Days = assembleDays(forecast)
	return snapshot, nil
}

// assembleDays builds the day strip from the provider's daily and hourly
// arrays. All index access is bounds-checked: a day or hour the arrays do
// not cover is omitted rather than failing, so the final forecast day may
// carry fewer samples.
func assembleDays(fc *meteo.ExtendedForecast) []types.DayForecast {
	if fc == nil {
		return nil
	}
	daily, hourly := fc.Daily, fc.Hourly

	n := len(daily.Time)
	if n > maxForecastDays {
		n = maxForecastDays
	}

	days := make([]types.DayForecast, 0, n)
	for i := 0; i < n; i++ {
		date := daily.Time[i]
		day := types.DayForecast{
			Date:  date,
			Label: display.WeekdayLabel(date),
			Hours: sampleDay(hourly, i),
		}

		if i < len(daily.WeatherCode) {
			cond := display.Weather(daily.WeatherCode[i])
			day.Icon = cond.Icon
			day.IconColor = cond.Color
		}
		if i < len(daily.TemperatureMin) {
			day.MinTemp = int(math.Round(daily.TemperatureMin[i]))
		}
		if i < len(daily.TemperatureMax) {
			day.MaxTemp = int(math.Round(daily.TemperatureMax[i]))
		}
		if i < len(daily.Sunrise) {
			day.Sunrise = display.ClockTime(daily.Sunrise[i])
		}
		if i < len(daily.Sunset) {
			day.Sunset = display.ClockTime(daily.Sunset[i])
		}

		days = append(days, day)
	}
	return days
}

// sampleDay extracts the fixed-hour samples for day index dayIdx. An hour is
// emitted only when every source array covers its index, which keeps the
// per-field sequences of a sample set aligned.
func sampleDay(hourly meteo.HourlySeries, dayIdx int) []types.HourSample {
	samples := make([]types.HourSample, 0, len(sampleHours))
	for _, h := range sampleHours {
		idx := dayIdx*hoursPerDay + h
		if idx >= len(hourly.Temperature) ||
			idx >= len(hourly.ApparentTemperature) ||
			idx >= len(hourly.Humidity) ||
			idx >= len(hourly.SurfacePressure) ||
			idx >= len(hourly.WindDirection) {
			continue
		}
		samples = append(samples, types.HourSample{
			Temperature:         hourly.Temperature[idx],
			ApparentTemperature: hourly.ApparentTemperature[idx],
			PressureMM:          display.PressureMM(hourly.SurfacePressure[idx]),
			Humidity:            hourly.Humidity[idx],
			WindArrow:           display.WindArrow(hourly.WindDirection[idx]),
		})
	}
	return samples
}
