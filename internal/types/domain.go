package types

// Location is the best geocoding match for a searched city. It is produced
// once per lookup, handed to the forecast fetcher, and discarded afterwards;
// nothing is cached between searches.
type Location struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CurrentConditions is an immutable snapshot of the conditions at the
// resolved location. WindSpeedMS is already converted from the provider's
// km/h to m/s; pressure stays in whole hPa as reported. The mmHg conversion
// applies only to the hourly samples.
type CurrentConditions struct {
	Temperature         float64 `json:"temperature_c"`
	ApparentTemperature float64 `json:"apparent_temperature_c"`
	Humidity            int     `json:"humidity_pct"`
	PressureHPA         int     `json:"pressure_hpa"`
	WindSpeedMS         float64 `json:"wind_speed_ms"`
	WeatherCode         int     `json:"weather_code"`
}

// HourSample is one fixed-hour sample of a day's hourly series. A sample is
// emitted only when every source array covers its index, so the per-field
// sequences of a day are always the same length.
type HourSample struct {
	Temperature         float64 `json:"temperature_c"`
	ApparentTemperature float64 `json:"apparent_temperature_c"`
	PressureMM          int     `json:"pressure_mm"`
	Humidity            int     `json:"humidity_pct"`
	WindArrow           string  `json:"wind_arrow"`
}

// DayForecast is the display-ready view of one forecast day. Hours holds up
// to seven samples taken at the fixed hours 0, 3, 9, 12, 15, 18 and 21 of
// the day's local time; it is shorter when the upstream hourly arrays run
// out, e.g. on the final forecast day. Sunrise and Sunset are empty when the
// source omits them.
type DayForecast struct {
	Date      string       `json:"date"`
	Label     string       `json:"label"`
	Icon      string       `json:"icon"`
	IconColor string       `json:"icon_color"`
	MinTemp   int          `json:"min_temp_c"`
	MaxTemp   int          `json:"max_temp_c"`
	Hours     []HourSample `json:"hours"`
	Sunrise   string       `json:"sunrise,omitempty"`
	Sunset    string       `json:"sunset,omitempty"`
}

// WeatherSnapshot is the top-level view model built per search. Days is nil
// when the extended forecast call failed; current conditions render
// regardless. VisibilityKM is a fixed placeholder because the provider does
// not report visibility.
type WeatherSnapshot struct {
	City         string            `json:"city"`
	Country      string            `json:"country"`
	Description  string            `json:"description"`
	Icon         string            `json:"icon"`
	IconColor    string            `json:"icon_color"`
	Current      CurrentConditions `json:"current"`
	Days         []DayForecast     `json:"days,omitempty"`
	VisibilityKM int               `json:"visibility_km"`
}
