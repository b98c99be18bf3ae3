// Package display converts raw forecast values into display-ready strings:
// WMO weather codes to descriptions and icons, wind headings to compass
// arrows, ISO dates to weekday labels, ISO datetimes to clock times, and the
// unit conversions the dashboard shows.
//
// Every function is pure and total: unexpected input degrades to a documented
// fallback value, never an error.
package display

// Condition is the display form of a WMO weather code: a human description,
// an icon identifier and the color class the dashboard applies to it.
type Condition struct {
	Description string
	Icon        string
	Color       string
}

// unknownCondition is returned for any code outside the WMO table.
var unknownCondition = Condition{Description: "unknown", Icon: "01d", Color: "gray"}

// Weather describes a WMO weather code. Multiple raw codes collapse into one
// display bucket; codes outside the table fall back to the unknown bucket.
func Weather(code int) Condition {
	switch code {
	case 0:
		return Condition{Description: "clear", Icon: "01d", Color: "yellow"}
	case 1, 2:
		return Condition{Description: "mostly clear", Icon: "02d", Color: "yellow"}
	case 3:
		return Condition{Description: "cloudy", Icon: "03d", Color: "gray"}
	case 45, 48:
		return Condition{Description: "fog", Icon: "50d", Color: "gray"}
	case 51, 53, 55:
		return Condition{Description: "drizzle", Icon: "09d", Color: "blue"}
	case 56, 57:
		return Condition{Description: "freezing drizzle", Icon: "13d", Color: "cyan"}
	case 61, 63, 65:
		return Condition{Description: "rain", Icon: "10d", Color: "blue"}
	case 66, 67:
		return Condition{Description: "sleet", Icon: "13d", Color: "cyan"}
	case 71, 73, 75:
		return Condition{Description: "snow", Icon: "13d", Color: "white"}
	case 77:
		return Condition{Description: "hail", Icon: "13d", Color: "white"}
	case 80, 81, 82:
		return Condition{Description: "rain showers", Icon: "09d", Color: "blue"}
	case 85, 86:
		return Condition{Description: "snow showers", Icon: "13d", Color: "white"}
	case 95:
		return Condition{Description: "thunderstorm", Icon: "11d", Color: "purple"}
	case 96, 99:
		return Condition{Description: "thunderstorm with hail", Icon: "11d", Color: "purple"}
	default:
		return unknownCondition
	}
}
