package display

import "math"

// Named conversion constants. The pressure factor is a deliberate
// approximation: the exact hPa to mmHg factor is 0.7500617, the dashboard
// uses 0.75.
const (
	// KMHPerMS converts the provider's km/h wind speeds to m/s.
	KMHPerMS = 3.6
	// HPAToMM converts surface pressure from hPa to millimeters of mercury.
	HPAToMM = 0.75
)

// WindSpeedMS converts a wind speed from km/h to m/s.
func WindSpeedMS(kmh float64) float64 {
	return kmh / KMHPerMS
}

// PressureMM converts a pressure from hPa to whole millimeters of mercury,
// rounded to the nearest integer.
func PressureMM(hpa float64) int {
	return int(math.Round(hpa * HPAToMM))
}
