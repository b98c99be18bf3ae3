package display

// Compass arrow glyphs. The arrow points where the wind blows toward, so a
// northerly heading (wind from the north) renders as a downward arrow.
const (
	arrowN  = "↓"
	arrowNE = "↙"
	arrowE  = "←"
	arrowSE = "↖"
	arrowS  = "↑"
	arrowSW = "↗"
	arrowW  = "→"
	arrowNW = "↘"
)

// WindArrow maps a degree heading to one of eight compass arrows using
// 45-degree sectors centered on the compass points. The north sector spans
// [338,360] and [0,22], so 0 and 360 both resolve north. Headings outside
// 0..360 fall back to the east arrow rather than failing.
func WindArrow(deg int) string {
	switch {
	case (deg >= 338 && deg <= 360) || (deg >= 0 && deg <= 22):
		return arrowN
	case deg >= 23 && deg <= 67:
		return arrowNE
	case deg >= 68 && deg <= 112:
		return arrowE
	case deg >= 113 && deg <= 157:
		return arrowSE
	case deg >= 158 && deg <= 202:
		return arrowS
	case deg >= 203 && deg <= 247:
		return arrowSW
	case deg >= 248 && deg <= 292:
		return arrowW
	case deg >= 293 && deg <= 337:
		return arrowNW
	default:
		return arrowE
	}
}
