package meteo

import (
	"context"
	"net/url"

	"skycast/internal/types"
)

// geocodingResponse mirrors the Open-Meteo geocoding search payload. The
// provider omits the results key entirely when nothing matches.
type geocodingResponse struct {
	Results []geoResult `json:"results"`
}

type geoResult struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	Admin1    string  `json:"admin1"`
}

// Geocode resolves a free-text city name to its best match. The provider
// returns a relevance-ranked list; only the first entry is used. An empty or
// absent result list, or a match without a name, yields not_found_city.
func (c *Client) Geocode(ctx context.Context, city string) (types.Location, error) {
	q := url.Values{}
	q.Set("name", city)
	q.Set("count", "1")
	q.Set("language", c.language)
	q.Set("format", "json")

	var decoded geocodingResponse
	if err := c.getJSON(ctx, c.geocodingURL+"?"+q.Encode(), "geocoding", &decoded); err != nil {
		return types.Location{}, err
	}

	if len(decoded.Results) == 0 || decoded.Results[0].Name == "" {
		return types.Location{}, types.NewAppError(types.ErrCodeNotFoundCity, "city not found", nil)
	}

	best := decoded.Results[0]
	return types.Location{
		Name:      best.Name,
		Country:   best.Country,
		Latitude:  best.Latitude,
		Longitude: best.Longitude,
	}, nil
}
