// Package remote holds the two best-effort network collaborators:
// current weather and crypto prices. Both are UI-only; a failure is
// logged and the caller keeps whatever it showed before. Nothing here
// ever touches the record collections.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

const openMeteoBaseURL = "https://api.open-meteo.com"

// Default coordinates: Hà Nội.
const (
	DefaultLatitude  = 21.0285
	DefaultLongitude = 105.8542
)

// Weather is one current-conditions snapshot.
type Weather struct {
	Temperature float64
	Humidity    float64
	WeatherCode int
}

// WeatherClient fetches current conditions from open-meteo.
type WeatherClient struct {
	BaseURL string
	HTTP    *http.Client
	log     zerolog.Logger
}

func NewWeatherClient(log zerolog.Logger) *WeatherClient {
	return &WeatherClient{
		BaseURL: openMeteoBaseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// Current fetches the snapshot for one coordinate pair.
func (c *WeatherClient) Current(ctx context.Context, latitude, longitude float64) (Weather, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%g", latitude))
	q.Set("longitude", fmt.Sprintf("%g", longitude))
	q.Set("current", "temperature_2m,relative_humidity_2m,weather_code")
	q.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.BaseURL+"/v1/forecast?"+q.Encode(), nil)
	if err != nil {
		return Weather{}, fmt.Errorf("building weather request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Msg("weather fetch failed")
		return Weather{}, fmt.Errorf("fetching weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Int("status", resp.StatusCode).Msg("weather fetch failed")
		return Weather{}, fmt.Errorf("fetching weather: status %d", resp.StatusCode)
	}

	var payload struct {
		Current struct {
			Temperature float64 `json:"temperature_2m"`
			Humidity    float64 `json:"relative_humidity_2m"`
			WeatherCode int     `json:"weather_code"`
		} `json:"current"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Warn().Err(err).Msg("weather response unreadable")
		return Weather{}, fmt.Errorf("decoding weather: %w", err)
	}

	return Weather{
		Temperature: payload.Current.Temperature,
		Humidity:    payload.Current.Humidity,
		WeatherCode: payload.Current.WeatherCode,
	}, nil
}
