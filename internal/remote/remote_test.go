package remote

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLog = zerolog.Nop()

func TestWeatherCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		assert.Equal(t, "21.0285", r.URL.Query().Get("latitude"))
		assert.Equal(t, "105.8542", r.URL.Query().Get("longitude"))
		assert.Equal(t, "temperature_2m,relative_humidity_2m,weather_code", r.URL.Query().Get("current"))
		w.Write([]byte(`{"current":{"temperature_2m":31.4,"relative_humidity_2m":68,"weather_code":3}}`))
	}))
	defer srv.Close()

	c := NewWeatherClient(testLog)
	c.BaseURL = srv.URL

	weather, err := c.Current(context.Background(), DefaultLatitude, DefaultLongitude)
	require.NoError(t, err)
	assert.Equal(t, 31.4, weather.Temperature)
	assert.Equal(t, 68.0, weather.Humidity)
	assert.Equal(t, 3, weather.WeatherCode)
}

func TestWeatherNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewWeatherClient(testLog)
	c.BaseURL = srv.URL

	_, err := c.Current(context.Background(), DefaultLatitude, DefaultLongitude)
	assert.Error(t, err)
}

func TestWeatherGarbageBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>rate limited</html>"))
	}))
	defer srv.Close()

	c := NewWeatherClient(testLog)
	c.BaseURL = srv.URL

	_, err := c.Current(context.Background(), DefaultLatitude, DefaultLongitude)
	assert.Error(t, err)
}

func TestWeatherHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewWeatherClient(testLog)
	c.BaseURL = srv.URL

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Current(ctx, DefaultLatitude, DefaultLongitude)
	assert.Error(t, err)
}

func TestMarketPrices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/simple/price", r.URL.Path)
		assert.Equal(t, "bitcoin,ethereum", r.URL.Query().Get("ids"))
		assert.Equal(t, "usd,vnd", r.URL.Query().Get("vs_currencies"))
		assert.Equal(t, "true", r.URL.Query().Get("include_24hr_change"))
		w.Write([]byte(`{
			"ethereum":{"usd":3200.5,"vnd":81000000,"usd_24h_change":-1.2},
			"bitcoin":{"usd":97000,"vnd":2450000000,"usd_24h_change":2.7}
		}`))
	}))
	defer srv.Close()

	c := NewMarketClient(testLog)
	c.BaseURL = srv.URL

	coins, err := c.Prices(context.Background(), []string{"bitcoin", "ethereum"})
	require.NoError(t, err)
	require.Len(t, coins, 2)
	assert.Equal(t, "bitcoin", coins[0].ID)
	assert.Equal(t, 97000.0, coins[0].PriceUSD)
	assert.Equal(t, 2.7, coins[0].Change24h)
	assert.Equal(t, "ethereum", coins[1].ID)
}

func TestMarketDefaultsCoinSet(t *testing.T) {
	var gotIDs string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotIDs = r.URL.Query().Get("ids")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewMarketClient(testLog)
	c.BaseURL = srv.URL

	coins, err := c.Prices(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, coins)
	assert.Contains(t, gotIDs, "bitcoin")
	assert.Contains(t, gotIDs, "polkadot")
}

func TestMarketViewRendersPlaceholderOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewMarketClient(testLog)
	c.BaseURL = srv.URL

	var buf bytes.Buffer
	require.NoError(t, MarketView{Client: c}.Render(&buf, false))
	assert.Contains(t, buf.String(), "Không có dữ liệu")
}

func TestMarketNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewMarketClient(testLog)
	c.BaseURL = srv.URL

	_, err := c.Prices(context.Background(), []string{"bitcoin"})
	assert.Error(t, err)
}
