package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/workos/internal/shell"
)

const coingeckoBaseURL = "https://api.coingecko.com"

// DefaultCoins is the tracked coin set when the config names none.
var DefaultCoins = []string{
	"bitcoin", "ethereum", "binancecoin", "solana",
	"cardano", "ripple", "dogecoin", "polkadot",
}

// Coin is one priced coin.
type Coin struct {
	ID        string
	PriceUSD  float64
	PriceVND  float64
	Change24h float64
}

// MarketClient fetches simple prices from coingecko.
type MarketClient struct {
	BaseURL string
	HTTP    *http.Client
	log     zerolog.Logger
}

func NewMarketClient(log zerolog.Logger) *MarketClient {
	return &MarketClient{
		BaseURL: coingeckoBaseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// Prices fetches USD and VND prices plus the 24h change for the given
// coin ids, sorted by id for stable output.
func (c *MarketClient) Prices(ctx context.Context, coins []string) ([]Coin, error) {
	if len(coins) == 0 {
		coins = DefaultCoins
	}

	q := url.Values{}
	q.Set("ids", strings.Join(coins, ","))
	q.Set("vs_currencies", "usd,vnd")
	q.Set("include_24hr_change", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.BaseURL+"/api/v3/simple/price?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building market request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Msg("market fetch failed")
		return nil, fmt.Errorf("fetching prices: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Int("status", resp.StatusCode).Msg("market fetch failed")
		return nil, fmt.Errorf("fetching prices: status %d", resp.StatusCode)
	}

	var payload map[string]struct {
		USD          float64 `json:"usd"`
		VND          float64 `json:"vnd"`
		USD24hChange float64 `json:"usd_24h_change"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Warn().Err(err).Msg("market response unreadable")
		return nil, fmt.Errorf("decoding prices: %w", err)
	}

	priced := make([]Coin, 0, len(payload))
	for id, p := range payload {
		priced = append(priced, Coin{
			ID:        id,
			PriceUSD:  p.USD,
			PriceVND:  p.VND,
			Change24h: p.USD24hChange,
		})
	}
	sort.Slice(priced, func(i, j int) bool { return priced[i].ID < priced[j].ID })
	return priced, nil
}

// MarketView renders a fresh price table. A failed fetch renders a
// placeholder instead of failing the view.
type MarketView struct {
	Client *MarketClient
	Coins  []string
}

func (v MarketView) ID() string { return shell.ViewMarket }

func (v MarketView) Render(w io.Writer, dark bool) error {
	fmt.Fprintln(w, shell.Heading("Crypto Market", dark))
	coins, err := v.Client.Prices(context.Background(), v.Coins)
	if err != nil || len(coins) == 0 {
		fmt.Fprintln(w, "Không có dữ liệu. Vui lòng làm mới.")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Tên Coin\tGiá (USD)\tGiá (VND)\tThay đổi (24h)")
	for _, coin := range coins {
		fmt.Fprintf(tw, "%s\t$%.2f\t₫%.0f\t%+.2f%%\n",
			coin.ID, coin.PriceUSD, coin.PriceVND, coin.Change24h)
	}
	return tw.Flush()
}
