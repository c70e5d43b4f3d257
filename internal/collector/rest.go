package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"FinanceHub/internal/model"
)

// RESTFetcher implements Fetcher against a self-hosted market data REST API.
type RESTFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewRESTFetcher creates a new fetcher with optional proxy support.
func NewRESTFetcher(baseURL, apiKey, proxyURL string) *RESTFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &RESTFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *RESTFetcher) Name() string { return "rest" }

// restBar is the expected JSON shape of one bar.
type restBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

// restProfile uses pointers so absent fields stay unavailable.
type restProfile struct {
	ShortName     string   `json:"short_name"`
	TrailingPE    *float64 `json:"trailing_pe"`
	PriceToBook   *float64 `json:"price_to_book"`
	MarketCap     *float64 `json:"market_cap"`
	DividendYield *float64 `json:"dividend_yield"`
}

func fromPtr(v *float64) model.Optional[float64] {
	if v == nil {
		return model.None[float64]()
	}
	return model.Some(*v)
}

func (f *RESTFetcher) FetchDailyBars(ctx context.Context, symbol, period string) ([]model.OHLCV, error) {
	endpoint := fmt.Sprintf("%s/api/v1/bars/daily?symbol=%s&range=%s",
		f.BaseURL, url.QueryEscape(symbol), url.QueryEscape(period))
	var rb []restBar
	if err := f.getJSON(ctx, endpoint, &rb); err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	bars := make([]model.OHLCV, len(rb))
	for i, b := range rb {
		bars[i] = model.OHLCV{
			Time:   time.Unix(b.Timestamp, 0),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		}
	}
	// Ensure chronological order
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

func (f *RESTFetcher) FetchProfile(ctx context.Context, symbol string) (*model.Profile, error) {
	endpoint := fmt.Sprintf("%s/api/v1/profile?symbol=%s", f.BaseURL, url.QueryEscape(symbol))
	var rp restProfile
	if err := f.getJSON(ctx, endpoint, &rp); err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	return &model.Profile{
		ShortName:     rp.ShortName,
		TrailingPE:    fromPtr(rp.TrailingPE),
		PriceToBook:   fromPtr(rp.PriceToBook),
		MarketCap:     fromPtr(rp.MarketCap),
		DividendYield: fromPtr(rp.DividendYield),
	}, nil
}

func (f *RESTFetcher) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
