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

	"golang.org/x/time/rate"

	"FinanceHub/internal/model"
)

const (
	yahooChartURL   = "https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=%s"
	yahooSummaryURL = "https://query2.finance.yahoo.com/v10/finance/quoteSummary/%s?modules=price,summaryDetail,defaultKeyStatistics"
)

// YahooFetcher implements Fetcher using the Yahoo Finance public API.
type YahooFetcher struct {
	Client  *http.Client
	Limiter *rate.Limiter
	BaseURL string // overrides the query host, used by tests
}

// NewYahooFetcher creates a Yahoo Finance fetcher with optional proxy support.
// requestsPerSecond <= 0 disables rate limiting.
func NewYahooFetcher(proxyURL string, requestsPerSecond int) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	f := &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
	if requestsPerSecond > 0 {
		f.Limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
	return f
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *yahooError `json:"error"`
	} `json:"chart"`
}

type yahooError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// yahooRaw is Yahoo's {"raw": 1.23, "fmt": "1.23"} number wrapper.
type yahooRaw struct {
	Raw *float64 `json:"raw"`
}

func (r yahooRaw) optional() model.Optional[float64] {
	if r.Raw == nil || *r.Raw == 0 {
		return model.None[float64]()
	}
	return model.Some(*r.Raw)
}

type yahooSummary struct {
	QuoteSummary struct {
		Result []struct {
			Price struct {
				ShortName string   `json:"shortName"`
				MarketCap yahooRaw `json:"marketCap"`
			} `json:"price"`
			SummaryDetail struct {
				TrailingPE    yahooRaw `json:"trailingPE"`
				DividendYield yahooRaw `json:"dividendYield"`
			} `json:"summaryDetail"`
			DefaultKeyStatistics struct {
				PriceToBook yahooRaw `json:"priceToBook"`
			} `json:"defaultKeyStatistics"`
		} `json:"result"`
		Error *yahooError `json:"error"`
	} `json:"quoteSummary"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func (f *YahooFetcher) endpoint(format string, args ...interface{}) string {
	u := fmt.Sprintf(format, args...)
	if f.BaseURL == "" {
		return u
	}
	parsed, err := url.Parse(u)
	if err != nil {
		return u
	}
	return f.BaseURL + parsed.RequestURI()
}

func (f *YahooFetcher) get(ctx context.Context, u string) ([]byte, error) {
	if f.Limiter != nil {
		if err := f.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// FetchDailyBars fetches daily bars for period ("5d", "1y", ...).
func (f *YahooFetcher) FetchDailyBars(ctx context.Context, symbol, period string) ([]model.OHLCV, error) {
	body, err := f.get(ctx, f.endpoint(yahooChartURL, url.PathEscape(symbol), url.QueryEscape(period)))
	if err != nil {
		return nil, err
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 ||
		len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned")
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	bars := make([]model.OHLCV, 0, len(result.Timestamp))
	at := func(vals []interface{}, i int) float64 {
		if i < len(vals) {
			return toFloat(vals[i])
		}
		return 0
	}

	for i, ts := range result.Timestamp {
		o := at(quote.Open, i)
		h := at(quote.High, i)
		l := at(quote.Low, i)
		c := at(quote.Close, i)
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, model.OHLCV{
			Time:   time.Unix(ts, 0),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: at(quote.Volume, i),
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

// FetchProfile fetches name, valuation ratios, market cap and dividend yield.
func (f *YahooFetcher) FetchProfile(ctx context.Context, symbol string) (*model.Profile, error) {
	body, err := f.get(ctx, f.endpoint(yahooSummaryURL, url.PathEscape(symbol)))
	if err != nil {
		return nil, err
	}

	var summary yahooSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("yahoo decode summary: %w", err)
	}
	if summary.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", summary.QuoteSummary.Error.Description)
	}
	if len(summary.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no summary returned")
	}

	r := summary.QuoteSummary.Result[0]
	return &model.Profile{
		ShortName:     r.Price.ShortName,
		TrailingPE:    r.SummaryDetail.TrailingPE.optional(),
		PriceToBook:   r.DefaultKeyStatistics.PriceToBook.optional(),
		MarketCap:     r.Price.MarketCap.optional(),
		DividendYield: r.SummaryDetail.DividendYield.optional(),
	}, nil
}
