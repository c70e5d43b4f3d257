package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinanceHub/internal/model"
)

func newTestNotifier(t *testing.T, h http.HandlerFunc) *TelegramNotifier {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	n := NewTelegramNotifier("tok", "42", "", zerolog.Nop())
	n.BaseURL = srv.URL
	n.Backoff = time.Millisecond
	return n
}

func TestSend(t *testing.T) {
	var got map[string]string
	n := newTestNotifier(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottok/sendMessage", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"ok":true}`))
	})

	require.NoError(t, n.Send(context.Background(), "hello"))
	assert.Equal(t, "42", got["chat_id"])
	assert.Equal(t, "hello", got["text"])
	assert.Equal(t, "HTML", got["parse_mode"])
}

func TestSendWithRetry(t *testing.T) {
	t.Run("recovers", func(t *testing.T) {
		var calls int32
		n := newTestNotifier(t, func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.Write([]byte(`{"ok":true}`))
		})
		require.NoError(t, n.SendWithRetry(context.Background(), "x", 3))
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})

	t.Run("exhausted", func(t *testing.T) {
		var calls int32
		n := newTestNotifier(t, func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusInternalServerError)
		})
		err := n.SendWithRetry(context.Background(), "x", 2)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "all 3 retries exhausted")
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})
}

func TestStartPolling(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	replies := make(chan string, 1)
	n := newTestNotifier(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/bottok/getUpdates":
			if r.URL.Query().Get("offset") == "0" {
				w.Write([]byte(`{"ok":true,"result":[{"update_id":7,"message":{"text":" /sector "}}]}`))
				return
			}
			<-r.Context().Done()
		case "/bottok/sendMessage":
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			replies <- body["text"]
			w.Write([]byte(`{"ok":true}`))
		}
	})

	go n.StartPolling(ctx, func(_ context.Context, cmd string) string {
		return "got " + cmd
	})

	select {
	case reply := <-replies:
		assert.Equal(t, "got /sector", reply)
	case <-time.After(5 * time.Second):
		t.Fatal("no reply sent")
	}
}

func sampleOverview() (*model.SectorOverview, *model.WarningIndicators) {
	ov := &model.SectorOverview{
		Entities: []model.EntityAnalysis{{
			Name:   "HDFC Bank",
			Symbol: "HDFCBANK.NS",
			Metrics: &model.DerivedMetrics{
				Symbol: "HDFCBANK.NS", CurrentPrice: 1650.5, PriceChangePct: 12.3,
				Volume: 1234567, AvgVolume20: 1000000,
			},
			Health: &model.HealthScoreResult{Score: 72, MaxScore: 100, Status: model.StatusGood},
		}},
		AverageScore:  45,
		Sentiment:     model.SentimentBearish,
		AnalyzedCount: 1,
		Timestamp:     time.Date(2024, 3, 1, 16, 0, 0, 0, time.UTC),
	}
	w := &model.WarningIndicators{
		Warnings: []model.Warning{{
			Level: model.WarningHigh, Indicator: "Low Sector Health",
			Description: "Average sector health score is 45.00", Recommendation: "Exercise caution",
		}},
		SectorHealthScore: 45,
	}
	return ov, w
}

func TestFormatSectorReport(t *testing.T) {
	ov, w := sampleOverview()
	out := FormatSectorReport(ov, w)

	assert.Contains(t, out, "2024-03-01 16:00")
	assert.Contains(t, out, "Sentiment: <b>Bearish</b>")
	assert.Contains(t, out, "HDFC Bank: <b>72</b> Good | 1,650.50 (+12.30%)")
	assert.Contains(t, out, "[High] Low Sector Health")
}

func TestFormatWarnings(t *testing.T) {
	out := FormatWarnings(&model.WarningIndicators{Warnings: []model.Warning{}, SectorHealthScore: 81.5})
	assert.Equal(t, "✅ No sector warnings (score 81.50)\n", out)
}

func TestFormatBankAnalysis(t *testing.T) {
	ov, _ := sampleOverview()
	e := ov.Entities[0]
	e.Health.Rationale = []string{"✅ Positive price performance: 12.30%"}
	e.Health.Recommendation = "Buy"

	out := FormatBankAnalysis("HDFC Bank", &model.BankAnalysis{Metrics: e.Metrics, Health: e.Health})
	assert.Contains(t, out, "Volume: 1,234,567 (avg 1,000,000)")
	assert.Contains(t, out, "Health: <b>72/100</b> Good")
	assert.Contains(t, out, "Positive price performance")
	assert.NotContains(t, out, "Market cap")

	failed := FormatBankAnalysis("X", &model.BankAnalysis{MetricsErr: "Failed to fetch data for X"})
	assert.Equal(t, "❌ Failed to fetch data for X", failed)
}
