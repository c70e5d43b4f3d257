package notifier

import (
	"fmt"
	"html"
	"strings"

	"github.com/dustin/go-humanize"

	"FinanceHub/internal/model"
)

var sentimentIcon = map[model.Sentiment]string{
	model.SentimentBullish: "🟢",
	model.SentimentNeutral: "🔵",
	model.SentimentBearish: "🔴",
}

// FormatSectorReport renders the overview as a ranked Telegram message.
func FormatSectorReport(ov *model.SectorOverview, w *model.WarningIndicators) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🏦 <b>Banking Sector Report</b> | %s\n\n", ov.Timestamp.Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("%s Sentiment: <b>%s</b> (avg %.2f, %d banks)\n\n",
		sentimentIcon[ov.Sentiment], ov.Sentiment, ov.AverageScore, ov.AnalyzedCount))

	for _, e := range ov.Entities {
		b.WriteString(fmt.Sprintf("• %s: <b>%d</b> %s | %s (%+.2f%%)\n",
			html.EscapeString(e.Name), e.Health.Score, e.Health.Status,
			humanize.FormatFloat("#,###.##", e.Metrics.CurrentPrice), e.Metrics.PriceChangePct))
	}

	if w != nil && len(w.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatWarnings(w))
	}
	return b.String()
}

// FormatWarnings renders early-warning signals. Returns a reassurance line when there are none.
func FormatWarnings(w *model.WarningIndicators) string {
	if len(w.Warnings) == 0 {
		return fmt.Sprintf("✅ No sector warnings (score %.2f)\n", w.SectorHealthScore)
	}
	var b strings.Builder
	b.WriteString("⚠️ <b>Early Warnings</b>\n")
	for _, x := range w.Warnings {
		icon := "🟠"
		if x.Level == model.WarningHigh {
			icon = "🔴"
		}
		b.WriteString(fmt.Sprintf("%s <b>[%s] %s</b>\n   %s\n   → %s\n",
			icon, x.Level, html.EscapeString(x.Indicator),
			html.EscapeString(x.Description), html.EscapeString(x.Recommendation)))
	}
	return b.String()
}

// FormatBankAnalysis renders a single-entity analysis.
func FormatBankAnalysis(name string, a *model.BankAnalysis) string {
	if a.Metrics == nil || a.Health == nil {
		msg := a.MetricsErr
		if msg == "" {
			msg = a.HealthErr
		}
		return fmt.Sprintf("❌ %s", html.EscapeString(msg))
	}
	m, h := a.Metrics, a.Health

	var b strings.Builder
	b.WriteString(fmt.Sprintf("🏦 <b>%s</b> (%s)\n\n", html.EscapeString(name), m.Symbol))
	b.WriteString(fmt.Sprintf("Price: %s (%+.2f%%)\n", humanize.FormatFloat("#,###.##", m.CurrentPrice), m.PriceChangePct))
	b.WriteString(fmt.Sprintf("MA20: %.2f | MA50: %.2f\n", m.MA20, m.MA50))
	b.WriteString(fmt.Sprintf("Volume: %s (avg %s)\n", humanize.Comma(int64(m.Volume)), humanize.Comma(int64(m.AvgVolume20))))
	if mc, ok := m.MarketCap.Get(); ok {
		b.WriteString(fmt.Sprintf("Market cap: %s\n", humanize.SIWithDigits(mc, 2, "")))
	}
	b.WriteString(fmt.Sprintf("\nHealth: <b>%d/%d</b> %s\n", h.Score, h.MaxScore, h.Status))
	for _, line := range h.Rationale {
		b.WriteString("  " + html.EscapeString(line) + "\n")
	}
	b.WriteString(fmt.Sprintf("\n💡 %s", h.Recommendation))
	return b.String()
}

// FormatHelp lists the bot commands.
func FormatHelp() string {
	return "Available commands:\n• /sector - sector overview\n• /warnings - early warnings\n• /bank &lt;name&gt; - single bank analysis\n• /history - recent snapshots"
}
