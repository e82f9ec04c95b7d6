package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/avakin/stocksage/internal/decision"
	"github.com/avakin/stocksage/internal/models"
	"github.com/avakin/stocksage/internal/news"
)

const separatorWidth = 72

// renderer writes the analysis report to a terminal.
type renderer struct {
	w io.Writer
}

func newRenderer(w io.Writer) *renderer {
	return &renderer{w: w}
}

func (r *renderer) separator() string {
	return strings.Repeat("=", separatorWidth)
}

func (r *renderer) Banner(symbol string) {
	fmt.Fprintf(r.w, "\n%s\n", titleStyle.Render("Stock Trading Decision System"))
	fmt.Fprintf(r.w, "Analyzing: %s\n", neutralStyle.Render(symbol))
	fmt.Fprintln(r.w, r.separator())
}

func (r *renderer) CompanyLine(name, currencySym string, price float64, period string, days int) {
	fmt.Fprintf(r.w, "\n%s\n", labelStyle.Render("Fetching market data..."))
	fmt.Fprintf(r.w, "  Company : %s\n", name)
	fmt.Fprintf(r.w, "  Price   : %s%.2f\n", currencySym, price)
	fmt.Fprintf(r.w, "  Period  : %s (%d trading days)\n", period, days)
}

func (r *renderer) SectionHeader(title string) {
	fmt.Fprintf(r.w, "\n%s\n", sectionStyle.Render(r.separator()))
	fmt.Fprintf(r.w, "%s\n", sectionStyle.Render("  "+title))
	fmt.Fprintf(r.w, "%s\n", sectionStyle.Render(r.separator()))
}

func (r *renderer) Metrics(title string, metrics *models.MetricSet) {
	fmt.Fprintf(r.w, "\n%s\n", labelStyle.Render("  "+title+":"))
	for _, m := range metrics.Entries() {
		fmt.Fprintf(r.w, "  %-28s %s\n", m.Name, m.Value.String())
	}
}

func (r *renderer) Signals(signals *models.SignalSet) {
	fmt.Fprintf(r.w, "\n%s\n", labelStyle.Render("  Signals:"))
	for _, s := range signals.Entries() {
		direction := directionStyle(s.Signal.Direction).Render(s.Signal.Direction.String())
		fmt.Fprintf(r.w, "  %-20s [%10s]  %s\n", s.Name, direction, s.Signal.Reason)
	}
}

func (r *renderer) Overall(label string, overall models.Signal) {
	direction := directionStyle(overall.Direction).Render(overall.Direction.String())
	fmt.Fprintf(r.w, "\n  >> %s Overall: [%s]  %s\n", label, direction, overall.Reason)
}

func (r *renderer) Headlines(headlines []news.Headline) {
	if len(headlines) == 0 {
		return
	}
	fmt.Fprintf(r.w, "\n%s\n", labelStyle.Render("  Recent Headlines:"))
	for i, h := range headlines {
		if i >= 10 {
			break
		}
		score := fmt.Sprintf("[%+.3f]", h.Score)
		switch h.Label {
		case "Positive":
			score = bullishStyle.Render(score)
		case "Negative":
			score = bearishStyle.Render(score)
		default:
			score = neutralStyle.Render(score)
		}
		title := h.Title
		if len(title) > 80 {
			title = title[:80]
		}
		fmt.Fprintf(r.w, "  %s %s\n", score, title)
		if h.Source != "" {
			fmt.Fprintf(r.w, "          %s\n", dimStyle.Render(h.Source+"  "+h.Published))
		}
	}
}

func (r *renderer) Decision(result decision.Result) {
	fmt.Fprintf(r.w, "\n%s\n", labelStyle.Render("  Component Scores:"))
	fmt.Fprintf(r.w, "    %-24s %+.2f\n", "Technical", result.Scores.Technical)
	fmt.Fprintf(r.w, "    %-24s %+.2f\n", "Fundamental", result.Scores.Fundamental)
	fmt.Fprintf(r.w, "    %-24s %+.2f\n", "News Sentiment", result.Scores.News)
	fmt.Fprintf(r.w, "    %-24s %+.2f\n", "Weighted Total", result.Scores.Weighted)

	rec := result.Recommendation.String()
	var style = recHoldStyle
	switch {
	case strings.Contains(rec, "BUY"):
		style = recBuyStyle
	case strings.Contains(rec, "SELL"):
		style = recSellStyle
	}

	fmt.Fprintf(r.w, "\n%s\n", r.separator())
	fmt.Fprintf(r.w, "  %s  %s  (Confidence: %s)\n",
		titleStyle.Render("RECOMMENDATION:"), style.Render(rec), result.Confidence)
	fmt.Fprintln(r.w, r.separator())

	fmt.Fprintf(r.w, "\n%s\n", labelStyle.Render("  Explanation:"))
	for _, line := range strings.Split(result.Explanation, "\n") {
		fmt.Fprintf(r.w, "    %s\n", line)
	}
}

func (r *renderer) LLMResponse(provider, model, response string) {
	r.SectionHeader("LLM ANALYSIS")
	fmt.Fprintf(r.w, "\n  %s\n\n", dimStyle.Render(fmt.Sprintf("%s (%s)", model, provider)))
	for _, line := range strings.Split(response, "\n") {
		fmt.Fprintf(r.w, "  %s\n", line)
	}
}

func (r *renderer) Disclaimer() {
	fmt.Fprintf(r.w, "\n%s\n\n",
		disclaimerStyle.Render("  Disclaimer: This is for educational purposes only. Not financial advice."))
}

func (r *renderer) Error(err error) {
	fmt.Fprintf(r.w, "%s\n", errorStyle.Render("Error: "+err.Error()))
}
