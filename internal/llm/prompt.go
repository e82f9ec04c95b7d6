package llm

import (
	"fmt"
	"strings"

	"github.com/avakin/stocksage/internal/decision"
	"github.com/avakin/stocksage/internal/models"
	"github.com/avakin/stocksage/internal/news"
)

// maxPromptHeadlines caps the headlines included in the prompt.
const maxPromptHeadlines = 15

// PromptInput carries everything the prompt builder renders.
type PromptInput struct {
	Symbol       string
	CompanyName  string
	CurrencyCode string
	Technical    models.CategoryResult
	Fundamental  models.CategoryResult
	Headlines    []news.Headline
	Decision     decision.Result
}

// BuildPrompt renders the collected analysis into a deterministic prompt
// asking the model for an independent recommendation.
func BuildPrompt(in PromptInput) string {
	var b strings.Builder

	fmt.Fprintf(&b,
		"You are a senior stock analyst. Analyze the following data for %s "+
			"(%s, currency: %s) and provide your independent trading recommendation.\n\n",
		in.Symbol, in.CompanyName, in.CurrencyCode)

	b.WriteString("## Technical Indicators\n")
	for _, m := range in.Technical.Metrics.Entries() {
		fmt.Fprintf(&b, "  %s: %s\n", m.Name, m.Value.String())
	}

	b.WriteString("\n## Technical Signals\n")
	writeSignals(&b, &in.Technical.Signals)

	b.WriteString("\n## Fundamental Metrics\n")
	for _, m := range in.Fundamental.Metrics.Entries() {
		fmt.Fprintf(&b, "  %s: %s\n", m.Name, m.Value.String())
	}

	b.WriteString("\n## Fundamental Signals\n")
	writeSignals(&b, &in.Fundamental.Signals)

	b.WriteString("\n## Recent News Headlines\n")
	for i, h := range in.Headlines {
		if i >= maxPromptHeadlines {
			break
		}
		fmt.Fprintf(&b, "  [%+.3f] %s\n", h.Score, h.Title)
	}

	b.WriteString("\n## Algorithmic System Result (for reference)\n")
	fmt.Fprintf(&b, "  Recommendation: %s\n", in.Decision.Recommendation)
	fmt.Fprintf(&b, "  Technical: %+.2f\n", in.Decision.Scores.Technical)
	fmt.Fprintf(&b, "  Fundamental: %+.2f\n", in.Decision.Scores.Fundamental)
	fmt.Fprintf(&b, "  News: %+.2f\n", in.Decision.Scores.News)
	fmt.Fprintf(&b, "  Weighted: %+.2f\n", in.Decision.Scores.Weighted)

	b.WriteString("\n---\n" +
		"Based on ALL the data above, provide your independent analysis:\n" +
		"1. **Recommendation**: STRONG BUY, BUY, HOLD, SELL, or STRONG SELL\n" +
		"2. **Confidence**: High, Moderate, or Low\n" +
		"3. **Reasoning**: Detailed analysis covering technical, fundamental, " +
		"and sentiment factors (3-5 paragraphs)\n" +
		"4. **Key Risks**: Top 3 risks to watch\n" +
		"\nBe specific, reference the actual numbers, and be direct about your view.")

	return b.String()
}

func writeSignals(b *strings.Builder, signals *models.SignalSet) {
	for _, s := range signals.Entries() {
		fmt.Fprintf(b, "  %s: %s, %s\n", s.Name, s.Signal.Direction, s.Signal.Reason)
	}
}
