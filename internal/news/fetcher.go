package news

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/avakin/stocksage/internal/cache"
)

// MaxHeadlines caps the deduplicated headline list fed to sentiment
// scoring.
const MaxHeadlines = 20

// Headline is one fetched news item, scored after retrieval.
type Headline struct {
	Title     string  `json:"title"`
	Source    string  `json:"source"`
	Published string  `json:"published,omitempty"`
	URL       string  `json:"url,omitempty"`
	Score     float64 `json:"score"`
	Label     string  `json:"label"`
}

// Fetcher retrieves recent headlines for a symbol from several free
// sources. Sources fail independently; a fetcher error never aborts the
// whole retrieval.
type Fetcher struct {
	client     *resty.Client
	cache      *cache.Manager
	finnhubKey string
	log        zerolog.Logger
}

// NewFetcher creates a fetcher. finnhubKey may be empty, in which case the
// Finnhub source is skipped.
func NewFetcher(cacheDir, finnhubKey string, cacheEnabled bool, log zerolog.Logger) *Fetcher {
	client := resty.New()
	client.SetTimeout(15 * time.Second)
	client.SetHeader("User-Agent", "Mozilla/5.0 (compatible; stocksage/1.0)")

	return &Fetcher{
		client:     client,
		cache:      cache.NewManager(filepath.Join(cacheDir, "news"), 2*time.Hour, cacheEnabled),
		finnhubKey: finnhubKey,
		log:        log.With().Str("component", "news").Logger(),
	}
}

// Fetch pulls headlines from every configured source, deduplicates them by
// title and caps the result at MaxHeadlines.
func (f *Fetcher) Fetch(symbol string) []Headline {
	params := map[string]string{"symbol": symbol, "day": time.Now().Format("2006-01-02")}

	var cached []Headline
	if f.cache.Get("news", "headlines", params, &cached) {
		f.log.Debug().Str("symbol", symbol).Int("count", len(cached)).Msg("headline cache hit")
		return cached
	}

	var headlines []Headline
	sources := []struct {
		name string
		run  func(string) ([]Headline, error)
	}{
		{"google news", f.fetchGoogleNews},
		{"finviz", f.fetchFinviz},
		{"finnhub", f.fetchFinnhub},
	}
	for _, src := range sources {
		items, err := src.run(symbol)
		if err != nil {
			f.log.Debug().Str("source", src.name).Err(err).Msg("headline source failed")
			continue
		}
		headlines = append(headlines, items...)
	}

	headlines = dedupe(headlines)
	if len(headlines) > MaxHeadlines {
		headlines = headlines[:MaxHeadlines]
	}
	f.cache.Set("news", "headlines", params, headlines)
	return headlines
}

// rssFeed is the subset of the Google News RSS document we read.
type rssFeed struct {
	Channel struct {
		Items []struct {
			Title   string `xml:"title"`
			Link    string `xml:"link"`
			PubDate string `xml:"pubDate"`
			Source  string `xml:"source"`
		} `xml:"item"`
	} `xml:"channel"`
}

func (f *Fetcher) fetchGoogleNews(symbol string) ([]Headline, error) {
	feedURL := fmt.Sprintf(
		"https://news.google.com/rss/search?q=%s+stock&hl=en-US&gl=US&ceid=US:en",
		url.QueryEscape(symbol))

	resp, err := f.client.R().Get(feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch google news: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("google news returned HTTP %d", resp.StatusCode())
	}

	var feed rssFeed
	if err := xml.Unmarshal(resp.Body(), &feed); err != nil {
		return nil, fmt.Errorf("parse google news feed: %w", err)
	}

	var out []Headline
	for i, item := range feed.Channel.Items {
		if i >= 15 {
			break
		}
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}
		source := strings.TrimSpace(item.Source)
		if source == "" {
			source = "Google News"
		}
		out = append(out, Headline{
			Title:     title,
			Source:    source,
			Published: strings.TrimSpace(item.PubDate),
			URL:       strings.TrimSpace(item.Link),
		})
	}
	return out, nil
}

func (f *Fetcher) fetchFinviz(symbol string) ([]Headline, error) {
	resp, err := f.client.R().Get("https://finviz.com/quote.ashx?t=" + url.QueryEscape(symbol))
	if err != nil {
		return nil, fmt.Errorf("fetch finviz: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("finviz returned HTTP %d", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
	if err != nil {
		return nil, fmt.Errorf("parse finviz page: %w", err)
	}

	var out []Headline
	doc.Find("table#news-table tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		if i >= 15 {
			return false
		}
		link := row.Find("a").First()
		title := strings.TrimSpace(link.Text())
		if title == "" {
			return true
		}
		href, _ := link.Attr("href")
		out = append(out, Headline{
			Title:     title,
			Source:    "Finviz",
			Published: strings.TrimSpace(row.Find("td").First().Text()),
			URL:       href,
		})
		return true
	})
	return out, nil
}

// finnhubNews mirrors the Finnhub company-news response shape.
type finnhubNews struct {
	DateTime int64  `json:"datetime"`
	Headline string `json:"headline"`
	Source   string `json:"source"`
	URL      string `json:"url"`
}

func (f *Fetcher) fetchFinnhub(symbol string) ([]Headline, error) {
	if f.finnhubKey == "" {
		return nil, fmt.Errorf("finnhub API key not configured")
	}

	to := time.Now()
	from := to.AddDate(0, 0, -7)

	var items []finnhubNews
	resp, err := f.client.R().
		SetQueryParams(map[string]string{
			"symbol": symbol,
			"from":   from.Format("2006-01-02"),
			"to":     to.Format("2006-01-02"),
			"token":  f.finnhubKey,
		}).
		SetResult(&items).
		Get("https://finnhub.io/api/v1/company-news")
	if err != nil {
		return nil, fmt.Errorf("fetch finnhub news: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("finnhub returned HTTP %d", resp.StatusCode())
	}

	var out []Headline
	for i, item := range items {
		if i >= 15 {
			break
		}
		title := strings.TrimSpace(item.Headline)
		if title == "" {
			continue
		}
		source := item.Source
		if source == "" {
			source = "Finnhub"
		}
		out = append(out, Headline{
			Title:     title,
			Source:    source,
			Published: time.Unix(item.DateTime, 0).UTC().Format("2006-01-02"),
			URL:       item.URL,
		})
	}
	return out, nil
}

func dedupe(headlines []Headline) []Headline {
	seen := make(map[string]bool, len(headlines))
	out := headlines[:0]
	for _, h := range headlines {
		key := strings.ToLower(strings.TrimSpace(h.Title))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, h)
	}
	return out
}
