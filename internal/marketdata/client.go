// Package marketdata fetches OHLCV history, quotes and fundamental fields
// from Yahoo Finance, with file-backed caching and retry.
package marketdata

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
	"github.com/piquette/finance-go/quote"
	"github.com/rs/zerolog"

	"github.com/avakin/stocksage/internal/cache"
	"github.com/avakin/stocksage/internal/fundamental"
	"github.com/avakin/stocksage/internal/models"
)

// CompanyInfo is the quote-level company summary shown in the report header.
type CompanyInfo struct {
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Exchange string  `json:"exchange"`
	Currency string  `json:"currency"`
	Price    float64 `json:"price"`
}

// Client talks to Yahoo Finance.
type Client struct {
	cache *cache.Manager
	log   zerolog.Logger
}

// NewClient creates a client caching under cacheDir. History is cached for
// a day, fundamentals for six hours.
func NewClient(cacheDir string, cacheEnabled bool, log zerolog.Logger) *Client {
	return &Client{
		cache: cache.NewManager(filepath.Join(cacheDir, "yahoo"), 24*time.Hour, cacheEnabled),
		log:   log.With().Str("component", "marketdata").Logger(),
	}
}

// History fetches daily bars covering the trailing number of days, ordered
// ascending by date.
func (c *Client) History(symbol string, days int) ([]models.Bar, error) {
	if err := validateSymbol(symbol); err != nil {
		return nil, err
	}
	symbol = normalizeSymbol(symbol)

	end := time.Now()
	start := end.AddDate(0, 0, -days)
	params := map[string]string{
		"symbol": symbol,
		"start":  start.Format("2006-01-02"),
		"end":    end.Format("2006-01-02"),
	}

	var cached []models.Bar
	if c.cache.Get("yahoo", "history", params, &cached) {
		c.log.Debug().Str("symbol", symbol).Int("bars", len(cached)).Msg("history cache hit")
		return cached, nil
	}

	var bars []models.Bar
	err := withRetry(defaultRetryConfig(), func() error {
		iter := chart.Get(&chart.Params{
			Symbol:   symbol,
			Start:    datetime.New(&start),
			End:      datetime.New(&end),
			Interval: datetime.OneDay,
		})

		bars = bars[:0]
		for iter.Next() {
			b := iter.Bar()
			bars = append(bars, models.Bar{
				Date:   time.Unix(int64(b.Timestamp), 0).UTC(),
				Open:   b.Open,
				High:   b.High,
				Low:    b.Low,
				Close:  b.Close,
				Volume: int64(b.Volume),
			})
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("fetch history for %s: %w", symbol, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("no price history for %q, check the ticker", symbol)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	c.cache.Set("yahoo", "history", params, bars)
	c.log.Debug().Str("symbol", symbol).Int("bars", len(bars)).Msg("history fetched")
	return bars, nil
}

// Company fetches the quote-level company summary.
func (c *Client) Company(symbol string) (*CompanyInfo, error) {
	if err := validateSymbol(symbol); err != nil {
		return nil, err
	}
	symbol = normalizeSymbol(symbol)

	var cached CompanyInfo
	if c.cache.Get("yahoo", "company", symbol, &cached) {
		return &cached, nil
	}

	var info *CompanyInfo
	err := withRetry(defaultRetryConfig(), func() error {
		q, err := quote.Get(symbol)
		if err != nil {
			return fmt.Errorf("fetch quote for %s: %w", symbol, err)
		}
		name := q.ShortName
		if name == "" {
			name = symbol
		}
		info = &CompanyInfo{
			Symbol:   symbol,
			Name:     name,
			Exchange: q.FullExchangeName,
			Currency: q.CurrencyID,
			Price:    q.RegularMarketPrice,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.cache.Set("yahoo", "company", symbol, info)
	return info, nil
}

// Fundamentals fetches the equity-level fundamental snapshot.
func (c *Client) Fundamentals(symbol string) (fundamental.Snapshot, error) {
	if err := validateSymbol(symbol); err != nil {
		return fundamental.Snapshot{}, err
	}
	symbol = normalizeSymbol(symbol)

	var cached fundamental.Snapshot
	if c.cache.Get("yahoo", "fundamentals", symbol, &cached) {
		return cached, nil
	}

	var snap fundamental.Snapshot
	err := withRetry(defaultRetryConfig(), func() error {
		eq, err := equity.Get(symbol)
		if err != nil {
			return fmt.Errorf("fetch fundamentals for %s: %w", symbol, err)
		}
		snap = fundamental.Snapshot{
			Price:            eq.RegularMarketPrice,
			TrailingPE:       eq.TrailingPE,
			ForwardPE:        eq.ForwardPE,
			PriceToBook:      eq.PriceToBook,
			BookValue:        eq.BookValue,
			EPSTrailing:      eq.EpsTrailingTwelveMonths,
			EPSForward:       eq.EpsForward,
			DividendRate:     eq.TrailingAnnualDividendRate,
			DividendYield:    eq.TrailingAnnualDividendYield,
			MarketCap:        eq.MarketCap,
			FiftyTwoWeekLow:  eq.FiftyTwoWeekLow,
			FiftyTwoWeekHigh: eq.FiftyTwoWeekHigh,
		}
		return nil
	})
	if err != nil {
		return fundamental.Snapshot{}, err
	}

	c.cache.Set("yahoo", "fundamentals", symbol, snap)
	return snap, nil
}

func validateSymbol(symbol string) error {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return fmt.Errorf("symbol cannot be empty")
	}
	if len(symbol) > 12 {
		return fmt.Errorf("symbol too long: %s", symbol)
	}
	return nil
}

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
