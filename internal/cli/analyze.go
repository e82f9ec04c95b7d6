package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/avakin/stocksage/internal/config"
	"github.com/avakin/stocksage/internal/decision"
	"github.com/avakin/stocksage/internal/exchange"
	"github.com/avakin/stocksage/internal/fundamental"
	"github.com/avakin/stocksage/internal/llm"
	"github.com/avakin/stocksage/internal/marketdata"
	"github.com/avakin/stocksage/internal/models"
	"github.com/avakin/stocksage/internal/news"
	"github.com/avakin/stocksage/internal/technical"
)

// analyzeOptions collects the analyze command's inputs.
type analyzeOptions struct {
	Ticker   string
	Period   string
	Exchange string
	UseLLM   bool
	Model    string
}

// runAnalyze executes the full pipeline: fetch, analyze each category,
// decide, render, and optionally consult an LLM.
func runAnalyze(cfg *config.Config, log zerolog.Logger, opts analyzeOptions) error {
	raw := opts.Ticker
	if raw == "" {
		var err error
		raw, err = promptTicker()
		if err != nil {
			return err
		}
	}

	ticker, err := exchange.Resolve(raw, opts.Exchange)
	if err != nil {
		return err
	}

	days, err := marketdata.PeriodDays(opts.Period)
	if err != nil {
		return err
	}

	out := newRenderer(os.Stdout)
	out.Banner(ticker.Symbol)

	market := marketdata.NewClient(cfg.CacheDir(), cfg.CacheEnabled(), log)

	bars, err := market.History(ticker.Symbol, days)
	if err != nil {
		return err
	}

	companyName := ticker.Base
	if company, err := market.Company(ticker.Symbol); err != nil {
		log.Debug().Err(err).Msg("company lookup failed")
	} else if company.Name != "" {
		companyName = company.Name
	}

	series := models.NewSeries(bars)
	out.CompanyLine(companyName, ticker.CurrencySymbol(), series.LastClose(), opts.Period, series.Len())

	// Technical analysis over the price history.
	out.SectionHeader("TECHNICAL ANALYSIS")
	taResult := technical.NewAnalyzer(bars).Compute()
	out.Metrics("Indicators", &taResult.Metrics)
	out.Signals(&taResult.Signals)
	out.Overall("Technical", taResult.Overall)

	// Fundamental analysis over the provider snapshot. A missing snapshot
	// degrades to an empty one rather than aborting the run.
	out.SectionHeader("FUNDAMENTAL ANALYSIS")
	snap, err := market.Fundamentals(ticker.Symbol)
	if err != nil {
		log.Debug().Err(err).Msg("fundamentals lookup failed")
	}
	faResult := fundamental.NewAnalyzer(snap, ticker.CurrencySymbol()).Compute()
	out.Metrics("Metrics", &faResult.Metrics)
	out.Signals(&faResult.Signals)
	out.Overall("Fundamental", faResult.Overall)

	// News sentiment over recent headlines. News searches use the base
	// symbol so foreign listings still find coverage.
	out.SectionHeader("NEWS SENTIMENT ANALYSIS")
	fetcher := news.NewFetcher(cfg.CacheDir(), cfg.FinnhubAPIKey, cfg.CacheEnabled(), log)
	newsResult := news.Analyze(fetcher.Fetch(ticker.Base))
	out.Metrics("Metrics", &newsResult.Category.Metrics)
	out.Headlines(newsResult.Headlines)
	out.Overall("News Sentiment", newsResult.Category.Overall)

	// Weighted decision across the three categories.
	out.SectionHeader("FINAL DECISION")
	engine, err := decision.NewEngine(decision.DefaultWeights())
	if err != nil {
		return err
	}
	result := engine.Decide(&taResult.Signals, &faResult.Signals, &newsResult.Category.Signals)
	out.Decision(result)

	if opts.UseLLM {
		if err := runLLM(cfg, log, out, llmInput{
			Ticker:      ticker,
			CompanyName: companyName,
			Technical:   taResult,
			Fundamental: faResult,
			News:        newsResult,
			Decision:    result,
			Model:       opts.Model,
		}); err != nil {
			out.Error(fmt.Errorf("LLM analysis failed: %w", err))
		}
	}

	out.Disclaimer()
	return nil
}

type llmInput struct {
	Ticker      exchange.Ticker
	CompanyName string
	Technical   models.CategoryResult
	Fundamental models.CategoryResult
	News        news.Result
	Decision    decision.Result
	Model       string
}

func runLLM(cfg *config.Config, log zerolog.Logger, out *renderer, in llmInput) error {
	opts, err := resolveModel(cfg, in.Model)
	if err != nil {
		return err
	}

	prompt := llm.BuildPrompt(llm.PromptInput{
		Symbol:       in.Ticker.Symbol,
		CompanyName:  in.CompanyName,
		CurrencyCode: in.Ticker.CurrencyCode(),
		Technical:    in.Technical,
		Fundamental:  in.Fundamental,
		Headlines:    in.News.Headlines,
		Decision:     in.Decision,
	})

	fmt.Printf("\n  Consulting %s...\n", opts.Model)
	response, err := llm.NewClient(log).Query(context.Background(), opts, prompt)
	if err != nil {
		return err
	}

	out.LLMResponse(string(opts.Provider), opts.Model, response)
	return nil
}
