package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/avakin/stocksage/internal/config"
	"github.com/avakin/stocksage/internal/exchange"
	"github.com/avakin/stocksage/internal/marketdata"
)

// Version is set at build time.
var Version = "dev"

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		newRenderer(os.Stderr).Error(err)
		os.Exit(1)
	}
}

// NewRootCmd creates the root command. Running it without a subcommand
// starts an analysis, prompting for the ticker.
func NewRootCmd() *cobra.Command {
	var (
		cfg   *config.Config
		log   zerolog.Logger
		flags analyzeOptions
	)

	rootCmd := &cobra.Command{
		Use:   "stocksage [TICKER]",
		Short: "Stock trading decision system",
		Long: `stocksage combines technical indicators, fundamental metrics and news
sentiment into a weighted Buy/Hold/Sell recommendation.

Examples:
  stocksage MSFT
  stocksage TEVA.TA --period 6mo
  stocksage TEVA --exchange TLV
  stocksage NYSE:MSFT --llm`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				disableColor()
			}

			level := zerolog.WarnLevel
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				level = zerolog.DebugLevel
			}
			log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()

			var err error
			cfg, err = config.Load()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				flags.Ticker = args[0]
			}
			return runAnalyze(cfg, log, flags)
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	rootCmd.Flags().StringVar(&flags.Period, "period", "1y",
		fmt.Sprintf("history period (%s)", strings.Join(marketdata.Periods(), ", ")))
	rootCmd.Flags().StringVar(&flags.Exchange, "exchange", "", "exchange code, e.g. TLV, LSE, TSE")
	rootCmd.Flags().BoolVar(&flags.UseLLM, "llm", false, "also ask an LLM for an independent analysis")
	rootCmd.Flags().StringVar(&flags.Model, "model", "",
		"LLM model, e.g. claude-sonnet-4-5-20250929 or openrouter/openai/gpt-4o")

	rootCmd.AddCommand(newExchangesCmd())
	rootCmd.AddCommand(newConfigCmd(&cfg))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newExchangesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exchanges",
		Short: "List supported stock exchanges",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(exchange.ListTable())
		},
	}
}

func newConfigCmd(cfg **config.Config) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage persisted settings",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			fmt.Printf("Settings file: %s\n\n", path)

			redacted := (*cfg).Redacted()
			keys := make([]string, 0, len(redacted))
			for k := range redacted {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Printf("  %-20s %s\n", k, redacted[k])
			}
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a settings key",
		Long:  "Set a settings key. Valid keys: " + strings.Join(config.Keys(), ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*cfg).Set(args[0], args[1]); err != nil {
				return err
			}
			if err := (*cfg).Save(); err != nil {
				return err
			}
			fmt.Printf("Saved %s\n", args[0])
			return nil
		},
	})

	return configCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("stocksage %s\n", Version)
		},
	}
}
