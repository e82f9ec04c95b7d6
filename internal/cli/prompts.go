package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/avakin/stocksage/internal/config"
	"github.com/avakin/stocksage/internal/llm"
)

var tickerPattern = regexp.MustCompile(`^[A-Z0-9.\-:]+$`)

// promptTicker asks for a ticker symbol when none was given on the command
// line.
func promptTicker() (string, error) {
	var ticker string
	prompt := &survey.Input{
		Message: "Enter the stock ticker symbol (e.g., AAPL, TEVA.TA, NYSE:MSFT):",
		Help:    "A bare symbol is treated as a US listing. Use a Yahoo suffix or --exchange for other markets.",
	}

	err := survey.AskOne(prompt, &ticker, survey.WithValidator(func(val interface{}) error {
		str := strings.ToUpper(strings.TrimSpace(val.(string)))
		if str == "" {
			return fmt.Errorf("ticker symbol cannot be empty")
		}
		if len(str) > 15 {
			return fmt.Errorf("ticker symbol too long")
		}
		if !tickerPattern.MatchString(str) {
			return fmt.Errorf("invalid ticker format (use letters, numbers, dots and hyphens)")
		}
		return nil
	}))
	if err != nil {
		return "", err
	}
	return strings.ToUpper(strings.TrimSpace(ticker)), nil
}

// promptModel walks the provider and model selection menus.
func promptModel() (llm.Provider, string, error) {
	var providerChoice string
	providerPrompt := &survey.Select{
		Message: "Select LLM provider:",
		Options: []string{
			"Claude (Anthropic API)",
			"OpenRouter (GPT-4, Gemini, Llama, etc.)",
		},
		Default: "Claude (Anthropic API)",
	}
	if err := survey.AskOne(providerPrompt, &providerChoice); err != nil {
		return "", "", err
	}

	provider := llm.ProviderClaude
	catalog := llm.ClaudeModels
	if strings.HasPrefix(providerChoice, "OpenRouter") {
		provider = llm.ProviderOpenRouter
		catalog = llm.OpenRouterModels
	}

	options := make([]string, len(catalog))
	for i, m := range catalog {
		options[i] = fmt.Sprintf("%s  (%s)", m.Label, m.ID)
	}

	var modelChoice string
	modelPrompt := &survey.Select{
		Message: "Select model:",
		Options: options,
		Default: options[0],
	}
	if err := survey.AskOne(modelPrompt, &modelChoice); err != nil {
		return "", "", err
	}

	for i, opt := range options {
		if opt == modelChoice {
			return provider, catalog[i].ID, nil
		}
	}
	return provider, catalog[0].ID, nil
}

// resolveAPIKey returns the stored key for a provider, prompting for one and
// persisting it when missing.
func resolveAPIKey(cfg *config.Config, provider llm.Provider) (string, error) {
	var existing *string
	var configKey string
	switch provider {
	case llm.ProviderClaude:
		existing, configKey = &cfg.AnthropicAPIKey, "anthropic"
	case llm.ProviderOpenRouter:
		existing, configKey = &cfg.OpenRouterAPIKey, "openrouter"
	default:
		return "", fmt.Errorf("unknown LLM provider %q", provider)
	}
	if *existing != "" {
		return *existing, nil
	}

	var key string
	prompt := &survey.Password{
		Message: fmt.Sprintf("Enter your %s API key:", strings.ToUpper(configKey)),
		Help:    "The key is saved to the config file for future runs.",
	}
	err := survey.AskOne(prompt, &key, survey.WithValidator(survey.Required))
	if err != nil {
		return "", err
	}
	key = strings.TrimSpace(key)

	*existing = key
	if err := cfg.Save(); err != nil {
		return "", fmt.Errorf("save API key: %w", err)
	}
	return key, nil
}

// resolveModel turns the --model flag, the configured default or an
// interactive selection into query options with a credential attached.
func resolveModel(cfg *config.Config, modelFlag string) (llm.Options, error) {
	model := modelFlag
	if model == "" {
		model = cfg.DefaultModel
	}

	var provider llm.Provider
	var modelID string
	if model != "" {
		provider, modelID = llm.ParseModelFlag(model)
	} else {
		var err error
		provider, modelID, err = promptModel()
		if err != nil {
			return llm.Options{}, err
		}
	}

	key, err := resolveAPIKey(cfg, provider)
	if err != nil {
		return llm.Options{}, err
	}
	return llm.Options{Provider: provider, Model: modelID, APIKey: key}, nil
}
