// Package llm sends the collected analysis to a language model for an
// independent second opinion on top of the algorithmic recommendation.
package llm

import "strings"

// Provider identifies which API a model is served through.
type Provider string

const (
	ProviderClaude     Provider = "claude"
	ProviderOpenRouter Provider = "openrouter"
)

// ModelOption is one selectable model with its display label.
type ModelOption struct {
	ID    string
	Label string
}

// ClaudeModels are the models offered for the Anthropic API.
var ClaudeModels = []ModelOption{
	{"claude-sonnet-4-5-20250929", "Claude Sonnet 4.5 (Recommended)"},
	{"claude-opus-4-6", "Claude Opus 4.6"},
	{"claude-haiku-4-5-20251001", "Claude Haiku 4.5"},
}

// OpenRouterModels are the models offered through OpenRouter.
var OpenRouterModels = []ModelOption{
	{"anthropic/claude-sonnet-4-5-20250929", "Claude Sonnet 4.5"},
	{"google/gemini-2.5-pro-preview", "Gemini 2.5 Pro"},
	{"google/gemini-2.0-flash-001", "Gemini 2.0 Flash"},
	{"openai/gpt-4o", "GPT-4o"},
	{"openai/o3-mini", "OpenAI o3-mini"},
	{"meta-llama/llama-4-maverick", "Llama 4 Maverick"},
	{"deepseek/deepseek-r1", "DeepSeek R1"},
	{"mistralai/mistral-large-2411", "Mistral Large"},
}

// Options selects a provider, model and credential for one query.
type Options struct {
	Provider Provider
	Model    string
	APIKey   string
}

// ParseModelFlag maps a --model value to a provider and model ID.
//
//	claude-sonnet-4-5-20250929          Claude provider
//	openrouter/google/gemini-2.0-flash  OpenRouter, prefix stripped
//	org/name                            OpenRouter
//	anything else                       Claude
func ParseModelFlag(model string) (Provider, string) {
	if rest, ok := strings.CutPrefix(model, "openrouter/"); ok {
		return ProviderOpenRouter, rest
	}
	if strings.HasPrefix(model, "claude-") {
		return ProviderClaude, model
	}
	if strings.Contains(model, "/") {
		return ProviderOpenRouter, model
	}
	return ProviderClaude, model
}
