package llm

import "testing"

func TestParseModelFlag(t *testing.T) {
	cases := []struct {
		in       string
		provider Provider
		model    string
	}{
		{"claude-sonnet-4-5-20250929", ProviderClaude, "claude-sonnet-4-5-20250929"},
		{"openrouter/google/gemini-2.0-flash-001", ProviderOpenRouter, "google/gemini-2.0-flash-001"},
		{"openai/gpt-4o", ProviderOpenRouter, "openai/gpt-4o"},
		{"some-custom-model", ProviderClaude, "some-custom-model"},
	}
	for _, tc := range cases {
		provider, model := ParseModelFlag(tc.in)
		if provider != tc.provider || model != tc.model {
			t.Fatalf("%q: expected %s/%s, got %s/%s", tc.in, tc.provider, tc.model, provider, model)
		}
	}
}

func TestCatalogsNonEmpty(t *testing.T) {
	if len(ClaudeModels) == 0 || len(OpenRouterModels) == 0 {
		t.Fatalf("model catalogs must not be empty")
	}
	for _, m := range append(append([]ModelOption{}, ClaudeModels...), OpenRouterModels...) {
		if m.ID == "" || m.Label == "" {
			t.Fatalf("catalog entry missing fields: %+v", m)
		}
	}
}
