package ai

import (
	"fmt"
	"strings"
)

// Provider names a language-model backend.
type Provider string

const (
	Ollama    Provider = "ollama"
	OpenAI    Provider = "openai"
	Anthropic Provider = "anthropic"
	Gemini    Provider = "gemini"
)

// Providers lists every supported backend in menu order.
var Providers = []Provider{Ollama, OpenAI, Anthropic, Gemini}

// ProviderInfo is display metadata for a provider.
type ProviderInfo struct {
	// Name is the menu title, e.g. "Claude (Anthropic)".
	Name string

	// Label is the short vendor name used in error messages.
	Label string

	Description  string
	RequiresKey  bool
	DefaultModel string
}

var providerInfo = map[Provider]ProviderInfo{
	Ollama: {
		Name:         "Ollama (Local)",
		Label:        "Ollama",
		Description:  "Gratis, privado, corre en tu máquina",
		DefaultModel: "llama3.2",
	},
	OpenAI: {
		Name:         "OpenAI",
		Label:        "OpenAI",
		Description:  "GPT-4o, rápido y preciso",
		RequiresKey:  true,
		DefaultModel: "gpt-4o-mini",
	},
	Anthropic: {
		Name:         "Claude (Anthropic)",
		Label:        "Anthropic",
		Description:  "Claude 3.5, excelente razonamiento",
		RequiresKey:  true,
		DefaultModel: "claude-3-5-sonnet-20241022",
	},
	Gemini: {
		Name:         "Google Gemini",
		Label:        "Gemini",
		Description:  "Free tier generoso",
		RequiresKey:  true,
		DefaultModel: "gemini-1.5-flash",
	},
}

// Info returns display metadata. Unknown providers get their raw name.
func (p Provider) Info() ProviderInfo {
	if info, ok := providerInfo[p]; ok {
		return info
	}
	return ProviderInfo{Name: string(p), Label: string(p)}
}

// Valid reports whether p is a supported provider.
func (p Provider) Valid() bool {
	_, ok := providerInfo[p]
	return ok
}

// ParseProvider resolves a provider name case-insensitively.
func ParseProvider(s string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownProvider, s)
	}
	return p, nil
}

// Settings is the configuration of one provider. The concrete type is one of
// OllamaSettings, OpenAISettings, AnthropicSettings or GeminiSettings.
type Settings interface {
	Provider() Provider
	settings()
}

// OllamaSettings configures a local Ollama server.
type OllamaSettings struct {
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// OpenAISettings configures the OpenAI API. BaseURL may point at any
// OpenAI-compatible endpoint; empty means the public API.
type OpenAISettings struct {
	APIKey  string `yaml:"api_key,omitempty"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url,omitempty"`
}

// AnthropicSettings configures the Anthropic Messages API.
type AnthropicSettings struct {
	APIKey  string `yaml:"api_key,omitempty"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url,omitempty"`
}

// GeminiSettings configures Google Gemini.
type GeminiSettings struct {
	APIKey string `yaml:"api_key,omitempty"`
	Model  string `yaml:"model"`
}

func (OllamaSettings) Provider() Provider    { return Ollama }
func (OpenAISettings) Provider() Provider    { return OpenAI }
func (AnthropicSettings) Provider() Provider { return Anthropic }
func (GeminiSettings) Provider() Provider    { return Gemini }

func (OllamaSettings) settings()    {}
func (OpenAISettings) settings()    {}
func (AnthropicSettings) settings() {}
func (GeminiSettings) settings()    {}

var (
	_ Settings = OllamaSettings{}
	_ Settings = OpenAISettings{}
	_ Settings = AnthropicSettings{}
	_ Settings = GeminiSettings{}
)

// APIKey returns the key carried by hosted settings, empty for Ollama.
func APIKey(s Settings) string {
	switch s := s.(type) {
	case OpenAISettings:
		return s.APIKey
	case AnthropicSettings:
		return s.APIKey
	case GeminiSettings:
		return s.APIKey
	}
	return ""
}
