// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ai

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// DefaultOllamaURL is where a local Ollama server listens by default.
const DefaultOllamaURL = "http://localhost:11434"

// Config holds the selected provider and the settings of every provider.
// Settings of unselected providers are kept so switching back is lossless.
type Config struct {
	// Provider is the selected backend. Empty until the user picks one.
	Provider Provider `yaml:"provider"`

	Ollama    OllamaSettings    `yaml:"ollama"`
	OpenAI    OpenAISettings    `yaml:"openai"`
	Anthropic AnthropicSettings `yaml:"anthropic"`
	Gemini    GeminiSettings    `yaml:"gemini"`

	// envKeys marks API keys that came from the environment; Save never
	// writes them to disk.
	envKeys map[Provider]bool
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithProvider selects the backend.
func WithProvider(p Provider) ConfigOption {
	return func(c *Config) {
		c.Provider = p
	}
}

// WithOllamaURL sets the Ollama server URL.
func WithOllamaURL(baseURL string) ConfigOption {
	return func(c *Config) {
		c.Ollama.BaseURL = baseURL
	}
}

// WithAPIKey sets the API key of a hosted provider. Ollama ignores it.
func WithAPIKey(p Provider, key string) ConfigOption {
	return func(c *Config) {
		c.SetAPIKey(p, key)
	}
}

// WithModel sets the model of a provider.
func WithModel(p Provider, model string) ConfigOption {
	return func(c *Config) {
		c.SetModel(p, model)
	}
}

// DefaultConfig returns a Config with no provider selected and every provider
// set to its default model.
func DefaultConfig() *Config {
	return &Config{
		Ollama: OllamaSettings{
			BaseURL: DefaultOllamaURL,
			Model:   Ollama.Info().DefaultModel,
		},
		OpenAI:    OpenAISettings{Model: OpenAI.Info().DefaultModel},
		Anthropic: AnthropicSettings{Model: Anthropic.Info().DefaultModel},
		Gemini:    GeminiSettings{Model: Gemini.Info().DefaultModel},
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithProvider(Ollama),
//	    WithModel(Ollama, "qwen2.5:3b"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// SetAPIKey stores a key typed by the user. Ollama has no key.
func (c *Config) SetAPIKey(p Provider, key string) {
	key = strings.TrimSpace(key)
	switch p {
	case OpenAI:
		c.OpenAI.APIKey = key
	case Anthropic:
		c.Anthropic.APIKey = key
	case Gemini:
		c.Gemini.APIKey = key
	default:
		return
	}
	delete(c.envKeys, p)
}

// SetModel sets the model of a provider.
func (c *Config) SetModel(p Provider, model string) {
	model = strings.TrimSpace(model)
	switch p {
	case Ollama:
		c.Ollama.Model = model
	case OpenAI:
		c.OpenAI.Model = model
	case Anthropic:
		c.Anthropic.Model = model
	case Gemini:
		c.Gemini.Model = model
	}
}

// Settings returns the settings of any supported provider.
func (c *Config) Settings(p Provider) (Settings, error) {
	switch p {
	case Ollama:
		return c.Ollama, nil
	case OpenAI:
		return c.OpenAI, nil
	case Anthropic:
		return c.Anthropic, nil
	case Gemini:
		return c.Gemini, nil
	case "":
		return nil, ErrProviderNotConfigured
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, p)
}

// Selected returns the settings of the selected provider.
func (c *Config) Selected() (Settings, error) {
	return c.Settings(c.Provider)
}

// HasAPIKey reports whether a hosted provider has a key. Ollama never needs one.
func (c *Config) HasAPIKey(p Provider) bool {
	s, err := c.Settings(p)
	if err != nil {
		return false
	}
	return !p.Info().RequiresKey || APIKey(s) != ""
}

// Normalize puts the configuration in canonical form: the Ollama URL gets a
// scheme and loses its trailing slash, and empty models fall back to the
// provider default.
func (c *Config) Normalize() {
	c.Provider = Provider(strings.ToLower(strings.TrimSpace(string(c.Provider))))

	base := strings.TrimSpace(c.Ollama.BaseURL)
	if base == "" {
		base = DefaultOllamaURL
	}
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}
	c.Ollama.BaseURL = strings.TrimSuffix(base, "/")

	if c.Ollama.Model == "" {
		c.Ollama.Model = Ollama.Info().DefaultModel
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = OpenAI.Info().DefaultModel
	}
	if c.Anthropic.Model == "" {
		c.Anthropic.Model = Anthropic.Info().DefaultModel
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = Gemini.Info().DefaultModel
	}
}

// Validate checks that the selected provider can be used.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	switch c.Provider {
	case "":
		return ErrProviderNotConfigured
	case Ollama:
		if _, err := url.ParseRequestURI(c.Ollama.BaseURL); err != nil {
			return fmt.Errorf("ai config: ollama.base_url is invalid: %w", err)
		}
	case OpenAI, Anthropic, Gemini:
		if !c.HasAPIKey(c.Provider) {
			return fmt.Errorf("ai config: %s.api_key is required: %w", c.Provider, ErrAuthMissing)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.Provider)
	}
	return nil
}

// persisted returns the copy of c that is written to disk.
func (c *Config) persisted() *Config {
	out := *c
	out.envKeys = nil
	for p := range c.envKeys {
		switch p {
		case OpenAI:
			out.OpenAI.APIKey = ""
		case Anthropic:
			out.Anthropic.APIKey = ""
		case Gemini:
			out.Gemini.APIKey = ""
		}
	}
	return &out
}

var errNilConfig = errors.New("ai config: config is nil")
