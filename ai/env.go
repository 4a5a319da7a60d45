package ai

// Environment variables read by ApplyEnv.
const (
	EnvOpenAIKey    = "OPENAI_API_KEY"
	EnvAnthropicKey = "ANTHROPIC_API_KEY"
	EnvGeminiKey    = "GEMINI_API_KEY"
	EnvOllamaHost   = "OLLAMA_HOST"
)

// ApplyEnv fills empty fields from the environment. Values already set in the
// file win. lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	fromEnv := func(dst *string, key string) bool {
		if *dst != "" {
			return false
		}
		v, ok := lookup(key)
		if !ok || v == "" {
			return false
		}
		*dst = v
		return true
	}

	if fromEnv(&c.OpenAI.APIKey, EnvOpenAIKey) {
		c.markEnvKey(OpenAI)
	}
	if fromEnv(&c.Anthropic.APIKey, EnvAnthropicKey) {
		c.markEnvKey(Anthropic)
	}
	if fromEnv(&c.Gemini.APIKey, EnvGeminiKey) {
		c.markEnvKey(Gemini)
	}
	fromEnv(&c.Ollama.BaseURL, EnvOllamaHost)
}

func (c *Config) markEnvKey(p Provider) {
	if c.envKeys == nil {
		c.envKeys = make(map[Provider]bool)
	}
	c.envKeys[p] = true
}
