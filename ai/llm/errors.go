package llm

import (
	"context"
	"errors"
	"net"
	"net/url"

	"github.com/poiesic/voto/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"
)

// translate classifies a langchaingo failure into an *ai.ProviderError.
func translate(p ai.Provider, err error) error {
	var pe *ai.ProviderError
	if errors.As(err, &pe) {
		return err
	}

	var mapped error
	switch p {
	case ai.OpenAI:
		mapped = openai.MapError(err)
	case ai.Anthropic:
		mapped = anthropic.MapError(err)
	case ai.Gemini:
		mapped = googleai.MapError(err)
	default:
		mapped = llms.NewErrorMapper(string(p)).Map(err)
	}

	return ai.NewProviderError(p, classify(mapped), err)
}

// classify checks transport failures before the vendor codes, since the
// pattern-based mappers can misread port numbers in dial errors as status codes.
func classify(err error) error {
	var urlErr *url.Error
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), llms.IsTimeoutError(err):
		return ai.ErrNetwork
	case errors.As(err, &urlErr), errors.As(err, &netErr):
		return ai.ErrNetwork
	case llms.IsAuthenticationError(err):
		return ai.ErrAuthRejected
	case llms.IsProviderUnavailableError(err), llms.IsRateLimitError(err), llms.IsQuotaExceededError(err):
		return ai.ErrProviderUnavailable
	}
	return ai.ErrCallFailed
}
