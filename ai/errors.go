package ai

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderNotConfigured is returned when no provider has been selected.
	ErrProviderNotConfigured = errors.New("provider not configured")

	// ErrUnknownProvider is returned for a provider name outside the supported set.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrAuthMissing is returned when a hosted provider has no API key.
	ErrAuthMissing = errors.New("api key missing")

	// ErrAuthRejected is returned when the provider refuses the credentials.
	ErrAuthRejected = errors.New("api key rejected")

	// ErrProviderUnavailable is returned when the provider cannot serve requests.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrNetwork is returned when the provider could not be reached or timed out.
	ErrNetwork = errors.New("network error")

	// ErrMalformedResponse is returned when the reply carries no usable text.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrCallFailed is returned for any other provider-side failure.
	ErrCallFailed = errors.New("provider call failed")

	// ErrEmptyConversation is returned when Send is called without messages.
	ErrEmptyConversation = errors.New("empty conversation")
)

// ProviderError is a failed provider call. Kind is one of the sentinels above
// and Err the underlying cause. Error returns a message meant for the user.
type ProviderError struct {
	Provider Provider
	Kind     error
	Err      error
}

func (e *ProviderError) Error() string {
	info := e.Provider.Info()
	switch {
	case errors.Is(e.Kind, ErrProviderNotConfigured):
		return "Proveedor no configurado. Usa: voto config"
	case errors.Is(e.Kind, ErrAuthMissing):
		return fmt.Sprintf("%s API key no configurada. Usa: voto config --provider %s --key TU_API_KEY",
			info.Label, e.Provider)
	case e.Provider == Ollama && (errors.Is(e.Kind, ErrNetwork) || errors.Is(e.Kind, ErrProviderUnavailable)):
		return fmt.Sprintf("Ollama error: %v. ¿Está corriendo Ollama? (ollama serve)", e.cause())
	default:
		return fmt.Sprintf("%s error: %v", info.Label, e.cause())
	}
}

func (e *ProviderError) cause() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *ProviderError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewProviderError builds a ProviderError.
func NewProviderError(p Provider, kind, err error) *ProviderError {
	return &ProviderError{Provider: p, Kind: kind, Err: err}
}
