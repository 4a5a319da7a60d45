package llm

import (
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultMaxTokens caps the length of a reply.
	DefaultMaxTokens = 2048

	// DefaultProbeTimeout bounds an Ollama availability check.
	DefaultProbeTimeout = 3 * time.Second
)

type settings struct {
	logger       *slog.Logger
	httpClient   *http.Client
	maxTokens    int
	probeTimeout time.Duration
}

// Option configures a Model or a Prober.
type Option func(*settings) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithHTTPClient sets the client used for Ollama and the probe.
func WithHTTPClient(client *http.Client) Option {
	return func(s *settings) error {
		if client != nil {
			s.httpClient = client
		}
		return nil
	}
}

// WithMaxTokens caps reply length. Values below 1 keep the default.
func WithMaxTokens(n int) Option {
	return func(s *settings) error {
		if n > 0 {
			s.maxTokens = n
		}
		return nil
	}
}

// WithProbeTimeout bounds each availability check. Values below 1 keep the default.
func WithProbeTimeout(d time.Duration) Option {
	return func(s *settings) error {
		if d > 0 {
			s.probeTimeout = d
		}
		return nil
	}
}

func newSettings(opts []Option) (*settings, error) {
	s := &settings{
		logger:       slog.Default(),
		httpClient:   http.DefaultClient,
		maxTokens:    DefaultMaxTokens,
		probeTimeout: DefaultProbeTimeout,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}
