package aggregator

import (
	"log/slog"
)

// Logger receives structured events from an aggregation run: debug
// events per dictionary, a warning per skipped file, and an info event when the
// run completes. Attributes are slog-style key/value pairs:
//
//	logger.Debug("extracted keys", "path", "words/en.json", "count", 1200)
//
// Use [NewSlogAdapter] to plug in a *slog.Logger.
type Logger interface {
	Debug(msg string, attrs ...any)
	Info(msg string, attrs ...any)
	Warn(msg string, attrs ...any)
	Error(msg string, attrs ...any)
	// With returns a Logger that adds attrs to every event.
	With(attrs ...any) Logger
}

// NopLogger drops every event. Aggregators start with it.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}

func (NopLogger) Info(_ string, _ ...any) {}

func (NopLogger) Warn(_ string, _ ...any) {}

func (NopLogger) Error(_ string, _ ...any) {}

func (n NopLogger) With(_ ...any) Logger { return n }

var _ Logger = NopLogger{}

// SlogAdapter forwards events to a *slog.Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter from a *slog.Logger.
// A nil logger means slog.Default().
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (s *SlogAdapter) Debug(msg string, attrs ...any) { s.logger.Debug(msg, attrs...) }

func (s *SlogAdapter) Info(msg string, attrs ...any) { s.logger.Info(msg, attrs...) }

func (s *SlogAdapter) Warn(msg string, attrs ...any) { s.logger.Warn(msg, attrs...) }

func (s *SlogAdapter) Error(msg string, attrs ...any) { s.logger.Error(msg, attrs...) }

func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

var _ Logger = (*SlogAdapter)(nil)
