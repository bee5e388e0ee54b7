package enrich

import (
	"sync"

	"go.uber.org/zap"

	"smpe-admin/internal/accessor"
	"smpe-admin/internal/diagnostic"
	"smpe-admin/internal/match"
)

// Sink receives abandoned enrichments. Implementations must be safe for
// concurrent use.
type Sink interface {
	Report(failure *Error)
}

// NopSink discards failures.
type NopSink struct{}

// Report implements Sink.
func (NopSink) Report(*Error) {}

// LogSink writes each failure as a structured warning.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink creates a LogSink. A nil logger discards everything.
func NewLogSink(logger *zap.Logger) *LogSink {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &LogSink{logger: logger}
}

// Report implements Sink.
func (s *LogSink) Report(failure *Error) {
	s.logger.Warn("enrichment abandoned",
		zap.String("column", failure.Descriptor.Column),
		zap.String("property", failure.Descriptor.Property),
		zap.String("select", failure.Descriptor.Select),
		zap.String("entity_type", failure.EntityType),
		zap.Stringer("error_kind", failure.Kind),
		zap.Error(failure.Err),
	)
}

// CollectSink turns failures into warning diagnostics.
type CollectSink struct {
	accessors *accessor.Registry

	mu    sync.Mutex
	diags diagnostic.Diagnostics
	errs  []*Error
}

// NewCollectSink creates a CollectSink. When accessors is non-nil, missing
// accessors get "did you mean" suggestions from the entity's known properties.
func NewCollectSink(accessors *accessor.Registry) *CollectSink {
	return &CollectSink{accessors: accessors}
}

// Report implements Sink.
func (s *CollectSink) Report(failure *Error) {
	var suggestions []string
	if failure.Kind == KindAccessorNotFound && s.accessors != nil && failure.Type() != nil {
		suggestions = match.Suggest(failure.Field, s.accessors.Properties(failure.Type()), 3)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.errs = append(s.errs, failure)
	s.diags.AddWarning(failure.Kind.String(), failure.Err.Error(), failure.EntityType, failure.Field, suggestions...)
}

// Diagnostics returns a snapshot of the collected diagnostics.
func (s *CollectSink) Diagnostics() diagnostic.Diagnostics {
	s.mu.Lock()
	defer s.mu.Unlock()

	return diagnostic.Diagnostics{
		Errors:   append([]diagnostic.Diagnostic(nil), s.diags.Errors...),
		Warnings: append([]diagnostic.Diagnostic(nil), s.diags.Warnings...),
		Infos:    append([]diagnostic.Diagnostic(nil), s.diags.Infos...),
	}
}

// Failures returns the collected failures in report order.
func (s *CollectSink) Failures() []*Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*Error(nil), s.errs...)
}

// Sinks fans a failure out to several sinks.
func Sinks(sinks ...Sink) Sink {
	return multiSink(sinks)
}

type multiSink []Sink

func (m multiSink) Report(failure *Error) {
	for _, s := range m {
		s.Report(failure)
	}
}
