// Package sasslog wraps go.uber.org/zap the way the teacher's
// less/logger.go wraps a listener list: a small facade the rest of the
// compiler logs through, decoupled from any particular sink so tests can
// swap in an in-memory core and the CLI can swap in a human console
// encoder. @warn/@debug output and deprecation notices all flow through
// here rather than straight to os.Stderr, matching the teacher's
// Logger.Warn/Logger.Info broadcasting to registered listeners.
package sasslog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/toakleaf/sass.go/internal/source"
)

// Logger is the facade the evaluator and CLI log through.
type Logger struct {
	z        *zap.Logger
	warnings []Entry
}

// Entry is one accumulated @warn or deprecation message (@debug output
// goes to the zap sink only and is not kept), kept
// alongside a successful compile's result per §7 ("the compiler records
// them and exposes the accumulated warnings alongside the result").
type Entry struct {
	Message      string
	Span         source.Span
	Deprecation  bool
	StylesheetID int
}

// New builds a Logger around a human-readable console encoder, the
// development-style sink a CLI invocation wants.
func New() *Logger {
	z, _ := zap.NewDevelopment()
	return &Logger{z: z}
}

// NewNop builds a Logger that discards zap output but still accumulates
// Entries — the shape tests want: assert on Warnings(), not stderr.
func NewNop() *Logger {
	return &Logger{z: zap.NewNop()}
}

// NewWithCore builds a Logger around a caller-supplied zapcore.Core, for
// hosts that want to route compiler diagnostics into their own
// structured-logging pipeline.
func NewWithCore(core zapcore.Core) *Logger {
	return &Logger{z: zap.New(core)}
}

func (l *Logger) Warn(span source.Span, msg string) {
	l.warnings = append(l.warnings, Entry{Message: msg, Span: span})
	l.z.Warn(msg, zap.Int("source", span.SourceId), zap.Int("offset", span.Start))
}

func (l *Logger) Deprecation(span source.Span, msg string) {
	l.warnings = append(l.warnings, Entry{Message: msg, Span: span, Deprecation: true})
	l.z.Warn("deprecation: "+msg, zap.Int("source", span.SourceId))
}

func (l *Logger) Debug(span source.Span, msg string) {
	l.z.Debug(msg, zap.Int("source", span.SourceId), zap.Int("offset", span.Start))
}

func (l *Logger) Error(msg string) {
	l.z.Error(msg)
}

// Warnings returns every @warn/deprecation notice accumulated so far.
func (l *Logger) Warnings() []Entry { return l.warnings }

func (l *Logger) Sync() error { return l.z.Sync() }
