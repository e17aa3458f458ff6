// Package logging provides the structured logger interface used by the SDK's
// transports and tools, together with adapters for log/slog and zap.
package logging

import (
	"log/slog"
	"strings"

	"go.uber.org/zap"
)

// Logger is a leveled, structured logger. Arguments are alternating
// key-value pairs, as with log/slog.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Nop discards all log messages.
type Nop struct{}

// Debug implements Logger.
func (Nop) Debug(msg string, args ...any) {}

// Info implements Logger.
func (Nop) Info(msg string, args ...any) {}

// Warn implements Logger.
func (Nop) Warn(msg string, args ...any) {}

// Error implements Logger.
func (Nop) Error(msg string, args ...any) {}

// OrNop returns l, or Nop if l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop{}
	}
	return l
}

// ============================================================================
// Slog Adapter
// ============================================================================

// SlogAdapter adapts a slog.Logger to the Logger interface.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
//	client, _ := hubspot.NewFromEnv(
//	    hubspot.WithLogger(logging.NewSlogAdapter(logger)),
//	)
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps l. If l is nil, slog.Default() is used.
func NewSlogAdapter(l *slog.Logger) *SlogAdapter {
	if l == nil {
		l = slog.Default()
	}
	return &SlogAdapter{logger: l}
}

// Debug implements Logger.
func (a *SlogAdapter) Debug(msg string, args ...any) { a.logger.Debug(msg, args...) }

// Info implements Logger.
func (a *SlogAdapter) Info(msg string, args ...any) { a.logger.Info(msg, args...) }

// Warn implements Logger.
func (a *SlogAdapter) Warn(msg string, args ...any) { a.logger.Warn(msg, args...) }

// Error implements Logger.
func (a *SlogAdapter) Error(msg string, args ...any) { a.logger.Error(msg, args...) }

// With returns an adapter with the given attributes added.
func (a *SlogAdapter) With(args ...any) *SlogAdapter {
	return &SlogAdapter{logger: a.logger.With(args...)}
}

// ============================================================================
// Zap Adapter
// ============================================================================

// ZapAdapter adapts a zap.Logger to the Logger interface using the sugared
// key-value API.
type ZapAdapter struct {
	logger *zap.SugaredLogger
}

// NewZapAdapter wraps l. If l is nil, a no-op zap logger is used.
func NewZapAdapter(l *zap.Logger) *ZapAdapter {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapAdapter{logger: l.Sugar()}
}

// Debug implements Logger.
func (a *ZapAdapter) Debug(msg string, args ...any) { a.logger.Debugw(msg, args...) }

// Info implements Logger.
func (a *ZapAdapter) Info(msg string, args ...any) { a.logger.Infow(msg, args...) }

// Warn implements Logger.
func (a *ZapAdapter) Warn(msg string, args ...any) { a.logger.Warnw(msg, args...) }

// Error implements Logger.
func (a *ZapAdapter) Error(msg string, args ...any) { a.logger.Errorw(msg, args...) }

// Ensure the adapters implement Logger.
var (
	_ Logger = Nop{}
	_ Logger = (*SlogAdapter)(nil)
	_ Logger = (*ZapAdapter)(nil)
)

// ============================================================================
// Credential Masking
// ============================================================================

// MaskToken masks a credential, keeping only the last 4 characters.
//
//	MaskToken("pat-na1-11111111-2222") => "*****************2222"
//	MaskToken("abc") => "****"
func MaskToken(s string) string {
	const visibleSuffix = 4
	if s == "" {
		return ""
	}
	if len(s) <= visibleSuffix {
		return "****"
	}
	return strings.Repeat("*", len(s)-visibleSuffix) + s[len(s)-visibleSuffix:]
}

// MaskAuthHeader masks an Authorization header value for safe logging.
func MaskAuthHeader(header string) string {
	if header == "" {
		return ""
	}
	if scheme, _, ok := strings.Cut(header, " "); ok && (scheme == "Bearer" || scheme == "Basic") {
		return scheme + " ********"
	}
	return "********"
}
