package hubspot

import (
	"log/slog"

	"go.uber.org/zap"

	"github.com/jdziat/hubspot-go/pkg/logging"
)

// Logger provides structured logging for transports.
// It is compatible with log/slog and zap through the bundled adapters.
//
//	client, _ := hubspot.NewFromEnv(
//	    hubspot.WithLogger(hubspot.NewSlogAdapter(slog.Default())),
//	)
type Logger = logging.Logger

// NopLogger discards all log messages.
type NopLogger = logging.Nop

// SlogAdapter adapts *slog.Logger to Logger.
type SlogAdapter = logging.SlogAdapter

// ZapAdapter adapts *zap.Logger to Logger.
type ZapAdapter = logging.ZapAdapter

// NewSlogAdapter creates a Logger backed by slog. A nil logger uses slog.Default().
func NewSlogAdapter(l *slog.Logger) *SlogAdapter {
	return logging.NewSlogAdapter(l)
}

// NewZapAdapter creates a Logger backed by zap. A nil logger discards output.
func NewZapAdapter(l *zap.Logger) *ZapAdapter {
	return logging.NewZapAdapter(l)
}

// MaskToken masks all but the last four characters of a token.
func MaskToken(s string) string {
	return logging.MaskToken(s)
}

// MaskAuthHeader masks the credential of an Authorization header value.
func MaskAuthHeader(header string) string {
	return logging.MaskAuthHeader(header)
}
