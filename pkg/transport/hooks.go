package transport

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jdziat/hubspot-go/pkg/logging"
)

// ============================================================================
// Hook Priority
// ============================================================================

// HookPriority determines how hook failures are handled.
type HookPriority int

const (
	// HookPriorityObservational marks a hook whose failure is logged and
	// ignored. Use for logging, metrics and tracing.
	HookPriorityObservational HookPriority = iota

	// HookPriorityCritical marks a hook whose failure aborts the request.
	HookPriorityCritical
)

// String returns a string representation of the hook priority.
func (p HookPriority) String() string {
	switch p {
	case HookPriorityObservational:
		return "observational"
	case HookPriorityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ============================================================================
// HTTP Hook Interface
// ============================================================================

// HTTPHook observes or adjusts requests made by the HTTP transport.
//
// Hooks run after the dispatcher has set the User-Agent and Authorization
// headers. Changes a hook makes to those two headers are discarded.
type HTTPHook interface {
	// BeforeRequest is called before the request is sent.
	BeforeRequest(ctx context.Context, req *http.Request) error

	// AfterResponse is called once the response headers arrived or the
	// request failed.
	AfterResponse(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error)
}

// HTTPHookFunc builds a hook from optional functions.
type HTTPHookFunc struct {
	Before func(ctx context.Context, req *http.Request) error
	After  func(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error)
}

// BeforeRequest implements HTTPHook.
func (f HTTPHookFunc) BeforeRequest(ctx context.Context, req *http.Request) error {
	if f.Before != nil {
		return f.Before(ctx, req)
	}
	return nil
}

// AfterResponse implements HTTPHook.
func (f HTTPHookFunc) AfterResponse(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error) {
	if f.After != nil {
		f.After(ctx, req, resp, duration, err)
	}
}

// ============================================================================
// Classified Hook Chain
// ============================================================================

// ClassifiedHook pairs a hook with its priority and a name used in logs.
type ClassifiedHook struct {
	Hook     HTTPHook
	Priority HookPriority
	Name     string
}

// hookChain runs hooks with priority-aware error handling. BeforeRequest runs
// in order, AfterResponse in reverse so hooks wrap like middleware.
type hookChain struct {
	hooks  []ClassifiedHook
	logger logging.Logger
}

func newHookChain(hooks []ClassifiedHook, logger logging.Logger) *hookChain {
	if len(hooks) == 0 {
		return nil
	}
	return &hookChain{hooks: hooks, logger: logging.OrNop(logger)}
}

func (c *hookChain) BeforeRequest(ctx context.Context, req *http.Request) error {
	for _, ch := range c.hooks {
		if err := c.callBefore(ctx, req, ch); err != nil {
			return err
		}
	}
	return nil
}

func (c *hookChain) callBefore(ctx context.Context, req *http.Request, ch ClassifiedHook) (err error) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("hubspot: hook panicked", "hook", ch.Name, "phase", "before", "panic", r)
			if ch.Priority == HookPriorityCritical {
				err = fmt.Errorf("hubspot: critical hook %q panicked: %v", ch.Name, r)
			}
		}
	}()

	hookErr := ch.Hook.BeforeRequest(ctx, req)
	if hookErr == nil {
		return nil
	}

	if ch.Priority == HookPriorityObservational {
		c.logger.Warn("hubspot: observational hook failed", "hook", ch.Name, "error", hookErr)
		return nil
	}
	return fmt.Errorf("hubspot: critical hook %q failed: %w", ch.Name, hookErr)
}

func (c *hookChain) AfterResponse(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error) {
	for i := len(c.hooks) - 1; i >= 0; i-- {
		c.callAfter(ctx, req, resp, duration, err, c.hooks[i])
	}
}

func (c *hookChain) callAfter(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, requestErr error, ch ClassifiedHook) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("hubspot: hook panicked", "hook", ch.Name, "phase", "after", "panic", r)
		}
	}()
	ch.Hook.AfterResponse(ctx, req, resp, duration, requestErr)
}

// ============================================================================
// Predefined Hooks
// ============================================================================

// HeaderHook adds static headers to every request.
func HeaderHook(headers map[string]string) ClassifiedHook {
	return ClassifiedHook{
		Name:     "headers",
		Priority: HookPriorityCritical,
		Hook: HTTPHookFunc{
			Before: func(ctx context.Context, req *http.Request) error {
				for k, v := range headers {
					req.Header.Set(k, v)
				}
				return nil
			},
		},
	}
}

// LoggingHook logs each request and its outcome. The Authorization header is
// never logged.
func LoggingHook(logger logging.Logger) ClassifiedHook {
	return ClassifiedHook{
		Name:     "logging",
		Priority: HookPriorityObservational,
		Hook: HTTPHookFunc{
			After: func(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error) {
				if err != nil {
					logger.Warn("hubspot: request failed",
						"method", req.Method, "path", req.URL.Path, "duration", duration, "error", err)
					return
				}
				logger.Info("hubspot: request completed",
					"method", req.Method, "path", req.URL.Path, "duration", duration, "status", resp.StatusCode)
			},
		},
	}
}
