package transport

import (
	"context"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	pkghttp "github.com/jdziat/hubspot-go/pkg/http"
)

// tracerName is the instrumentation scope of spans created by Trace.
const tracerName = "github.com/jdziat/hubspot-go/pkg/transport"

// Trace wraps next so every call runs inside a client span. A nil tp uses the
// global tracer provider. Responses and errors are returned unchanged.
//
// Query strings are left out of span attributes since they may carry
// personal data such as e-mail addresses.
func Trace(next pkghttp.Transport, tp trace.TracerProvider) pkghttp.Transport {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	tracer := tp.Tracer(tracerName)

	return pkghttp.TransportFunc(func(ctx context.Context, method pkghttp.Method, rawURL string, opts *pkghttp.Options) (*pkghttp.Response, error) {
		attrs := []attribute.KeyValue{
			attribute.String("http.request.method", string(method)),
		}
		if u, err := url.Parse(rawURL); err == nil {
			attrs = append(attrs,
				attribute.String("server.address", u.Hostname()),
				attribute.String("url.path", u.Path),
			)
		}

		ctx, span := tracer.Start(ctx, "HubSpot "+string(method),
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(attrs...),
		)
		defer span.End()

		resp, err := pkghttp.Do(ctx, next, method, rawURL, opts)
		switch {
		case err != nil:
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		case resp != nil:
			span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
			if resp.StatusCode >= 500 {
				span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", resp.StatusCode))
			}
		}
		return resp, err
	})
}
