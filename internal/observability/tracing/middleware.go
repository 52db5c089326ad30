package tracing

import (
	"net/http"
	"strings"

	"newsboard/internal/handler/http/pathutil"
	"newsboard/internal/handler/http/requestid"
	"newsboard/internal/handler/http/responsewriter"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// TraceIDHeader carries the trace ID back to the client.
const TraceIDHeader = "X-Trace-Id"

// Query parameters copied onto the server span. Only the ones that select
// upstream data are kept.
var tracedParams = []string{"category", "city", "n", "page", "pageSize"}

// Middleware starts a server span per request, continuing any W3C trace
// context in the request headers. Spans are named after the normalized route,
// so /news/1 and /api/news/2 share a name. It must run inside
// requestid.Middleware to tag spans with the request ID.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))

		route := pathutil.NormalizePath(r.URL.Path)
		attrs := []attribute.KeyValue{
			attribute.String("http.method", r.Method),
			attribute.String("http.route", route),
			attribute.String("http.path", r.URL.Path),
			attribute.Bool("newsboard.api_mount", strings.HasPrefix(r.URL.Path, pathutil.APIPrefix+"/")),
		}
		if id := requestid.FromContext(ctx); id != "" {
			attrs = append(attrs, attribute.String("request.id", id))
		}
		q := r.URL.Query()
		for _, name := range tracedParams {
			if v := q.Get(name); v != "" {
				attrs = append(attrs, attribute.String("http.query."+name, v))
			}
		}

		ctx, span := Tracer().Start(ctx, r.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(attrs...),
		)
		defer span.End()

		if sc := span.SpanContext(); sc.HasTraceID() {
			w.Header().Set(TraceIDHeader, sc.TraceID().String())
		}

		rw := responsewriter.Wrap(w)
		next.ServeHTTP(rw, r.WithContext(ctx))

		status := rw.StatusCode()
		span.SetAttributes(attribute.Int("http.status_code", status))
		// 4xx are client or upstream rejections, not server faults
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	})
}
