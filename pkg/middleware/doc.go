// Package middleware provides net/http middleware for the wutup server.
//
// This package includes:
//   - Request ids (X-Request-ID, generated with google/uuid)
//   - Structured request logging with log/slog
//   - Prometheus HTTP and render metrics
//   - OpenTelemetry tracing
//
// All middleware has the chi signature func(http.Handler) http.Handler:
//
//	m := middleware.NewMetrics(middleware.WithNamespace("wutup"))
//
//	r := chi.NewRouter()
//	r.Use(middleware.RequestID)
//	r.Use(middleware.Logger(slog.Default()))
//	r.Use(m.Handler)
//	r.Use(middleware.Tracing(middleware.WithTracerName("wutup")))
//
// # Prometheus Metrics
//
// NewMetrics registers:
//   - wutup_http_requests_total: requests by route and status
//   - wutup_http_request_duration_seconds: request duration by route
//   - wutup_rows_rendered_total: table rows rendered by kind
//   - wutup_render_errors_total: failed renders by kind and error code
//   - wutup_live_messages_total: WebSocket render requests by result
//
// Expose them with promhttp:
//
//	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
//
// # OpenTelemetry
//
// Tracing starts one server span per request using the global tracer
// provider unless WithTracerProvider is given. Configure the provider in
// main() before starting the server.
package middleware
