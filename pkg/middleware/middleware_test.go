package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	require.NotNil(t, m.Counter)
	return m.GetCounter().GetValue()
}

func histogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	require.True(t, ok, "observer %T does not implement prometheus.Metric", o)
	var m dto.Metric
	require.NoError(t, metric.Write(&m))
	require.NotNil(t, m.Histogram)
	return m.GetHistogram().GetSampleCount()
}

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()), WithNamespace("test"))

	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/events/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	for _, path := range []string{"/events/a", "/events/b", "/boom"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, counterValue(t, m.requestsTotal.WithLabelValues("/events/{id}", "200")))
	assert.Equal(t, 1.0, counterValue(t, m.requestsTotal.WithLabelValues("/boom", "500")))
	assert.Equal(t, uint64(2), histogramCount(t, m.requestDuration.WithLabelValues("/events/{id}")))
}

func TestMetricsRecorders(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))

	m.RecordRows("events", 3)
	m.RecordRows("events", 2)
	m.RecordRenderError("guests", "E001")
	m.RecordRenderError("guests", "")
	m.RecordLiveMessage("ok")

	assert.Equal(t, 5.0, counterValue(t, m.rowsRendered.WithLabelValues("events")))
	assert.Equal(t, 1.0, counterValue(t, m.renderErrors.WithLabelValues("guests", "E001")))
	assert.Equal(t, 1.0, counterValue(t, m.renderErrors.WithLabelValues("guests", "unknown")))
	assert.Equal(t, 1.0, counterValue(t, m.liveMessages.WithLabelValues("ok")))

	var nilMetrics *Metrics
	assert.NotPanics(t, func() {
		nilMetrics.RecordRows("events", 1)
		nilMetrics.RecordRenderError("events", "E001")
		nilMetrics.RecordLiveMessage("error")
	})
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "client-id")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "client-id", seen)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", 200))
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Len(t, seen, 36)

	assert.Equal(t, "", RequestIDFromContext(context.Background()))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	h := RequestID(Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))
	req := httptest.NewRequest(http.MethodPost, "/render", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, "method=POST")
	assert.Contains(t, out, "path=/render")
	assert.Contains(t, out, "status=418")
	assert.Contains(t, out, "request_id=req-1")
	assert.Contains(t, out, "level=INFO")
}

func TestTracingPropagatesSpanContext(t *testing.T) {
	parent := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1, 2, 3},
		SpanID:     trace.SpanID{4, 5, 6},
		TraceFlags: trace.FlagsSampled,
	})

	var got trace.SpanContext
	h := Tracing(WithTracerProvider(noop.NewTracerProvider()))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = trace.SpanContextFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req = req.WithContext(trace.ContextWithRemoteSpanContext(req.Context(), parent))
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, parent.TraceID(), got.TraceID())
}

func TestTracingFilter(t *testing.T) {
	called := false
	h := Tracing(WithRequestFilter(func(r *http.Request) bool {
		return r.URL.Path != "/metrics"
	}))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.True(t, called)
}

func TestStartSpanAndRecordError(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "", "render")
	defer span.End()
	assert.NotNil(t, ctx)
	assert.NotPanics(t, func() {
		RecordError(span, nil)
		RecordError(span, assert.AnError)
	})
}
