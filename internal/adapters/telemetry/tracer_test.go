package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/shrink/internal/adapters/telemetry"
	"go.trai.ch/shrink/internal/core/ports"
)

func newRecordingTracer(t *testing.T) (*telemetry.OTelTracer, *tracetest.SpanRecorder) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	return telemetry.NewOTelTracer(tp), recorder
}

func TestOTelTracer_RecordsSpan(t *testing.T) {
	tracer, recorder := newRecordingTracer(t)

	_, span := tracer.Start(context.Background(), "minify.js")
	span.SetAttribute("backend", "closure")
	span.SetAttribute("downlevel", true)
	span.SetAttribute("attempt", 2)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "minify.js", ended[0].Name())
	assert.Contains(t, ended[0].Attributes(), attribute.String("backend", "closure"))
	assert.Contains(t, ended[0].Attributes(), attribute.Bool("downlevel", true))
	assert.Contains(t, ended[0].Attributes(), attribute.Int("attempt", 2))
}

func TestOTelTracer_NestsChildSpans(t *testing.T) {
	tracer, recorder := newRecordingTracer(t)

	ctx, parent := tracer.Start(context.Background(), "minify")
	_, child := tracer.Start(ctx, "minify.css")
	child.End()
	parent.End()

	ended := recorder.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, "minify.css", ended[0].Name())
	assert.Equal(t, ended[1].SpanContext().SpanID(), ended[0].Parent().SpanID())
}

func TestOTelSpan_RecordError(t *testing.T) {
	tracer, recorder := newRecordingTracer(t)

	_, span := tracer.Start(context.Background(), "minify.js")
	span.RecordError(errors.New("boom"))
	span.RecordError(nil)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "boom", ended[0].Status().Description)
	assert.Len(t, ended[0].Events(), 1)
}

func TestNoOpTracer(t *testing.T) {
	var tracer ports.Tracer = telemetry.NewNoOpTracer()

	ctx := context.Background()
	got, span := tracer.Start(ctx, "noop")

	assert.Equal(t, ctx, got)
	assert.NotPanics(t, func() {
		span.SetAttribute("k", "v")
		span.RecordError(errors.New("ignored"))
		span.End()
	})
}
