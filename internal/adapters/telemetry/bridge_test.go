package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shrink/internal/adapters/telemetry"
	"go.trai.ch/shrink/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newBridgedTracer(t *testing.T) (*telemetry.OTelTracer, *[]string) {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var lines []string
	log.EXPECT().Debug(gomock.Any()).Do(func(msg string) {
		lines = append(lines, msg)
	}).AnyTimes()

	tracer := telemetry.NewSDKTracer(log)
	t.Cleanup(func() { _ = tracer.Shutdown(context.Background()) })

	return tracer, &lines
}

func TestBridge_ReportsSpanLifecycle(t *testing.T) {
	tracer, lines := newBridgedTracer(t)

	ctx, parent := tracer.Start(context.Background(), "minify")
	_, child := tracer.Start(ctx, "minify.css")
	child.End()
	parent.End()

	require.Len(t, *lines, 4)
	assert.Equal(t, "trace: minify started", (*lines)[0])
	assert.Equal(t, "trace: minify.css started (in minify)", (*lines)[1])
	assert.True(t, strings.HasPrefix((*lines)[2], "trace: minify.css ended after "))
	assert.True(t, strings.HasPrefix((*lines)[3], "trace: minify ended after "))
}

func TestBridge_ReportsFailedSpan(t *testing.T) {
	tracer, lines := newBridgedTracer(t)

	_, span := tracer.Start(context.Background(), "minify.js")
	span.RecordError(errors.New("exit status 1"))
	span.End()

	require.Len(t, *lines, 2)
	assert.Contains(t, (*lines)[1], "trace: minify.js failed after ")
	assert.Contains(t, (*lines)[1], "exit status 1")
}

func TestBridge_NilLogger(t *testing.T) {
	tracer := telemetry.NewSDKTracer(nil)
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	assert.NotPanics(t, func() {
		_, span := tracer.Start(context.Background(), "minify")
		span.End()
	})
}

func TestOTelTracer_Shutdown(t *testing.T) {
	tracer, lines := newBridgedTracer(t)

	require.NoError(t, tracer.Shutdown(context.Background()))

	_, span := tracer.Start(context.Background(), "minify")
	span.End()
	assert.Empty(t, *lines)

	assert.NoError(t, telemetry.NewOTelTracer(tracer.Provider()).Shutdown(context.Background()))
}
