package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shrink/internal/adapters/filecache"
	"go.trai.ch/shrink/internal/adapters/telemetry"
	"go.trai.ch/shrink/internal/app"
	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/shrink/internal/core/ports/mocks"
	"go.trai.ch/shrink/internal/engine/minify"
	"go.trai.ch/shrink/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

type harness struct {
	fs         afero.Fs
	loader     *mocks.MockConfigLoader
	probe      *mocks.MockAvailabilityProbe
	preferred  *mocks.MockJSBackend
	fallback   *mocks.MockJSBackend
	transpiler *mocks.MockTranspiler
	css        *mocks.MockCSSMinifier
	logger     *mocks.MockLogger
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	ctrl := gomock.NewController(t)
	h := &harness{
		fs:         afero.NewMemMapFs(),
		loader:     mocks.NewMockConfigLoader(ctrl),
		probe:      mocks.NewMockAvailabilityProbe(ctrl),
		preferred:  mocks.NewMockJSBackend(ctrl),
		fallback:   mocks.NewMockJSBackend(ctrl),
		transpiler: mocks.NewMockTranspiler(ctrl),
		css:        mocks.NewMockCSSMinifier(ctrl),
		logger:     mocks.NewMockLogger(ctrl),
	}
	h.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	return h
}

func (h *harness) app(env map[string]string) *app.App {
	orchestrator := minify.NewOrchestrator(
		h.probe,
		h.preferred,
		h.fallback,
		h.transpiler,
		h.css,
		h.fs,
		h.logger,
		telemetry.NewNoOpTracer(),
	)
	sourceLoader := resolver.NewLoader(resolver.New(filecache.New(h.fs, h.logger), h.logger))

	return app.New(h.loader, orchestrator, sourceLoader, h.logger, h.fs).
		WithLookupEnv(func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		})
}

func TestApp_Minify_DefaultsUseFallback(t *testing.T) {
	h := newHarness(t)
	cfg := domain.DefaultBackendConfig()

	h.loader.EXPECT().Load("", "/proj").Return(cfg, nil)
	h.probe.EXPECT().IsAvailable(gomock.Any(), false, cfg).Return(false)
	h.fallback.EXPECT().Compile(gomock.Any(), cfg, "/proj/www/build/main.js", "/proj/www/build/main.js").Return(nil)
	h.css.EXPECT().Minify(gomock.Any(), "/proj/www/build/main.css").Return(nil)

	bc, err := h.app(nil).Minify(context.Background(), app.MinifyOptions{RootDir: "/proj"})
	require.NoError(t, err)

	assert.Equal(t, "/proj/www/build", bc.BuildDir)
	assert.False(t, bc.PreferredEnabled)
	assert.Equal(t, cfg, bc.Closure)
}

func TestApp_Minify_EnvironmentSettings(t *testing.T) {
	h := newHarness(t)
	cfg := domain.DefaultBackendConfig()

	h.loader.EXPECT().Load("/etc/shrink.yaml", "/proj").Return(cfg, nil)
	h.probe.EXPECT().IsAvailable(gomock.Any(), true, cfg).Return(false)
	h.transpiler.EXPECT().Transpile(gomock.Any(), "/proj/dist/vendor.js", "ECMASCRIPT5").Return(nil)
	h.fallback.EXPECT().Compile(gomock.Any(), cfg, "/proj/dist/vendor.js", "/proj/dist/vendor.js").Return(nil)
	h.css.EXPECT().Minify(gomock.Any(), "/proj/dist/vendor.css").Return(nil)

	a := h.app(map[string]string{
		"SHRINK_ENABLE_CLOSURE":       "1",
		"SHRINK_BUILD_DIR":            "dist",
		"SHRINK_OUTPUT_JS_FILE_NAME":  "vendor.js",
		"SHRINK_OUTPUT_CSS_FILE_NAME": "vendor.css",
		"SHRINK_CLOSURE":              "/etc/shrink.yaml",
	})

	bc, err := a.Minify(context.Background(), app.MinifyOptions{RootDir: "/proj", Downlevel: true})
	require.NoError(t, err)
	assert.True(t, bc.RequiresTranspileDownlevel)
}

func TestApp_Minify_FlagsOverrideEnvironment(t *testing.T) {
	h := newHarness(t)
	cfg := domain.DefaultBackendConfig()

	h.loader.EXPECT().Load("/flag/closure.yaml", "/proj").Return(cfg, nil)
	h.probe.EXPECT().IsAvailable(gomock.Any(), false, cfg).Return(false)
	h.fallback.EXPECT().Compile(gomock.Any(), cfg, "/abs/build/main.js", gomock.Any()).Return(nil)
	h.css.EXPECT().Minify(gomock.Any(), "/abs/build/main.css").Return(nil)

	a := h.app(map[string]string{
		"SHRINK_BUILD_DIR": "dist",
		"SHRINK_CLOSURE":   "/etc/shrink.yaml",
	})

	_, err := a.Minify(context.Background(), app.MinifyOptions{
		RootDir:       "/proj",
		BuildDir:      "/abs/build",
		ClosureConfig: "/flag/closure.yaml",
	})
	require.NoError(t, err)
}

func TestApp_Minify_PreferredClearsDownlevel(t *testing.T) {
	h := newHarness(t)
	cfg := domain.DefaultBackendConfig()
	require.NoError(t, afero.WriteFile(h.fs, "/proj/www/build/main.js", []byte("let a = 1;"), 0o644))

	h.loader.EXPECT().Load("", "/proj").Return(cfg, nil)
	h.probe.EXPECT().IsAvailable(gomock.Any(), true, cfg).Return(true)
	h.preferred.EXPECT().Compile(gomock.Any(), cfg, "/proj/www/build/main.js", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.BackendConfig, _, out string) error {
			return afero.WriteFile(h.fs, out, []byte("var a=1;"), 0o644)
		})
	h.css.EXPECT().Minify(gomock.Any(), gomock.Any()).Return(nil)

	a := h.app(map[string]string{"SHRINK_ENABLE_CLOSURE": "true"})

	bc, err := a.Minify(context.Background(), app.MinifyOptions{RootDir: "/proj", Downlevel: true})
	require.NoError(t, err)
	assert.False(t, bc.RequiresTranspileDownlevel)

	content, err := afero.ReadFile(h.fs, "/proj/www/build/main.js")
	require.NoError(t, err)
	assert.Equal(t, "var a=1;", string(content))
}

func TestApp_Minify_ConfigError(t *testing.T) {
	h := newHarness(t)

	h.loader.EXPECT().Load("", "/proj").Return(domain.BackendConfig{}, errors.New("broken yaml"))

	_, err := h.app(nil).Minify(context.Background(), app.MinifyOptions{RootDir: "/proj"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken yaml")
}

func TestApp_Minify_InvalidEnvironment(t *testing.T) {
	h := newHarness(t)

	_, err := h.app(map[string]string{"SHRINK_ENABLE_CLOSURE": "sometimes"}).
		Minify(context.Background(), app.MinifyOptions{RootDir: "/proj"})

	require.ErrorIs(t, err, domain.ErrEnvParse)
}

func TestApp_Minify_PhaseFailure(t *testing.T) {
	h := newHarness(t)
	cfg := domain.DefaultBackendConfig()

	h.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(cfg, nil)
	h.probe.EXPECT().IsAvailable(gomock.Any(), gomock.Any(), gomock.Any()).Return(false)
	h.fallback.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.ErrFallbackFailed)
	h.css.EXPECT().Minify(gomock.Any(), gomock.Any()).Return(nil)

	_, err := h.app(nil).Minify(context.Background(), app.MinifyOptions{RootDir: "/proj"})

	require.ErrorIs(t, err, domain.ErrMinifyFailed)
	assert.ErrorIs(t, err, domain.ErrFallbackFailed)
}

func TestApp_Resolve(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, afero.WriteFile(h.fs, "/proj/src/main.ts", []byte("export const a = 1;"), 0o644))
	require.NoError(t, afero.WriteFile(h.fs, "/proj/src/main.js", []byte("export const a=1;"), 0o644))
	require.NoError(t, afero.WriteFile(h.fs, "/proj/src/main.js.map",
		[]byte(`{"version":3,"sources":["main.ts"],"names":[],"mappings":"AAAA"}`), 0o644))

	res, err := h.app(nil).Resolve(context.Background(), app.ResolveOptions{Path: "/proj/src/main.ts"})
	require.NoError(t, err)

	assert.Equal(t, "export const a=1;", res.Content)

	var m map[string]any
	require.NoError(t, json.Unmarshal(res.SourceMap, &m))
	assert.Equal(t, []any{"/proj/src/main.ts"}, m["sources"])
	assert.Equal(t, []any{"export const a = 1;"}, m["sourcesContent"])
}

func TestApp_Resolve_SuppliedMapOnMissingCompiledMap(t *testing.T) {
	h := newHarness(t)
	supplied := `{"version":3,"sources":["bundler"],"mappings":""}`
	require.NoError(t, afero.WriteFile(h.fs, "/proj/src/main.ts", []byte("export const a = 1;"), 0o644))
	require.NoError(t, afero.WriteFile(h.fs, "/proj/src/main.js", []byte("export const a=1;"), 0o644))
	require.NoError(t, afero.WriteFile(h.fs, "/proj/in.map", []byte(supplied), 0o644))

	res, err := h.app(nil).Resolve(context.Background(), app.ResolveOptions{
		Path:  "/proj/src/main.ts",
		MapIn: "/proj/in.map",
	})
	require.NoError(t, err)
	assert.JSONEq(t, supplied, string(res.SourceMap))
}

func TestApp_Resolve_WritesMapOut(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, afero.WriteFile(h.fs, "/proj/src/main.ts", []byte("export const a = 1;"), 0o644))
	require.NoError(t, afero.WriteFile(h.fs, "/proj/src/main.js", []byte("export const a=1;"), 0o644))
	require.NoError(t, afero.WriteFile(h.fs, "/proj/src/main.js.map",
		[]byte(`{"version":3,"sources":["main.ts"],"names":[],"mappings":"AAAA"}`), 0o644))

	res, err := h.app(nil).Resolve(context.Background(), app.ResolveOptions{
		Path:   "/proj/src/main.ts",
		MapOut: "/proj/out/main.js.map",
	})
	require.NoError(t, err)

	written, err := afero.ReadFile(h.fs, "/proj/out/main.js.map")
	require.NoError(t, err)
	assert.JSONEq(t, string(res.SourceMap), string(written))
}

func TestApp_Resolve_MapOutWriteFailure(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, afero.WriteFile(h.fs, "/proj/src/main.ts", []byte("export const a = 1;"), 0o644))
	require.NoError(t, afero.WriteFile(h.fs, "/proj/src/main.js", []byte("export const a=1;"), 0o644))
	require.NoError(t, afero.WriteFile(h.fs, "/proj/in.map", []byte(`{"version":3,"sources":[],"mappings":""}`), 0o644))

	ro := h.fs
	h.fs = afero.NewReadOnlyFs(ro)

	_, err := h.app(nil).Resolve(context.Background(), app.ResolveOptions{
		Path:   "/proj/src/main.ts",
		MapIn:  "/proj/in.map",
		MapOut: "/proj/out.map",
	})

	require.ErrorIs(t, err, domain.ErrFileWrite)
}

func TestApp_Resolve_MissingSource(t *testing.T) {
	h := newHarness(t)

	_, err := h.app(nil).Resolve(context.Background(), app.ResolveOptions{Path: "/proj/src/nope.ts"})

	require.ErrorIs(t, err, domain.ErrFileRead)
}

func TestApp_Resolve_MissingCompiledOutput(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, afero.WriteFile(h.fs, "/proj/src/main.ts", []byte("export const a = 1;"), 0o644))

	_, err := h.app(nil).Resolve(context.Background(), app.ResolveOptions{Path: "/proj/src/main.ts"})

	require.ErrorIs(t, err, domain.ErrFileRead)
}
