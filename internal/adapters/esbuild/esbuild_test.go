package esbuild_test

import (
	"context"
	"strings"
	"testing"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shrink/internal/adapters/esbuild"
	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/shrink/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const bundle = `
// app bundle
function add(first, second) {
    var total = first + second;
    return total;
}
console.log(add(1, 2));
`

func newLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return mockLogger
}

func TestMinifier_Compile_InPlace(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/build/main.js", []byte(bundle), 0o644))

	m := esbuild.NewMinifier(fs, newLogger(t))
	require.NoError(t, m.Compile(context.Background(), domain.DefaultBackendConfig(), "/build/main.js", "/build/main.js"))

	out, err := afero.ReadFile(fs, "/build/main.js")
	require.NoError(t, err)

	assert.Less(t, len(out), len(bundle))
	assert.NotContains(t, string(out), "// app bundle")
	assert.NotContains(t, string(out), "    ")
	assert.Contains(t, string(out), "console.log")
}

func TestMinifier_Compile_SyntaxError(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/build/main.js", []byte("function ( {"), 0o644))

	m := esbuild.NewMinifier(fs, newLogger(t))
	err := m.Compile(context.Background(), domain.DefaultBackendConfig(), "/build/main.js", "/build/main.js")

	require.ErrorIs(t, err, domain.ErrFallbackFailed)

	// The bundle is left untouched when minification fails.
	out, readErr := afero.ReadFile(fs, "/build/main.js")
	require.NoError(t, readErr)
	assert.Equal(t, "function ( {", string(out))
}

func TestMinifier_Compile_MissingBundle(t *testing.T) {
	m := esbuild.NewMinifier(afero.NewMemMapFs(), newLogger(t))

	err := m.Compile(context.Background(), domain.DefaultBackendConfig(), "/build/main.js", "/build/main.js")

	require.ErrorIs(t, err, domain.ErrFallbackFailed)
}

func TestTranspiler_Transpile_LowersSyntax(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/build/main.js", []byte("function sq(x) { return x ** 2; }\n"), 0o644))

	tr := esbuild.NewTranspiler(fs, newLogger(t))
	require.NoError(t, tr.Transpile(context.Background(), "/build/main.js", "ECMASCRIPT_2015"))

	out, err := afero.ReadFile(fs, "/build/main.js")
	require.NoError(t, err)
	assert.Contains(t, string(out), "Math.pow")
	assert.NotContains(t, string(out), "**")
}

func TestTranspiler_Transpile_UnknownLevel(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/build/main.js", []byte("var a = 1;"), 0o644))

	tr := esbuild.NewTranspiler(fs, newLogger(t))
	err := tr.Transpile(context.Background(), "/build/main.js", "COBOL")

	require.ErrorIs(t, err, domain.ErrTranspileFailed)
}

func TestTarget(t *testing.T) {
	tests := []struct {
		level string
		want  api.Target
	}{
		{"ECMASCRIPT5", api.ES5},
		{"ecmascript5", api.ES5},
		{"ECMASCRIPT6", api.ES2015},
		{"ECMASCRIPT_2015", api.ES2015},
		{"ECMASCRIPT_2020", api.ES2020},
		{" ECMASCRIPT_NEXT ", api.ESNext},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.level), func(t *testing.T) {
			got, err := esbuild.Target(tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := esbuild.Target("")
	assert.Error(t, err)
}
