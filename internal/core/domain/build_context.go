package domain

import "path/filepath"

// BuildContext carries the state shared by every minification call of one build.
//
// The orchestrator is the only writer, and the only mutation it performs is
// turning RequiresTranspileDownlevel off after both branches settled.
type BuildContext struct {
	RootDir           string
	BuildDir          string
	OutputJSFileName  string
	OutputCSSFileName string

	// RequiresTranspileDownlevel is set when the bundle still contains syntax
	// newer than the configured output language level.
	RequiresTranspileDownlevel bool

	// PreferredEnabled gates any attempt to use the preferred backend.
	PreferredEnabled bool

	// Closure is the resolved preferred backend configuration.
	Closure BackendConfig
}

// JSBundlePath returns the path of the JS bundle inside the build directory.
func (c *BuildContext) JSBundlePath() string {
	return filepath.Join(c.BuildDir, c.OutputJSFileName)
}

// CSSBundlePath returns the path of the CSS bundle inside the build directory.
func (c *BuildContext) CSSBundlePath() string {
	return filepath.Join(c.BuildDir, c.OutputCSSFileName)
}

// JSOutcome is the status returned by the JS branch of a minification run.
type JSOutcome struct {
	Backend BackendKind
	// DownlevelSatisfied is true when the produced bundle already targets the
	// configured output language level.
	DownlevelSatisfied bool
}

// Apply merges a JS outcome into the context. The downlevel flag only ever
// goes from true to false.
func (c *BuildContext) Apply(o JSOutcome) {
	if o.DownlevelSatisfied {
		c.RequiresTranspileDownlevel = false
	}
}
