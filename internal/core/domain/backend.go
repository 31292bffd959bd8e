package domain

// BackendKind identifies which JS minifier backend handles a run.
type BackendKind int

const (
	// BackendFallback is the in-process minifier that is always available.
	BackendFallback BackendKind = iota
	// BackendPreferred is the external compiler that needs a Java runtime.
	BackendPreferred
)

func (k BackendKind) String() string {
	switch k {
	case BackendPreferred:
		return "closure"
	case BackendFallback:
		return "esbuild"
	default:
		return "unknown"
	}
}

// BackendConfig is the resolved configuration of the preferred backend.
// It is read-only after construction.
type BackendConfig struct {
	JavaExecutable string `yaml:"javaExecutable"`
	CompilerJar    string `yaml:"compilerJar"`
	Optimization   string `yaml:"optimization"`
	LanguageIn     string `yaml:"languageIn"`
	LanguageOut    string `yaml:"languageOut"`
}

// DefaultBackendConfig returns the built-in defaults.
func DefaultBackendConfig() BackendConfig {
	return BackendConfig{
		JavaExecutable: "java",
		CompilerJar:    "node_modules/google-closure-compiler/compiler.jar",
		Optimization:   "SIMPLE_OPTIMIZATIONS",
		LanguageIn:     "ECMASCRIPT6",
		LanguageOut:    "ECMASCRIPT5",
	}
}

// Merge returns c with every non-empty field of override applied on top.
func (c BackendConfig) Merge(override BackendConfig) BackendConfig {
	if override.JavaExecutable != "" {
		c.JavaExecutable = override.JavaExecutable
	}
	if override.CompilerJar != "" {
		c.CompilerJar = override.CompilerJar
	}
	if override.Optimization != "" {
		c.Optimization = override.Optimization
	}
	if override.LanguageIn != "" {
		c.LanguageIn = override.LanguageIn
	}
	if override.LanguageOut != "" {
		c.LanguageOut = override.LanguageOut
	}
	return c
}

// Backend is the backend chosen for one run.
type Backend struct {
	Kind   BackendKind
	Config BackendConfig
}

// SelectBackend picks the preferred backend only when it is both enabled and
// available. It never retries or mixes backends.
func SelectBackend(enabled, available bool, cfg BackendConfig) Backend {
	if enabled && available {
		return Backend{Kind: BackendPreferred, Config: cfg}
	}
	return Backend{Kind: BackendFallback, Config: cfg}
}
