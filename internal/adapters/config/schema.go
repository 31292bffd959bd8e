package config

// FileName is the project config file discovered from the root directory upwards.
const FileName = "shrink.yaml"

// Shrinkfile represents the structure of the shrink.yaml configuration file.
type Shrinkfile struct {
	Version string     `yaml:"version"`
	Closure ClosureDTO `yaml:"closure"`
}

// ClosureDTO holds user overrides for the preferred backend. Empty fields keep
// the built-in defaults.
type ClosureDTO struct {
	JavaExecutable string `yaml:"javaExecutable"`
	CompilerJar    string `yaml:"compilerJar"`
	Optimization   string `yaml:"optimization"`
	LanguageIn     string `yaml:"languageIn"`
	LanguageOut    string `yaml:"languageOut"`
}
