package config

// Config is the root configuration for the scaffolder. Every field has a
// default that reproduces the stock no-argument behavior, so running with
// no config file and no environment is fully specified.
type Config struct {
	Project ProjectConfig `mapstructure:"project"`
	Output  OutputConfig  `mapstructure:"output"`
	Git     GitConfig     `mapstructure:"git"`
	Store   StoreConfig   `mapstructure:"store"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ProjectConfig names the generated project.
type ProjectConfig struct {
	Name string `mapstructure:"name"`
}

// OutputConfig controls where the project is scaffolded.
type OutputConfig struct {
	Directory string `mapstructure:"directory"`
}

// GitConfig controls repository initialization of the generated tree.
type GitConfig struct {
	Init bool `mapstructure:"init"`
}

// StoreConfig controls the opt-in scaffold run ledger.
type StoreConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// LoggingConfig controls structured operational logging.
type LoggingConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Level   string `mapstructure:"level"`
	Format  string `mapstructure:"format"`
}
