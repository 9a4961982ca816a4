// Package config provides configuration loading and management.
package config

// Default values used when neither flags, environment nor config file set a key.
const (
	DefaultBasePath    = "app/Modules"
	DefaultNamespace   = `App\Modules`
	DefaultWritePolicy = "overwrite"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Nil means on.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config is the content of the ci4mod config file.
type Config struct {
	// BasePath is the directory that contains all modules.
	// Env: CI4MOD_BASE_PATH
	BasePath string `mapstructure:"basePath" yaml:"basePath,omitempty"`

	// Namespace is the PHP namespace matching BasePath.
	// Env: CI4MOD_NAMESPACE
	Namespace string `mapstructure:"namespace" yaml:"namespace,omitempty"`

	// WritePolicy is "overwrite" or "skip".
	// Env: CI4MOD_WRITE_POLICY
	WritePolicy string `mapstructure:"writePolicy" yaml:"writePolicy,omitempty"`

	// StrictNames rejects module names outside [A-Za-z0-9_].
	// Env: CI4MOD_STRICT_NAMES
	StrictNames *bool `mapstructure:"strictNames" yaml:"strictNames,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with every key set to its default.
// Used by `ci4mod config init`.
func DefaultConfig() *Config {
	strict := false
	timestamps := true
	return &Config{
		BasePath:    DefaultBasePath,
		Namespace:   DefaultNamespace,
		WritePolicy: DefaultWritePolicy,
		StrictNames: &strict,
		Log:         LogConfig{Timestamps: &timestamps},
	}
}
