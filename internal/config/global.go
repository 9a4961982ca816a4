package config

// GlobalConfig holds CLI-wide configuration resolved during
// PersistentPreRunE. It is populated once at startup and passed explicitly
// into every sub-command constructor.
type GlobalConfig struct {
	// File is the loaded config file content. It is empty when the file
	// does not exist or could not be read.
	File *Config

	// ConfigPath is the resolved --config path.
	ConfigPath string

	// ConfigValue records where ConfigPath came from.
	ConfigValue ResolvedValue

	// Resolved is the configuration resolved with the global flags only.
	// Nil until the root command's pre-run has completed.
	Resolved *ResolvedConfig

	// Timestamps is the --timestamps value when given explicitly.
	Timestamps *bool

	Verbose bool
}

// Resolve applies command-specific flags on top of the loaded config file.
// The root-level timestamps flag from the pre-run is carried over unless
// fv sets it.
func (g *GlobalConfig) Resolve(fv FlagValues) (*ResolvedConfig, error) {
	if fv.Timestamps == nil {
		fv.Timestamps = g.Timestamps
	}
	return ResolveWith(fv, g.ConfigPath, g.ConfigValue, g.File)
}
