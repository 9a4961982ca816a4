package config

import (
	"fmt"
	"os"
	"strconv"

	oerrors "github.com/ci4mod/cli/internal/errors"
	"github.com/ci4mod/cli/internal/output"
)

// Environment variables read by Resolve.
const (
	EnvBasePath    = "CI4MOD_BASE_PATH"
	EnvNamespace   = "CI4MOD_NAMESPACE"
	EnvWritePolicy = "CI4MOD_WRITE_POLICY"
	EnvStrictNames = "CI4MOD_STRICT_NAMES"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue records the winning value of one key and any lower
// precedence values it shadowed.
type ResolvedValue struct {
	Key      string
	Value    any
	Source   ConfigSource
	Shadowed map[ConfigSource]any
}

// FlagValues holds command-line values. A nil pointer means the flag was
// not given.
type FlagValues struct {
	Config      *string
	BasePath    *string
	Namespace   *string
	WritePolicy *string
	StrictNames *bool
	Timestamps  *bool
}

// ResolvedConfig is the effective configuration after applying
// precedence: flag > env > config file > default.
type ResolvedConfig struct {
	ConfigPath  string
	BasePath    string
	Namespace   string
	WritePolicy string
	StrictNames bool
	Timestamps  bool

	// Values lists every key with its source, in a fixed order.
	Values []ResolvedValue
}

// candidate is one possible value for a key from one source.
type candidate[T any] struct {
	source ConfigSource
	value  T
	ok     bool
}

// pick returns the first set candidate, falling back to def.
func pick[T any](key string, def T, candidates ...candidate[T]) (T, ResolvedValue) {
	rv := ResolvedValue{Key: key, Shadowed: map[ConfigSource]any{}}
	var (
		result T
		found  bool
	)
	for _, c := range candidates {
		if !c.ok {
			continue
		}
		if !found {
			result, found = c.value, true
			rv.Value, rv.Source = c.value, c.source
			continue
		}
		rv.Shadowed[c.source] = c.value
	}
	if !found {
		result = def
		rv.Value, rv.Source = def, SourceDefault
	} else {
		rv.Shadowed[SourceDefault] = def
	}
	return result, rv
}

func flagString(p *string) candidate[string] {
	if p == nil {
		return candidate[string]{source: SourceFlag}
	}
	return candidate[string]{source: SourceFlag, value: *p, ok: true}
}

func flagBool(p *bool) candidate[bool] {
	if p == nil {
		return candidate[bool]{source: SourceFlag}
	}
	return candidate[bool]{source: SourceFlag, value: *p, ok: true}
}

func envString(name string) candidate[string] {
	v, ok := os.LookupEnv(name)
	return candidate[string]{source: SourceEnv, value: v, ok: ok && v != ""}
}

func envBool(name string) (candidate[bool], error) {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return candidate[bool]{source: SourceEnv}, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return candidate[bool]{}, oerrors.NewValidationError(
			fmt.Sprintf("invalid boolean %q in %s", v, name), name, "Use true or false.")
	}
	return candidate[bool]{source: SourceEnv, value: b, ok: true}, nil
}

func configString(v string) candidate[string] {
	return candidate[string]{source: SourceConfig, value: v, ok: v != ""}
}

func configBool(p *bool) candidate[bool] {
	if p == nil {
		return candidate[bool]{source: SourceConfig}
	}
	return candidate[bool]{source: SourceConfig, value: *p, ok: true}
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) CI4MOD_CONFIG env, (3) ~/.ci4mod/config.yaml.
func ResolveConfigPath(flag *string) (string, ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return "", ResolvedValue{}, fmt.Errorf("resolving default config path: %w", err)
	}

	path, rv := pick("config", paths.ConfigFile, flagString(flag), envString(EnvConfig))
	return path, rv, nil
}

// Resolve loads the config file and applies flag and env precedence to
// every key.
func Resolve(flags FlagValues) (*ResolvedConfig, error) {
	configPath, configRV, err := ResolveConfigPath(flags.Config)
	if err != nil {
		return nil, err
	}

	cfg, err := NewLoader().Load(configPath)
	if err != nil {
		return nil, err
	}

	return ResolveWith(flags, configPath, configRV, cfg)
}

// ResolveWith applies precedence over an already loaded Config.
func ResolveWith(flags FlagValues, configPath string, configRV ResolvedValue, cfg *Config) (*ResolvedConfig, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	envStrict, err := envBool(EnvStrictNames)
	if err != nil {
		return nil, err
	}

	rc := &ResolvedConfig{ConfigPath: configPath}
	var rv ResolvedValue
	rc.Values = append(rc.Values, configRV)

	rc.BasePath, rv = pick("basePath", DefaultBasePath,
		flagString(flags.BasePath), envString(EnvBasePath), configString(cfg.BasePath))
	rc.Values = append(rc.Values, rv)

	rc.Namespace, rv = pick("namespace", DefaultNamespace,
		flagString(flags.Namespace), envString(EnvNamespace), configString(cfg.Namespace))
	rc.Values = append(rc.Values, rv)

	rc.WritePolicy, rv = pick("writePolicy", DefaultWritePolicy,
		flagString(flags.WritePolicy), envString(EnvWritePolicy), configString(cfg.WritePolicy))
	rc.Values = append(rc.Values, rv)

	rc.StrictNames, rv = pick("strictNames", false,
		flagBool(flags.StrictNames), envStrict, configBool(cfg.StrictNames))
	rc.Values = append(rc.Values, rv)

	rc.Timestamps, rv = pick("log.timestamps", true,
		flagBool(flags.Timestamps), configBool(cfg.Log.Timestamps))
	rc.Values = append(rc.Values, rv)

	return rc, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
