// Package config holds the treedec command line configuration: defaults
// registered with viper, validation, logger construction and YAML rendering.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. TREEDEC_DECOMPOSE_KIND.
const EnvPrefix = "TREEDEC"

// ErrInvalidConfig is the cause of every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config represents the complete treedec configuration
type Config struct {
	Decompose     DecomposeConfig     `mapstructure:"decompose" yaml:"decompose"`
	Logging       LoggingConfig       `mapstructure:"logging" yaml:"logging"`
	Observability ObservabilityConfig `mapstructure:"observability" yaml:"observability"`
}

// DecomposeConfig selects the decomposer and its manipulation pipeline
type DecomposeConfig struct {
	// Kind is one of "tree", "path", "graph"
	Kind string `mapstructure:"kind" yaml:"kind"`
	// Ordering is "natural" or "file:<path>" (YAML list of vertices)
	Ordering string `mapstructure:"ordering" yaml:"ordering"`
	// Jobs bounds the number of input files decomposed in parallel
	Jobs int `mapstructure:"jobs" yaml:"jobs"`

	Normalize           bool `mapstructure:"normalize" yaml:"normalize"`
	EmptyRoot           bool `mapstructure:"empty_root" yaml:"empty_root"`
	EmptyLeaves         bool `mapstructure:"empty_leaves" yaml:"empty_leaves"`
	IdenticalJoinParent bool `mapstructure:"identical_join_parent" yaml:"identical_join_parent"`
	LeavesAsIntroduce   bool `mapstructure:"leaves_as_introduce" yaml:"leaves_as_introduce"`

	// Compress removes nodes whose bag is contained in a neighbour's bag
	Compress bool `mapstructure:"compress" yaml:"compress"`
	// MaxChildren splits join nodes with more children (0 = unlimited, else >= 2)
	MaxChildren int `mapstructure:"max_children" yaml:"max_children"`

	Induced  bool `mapstructure:"induced" yaml:"induced"`
	Covering bool `mapstructure:"covering" yaml:"covering"`
}

// LoggingConfig controls the zap logger
type LoggingConfig struct {
	// Level is a zap level name: debug, info, warn, error
	Level string `mapstructure:"level" yaml:"level"`
	// Format is "console" or "json"
	Format string `mapstructure:"format" yaml:"format"`
}

// ObservabilityConfig toggles tracing and metrics output
type ObservabilityConfig struct {
	// Trace exports spans to stdout
	Trace bool `mapstructure:"trace" yaml:"trace"`
	// Metrics logs the gathered prometheus samples at exit
	Metrics bool `mapstructure:"metrics" yaml:"metrics"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Decompose: DecomposeConfig{
			Kind:     "tree",
			Ordering: "natural",
			Jobs:     4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// SetDefaults registers default values with v and enables TREEDEC_*
// environment overrides.
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("decompose.kind", d.Decompose.Kind)
	v.SetDefault("decompose.ordering", d.Decompose.Ordering)
	v.SetDefault("decompose.jobs", d.Decompose.Jobs)
	v.SetDefault("decompose.normalize", d.Decompose.Normalize)
	v.SetDefault("decompose.empty_root", d.Decompose.EmptyRoot)
	v.SetDefault("decompose.empty_leaves", d.Decompose.EmptyLeaves)
	v.SetDefault("decompose.identical_join_parent", d.Decompose.IdenticalJoinParent)
	v.SetDefault("decompose.leaves_as_introduce", d.Decompose.LeavesAsIntroduce)
	v.SetDefault("decompose.compress", d.Decompose.Compress)
	v.SetDefault("decompose.max_children", d.Decompose.MaxChildren)
	v.SetDefault("decompose.induced", d.Decompose.Induced)
	v.SetDefault("decompose.covering", d.Decompose.Covering)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	v.SetDefault("observability.trace", d.Observability.Trace)
	v.SetDefault("observability.metrics", d.Observability.Metrics)

	v.SetEnvPrefix(EnvPrefix)
	// decompose.kind <- TREEDEC_DECOMPOSE_KIND
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// ReadFile loads path into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)

	return errors.Wrapf(v.ReadInConfig(), "read config %s", path)
}

// Load reads the configuration from v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks enumerations and ranges.
func (c *Config) Validate() error {
	switch c.Decompose.Kind {
	case "tree", "path", "graph":
	default:
		return errors.Wrapf(ErrInvalidConfig, "decompose.kind %q", c.Decompose.Kind)
	}
	if c.Decompose.Ordering != "natural" && !strings.HasPrefix(c.Decompose.Ordering, OrderingFilePrefix) {
		return errors.Wrapf(ErrInvalidConfig, "decompose.ordering %q", c.Decompose.Ordering)
	}
	if c.Decompose.Jobs < 1 {
		return errors.Wrapf(ErrInvalidConfig, "decompose.jobs %d < 1", c.Decompose.Jobs)
	}
	if c.Decompose.MaxChildren == 1 || c.Decompose.MaxChildren < 0 {
		return errors.Wrapf(ErrInvalidConfig, "decompose.max_children %d", c.Decompose.MaxChildren)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return errors.Wrapf(ErrInvalidConfig, "logging.format %q", c.Logging.Format)
	}
	if _, err := parseLevel(c.Logging.Level); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "logging.level %q", c.Logging.Level)
	}

	return nil
}

// Render returns c as YAML.
func Render(c *Config) ([]byte, error) {
	out, err := yaml.Marshal(c)

	return out, errors.Wrap(err, "render config")
}
