/*
Package config holds the engine-wide defaults a combinatorial run is
parameterized by: the cycle enumerator's randomized-mode staling cutoff,
a hard cap on the number of constructs a simulation will return, and a
minimum construct length applied to each record after assembly.

Grounded on _examples/JaneliaSciComp-repp/internal/config/config.go's
viper.SetConfigFile + viper.Unmarshal pattern, trimmed down: this module
has no CLI (spec.md §1 places argument parsing out of scope), so there is
no mapstructure/go-homedir-driven "--config" flag merge, only a direct
path-or-defaults load.
*/
package config

import (
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// Defaults holds the tunable knobs a Simulation is run with when the
// caller does not override them explicitly.
type Defaults struct {
	// StalingCutoff is the number of consecutive already-seen (or
	// dead-end) walks cycle.Randomized tolerates before stopping.
	StalingCutoff int `mapstructure:"staling-cutoff" yaml:"staling-cutoff"`

	// MaxConstructs caps the number of assembled constructs a Simulation
	// returns, regardless of how many more the enumerator could produce.
	MaxConstructs int `mapstructure:"max-constructs" yaml:"max-constructs"`

	// MinConstructLength is the minimum length, in bases, of an assembled
	// construct to be reported.
	MinConstructLength int `mapstructure:"min-construct-length" yaml:"min-construct-length"`
}

// Default returns the built-in defaults, used whenever no config file is
// supplied.
func Default() Defaults {
	return Defaults{
		StalingCutoff:      50,
		MaxConstructs:      10000,
		MinConstructLength: 1,
	}
}

// Load reads Defaults from a YAML file at path, via viper, falling back to
// Default() for any field the file doesn't set.
func Load(path string) (Defaults, error) {
	d := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Defaults{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := v.Unmarshal(&d); err != nil {
		return Defaults{}, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	return d, nil
}

// Dump renders d as a YAML document, e.g. for writing out a starter config
// file seeded from the built-in defaults. Marshaled directly with
// gopkg.in/yaml.v2 rather than round-tripped through viper, which has no
// symmetric "write config" API of its own.
func Dump(d Defaults) ([]byte, error) {
	out, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("config: encoding defaults: %w", err)
	}
	return out, nil
}
