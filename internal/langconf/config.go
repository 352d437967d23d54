// Package langconf loads a driver's synthesis parameters and example
// table from a YAML file, the same YAML-first configuration style
// internal/ext/config.go's funxy.yaml loader uses for its own external
// configuration surface.
package langconf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kolmogorov-synth/kolmogorov/internal/synth"
	"github.com/kolmogorov-synth/kolmogorov/internal/term"
)

// Bias names the SizeBias kinds a config file may select (spec §6,
// "bias: one of {Flat, DistAbs{mean,c}, ...}").
type Bias struct {
	Kind string  `yaml:"kind"`
	Mean float64 `yaml:"mean,omitempty"`
	C    float64 `yaml:"c,omitempty"`
}

func (b Bias) resolve() (synth.SizeBias, error) {
	switch b.Kind {
	case "", "flat":
		return synth.Flat{}, nil
	case "dist_abs":
		return synth.DistAbs{Mean: b.Mean, C: b.C}, nil
	default:
		return nil, fmt.Errorf("langconf: unknown bias kind %q", b.Kind)
	}
}

// Example is one input/output pair, written as bare integers in YAML.
type Example struct {
	Args []int32 `yaml:"args"`
	Want int32   `yaml:"want"`
}

// Config is the top-level driver configuration file (spec §6, "Synthesis
// parameters (configuration struct)").
type Config struct {
	Iterations  int       `yaml:"iterations"`
	ScoreFactor float64   `yaml:"score_factor"`
	Bias        Bias      `yaml:"bias"`
	PrintFreq   int       `yaml:"print_freq"`
	Seed        string    `yaml:"seed"`
	Examples    []Example `yaml:"examples"`
}

// Load reads and parses a driver config file from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("langconf: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses config YAML from bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("langconf: parsing config: %w", err)
	}
	cfg.setDefaults()
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.ScoreFactor == 0 {
		c.ScoreFactor = 0.5
	}
	if c.PrintFreq == 0 {
		c.PrintFreq = 100
	}
}

// Parameters converts Config into the synth.Parameters the drivers
// expect, resolving the Bias selector into a concrete synth.SizeBias.
func (c *Config) Parameters() (synth.Parameters, error) {
	bias, err := c.Bias.resolve()
	if err != nil {
		return synth.Parameters{}, err
	}
	return synth.Parameters{
		Iterations:  c.Iterations,
		ScoreFactor: c.ScoreFactor,
		Bias:        bias,
		PrintFreq:   c.PrintFreq,
	}, nil
}

// SimpleMapExamples converts Config.Examples into synth.Example values
// for the single-input-argument common case plus an arbitrary arity one.
func (c *Config) SimpleMapExamples() []synth.Example {
	out := make([]synth.Example, 0, len(c.Examples))
	for _, e := range c.Examples {
		args := make([]term.Value, len(e.Args))
		for i, a := range e.Args {
			args[i] = term.IntValue(a)
		}
		out = append(out, synth.Example{Args: args, Want: term.IntValue(e.Want)})
	}
	return out
}

// Sequence converts Config.Examples' Want fields into a flat value
// sequence for the Iterative driver (spec §4.7's step-function scorer),
// in example order; nothing is prepended to it.
func (c *Config) Sequence() []term.Value {
	out := make([]term.Value, 0, len(c.Examples))
	for _, e := range c.Examples {
		out = append(out, term.IntValue(e.Want))
	}
	return out
}
