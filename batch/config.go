// Package batch runs many independent solves, each (puzzle, strategy) pair
// on its own Problem, across a bounded worker pool.
package batch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/watersort/puzzle"
	"github.com/katalvlaran/watersort/solver"
)

var (
	// ErrInvalidConfig wraps every Config validation failure.
	ErrInvalidConfig = errors.New("batch: invalid config")
)

// Puzzle is one named initial state.
type Puzzle struct {
	Name  string `yaml:"name"`
	State string `yaml:"state"`
}

// Config describes a batch run.
//
//	workers: 4
//	strategies: [BF, UC, AS1]
//	heuristic: mixed
//	dedup: false
//	max_expansions: 200000
//	timeout: 30s
//	puzzles:
//	  - name: trivial
//	    state: "ab;ba;ee"
type Config struct {
	Workers       int           `yaml:"workers"`
	Strategies    []string      `yaml:"strategies"`
	Heuristic     string        `yaml:"heuristic"`
	Dedup         bool          `yaml:"dedup"`
	MaxExpansions int           `yaml:"max_expansions"`
	Timeout       time.Duration `yaml:"timeout"`
	Puzzles       []Puzzle      `yaml:"puzzles"`
}

// Defaults applied to zero-valued fields.
const (
	DefaultHeuristic     = "zero"
	DefaultMaxExpansions = 1_000_000
)

// LoadFile reads a YAML config from path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Load decodes a YAML config, rejecting unknown keys, then applies
// defaults and validates it.
func Load(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}
	if len(c.Strategies) == 0 {
		c.Strategies = []string{"BF"}
	}
	if c.Heuristic == "" {
		c.Heuristic = DefaultHeuristic
	}
	if c.MaxExpansions == 0 {
		c.MaxExpansions = DefaultMaxExpansions
	}
	for i := range c.Puzzles {
		if c.Puzzles[i].Name == "" {
			c.Puzzles[i].Name = fmt.Sprintf("puzzle-%d", i)
		}
	}
}

// Validate checks every field and reports the first problem found.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive (%d)", ErrInvalidConfig, c.Workers)
	}
	if c.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions cannot be negative (%d)", ErrInvalidConfig, c.MaxExpansions)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout cannot be negative (%s)", ErrInvalidConfig, c.Timeout)
	}
	if len(c.Strategies) == 0 {
		return fmt.Errorf("%w: no strategies", ErrInvalidConfig)
	}
	for _, code := range c.Strategies {
		if _, err := solver.ParseStrategy(code); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if _, err := puzzle.HeuristicByName(c.Heuristic); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if len(c.Puzzles) == 0 {
		return fmt.Errorf("%w: no puzzles", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(c.Puzzles))
	for _, p := range c.Puzzles {
		if seen[p.Name] {
			return fmt.Errorf("%w: duplicate puzzle name %q", ErrInvalidConfig, p.Name)
		}
		seen[p.Name] = true
		if _, err := puzzle.Parse(p.State); err != nil {
			return fmt.Errorf("%w: puzzle %q: %w", ErrInvalidConfig, p.Name, err)
		}
	}
	return nil
}
