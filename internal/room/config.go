package room

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config controls a generation run.
type Config struct {
	// N is the room side length and the maximum stack height.
	N       int
	Pattern Pattern
	// Flips is the number of free moves; negative means N³.
	Flips int

	Seed    int64
	UseSeed bool

	// CheckpointEvery is the snapshot interval K; 0 keeps only the first
	// and last snapshots.
	CheckpointEvery int
	// LogEvery is the progress-line interval; 0 disables intermediate lines.
	LogEvery int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		N:               16,
		Pattern:         PatternRandomHalf,
		Flips:           1000,
		Seed:            314,
		UseSeed:         false,
		CheckpointEvery: 1000,
		LogEvery:        100,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.N <= 0 {
		return fmt.Errorf("n=%d: %w", c.N, ErrInvalidSize)
	}
	if _, err := ParsePattern(string(c.Pattern)); err != nil {
		return err
	}
	if c.CheckpointEvery < 0 {
		return fmt.Errorf("checkpoint_every=%d: %w", c.CheckpointEvery, ErrInvalidConfig)
	}
	if c.LogEvery < 0 {
		return fmt.Errorf("log_every=%d: %w", c.LogEvery, ErrInvalidConfig)
	}
	return nil
}

// Budget derives the iteration budget for this configuration.
func (c Config) Budget() Budget { return BudgetFor(c.N, c.Pattern, c.Flips) }

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults; an unknown pattern is kept verbatim
// so Validate can reject it.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.N = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok && v != "" {
		c.Pattern = Pattern(v)
	}
	if v, ok := cfg["flips"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Flips = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
			c.UseSeed = true
		}
	}
	if v, ok := cfg["checkpoint_every"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.CheckpointEvery = parsed
		}
	}
	if v, ok := cfg["log_every"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.LogEvery = parsed
		}
	}
	return c
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.N, "n", c.N, "room size")
	fs.Func("pattern", fmt.Sprintf("initialization pattern %v (default %q)", Patterns(), c.Pattern), func(v string) error {
		p, err := ParsePattern(v)
		if err != nil {
			return err
		}
		c.Pattern = p
		return nil
	})
	fs.IntVar(&c.Flips, "flips", c.Flips, "number of random flips (negative: room volume)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, used with -use-seed")
	fs.BoolVar(&c.UseSeed, "use-seed", c.UseSeed, "seed the generator for reproducible runs")
	fs.IntVar(&c.CheckpointEvery, "checkpoint-every", c.CheckpointEvery, "iterations between snapshots (0: first and last only)")
	fs.IntVar(&c.LogEvery, "log-every", c.LogEvery, "iterations between progress lines (0: none)")
}

// fileConfig is the JSON schema of a config file. Omitted fields keep the
// values of the config being overlaid.
type fileConfig struct {
	N               *int    `json:"n,omitempty"`
	Pattern         *string `json:"pattern,omitempty"`
	Flips           *int    `json:"flips,omitempty"`
	Seed            *int64  `json:"seed,omitempty"`
	UseSeed         *bool   `json:"use_seed,omitempty"`
	CheckpointEvery *int    `json:"checkpoint_every,omitempty"`
	LogEvery        *int    `json:"log_every,omitempty"`
}

const maxConfigFileSize = 1 << 20

// LoadConfigFile overlays the JSON file at path on DefaultConfig and
// validates the result.
func LoadConfigFile(path string) (Config, error) {
	c := DefaultConfig()
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return c, fmt.Errorf("config file must have .json extension, got %q", ext)
	}
	info, err := os.Stat(cleanPath)
	if err != nil {
		return c, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigFileSize {
		return c, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return c, fmt.Errorf("failed to read config file: %w", err)
	}
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return c, fmt.Errorf("failed to parse config file: %w", err)
	}
	fc.applyTo(&c)
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("config file %s: %w", cleanPath, err)
	}
	return c, nil
}

func (fc fileConfig) applyTo(c *Config) {
	if fc.N != nil {
		c.N = *fc.N
	}
	if fc.Pattern != nil {
		c.Pattern = Pattern(*fc.Pattern)
	}
	if fc.Flips != nil {
		c.Flips = *fc.Flips
	}
	if fc.Seed != nil {
		c.Seed = *fc.Seed
	}
	if fc.UseSeed != nil {
		c.UseSeed = *fc.UseSeed
	}
	if fc.CheckpointEvery != nil {
		c.CheckpointEvery = *fc.CheckpointEvery
	}
	if fc.LogEvery != nil {
		c.LogEvery = *fc.LogEvery
	}
}
