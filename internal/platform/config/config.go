// internal/platform/config/config.go

// Package config layers configuration sources: defaults, optional YAML
// file, MIRAGE_* environment variables, then CLI flags. Later layers win.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"mirage/internal/core/domain"
	"mirage/internal/core/ports"
)

type Config struct {
	// Target
	Target  string `yaml:"target"`
	Company string `yaml:"company"`

	// Scan shape
	Modules    []string `yaml:"modules"`
	DeepScan   bool     `yaml:"deep_scan"`
	Stealth    bool     `yaml:"stealth"`
	Aggressive bool     `yaml:"aggressive"`

	// Execution
	Seed      int64 `yaml:"seed"`
	Workers   int   `yaml:"workers"`
	BatchSize int   `yaml:"batch_size"`
	TimeoutS  int   `yaml:"timeout"` // seconds (0 = no timeout)
	CacheSize int   `yaml:"cache_size"`

	// IO
	OutputDir string   `yaml:"output_dir"`
	Formats   []string `yaml:"formats"`
	NoUI      bool     `yaml:"no_ui"`
	LogLevel  string   `yaml:"log_level"`

	// Version handling
	PrintVersion bool `yaml:"-"`

	// ConfigFile path, flags/env only
	ConfigFile string `yaml:"-"`
}

// DefaultConfig returns the baseline layer.
func DefaultConfig() Config {
	return Config{
		Target:    "",
		Company:   "",
		Modules:   nil, // nil = all registered modules
		Seed:      0,   // 0 = time-based
		Workers:   3,
		BatchSize: 25,
		TimeoutS:  0,
		CacheSize: 100,
		OutputDir: "mirage_out",
		Formats:   []string{"json"},
		LogLevel:  "info",
	}
}

// Load builds the effective configuration. Precedence, lowest first:
// defaults, YAML file, environment, flags.
func Load(args []string) (Config, error) {
	cfg := DefaultConfig()

	// The file path itself can come from env or flags, so peek at both
	// before applying the file layer.
	path := getenv("MIRAGE_CONFIG", "")
	if p := peekConfigFlag(args); p != "" {
		path = p
	}
	if path != "" {
		if err := loadFromFile(&cfg, path); err != nil {
			return cfg, err
		}
	}

	loadFromEnv(&cfg)
	if err := loadFromFlags(&cfg, args); err != nil {
		return cfg, err
	}

	normalize(&cfg)
	return cfg, nil
}

// loadFromFile overlays values from a YAML file.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	cfg.ConfigFile = path
	return nil
}

// loadFromEnv overlays MIRAGE_* environment variables.
func loadFromEnv(cfg *Config) {
	if v := getenv("MIRAGE_TARGET", ""); v != "" {
		cfg.Target = v
	}
	if v := getenv("MIRAGE_COMPANY", ""); v != "" {
		cfg.Company = v
	}
	if v := getenv("MIRAGE_MODULES", ""); v != "" {
		cfg.Modules = splitList(v)
	}
	if v := getenv("MIRAGE_DEEP", ""); v != "" {
		cfg.DeepScan = parseBool(v)
	}
	if v := getenv("MIRAGE_STEALTH", ""); v != "" {
		cfg.Stealth = parseBool(v)
	}
	if v := getenv("MIRAGE_AGGRESSIVE", ""); v != "" {
		cfg.Aggressive = parseBool(v)
	}
	if v := getenv("MIRAGE_SEED", ""); v != "" {
		cfg.Seed = parseInt64(v, cfg.Seed)
	}
	if v := getenv("MIRAGE_WORKERS", ""); v != "" {
		cfg.Workers = parseInt(v, cfg.Workers)
	}
	if v := getenv("MIRAGE_BATCH_SIZE", ""); v != "" {
		cfg.BatchSize = parseInt(v, cfg.BatchSize)
	}
	if v := getenv("MIRAGE_TIMEOUT", ""); v != "" {
		cfg.TimeoutS = parseInt(v, cfg.TimeoutS)
	}
	if v := getenv("MIRAGE_CACHE_SIZE", ""); v != "" {
		cfg.CacheSize = parseInt(v, cfg.CacheSize)
	}
	if v := getenv("MIRAGE_OUTPUT_DIR", ""); v != "" {
		cfg.OutputDir = v
	}
	if v := getenv("MIRAGE_FORMATS", ""); v != "" {
		cfg.Formats = splitList(v)
	}
	if v := getenv("MIRAGE_NO_UI", ""); v != "" {
		cfg.NoUI = parseBool(v)
	}
	if v := getenv("MIRAGE_LOG_LEVEL", ""); v != "" {
		cfg.LogLevel = v
	}
}

// loadFromFlags overlays CLI flags, the highest-precedence layer.
func loadFromFlags(cfg *Config, args []string) error {
	fs := pflag.NewFlagSet("mirage", pflag.ContinueOnError)

	fs.StringVarP(&cfg.Target, "target", "t", cfg.Target, "Target domain (e.g. example.com)")
	fs.StringVarP(&cfg.Company, "company", "c", cfg.Company, "Target company name")
	fs.StringSliceVarP(&cfg.Modules, "modules", "m", cfg.Modules, "Modules to run (default: all)")
	fs.BoolVar(&cfg.DeepScan, "deep", cfg.DeepScan, "Enable deep scan tier")
	fs.BoolVar(&cfg.Stealth, "stealth", cfg.Stealth, "Enable stealth tier")
	fs.BoolVar(&cfg.Aggressive, "aggressive", cfg.Aggressive, "Double per-module work volume")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed for reproducible runs (0 = time-based)")
	fs.IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "Maximum concurrent modules")
	fs.IntVar(&cfg.BatchSize, "batch-size", cfg.BatchSize, "Query batch size for batched modules")
	fs.IntVar(&cfg.TimeoutS, "timeout", cfg.TimeoutS, "Global timeout in seconds (0 = no timeout)")
	fs.IntVar(&cfg.CacheSize, "cache-size", cfg.CacheSize, "Per-run result cache capacity")
	fs.StringVarP(&cfg.OutputDir, "out", "o", cfg.OutputDir, "Output directory for exports")
	fs.StringSliceVarP(&cfg.Formats, "format", "f", cfg.Formats, "Export formats (json, csv, xml)")
	fs.BoolVar(&cfg.NoUI, "no-ui", cfg.NoUI, "Disable interactive terminal output")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.BoolVarP(&cfg.PrintVersion, "version", "v", false, "Print version and exit")
	fs.String("config", "", "Path to YAML config file")

	return fs.Parse(args)
}

// peekConfigFlag extracts --config from args without consuming the rest.
func peekConfigFlag(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--config" && i+1 < len(args):
			return args[i+1]
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}

func normalize(c *Config) {
	c.Target = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(c.Target)), ".")
	c.Company = strings.TrimSpace(c.Company)
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.BatchSize < 1 {
		c.BatchSize = 25
	}
	if c.TimeoutS < 0 {
		c.TimeoutS = 0
	}
	if c.CacheSize < 1 {
		c.CacheSize = 100
	}
	if c.OutputDir == "" {
		c.OutputDir = "mirage_out"
	}
	if len(c.Formats) == 0 {
		c.Formats = []string{"json"}
	}
	for i, f := range c.Formats {
		c.Formats[i] = strings.ToLower(strings.TrimSpace(f))
	}
	for i, m := range c.Modules {
		c.Modules[i] = strings.ToLower(strings.TrimSpace(m))
	}
}

// Validate rejects values the run layer cannot work with.
func (c Config) Validate() error {
	for _, m := range c.Modules {
		if !domain.ModuleName(m).IsValid() {
			return fmt.Errorf("%w: %q", domain.ErrInvalidModule, m)
		}
	}
	for _, f := range c.Formats {
		if !ports.ExportFormat(f).IsValid() {
			return fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, f)
		}
	}
	return nil
}

// ScanConfig translates the raw config into the domain scan shape.
func (c Config) ScanConfig() domain.ScanConfig {
	sc := domain.DefaultScanConfig()
	sc.DeepScan = c.DeepScan
	sc.Stealth = c.Stealth
	sc.Aggressive = c.Aggressive

	if len(c.Modules) > 0 {
		for name := range sc.Modules {
			sc.Modules[name] = false
		}
		for _, m := range c.Modules {
			sc.Modules[domain.ModuleName(m)] = true
		}
	}
	return sc
}

// ExportFormats returns the validated format list.
func (c Config) ExportFormats() []ports.ExportFormat {
	out := make([]ports.ExportFormat, 0, len(c.Formats))
	for _, f := range c.Formats {
		out = append(out, ports.ExportFormat(f))
	}
	return out
}

// Timeout returns the global timeout as a duration. Zero means none.
func (c Config) Timeout() time.Duration {
	if c.TimeoutS <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutS) * time.Second
}

// ToJSON serializes the effective configuration, for debugging.
func (c Config) ToJSON() (string, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

func parseInt(v string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return i
}

func parseInt64(v string, def int64) int64 {
	i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return def
	}
	return i
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
