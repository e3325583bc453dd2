// Package config loads the YAML settings shared by reports and the demo
// program: formatter defaults, which clock domains to sample and log output.
package config

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/psantana5/tictoc/pkg/clock"
	"github.com/psantana5/tictoc/pkg/engfmt"
	"github.com/psantana5/tictoc/pkg/logging"
	"github.com/psantana5/tictoc/pkg/tictoc"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// ValidationError names the offending field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalid
func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}

// Config is the root of the YAML document
type Config struct {
	Format FormatConfig `mapstructure:"format" yaml:"format"`
	Report ReportConfig `mapstructure:"report" yaml:"report"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
}

// FormatConfig mirrors engfmt.Options
type FormatConfig struct {
	Precision  int     `mapstructure:"precision" yaml:"precision"`
	FixedWidth bool    `mapstructure:"fixed_width" yaml:"fixed_width"`
	Floor      float64 `mapstructure:"floor" yaml:"floor"`
}

// ReportConfig controls multi-timer reports
type ReportConfig struct {
	LabelWidth int      `mapstructure:"label_width" yaml:"label_width"`
	Domains    []string `mapstructure:"domains" yaml:"domains"`
	Iterations int      `mapstructure:"iterations" yaml:"iterations"`
	BusyWait   string   `mapstructure:"busy_wait" yaml:"busy_wait"`
	SIUnits    bool     `mapstructure:"si_units" yaml:"si_units"`
}

// LogConfig selects logger level and encoding
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	JSON  bool   `mapstructure:"json" yaml:"json"`
}

// Default returns the settings that reproduce the classic StatString output
func Default() *Config {
	return &Config{
		Format: FormatConfig{
			Precision:  engfmt.DefaultPrecision,
			FixedWidth: true,
			Floor:      engfmt.DefaultFloor,
		},
		Report: ReportConfig{
			LabelWidth: tictoc.LabelWidth,
			Domains:    []string{clock.Wall.String(), clock.Process.String(), clock.Thread.String()},
			Iterations: 100,
			BusyWait:   "1ms",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML file. Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	setDefaults(v, Default())

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("format.precision", d.Format.Precision)
	v.SetDefault("format.fixed_width", d.Format.FixedWidth)
	v.SetDefault("format.floor", d.Format.Floor)
	v.SetDefault("report.label_width", d.Report.LabelWidth)
	v.SetDefault("report.domains", d.Report.Domains)
	v.SetDefault("report.iterations", d.Report.Iterations)
	v.SetDefault("report.busy_wait", d.Report.BusyWait)
	v.SetDefault("report.si_units", d.Report.SIUnits)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.json", d.Log.JSON)
}

// Validate checks every field
func (c *Config) Validate() error {
	if c.Format.Precision < engfmt.MinPrecision {
		return &ValidationError{"format.precision", fmt.Sprintf("must be at least %d", engfmt.MinPrecision)}
	}
	if c.Format.Floor < 0 {
		return &ValidationError{"format.floor", "must not be negative"}
	}
	if c.Report.LabelWidth <= 0 {
		return &ValidationError{"report.label_width", "must be positive"}
	}
	if c.Report.Iterations <= 0 {
		return &ValidationError{"report.iterations", "must be positive"}
	}
	if len(c.Report.Domains) == 0 {
		return &ValidationError{"report.domains", "at least one clock domain is required"}
	}
	if _, err := c.DomainList(); err != nil {
		return &ValidationError{"report.domains", err.Error()}
	}
	if _, err := c.BusyWait(); err != nil {
		return &ValidationError{"report.busy_wait", err.Error()}
	}
	return nil
}

// FormatOptions converts the format section for engfmt
func (c *Config) FormatOptions() engfmt.Options {
	return engfmt.Options{
		Precision:  c.Format.Precision,
		FixedWidth: c.Format.FixedWidth,
		Floor:      c.Format.Floor,
	}
}

// DomainList parses report.domains
func (c *Config) DomainList() ([]clock.Domain, error) {
	domains := make([]clock.Domain, 0, len(c.Report.Domains))
	for _, name := range c.Report.Domains {
		d, err := clock.ParseDomain(name)
		if err != nil {
			return nil, err
		}
		domains = append(domains, d)
	}
	return domains, nil
}

// BusyWait parses report.busy_wait
func (c *Config) BusyWait() (time.Duration, error) {
	d, err := time.ParseDuration(c.Report.BusyWait)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration %s is negative", d)
	}
	return d, nil
}

// Logger builds the logger described by the log section
func (c *Config) Logger() *logging.Logger {
	return logging.NewLogger(logging.ParseLevel(c.Log.Level), c.Log.JSON)
}

// WriteDefault writes the default configuration as YAML
func WriteDefault(w io.Writer) error {
	return Write(w, Default())
}

// Write encodes cfg as YAML
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}
