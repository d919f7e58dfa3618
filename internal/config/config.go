// Package config loads and validates the docfence YAML configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration.
type Config struct {
	Source    string            `yaml:"source"`
	Output    string            `yaml:"output"`
	Build     BuildConfig       `yaml:"build"`
	Renderers RendererConfig    `yaml:"renderers"`
	Render    RenderConfig      `yaml:"render"`
	Fences    map[string]string `yaml:"fences"`
	Serve     ServeConfig       `yaml:"serve"`
}

// BuildConfig controls the directory build driver.
type BuildConfig struct {
	// Workers bounds how many documents render concurrently.
	Workers int `yaml:"workers"`
	// Format selects the build output: transformed markdown or standalone
	// HTML pages.
	Format string `yaml:"format"`
}

// Output formats accepted by build.format.
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// RendererConfig configures the rendering backends.
type RendererConfig struct {
	Freeze BinaryRendererConfig `yaml:"freeze"`
	Pikchr BinaryRendererConfig `yaml:"pikchr"`
	Dot    DotRendererConfig    `yaml:"dot"`
}

// BinaryRendererConfig configures one external renderer binary.
type BinaryRendererConfig struct {
	// Binary is the program name or path; bare names are looked up on PATH.
	Binary string `yaml:"binary"`
}

// DotRendererConfig configures the in-process Graphviz renderer.
type DotRendererConfig struct {
	Enabled *bool `yaml:"enabled"`
}

// RenderConfig holds per-block rendering knobs.
type RenderConfig struct {
	// Timeout bounds one renderer invocation, as a duration string. Empty
	// or "0s" leaves it unbounded: a hung renderer then hangs its unit of
	// work.
	Timeout string `yaml:"timeout"`
}

// TimeoutDuration returns the parsed render timeout. Validate has already
// rejected unparsable values.
func (r RenderConfig) TimeoutDuration() time.Duration {
	if r.Timeout == "" {
		return 0
	}
	d, _ := time.ParseDuration(r.Timeout)
	return d
}

// ServeConfig configures the preview server.
type ServeConfig struct {
	Addr string `yaml:"addr"`
	// RebuildEvery triggers a periodic full rebuild on top of file
	// watching, as a duration string. Empty or "0s" disables the schedule.
	RebuildEvery string `yaml:"rebuild_every"`
}

// RebuildInterval returns the parsed periodic rebuild interval.
func (s ServeConfig) RebuildInterval() time.Duration {
	if s.RebuildEvery == "" {
		return 0
	}
	d, _ := time.ParseDuration(s.RebuildEvery)
	return d
}

// Load reads the configuration file, expanding ${VAR} references from the
// process environment (seeded from .env/.env.local when present) and
// applying defaults.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse unmarshals configuration content with environment expansion and
// defaults applied. Split from Load so tests can feed YAML directly.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ApplyDefaults(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	_ = ApplyDefaults(cfg)
	return cfg
}

// Validate rejects configurations the build driver cannot act on.
func (c *Config) Validate() error {
	if c.Build.Format != FormatMarkdown && c.Build.Format != FormatHTML {
		return fmt.Errorf("build.format must be %q or %q, got %q", FormatMarkdown, FormatHTML, c.Build.Format)
	}
	for fence, backend := range c.Fences {
		switch backend {
		case "freeze", "pikchr", "dot":
		default:
			return fmt.Errorf("fences.%s: unknown renderer %q", fence, backend)
		}
	}
	if c.Render.Timeout != "" {
		d, err := time.ParseDuration(c.Render.Timeout)
		if err != nil {
			return fmt.Errorf("render.timeout: %w", err)
		}
		if d < 0 {
			return fmt.Errorf("render.timeout must not be negative")
		}
	}
	if c.Serve.RebuildEvery != "" {
		d, err := time.ParseDuration(c.Serve.RebuildEvery)
		if err != nil {
			return fmt.Errorf("serve.rebuild_every: %w", err)
		}
		if d < 0 {
			return fmt.Errorf("serve.rebuild_every must not be negative")
		}
	}
	return nil
}

// DotEnabled reports whether the in-process Graphviz renderer is active.
// It defaults to on: unlike the subprocess renderers it needs no binary
// installed.
func (c *Config) DotEnabled() bool {
	if c.Renderers.Dot.Enabled == nil {
		return true
	}
	return *c.Renderers.Dot.Enabled
}

// loadEnvFiles seeds the process environment from dotenv files. Missing
// files are not an error; existing environment variables win.
func loadEnvFiles() {
	for _, path := range []string{".env", ".env.local"} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		_ = godotenv.Load(path)
	}
}
