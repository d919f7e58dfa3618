package config

import "fmt"

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// PathsDefaultApplier handles source/output directory defaults.
type PathsDefaultApplier struct{}

func (PathsDefaultApplier) Domain() string { return "paths" }

func (PathsDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Source == "" {
		cfg.Source = "./docs"
	}
	if cfg.Output == "" {
		cfg.Output = "./site"
	}
	return nil
}

// BuildDefaultApplier handles build driver defaults.
type BuildDefaultApplier struct{}

func (BuildDefaultApplier) Domain() string { return "build" }

func (BuildDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Build.Workers <= 0 {
		cfg.Build.Workers = 4
	}
	if cfg.Build.Format == "" {
		cfg.Build.Format = FormatMarkdown
	}
	return nil
}

// RendererDefaultApplier handles renderer binary names and fence bindings.
type RendererDefaultApplier struct{}

func (RendererDefaultApplier) Domain() string { return "renderers" }

func (RendererDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Renderers.Freeze.Binary == "" {
		cfg.Renderers.Freeze.Binary = "freeze"
	}
	if cfg.Renderers.Pikchr.Binary == "" {
		cfg.Renderers.Pikchr.Binary = "pikchr"
	}
	if cfg.Fences == nil {
		cfg.Fences = map[string]string{
			"freeze": "freeze",
			"pikchr": "pikchr",
			"dot":    "dot",
		}
	}
	return nil
}

// ServeDefaultApplier handles preview server defaults.
type ServeDefaultApplier struct{}

func (ServeDefaultApplier) Domain() string { return "serve" }

func (ServeDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Serve.Addr == "" {
		cfg.Serve.Addr = ":8080"
	}
	return nil
}

// defaultAppliers is the ordered set of domain appliers run by ApplyDefaults.
var defaultAppliers = []DefaultApplier{
	PathsDefaultApplier{},
	BuildDefaultApplier{},
	RendererDefaultApplier{},
	ServeDefaultApplier{},
}

// ApplyDefaults runs every domain applier against the configuration.
func ApplyDefaults(cfg *Config) error {
	for _, applier := range defaultAppliers {
		if err := applier.ApplyDefaults(cfg); err != nil {
			return fmt.Errorf("defaults for %s: %w", applier.Domain(), err)
		}
	}
	return nil
}
