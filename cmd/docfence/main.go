package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docfence/internal/config"
	"git.home.luguber.info/inful/docfence/internal/foundation/errors"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"docfence.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Render struct {
		Path       string `arg:"" optional:"" help:"Markdown file to render (stdin when omitted)"`
		Format     string `help:"Output format" enum:"markdown,html" default:"markdown"`
		Output     string `short:"o" help:"Write result to file instead of stdout"`
		ListColors bool   `help:"Print the terminal placeholder table and exit"`
	} `cmd:"" help:"Render fenced blocks in a single document"`

	Build struct {
		Report string `help:"Write a JSON build report to this path"`
	} `cmd:"" help:"Render all documents from the source tree into the output tree"`

	Check struct {
		Dir string `arg:"" optional:"" help:"Built output directory (defaults to configured output)"`
	} `cmd:"" help:"Check built HTML for diagnostics and broken local references"`

	Serve struct{} `cmd:"" help:"Serve the output tree, rebuilding on source changes"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Initialize a new configuration file"`

	Version struct{} `cmd:"" help:"Print version information"`
}

func main() {
	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	var err error
	switch ctx.Command() {
	case "render", "render <path>":
		err = runRender()
	case "build":
		err = runBuild()
	case "check", "check <dir>":
		err = runCheck()
	case "serve":
		err = runServe()
	case "init":
		err = config.Init(CLI.Config, CLI.Init.Force)
	case "version":
		runVersion()
	default:
		slog.Error("Unknown command", "command", ctx.Command())
		os.Exit(1)
	}
	if err != nil {
		errors.NewCLIErrorAdapter(CLI.Verbose, logger).HandleError(err)
	}
}

// loadConfig reads the configured file, falling back to built-in defaults
// when the default config path does not exist. An explicitly supplied path
// must exist.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(CLI.Config); os.IsNotExist(err) && CLI.Config == "docfence.yaml" {
		slog.Debug("No configuration file, using defaults")
		return config.Default(), nil
	}
	return config.Load(CLI.Config)
}
