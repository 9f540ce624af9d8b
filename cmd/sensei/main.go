package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/fwojciec/sensei"
	"github.com/fwojciec/sensei/browser"
	"github.com/fwojciec/sensei/fs"
	senseihttp "github.com/fwojciec/sensei/http"
	"github.com/fwojciec/sensei/navigate"
	"github.com/fwojciec/sensei/rod"
	"github.com/fwojciec/sensei/sh"
	senseislog "github.com/fwojciec/sensei/slog"
	"github.com/fwojciec/sensei/toml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Project directory holding the manifest and local documentation.
	// Defaults to the working directory; --dir overrides it.
	BaseDir string

	// Config file path. Set before calling Run(); --config overrides it.
	ConfigPath string

	// Services for end-to-end testing. Nil services are built from config.
	Opener   sensei.Opener
	Builder  sensei.Builder
	Probe    sensei.ArtifactProbe
	Versions sensei.VersionReader
	Checker  sensei.URLChecker

	// Pick chooses banner phrases. Nil means random.
	Pick func(n int) int
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		BaseDir:    defaultBaseDir(),
		ConfigPath: toml.DefaultPath(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sensei"),
		kong.Description("Opens the documentation for any crate."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no crate specified. Run 'sensei --help' to see usage")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	configPath := m.ConfigPath
	if cli.Config != "" {
		configPath = cli.Config
	}
	cfg, err := toml.Load(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set SENSEI_CONFIG to use a different config file\n")
		return err
	}
	if cli.Browser != "" {
		cfg.Browser = cli.Browser
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	baseDir := m.BaseDir
	if cli.Dir != "" {
		baseDir = cli.Dir
	}

	logger := newLogger(stderr, cli.Verbose)

	// Wire services, preferring injected ones
	opener := m.Opener
	if opener == nil {
		opener = newOpener(cfg.Browser)
	}
	builder := m.Builder
	if builder == nil {
		builder = sh.NewBuilder(baseDir,
			sh.WithCommand(cfg.BuildCommand),
			sh.WithOutput(stderr, stderr),
		)
	}
	probe := m.Probe
	if probe == nil {
		probe = fs.NewArtifactProbe()
	}
	versions := m.Versions
	if versions == nil {
		versions = fs.NewManifestReader(baseDir)
	}

	navigator := &navigate.Navigator{
		Resolver: &sensei.Resolver{Hosts: cfg.Hosts(), BaseDir: baseDir},
		Opener:   senseislog.NewLoggingOpener(opener, logger),
		Probe:    probe,
		Builder:  senseislog.NewLoggingBuilder(builder, logger),
	}
	if cli.Check {
		checker := m.Checker
		if checker == nil {
			checker = senseihttp.NewChecker()
		}
		navigator.Checker = senseislog.NewLoggingChecker(checker, logger)
	}

	deps.Versions = senseislog.NewLoggingVersionReader(versions, logger)
	deps.Navigator = navigator
	deps.Banner = &sensei.Banner{Phrases: cfg.Phrases, Pick: m.Pick}

	return kongCtx.Run(deps)
}

func newOpener(name string) sensei.Opener {
	if name == toml.BrowserChrome {
		return rod.NewOpener()
	}
	return browser.NewOpener()
}

// newLogger returns a logger that writes to w when verbose and discards otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	handler := log.NewWithOptions(w, log.Options{
		Prefix: "sensei",
		Level:  log.DebugLevel,
	})
	return slog.New(handler)
}

func defaultBaseDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}
