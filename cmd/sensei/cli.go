package main

import (
	"context"
	"io"

	"github.com/fwojciec/sensei"
	"github.com/fwojciec/sensei/navigate"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Versions  sensei.VersionReader
	Navigator *navigate.Navigator
	Banner    *sensei.Banner
}

// CLI defines the command-line interface structure for Kong.
// The crate flags live on the embedded OpenCmd, which kong runs.
type CLI struct {
	OpenCmd

	Check   bool   `help:"Verify the page exists before opening it"`
	Browser string `help:"Browser to use: system or chrome (default from config)"`
	Dir     string `short:"C" help:"Project directory (default: current directory)"`
	Config  string `env:"SENSEI_CONFIG" help:"Config file path"`
	Verbose bool   `help:"Log each step to stderr"`
}

// Run opens the requested documentation.
func (c *CLI) Run(deps *Dependencies) error {
	return c.OpenCmd.Run(deps)
}

// OpenCmd opens the documentation of one crate.
type OpenCmd struct {
	Name     string `arg:"" help:"What crate do you need help with, 学生?"`
	Local    bool   `short:"l" help:"Tries to open local documentation"`
	Version  string `short:"v" help:"Opens documentation for a specific version"`
	Query    string `short:"q" help:"Specifies query to search documentation"`
	Manifest bool   `short:"m" help:"Reads the version from Cargo.toml (overrides --version)"`
}
