package main

import (
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/Sanuxal/SOCRATES.AI/internal/cli"
	"github.com/Sanuxal/SOCRATES.AI/internal/constants"
	"github.com/Sanuxal/SOCRATES.AI/internal/errors"
	"github.com/Sanuxal/SOCRATES.AI/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Debug   bool `help:"Enable debug logging to stderr."`

	Tui cli.TuiCmd `cmd:"" help:"Launch the interactive study assistant." default:"1"`
	Key struct {
		Set    cli.KeySetCmd    `cmd:"" help:"Store the Gemini API key in the OS keyring."`
		Show   cli.KeyShowCmd   `cmd:"" help:"Show the stored API key (masked)."`
		Delete cli.KeyDeleteCmd `cmd:"" help:"Remove the stored API key."`
	} `cmd:"" help:"Manage the Gemini API key."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Terminal study assistant: socratic tutor, study plans, and a smart day planner"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configDir := filepath.Join(configHome(), constants.AppName)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{Debug: CLI.Debug}
	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

func configHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config")
}
