// Package cmd implements the searchfield CLI commands.
//
// The root command owns the global flags and logging; subcommands (render,
// ops, preview) load the configuration and play its script.
package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/go-drift/searchfield/cmd/searchfield/internal/config"
	"github.com/go-drift/searchfield/pkg/errors"
	"github.com/go-drift/searchfield/pkg/searchfield"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

type globalFlags struct {
	config  string
	verbose bool
	logger  *slog.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "searchfield",
		Short: "Render the animated search field",
		Long: `searchfield plays a scripted interaction against the animated search
field and renders the result.

The config file (YAML, or TOML with a .toml extension) sets the field
size, colors, animation timing, the script and the search corpus. Without
--config the built-in defaults are used.`,
		Version:       Version + " (built " + BuildTime + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			flags.logger = setupLogging(cmd.ErrOrStderr(), flags.verbose)
		},
	}

	root.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "path to a YAML or TOML config file")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log debug output")

	root.AddCommand(newRenderCmd(flags))
	root.AddCommand(newOpsCmd(flags))
	root.AddCommand(newPreviewCmd(flags))
	return root
}

// setupLogging installs one text logger on stderr for every package that
// logs, and routes reported widget errors through it.
func setupLogging(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	gg.SetLogger(logger)
	searchfield.SetLogger(logger)
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: verbose})
	return logger
}

func (f *globalFlags) load() (*config.File, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return nil, err
	}
	if path := cfg.Path(); path != "" {
		f.log().Debug("config loaded", "path", path)
	}
	return cfg, nil
}

func (f *globalFlags) log() *slog.Logger {
	if f.logger == nil {
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return f.logger
}
