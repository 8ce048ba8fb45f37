package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/go-drift/searchfield/cmd/searchfield/internal/scene"
)

// reloadDelay lets editors finish writing before the config is re-read.
const reloadDelay = 100 * time.Millisecond

func newPreviewCmd(flags *globalFlags) *cobra.Command {
	var output string
	var watch bool

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the final frame of the script to one PNG",
		Long: `Play the configured script and write only its final frame.

With --watch the preview is re-rendered whenever the config file changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := flags.log()
			if err := renderPreview(cmd.Context(), flags, output, logger); err != nil {
				if !watch {
					return err
				}
				logger.Error("preview failed", "err", err)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			}
			if !watch {
				return nil
			}
			if flags.config == "" {
				return fmt.Errorf("--watch needs --config")
			}
			return watchConfig(cmd.Context(), flags.config, logger, func() {
				if err := renderPreview(cmd.Context(), flags, output, logger); err != nil {
					logger.Error("preview failed", "err", err)
					return
				}
				logger.Info("preview updated", "path", output)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "preview.png", "output PNG file")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-render when the config file changes")
	return cmd
}

func renderPreview(ctx context.Context, flags *globalFlags, output string, logger *slog.Logger) error {
	cfg, err := flags.load()
	if err != nil {
		return err
	}
	steps, err := cfg.Steps()
	if err != nil {
		return err
	}
	sc, err := scene.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer sc.Close()
	if err := sc.Play(ctx, steps, nil); err != nil {
		return err
	}
	return scene.RenderPNG(sc.Field(), output)
}

// watchConfig calls reload after every write to path until ctx is done.
// The directory is watched so editors that replace the file are noticed.
func watchConfig(ctx context.Context, path string, logger *slog.Logger, reload func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("cannot create config watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("cannot watch %s: %w", path, err)
	}
	logger.Info("watching config", "path", abs)

	var pending <-chan time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending = time.After(reloadDelay)
			}
		case <-pending:
			pending = nil
			reload()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher error", "err", err)
		case <-ctx.Done():
			return nil
		}
	}
}
