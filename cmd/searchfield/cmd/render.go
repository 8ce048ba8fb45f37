package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/searchfield/cmd/searchfield/internal/scene"
	"github.com/go-drift/searchfield/pkg/searchfield"
)

func newRenderCmd(flags *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render every frame of the script to PNG files",
		Long: `Play the configured script and write one PNG per frame as
frame-0000.png, frame-0001.png, ... into the output directory.

Time advances by 1/fps per frame, so a "wait 300ms" at 60 fps renders
18 frames.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			if output == "" {
				output = cfg.Resolve(cfg.Output)
			}
			steps, err := cfg.Steps()
			if err != nil {
				return err
			}

			sc, err := scene.New(cmd.Context(), cfg, flags.log())
			if err != nil {
				return err
			}
			defer sc.Close()

			frames := 0
			err = sc.Play(cmd.Context(), steps, func(i int, field *searchfield.Field) error {
				frames++
				return scene.RenderPNG(field, scene.FramePath(output, i))
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames to %s\n", frames, output)
			for _, r := range sc.Results() {
				fmt.Fprintf(cmd.OutOrStdout(), "  match %-20s distance %d\n", r.Target, r.Distance)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory (default from config)")
	return cmd
}
