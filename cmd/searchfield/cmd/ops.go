package cmd

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/searchfield/cmd/searchfield/internal/scene"
	"github.com/go-drift/searchfield/pkg/searchfield"
)

func newOpsCmd(flags *globalFlags) *cobra.Command {
	var frame int

	cmd := &cobra.Command{
		Use:   "ops",
		Short: "Print the draw operations of a frame as YAML",
		Long: `Play the configured script and print the recorded draw operations of
one frame. By default the last frame is printed; --frame selects another.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
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

			var dump opsDump
			err = sc.Play(cmd.Context(), steps, func(i int, field *searchfield.Field) error {
				if frame < 0 || i == frame {
					dump = newOpsDump(i, field)
				}
				return nil
			})
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(dump); err != nil {
				return err
			}
			return enc.Close()
		},
	}
	cmd.Flags().IntVarP(&frame, "frame", "f", -1, "frame index to print (-1 for the last)")
	return cmd
}

type opsDump struct {
	Frame  int         `yaml:"frame"`
	Phase  string      `yaml:"phase"`
	Slider float64     `yaml:"slider"`
	Ops    interface{} `yaml:"ops"`
}

func newOpsDump(i int, field *searchfield.Field) opsDump {
	return opsDump{
		Frame:  i,
		Phase:  field.Phase().String(),
		Slider: field.SliderPosition(),
		Ops:    scene.Record(field).Ops(),
	}
}
