package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-flat-icons/pkg/render"
)

func newTraceCmd(a *app) *cobra.Command {
	var (
		iconName string
		size     float64
		alpha    int
		all      bool
	)
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Print the draw commands an icon issues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			icon, err := a.provider.Get(iconName)
			if err != nil {
				return err
			}
			icon.SetBounds(render.Square(size))
			icon.SetAlpha(alpha)

			rec := render.NewRecorder()
			icon.Draw(rec)

			commands := rec.Shapes()
			if all {
				commands = rec.Commands
			}
			for _, c := range commands {
				fmt.Fprintln(cmd.OutOrStdout(), c.String())
			}
			a.logger.Debug().Int("commands", len(rec.Commands)).Int("max_depth", rec.MaxDepth).Msg("trace done")
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&iconName, "icon", a.env.Icon, "Icon name")
	f.Float64VarP(&size, "size", "s", float64(a.env.Size), "Icon side")
	f.IntVar(&alpha, "alpha", a.env.Alpha, "Alpha 0..255")
	f.BoolVar(&all, "all", false, "Include save, rotate and restore calls")
	return cmd
}
