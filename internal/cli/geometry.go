package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"go-flat-icons/internal/sun"
	"go-flat-icons/pkg/render"
)

func newGeometryCmd() *cobra.Command {
	var box render.Rect
	cmd := &cobra.Command{
		Use:   "geometry",
		Short: "Print the sun geometry for a bounding box as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := struct {
				Bounds   render.Rect  `json:"bounds"`
				Geometry sun.Geometry `json:"geometry"`
				Upper    render.Rect  `json:"upper_halo"`
				Lower    render.Rect  `json:"lower_halo"`
			}{Bounds: box}
			out.Geometry = sun.ComputeGeometry(box)
			out.Upper = out.Geometry.UpperHalo()
			out.Lower = out.Geometry.LowerHalo()

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				return fmt.Errorf("encode geometry: %w", err)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&box.Left, "left", 0, "Box left edge")
	f.Float64Var(&box.Top, "top", 0, "Box top edge")
	f.Float64Var(&box.Width, "width", 100, "Box width")
	f.Float64Var(&box.Height, "height", 100, "Box height")
	return cmd
}
