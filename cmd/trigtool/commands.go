package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/unitcircle/internal/logger"
	"github.com/Faultbox/unitcircle/internal/view"
	"github.com/Faultbox/unitcircle/pkg/trig"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "trigtool",
		Short: "Unit circle reference values, angle parsing and PNG export",
		Long: `trigtool prints the exact unit circle values of the canonical angles,
evaluates angle expressions such as "2pi/3" or "-90", shows how the drag
snapping treats an angle and renders the circle to a PNG file.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				return nil
			}
			return logger.InitWithOptions(logger.Options{Level: "debug", Console: cmd.ErrOrStderr()})
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(newTableCmd(), newAngleCmd(), newSnapCmd(), newExportCmd())
	return root
}

func unitFlag(radians bool) trig.Unit {
	if radians {
		return trig.Radians
	}
	return trig.Degrees
}

func newTableCmd() *cobra.Command {
	var radians bool
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the reference angles with exact cos, sin and tan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ANGLE\tCOS\tSIN\tTAN")
			for _, p := range trig.Points() {
				label := p.DegreesLabel
				if radians {
					label = p.RadiansLabel
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", label, p.X, p.Y, p.Tan)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVarP(&radians, "radians", "r", false, "label angles in radians")
	return cmd
}

func newAngleCmd() *cobra.Command {
	var radians bool
	cmd := &cobra.Command{
		Use:   "angle <expr>",
		Short: "Evaluate an angle expression and show its point on the circle",
		Long: `Evaluate an angle expression. Numbers, + - * / ^, parentheses, pi, π,
tau, e and sqrt/sin/cos/tan are accepted. Without --radians the value is
read as degrees.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u := unitFlag(radians)
			deg, err := trig.ParseAngle(args[0], u)
			if err != nil {
				return err
			}
			logger.Debug("angle parsed", zap.String("expr", args[0]), zap.Float64("degrees", deg))

			c := trig.CoordinatesFor(deg)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "degrees: %s\n", trig.FormatAngle(deg, trig.Degrees))
			fmt.Fprintf(out, "radians: %s\n", trig.FormatAngle(deg, trig.Radians))
			fmt.Fprintf(out, "point:   (%s, %s)\n", c.X, c.Y)
			fmt.Fprintf(out, "tan:     %s\n", c.Tan)
			if !c.Exact {
				fmt.Fprintln(out, "(approximate)")
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&radians, "radians", "r", false, "read the expression as radians")
	return cmd
}

func newSnapCmd() *cobra.Command {
	var (
		threshold float64
		free      bool
	)
	cmd := &cobra.Command{
		Use:   "snap <degrees>",
		Short: "Show the angle a drag would select",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deg, err := trig.ParseAngle(args[0], trig.Degrees)
			if err != nil {
				return err
			}
			snapped := trig.NewSnapper(threshold).Snap(deg, free)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", trig.FormatAngle(snapped, trig.Degrees))
			return nil
		},
	}
	cmd.Flags().Float64VarP(&threshold, "threshold", "t", trig.DefaultSnapThreshold, "snap distance in degrees")
	cmd.Flags().BoolVar(&free, "free", false, "disable snapping, as when the modifier is held")
	return cmd
}

func newExportCmd() *cobra.Command {
	var (
		angle   string
		radians bool
		size    int
		theme   string
	)
	cmd := &cobra.Command{
		Use:   "export <out.png>",
		Short: "Render the unit circle to a PNG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := view.ThemeByName(theme)
			if !ok {
				return fmt.Errorf("unknown theme %q", theme)
			}
			u := unitFlag(radians)
			scene := view.Scene{Unit: u}
			if angle != "" {
				deg, err := trig.ParseAngle(angle, u)
				if err != nil {
					return err
				}
				scene.Angle = deg
				scene.Visible = true
			}

			opts := view.DefaultRenderOptions(size)
			opts.Theme = t
			if err := view.RenderPNG(args[0], opts, scene); err != nil {
				return err
			}
			logger.Debug("exported", zap.String("path", args[0]), zap.Int("size", size))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVarP(&angle, "angle", "a", "", "selected angle expression; none hides the selector")
	cmd.Flags().BoolVarP(&radians, "radians", "r", false, "radian labels, and read --angle as radians")
	cmd.Flags().IntVarP(&size, "size", "s", 800, "image edge length in pixels")
	cmd.Flags().StringVar(&theme, "theme", "dark", "dark or light")
	return cmd
}

