package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/gogpu/symbler"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRenderCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [program...]",
		Short: "Render a symbol to PNG",
		Long:  "Parse the program (arguments joined by spaces, or stdin) and write the symbol as a PNG image.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, v)
		},
	}

	cmd.Flags().StringP("output", "o", "symbol.png", "Output PNG file")
	cmd.Flags().Int("side", symbler.DefaultSide, "Canvas side in pixels")
	cmd.Flags().Float64("margin", symbler.DefaultMargin, "Empty border around the symbol")
	cmd.Flags().Float64("thickness", symbler.DefaultThickness, "Stroke width")
	cmd.Flags().Bool("round-ends", true, "Cap stroke endpoints with discs")
	cmd.Flags().String("background", "beige", "Background color (#rgb, #rrggbb or a color name)")
	cmd.Flags().String("caption", "", "Text printed under the symbol")
	cmd.Flags().Bool("each", false, "Render every stdin line separately; --output must contain a %d verb")
	bindFlags(v, "render", cmd)

	return cmd
}

func runRender(cmd *cobra.Command, args []string, v *viper.Viper) error {
	bg, err := symbler.ParseColor(v.GetString("render.background"))
	if err != nil {
		return err
	}
	opts := []symbler.RenderOption{
		symbler.WithSide(v.GetInt("render.side")),
		symbler.WithMargin(v.GetFloat64("render.margin")),
		symbler.WithThickness(v.GetFloat64("render.thickness")),
		symbler.WithRoundEnds(v.GetBool("render.round-ends")),
		symbler.WithBackground(bg),
		symbler.WithCaption(v.GetString("render.caption")),
		symbler.WithParseOptions(parseOptions(v)...),
	}
	out := v.GetString("render.output")

	if !v.GetBool("render.each") {
		input, err := readInput(cmd, args)
		if err != nil {
			return fmt.Errorf("reading program: %w", err)
		}
		return renderOne(cmd, input, out, opts)
	}

	if !strings.Contains(out, "%") {
		return fmt.Errorf("--each needs an output pattern such as sym-%%03d.png, got %q", out)
	}
	lc := symbler.NewLineCache(0, parseOptions(v)...)
	opts = append(opts, symbler.WithLineCache(lc))

	sc := bufio.NewScanner(cmd.InOrStdin())
	for i := 0; sc.Scan(); i++ {
		if err := renderOne(cmd, sc.Text(), fmt.Sprintf(out, i), opts); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading programs: %w", err)
	}
	st := lc.Stats()
	symbler.Logger().Info("symbler: batch finished", "rendered", st.Hits+st.Misses, "distinct", st.Misses)
	return nil
}

func renderOne(cmd *cobra.Command, input, out string, opts []symbler.RenderOption) error {
	cv, err := symbler.DrawString(input, opts...)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	defer func() { _ = cv.Close() }()

	if err := cv.SavePNG(out); err != nil {
		return fmt.Errorf("saving %s: %w", out, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%dx%d)\n", out, cv.Side(), cv.Side())
	return nil
}
