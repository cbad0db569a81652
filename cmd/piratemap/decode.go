package main

import (
	"fmt"
	"os"

	"github.com/aretw0/piratemap/internal/presentation/raster"
	"github.com/aretw0/piratemap/internal/presentation/tui"
	"github.com/aretw0/piratemap/pkg/adapters/file"
	"github.com/aretw0/piratemap/pkg/domain"
	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <map1> <map2>",
		Short: "Decode two maps into a treasure chart",
		Long: `Reads two maps (text or YAML), locates the treasure where their trails cross
and writes the chart. Without --output the chart goes to stdout.`,
		Args: cobra.ExactArgs(2),
		RunE: runDecode,
	}
	cmd.Flags().StringP("output", "o", "", "Write the chart to this file")
	cmd.Flags().Bool("report", false, "Print a Markdown summary of both maps and the result")
	cmd.Flags().String("png", "", "Also export the chart as a PNG image")
	return cmd
}

func runDecode(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := commandContext(cmd)
	output, _ := cmd.Flags().GetString("output")
	report, _ := cmd.Flags().GetBool("report")
	pngPath, _ := cmd.Flags().GetString("png")
	w := cmd.OutOrStdout()

	rendered, err := a.decoder.Decode(ctx, args[0], args[1])
	if err != nil {
		return err
	}

	if output != "" {
		if err := file.WriteRender(output, rendered); err != nil {
			return err
		}
		a.logger.Info("chart written", "path", output)
	} else if !report {
		fmt.Fprintln(w, rendered)
	}

	if !report && pngPath == "" {
		return nil
	}

	ch, err := a.decoder.Compose(ctx, args[0], args[1])
	if err != nil {
		return err
	}

	if pngPath != "" {
		if err := writePNG(pngPath, ch.Cells()); err != nil {
			return err
		}
		a.logger.Info("png written", "path", pngPath)
	}

	if report {
		m1, err := a.decoder.Load(ctx, args[0])
		if err != nil {
			return err
		}
		m2, err := a.decoder.Load(ctx, args[1])
		if err != nil {
			return err
		}

		md := tui.Report{
			Names:    [2]string{args[0], args[1]},
			Maps:     [2]domain.TreasureMap{m1, m2},
			Rendered: rendered,
			Treasure: ch.Treasure,
			Offset:   ch.Offset,
		}.Markdown()

		out, err := tui.NewRenderer(80)(md)
		if err != nil {
			return fmt.Errorf("render report: %w", err)
		}
		fmt.Fprint(w, out)
	}
	return nil
}

// writePNG rasterizes cells into path, reporting a failed close.
func writePNG(path string, cells [][]rune) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := raster.Encode(f, cells, raster.DefaultOptions()); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close png: %w", err)
	}
	return nil
}
