package main

import (
	"fmt"

	"github.com/aretw0/piratemap/internal/presentation/graph"
	"github.com/aretw0/piratemap/pkg/navigation"
	"github.com/spf13/cobra"
)

func newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace <map>",
		Short: "Print every cell a map walks through",
		Long: `Prints the visited coordinates one per line, start included.
With --format mermaid it prints a flowchart of the map's legs instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := commandContext(cmd)
			w := cmd.OutOrStdout()
			format, _ := cmd.Flags().GetString("format")

			switch format {
			case "coords":
			case "mermaid":
				m, err := a.decoder.Load(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprint(w, graph.GenerateMermaid(args[0], m, nil))
				return nil
			default:
				return fmt.Errorf("invalid --format %q (want coords or mermaid)", format)
			}

			path, err := a.decoder.Trace(ctx, args[0])
			if err != nil {
				return err
			}

			if normalize, _ := cmd.Flags().GetBool("normalize"); normalize {
				_, path = navigation.Normalize(path)
			}

			for _, c := range path {
				fmt.Fprintln(w, c)
			}
			width, height := navigation.BoundingBox(path)
			a.logger.Debug("trace done", "cells", len(path), "width", width, "height", height)
			return nil
		},
	}
	cmd.Flags().Bool("normalize", false, "Shift the path so its minimum coordinate is (0, 0)")
	cmd.Flags().String("format", "coords", "Output format: coords or mermaid")
	return cmd
}
