package main

import (
	"fmt"

	"github.com/aretw0/piratemap/internal/presentation/graph"
	"github.com/aretw0/piratemap/pkg/domain"
	"github.com/spf13/cobra"
)

func newLocateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate <map1> <map2>",
		Short: "Print the treasure coordinate without drawing the chart",
		Long: `Prints the treasure in the first map's own frame.
With --mermaid it also prints both maps as flowcharts, linking the legs that cross the treasure.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := commandContext(cmd)
			treasure, err := a.decoder.Locate(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, treasure)

			if mermaid, _ := cmd.Flags().GetBool("mermaid"); !mermaid {
				return nil
			}
			ch, err := a.decoder.Compose(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			// The second map walks the chart frame, not the first map's.
			frames := [2]domain.Coordinate{treasure, ch.Treasure}
			for i, name := range args {
				m, err := a.decoder.Load(ctx, name)
				if err != nil {
					return err
				}
				fmt.Fprintln(w)
				fmt.Fprint(w, graph.GenerateMermaid(name, m, &graph.PathOverlay{Treasure: &frames[i]}))
			}
			return nil
		},
	}
	cmd.Flags().Bool("mermaid", false, "Also print Mermaid flowcharts of both maps")
	return cmd
}
