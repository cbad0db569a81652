package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/piratemap/internal/presentation/tui"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <map1> <map2>",
		Short: "Preview the decoded chart in the terminal",
		Long: `Decodes two maps and prints the chart, coloured when stdout is a terminal.
Use --color=always or --color=never to override detection.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			rendered, err := a.decoder.Decode(commandContext(cmd), args[0], args[1])
			if err != nil {
				return err
			}

			mode, _ := cmd.Flags().GetString("color")
			w := cmd.OutOrStdout()
			profile, err := colorProfile(mode, w)
			if err != nil {
				return err
			}

			if profile != termenv.Ascii {
				tui.PrintBanner(w, profile)
			}
			fmt.Fprintln(w, tui.Colorize(rendered, profile))
			return nil
		},
	}
	cmd.Flags().String("color", "auto", "Colour mode: auto, always or never")
	return cmd
}

// colorProfile picks the termenv profile for w.
func colorProfile(mode string, w io.Writer) (termenv.Profile, error) {
	switch mode {
	case "never":
		return termenv.Ascii, nil
	case "always":
		if p := termenv.ColorProfile(); p != termenv.Ascii {
			return p, nil
		}
		return termenv.ANSI256, nil
	case "auto":
		f, ok := w.(*os.File)
		if !ok || !term.IsTerminal(int(f.Fd())) {
			return termenv.Ascii, nil
		}
		return termenv.ColorProfile(), nil
	default:
		return termenv.Ascii, fmt.Errorf("invalid --color %q (want auto, always or never)", mode)
	}
}
