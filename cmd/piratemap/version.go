package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/piratemap"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of piratemap",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "piratemap version %s\n", strings.TrimSpace(piratemap.Version))
		},
	}
}
