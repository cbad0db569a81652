package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/piratemap"
	"github.com/aretw0/piratemap/pkg/adapters/mcp"
	"github.com/aretw0/piratemap/pkg/ports"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Run the Model Context Protocol (MCP) server",
		Long: `Exposes the decoder as MCP tools (decode_treasure_map, trace_treasure_map,
locate_treasure) and the maps under --dir as a resource.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			transport, _ := cmd.Flags().GetString("transport")
			port, _ := cmd.Flags().GetInt("port")

			opts := []mcp.Option{
				mcp.WithLogger(a.logger),
				mcp.WithMaxInputSize(a.cfg.MaxInputSize),
			}
			if lister, ok := a.decoder.Loader().(ports.Lister); ok {
				opts = append(opts, mcp.WithLister(lister))
			}
			srv := mcp.NewServer(a.decoder, piratemap.Version, opts...)

			switch transport {
			case "stdio":
				// Ensure logs don't corrupt JSON-RPC on Stdout
				log.SetOutput(os.Stderr)
				a.logger.Info("Starting piratemap MCP Server (Stdio)")
				return srv.ServeStdio()
			case "sse":
				ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
				defer stop()
				return srv.ServeSSE(ctx, port)
			default:
				return fmt.Errorf("unknown transport %q (want stdio or sse)", transport)
			}
		},
	}
	cmd.Flags().String("transport", "stdio", "Transport: stdio or sse")
	cmd.Flags().Int("port", 8081, "Port for the sse transport")
	return cmd
}
