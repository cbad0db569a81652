package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/piratemap/internal/sanitize"
	"github.com/aretw0/piratemap/pkg/adapters/file"
	"github.com/aretw0/piratemap/pkg/domain"
	"github.com/aretw0/piratemap/pkg/navigation"
	"github.com/aretw0/piratemap/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// MapsURI is the resource listing the maps known to the loader.
const MapsURI = "piratemap://maps"

// Engine defines what the MCP server needs from the decoder.
type Engine interface {
	DecodeMaps(ctx context.Context, m1, m2 domain.TreasureMap) (string, error)
	LocateMaps(m1, m2 domain.TreasureMap) (domain.Coordinate, error)
}

// TraceArgs are the arguments of trace_treasure_map.
type TraceArgs struct {
	Map string `json:"map"`
}

// TraceResponse is the structured result of trace_treasure_map.
type TraceResponse struct {
	Legs   []Leg       `json:"legs" jsonschema_description:"Absolute heading and steps of each leg"`
	Path   domain.Path `json:"path" jsonschema_description:"Visited cells in walk order, start included"`
	Width  int         `json:"width" jsonschema_description:"Column span of the path"`
	Height int         `json:"height" jsonschema_description:"Row span of the path"`
}

// Leg is one resolved waypoint with its heading as a letter.
type Leg struct {
	Heading string `json:"heading" jsonschema:"enum=N,enum=E,enum=S,enum=W"`
	Steps   int    `json:"steps"`
}

// LocateArgs are the arguments of locate_treasure.
type LocateArgs struct {
	Map1 string `json:"map1"`
	Map2 string `json:"map2"`
}

// LocateResponse is the structured result of locate_treasure.
type LocateResponse struct {
	Treasure domain.Coordinate `json:"treasure" jsonschema_description:"Treasure cell in the first map's frame"`
}

// Server wraps the decoder and exposes it as an MCP Server.
type Server struct {
	engine       Engine
	lister       ports.Lister
	logger       *slog.Logger
	maxInputSize int
	mcpServer    *server.MCPServer
}

// Option configures the server.
type Option func(*Server)

// WithLister publishes the loader's map names as a resource.
func WithLister(l ports.Lister) Option {
	return func(s *Server) {
		s.lister = l
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMaxInputSize caps each map argument, in bytes.
func WithMaxInputSize(n int) Option {
	return func(s *Server) {
		s.maxInputSize = n
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine, version string, opts ...Option) *Server {
	s := &Server{
		engine:    engine,
		logger:    slog.Default(),
		mcpServer: server.NewMCPServer("piratemap-mcp", strings.TrimSpace(version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	if s.lister != nil {
		s.registerResources()
	}
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves over SSE on port until ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: decode_treasure_map
	decodeTool := mcp.NewTool("decode_treasure_map",
		mcp.WithDescription("Decode two treasure maps and return the rendered chart. Each map is a start line 'row col' followed by 'azimuth steps' lines."),
		mcp.WithString("map1", mcp.Required(), mcp.Description("Text of the first map")),
		mcp.WithString("map2", mcp.Required(), mcp.Description("Text of the second map")),
	)
	s.mcpServer.AddTool(decodeTool, s.handleDecode)

	// TOOL: trace_treasure_map
	traceTool := mcp.NewTool("trace_treasure_map",
		mcp.WithDescription("Trace a single map and return every visited cell."),
		mcp.WithString("map", mcp.Required(), mcp.Description("Text of the map")),
		mcp.WithOutputSchema[TraceResponse](),
	)
	s.mcpServer.AddTool(traceTool, mcp.NewStructuredToolHandler(s.handleTrace))

	// TOOL: locate_treasure
	locateTool := mcp.NewTool("locate_treasure",
		mcp.WithDescription("Locate the treasure from the overlap of two maps without rendering. The cell is given in the first map's own coordinates."),
		mcp.WithString("map1", mcp.Required(), mcp.Description("Text of the first map")),
		mcp.WithString("map2", mcp.Required(), mcp.Description("Text of the second map")),
		mcp.WithOutputSchema[LocateResponse](),
	)
	s.mcpServer.AddTool(locateTool, mcp.NewStructuredToolHandler(s.handleLocate))
}

func (s *Server) handleDecode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	m1, m2, err := s.parsePair(request.GetString("map1", ""), request.GetString("map2", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rendered, err := s.engine.DecodeMaps(ctx, m1, m2)
	if err != nil {
		s.logger.Warn("MCP Decode: failed", "err", err)
		return mcp.NewToolResultError(fmt.Sprintf("decode failed: %v", err)), nil
	}
	return mcp.NewToolResultText(rendered), nil
}

func (s *Server) handleTrace(ctx context.Context, request mcp.CallToolRequest, args TraceArgs) (TraceResponse, error) {
	m, err := s.parse(args.Map)
	if err != nil {
		return TraceResponse{}, err
	}
	path := navigation.TraceMap(m)
	width, height := navigation.BoundingBox(path)
	legs := make([]Leg, len(m.Waypoints))
	for i, wp := range m.Waypoints {
		legs[i] = Leg{Heading: wp.Heading.String(), Steps: wp.Steps}
	}
	return TraceResponse{Legs: legs, Path: path, Width: width, Height: height}, nil
}

func (s *Server) handleLocate(ctx context.Context, request mcp.CallToolRequest, args LocateArgs) (LocateResponse, error) {
	m1, m2, err := s.parsePair(args.Map1, args.Map2)
	if err != nil {
		return LocateResponse{}, err
	}
	treasure, err := s.engine.LocateMaps(m1, m2)
	if err != nil {
		return LocateResponse{}, fmt.Errorf("locate failed: %w", err)
	}
	return LocateResponse{Treasure: treasure}, nil
}

func (s *Server) parsePair(text1, text2 string) (domain.TreasureMap, domain.TreasureMap, error) {
	m1, err := s.parse(text1)
	if err != nil {
		return domain.TreasureMap{}, domain.TreasureMap{}, fmt.Errorf("map1: %w", err)
	}
	m2, err := s.parse(text2)
	if err != nil {
		return domain.TreasureMap{}, domain.TreasureMap{}, fmt.Errorf("map2: %w", err)
	}
	return m1, m2, nil
}

func (s *Server) parse(text string) (domain.TreasureMap, error) {
	clean, err := sanitize.InputWithLimit(text, s.maxInputSize)
	if err != nil {
		s.logger.Warn("MCP: input rejected", "err", err, "size", len(text))
		return domain.TreasureMap{}, fmt.Errorf("input rejected: %w", err)
	}
	return file.ParseString(clean)
}

func (s *Server) registerResources() {
	// EXPOSE: piratemap://maps
	s.mcpServer.AddResource(mcp.NewResource(MapsURI, "Available treasure maps",
		mcp.WithMIMEType("application/json"),
	), s.handleMaps)
}

func (s *Server) handleMaps(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	names, err := s.lister.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list maps: %w", err)
	}
	jsonBytes, _ := json.Marshal(names)

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      MapsURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
