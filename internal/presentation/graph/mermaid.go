package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/piratemap/pkg/domain"
)

// PathOverlay contains decode results to highlight on the diagram.
type PathOverlay struct {
	Treasure *domain.Coordinate
}

// GenerateMermaid produces a Mermaid flowchart of a map's legs.
// Each waypoint end is a node and each edge is labelled with heading and steps:
// - Start: ((Circle))
// - Leg end: [Rectangle]
// - Treasure: {{Hexagon}}, linked from every leg that walks over it
// Zero-step legs produce a self-loop on the current node.
func GenerateMermaid(id string, m domain.TreasureMap, overlay *PathOverlay) string {
	prefix := sanitizeMermaidID(id)
	if prefix == "" {
		prefix = "m"
	}
	nodeID := func(i int) string { return fmt.Sprintf("%s_%d", prefix, i) }

	var sb strings.Builder
	sb.WriteString("graph LR\n")
	sb.WriteString(fmt.Sprintf("    %s((\"%s %s\"))\n", nodeID(0), id, m.Start))

	var treasureID string
	if overlay != nil && overlay.Treasure != nil {
		treasureID = prefix + "_x"
		sb.WriteString(fmt.Sprintf("    %s{{\"x %s\"}}\n", treasureID, *overlay.Treasure))
		if m.Start == *overlay.Treasure {
			sb.WriteString(fmt.Sprintf("    %s -.-> %s\n", nodeID(0), treasureID))
		}
	}

	pos := m.Start
	for i, wp := range m.Waypoints {
		from, to := nodeID(i), nodeID(i+1)
		if wp.Steps == 0 {
			to = from
		}

		label := fmt.Sprintf("%s %d", wp.Heading, wp.Steps)
		if i < len(m.Instructions) {
			label = fmt.Sprintf("%s %d (%d°)", wp.Heading, wp.Steps, m.Instructions[i].Azimuth)
		}

		hit := false
		for s := 0; s < wp.Steps; s++ {
			pos = pos.Step(wp.Heading)
			if treasureID != "" && pos == *overlay.Treasure {
				hit = true
			}
		}

		if to != from {
			sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", to, pos))
		}
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", from, label, to))
		if hit {
			sb.WriteString(fmt.Sprintf("    %s -.-> %s\n", to, treasureID))
		}
	}

	if treasureID != "" {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef treasure fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		sb.WriteString(fmt.Sprintf("    class %s treasure;\n", treasureID))
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
