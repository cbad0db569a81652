package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/piratemap/pkg/domain"
)

// Report gathers what a decode produced, for the Markdown summary.
type Report struct {
	Names    [2]string
	Maps     [2]domain.TreasureMap
	Rendered string
	Treasure domain.Coordinate
	Offset   domain.Coordinate
}

// Markdown formats the report as a Markdown document.
func (r Report) Markdown() string {
	var sb strings.Builder
	sb.WriteString("# Treasure map\n\n")

	for i, m := range r.Maps {
		fmt.Fprintf(&sb, "## Map %d: `%s`\n\n", i+1, r.Names[i])
		fmt.Fprintf(&sb, "Start at **%s**, %d steps in %d legs.\n\n", m.Start, m.TotalSteps(), len(m.Waypoints))
		if len(m.Waypoints) == 0 {
			continue
		}
		sb.WriteString("| # | Azimuth | Heading | Steps |\n|---|---|---|---|\n")
		for j, wp := range m.Waypoints {
			azimuth := "-"
			if j < len(m.Instructions) {
				azimuth = fmt.Sprintf("%d°", m.Instructions[j].Azimuth)
			}
			fmt.Fprintf(&sb, "| %d | %s | %s | %d |\n", j+1, azimuth, wp.Heading, wp.Steps)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Result\n\n")
	fmt.Fprintf(&sb, "Treasure at **%s** on the chart (**%s** in the first map's frame).\n\n",
		r.Treasure, r.Treasure.Add(r.Offset.Row, r.Offset.Col))
	sb.WriteString("```\n")
	sb.WriteString(r.Rendered)
	sb.WriteString("\n```\n")
	return sb.String()
}
