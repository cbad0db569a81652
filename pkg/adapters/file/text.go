package file

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/piratemap/pkg/domain"
	"github.com/aretw0/piratemap/pkg/navigation"
)

// Parse reads a map in the plain text format.
func Parse(r io.Reader) (domain.TreasureMap, error) {
	s := bufio.NewScanner(r)

	var (
		m        domain.TreasureMap
		haveHead bool
		lines    []int // source line of each instruction
		lineNo   int
	)

	for s.Scan() {
		lineNo++
		raw := strings.TrimRight(s.Text(), "\r")
		if strings.TrimSpace(raw) == "" {
			continue
		}

		a, b, err := parsePair(raw)
		if err != nil {
			return domain.TreasureMap{}, &domain.ParseError{Line: lineNo, Text: raw, Reason: "malformed record", Err: err}
		}

		if !haveHead {
			m.Start = domain.C(a, b)
			haveHead = true
			continue
		}
		m.Instructions = append(m.Instructions, domain.Instruction{Azimuth: a, Steps: b})
		lines = append(lines, lineNo)
	}
	if err := s.Err(); err != nil {
		return domain.TreasureMap{}, fmt.Errorf("read map: %w", err)
	}

	if !haveHead {
		return domain.TreasureMap{}, &domain.ParseError{Reason: "missing start coordinate"}
	}

	waypoints, idx, err := navigation.ResolveAll(m.Instructions)
	if err != nil {
		ins := m.Instructions[idx]
		return domain.TreasureMap{}, &domain.ParseError{
			Line:   lines[idx],
			Text:   fmt.Sprintf("%d %d", ins.Azimuth, ins.Steps),
			Reason: "invalid instruction",
			Err:    err,
		}
	}
	m.Waypoints = waypoints

	return m, nil
}

// ParseString is a convenience wrapper over Parse.
func ParseString(s string) (domain.TreasureMap, error) {
	return Parse(strings.NewReader(s))
}

// Format writes m back in the plain text format, one record per line.
func Format(m domain.TreasureMap) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d\n", m.Start.Row, m.Start.Col)
	for _, ins := range m.Instructions {
		fmt.Fprintf(&sb, "%d %d\n", ins.Azimuth, ins.Steps)
	}
	return sb.String()
}

func parsePair(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected 2 fields, got %d", len(fields))
	}

	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
