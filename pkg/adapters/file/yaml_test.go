package file

import (
	"strings"
	"testing"

	"github.com/aretw0/piratemap/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_YAMLMatchesText(t *testing.T) {
	fromYAML, err := Load("testdata/treasure_2.yaml")
	require.NoError(t, err)

	fromText, err := Load("testdata/treasure_2.txt")
	require.NoError(t, err)

	assert.Equal(t, fromText.Start, fromYAML.Start)
	assert.Equal(t, fromText.Waypoints, fromYAML.Waypoints)
}

func TestParseYAML_ObjectStart(t *testing.T) {
	m, err := ParseYAML(strings.NewReader("start: {row: -1, col: 3}\ninstructions: [[180, 2]]\n"))
	require.NoError(t, err)
	assert.Equal(t, domain.C(-1, 3), m.Start)
	assert.Equal(t, []domain.Waypoint{{Heading: domain.South, Steps: 2}}, m.Waypoints)
}

func TestParseYAML_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"Missing Start", "instructions: [[90, 1]]\n"},
		{"Bad Pair", "start: [1, 2, 3]\n"},
		{"Unknown Key", "start: [0, 0]\nheading: N\n"},
		{"Bad Azimuth", "start: [0, 0]\ninstructions: [[15, 1]]\n"},
		{"Not YAML", "start: [0, 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, domain.ErrParse)
		})
	}
}

func TestFromTree_JSONNumbers(t *testing.T) {
	m, err := FromTree(map[string]any{
		"start":        []any{float64(2), float64(4)},
		"instructions": []any{map[string]any{"azimuth": float64(270), "steps": float64(2)}},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.C(2, 4), m.Start)
	assert.Equal(t, []domain.Waypoint{{Heading: domain.West, Steps: 2}}, m.Waypoints)
}
