package file

import (
	"strings"
	"testing"

	"github.com/aretw0/piratemap/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Treasure3(t *testing.T) {
	m, err := Load("testdata/treasure_3.txt")
	require.NoError(t, err)

	assert.Equal(t, domain.C(0, 11), m.Start)
	assert.Equal(t, []domain.Waypoint{
		{Heading: domain.West, Steps: 5},
		{Heading: domain.West, Steps: 6},
		{Heading: domain.South, Steps: 7},
		{Heading: domain.East, Steps: 3},
		{Heading: domain.East, Steps: 4},
		{Heading: domain.North, Steps: 5},
		{Heading: domain.East, Steps: 2},
		{Heading: domain.South, Steps: 2},
		{Heading: domain.East, Steps: 2},
		{Heading: domain.North, Steps: 4},
	}, m.Waypoints)
	assert.Len(t, m.Instructions, 10)
}

func TestParse_SkipsBlankLines(t *testing.T) {
	m, err := ParseString("\n\n3 4\n   \n90 1\r\n\n")
	require.NoError(t, err)
	assert.Equal(t, domain.C(3, 4), m.Start)
	assert.Equal(t, []domain.Waypoint{{Heading: domain.East, Steps: 1}}, m.Waypoints)
}

func TestParse_StartOnly(t *testing.T) {
	m, err := ParseString("5 5")
	require.NoError(t, err)
	assert.Empty(t, m.Waypoints)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{"Empty Source", "", 0},
		{"Only Blank Lines", "\n \n", 0},
		{"Too Many Fields", "0 0\n90 1 2\n", 2},
		{"Too Few Fields", "0\n", 1},
		{"Non Integer Steps", "0 0\n90 two\n", 2},
		{"Non Integer Start", "a 0\n", 1},
		{"Bad Azimuth", "0 0\n90 1\n\n45 1\n", 4},
		{"Negative Steps", "0 0\n90 -1\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrParse)

			var pe *domain.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.wantLine, pe.Line)
		})
	}
}

func TestParse_InvalidAzimuthIsMatchable(t *testing.T) {
	_, err := ParseString("0 0\n100 1\n")
	assert.ErrorIs(t, err, domain.ErrInvalidAzimuth)
}

func TestFormat_RoundTrip(t *testing.T) {
	src := "0 11\n270 5\n0 6\n270 7\n"
	m, err := ParseString(src)
	require.NoError(t, err)

	out := Format(m)
	assert.Equal(t, src, out)

	again, err := Parse(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, m, again)
}
