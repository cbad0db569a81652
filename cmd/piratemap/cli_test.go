package main

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/piratemap/internal/config"
	"github.com/aretw0/piratemap/internal/logging"
	"github.com/aretw0/piratemap/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const expectedChart = "1..\n. .\n..x.2\n  . .\n  ..."

// execute runs the CLI against the shared testdata maps with no config file.
func execute(t *testing.T, configPath string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	if configPath == "" {
		configPath = filepath.Join(t.TempDir(), "missing.yaml")
	}

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", configPath, "--dir", "../../testdata"}, args...))

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestDecode_Stdout(t *testing.T) {
	out, _, err := execute(t, "", "decode", "treasure_1.txt", "treasure_2.txt")
	require.NoError(t, err)
	assert.Equal(t, expectedChart+"\n", out)
}

func TestDecode_OutputFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "chart.txt")

	out, _, err := execute(t, "", "decode", "treasure_1.txt", "treasure_2.txt", "-o", target)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, expectedChart, string(data), "no trailing newline in the file")
}

func TestDecode_PNG(t *testing.T) {
	target := filepath.Join(t.TempDir(), "chart.png")

	_, _, err := execute(t, "", "decode", "treasure_1.txt", "treasure_2.txt", "--png", target)
	require.NoError(t, err)

	f, err := os.Open(target)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Positive(t, img.Bounds().Dx())
}

func TestWritePNG(t *testing.T) {
	cells := [][]rune{[]rune("1.x"), []rune("  2")}

	target := filepath.Join(t.TempDir(), "chart.png")
	require.NoError(t, writePNG(target, cells))
	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	err = writePNG(filepath.Join(t.TempDir(), "missing", "chart.png"), cells)
	assert.ErrorContains(t, err, "create png")
}

func TestDecode_Report(t *testing.T) {
	out, _, err := execute(t, "", "decode", "treasure_1.txt", "treasure_2.txt", "--report")
	require.NoError(t, err)
	assert.Contains(t, out, "Treasure")
	assert.Contains(t, out, "treasure_2.txt")
}

func TestDecode_Errors(t *testing.T) {
	_, _, err := execute(t, "", "decode", "treasure_1.txt", "nope.txt")
	assert.ErrorIs(t, err, domain.ErrMapNotFound)
	assert.ErrorContains(t, err, "second map")

	_, _, err = execute(t, "", "decode", "treasure_1.txt")
	assert.Error(t, err, "two maps are required")
}

func TestTrace(t *testing.T) {
	out, _, err := execute(t, "", "trace", "treasure_2.txt")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 9)
	assert.Equal(t, "(2, 4)", lines[0])
	assert.Equal(t, "(2, 4)", lines[8])

	out, _, err = execute(t, "", "trace", "treasure_2.txt", "--normalize")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "(0, 2)\n"))
}

func TestLocate(t *testing.T) {
	out, _, err := execute(t, "", "locate", "treasure_1.txt", "treasure_2.txt")
	require.NoError(t, err)
	assert.Equal(t, "(2, 2)\n", out)
}

func TestShow(t *testing.T) {
	out, _, err := execute(t, "", "show", "treasure_1.txt", "treasure_2.txt")
	require.NoError(t, err)
	assert.Equal(t, expectedChart+"\n", out, "a buffer is not a terminal")

	out, _, err = execute(t, "", "show", "treasure_1.txt", "treasure_2.txt", "--color", "always")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")

	_, _, err = execute(t, "", "show", "treasure_1.txt", "treasure_2.txt", "--color", "rainbow")
	assert.ErrorContains(t, err, "rainbow")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "piratemap version "))
}

func TestLogging_FlagsOverrideConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "piratemap.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: error\n"), 0644))

	_, stderr, err := execute(t, cfgPath, "--log-level", "debug", "--log-format", "json", "locate", "treasure_1.txt", "treasure_2.txt")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"app ready"`)
	assert.Contains(t, stderr, `"level":"DEBUG"`)
}

func TestRedisCacheBackend(t *testing.T) {
	mr := miniredis.RunT(t)
	cfgPath := filepath.Join(t.TempDir(), "piratemap.yaml")
	body := fmt.Sprintf("cache:\n  backend: redis\n  redis:\n    addr: %s\n    prefix: \"test:\"\n", mr.Addr())
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0644))

	out, _, err := execute(t, cfgPath, "decode", "treasure_1.txt", "treasure_2.txt")
	require.NoError(t, err)
	assert.Equal(t, expectedChart+"\n", out)

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.True(t, strings.HasPrefix(keys[0], "test:"))
	cached, err := mr.Get(keys[0])
	require.NoError(t, err)
	assert.Equal(t, expectedChart, cached)
}

func TestRedisCacheBackend_Unavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfgPath := filepath.Join(t.TempDir(), "piratemap.yaml")
	body := fmt.Sprintf("cache:\n  backend: redis\n  redis:\n    addr: %s\n", addr)
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0644))

	_, _, err := execute(t, cfgPath, "locate", "treasure_1.txt", "treasure_2.txt")
	assert.ErrorContains(t, err, "redis cache unavailable")
}

func TestMCP_UnknownTransport(t *testing.T) {
	_, _, err := execute(t, "", "mcp", "--transport", "carrier-pigeon")
	assert.ErrorContains(t, err, "carrier-pigeon")
}

func TestServeUntilDone_Shutdown(t *testing.T) {
	a := &app{cfg: config.Default(), logger: logging.NewNop()}
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, serveUntilDone(ctx, srv, a))
}

func TestTrace_Mermaid(t *testing.T) {
	out, _, err := execute(t, "", "trace", "treasure_1.txt", "--format", "mermaid")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph LR\n"))
	assert.Contains(t, out, `treasure_1_txt_0 -- "E 2 (90°)" --> treasure_1_txt_1`)

	_, _, err = execute(t, "", "trace", "treasure_1.txt", "--format", "svg")
	assert.ErrorContains(t, err, "svg")
}

func TestLocate_Mermaid(t *testing.T) {
	out, _, err := execute(t, "", "locate", "treasure_1.txt", "treasure_2.txt", "--mermaid")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "(2, 2)\n"))
	assert.Contains(t, out, `treasure_1_txt_x{{"x (2, 2)"}}`)
	assert.Contains(t, out, `treasure_2_txt_x{{"x (2, 2)"}}`)
}

func TestLocate_FirstMapAwayFromOrigin(t *testing.T) {
	decoded, _, err := execute(t, "", "decode", "adrift_1.txt", "adrift_2.txt")
	require.NoError(t, err)
	assert.Equal(t, ".x1\n .\n", decoded)

	out, _, err := execute(t, "", "locate", "adrift_1.txt", "adrift_2.txt", "--mermaid")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "(10, 9)\n"), out)
	assert.Contains(t, out, `adrift_1_txt_x{{"x (10, 9)"}}`)
	assert.Contains(t, out, `adrift_2_txt_x{{"x (0, 1)"}}`)
	assert.Contains(t, out, "adrift_2_txt_0 -.-> adrift_2_txt_x")
}
