package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/piratemap/pkg/domain"
)

// Load reads and parses a map file, choosing the format by extension.
func Load(path string) (domain.TreasureMap, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.TreasureMap{}, fmt.Errorf("%w: %s", domain.ErrMapNotFound, path)
		}
		return domain.TreasureMap{}, fmt.Errorf("open map file: %w", err)
	}
	defer func() { _ = f.Close() }()

	m, err := parseByExt(f, path)
	if err != nil {
		return domain.TreasureMap{}, fmt.Errorf("parse map file %s: %w", path, err)
	}
	return m, nil
}

func parseByExt(r io.Reader, path string) (domain.TreasureMap, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(r)
	default:
		return Parse(r)
	}
}

// Loader implements ports.MapLoader over a directory.
// Map names are paths relative to the root; absolute names are used as-is.
type Loader struct {
	Root string
}

// NewLoader creates a Loader rooted at dir. An empty dir means the working directory.
func NewLoader(dir string) *Loader {
	if dir == "" {
		dir = "."
	}
	return &Loader{Root: dir}
}

// Load parses the named map file.
func (l *Loader) Load(ctx context.Context, name string) (domain.TreasureMap, error) {
	if err := ctx.Err(); err != nil {
		return domain.TreasureMap{}, err
	}
	return Load(l.path(name))
}

// List returns the map files (.txt, .yaml, .yml) directly under the root.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(l.Root)
	if err != nil {
		return nil, fmt.Errorf("read map directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".txt", ".yaml", ".yml":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (l *Loader) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(l.Root, name)
}

// WriteRender writes a rendered map to path, replacing any existing file.
func WriteRender(path, rendered string) error {
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("write map render: %w", err)
	}
	return nil
}
