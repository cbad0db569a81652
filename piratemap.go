package piratemap

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/piratemap/internal/presentation/chart"
	"github.com/aretw0/piratemap/pkg/adapters/file"
	"github.com/aretw0/piratemap/pkg/domain"
	"github.com/aretw0/piratemap/pkg/navigation"
	"github.com/aretw0/piratemap/pkg/observability"
	"github.com/aretw0/piratemap/pkg/ports"
)

// Decoder is the high-level entry point for the piratemap library.
// It runs the load, trace, locate and render pipeline over two maps.
type Decoder struct {
	loader  ports.MapLoader
	cache   ports.RenderCache
	metrics *observability.Metrics
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Decoder.
type Option func(*Decoder)

// WithLoader injects a custom MapLoader, bypassing the default filesystem loader.
func WithLoader(l ports.MapLoader) Option {
	return func(d *Decoder) {
		d.loader = l
	}
}

// WithCache enables render memoization.
func WithCache(c ports.RenderCache) Option {
	return func(d *Decoder) {
		d.cache = c
	}
}

// WithMetrics records decode outcomes on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(d *Decoder) {
		d.metrics = m
	}
}

// WithLogger sets a custom structured logger for the decoder.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Decoder) {
		d.logger = logger
	}
}

// New initializes a Decoder.
// By default, map names are file paths relative to dir.
// If WithLoader option is provided, dir is ignored.
func New(dir string, opts ...Option) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt(d)
	}

	if d.loader == nil {
		d.loader = file.NewLoader(dir)
	}
	if d.logger == nil {
		d.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return d
}

// Loader returns the underlying MapLoader.
func (d *Decoder) Loader() ports.MapLoader {
	return d.loader
}

// Load parses one map by name.
func (d *Decoder) Load(ctx context.Context, name string) (domain.TreasureMap, error) {
	m, err := d.loader.Load(ctx, name)
	if err != nil {
		return domain.TreasureMap{}, err
	}
	d.logger.Debug("map loaded", "map", name, "start", m.Start.String(), "waypoints", len(m.Waypoints))
	return m, nil
}

// Trace loads a map and returns its visited cells.
func (d *Decoder) Trace(ctx context.Context, name string) (domain.Path, error) {
	m, err := d.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	path := navigation.TraceMap(m)
	d.metrics.ObservePath(len(path))
	d.logger.Debug("path traced", "map", name, "cells", len(path))
	return path, nil
}

// Locate loads two maps and returns the treasure in the first map's own frame.
func (d *Decoder) Locate(ctx context.Context, name1, name2 string) (domain.Coordinate, error) {
	m1, m2, err := d.loadPair(ctx, name1, name2)
	if err != nil {
		return domain.Coordinate{}, err
	}
	return d.LocateMaps(m1, m2)
}

// LocateMaps returns the treasure for two parsed maps in the first map's own
// frame: the x cell of the composed chart plus the chart's offset.
func (d *Decoder) LocateMaps(m1, m2 domain.TreasureMap) (domain.Coordinate, error) {
	treasure, offset, err := navigation.LocateOnCanvas(navigation.TraceMap(m1), navigation.TraceMap(m2))
	if err != nil {
		d.logger.Debug("treasure not located", "error", err)
		return domain.Coordinate{}, err
	}
	treasure = treasure.Add(offset.Row, offset.Col)
	d.logger.Debug("treasure located", "treasure", treasure.String())
	return treasure, nil
}

// Compose loads two maps and returns the composed chart.
func (d *Decoder) Compose(ctx context.Context, name1, name2 string) (*chart.Chart, error) {
	m1, m2, err := d.loadPair(ctx, name1, name2)
	if err != nil {
		return nil, err
	}
	return d.ComposeMaps(m1, m2)
}

// ComposeMaps composes two already parsed maps, recording the outcome in the
// decode metrics.
func (d *Decoder) ComposeMaps(m1, m2 domain.TreasureMap) (*chart.Chart, error) {
	start := time.Now()
	ch, err := chart.Compose(m1, m2)
	d.metrics.ObserveDecode(start, err)
	if err != nil {
		d.logger.Debug("chart not composed", "error", err)
		return nil, err
	}
	d.logger.Debug("chart composed", "treasure", ch.Treasure.String(), "offset", ch.Offset.String())
	return ch, nil
}

// Decode loads two maps by name and returns the rendered chart text.
func (d *Decoder) Decode(ctx context.Context, name1, name2 string) (string, error) {
	start := time.Now()

	m1, m2, err := d.loadPair(ctx, name1, name2)
	if err != nil {
		d.metrics.ObserveDecode(start, err)
		return "", err
	}
	return d.decode(ctx, start, m1, m2)
}

// DecodeMaps renders two already parsed maps.
func (d *Decoder) DecodeMaps(ctx context.Context, m1, m2 domain.TreasureMap) (string, error) {
	return d.decode(ctx, time.Now(), m1, m2)
}

// DecodeFiles decodes two map files and writes the render to out.
func (d *Decoder) DecodeFiles(ctx context.Context, in1, in2, out string) error {
	rendered, err := d.Decode(ctx, in1, in2)
	if err != nil {
		return err
	}
	return file.WriteRender(out, rendered)
}

func (d *Decoder) decode(ctx context.Context, start time.Time, m1, m2 domain.TreasureMap) (string, error) {
	key := CacheKey(m1, m2)

	if d.cache != nil {
		cached, err := d.cache.Get(ctx, key)
		switch {
		case err == nil:
			d.metrics.ObserveCache(true)
			d.metrics.ObserveDecode(start, nil)
			d.logger.Debug("render served from cache", "key", key)
			return cached, nil
		case errors.Is(err, domain.ErrCacheMiss):
			d.metrics.ObserveCache(false)
		default:
			// A broken cache must not fail the decode.
			d.logger.Warn("render cache lookup failed", "error", err)
		}
	}

	rendered, err := chart.Render(m1, m2)
	d.metrics.ObserveDecode(start, err)
	if err != nil {
		d.logger.Debug("render failed", "error", err)
		return "", err
	}

	if d.cache != nil {
		if err := d.cache.Set(ctx, key, rendered); err != nil {
			d.logger.Warn("render cache store failed", "error", err)
		}
	}
	return rendered, nil
}

func (d *Decoder) loadPair(ctx context.Context, name1, name2 string) (domain.TreasureMap, domain.TreasureMap, error) {
	m1, err := d.Load(ctx, name1)
	if err != nil {
		return domain.TreasureMap{}, domain.TreasureMap{}, fmt.Errorf("first map: %w", err)
	}
	m2, err := d.Load(ctx, name2)
	if err != nil {
		return domain.TreasureMap{}, domain.TreasureMap{}, fmt.Errorf("second map: %w", err)
	}
	return m1, m2, nil
}

// CacheKey digests the resolved content of two maps.
// Maps that trace the same walks share a key regardless of their source format.
func CacheKey(m1, m2 domain.TreasureMap) string {
	h := sha256.New()
	for _, m := range []domain.TreasureMap{m1, m2} {
		fmt.Fprintf(h, "%d,%d;", m.Start.Row, m.Start.Col)
		for _, wp := range m.Waypoints {
			fmt.Fprintf(h, "%s%d;", wp.Heading, wp.Steps)
		}
		h.Write([]byte{0x1e})
	}
	return hex.EncodeToString(h.Sum(nil))
}
