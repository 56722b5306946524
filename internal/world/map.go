package world

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/chunkrun/internal/telemetry"
)

// ErrBudgetExhausted is returned when a chunk would push the map past its tile budget.
var ErrBudgetExhausted = errors.New("world tile budget exhausted")

// Map owns the world's chunks. Chunks are appended and never removed or resized.
type Map struct {
	chunks   []*Chunk
	numTiles int
	budget   int
	log      *logrus.Entry
}

// ChunkSpec describes a chunk to insert: its bound and row-major tiles.
type ChunkSpec struct {
	Bound TileBound
	Tiles []Tile
}

// NewMap creates an empty map with the given tile budget.
// A non-positive budget uses TotalTilesInMap.
func NewMap(budget int) *Map {
	if budget <= 0 {
		budget = TotalTilesInMap
	}
	return &Map{
		chunks: make([]*Chunk, 0),
		budget: budget,
		log:    logrus.WithField("component", "world"),
	}
}

// Build creates a map and inserts every spec in order. Specs refused for
// budget reasons are logged and skipped; any other failure aborts the build.
func Build(ctx context.Context, budget int, specs []ChunkSpec) (*Map, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	startTime := time.Now()
	m := NewMap(budget)
	seams, refused := 0, 0

	for i, spec := range specs {
		n, err := m.AddChunk(spec.Bound, spec.Tiles)
		if errors.Is(err, ErrBudgetExhausted) {
			refused++
			continue
		}
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("chunk %d: %w", i, err)
		}
		seams += n
	}

	span.SetAttributes(
		attribute.Int("world.chunk_count", len(m.chunks)),
		attribute.Int("world.tile_count", m.numTiles),
		attribute.Int("world.seam_count", seams),
		attribute.Int("world.refused_count", refused),
		attribute.Int64("world.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return m, nil
}

// TryFit admits the bound's tiles against the remaining budget.
func (m *Map) TryFit(bound TileBound) error {
	if m.numTiles+bound.Area() > m.budget {
		return fmt.Errorf("%w: %d + %d > %d", ErrBudgetExhausted, m.numTiles, bound.Area(), m.budget)
	}
	m.numTiles += bound.Area()
	return nil
}

// AddChunk inserts a chunk, fuses its shared edges with every existing chunk
// and returns the number of seams opened. On error the map is unchanged.
func (m *Map) AddChunk(bound TileBound, tiles []Tile) (int, error) {
	if err := bound.Validate(); err != nil {
		return 0, err
	}
	c := NewChunk(bound)
	if err := c.Init(); err != nil {
		return 0, err
	}
	if err := m.TryFit(bound); err != nil {
		m.log.WithFields(logrus.Fields{
			"x": bound.X, "y": bound.Y, "width": bound.Width, "height": bound.Height,
			"num_tiles": m.numTiles,
		}).Warn("chunk refused")
		return 0, err
	}
	c.Fill(tiles)

	seams := link(c, m.chunks)
	m.chunks = append(m.chunks, c)

	m.log.WithFields(logrus.Fields{
		"index": len(m.chunks) - 1,
		"x":     bound.X, "y": bound.Y, "width": bound.Width, "height": bound.Height,
		"seams": seams,
	}).Debug("chunk added")
	return seams, nil
}

// Chunks returns the chunks in insertion order.
func (m *Map) Chunks() []*Chunk {
	return m.chunks
}

// NumTiles returns the number of tiles admitted so far.
func (m *Map) NumTiles() int {
	return m.numTiles
}

// Budget returns the map's tile budget.
func (m *Map) Budget() int {
	return m.budget
}

// Overlapping returns the chunks whose pixel extent intersects r.
func (m *Map) Overlapping(r Rect) []*Chunk {
	var out []*Chunk
	for _, c := range m.chunks {
		if c.Extent().Intersects(r) {
			out = append(out, c)
		}
	}
	return out
}

// TileAt returns the tile under a pixel from the first chunk containing it.
// Pixels outside every chunk read as TileEmpty.
func (m *Map) TileAt(absX, absY int) Tile {
	for _, c := range m.chunks {
		if t, err := c.TileAt(absX, absY); err == nil {
			return t
		}
	}
	return TileEmpty
}
