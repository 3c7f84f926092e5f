// Package layout produces deterministic, non-repeating sequences of plate
// wells for a caller that acts on one well, or one group of wells, at a time.
//
// A Generator computes its whole sequence once in New. Next and NextGroup
// then remove wells from the front of the sequence, or from the first
// position in a requested column, until it is exhausted. A Generator is not
// safe for concurrent use.
package layout

import "fmt"

const (
	DefaultRows      = 8
	DefaultColumns   = 12
	DefaultGroupSize = 1
)

// Generator hands out the wells of a precomputed layout, each exactly once.
type Generator struct {
	shape     Shape
	groupSize int
	strategy  Strategy
	starts    []int
	wells     []Well
}

type Option func(*Generator)

// WithGroupSize sets how many consecutive wells NextGroup returns, e.g. the
// number of replicates per sample.
func WithGroupSize(n int) Option {
	return func(g *Generator) {
		g.groupSize = n
	}
}

func WithStrategy(s Strategy) Option {
	return func(g *Generator) {
		g.strategy = s
	}
}

func WithShape(rows, columns int) Option {
	return func(g *Generator) {
		g.shape = Shape{Rows: rows, Columns: columns}
	}
}

// New builds the layout for an 8x12 plate, group size 1 and SampleLayout
// unless opts say otherwise.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{
		shape:     Shape{Rows: DefaultRows, Columns: DefaultColumns},
		groupSize: DefaultGroupSize,
		strategy:  SampleLayout,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.shape.Rows < 1 || g.shape.Columns < 1 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidShape, g.shape)
	}
	if g.groupSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGroupSize, g.groupSize)
	}
	build, ok := layoutFuncs[g.strategy]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, g.strategy)
	}
	switch g.strategy {
	case CdcSampleLayout:
		// larger groups would overlap the second block
		if g.groupSize > cdcBlockRows {
			return nil, fmt.Errorf("%w: %s needs at most %d, got %d",
				ErrInvalidGroupSize, g.strategy, cdcBlockRows, g.groupSize)
		}
	case CdcPrimerLayout:
		g.groupSize = cdcPrimerGroupSize
	}

	g.starts = StartOffsets(g.shape.Rows, g.groupSize)
	g.wells = build(g.shape.Rows, g.shape.Columns, g.groupSize, g.starts)
	return g, nil
}

func (g *Generator) Shape() Shape {
	return g.shape
}

// GroupSize is the size of the groups NextGroup returns. For CdcPrimerLayout
// it is always 3.
func (g *Generator) GroupSize() int {
	return g.groupSize
}

func (g *Generator) Strategy() Strategy {
	return g.strategy
}

func (g *Generator) StartOffsets() []int {
	return append([]int(nil), g.starts...)
}

// Len is the number of wells not yet taken.
func (g *Generator) Len() int {
	return len(g.wells)
}

// Remaining returns a copy of the wells not yet taken, in sequence order.
func (g *Generator) Remaining() []Well {
	return append([]Well(nil), g.wells...)
}

// Next removes and returns the first remaining well, or the first one in
// column when column is not nil. It reports false when no such well is left.
func (g *Generator) Next(column *int) (Well, bool) {
	i := g.indexOf(column)
	if i < 0 {
		return Well{}, false
	}
	w := g.wells[i]
	g.wells = append(g.wells[:i], g.wells[i+1:]...)
	return w, true
}

// NextGroup removes and returns up to GroupSize consecutive wells starting
// where Next would. The column only picks the first well; the rest of the
// group is whatever follows it in the sequence, whatever its column. The
// group is short when the sequence runs out and nil when nothing matches.
func (g *Generator) NextGroup(column *int) []Well {
	i := g.indexOf(column)
	if i < 0 {
		return nil
	}
	end := min(i+g.groupSize, len(g.wells))
	group := append([]Well(nil), g.wells[i:end]...)
	g.wells = append(g.wells[:i], g.wells[end:]...)
	return group
}

// IterateColumn advances a caller-held column cursor. A nil cursor stays nil.
// The cursor wraps to 0 only once it is no longer below the column count, so
// it takes the value Columns, which matches no well, before wrapping.
func (g *Generator) IterateColumn(column *int) *int {
	if column == nil {
		return nil
	}
	next := 0
	if *column < g.shape.Columns {
		next = *column + 1
	}
	return &next
}

func (g *Generator) indexOf(column *int) int {
	if len(g.wells) == 0 {
		return -1
	}
	if column == nil {
		return 0
	}
	for i, w := range g.wells {
		if w.Column == *column {
			return i
		}
	}
	return -1
}
