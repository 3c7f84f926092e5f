package pipbot

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platelayout/layout"
)

func TestTimeEst(t *testing.T) {
	d := TimeEst(NewPosition(0, 0, 0), NewPosition(3, 4, 0), 5)
	assert.Equal(t, time.Second, d)
	assert.Equal(t, time.Duration(0), TimeEst(NewPosition(1, 1, 1), NewPosition(1, 1, 1), 500))
}

func TestPlanner_Plan(t *testing.T) {
	plate := NewMatrix(Standard, "p", NewPosition(0, 0, 0), mm(3), mm(4), 2, 2)
	g, err := layout.New(layout.WithShape(2, 2))
	require.NoError(t, err)

	p := NewPlanner(plate, 1)
	p.Start = NewPosition(0, 0, 0)
	steps, err := p.Plan(g, false)
	require.NoError(t, err)
	require.Len(t, steps, 4)

	assert.Equal(t, []layout.Well{{Row: 0, Column: 0}}, steps[0].Wells)
	assert.Equal(t, time.Duration(0), steps[0].Travel)
	// (0,0) -> (0,1) is one column over
	assert.Equal(t, 4*time.Second, steps[1].Travel)
	// (0,1) -> (1,0) is the 3-4-5 diagonal
	assert.Equal(t, 5*time.Second, steps[2].Travel)
	assert.Equal(t, 13*time.Second, steps[3].Elapsed)
	assert.Equal(t, 0, g.Len())
}

func TestPlanner_PlanGrouped(t *testing.T) {
	plate := DefaultDeck().Matrices[1]
	g, err := layout.New(layout.WithGroupSize(4))
	require.NoError(t, err)

	steps, err := NewPlanner(plate, DefaultRate).Plan(g, true)
	require.NoError(t, err)
	require.Len(t, steps, 24)
	assert.Len(t, steps[0].Wells, 4)
	assert.True(t, steps[1].Target.Equal(plate.Cells[0][1]))
}

func TestPlanner_Errors(t *testing.T) {
	plate := NewMatrix(Standard, "small", NewPosition(0, 0, 0), mm(9), mm(9), 2, 2)
	g, err := layout.New()
	require.NoError(t, err)

	_, err = NewPlanner(plate, DefaultRate).Plan(g, false)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = NewPlanner(plate, 0).Plan(g, false)
	assert.Error(t, err)
}

func TestWriteGCode(t *testing.T) {
	plate := DefaultDeck().Matrices[1]
	g, err := layout.New(layout.WithGroupSize(2))
	require.NoError(t, err)

	steps, err := NewPlanner(plate, DefaultRate).Plan(g, true)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteGCode(&buf, steps[:2], DefaultRate))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"; A1 B1",
		"G0 X35.5 Y86.5 F30000",
		"G0 Z74.5 F30000",
		"; A2 B2",
		"G0 X44.5 Y86.5 F30000",
		"G0 Z74.5 F30000",
	}, lines)
}
