package pipbot

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platelayout/layout"
)

func TestNewMatrix(t *testing.T) {
	m := NewMatrix(Standard, "96", NewPosition(35.5, 86.5, 74.5), mm(9), mm(9), 8, 12)

	assert.Equal(t, layout.Shape{Rows: 8, Columns: 12}, m.Shape())
	require.Len(t, m.Cells, 8)
	require.Len(t, m.Cells[0], 12)

	assert.True(t, m.Cells[0][0].Equal(NewPosition(35.5, 86.5, 74.5)))
	assert.True(t, m.Cells[7][11].Equal(NewPosition(134.5, 149.5, 74.5)), m.Cells[7][11].String())
}

func TestMatrix_NoFloatDrift(t *testing.T) {
	m := NewMatrix(Standard, "384", NewPosition(0, 0, 0), mm(4.5), mm(4.5), 16, 24)
	assert.Equal(t, "103.5", m.Cells[0][23].X.String())
	assert.Equal(t, "67.5", m.Cells[15][0].Y.String())
}

func TestMatrix_At(t *testing.T) {
	m := DefaultDeck().Matrices[1]

	p, err := m.At(layout.Well{Row: 1, Column: 2})
	require.NoError(t, err)
	assert.True(t, p.X.Equal(decimal.RequireFromString("53.5")))
	assert.True(t, p.Y.Equal(decimal.RequireFromString("95.5")))

	_, err = m.At(layout.Well{Row: 8, Column: 0})
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = m.At(layout.Well{Row: 0, Column: 12})
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestCellType_UnmarshalText(t *testing.T) {
	var c CellType
	require.NoError(t, c.UnmarshalText([]byte("Stock")))
	assert.Equal(t, Stock, c)
	assert.Error(t, c.UnmarshalText([]byte("beaker")))
	assert.Equal(t, "tip", Tip.String())
}

func TestPosition_GCode(t *testing.T) {
	p := NewPosition(35.5, 86.5, 74.5)
	assert.Equal(t, "G0 X35.5 Y86.5 F30000\n", string(p.XY(500)))
	assert.Equal(t, "G0 Z74.5 F30000\n", string(p.Low(500)))
}
