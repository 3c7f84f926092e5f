package pipbot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"platelayout/layout"
)

var ErrOutOfRange = errors.New("well outside matrix")

type CellType uint8

const (
	Tip CellType = iota
	Stock
	Standard
	Unknown
)

var cellTypeNames = [...]string{
	Tip:      "tip",
	Stock:    "stock",
	Standard: "standard",
	Unknown:  "unknown",
}

func (c CellType) String() string {
	if int(c) < len(cellTypeNames) {
		return cellTypeNames[c]
	}
	return fmt.Sprintf("CellType(%d)", uint8(c))
}

func (c *CellType) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range cellTypeNames {
		if n == s {
			*c = CellType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown cell type %q", string(text))
}

// Matrix is an aggregate of cells. This can be a well plate, pipette tip box,
// tube rack, etc.
type Matrix struct {
	Name     string
	Kind     CellType
	Cells    [][]*Position
	Home     *Position
	RowSpace decimal.Decimal
	ColSpace decimal.Decimal
	Rows     int
	Columns  int
}

func NewMatrix(kind CellType, name string, home *Position, rowSpace,
	colSpace decimal.Decimal, nRow, nCol int) *Matrix {
	m := &Matrix{
		Name:     name,
		Kind:     kind,
		Cells:    make([][]*Position, nRow),
		Home:     home,
		RowSpace: rowSpace,
		ColSpace: colSpace,
		Rows:     nRow,
		Columns:  nCol,
	}
	for row := 0; row < nRow; row++ {
		m.Cells[row] = make([]*Position, nCol)
		for col := 0; col < nCol; col++ {
			m.Cells[row][col] = &Position{
				X: home.X.Add(colSpace.Mul(decimal.NewFromInt(int64(col)))),
				Y: home.Y.Add(rowSpace.Mul(decimal.NewFromInt(int64(row)))),
				Z: home.Z,
			}
		}
	}
	return m
}

// Shape is the logical plate a layout.Generator should be built for to
// address every cell of m.
func (m *Matrix) Shape() layout.Shape {
	return layout.Shape{Rows: m.Rows, Columns: m.Columns}
}

// At returns the deck position of well w.
func (m *Matrix) At(w layout.Well) (*Position, error) {
	if w.Row < 0 || w.Row >= m.Rows || w.Column < 0 || w.Column >= m.Columns {
		return nil, fmt.Errorf("%w: %s is %s, %s has %s", ErrOutOfRange,
			w.Name(), w, m.Name, m.Shape())
	}
	return m.Cells[w.Row][w.Column], nil
}
