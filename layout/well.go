package layout

import (
	"fmt"
	"strconv"
)

// Well is one addressable cell of a plate. Rows and columns are zero-based.
type Well struct {
	Row    int
	Column int
}

// Name returns the label printed on the plate, e.g. A1 for (0, 0) and H12
// for (7, 11). Rows past Z continue as AA, AB, ...
func (w Well) Name() string {
	return rowLabel(w.Row) + strconv.Itoa(w.Column+1)
}

func (w Well) String() string {
	return fmt.Sprintf("(%d, %d)", w.Row, w.Column)
}

func rowLabel(row int) string {
	var b []byte
	for row >= 0 {
		b = append([]byte{byte('A' + row%26)}, b...)
		row = row/26 - 1
	}
	return string(b)
}

// Shape is the number of rows and columns on a plate.
type Shape struct {
	Rows    int
	Columns int
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Columns)
}
