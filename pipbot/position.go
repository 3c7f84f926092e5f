package pipbot

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Position is a point on the deck in millimetres.
type Position struct {
	X decimal.Decimal `toml:"x"`
	Y decimal.Decimal `toml:"y"`
	Z decimal.Decimal `toml:"z"`
}

func NewPosition(x, y, z float64) *Position {
	return &Position{
		X: decimal.NewFromFloat(x),
		Y: decimal.NewFromFloat(y),
		Z: decimal.NewFromFloat(z),
	}
}

func (p *Position) Equal(o *Position) bool {
	return p.X.Equal(o.X) && p.Y.Equal(o.Y) && p.Z.Equal(o.Z)
}

func (p *Position) String() string {
	return fmt.Sprintf("(%s, %s, %s)", p.X, p.Y, p.Z)
}

// XY is the G-code move to p in the horizontal plane at rate mm/s.
func (p *Position) XY(rate float64) []byte {
	return []byte(fmt.Sprintf("G0 X%s Y%s F%s\n", p.X, p.Y, feed(rate)))
}

// Low is the G-code move down (or up) to the height of p at rate mm/s.
func (p *Position) Low(rate float64) []byte {
	return []byte(fmt.Sprintf("G0 Z%s F%s\n", p.Z, feed(rate)))
}

// feed converts mm/s to the mm/min G-code expects.
func feed(rate float64) string {
	return decimal.NewFromFloat(rate).Mul(decimal.NewFromInt(60)).Round(0).String()
}
