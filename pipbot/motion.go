package pipbot

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"platelayout/layout"
)

// Clearance is where the head is parked before a run starts.
func Clearance() *Position {
	return NewPosition(0, 0, 85)
}

func TimeEst(start, end *Position, rate float64) time.Duration {
	dX := end.X.Sub(start.X).InexactFloat64()
	dY := end.Y.Sub(start.Y).InexactFloat64()
	dZ := end.Z.Sub(start.Z).InexactFloat64()
	tot := math.Sqrt(math.Pow(dX, 2) + math.Pow(dY, 2) + math.Pow(dZ, 2))
	timeUs := int64((tot / rate) * float64(1000000))
	return time.Duration(timeUs) * time.Microsecond
}

// Step is one stop of the head: the wells it serves and the position it
// moves to, which is the position of the first well.
type Step struct {
	Wells   []layout.Well
	Target  *Position
	Travel  time.Duration
	Elapsed time.Duration
}

// Planner turns a well sequence into head moves over one plate. It never
// talks to the bot; the moves are written out with WriteGCode.
type Planner struct {
	Plate  *Matrix
	Rate   float64
	Start  *Position
	Logger *log.Logger
}

func NewPlanner(plate *Matrix, rate float64) *Planner {
	return &Planner{
		Plate:  plate,
		Rate:   rate,
		Start:  Clearance(),
		Logger: log.Default(),
	}
}

// Plan drains g, one well per step, or one group per step when grouped is
// set.
func (p *Planner) Plan(g *layout.Generator, grouped bool) ([]Step, error) {
	if p.Rate <= 0 {
		return nil, fmt.Errorf("rate must be positive, got %v", p.Rate)
	}
	next := func() []layout.Well {
		if grouped {
			return g.NextGroup(nil)
		}
		if w, ok := g.Next(nil); ok {
			return []layout.Well{w}
		}
		return nil
	}

	var (
		steps   []Step
		elapsed time.Duration
	)
	current := p.Start
	if current == nil {
		current = Clearance()
	}
	for wells := next(); len(wells) > 0; wells = next() {
		target, err := p.Plate.At(wells[0])
		if err != nil {
			return nil, err
		}
		travel := TimeEst(current, target, p.Rate)
		elapsed += travel
		steps = append(steps, Step{
			Wells:   wells,
			Target:  target,
			Travel:  travel,
			Elapsed: elapsed,
		})
		if p.Logger != nil {
			p.Logger.Debug("step", "well", wells[0].Name(), "target", target, "travel", travel)
		}
		current = target
	}
	return steps, nil
}

// WriteGCode writes each step as a horizontal move followed by a move to the
// well height, the same pair of moves the bot makes for GoTo.
func WriteGCode(w io.Writer, steps []Step, rate float64) error {
	for _, s := range steps {
		names := make([]byte, 0, 4*len(s.Wells))
		for _, well := range s.Wells {
			names = append(names, ' ')
			names = append(names, well.Name()...)
		}
		if _, err := fmt.Fprintf(w, ";%s\n", names); err != nil {
			return err
		}
		if _, err := w.Write(s.Target.XY(rate)); err != nil {
			return err
		}
		if _, err := w.Write(s.Target.Low(rate)); err != nil {
			return err
		}
	}
	return nil
}
