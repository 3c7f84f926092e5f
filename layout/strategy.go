package layout

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
)

// Strategy selects the traversal order used to build a layout.
type Strategy uint8

const (
	// SampleLayout walks row blocks, then columns left to right, then the
	// rows within a group.
	SampleLayout Strategy = iota
	// PrimerLayout visits the same wells as SampleLayout but with the
	// within-group row offset as the outermost loop.
	PrimerLayout
	// CdcSampleLayout is fixed to a 12 column plate split into two 4 row
	// blocks.
	CdcSampleLayout
	// CdcPrimerLayout is fixed to a 12 column plate and a group size of 3.
	CdcPrimerLayout
)

const (
	cdcColumns         = 12
	cdcBlockRows       = 4
	cdcPrimerGroupSize = 3
)

var cdcBlockStarts = []int{0, cdcBlockRows}

var strategyNames = [...]string{
	SampleLayout:    "SampleLayout",
	PrimerLayout:    "PrimerLayout",
	CdcSampleLayout: "CdcSampleLayout",
	CdcPrimerLayout: "CdcPrimerLayout",
}

type layoutFunc func(rows, columns, groupSize int, starts []int) []Well

var layoutFuncs = map[Strategy]layoutFunc{
	SampleLayout:    sampleLayout,
	PrimerLayout:    primerLayout,
	CdcSampleLayout: cdcSampleLayout,
	CdcPrimerLayout: cdcPrimerLayout,
}

// Strategies returns every recognized strategy in declaration order.
func Strategies() []Strategy {
	ret := make([]Strategy, len(strategyNames))
	for i := range strategyNames {
		ret[i] = Strategy(i)
	}
	return ret
}

func (s Strategy) Valid() bool {
	return int(s) < len(strategyNames)
}

func (s Strategy) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
	return strategyNames[s]
}

// ParseStrategy resolves a strategy by name. Matching ignores case and
// accepts snake_case and kebab-case spellings, so "cdc_primer_layout",
// "cdc-primer-layout" and "CdcPrimerLayout" are the same strategy.
func ParseStrategy(name string) (Strategy, error) {
	fold := cases.Fold()
	key := fold.String(strcase.ToCamel(strings.TrimSpace(name)))
	if key != "" {
		for i, n := range strategyNames {
			if fold.String(n) == key {
				return Strategy(i), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Set implements pflag.Value.
func (s *Strategy) Set(name string) error {
	v, err := ParseStrategy(name)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s *Strategy) Type() string {
	return "strategy"
}

func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(text []byte) error {
	return s.Set(string(text))
}

// StartOffsets returns the first row of each block of groupSize rows. The
// block count is rounded up, so a trailing partial block still gets a start.
func StartOffsets(rows, groupSize int) []int {
	if rows < 1 || groupSize < 1 {
		return nil
	}
	blocks := (rows + groupSize - 1) / groupSize
	starts := make([]int, 0, blocks)
	for b := 0; b < blocks; b++ {
		starts = append(starts, b*groupSize)
	}
	return starts
}

func sampleLayout(rows, columns, groupSize int, starts []int) []Well {
	lyt := make([]Well, 0, rows*columns)
	for _, j := range starts {
		for c := 0; c < columns; c++ {
			for i := 0; i < groupSize && i+j < rows; i++ {
				lyt = append(lyt, Well{Row: i + j, Column: c})
			}
		}
	}
	return lyt
}

func primerLayout(rows, columns, groupSize int, starts []int) []Well {
	lyt := make([]Well, 0, rows*columns)
	for i := 0; i < groupSize; i++ {
		for _, j := range starts {
			if i+j >= rows {
				continue
			}
			for c := 0; c < columns; c++ {
				lyt = append(lyt, Well{Row: i + j, Column: c})
			}
		}
	}
	return lyt
}

func cdcSampleLayout(_, _, groupSize int, _ []int) []Well {
	lyt := make([]Well, 0, len(cdcBlockStarts)*cdcColumns*groupSize)
	for _, j := range cdcBlockStarts {
		for c := 0; c < cdcColumns; c++ {
			for i := 0; i < groupSize; i++ {
				lyt = append(lyt, Well{Row: i + j, Column: c})
			}
		}
	}
	return lyt
}

// TODO: derive the replicate count from groupSize instead of fixing it at 3.
func cdcPrimerLayout(_, _, _ int, _ []int) []Well {
	lyt := make([]Well, 0, cdcPrimerGroupSize*len(cdcBlockStarts)*cdcColumns)
	for i := 0; i < cdcPrimerGroupSize; i++ {
		for _, j := range cdcBlockStarts {
			for c := 0; c < cdcColumns; c++ {
				lyt = append(lyt, Well{Row: i + j, Column: c})
			}
		}
	}
	return lyt
}
