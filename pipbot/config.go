package pipbot

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"platelayout/layout"
)

const (
	DefaultRate  = 500
	DefaultPlate = "96"
)

var ErrNoMatrix = errors.New("no such matrix")

// Deck describes how individual Matrix units are arranged on the build plate.
type Deck struct {
	Matrices []*Matrix
}

func mm(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// DefaultDeck is the deck used when no labware file is given.
func DefaultDeck() *Deck {
	return &Deck{
		Matrices: []*Matrix{
			NewMatrix(Unknown, "Purp", NewPosition(29, 17, 80), mm(13.5), mm(13.5), 5, 16),
			NewMatrix(Standard, "96", NewPosition(35.5, 86.5, 74.5), mm(9), mm(9), 8, 12),
			NewMatrix(Stock, "12", NewPosition(46, 178.5, 75), mm(26), mm(26), 3, 4),
			NewMatrix(Tip, "tips", NewPosition(165, 103.5, 73.5), mm(8.5), mm(8.5), 12, 8),
		},
	}
}

func (d *Deck) Matrix(name string) (*Matrix, error) {
	for _, m := range d.Matrices {
		if m.Name == name {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNoMatrix, name)
}

type deckFile struct {
	Matrix []matrixDef `toml:"matrix"`
}

type matrixDef struct {
	Name     string          `toml:"name"`
	Kind     CellType        `toml:"kind"`
	Home     Position        `toml:"home"`
	RowSpace decimal.Decimal `toml:"row_space"`
	ColSpace decimal.Decimal `toml:"col_space"`
	Rows     int             `toml:"rows"`
	Columns  int             `toml:"columns"`
}

// ReadDeck parses a TOML labware file with one [[matrix]] table per plate,
// rack or tip box.
func ReadDeck(r io.Reader) (*Deck, error) {
	var f deckFile
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode labware: %w", err)
	}
	d := &Deck{Matrices: make([]*Matrix, 0, len(f.Matrix))}
	for i, def := range f.Matrix {
		if def.Name == "" {
			return nil, fmt.Errorf("matrix %d: missing name", i)
		}
		if def.Rows < 1 || def.Columns < 1 {
			return nil, fmt.Errorf("matrix %q: %w: %dx%d", def.Name,
				layout.ErrInvalidShape, def.Rows, def.Columns)
		}
		home := def.Home
		d.Matrices = append(d.Matrices, NewMatrix(def.Kind, def.Name, &home,
			def.RowSpace, def.ColSpace, def.Rows, def.Columns))
	}
	return d, nil
}

func LoadDeck(path string) (*Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadDeck(f)
}

// Config holds the defaults for building and planning a sequence. Flags
// override it.
type Config struct {
	Rows      int
	Columns   int
	GroupSize int
	Strategy  layout.Strategy
	Rate      float64
	Labware   string
	Plate     string
}

const envPrefix = "PLATELAYOUT_"

// LoadConfig reads PLATELAYOUT_* variables from the environment, falling back
// to the given dotenv files (.env when none are named). Missing files are
// ignored; variables already in the environment win over file values.
func LoadConfig(files ...string) (Config, error) {
	cfg := Config{
		Rows:      layout.DefaultRows,
		Columns:   layout.DefaultColumns,
		GroupSize: layout.DefaultGroupSize,
		Strategy:  layout.SampleLayout,
		Rate:      DefaultRate,
		Plate:     DefaultPlate,
	}
	if len(files) == 0 {
		files = []string{".env"}
	}
	vars := map[string]string{}
	for _, file := range files {
		m, err := godotenv.Read(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return cfg, fmt.Errorf("read %s: %w", file, err)
		}
		for k, v := range m {
			if _, ok := vars[k]; !ok {
				vars[k] = v
			}
		}
	}
	lookup := func(key string) (string, bool) {
		key = envPrefix + key
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}

	var err error
	for key, dst := range map[string]*int{
		"ROWS":       &cfg.Rows,
		"COLUMNS":    &cfg.Columns,
		"GROUP_SIZE": &cfg.GroupSize,
	} {
		if v, ok := lookup(key); ok {
			if *dst, err = strconv.Atoi(v); err != nil {
				return cfg, fmt.Errorf("%s%s: %w", envPrefix, key, err)
			}
		}
	}
	if v, ok := lookup("STRATEGY"); ok {
		if cfg.Strategy, err = layout.ParseStrategy(v); err != nil {
			return cfg, fmt.Errorf("%sSTRATEGY: %w", envPrefix, err)
		}
	}
	if v, ok := lookup("RATE"); ok {
		if cfg.Rate, err = strconv.ParseFloat(v, 64); err != nil {
			return cfg, fmt.Errorf("%sRATE: %w", envPrefix, err)
		}
	}
	if v, ok := lookup("LABWARE"); ok {
		cfg.Labware = v
	}
	if v, ok := lookup("PLATE"); ok {
		cfg.Plate = v
	}
	return cfg, nil
}

// Options turns cfg into generator options.
func (c Config) Options() []layout.Option {
	return []layout.Option{
		layout.WithShape(c.Rows, c.Columns),
		layout.WithGroupSize(c.GroupSize),
		layout.WithStrategy(c.Strategy),
	}
}

// Deck loads the labware file named by c, or the default deck.
func (c Config) Deck() (*Deck, error) {
	if c.Labware == "" {
		return DefaultDeck(), nil
	}
	return LoadDeck(c.Labware)
}
