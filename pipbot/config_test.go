package pipbot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platelayout/layout"
)

var configKeys = []string{"ROWS", "COLUMNS", "GROUP_SIZE", "STRATEGY", "RATE", "LABWARE", "PLATE"}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(envPrefix+k, "")
		require.NoError(t, os.Unsetenv(envPrefix+k))
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Config{
		Rows:      8,
		Columns:   12,
		GroupSize: 1,
		Strategy:  layout.SampleLayout,
		Rate:      DefaultRate,
		Plate:     DefaultPlate,
	}, cfg)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "test.env", strings.Join([]string{
		"PLATELAYOUT_ROWS=16",
		"PLATELAYOUT_COLUMNS=24",
		"PLATELAYOUT_GROUP_SIZE=4",
		"PLATELAYOUT_STRATEGY=primer_layout",
		"PLATELAYOUT_PLATE=384",
	}, "\n"))
	t.Setenv("PLATELAYOUT_GROUP_SIZE", "2")
	t.Setenv("PLATELAYOUT_RATE", "250.5")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Rows)
	assert.Equal(t, 24, cfg.Columns)
	assert.Equal(t, 2, cfg.GroupSize)
	assert.Equal(t, layout.PrimerLayout, cfg.Strategy)
	assert.Equal(t, 250.5, cfg.Rate)
	assert.Equal(t, "384", cfg.Plate)

	g, err := layout.New(cfg.Options()...)
	require.NoError(t, err)
	assert.Equal(t, 384, g.Len())
}

func TestLoadConfig_Errors(t *testing.T) {
	clearEnv(t)
	t.Setenv("PLATELAYOUT_STRATEGY", "bogus")
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, layout.ErrUnknownStrategy)

	clearEnv(t)
	t.Setenv("PLATELAYOUT_ROWS", "eight")
	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "PLATELAYOUT_ROWS")
}

const labware = `
[[matrix]]
name = "384"
kind = "standard"
rows = 16
columns = 24
row_space = "4.5"
col_space = "4.5"
home = { x = "12", y = "9", z = "70.25" }

[[matrix]]
name = "reservoir"
kind = "stock"
rows = 1
columns = 12
row_space = "0"
col_space = "9"
home = { x = "200", y = "10", z = "60" }
`

func TestReadDeck(t *testing.T) {
	d, err := ReadDeck(strings.NewReader(labware))
	require.NoError(t, err)
	require.Len(t, d.Matrices, 2)

	m, err := d.Matrix("384")
	require.NoError(t, err)
	assert.Equal(t, Standard, m.Kind)
	assert.Equal(t, layout.Shape{Rows: 16, Columns: 24}, m.Shape())
	assert.True(t, m.Cells[15][23].Equal(NewPosition(115.5, 76.5, 70.25)), m.Cells[15][23].String())

	r, err := d.Matrix("reservoir")
	require.NoError(t, err)
	assert.Equal(t, Stock, r.Kind)

	_, err = d.Matrix("missing")
	assert.ErrorIs(t, err, ErrNoMatrix)
}

func TestReadDeck_Invalid(t *testing.T) {
	_, err := ReadDeck(strings.NewReader("[[matrix]]\nname = \"x\"\nrows = 0\ncolumns = 1\n"))
	assert.ErrorIs(t, err, layout.ErrInvalidShape)

	_, err = ReadDeck(strings.NewReader("[[matrix]]\nrows = 1\ncolumns = 1\n"))
	assert.ErrorContains(t, err, "missing name")

	_, err = ReadDeck(strings.NewReader("[[matrix]]\nname = \"x\"\nkind = \"beaker\"\n"))
	assert.Error(t, err)
}

func TestConfig_Deck(t *testing.T) {
	d, err := Config{}.Deck()
	require.NoError(t, err)
	_, err = d.Matrix(DefaultPlate)
	require.NoError(t, err)

	path := writeFile(t, "labware.toml", labware)
	d, err = Config{Labware: path}.Deck()
	require.NoError(t, err)
	assert.Len(t, d.Matrices, 2)

	_, err = Config{Labware: filepath.Join(t.TempDir(), "nope.toml")}.Deck()
	assert.Error(t, err)
}
