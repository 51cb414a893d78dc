package maze

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLayout = `5 5
4 1
3 4
*****
* * *
*   *
*
* ***
`

func TestParse(t *testing.T) {
	m, err := Parse(strings.NewReader(sampleLayout))
	require.NoError(t, err)

	assert.Equal(t, 5, m.Rows())
	assert.Equal(t, 5, m.Cols())

	start, ok := m.Start()
	require.True(t, ok)
	assert.Equal(t, CellPosition{Row: 4, Col: 1}, start)
	exit, ok := m.Exit()
	require.True(t, ok)
	assert.Equal(t, CellPosition{Row: 3, Col: 4}, exit)

	assert.Equal(t, strings.Join([]string{
		"* * * * *",
		"* _ * _ *",
		"* _ _ _ *",
		"* _ _ _ _",
		"* _ * * *",
	}, "\n"), m.String())
}

func TestParse_Solve(t *testing.T) {
	m, err := Parse(strings.NewReader(sampleLayout))
	require.NoError(t, err)

	require.True(t, m.FindPath())
	assert.Equal(t, []CellPosition{
		{Row: 4, Col: 1}, {Row: 3, Col: 1}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
		{Row: 2, Col: 3}, {Row: 3, Col: 3}, {Row: 3, Col: 4},
	}, m.Path())
	assert.Equal(t, 2, m.Explored())
}

func TestParse_SeparatorsAndShortGrid(t *testing.T) {
	m, err := Parse(strings.NewReader("2,3\n0,0\n1,2\n*"))
	require.NoError(t, err)
	assert.Equal(t, "* _ _\n_ _ _", m.String())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty input", "", ErrMalformedLayout},
		{"Missing exit line", "2 2\n0 0\n", ErrMalformedLayout},
		{"Too many numbers", "2 2 2\n0 0\n1 1\n", ErrMalformedLayout},
		{"Zero dimension", "0 2\n0 0\n0 1\n", ErrInvalidDimensions},
		{"Start out of bounds", "2 2\n2 0\n1 1\n", ErrIndexOutOfBounds},
		{"Exit out of bounds", "2 2\n0 0\n1 5\n", ErrIndexOutOfBounds},
		{"Negative start row", "3 3\n-1 0\n2 2\n", ErrIndexOutOfBounds},
		{"Negative start col", "3 3\n0 -2\n2 2\n", ErrIndexOutOfBounds},
		{"Negative exit", "3 3\n0 0\n2,-1\n", ErrIndexOutOfBounds},
		{"Negative dimension", "-3 3\n0 0\n1 1\n", ErrInvalidDimensions},
		{"Non-numeric field", "3 x\n0 0\n1 1\n", ErrMalformedLayout},
		{"Oversized grid", "100000 100000\n0 0\n1 1\n", ErrInvalidDimensions},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mazefile.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleLayout), 0o600))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, m.Rows())

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
