package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		line string
		args []string
		ok   bool
	}{
		{"cmd mode paint", []string{"mode", "paint"}, true},
		{"cmd   grid   --hide ", []string{"grid", "--hide"}, true},
		{"cmd ", nil, true},
		{"mode paint", nil, false},
		{"CMD mode", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			args, ok := Parse(tc.line)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.args, args)
		})
	}
}

func TestExecute(t *testing.T) {
	r := NewRegistry()

	var shown bool
	fs := NewFlagSet("grid")
	show := fs.Bool("show", false, "")
	r.Register("grid", "--show|--hide", fs, func(args []string) error {
		shown = *show
		return nil
	})

	var got []string
	r.Register("color", "<index|#hex>", nil, func(args []string) error {
		got = args
		if len(args) == 0 {
			return errors.New("missing colour")
		}
		return nil
	})

	require.NoError(t, r.Execute([]string{"grid", "--show"}))
	assert.True(t, shown)

	require.NoError(t, r.Execute([]string{"color", "#0055BF"}))
	assert.Equal(t, []string{"#0055BF"}, got)
	assert.EqualError(t, r.Execute([]string{"color"}), "missing colour")

	assert.ErrorIs(t, r.Execute(nil), ErrMissingCommand)
	assert.ErrorIs(t, r.Execute([]string{"fly"}), ErrUnknownCommand)
	assert.Error(t, r.Execute([]string{"grid", "--bogus"}))

	assert.Equal(t, []string{"color", "grid"}, r.Names())
	assert.Len(t, r.Help(), 2)
}

func TestExecuteResetsFlagsBetweenRuns(t *testing.T) {
	r := NewRegistry()
	fs := NewFlagSet("grid")
	show := fs.Bool("show", false, "")
	hide := fs.Bool("hide", false, "")
	cell := fs.Int("cell", 10, "")

	var seen []bool
	r.Register("grid", "--show|--hide", fs, func([]string) error {
		seen = append(seen, *show, *hide)
		return nil
	})

	// A failed parse may already have stored --show and --cell.
	require.Error(t, r.Execute([]string{"grid", "--show", "--cell", "20", "--bogus"}))
	assert.Empty(t, seen)

	require.NoError(t, r.Execute([]string{"grid", "--hide"}))
	assert.Equal(t, []bool{false, true}, seen)
	assert.Equal(t, 10, *cell)

	require.NoError(t, r.Execute([]string{"grid", "--show"}))
	assert.Equal(t, []bool{false, true, true, false}, seen)
}
