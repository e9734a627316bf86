package editor

import (
	"errors"
	"fmt"
	"strings"
)

// Mode is the active editing tool. Values outside the four known modes can be stored (SetMode
// does not validate) but make every pointer-down a no-op.
type Mode string

const (
	ModeAdd    Mode = "add"
	ModeMove   Mode = "move"
	ModeDelete Mode = "delete"
	ModePaint  Mode = "paint"
)

// Modes lists the known modes in toolbar order.
var Modes = []Mode{ModeAdd, ModeMove, ModeDelete, ModePaint}

var ErrUnknownMode = errors.New("unknown mode")

// ParseMode maps a user-typed name to a known mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q (want add, move, delete or paint)", ErrUnknownMode, s)
	}
	return m, nil
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeAdd, ModeMove, ModeDelete, ModePaint:
		return true
	}
	return false
}

// Previews reports whether the ghost follows the pointer in this mode.
func (m Mode) Previews() bool {
	return m == ModeAdd || m == ModeMove
}

func (m Mode) String() string {
	return string(m)
}
