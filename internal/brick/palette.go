package brick

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultPaletteHex is the fixed set of brick colours.
var DefaultPaletteHex = []string{
	"#E32822", // red
	"#0055BF", // blue
	"#F6AD33", // yellow
	"#237841", // green
	"#A0A5A9", // light grey
	"#1A1A1A", // black
	"#FFFFFF", // white
	"#9B59B6", // purple
}

// ErrUnknownColor is returned by Palette.Parse for input that names no palette entry.
var ErrUnknownColor = errors.New("colour not in palette")

// Palette is an ordered, fixed list of colours. Colours compare by their hex form so values
// parsed separately from the same string are equal.
type Palette struct {
	colors []colorful.Color
}

// NewPalette parses hex strings ("#RRGGBB" or "#RGB") into a palette.
func NewPalette(hexes []string) (Palette, error) {
	if len(hexes) == 0 {
		return Palette{}, errors.New("palette: no colours")
	}
	p := Palette{colors: make([]colorful.Color, 0, len(hexes))}
	for i, h := range hexes {
		c, err := colorful.Hex(strings.TrimSpace(h))
		if err != nil {
			return Palette{}, fmt.Errorf("palette entry %d %q: %w", i, h, err)
		}
		p.colors = append(p.colors, c)
	}
	return p, nil
}

// DefaultPalette returns the eight built-in colours.
func DefaultPalette() Palette {
	p, err := NewPalette(DefaultPaletteHex)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of colours.
func (p Palette) Len() int {
	return len(p.colors)
}

// At returns the i-th colour.
func (p Palette) At(i int) (colorful.Color, bool) {
	if i < 0 || i >= len(p.colors) {
		return colorful.Color{}, false
	}
	return p.colors[i], true
}

// First returns the first colour, the initial selection of a new session.
func (p Palette) First() colorful.Color {
	c, _ := p.At(0)
	return c
}

// Colors returns a copy of all colours in order.
func (p Palette) Colors() []colorful.Color {
	out := make([]colorful.Color, len(p.colors))
	copy(out, p.colors)
	return out
}

// Index returns the position of c in the palette, or -1.
func (p Palette) Index(c colorful.Color) int {
	hex := c.Hex()
	for i, pc := range p.colors {
		if pc.Hex() == hex {
			return i
		}
	}
	return -1
}

// Contains reports whether c is a palette colour.
func (p Palette) Contains(c colorful.Color) bool {
	return p.Index(c) >= 0
}

// maxIndexDigits bounds how long an all-digit input may be and still be read as an index.
// Longer digit strings ("237841") are hex.
const maxIndexDigits = 2

// Parse resolves s to a palette colour. s is either a zero-based index of at most two digits
// ("2") or a hex string with or without '#' ("#F6AD33", "237841", case-insensitive) that must
// match a palette entry. Short digit strings are always indices, so "12" never means #112222.
func (p Palette) Parse(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil && len(s) <= maxIndexDigits {
		c, ok := p.At(i)
		if !ok {
			return colorful.Color{}, fmt.Errorf("%w: index %d (have %d)", ErrUnknownColor, i, p.Len())
		}
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	i := p.Index(c)
	if i < 0 {
		return colorful.Color{}, fmt.Errorf("%w: %s", ErrUnknownColor, Hex(c))
	}
	return p.colors[i], nil
}

// Hex formats c as upper-case "#RRGGBB".
func Hex(c colorful.Color) string {
	return strings.ToUpper(c.Hex())
}
