package vglite

import "fmt"

// Palette is a color lookup table for indexed formats. Valid palettes hold
// 2, 4, 16 or 256 entries, matching INDEX_1, INDEX_2, INDEX_4 and INDEX_8.
type Palette []Color

// paletteSlot maps a palette length to its slot in a Context CLUT set.
func paletteSlot(n int) (int, bool) {
	switch n {
	case 2:
		return 0, true
	case 4:
		return 1, true
	case 16:
		return 2, true
	case 256:
		return 3, true
	default:
		return 0, false
	}
}

// clutSet stores one palette per index bit width.
type clutSet [4]Palette

// set copies colors into the slot selected by their count.
func (s *clutSet) set(colors []Color) error {
	slot, ok := paletteSlot(len(colors))
	if !ok {
		return fmt.Errorf("vglite: CLUT with %d entries: %w", len(colors), ErrInvalidArgument)
	}
	p := make(Palette, len(colors))
	copy(p, colors)
	s[slot] = p
	return nil
}

// forFormat returns the palette an indexed format reads, or nil if none has
// been configured.
func (s *clutSet) forFormat(f Format) Palette {
	slot, ok := paletteSlot(f.PaletteSize())
	if !ok {
		return nil
	}
	return s[slot]
}
