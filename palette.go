package deltae

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// PaletteEntry is a named palette colour with its hex notation and the
// CIE L*a*b* coordinate it converts to.
type PaletteEntry struct {
	Name string
	Hex  string
	Lab  Triplet
}

// Palette is a set of named colours indexed for nearest-colour queries
// under any registered colour-difference method.
type Palette struct {
	entries []PaletteEntry
	byLab   map[Triplet]int
	tree    *LabNode
}

// LoadPalette reads a palette from a JSON file mapping colour names to
// "#RRGGBB" hex values, converts every entry to CIE L*a*b*, and builds
// the nearest-colour index. The function takes a filename and returns
// the palette, or an error if the file cannot be read, the data cannot
// be unmarshalled, or a colour fails to parse.
func LoadPalette(filename string) (*Palette, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading palette: %w", err)
	}

	var colorMap map[string]string
	if err := json.Unmarshal(data, &colorMap); err != nil {
		return nil, fmt.Errorf("error unmarshalling palette: %w", err)
	}

	entries := make([]PaletteEntry, 0, len(colorMap))
	for name, hex := range colorMap {
		lab, err := HexToLab(hex)
		if err != nil {
			return nil, fmt.Errorf("error parsing palette colour %q: %w", name, err)
		}
		entries = append(entries, PaletteEntry{Name: name, Hex: hex, Lab: lab})
	}
	// Map iteration order is random; keep listings stable.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return NewPalette(entries), nil
}

// NewPalette builds a palette index from prepared entries.
func NewPalette(entries []PaletteEntry) *Palette {
	p := &Palette{
		entries: entries,
		byLab:   make(map[Triplet]int, len(entries)),
	}
	labs := make([]Triplet, len(entries))
	for i, e := range entries {
		labs[i] = e.Lab
		if _, dup := p.byLab[e.Lab]; !dup {
			p.byLab[e.Lab] = i
		}
	}
	p.tree = BuildLabTree(labs)
	return p
}

// Entries returns the palette entries sorted by name.
func (p *Palette) Entries() []PaletteEntry {
	return append([]PaletteEntry(nil), p.entries...)
}

// Len returns the number of palette entries.
func (p *Palette) Len() int { return len(p.entries) }

// Nearest returns the palette entry nearest to the target coordinate
// under the named method, along with its distance. Candidate selection
// goes through the KD-tree; the final ranking uses the requested
// method exactly. The function returns an UnknownMethodError for an
// unresolvable method name.
func (p *Palette) Nearest(e *Engine, target Triplet, methodName string, opts ...Option) (PaletteEntry, float64, error) {
	if len(p.entries) == 0 {
		return PaletteEntry{}, 0, fmt.Errorf("empty palette")
	}
	m, err := p.tree.NearestByMethod(e, target, methodName, 8, opts...)
	if err != nil {
		return PaletteEntry{}, 0, err
	}
	return p.entries[p.byLab[m.Lab]], m.Distance, nil
}
