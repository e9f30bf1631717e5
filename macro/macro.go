// Package macro turns catalog entries into LaTeX macro definitions plus
// the dispatch table consumed by the \faIcon command.
package macro

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dasheen/fa6latex/metadata"
)

// Mode selects the licensing tier of a generation run.
type Mode int

const (
	ModeFree Mode = iota
	ModePro
)

func (m Mode) String() string {
	switch m {
	case ModeFree:
		return "free"
	case ModePro:
		return "pro"
	default:
		panic("invalid mode: " + strconv.Itoa(int(m)))
	}
}

func ModeFromString(s string) (Mode, bool) {
	switch strings.ToLower(s) {
	case "free", "":
		return ModeFree, true
	case "pro":
		return ModePro, true
	}
	return 0, false
}

// Definition is one emitted LaTeX control sequence.
type Definition struct {
	// Control-sequence name without the backslash, e.g. "faAddressBook".
	MacroName string
	// Canonical icon name the macro was derived from.
	Icon string
	Style metadata.Style
	// Glyph position in the FontAwesome private-use-area font.
	Codepoint rune
	Label string
	// First search term, empty if the metadata has none.
	Term string
	// ProStub marks a pro-only macro in a free-mode run. The emitter
	// replaces its body with a readable package error.
	ProStub bool
}

// HexCodepoint renders the codepoint the way it appears in the output:
// upper-case hex, zero-padded to four digits.
func (d *Definition) HexCodepoint() string {
	return fmt.Sprintf("%04X", d.Codepoint)
}

// Variant is one (style, macro) pair of a dispatch table entry.
type Variant struct {
	Style     metadata.Style
	MacroName string
}

// Entry maps one icon name to its variants, default style first.
type Entry struct {
	Icon     string
	Variants []Variant
}

// Table is the dispatch table, in catalog order.
type Table struct {
	Entries []Entry
}

// Lookup returns the dispatch entry for an icon name.
func (t *Table) Lookup(icon string) (Entry, bool) {
	for _, e := range t.Entries {
		if e.Icon == icon {
			return e, true
		}
	}
	return Entry{}, false
}

// CollisionError reports two icon names sanitizing to the same
// control-sequence name. Picking one silently would make the output
// depend on catalog order, so this is fatal.
type CollisionError struct {
	MacroName string
	First     string
	Second    string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("macro name collision: icons %q and %q both map to \\%v",
		e.First, e.Second, e.MacroName)
}

// Synthesize derives the macro definitions and the dispatch table from the
// catalog. Definitions come out in catalog order; within one icon, the
// default style comes first, remaining styles follow in priority order.
//
// In free mode, pro-only icons are kept as error stubs so that a document
// using them fails with a readable message instead of a wrong glyph.
func Synthesize(cat *metadata.Catalog, mode Mode) ([]Definition, *Table, error) {
	var defs []Definition
	table := &Table{}
	owner := map[string]string{} // macro name -> icon name

	for _, ic := range cat.Icons() {
		base, err := SanitizeName(ic.Name)
		if err != nil {
			return nil, nil, err
		}

		stub := mode == ModeFree && !ic.Free
		term := ""
		if len(ic.Terms) > 0 {
			term = ic.Terms[0]
		}

		entry := Entry{Icon: ic.Name}
		for _, style := range orderedStyles(ic.Styles) {
			name := base
			if len(ic.Styles) > 1 && style != metadata.DefaultStyle(ic.Styles) {
				name += styleSuffix(style)
			}
			if prev, ok := owner[name]; ok {
				return nil, nil, &CollisionError{MacroName: name, First: prev, Second: ic.Name}
			}
			owner[name] = ic.Name

			defs = append(defs, Definition{
				MacroName: name,
				Icon:      ic.Name,
				Style:     style,
				Codepoint: ic.Unicode,
				Label:     ic.Label,
				Term:      term,
				ProStub:   stub,
			})
			entry.Variants = append(entry.Variants, Variant{Style: style, MacroName: name})
		}
		table.Entries = append(table.Entries, entry)
	}

	return defs, table, nil
}

// orderedStyles returns the icon's styles sorted by the fixed priority
// order, default style first.
func orderedStyles(styles []metadata.Style) []metadata.Style {
	out := make([]metadata.Style, 0, len(styles))
	for _, pref := range metadata.StylePriority {
		for _, s := range styles {
			if s == pref {
				out = append(out, pref)
				break
			}
		}
	}
	return out
}
