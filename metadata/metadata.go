// Package metadata reads the vendor icon metadata shipped with a
// FontAwesome desktop distribution and normalizes it into an icon catalog.
//
// The catalog preserves the declaration order of the source file, so that
// everything generated from it is deterministic and diffable across runs.
package metadata

import (
	"fmt"
	"strconv"
	"strings"
)

// Style is a font-family variant of an icon glyph.
type Style string

const (
	StyleSolid   Style = "solid"
	StyleRegular Style = "regular"
	StyleLight   Style = "light"
	StyleThin    Style = "thin"
	StyleBrands  Style = "brands"
	StyleDuotone Style = "duotone"
)

// StylePriority lists all known styles in descending preference order.
// The first style of an icon found in this list is the icon's default
// variant.
var StylePriority = []Style{
	StyleSolid,
	StyleRegular,
	StyleLight,
	StyleThin,
	StyleBrands,
	StyleDuotone,
}

func (s Style) Known() bool {
	for _, known := range StylePriority {
		if s == known {
			return true
		}
	}
	return false
}

// DefaultStyle returns the highest-priority style among styles.
// styles must be non-empty and contain only known styles.
func DefaultStyle(styles []Style) Style {
	for _, pref := range StylePriority {
		for _, s := range styles {
			if s == pref {
				return pref
			}
		}
	}
	panic("metadata: no known style")
}

// Icon is one normalized catalog entry.
type Icon struct {
	// Canonical kebab-case identifier, unique within the catalog.
	Name string
	// Human-readable display name. Informational only.
	Label string
	// Private-use-area codepoint of the glyph.
	Unicode rune
	// Styles the icon is available in, in source order. Never empty.
	Styles []Style
	// False restricts the icon to pro builds.
	Free bool
	// Search terms from the vendor metadata. The first term, if any,
	// ends up in the generated comment line.
	Terms []string
}

// HasStyle reports whether the icon is available in style s.
func (ic *Icon) HasStyle(s Style) bool {
	for _, have := range ic.Styles {
		if have == s {
			return true
		}
	}
	return false
}

// Error describes a structural problem in the vendor metadata.
// All metadata errors are fatal to a generation run.
type Error struct {
	Path string // source file, may be empty for in-memory sources
	Icon string // offending icon name, may be empty
	Err  error
}

func (e *Error) Error() string {
	var msg strings.Builder
	msg.WriteString("metadata")
	if e.Path != "" {
		msg.WriteString(" ")
		msg.WriteString(strconv.Quote(e.Path))
	}
	if e.Icon != "" {
		msg.WriteString(": icon ")
		msg.WriteString(strconv.Quote(e.Icon))
	}
	msg.WriteString(": ")
	msg.WriteString(e.Err.Error())
	return msg.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Catalog is the ordered, immutable collection of icons built from one
// metadata source. Iteration order is the source's declaration order.
type Catalog struct {
	icons []Icon
	index map[string]int
}

func newCatalog() *Catalog {
	return &Catalog{index: map[string]int{}}
}

func (c *Catalog) Len() int {
	return len(c.icons)
}

// Icons returns the catalog entries in source order. The caller must not
// modify the returned slice.
func (c *Catalog) Icons() []Icon {
	return c.icons
}

// Lookup returns the icon with the given canonical name.
func (c *Catalog) Lookup(name string) (Icon, bool) {
	i, ok := c.index[name]
	if !ok {
		return Icon{}, false
	}
	return c.icons[i], true
}

func (c *Catalog) add(path string, ic Icon) error {
	if _, ok := c.index[ic.Name]; ok {
		return &Error{Path: path, Icon: ic.Name, Err: fmt.Errorf("duplicate icon name")}
	}
	c.index[ic.Name] = len(c.icons)
	c.icons = append(c.icons, ic)
	return nil
}

// checkCodepoints verifies that no two icons sharing a style share a
// codepoint. Such a collision is a data error in the vendor file and must
// not be masked.
func (c *Catalog) checkCodepoints(path string) error {
	seen := map[Style]map[rune]string{}
	for i := range c.icons {
		ic := &c.icons[i]
		for _, s := range ic.Styles {
			if seen[s] == nil {
				seen[s] = map[rune]string{}
			}
			if prev, ok := seen[s][ic.Unicode]; ok {
				return &Error{Path: path, Icon: ic.Name, Err: fmt.Errorf(
					"codepoint U+%04X in style %q already used by icon %q", ic.Unicode, s, prev)}
			}
			seen[s][ic.Unicode] = ic.Name
		}
	}
	return nil
}

// rawIcon mirrors one value of the vendor metadata mapping. Fields the
// generator doesn't consume (changes, voted, aliases, ...) are ignored.
type rawIcon struct {
	Label   string   `json:"label" yaml:"label"`
	Unicode string   `json:"unicode" yaml:"unicode"`
	Styles  []string `json:"styles" yaml:"styles"`
	// The free desktop distribution describes only free icons and omits
	// the field, so absence means free.
	Free   *bool `json:"free" yaml:"free"`
	Search struct {
		Terms termList `json:"terms" yaml:"terms"`
	} `json:"search" yaml:"search"`
}

// normalize turns a raw metadata entry into a catalog icon, validating
// required fields.
func normalize(path, name string, raw *rawIcon) (Icon, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Icon{}, &Error{Path: path, Err: fmt.Errorf("empty icon name")}
	}
	ic := Icon{
		Name:  name,
		Label: raw.Label,
		Free:  raw.Free == nil || *raw.Free,
		Terms: raw.Search.Terms,
	}
	if raw.Unicode == "" {
		return Icon{}, &Error{Path: path, Icon: name, Err: fmt.Errorf("missing required field %q", "unicode")}
	}
	cp, err := strconv.ParseUint(raw.Unicode, 16, 32)
	if err != nil {
		return Icon{}, &Error{Path: path, Icon: name, Err: fmt.Errorf("invalid unicode value %q", raw.Unicode)}
	}
	ic.Unicode = rune(cp)
	if len(raw.Styles) == 0 {
		return Icon{}, &Error{Path: path, Icon: name, Err: fmt.Errorf("icon has no styles")}
	}
	for _, s := range raw.Styles {
		style := Style(strings.ToLower(strings.TrimSpace(s)))
		if !style.Known() {
			// An unknown style tag means the metadata is newer than
			// this generator. Surface it instead of dropping the tag.
			return Icon{}, &Error{Path: path, Icon: name, Err: fmt.Errorf("unknown style %q", s)}
		}
		ic.Styles = append(ic.Styles, style)
	}
	return ic, nil
}
