package macro

import (
	"strings"
	"testing"

	"github.com/dasheen/fa6latex/metadata"
	"github.com/stretchr/testify/require"
)

func mustCatalog(t *testing.T, src string) *metadata.Catalog {
	t.Helper()
	cat, err := metadata.DecodeJSON(strings.NewReader(src), "test")
	require.NoError(t, err)
	return cat
}

func TestSanitizeName(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"address-book", "faAddressBook"},
		{"apple", "faApple"},
		{"arrow-up-right-from-square", "faArrowUpRightFromSquare"},
		{"500px", "faFiveZeroZeroPx"},
		{"0", "faZero"},
		{"dice-d20", "faDiceDTwoZero"},
		{"circle-dot", "faCircleDot"},
	} {
		t.Run(tc.in, func(t *testing.T) {
			got, err := SanitizeName(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestSanitizeNameUnusable(t *testing.T) {
	_, err := SanitizeName("---")
	require.Error(t, err)
}

func TestSanitizeNameCollidingInputs(t *testing.T) {
	require := require.New(t)

	// Both sanitize to the same control-sequence name; Synthesize must
	// refuse such a catalog.
	a, err := SanitizeName("a-1")
	require.NoError(err)
	b, err := SanitizeName("a1")
	require.NoError(err)
	require.Equal(a, b)
}

func TestSynthesizeSingleStyle(t *testing.T) {
	require := require.New(t)

	cat := mustCatalog(t, `{
		"address-book": {"label": "Address Book", "unicode": "f2b9", "styles": ["solid"], "free": true}
	}`)
	defs, table, err := Synthesize(cat, ModeFree)
	require.NoError(err)

	require.Len(defs, 1)
	require.Equal("faAddressBook", defs[0].MacroName)
	require.Equal(metadata.StyleSolid, defs[0].Style)
	require.Equal("F2B9", defs[0].HexCodepoint())
	require.False(defs[0].ProStub)

	entry, ok := table.Lookup("address-book")
	require.True(ok)
	require.Equal([]Variant{{Style: metadata.StyleSolid, MacroName: "faAddressBook"}}, entry.Variants)
}

func TestSynthesizeMultiStyle(t *testing.T) {
	require := require.New(t)

	// Declared order brands-first; the default must still be solid.
	cat := mustCatalog(t, `{
		"share": {"unicode": "f064", "styles": ["brands", "solid"]}
	}`)
	defs, table, err := Synthesize(cat, ModeFree)
	require.NoError(err)

	require.Len(defs, 2)
	require.Equal("faShare", defs[0].MacroName)
	require.Equal(metadata.StyleSolid, defs[0].Style)
	require.Equal("faShareBrands", defs[1].MacroName)
	require.Equal(metadata.StyleBrands, defs[1].Style)

	entry, ok := table.Lookup("share")
	require.True(ok)
	require.Equal(Variant{Style: metadata.StyleSolid, MacroName: "faShare"}, entry.Variants[0])
}

func TestSynthesizeCollision(t *testing.T) {
	require := require.New(t)

	cat := mustCatalog(t, `{
		"a-1": {"unicode": "f001", "styles": ["solid"]},
		"a1": {"unicode": "f002", "styles": ["solid"]}
	}`)
	_, _, err := Synthesize(cat, ModeFree)
	require.Error(err)

	var cErr *CollisionError
	require.ErrorAs(err, &cErr)
	require.Equal("faAOne", cErr.MacroName)
	require.Equal("a-1", cErr.First)
	require.Equal("a1", cErr.Second)
}

func TestSynthesizeProGating(t *testing.T) {
	require := require.New(t)

	cat := mustCatalog(t, `{
		"address-book": {"unicode": "f2b9", "styles": ["solid"], "free": true},
		"alarm-clock": {"unicode": "f34e", "styles": ["solid"], "free": false}
	}`)

	defs, table, err := Synthesize(cat, ModeFree)
	require.NoError(err)
	require.Len(defs, 2)
	require.False(defs[0].ProStub)
	require.True(defs[1].ProStub)
	// Pro icons stay in the dispatch table so \faIcon reaches the
	// readable error stub instead of an undefined csname.
	_, ok := table.Lookup("alarm-clock")
	require.True(ok)

	defs, _, err = Synthesize(cat, ModePro)
	require.NoError(err)
	require.False(defs[0].ProStub)
	require.False(defs[1].ProStub)
}

func TestModeFromString(t *testing.T) {
	require := require.New(t)

	m, ok := ModeFromString("free")
	require.True(ok)
	require.Equal(ModeFree, m)

	m, ok = ModeFromString("PRO")
	require.True(ok)
	require.Equal(ModePro, m)

	m, ok = ModeFromString("")
	require.True(ok)
	require.Equal(ModeFree, m)

	_, ok = ModeFromString("trial")
	require.False(ok)
}
