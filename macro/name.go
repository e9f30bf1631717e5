package macro

import (
	"fmt"
	"strings"

	"github.com/dasheen/fa6latex/metadata"
	"github.com/iancoleman/strcase"
)

// LaTeX control-sequence names may only contain letters, so digits are
// spelled out word by word.
var digitNames = [10]string{
	"Zero", "One", "Two", "Three", "Four",
	"Five", "Six", "Seven", "Eight", "Nine",
}

// SanitizeName derives the control-sequence name for an icon:
// "address-book" becomes "faAddressBook", "500px" becomes
// "faFiveZeroZeroPx". Separators split words, each digit becomes its own
// spelled-out word, and the result is camel-cased onto the "fa" prefix.
//
// The mapping is not injective ("a-1" and "a1" both yield "faAOne");
// [Synthesize] rejects such inputs with a [CollisionError].
func SanitizeName(name string) (string, error) {
	var words []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
			cur.WriteRune(r)
		case r >= '0' && r <= '9':
			flush()
			words = append(words, digitNames[r-'0'])
		default:
			// Separator (hyphen, dot, anything else). Non-ASCII
			// letters don't occur in FontAwesome icon names.
			flush()
		}
	}
	flush()

	if len(words) == 0 {
		return "", fmt.Errorf("icon name %q has no usable characters for a macro name", name)
	}

	var b strings.Builder
	b.WriteString("fa")
	for _, w := range words {
		b.WriteString(strcase.ToCamel(w))
	}
	return b.String(), nil
}

// styleSuffix is the disambiguation suffix for non-default styles of a
// multi-style icon.
func styleSuffix(s metadata.Style) string {
	return strcase.ToCamel(string(s))
}
