// Package sty serializes synthesized icon macros into the final LaTeX
// style package.
//
// The document layout is fixed: header and option handling, font-family
// declarations for the styles actually in use, glyph helper macros, one
// definition per icon macro in catalog order, the dispatch table and the
// \faIcon dispatch macro, and a closing \endinput. Given the same input,
// the output is byte-identical on every run.
package sty

import (
	_ "embed"

	"github.com/dasheen/fa6latex/macro"
	"github.com/dasheen/fa6latex/metadata"
	"github.com/dasheen/fa6latex/texio"
)

// PackageName is the LaTeX package name the generated file provides.
const PackageName = "fontawesome6"

//go:embed header.sty
var defaultHeader string

// fontFamily maps each style to the command selecting its font.
// The mapping is fixed; it is part of the package's interface.
var fontFamily = map[metadata.Style]string{
	metadata.StyleSolid:   `\FAFontSolid`,
	metadata.StyleRegular: `\FAFontRegular`,
	metadata.StyleLight:   `\FAFontLight`,
	metadata.StyleThin:    `\FAFontThin`,
	metadata.StyleBrands:  `\FAFontBrands`,
	metadata.StyleDuotone: `\FAFontDuotone`,
}

// FontFamily returns the font-selection command for a style.
func FontFamily(s metadata.Style) string {
	return fontFamily[s]
}

// fontNames holds the installed font names per licensing tier. An empty
// free name means the style only ships with Font Awesome Pro.
type fontNames struct {
	free string
	pro  string
}

var fonts = map[metadata.Style]fontNames{
	metadata.StyleSolid:   {free: "Font Awesome 6 Free Solid", pro: "Font Awesome 6 Pro Solid"},
	metadata.StyleRegular: {free: "Font Awesome 6 Free Regular", pro: "Font Awesome 6 Pro Regular"},
	metadata.StyleLight:   {pro: "Font Awesome 6 Pro Light"},
	metadata.StyleThin:    {pro: "Font Awesome 6 Pro Thin"},
	metadata.StyleBrands:  {free: "Font Awesome 6 Brands Regular", pro: "Font Awesome 6 Brands Regular"},
	metadata.StyleDuotone: {pro: "Font Awesome 6 Duotone Solid"},
}

const helperMacros = `\newcommand*{\FA@symbol}[1]{\symbol{"#1}}
\newcommand*{\FA@proOnly}[1]{\PackageError{fontawesome6}%
  {Icon '#1' is only available in Font Awesome Pro}%
  {Rebuild the fontawesome6 package in pro mode to use this icon.}}
\newcommand*{\FA@proFont}[1]{\PackageError{fontawesome6}%
  {The '#1' font family is only available in Font Awesome Pro}%
  {Load the fontawesome6 package with the 'pro' option.}}`

const dispatchMacro = `\newcommand*{\faIcon}[2][]{%
  \if\relax\detokenize{#1}\relax
    \ifcsname fa@icon@#2\endcsname
      \csname fa@icon@#2\endcsname
    \else
      \PackageError{fontawesome6}{Unknown icon '#2'}%
        {The icon is not part of the generated catalog.}%
    \fi
  \else
    \ifcsname fa@icon@#2@#1\endcsname
      \csname fa@icon@#2@#1\endcsname
    \else
      \PackageError{fontawesome6}{Icon '#2' has no '#1' style}%
        {Check which styles this icon ships with.}%
    \fi
  \fi}`

// Options controls document generation.
type Options struct {
	// Header overrides the embedded boilerplate when non-empty.
	Header string
}

// Build serializes the definitions and the dispatch table into the style
// package document.
func Build(defs []macro.Definition, table *macro.Table, opts Options) *texio.CodeBuilder {
	cb := &texio.CodeBuilder{}

	header := opts.Header
	if header == "" {
		header = defaultHeader
	}
	cb.Append(header)

	writeFontFamilies(cb, defs)

	cb.Append(helperMacros)

	cb.Commentf("Icon definitions")
	for i := range defs {
		writeDefinition(cb, &defs[i])
	}

	cb.Commentf("Dispatch table")
	for _, e := range table.Entries {
		// Default-style entry first, then one entry per style.
		cb.Linef(`\expandafter\def\csname fa@icon@%v\endcsname{\%v}`,
			e.Icon, e.Variants[0].MacroName)
		for _, v := range e.Variants {
			cb.Linef(`\expandafter\def\csname fa@icon@%v@%v\endcsname{\%v}`,
				e.Icon, v.Style, v.MacroName)
		}
	}

	cb.Append(dispatchMacro)
	cb.Linef(`\endinput`)
	return cb
}

// writeFontFamilies declares one font family per style used by at least
// one real (non-stub) definition. Unused styles get no declaration, so a
// free build doesn't demand fonts the user never installed.
func writeFontFamilies(cb *texio.CodeBuilder, defs []macro.Definition) {
	used := map[metadata.Style]bool{}
	for i := range defs {
		if !defs[i].ProStub {
			used[defs[i].Style] = true
		}
	}
	for _, style := range metadata.StylePriority {
		if !used[style] {
			continue
		}
		cmd := fontFamily[style]
		names := fonts[style]
		switch {
		case names.free == names.pro:
			cb.Linef(`\newfontfamily{%v}{%v}`, cmd, names.free)
		case names.free == "":
			cb.Linef(`\ifFA@pro`)
			cb.Linef(`  \newfontfamily{%v}{%v}`, cmd, names.pro)
			cb.Linef(`\else`)
			cb.Linef(`  \newcommand*{%v}{\FA@proFont{%v}}`, cmd, style)
			cb.Linef(`\fi`)
		default:
			cb.Linef(`\ifFA@pro`)
			cb.Linef(`  \newfontfamily{%v}{%v}`, cmd, names.pro)
			cb.Linef(`\else`)
			cb.Linef(`  \newfontfamily{%v}{%v}`, cmd, names.free)
			cb.Linef(`\fi`)
		}
	}
}

func writeDefinition(cb *texio.CodeBuilder, d *macro.Definition) {
	comment := "% U+" + d.HexCodepoint()
	if d.Label != "" {
		comment += ": " + d.Label
	}
	if d.Term != "" {
		comment += " [" + d.Term + "]"
	}
	if d.ProStub {
		cb.Linef(`\newcommand*{\%v}{\FA@proOnly{%v}} %v (pro only)`,
			d.MacroName, d.Icon, comment)
		return
	}
	cb.Linef(`\newcommand*{\%v}{{%v\FA@symbol{%v}}} %v`,
		d.MacroName, fontFamily[d.Style], d.HexCodepoint(), comment)
}
