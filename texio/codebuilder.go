// Package texio provides a small line-oriented builder for LaTeX source.
package texio

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CodeBuilder is a wrapper around [strings.Builder] that simplifies
// building LaTeX code.
//
// The zero value is safely ready to use.
type CodeBuilder struct {
	// Indent is the indentation level (indentation is two spaces).
	Indent int

	b strings.Builder
}

// Write appends a raw string to the internal [strings.Builder].
func (w *CodeBuilder) Write(s string) {
	w.b.WriteString(s)
}

// Append writes the given string line by line with correct indentation.
func (w *CodeBuilder) Append(s string) {
	sc := bufio.NewScanner(strings.NewReader(s))
	for sc.Scan() {
		w.Linef("%v", sc.Text())
	}
}

// Linef writes a single line, prepended by the current indentation.
//
// Takes format and args like [fmt.Printf].
func (w *CodeBuilder) Linef(format string, args ...any) {
	for i := 0; i < w.Indent; i++ {
		w.b.WriteString("  ")
	}
	w.b.WriteString(fmt.Sprintf(format, args...))
	w.b.WriteString("\n")
}

// Commentf writes a single "%" comment line.
func (w *CodeBuilder) Commentf(format string, args ...any) {
	w.Linef("%% %v", fmt.Sprintf(format, args...))
}

// String returns the current code.
func (w *CodeBuilder) String() string {
	return w.b.String()
}

func (w *CodeBuilder) Reset() {
	w.Indent = 0
	w.b.Reset()
}

// SaveToFile writes the current code to outFile.
//
// The code goes to a temporary file in the same directory first and is
// renamed into place, so a failed run never leaves a truncated file that
// looks complete.
func (w *CodeBuilder) SaveToFile(outFile string) (err error) {
	dir, base := filepath.Split(outFile)
	if dir == "" {
		// Keep the temp file on the same filesystem as the target so
		// the rename stays atomic.
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, base+".tmp*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()
	if _, err := tmp.WriteString(w.String()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), outFile)
}
