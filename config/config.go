// Package config parses the generator's 'config.toml'.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"

	"dario.cat/mergo"
	"github.com/pelletier/go-toml/v2"
)

// Input locates the generation inputs.
type Input struct {
	// Path to the vendor metadata (icons.json or icons.yml).
	Metadata string `toml:"metadata"`
	// Optional replacement for the embedded header boilerplate.
	Header string `toml:"header"`
}

// Output locates the generated package.
type Output struct {
	Dir  string `toml:"dir"`
	File string `toml:"file"`
}

// Build selects how macros are synthesized.
type Build struct {
	// "free" (default) or "pro".
	Mode string `toml:"mode"`
}

// Fetch configures the optional FontAwesome download step.
type Fetch struct {
	// Page to scan for desktop release links. Empty means the official
	// download page.
	URL string `toml:"url"`
	// Directory the distribution is extracted into.
	Dir string `toml:"dir"`
}

type Config struct {
	Imports []string `toml:"imports"`
	Input   Input    `toml:"input"`
	Output  Output   `toml:"output"`
	Build   Build    `toml:"build"`
	Fetch   Fetch    `toml:"fetch"`
}

type Error struct {
	filePath string
	err      error  // short, single-line error
	str      string // full, multi-line error string, or err string, if none
}

// Error returns a short error message.
func (e *Error) Error() string {
	return e.filePath + ": " + e.err.Error()
}

// String returns the full multi-line error string.
func (e *Error) String() string {
	if e.str != "" {
		return "Error in file " + strconv.Quote(e.filePath) + ":\n" + e.str
	} else {
		return e.Error()
	}
}

func (e *Error) Unwrap() error {
	return e.err
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Input:  Input{Metadata: "fontawesome/metadata/icons.json"},
		Output: Output{Dir: "output", File: "fontawesome6.sty"},
		Build:  Build{Mode: "free"},
		Fetch:  Fetch{Dir: "fontawesome"},
	}
}

// Load reads a config file, following and merging any imports it lists.
func Load(path string) (_ *Config, err error) {
	defer func() {
		if err != nil {
			if tErr := (&toml.DecodeError{}); errors.As(err, &tErr) {
				err = &Error{filePath: path, err: err, str: tErr.String()}
			} else if tErr := (&toml.StrictMissingError{}); errors.As(err, &tErr) {
				err = &Error{filePath: path, err: err, str: tErr.String()}
			} else {
				err = &Error{filePath: path, err: err}
			}
		}
	}()

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := &Config{}
	err = toml.NewDecoder(bytes.NewReader(file)).
		DisallowUnknownFields().
		Decode(&c)
	if err != nil {
		return nil, err
	}

	var importedCs []*Config // collect imported files first so their imports don't leak into our file's imports
	for _, imp := range c.Imports {
		newC, err := Load(imp)
		if err != nil {
			return nil, err
		}
		importedCs = append(importedCs, newC)
	}
	for _, newC := range importedCs {
		if err := mergo.Merge(c, newC, mergo.WithAppendSlice); err != nil {
			return nil, err
		}
	}

	if err := validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

func validate(c *Config) error {
	switch c.Build.Mode {
	case "", "free", "pro":
	default:
		return fmt.Errorf("invalid build mode %q (want \"free\" or \"pro\")", c.Build.Mode)
	}
	return nil
}
