package fa6latex

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dasheen/fa6latex/config"
	"github.com/dasheen/fa6latex/macro"
	"github.com/dasheen/fa6latex/metadata"
	"github.com/dasheen/fa6latex/sty"
)

// RunResult summarizes a successful generation run.
type RunResult struct {
	// Path of the generated style file.
	OutFile string
	Mode    macro.Mode
	// Catalog size.
	Icons int
	// Definitions written, including pro stubs.
	Defs []macro.Definition
}

// Run executes the full generation pipeline: load the catalog, synthesize
// the macros, write the style package and stage the auxiliary files.
//
// The run either produces a complete style file or fails with the first
// structural error; a failed run never leaves a partial output file.
func Run(cfg *config.Config, log *Logger) (*RunResult, error) {
	applyDefaults(cfg)

	mode, ok := macro.ModeFromString(cfg.Build.Mode)
	if !ok {
		return nil, fmt.Errorf("invalid build mode %q", cfg.Build.Mode)
	}

	cat, err := metadata.Load(cfg.Input.Metadata)
	if err != nil {
		return nil, err
	}
	log.Log(INFO, "loaded %v icons from %v", cat.Len(), cfg.Input.Metadata)

	defs, table, err := macro.Synthesize(cat, mode)
	if err != nil {
		return nil, err
	}

	opts := sty.Options{}
	if cfg.Input.Header != "" {
		header, err := os.ReadFile(cfg.Input.Header)
		if err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		opts.Header = string(header)
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0777); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	outFile := filepath.Join(cfg.Output.Dir, cfg.Output.File)
	if err := sty.Build(defs, table, opts).SaveToFile(outFile); err != nil {
		return nil, fmt.Errorf("save %v: %w", outFile, err)
	}
	log.Log(INFO, "wrote %v (%v mode)", outFile, mode)

	if err := stageAux(cfg.Fetch.Dir, cfg.Output.Dir, log); err != nil {
		return nil, err
	}

	return &RunResult{
		OutFile: outFile,
		Mode:    mode,
		Icons:   cat.Len(),
		Defs:    defs,
	}, nil
}

// applyDefaults fills unset config fields from [config.Default].
func applyDefaults(cfg *config.Config) {
	def := config.Default()
	if cfg.Input.Metadata == "" {
		cfg.Input.Metadata = def.Input.Metadata
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = def.Output.Dir
	}
	if cfg.Output.File == "" {
		cfg.Output.File = def.Output.File
	}
	if cfg.Build.Mode == "" {
		cfg.Build.Mode = def.Build.Mode
	}
	if cfg.Fetch.Dir == "" {
		cfg.Fetch.Dir = def.Fetch.Dir
	}
}

// stageAux copies the fonts, license files and readme of an extracted
// FontAwesome distribution next to the generated style file, so the
// output directory is usable as-is. A missing distribution directory is
// fine; the style file alone is a valid result.
func stageAux(srcDir, outDir string, log *Logger) error {
	if _, err := os.Stat(srcDir); err != nil {
		return nil
	}
	steps := []struct {
		pattern string
		destDir string
	}{
		{filepath.Join(srcDir, "otfs", "Font Awesome 6 *"), "fonts"},
		{filepath.Join(srcDir, "*.txt"), "licenses"},
		{filepath.Join(srcDir, "README.md"), "."},
	}
	for _, step := range steps {
		matches, err := filepath.Glob(step.pattern)
		if err != nil {
			return err
		}
		for _, src := range matches {
			dest := filepath.Join(outDir, step.destDir, filepath.Base(src))
			if err := copyFile(src, dest); err != nil {
				return fmt.Errorf("stage %v: %w", src, err)
			}
			log.Log(INFO, "staged %v", dest)
		}
	}
	return nil
}

func copyFile(src, dest string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0777); err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0666)
}
