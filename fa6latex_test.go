package fa6latex

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dasheen/fa6latex/config"
	"github.com/stretchr/testify/require"
)

const testMetadata = `{
	"address-book": {"label": "Address Book", "unicode": "f2b9", "styles": ["solid"], "free": true},
	"alarm-clock": {"label": "Alarm Clock", "unicode": "f34e", "styles": ["solid"], "free": false},
	"apple": {"label": "Apple", "unicode": "f179", "styles": ["brands"]}
}`

func testConfig(t *testing.T, mode string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	metaPath := filepath.Join(dir, "icons.json")
	require.NoError(t, os.WriteFile(metaPath, []byte(testMetadata), 0666))
	return &config.Config{
		Input:  config.Input{Metadata: metaPath},
		Output: config.Output{Dir: filepath.Join(dir, "out")},
		Build:  config.Build{Mode: mode},
	}
}

func TestRun(t *testing.T) {
	require := require.New(t)

	var logBuf bytes.Buffer
	log := &Logger{Writer: &logBuf}

	cfg := testConfig(t, "free")
	res, err := Run(cfg, log)
	require.NoError(err)
	require.Equal(3, res.Icons)
	require.Len(res.Defs, 3)

	doc, err := os.ReadFile(res.OutFile)
	require.NoError(err)
	require.Contains(string(doc), `\faAddressBook`)
	require.Contains(string(doc), `\FA@proOnly{alarm-clock}`)
	require.Contains(logBuf.String(), "INFO: loaded 3 icons")
}

func TestRunDeterministic(t *testing.T) {
	require := require.New(t)
	log := &Logger{}

	cfg := testConfig(t, "free")
	res1, err := Run(cfg, log)
	require.NoError(err)
	first, err := os.ReadFile(res1.OutFile)
	require.NoError(err)

	res2, err := Run(cfg, log)
	require.NoError(err)
	second, err := os.ReadFile(res2.OutFile)
	require.NoError(err)

	require.Equal(first, second)
}

func TestRunProMode(t *testing.T) {
	require := require.New(t)

	cfg := testConfig(t, "pro")
	res, err := Run(cfg, &Logger{})
	require.NoError(err)

	doc, err := os.ReadFile(res.OutFile)
	require.NoError(err)
	require.Contains(string(doc), `\FA@symbol{F34E}`)
	require.NotContains(string(doc), `\FA@proOnly{alarm-clock}`)
}

func TestRunMetadataErrorLeavesNoOutput(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()

	metaPath := filepath.Join(dir, "icons.json")
	require.NoError(os.WriteFile(metaPath, []byte(
		`{"broken": {"styles": ["solid"]}}`), 0666))
	outDir := filepath.Join(dir, "out")

	_, err := Run(&config.Config{
		Input:  config.Input{Metadata: metaPath},
		Output: config.Output{Dir: outDir},
	}, &Logger{})
	require.Error(err)
	require.NoFileExists(filepath.Join(outDir, "fontawesome6.sty"))
}

func TestRunStagesAuxFiles(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()

	srcDir := filepath.Join(dir, "fontawesome")
	require.NoError(os.MkdirAll(filepath.Join(srcDir, "otfs"), 0777))
	require.NoError(os.WriteFile(
		filepath.Join(srcDir, "otfs", "Font Awesome 6 Free-Solid-900.otf"),
		[]byte("font data"), 0666))
	require.NoError(os.WriteFile(
		filepath.Join(srcDir, "LICENSE.txt"), []byte("license"), 0666))

	metaPath := filepath.Join(dir, "icons.json")
	require.NoError(os.WriteFile(metaPath, []byte(testMetadata), 0666))
	outDir := filepath.Join(dir, "out")

	_, err := Run(&config.Config{
		Input:  config.Input{Metadata: metaPath},
		Output: config.Output{Dir: outDir},
		Fetch:  config.Fetch{Dir: srcDir},
	}, &Logger{})
	require.NoError(err)

	require.FileExists(filepath.Join(outDir, "fonts", "Font Awesome 6 Free-Solid-900.otf"))
	require.FileExists(filepath.Join(outDir, "licenses", "LICENSE.txt"))
}

func TestPrintSummary(t *testing.T) {
	require := require.New(t)

	cfg := testConfig(t, "free")
	res, err := Run(cfg, &Logger{})
	require.NoError(err)

	var buf bytes.Buffer
	PrintSummary(&buf, res)
	out := buf.String()
	require.Contains(out, "solid")
	require.Contains(out, "brands")
	require.Contains(out, "2/3")
}
