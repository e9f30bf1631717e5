// Package fetcher locates, downloads and unpacks a FontAwesome 6 desktop
// distribution. It is a preparatory step; the generation pipeline itself
// only reads the extracted files.
package fetcher

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/mod/semver"
)

// DownloadPageURL is the page scanned for desktop release links.
const DownloadPageURL = "https://fontawesome.com/download"

var releasePattern = regexp.MustCompile(`fontawesome-(free|pro)-(\d+\.\d+\.\d+)-desktop\.zip`)

// Release is one downloadable desktop distribution.
type Release struct {
	URL     string
	Version string // e.g. "6.7.2"
	Tier    string // "free" or "pro"
}

type Options struct {
	// Client used for all requests. Nil means http.DefaultClient.
	Client *http.Client
	// Callback for before the archive starts downloading.
	OnDownload func(rel Release)
	// Callback for each file written during extraction.
	OnExtract func(name string)
}

func (o *Options) client() *http.Client {
	if o.Client != nil {
		return o.Client
	}
	return http.DefaultClient
}

// FindRelease scans pageURL for FontAwesome 6 desktop archive links and
// returns the highest free-tier version found.
func FindRelease(ctx context.Context, pageURL string, opts Options) (Release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return Release{}, err
	}
	resp, err := opts.client().Do(req)
	if err != nil {
		return Release{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Release{}, fmt.Errorf("fetch %v: %v", pageURL, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Release{}, err
	}

	var best Release
	for _, ln := range linkTargets(string(body)) {
		m := releasePattern.FindStringSubmatch(ln)
		if m == nil || m[1] != "free" {
			continue
		}
		rel := Release{URL: ln, Tier: m[1], Version: m[2]}
		if best.URL == "" || semver.Compare("v"+rel.Version, "v"+best.Version) > 0 {
			best = rel
		}
	}
	if best.URL == "" {
		return Release{}, fmt.Errorf("no FontAwesome 6 desktop release link found on %v", pageURL)
	}
	if !strings.HasPrefix(best.URL, "http") {
		// Pattern matched inside a relative href.
		base := strings.TrimSuffix(pageURL, "/")
		best.URL = base + "/" + strings.TrimPrefix(best.URL, "/")
	}
	return best, nil
}

var hrefPattern = regexp.MustCompile(`href="([^"]+)"`)

// linkTargets extracts anchor targets from an HTML page. A full HTML
// parser is overkill here: the release links are plain absolute URLs.
func linkTargets(page string) []string {
	var out []string
	for _, m := range hrefPattern.FindAllStringSubmatch(page, -1) {
		out = append(out, m[1])
	}
	return out
}

// Download fetches the release archive into destDir and returns the
// archive path.
func Download(ctx context.Context, rel Release, destDir string, opts Options) (string, error) {
	if opts.OnDownload != nil {
		opts.OnDownload(rel)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rel.URL, nil)
	if err != nil {
		return "", err
	}
	resp, err := opts.client().Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %v: %v", rel.URL, resp.Status)
	}

	if err := os.MkdirAll(destDir, 0777); err != nil {
		return "", err
	}
	zipPath := filepath.Join(destDir, "fontawesome.zip")
	f, err := os.Create(zipPath)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(zipPath)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(zipPath)
		return "", err
	}
	return zipPath, nil
}

// Extract unpacks the parts of the archive the generator consumes
// (metadata, fonts, licenses, readme) into srcDir, flattening the
// versioned top-level directory of the archive.
func Extract(zipPath, srcDir string, opts Options) error {
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return err
	}
	defer zr.Close()

	for _, f := range zr.File {
		rel := stripArchiveRoot(f.Name)
		if rel == "" || f.FileInfo().IsDir() || !wanted(rel) {
			continue
		}
		dest, err := sanitizePath(srcDir, rel)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(dest), 0777); err != nil {
			return err
		}
		if err := extractFile(f, dest); err != nil {
			return fmt.Errorf("extract %v: %w", f.Name, err)
		}
		if opts.OnExtract != nil {
			opts.OnExtract(rel)
		}
	}
	return nil
}

// Fetch is the all-in-one helper: find the current release on pageURL,
// download it next to srcDir and extract it into srcDir.
func Fetch(ctx context.Context, pageURL, srcDir string, opts Options) (Release, error) {
	if pageURL == "" {
		pageURL = DownloadPageURL
	}
	rel, err := FindRelease(ctx, pageURL, opts)
	if err != nil {
		return Release{}, err
	}
	zipPath, err := Download(ctx, rel, filepath.Dir(filepath.Clean(srcDir)), opts)
	if err != nil {
		return Release{}, err
	}
	defer os.Remove(zipPath)
	if err := Extract(zipPath, srcDir, opts); err != nil {
		return Release{}, err
	}
	return rel, nil
}

// stripArchiveRoot removes the single "fontawesome-free-X.Y.Z-desktop/"
// root directory the archive wraps everything in.
func stripArchiveRoot(name string) string {
	name = path.Clean(strings.TrimPrefix(name, "/"))
	if i := strings.Index(name, "/"); i != -1 {
		return name[i+1:]
	}
	return ""
}

func wanted(rel string) bool {
	switch {
	case strings.HasPrefix(rel, "metadata/"):
		return true
	case strings.HasPrefix(rel, "otfs/"):
		return true
	case strings.EqualFold(path.Base(rel), "license.txt"):
		return true
	case !strings.Contains(rel, "/") && strings.HasSuffix(rel, ".txt"):
		return true
	case rel == "README.md":
		return true
	}
	return false
}

// sanitizePath joins rel onto dir, refusing entries that would escape it.
func sanitizePath(dir, rel string) (string, error) {
	dest := filepath.Join(dir, filepath.FromSlash(rel))
	if !strings.HasPrefix(dest, filepath.Clean(dir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry %q escapes extraction directory", rel)
	}
	return dest, nil
}

func extractFile(f *zip.File, dest string) error {
	r, err := f.Open()
	if err != nil {
		return err
	}
	defer r.Close()
	w, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
