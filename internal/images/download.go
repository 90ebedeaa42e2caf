// Package images handles the family image cache: downloading originals
// from the manufacturer site and producing web-sized derivatives.
package images

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"time"

	"go.uber.org/zap"

	"github.com/brightsign-store/product-agent/internal/model"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// Downloader fetches family images into a per-family directory under
// Dir/raw. Existing files are never re-fetched.
type Downloader struct {
	Dir    string
	Delay  time.Duration
	Client *http.Client
	Log    *zap.SugaredLogger
}

func NewDownloader(dir string, delay time.Duration, log *zap.SugaredLogger) *Downloader {
	return &Downloader{
		Dir:    dir,
		Delay:  delay,
		Client: &http.Client{Timeout: 60 * time.Second},
		Log:    log,
	}
}

// Counts summarizes one download or processing run.
type Counts struct {
	Done    int
	Skipped int
	Failed  int
}

func (c Counts) String() string {
	return fmt.Sprintf("%d done, %d skipped, %d failed", c.Done, c.Skipped, c.Failed)
}

// DownloadFamily fetches every known image role for one family. Failures
// are counted and logged, never retried, and never stop the rest.
func (d *Downloader) DownloadFamily(f model.Family) Counts {
	type job struct {
		role string
		url  string
	}
	var jobs []job
	if f.Images.Hero != "" {
		jobs = append(jobs, job{"hero", f.Images.Hero})
	}
	if f.Images.Product != "" {
		jobs = append(jobs, job{"product", f.Images.Product})
	}
	if f.Images.Thumbnail != "" && f.Images.Thumbnail != f.Images.Product {
		jobs = append(jobs, job{"thumb", f.Images.Thumbnail})
	}
	for i, g := range f.Images.Gallery {
		jobs = append(jobs, job{fmt.Sprintf("gallery-%d", i+1), g})
	}

	var counts Counts
	dir := filepath.Join(d.Dir, "raw", f.Code)
	for i, j := range jobs {
		dest := filepath.Join(dir, Filename(j.role, j.url))
		if _, err := os.Stat(dest); err == nil {
			counts.Skipped++
			continue
		}
		if i > 0 {
			time.Sleep(d.Delay)
		}
		if err := d.fetch(j.url, dest); err != nil {
			d.Log.Errorw("image download failed", "family", f.Code, "url", j.url, "err", err)
			counts.Failed++
			continue
		}
		counts.Done++
	}
	return counts
}

func (d *Downloader) fetch(rawURL, dest string) error {
	resp, err := d.Client.Get(rawURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, resp.Body)
	return err
}

// Filename derives the deterministic local name for an image role and URL:
// role plus the sanitized basename of the URL path.
func Filename(role, rawURL string) string {
	base := path.Base(rawURL)
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		base = path.Base(u.Path)
	}
	return role + "-" + unsafeChars.ReplaceAllString(base, "_")
}
