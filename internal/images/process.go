package images

import (
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

// ProcessOptions control the derivative outputs. The thumbnail tier trades
// a little quality for size since it only ever renders small.
type ProcessOptions struct {
	GalleryWidth   int
	ThumbWidth     int
	GalleryQuality int
	ThumbQuality   int
	SkipHero       bool
	Overwrite      bool
}

func DefaultProcessOptions() ProcessOptions {
	return ProcessOptions{
		GalleryWidth:   1200,
		ThumbWidth:     400,
		GalleryQuality: 82,
		ThumbQuality:   75,
		SkipHero:       true,
	}
}

// Processor turns cached originals under Dir/raw into JPEG derivatives
// under Dir/processed, one gallery and one thumbnail output per source.
type Processor struct {
	Dir string
	Log *zap.SugaredLogger
}

func NewProcessor(dir string, log *zap.SugaredLogger) *Processor {
	return &Processor{Dir: dir, Log: log}
}

// ProcessStats extends Counts with the byte delta of a run.
type ProcessStats struct {
	Counts
	BytesSaved int64
}

// ProcessAll processes every cached family, or just one when familyCode is
// non-empty. Returns aggregate stats.
func (p *Processor) ProcessAll(familyCode string, opts ProcessOptions) (ProcessStats, error) {
	rawDir := filepath.Join(p.Dir, "raw")
	entries, err := os.ReadDir(rawDir)
	if err != nil {
		return ProcessStats{}, fmt.Errorf("no cached images under %s: %w", rawDir, err)
	}

	var total ProcessStats
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if familyCode != "" && entry.Name() != familyCode {
			continue
		}
		stats := p.processFamily(entry.Name(), opts)
		p.Log.Infow("processed family images", "family", entry.Name(),
			"done", stats.Done, "skipped", stats.Skipped, "failed", stats.Failed,
			"bytesSaved", stats.BytesSaved)
		total.Done += stats.Done
		total.Skipped += stats.Skipped
		total.Failed += stats.Failed
		total.BytesSaved += stats.BytesSaved
	}
	return total, nil
}

func (p *Processor) processFamily(family string, opts ProcessOptions) ProcessStats {
	var stats ProcessStats
	srcDir := filepath.Join(p.Dir, "raw", family)
	outDir := filepath.Join(p.Dir, "processed", family)

	files, err := os.ReadDir(srcDir)
	if err != nil {
		stats.Failed++
		return stats
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		if opts.SkipHero && strings.HasPrefix(f.Name(), "hero-") {
			stats.Skipped++
			continue
		}
		saved, err := p.processOne(filepath.Join(srcDir, f.Name()), outDir, f.Name(), opts, &stats)
		if err != nil {
			p.Log.Errorw("image processing failed", "family", family, "file", f.Name(), "err", err)
			stats.Failed++
			continue
		}
		stats.BytesSaved += saved
	}
	return stats
}

func (p *Processor) processOne(src, outDir, name string, opts ProcessOptions, stats *ProcessStats) (int64, error) {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	galleryOut := filepath.Join(outDir, stem+"-gallery.jpg")
	thumbOut := filepath.Join(outDir, stem+"-thumb.jpg")

	if !opts.Overwrite {
		_, gErr := os.Stat(galleryOut)
		_, tErr := os.Stat(thumbOut)
		if gErr == nil && tErr == nil {
			stats.Skipped++
			return 0, nil
		}
	}

	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	img, _, err := image.Decode(in)
	in.Close()
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, err
	}
	if err := encodeResized(img, galleryOut, opts.GalleryWidth, opts.GalleryQuality); err != nil {
		return 0, err
	}
	if err := encodeResized(img, thumbOut, opts.ThumbWidth, opts.ThumbQuality); err != nil {
		return 0, err
	}
	stats.Done++

	srcInfo, err := os.Stat(src)
	if err != nil {
		return 0, nil
	}
	galleryInfo, err := os.Stat(galleryOut)
	if err != nil {
		return 0, nil
	}
	return srcInfo.Size() - galleryInfo.Size(), nil
}

// encodeResized writes img as JPEG at most maxWidth wide. Images already
// narrower are re-encoded at their native size, never upscaled.
func encodeResized(img image.Image, dest string, maxWidth, quality int) error {
	bounds := img.Bounds()
	if bounds.Dx() > maxWidth {
		height := bounds.Dy() * maxWidth / bounds.Dx()
		scaled := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)
		img = scaled
	}

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()
	return jpeg.Encode(out, img, &jpeg.Options{Quality: quality})
}
