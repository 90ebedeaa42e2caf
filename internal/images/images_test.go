package images

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brightsign-store/product-agent/internal/model"
)

func TestFilename(t *testing.T) {
	assert.Equal(t, "product-hd6_front.png", Filename("product", "https://cdn.example.com/media/hd6 front.png"))
	assert.Equal(t, "gallery-1-hd6-1.jpg", Filename("gallery-1", "https://cdn.example.com/img/hd6-1.jpg?v=2"))
	assert.Equal(t, "hero-banner.jpg", Filename("hero", "/img/banner.jpg"))
}

func writePNG(t *testing.T, path string, width, height int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		img.Set(x, 0, color.RGBA{R: uint8(x % 256), A: 255})
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func decodeWidth(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, _, err := image.Decode(f)
	require.NoError(t, err)
	return img.Bounds().Dx()
}

func TestProcessorResizesToBothTiers(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "raw", "hd6", "product-hd6.png"), 2000, 1000)

	p := NewProcessor(dir, zap.NewNop().Sugar())
	stats, err := p.ProcessAll("", DefaultProcessOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Done)
	assert.Zero(t, stats.Failed)

	gallery := filepath.Join(dir, "processed", "hd6", "product-hd6-gallery.jpg")
	thumb := filepath.Join(dir, "processed", "hd6", "product-hd6-thumb.jpg")
	assert.Equal(t, 1200, decodeWidth(t, gallery))
	assert.Equal(t, 400, decodeWidth(t, thumb))
}

func TestProcessorNeverUpscales(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "raw", "hd6", "product-small.png"), 300, 200)

	p := NewProcessor(dir, zap.NewNop().Sugar())
	_, err := p.ProcessAll("hd6", DefaultProcessOptions())
	require.NoError(t, err)

	gallery := filepath.Join(dir, "processed", "hd6", "product-small-gallery.jpg")
	assert.Equal(t, 300, decodeWidth(t, gallery))
}

func TestProcessorSkipsExistingAndHero(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "raw", "hd6", "product-hd6.png"), 800, 400)
	writePNG(t, filepath.Join(dir, "raw", "hd6", "hero-banner.png"), 800, 400)

	p := NewProcessor(dir, zap.NewNop().Sugar())

	stats, err := p.ProcessAll("hd6", DefaultProcessOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Done, "hero banner must be skipped")
	assert.Equal(t, 1, stats.Skipped)

	stats, err = p.ProcessAll("hd6", DefaultProcessOptions())
	require.NoError(t, err)
	assert.Zero(t, stats.Done, "existing outputs are skipped")
	assert.Equal(t, 2, stats.Skipped)

	opts := DefaultProcessOptions()
	opts.Overwrite = true
	stats, err = p.ProcessAll("hd6", opts)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Done, "overwrite reprocesses")
}

func TestDownloaderSkipsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	d := NewDownloader(dir, 0, zap.NewNop().Sugar())

	// pre-seed the cache so no network call is needed
	dest := filepath.Join(dir, "raw", "hd6", Filename("product", "https://cdn.example.com/hd6.png"))
	require.NoError(t, os.MkdirAll(filepath.Dir(dest), 0o755))
	require.NoError(t, os.WriteFile(dest, []byte("cached"), 0o644))

	counts := d.DownloadFamily(model.Family{
		Code:   "hd6",
		Images: model.FamilyImages{Product: "https://cdn.example.com/hd6.png"},
	})
	assert.Equal(t, 1, counts.Skipped)
	assert.Zero(t, counts.Done)
	assert.Zero(t, counts.Failed)
}
