package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const familyPage = `<!DOCTYPE html>
<html><body>
<div class="hero">
  <img src="/img/hd6-hero.jpg">
  <h1>BrightSign HD6</h1>
  <h2 class="tagline">Reliable &amp; affordable signage</h2>
</div>
<div class="hero hero-mobile">
  <h1>BrightSign HD6 (mobile)</h1>
  <h2 class="tagline">duplicate for responsive layout</h2>
</div>
<div class="product-overview">
  <p>The HD6 line delivers   Full HD playback.</p>
  <p>Built for 24/7 operation.</p>
  <ul>
    <li>H.265 &amp; H.264 decoding</li>
    <li>Gigabit Ethernet</li>
  </ul>
</div>
<img class="product-image" src="/img/hd6-product.png">
<a href="/datasheets/hd6.pdf">Datasheet</a>
<div class="slider">
  <img src="/img/hd6-1.jpg">
  <img src="/img/hd6-2.jpg">
</div>
<div class="slider">
  <img src="/img/hd6-2.jpg">
  <img src="/img/hd6-3.jpg">
</div>
<table class="compare">
  <thead>
    <tr><th>Specs</th><th>HD226</th><th>HD1026</th></tr>
  </thead>
  <tbody>
    <tr><td>Video</td><td>Full HD</td><td>Full HD, 4K upscale</td></tr>
    <tr><td>PoE+</td><td>&#10003;</td><td>&#10003;</td></tr>
    <tr><td>Storage</td><td>microSD</td><td>microSD, SSD</td></tr>
  </tbody>
</table>
</body></html>`

func parseFixture(t *testing.T, page string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func TestParseFamilyPage(t *testing.T) {
	desc := FamilyDescriptor{Code: "hd6", Series: 6}
	family := ParseFamilyPage(parseFixture(t, familyPage), desc)

	t.Run("hero uses only the first match", func(t *testing.T) {
		assert.Equal(t, "BrightSign HD6", family.Name)
		assert.Equal(t, "Reliable & affordable signage", family.Tagline)
	})

	t.Run("overview and features are normalized", func(t *testing.T) {
		require.Len(t, family.Overview, 2)
		assert.Equal(t, "The HD6 line delivers Full HD playback.", family.Overview[0])
		assert.Equal(t, []string{"H.265 & H.264 decoding", "Gigabit Ethernet"}, family.Features)
	})

	t.Run("images and datasheet", func(t *testing.T) {
		assert.Equal(t, "/img/hd6-product.png", family.Images.Product)
		assert.Equal(t, "/img/hd6-hero.jpg", family.Images.Hero)
		assert.Equal(t, "/datasheets/hd6.pdf", family.DatasheetURL)
	})

	t.Run("gallery de-duplicates across sliders", func(t *testing.T) {
		assert.Equal(t, []string{"/img/hd6-1.jpg", "/img/hd6-2.jpg", "/img/hd6-3.jpg"},
			family.Images.Gallery)
	})

	t.Run("comparison table yields one model per column", func(t *testing.T) {
		require.Len(t, family.Models, 2)
		hd226 := family.Models[0]
		assert.Equal(t, "HD226", hd226.Number)
		assert.Equal(t, 1, hd226.Column)
		assert.Equal(t, "Full HD", hd226.Specs["Video"])
		assert.Equal(t, "✓", hd226.Specs["PoE+"])

		hd1026 := family.Models[1]
		assert.Equal(t, "HD1026", hd1026.Number)
		assert.Equal(t, "Full HD, 4K upscale", hd1026.Specs["Video"])
		assert.Equal(t, "microSD, SSD", hd1026.Specs["Storage"])
	})
}

func TestParseFamilyPageWithoutTable(t *testing.T) {
	page := `<html><body><div class="hero"><h1>AU5</h1></div></body></html>`
	family := ParseFamilyPage(parseFixture(t, page), FamilyDescriptor{Code: "au5", Series: 5})
	assert.Equal(t, "AU5", family.Name)
	assert.Empty(t, family.Models, "missing comparison table is not an error")
}

func TestFamilyLookups(t *testing.T) {
	desc, ok := ByCode("hd6")
	require.True(t, ok)
	assert.Equal(t, 6, desc.Series)

	_, ok = ByCode("nope")
	assert.False(t, ok)

	series5 := BySeries(5)
	require.NotEmpty(t, series5)
	for _, f := range series5 {
		assert.Equal(t, 5, f.Series)
	}
}
