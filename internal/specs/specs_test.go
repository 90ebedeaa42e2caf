package specs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brightsign-store/product-agent/internal/model"
)

func TestIsTrue(t *testing.T) {
	for _, v := range []string{"✓", "✔", "yes", "Yes", "TRUE", "ano", " ✓ "} {
		assert.True(t, IsTrue(v), v)
	}
	for _, v := range []string{"", "—", "-", "no", "ne", "1"} {
		assert.False(t, IsTrue(v), v)
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"H.265", "H.264", "VP9"}, SplitList("H.265, H.264; VP9"))
	assert.Equal(t, []string{"HDMI 2.0"}, SplitList("HDMI 2.0"))
	assert.Nil(t, SplitList(" , ; "))
}

func TestDefaultWarranty(t *testing.T) {
	assert.Equal(t, "5 let záruky (po registraci produktu)", DefaultWarranty(5))
	assert.Equal(t, "5 let záruky (po registraci produktu)", DefaultWarranty(6))
	assert.Equal(t, "3 roky záruky", DefaultWarranty(4))
}

func TestParse(t *testing.T) {
	m := model.Model{
		Number: "XT1145",
		Specs: map[string]string{
			"Video Decode":  "Dual 4K, HDR10",
			"Audio":         "Analog; HDMI",
			"I/O Ports":     "USB-C, GPIO",
			"Storage":       "microSD up to 2TB",
			"Ethernet":      "Gigabit",
			"PoE+":          "✓",
			"HTML5 Engine":  "yes",
			"Ruční ovladač": "volitelný",
		},
	}

	parsed := Parse(m, 5)
	assert.Equal(t, []string{"Dual 4K", "HDR10"}, parsed.Video)
	assert.Equal(t, []string{"Analog", "HDMI"}, parsed.Audio)
	assert.Equal(t, []string{"USB-C", "GPIO"}, parsed.Interfaces)
	assert.Equal(t, "microSD up to 2TB", parsed.Storage)
	assert.Equal(t, "Gigabit", parsed.Network)
	assert.True(t, parsed.PoE)
	assert.True(t, parsed.HTMLEngine)
	assert.Equal(t, "5 let záruky (po registraci produktu)", parsed.Warranty)
	assert.Equal(t, "volitelný", parsed.Other["Ruční ovladač"])
}

func TestParseExplicitWarrantyWins(t *testing.T) {
	m := model.Model{Specs: map[string]string{"Warranty": "2 roky"}}
	parsed := Parse(m, 6)
	assert.Equal(t, "2 roky", parsed.Warranty)
}
