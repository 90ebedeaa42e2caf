package model

import (
	"strings"
	"time"
)

// Family is one manufacturer product line scraped from the BrightSign site.
// It is replaced wholesale each time its family is scraped; Code is its
// identity key.
type Family struct {
	Code         string       `json:"code"`
	Series       int          `json:"series"`
	Name         string       `json:"name"`
	Tagline      string       `json:"tagline"`
	Overview     []string     `json:"overview"`
	Features     []string     `json:"features"`
	DatasheetURL string       `json:"datasheetUrl,omitempty"`
	Images       FamilyImages `json:"images"`
	Models       []Model      `json:"models"`
	SourceURL    string       `json:"sourceUrl"`
	ScrapedAt    time.Time    `json:"scrapedAt"`
}

// FamilyImages are shared by every model in the family. The manufacturer
// site has no per-model images.
type FamilyImages struct {
	Hero      string   `json:"hero,omitempty"`
	Product   string   `json:"product,omitempty"`
	Thumbnail string   `json:"thumbnail,omitempty"`
	Gallery   []string `json:"gallery,omitempty"`
}

// Model is one sellable SKU inside a family. Column is the model's column
// index in the comparison table it was parsed from.
type Model struct {
	Number string            `json:"number"`
	Column int               `json:"column"`
	Specs  map[string]string `json:"specs"`
}

// ParsedSpecs is the typed view over a model's raw spec strings. Recomputed
// at generation time, never stored on its own.
type ParsedSpecs struct {
	Video      []string          `json:"video,omitempty"`
	Audio      []string          `json:"audio,omitempty"`
	Interfaces []string          `json:"interfaces,omitempty"`
	Storage    string            `json:"storage,omitempty"`
	Network    string            `json:"network,omitempty"`
	PoE        bool              `json:"poe"`
	HTMLEngine bool              `json:"htmlEngine"`
	Warranty   string            `json:"warranty,omitempty"`
	Other      map[string]string `json:"other,omitempty"`
}

// GeneratedContent is the source-language marketing copy for one model.
// Keyed by ModelNumber; generator runs upsert by model number.
type GeneratedContent struct {
	ModelNumber    string      `json:"modelNumber"`
	FamilyCode     string      `json:"familyCode"`
	Series         int         `json:"series"`
	Title          string      `json:"title"`
	Subtitle       string      `json:"subtitle"`
	Description    string      `json:"description"`
	SEOTitle       string      `json:"seoTitle"`
	SEODescription string      `json:"seoDescription"`
	Specs          ParsedSpecs `json:"specs"`
	GeneratedAt    time.Time   `json:"generatedAt"`
}

// TranslatedContent is one (model, locale) pair's translated copy.
type TranslatedContent struct {
	Title          string `json:"title"`
	Subtitle       string `json:"subtitle"`
	Description    string `json:"description"`
	SEOTitle       string `json:"seoTitle"`
	SEODescription string `json:"seoDescription"`
}

// Translations maps model number -> locale -> content.
type Translations map[string]map[string]TranslatedContent

// PriceOverride is a manually curated price ceiling for one model. EUR and
// PLN are optional; zero means "derive from CZK".
type PriceOverride struct {
	ModelNumber string `json:"modelNumber"`
	PriceCZK    int64  `json:"priceCZK"`
	PriceEUR    int64  `json:"priceEUR,omitempty"`
	PricePLN    int64  `json:"pricePLN,omitempty"`
}

// HandlePrefix is the fixed prefix of every catalog handle this pipeline owns.
const HandlePrefix = "brightsign-"

// Handle derives the catalog handle for a model number. Sync and image
// upload both go through here so they always address the same product.
func Handle(modelNumber string) string {
	return HandlePrefix + strings.ToLower(modelNumber)
}
