package scraper

import (
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/brightsign-store/product-agent/internal/model"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// Scraper fetches manufacturer family pages and turns them into Family
// records. One page per family, fixed courtesy delay between pages.
type Scraper struct {
	BaseURL string
	Delay   time.Duration
	Client  *http.Client
	Log     *zap.SugaredLogger
}

func New(baseURL string, delay time.Duration, log *zap.SugaredLogger) *Scraper {
	return &Scraper{
		BaseURL: baseURL,
		Delay:   delay,
		Client:  &http.Client{Timeout: 60 * time.Second},
		Log:     log,
	}
}

// ScrapeAll runs the descriptors sequentially. A failed family is logged
// and skipped; the rest of the batch still runs.
func (s *Scraper) ScrapeAll(descs []FamilyDescriptor, save func(model.Family) error) {
	for i, desc := range descs {
		if i > 0 {
			time.Sleep(s.Delay)
		}
		family, err := s.ScrapeFamily(desc)
		if err != nil {
			s.Log.Errorw("scrape failed", "family", desc.Code, "err", err)
			continue
		}
		if err := save(family); err != nil {
			s.Log.Errorw("save failed", "family", desc.Code, "err", err)
			continue
		}
		s.Log.Infow("scraped", "family", desc.Code, "models", len(family.Models))
	}
}

// ScrapeFamily fetches and parses one family page.
func (s *Scraper) ScrapeFamily(desc FamilyDescriptor) (model.Family, error) {
	url := s.BaseURL + desc.Path
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return model.Family{}, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		return model.Family{}, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.Family{}, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return model.Family{}, fmt.Errorf("parse %s: %w", url, err)
	}

	family := ParseFamilyPage(doc, desc)
	family.SourceURL = url
	family.ScrapedAt = time.Now().UTC()
	return family, nil
}

// ParseFamilyPage extracts a Family from a parsed document. Only the first
// hero match is used because the page repeats the hero block for its
// responsive variants.
func ParseFamilyPage(doc *goquery.Document, desc FamilyDescriptor) model.Family {
	family := model.Family{
		Code:   desc.Code,
		Series: desc.Series,
		Name:   clean(doc.Find(".hero h1").First().Text()),
		Tagline: clean(doc.Find(".hero .tagline, .hero h2").First().Text()),
	}

	doc.Find(".product-overview p").Each(func(_ int, sel *goquery.Selection) {
		if text := clean(sel.Text()); text != "" {
			family.Overview = append(family.Overview, text)
		}
	})
	doc.Find(".product-overview ul li").Each(func(_ int, sel *goquery.Selection) {
		if text := clean(sel.Text()); text != "" {
			family.Features = append(family.Features, text)
		}
	})

	if src, ok := doc.Find("img.product-image").First().Attr("src"); ok {
		family.Images.Product = src
	}
	if src, ok := doc.Find(".hero img").First().Attr("src"); ok {
		family.Images.Hero = src
	}
	if href, ok := doc.Find(`a[href$=".pdf"]`).First().Attr("href"); ok {
		family.DatasheetURL = href
	}

	seen := map[string]bool{}
	doc.Find(".slider img, .carousel img").Each(func(_ int, sel *goquery.Selection) {
		src, ok := sel.Attr("src")
		if !ok || src == "" || seen[src] {
			return
		}
		seen[src] = true
		family.Images.Gallery = append(family.Images.Gallery, src)
	})

	family.Models = parseComparisonTable(doc)
	return family
}

// parseComparisonTable reads the header row as model numbers and each body
// row as one spec spread across the model columns. No table means no
// models, which is fine for single-model pages.
func parseComparisonTable(doc *goquery.Document) []model.Model {
	table := doc.Find("table.compare, table.comparison").First()
	if table.Length() == 0 {
		return nil
	}

	var models []model.Model
	table.Find("thead th").Each(func(i int, sel *goquery.Selection) {
		if i == 0 {
			return // spec label column
		}
		number := clean(sel.Text())
		if number == "" {
			return
		}
		models = append(models, model.Model{
			Number: number,
			Column: i,
			Specs:  map[string]string{},
		})
	})
	if len(models) == 0 {
		return nil
	}

	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() < 2 {
			return
		}
		specName := clean(cells.First().Text())
		if specName == "" {
			return
		}
		cells.Each(func(i int, cell *goquery.Selection) {
			for m := range models {
				if models[m].Column == i {
					models[m].Specs[specName] = clean(cell.Text())
				}
			}
		})
	})
	return models
}

// clean collapses whitespace and decodes the handful of HTML entities the
// site uses inside text nodes.
func clean(s string) string {
	return strings.Join(strings.Fields(html.UnescapeString(s)), " ")
}
