package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/brightsign-store/product-agent/internal/model"
)

const (
	scrapedFile      = "scraped-products.json"
	generatedFile    = "generated-content.json"
	translationsFile = "translations.json"
	overridesFile    = "price-overrides.json"
)

// ErrMissing marks a required upstream file that has not been produced yet.
// The CLI turns it into a "run X first" message.
var ErrMissing = errors.New("data file missing")

// Store is the pipeline's durable state: flat JSON documents under Dir.
// Documents are read fully, mutated in memory and rewritten fully. Single
// writer assumed, so the only crash safety is write-to-temp plus rename.
type Store struct {
	Dir string
}

func New(dir string) *Store {
	return &Store{Dir: dir}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.Dir, name)
}

func (s *Store) read(name string, out any) error {
	b, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrMissing, name)
		}
		return err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func (s *Store) write(name string, in any) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path(name + ".tmp")
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(name))
}

// LoadFamilies returns all scraped families. Missing file is ErrMissing.
func (s *Store) LoadFamilies() ([]model.Family, error) {
	var families []model.Family
	if err := s.read(scrapedFile, &families); err != nil {
		return nil, err
	}
	return families, nil
}

// SaveFamily replaces the family with the same code, or appends it.
func (s *Store) SaveFamily(f model.Family) error {
	families, err := s.LoadFamilies()
	if err != nil && !errors.Is(err, ErrMissing) {
		return err
	}
	replaced := false
	for i := range families {
		if families[i].Code == f.Code {
			families[i] = f
			replaced = true
			break
		}
	}
	if !replaced {
		families = append(families, f)
	}
	return s.write(scrapedFile, families)
}

// LoadGenerated returns all generated content. Missing file is ErrMissing.
func (s *Store) LoadGenerated() ([]model.GeneratedContent, error) {
	var entries []model.GeneratedContent
	if err := s.read(generatedFile, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// UpsertGenerated merges entries into the store by model number. An
// existing entry for the same model is replaced, everything else is kept,
// so a model never appears twice.
func (s *Store) UpsertGenerated(entries []model.GeneratedContent) error {
	existing, err := s.LoadGenerated()
	if err != nil && !errors.Is(err, ErrMissing) {
		return err
	}
	byModel := make(map[string]int, len(existing))
	for i, e := range existing {
		byModel[e.ModelNumber] = i
	}
	for _, e := range entries {
		if i, ok := byModel[e.ModelNumber]; ok {
			existing[i] = e
		} else {
			byModel[e.ModelNumber] = len(existing)
			existing = append(existing, e)
		}
	}
	return s.write(generatedFile, existing)
}

// LoadTranslations returns the nested model -> locale map. A missing file
// is an empty map, not an error: translations are optional input for sync.
func (s *Store) LoadTranslations() (model.Translations, error) {
	t := model.Translations{}
	if err := s.read(translationsFile, &t); err != nil {
		if errors.Is(err, ErrMissing) {
			return model.Translations{}, nil
		}
		return nil, err
	}
	return t, nil
}

// MergeTranslations folds new (model, locale) entries into the saved file.
// Entries for other models and other locales are left untouched, so
// repeated runs for different locales are additive.
func (s *Store) MergeTranslations(t model.Translations) error {
	existing, err := s.LoadTranslations()
	if err != nil {
		return err
	}
	for modelNumber, locales := range t {
		if existing[modelNumber] == nil {
			existing[modelNumber] = map[string]model.TranslatedContent{}
		}
		for locale, content := range locales {
			existing[modelNumber][locale] = content
		}
	}
	return s.write(translationsFile, existing)
}

// LoadOverrides returns the externally curated price overrides. The file is
// optional; missing means no overrides.
func (s *Store) LoadOverrides() ([]model.PriceOverride, error) {
	var overrides []model.PriceOverride
	if err := s.read(overridesFile, &overrides); err != nil {
		if errors.Is(err, ErrMissing) {
			return nil, nil
		}
		return nil, err
	}
	return overrides, nil
}
