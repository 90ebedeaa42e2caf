// Package sync reconciles generated content against the external catalog:
// create what is missing, cheaply update what exists, and only recreate
// under an explicit flag since updates cannot touch prices or categories.
package sync

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/brightsign-store/product-agent/internal/catalog"
	"github.com/brightsign-store/product-agent/internal/model"
	"github.com/brightsign-store/product-agent/internal/observability"
	"github.com/brightsign-store/product-agent/internal/store"
)

type Syncer struct {
	Store         *store.Store
	Catalog       catalog.API
	Log           *zap.SugaredLogger
	ForceRecreate bool
}

// Result counts one sync run.
type Result struct {
	Created   int
	Updated   int
	Recreated int
	Failed    int
}

// Run reconciles every generated model, or one when modelFilter is set.
// Per-model failures are logged and skipped; the batch continues.
func (s *Syncer) Run(ctx context.Context, modelFilter string) (Result, error) {
	generated, err := s.Store.LoadGenerated()
	if err != nil {
		return Result{}, err
	}
	translations, err := s.Store.LoadTranslations()
	if err != nil {
		return Result{}, err
	}
	overrides, err := s.Store.LoadOverrides()
	if err != nil {
		return Result{}, err
	}
	overrideByModel := make(map[string]model.PriceOverride, len(overrides))
	for _, o := range overrides {
		overrideByModel[o.ModelNumber] = o
	}

	familyByCode := map[string]model.Family{}
	if families, err := s.Store.LoadFamilies(); err == nil {
		for _, f := range families {
			familyByCode[f.Code] = f
		}
	}

	existing, err := s.Catalog.ListProducts(ctx, model.HandlePrefix)
	if err != nil {
		return Result{}, err
	}
	existingByHandle := make(map[string]catalog.Product, len(existing))
	for _, p := range existing {
		existingByHandle[p.Handle] = p
	}

	categories, err := s.Catalog.ListCategories(ctx)
	if err != nil {
		return Result{}, err
	}

	var result Result
	var createdSKUs []string
	for _, content := range generated {
		if modelFilter != "" && content.ModelNumber != modelFilter {
			continue
		}
		handle := model.Handle(content.ModelNumber)
		current, exists := existingByHandle[handle]

		if exists && !s.ForceRecreate {
			if err := s.update(ctx, current, content, translations[content.ModelNumber]); err != nil {
				s.Log.Errorw("update failed", "model", content.ModelNumber, "err", err)
				result.Failed++
				continue
			}
			observability.CatalogUpdates.Inc()
			result.Updated++
			continue
		}

		if exists {
			if err := s.Catalog.DeleteProduct(ctx, current.ID); err != nil {
				s.Log.Errorw("delete before recreate failed", "model", content.ModelNumber, "err", err)
				result.Failed++
				continue
			}
			result.Recreated++
		}

		override := overridePtr(overrideByModel, content.ModelNumber)
		prices := ComputePrices(currentCZK(current), override)
		if err := s.create(ctx, content, translations[content.ModelNumber],
			familyByCode[content.FamilyCode], categories, prices); err != nil {
			s.Log.Errorw("create failed", "model", content.ModelNumber, "err", err)
			result.Failed++
			continue
		}
		observability.CatalogCreates.Inc()
		if !exists {
			result.Created++
		}
		createdSKUs = append(createdSKUs, content.ModelNumber)
	}

	if len(createdSKUs) > 0 {
		if err := s.backfillInventory(ctx, createdSKUs); err != nil {
			s.Log.Errorw("inventory backfill failed", "err", err)
		}
	}
	return result, nil
}

func (s *Syncer) update(ctx context.Context, current catalog.Product, content model.GeneratedContent, translated map[string]model.TranslatedContent) error {
	// Update path cannot set prices or categories; that asymmetry is a
	// backend limitation and the reason FORCE_RECREATE exists.
	return s.Catalog.UpdateProduct(ctx, current.ID, catalog.UpdateProductRequest{
		Title:       content.Title,
		Subtitle:    content.Subtitle,
		Description: content.Description,
		Metadata:    buildMetadata(content, translated),
	})
}

func (s *Syncer) create(ctx context.Context, content model.GeneratedContent, translated map[string]model.TranslatedContent, family model.Family, categories []catalog.Category, prices Prices) error {
	var catalogPrices []catalog.Price
	for _, p := range prices.catalogPrices() {
		catalogPrices = append(catalogPrices, catalog.Price{CurrencyCode: p.currency, Amount: p.amount})
	}

	var images []catalog.ProductImage
	if family.Images.Product != "" {
		images = append(images, catalog.ProductImage{URL: family.Images.Product})
	}
	for _, g := range family.Images.Gallery {
		images = append(images, catalog.ProductImage{URL: g})
	}

	_, err := s.Catalog.CreateProduct(ctx, catalog.CreateProductRequest{
		Handle:      model.Handle(content.ModelNumber),
		Title:       content.Title,
		Subtitle:    content.Subtitle,
		Description: content.Description,
		Status:      "published",
		CategoryIDs: ResolveCategories(CategoryHandles(content.FamilyCode), categories),
		Images:      images,
		Variants: []catalog.CreateVariant{{
			Title:  content.ModelNumber,
			SKU:    content.ModelNumber,
			Prices: catalogPrices,
		}},
		Metadata: buildMetadata(content, translated),
	})
	return err
}

// backfillInventory creates a zero-stock level at the default location for
// any new inventory item without one, so downstream stock checks do not
// trip over unmanaged inventory.
func (s *Syncer) backfillInventory(ctx context.Context, skus []string) error {
	locations, err := s.Catalog.ListStockLocations(ctx)
	if err != nil {
		return err
	}
	if len(locations) == 0 {
		return nil
	}
	location := locations[0]

	wanted := make(map[string]bool, len(skus))
	for _, sku := range skus {
		wanted[sku] = true
	}

	items, err := s.Catalog.ListInventoryItems(ctx)
	if err != nil {
		return err
	}
	for _, item := range items {
		if !wanted[item.SKU] {
			continue
		}
		levels, err := s.Catalog.ListInventoryLevels(ctx, item.ID)
		if err != nil {
			s.Log.Errorw("inventory level check failed", "sku", item.SKU, "err", err)
			continue
		}
		if len(levels) > 0 {
			continue
		}
		if err := s.Catalog.CreateInventoryLevel(ctx, item.ID, location.ID, 0); err != nil {
			s.Log.Errorw("inventory level create failed", "sku", item.SKU, "err", err)
		}
	}
	return nil
}

// buildMetadata flattens parsed specs, SEO fields and translations into the
// catalog metadata bag. Keys are stable so updates replace, not accumulate.
func buildMetadata(content model.GeneratedContent, translated map[string]model.TranslatedContent) map[string]string {
	meta := map[string]string{
		"seo_title":       content.SEOTitle,
		"seo_description": content.SEODescription,
		"family":          content.FamilyCode,
		"warranty":        content.Specs.Warranty,
	}
	if len(content.Specs.Video) > 0 {
		meta["spec_video"] = strings.Join(content.Specs.Video, ", ")
	}
	if len(content.Specs.Audio) > 0 {
		meta["spec_audio"] = strings.Join(content.Specs.Audio, ", ")
	}
	if len(content.Specs.Interfaces) > 0 {
		meta["spec_interfaces"] = strings.Join(content.Specs.Interfaces, ", ")
	}
	if content.Specs.Storage != "" {
		meta["spec_storage"] = content.Specs.Storage
	}
	if content.Specs.Network != "" {
		meta["spec_network"] = content.Specs.Network
	}
	if content.Specs.PoE {
		meta["spec_poe"] = "true"
	}
	if content.Specs.HTMLEngine {
		meta["spec_html_engine"] = "true"
	}
	for key, value := range content.Specs.Other {
		meta["spec_"+slugKey(key)] = value
	}
	for locale, t := range translated {
		meta["title_"+locale] = t.Title
		meta["subtitle_"+locale] = t.Subtitle
		meta["description_"+locale] = t.Description
		meta["seo_title_"+locale] = t.SEOTitle
		meta["seo_description_"+locale] = t.SEODescription
	}
	return meta
}

func slugKey(k string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(k), " ", "_"))
}

func overridePtr(m map[string]model.PriceOverride, modelNumber string) *model.PriceOverride {
	if o, ok := m[modelNumber]; ok {
		return &o
	}
	return nil
}

// currentCZK pulls the existing CZK price off a catalog product so a
// recreate without an override keeps the price it had.
func currentCZK(p catalog.Product) int64 {
	for _, v := range p.Variants {
		for _, price := range v.Prices {
			if strings.EqualFold(price.CurrencyCode, "czk") {
				return price.Amount
			}
		}
	}
	return 0
}
