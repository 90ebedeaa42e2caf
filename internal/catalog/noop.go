package catalog

import (
	"context"

	"go.uber.org/zap"
)

// Noop is used when no admin token is configured. Reads return empty,
// writes log what they would have done. Keeps the rest of the pipeline
// runnable with partial configuration.
type Noop struct {
	Log *zap.SugaredLogger
}

func (n *Noop) ListProducts(ctx context.Context, handlePrefix string) ([]Product, error) {
	return nil, nil
}

func (n *Noop) CreateProduct(ctx context.Context, req CreateProductRequest) (Product, error) {
	n.Log.Infow("noop: would create product", "handle", req.Handle)
	return Product{ID: "noop-" + req.Handle, Handle: req.Handle}, nil
}

func (n *Noop) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) error {
	n.Log.Infow("noop: would update product", "id", id)
	return nil
}

func (n *Noop) DeleteProduct(ctx context.Context, id string) error {
	n.Log.Infow("noop: would delete product", "id", id)
	return nil
}

func (n *Noop) ListCategories(ctx context.Context) ([]Category, error)         { return nil, nil }
func (n *Noop) ListCustomerGroups(ctx context.Context) ([]CustomerGroup, error) { return nil, nil }
func (n *Noop) ListPriceLists(ctx context.Context) ([]PriceList, error)        { return nil, nil }

func (n *Noop) CreatePriceList(ctx context.Context, req CreatePriceListRequest) error {
	n.Log.Infow("noop: would create price list", "title", req.Title, "prices", len(req.Prices))
	return nil
}

func (n *Noop) DeletePriceList(ctx context.Context, id string) error {
	n.Log.Infow("noop: would delete price list", "id", id)
	return nil
}

func (n *Noop) ListInventoryItems(ctx context.Context) ([]InventoryItem, error) { return nil, nil }

func (n *Noop) ListInventoryLevels(ctx context.Context, itemID string) ([]InventoryLevel, error) {
	return nil, nil
}

func (n *Noop) CreateInventoryLevel(ctx context.Context, itemID, locationID string, stocked int) error {
	n.Log.Infow("noop: would create inventory level", "item", itemID, "location", locationID)
	return nil
}

func (n *Noop) ListStockLocations(ctx context.Context) ([]StockLocation, error)     { return nil, nil }
func (n *Noop) ListShippingProfiles(ctx context.Context) ([]ShippingProfile, error) { return nil, nil }
func (n *Noop) ListSalesChannels(ctx context.Context) ([]SalesChannel, error)       { return nil, nil }
