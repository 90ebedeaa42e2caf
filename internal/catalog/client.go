// Package catalog is the typed client for the commerce backend's admin
// API. The pipeline never talks to the backend except through here.
package catalog

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// API is the slice of the admin surface the sync and price-list steps use.
type API interface {
	ListProducts(ctx context.Context, handlePrefix string) ([]Product, error)
	CreateProduct(ctx context.Context, req CreateProductRequest) (Product, error)
	UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) error
	DeleteProduct(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]Category, error)
	ListCustomerGroups(ctx context.Context) ([]CustomerGroup, error)
	ListPriceLists(ctx context.Context) ([]PriceList, error)
	CreatePriceList(ctx context.Context, req CreatePriceListRequest) error
	DeletePriceList(ctx context.Context, id string) error
	ListInventoryItems(ctx context.Context) ([]InventoryItem, error)
	ListInventoryLevels(ctx context.Context, itemID string) ([]InventoryLevel, error)
	CreateInventoryLevel(ctx context.Context, itemID, locationID string, stocked int) error
	ListStockLocations(ctx context.Context) ([]StockLocation, error)
	ListShippingProfiles(ctx context.Context) ([]ShippingProfile, error)
	ListSalesChannels(ctx context.Context) ([]SalesChannel, error)
}

// NewClient returns the HTTP client when a token is configured, the no-op
// client otherwise, so the pipeline stays usable without admin access.
func New(baseURL, token string, log *zap.SugaredLogger) API {
	if token == "" {
		log.Warn("CATALOG_API_TOKEN not set, catalog mutations will be no-ops")
		return &Noop{Log: log}
	}
	return NewClient(baseURL, token)
}

// Client talks to the admin API over HTTP with bearer auth.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetAuthToken(token).
			SetHeader("Content-Type", "application/json"),
	}
}

func check(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("%s %s: status %d: %s",
			resp.Request.Method, resp.Request.URL, resp.StatusCode(), resp.String())
	}
	return nil
}

func (c *Client) ListProducts(ctx context.Context, handlePrefix string) ([]Product, error) {
	var out struct {
		Products []Product `json:"products"`
	}
	resp, err := c.http.R().SetContext(ctx).
		SetQueryParam("handle", handlePrefix).
		SetQueryParam("limit", "200").
		SetResult(&out).
		Get("/admin/products")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out.Products, nil
}

func (c *Client) CreateProduct(ctx context.Context, req CreateProductRequest) (Product, error) {
	var out struct {
		Product Product `json:"product"`
	}
	resp, err := c.http.R().SetContext(ctx).
		SetHeader("Idempotency-Key", uuid.New().String()).
		SetBody(req).
		SetResult(&out).
		Post("/admin/products")
	if err := check(resp, err); err != nil {
		return Product{}, err
	}
	return out.Product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) error {
	resp, err := c.http.R().SetContext(ctx).
		SetBody(req).
		Post("/admin/products/" + id)
	return check(resp, err)
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	resp, err := c.http.R().SetContext(ctx).Delete("/admin/products/" + id)
	return check(resp, err)
}

func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var out struct {
		Categories []Category `json:"product_categories"`
	}
	resp, err := c.http.R().SetContext(ctx).
		SetQueryParam("limit", "200").
		SetResult(&out).
		Get("/admin/product-categories")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

func (c *Client) ListCustomerGroups(ctx context.Context) ([]CustomerGroup, error) {
	var out struct {
		Groups []CustomerGroup `json:"customer_groups"`
	}
	resp, err := c.http.R().SetContext(ctx).
		SetResult(&out).
		Get("/admin/customer-groups")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out.Groups, nil
}

func (c *Client) ListPriceLists(ctx context.Context) ([]PriceList, error) {
	var out struct {
		PriceLists []PriceList `json:"price_lists"`
	}
	resp, err := c.http.R().SetContext(ctx).
		SetResult(&out).
		Get("/admin/price-lists")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out.PriceLists, nil
}

func (c *Client) CreatePriceList(ctx context.Context, req CreatePriceListRequest) error {
	resp, err := c.http.R().SetContext(ctx).
		SetBody(req).
		Post("/admin/price-lists")
	return check(resp, err)
}

func (c *Client) DeletePriceList(ctx context.Context, id string) error {
	resp, err := c.http.R().SetContext(ctx).Delete("/admin/price-lists/" + id)
	return check(resp, err)
}

func (c *Client) ListInventoryItems(ctx context.Context) ([]InventoryItem, error) {
	var out struct {
		Items []InventoryItem `json:"inventory_items"`
	}
	resp, err := c.http.R().SetContext(ctx).
		SetQueryParam("limit", "500").
		SetResult(&out).
		Get("/admin/inventory-items")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) ListInventoryLevels(ctx context.Context, itemID string) ([]InventoryLevel, error) {
	var out struct {
		Levels []InventoryLevel `json:"inventory_levels"`
	}
	resp, err := c.http.R().SetContext(ctx).
		SetResult(&out).
		Get("/admin/inventory-items/" + itemID + "/location-levels")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out.Levels, nil
}

func (c *Client) CreateInventoryLevel(ctx context.Context, itemID, locationID string, stocked int) error {
	resp, err := c.http.R().SetContext(ctx).
		SetBody(map[string]any{
			"location_id":      locationID,
			"stocked_quantity": stocked,
		}).
		Post("/admin/inventory-items/" + itemID + "/location-levels")
	return check(resp, err)
}

func (c *Client) ListStockLocations(ctx context.Context) ([]StockLocation, error) {
	var out struct {
		Locations []StockLocation `json:"stock_locations"`
	}
	resp, err := c.http.R().SetContext(ctx).
		SetResult(&out).
		Get("/admin/stock-locations")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out.Locations, nil
}

func (c *Client) ListShippingProfiles(ctx context.Context) ([]ShippingProfile, error) {
	var out struct {
		Profiles []ShippingProfile `json:"shipping_profiles"`
	}
	resp, err := c.http.R().SetContext(ctx).
		SetResult(&out).
		Get("/admin/shipping-profiles")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out.Profiles, nil
}

func (c *Client) ListSalesChannels(ctx context.Context) ([]SalesChannel, error) {
	var out struct {
		Channels []SalesChannel `json:"sales_channels"`
	}
	resp, err := c.http.R().SetContext(ctx).
		SetResult(&out).
		Get("/admin/sales-channels")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out.Channels, nil
}
