package catalog

// Typed shapes for the slice of the commerce backend's admin API this
// pipeline touches. Only fields we read or write are modeled.

type Product struct {
	ID          string    `json:"id"`
	Handle      string    `json:"handle"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Variants    []Variant `json:"variants"`
}

type Variant struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	SKU    string  `json:"sku"`
	Prices []Price `json:"prices"`
}

// Price amounts are minor units of the currency.
type Price struct {
	CurrencyCode string `json:"currency_code"`
	Amount       int64  `json:"amount"`
}

type ProductImage struct {
	URL string `json:"url"`
}

type ProductOption struct {
	Title  string   `json:"title"`
	Values []string `json:"values"`
}

// CreateProductRequest is the only path that can attach prices and
// categories in bulk.
type CreateProductRequest struct {
	Handle      string            `json:"handle"`
	Title       string            `json:"title"`
	Subtitle    string            `json:"subtitle,omitempty"`
	Description string            `json:"description,omitempty"`
	Status      string            `json:"status"`
	CategoryIDs []string          `json:"category_ids,omitempty"`
	Images      []ProductImage    `json:"images,omitempty"`
	Options     []ProductOption   `json:"options,omitempty"`
	Variants    []CreateVariant   `json:"variants"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type CreateVariant struct {
	Title   string            `json:"title"`
	SKU     string            `json:"sku"`
	Options map[string]string `json:"options,omitempty"`
	Prices  []Price           `json:"prices"`
}

// UpdateProductRequest deliberately has no price or category fields: the
// backend cannot change either through the update path, only through
// delete and recreate.
type UpdateProductRequest struct {
	Title       string            `json:"title,omitempty"`
	Subtitle    string            `json:"subtitle,omitempty"`
	Description string            `json:"description,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type Category struct {
	ID     string `json:"id"`
	Handle string `json:"handle"`
	Name   string `json:"name"`
}

type CustomerGroup struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type PriceList struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type CreatePriceListRequest struct {
	Title            string           `json:"title"`
	Description      string           `json:"description,omitempty"`
	Status           string           `json:"status"`
	Type             string           `json:"type"`
	CustomerGroupIDs []string         `json:"customer_group_ids"`
	Prices           []PriceListPrice `json:"prices"`
}

type PriceListPrice struct {
	VariantID    string `json:"variant_id"`
	CurrencyCode string `json:"currency_code"`
	Amount       int64  `json:"amount"`
}

type InventoryItem struct {
	ID  string `json:"id"`
	SKU string `json:"sku"`
}

type InventoryLevel struct {
	InventoryItemID string `json:"inventory_item_id"`
	LocationID      string `json:"location_id"`
	Stocked         int    `json:"stocked_quantity"`
}

type StockLocation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ShippingProfile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SalesChannel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
