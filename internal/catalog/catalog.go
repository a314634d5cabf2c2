// Package catalog provides a read-only client for the commerce platform's
// storefront API. The cart treats catalog data as opaque input; nothing here
// mutates platform state.
package catalog

import "errors"

var (
	// ErrProductNotFound is returned when no product exists with the given handle.
	ErrProductNotFound = errors.New("product not found")
	// ErrPaymentRequired is returned when the platform rejects storefront API
	// access because the shop is not on a paid plan.
	ErrPaymentRequired = errors.New("storefront API access requires a paid plan")
)

// Money is a price as the catalog reports it: a decimal string amount plus
// its currency code.
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

// SelectedOption is one option pair chosen by a variant, e.g. Pack Size / 12-pack.
type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Variant is a specific purchasable configuration of a product with its own
// price and availability.
type Variant struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Price            Money            `json:"price"`
	AvailableForSale bool             `json:"available_for_sale"`
	SelectedOptions  []SelectedOption `json:"selected_options"`
}

// Image is a product image.
type Image struct {
	URL     string `json:"url"`
	AltText string `json:"alt_text,omitempty"`
}

// ProductOption lists the values a product offers for one option dimension.
type ProductOption struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Product is a catalog product with its variants flattened out of the wire
// shape's edges/node nesting.
type Product struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Handle      string          `json:"handle"`
	ProductType string          `json:"product_type"`
	Tags        []string        `json:"tags"`
	MinPrice    Money           `json:"min_price"`
	Images      []Image         `json:"images"`
	Variants    []Variant       `json:"variants"`
	Options     []ProductOption `json:"options"`
}
