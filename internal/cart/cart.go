// Package cart implements the shopping cart store: an ordered collection of
// purchasable lines with write-through persistence and derived totals.
package cart

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidLine is returned when AddLine receives input missing required
	// identifiers or carrying a non-positive quantity.
	ErrInvalidLine = errors.New("invalid cart line input")
	// ErrCurrencyMismatch is returned when a line's currency differs from the
	// currency already present in the cart. A cart is single-currency.
	ErrCurrencyMismatch = errors.New("cart line currency mismatch")
)

// Money is a decimal amount with its ISO 4217 currency code.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// ParseMoney parses a decimal string amount as reported by the catalog
// (e.g. "14.99") together with its currency code.
func ParseMoney(amount, currency string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money amount %q: %w", amount, err)
	}
	return Money{Amount: d, Currency: currency}, nil
}

// Mul returns the money multiplied by an integer quantity.
func (m Money) Mul(quantity int) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(quantity))), Currency: m.Currency}
}

// Add returns the sum of two amounts. Both must share the same currency;
// callers are expected to have enforced that already.
func (m Money) Add(other Money) Money {
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}
}

// String renders the amount with two decimal places, e.g. "14.99 USD".
func (m Money) String() string {
	return m.Amount.StringFixed(2) + " " + m.Currency
}

// Option is a single selected product option pair, e.g. {"Pack Size", "12-pack"}.
type Option struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Line is a single purchasable entry in the cart. Product data inside a line
// is a denormalized snapshot captured at add time, not a live catalog reference.
type Line struct {
	LineID          string   `json:"line_id"`
	ProductID       string   `json:"product_id"`
	VariantID       string   `json:"variant_id"`
	VariantLabel    string   `json:"variant_label"`
	UnitPrice       Money    `json:"unit_price"`
	Quantity        int      `json:"quantity"`
	Title           string   `json:"title"`
	ImageURL        string   `json:"image_url,omitempty"`
	SelectedOptions []Option `json:"selected_options,omitempty"`
}

// LineInput carries the catalog snapshot needed to add a line to the cart.
type LineInput struct {
	ProductID       string
	VariantID       string
	VariantLabel    string
	UnitPrice       Money
	Title           string
	ImageURL        string
	SelectedOptions []Option
}

// LineID derives the stable line identity from the product and variant
// identifiers, so adding the same product+variant again merges into one line.
func LineID(productID, variantID string) string {
	return productID + "::" + variantID
}

func (in LineInput) validate() error {
	switch {
	case in.ProductID == "":
		return fmt.Errorf("%w: missing product id", ErrInvalidLine)
	case in.VariantID == "":
		return fmt.Errorf("%w: missing variant id", ErrInvalidLine)
	case in.Title == "":
		return fmt.Errorf("%w: missing product title", ErrInvalidLine)
	case in.UnitPrice.Currency == "":
		return fmt.Errorf("%w: missing unit price currency", ErrInvalidLine)
	case in.UnitPrice.Amount.IsNegative():
		return fmt.Errorf("%w: negative unit price", ErrInvalidLine)
	}
	return nil
}
