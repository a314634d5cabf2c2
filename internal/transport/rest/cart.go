// Package rest provides the HTTP handlers for the storefront service.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/duckydrinks/storefront/internal/cart"
	"github.com/duckydrinks/storefront/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// sessionCookie identifies the visitor's cart across reloads.
const sessionCookie = "cart_session"

// CartHandler exposes the cart store over HTTP. Each request resolves the
// session's cart through the manager; the handler never holds cart state.
type CartHandler struct {
	carts    *cart.Manager
	validate *validator.Validate
	logger   *slog.Logger
}

// NewCartHandler creates a cart handler backed by the given manager.
func NewCartHandler(carts *cart.Manager, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		carts:    carts,
		validate: validator.New(),
		logger:   logger.With("component", "rest.cart"),
	}
}

// RegisterRoutes registers the cart routes.
func (h *CartHandler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Delete("/", h.Clear)
		r.Post("/open", h.Open)
		r.Post("/close", h.Close)

		r.Route("/lines", func(r chi.Router) {
			r.Post("/", h.AddLine)
			r.Put("/{lineID}", h.SetQuantity)
			r.Delete("/{lineID}", h.RemoveLine)
		})
	})
}

// MoneyDto is a price as submitted by the storefront UI: the catalog's
// decimal string amount plus its currency code.
type MoneyDto struct {
	Amount   string `json:"amount"   validate:"required"`
	Currency string `json:"currency" validate:"required,len=3"`
}

// AddLineDto carries the catalog snapshot for one add-to-cart action.
// Quantity defaults to 1 when omitted.
type AddLineDto struct {
	ProductID       string        `json:"product_id"    validate:"required"`
	VariantID       string        `json:"variant_id"    validate:"required"`
	VariantLabel    string        `json:"variant_label" validate:"max=200"`
	UnitPrice       MoneyDto      `json:"unit_price"    validate:"required"`
	Quantity        *int          `json:"quantity"      validate:"omitempty,gt=0"`
	Title           string        `json:"title"         validate:"required,max=200"`
	ImageURL        string        `json:"image_url"     validate:"omitempty,url"`
	SelectedOptions []cart.Option `json:"selected_options"`
}

// QuantityDto sets a line's quantity. Zero and negative values remove the line.
type QuantityDto struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// CartViewDto is the cart's query surface as one response. CheckoutEnabled is
// the empty-cart guard the consuming surface drives its checkout button off.
type CartViewDto struct {
	Lines           []cart.Line `json:"lines"`
	TotalItemCount  int         `json:"total_item_count"`
	Subtotal        cart.Money  `json:"subtotal"`
	IsOpen          bool        `json:"is_open"`
	CheckoutEnabled bool        `json:"checkout_enabled"`
}

// Get returns the session's cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(r, h.logger)
	store := h.sessionCart(w, r)
	web.RespondJSON(w, mLogger, http.StatusOK, cartView(store))
}

// AddLine adds a catalog snapshot to the session's cart, merging with an
// existing line for the same product+variant.
func (h *CartHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(r, h.logger)
	var dto AddLineDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !h.validateStruct(w, r, mLogger, dto) {
		return
	}

	unitPrice, err := cart.ParseMoney(dto.UnitPrice.Amount, dto.UnitPrice.Currency)
	if err != nil {
		mLogger.WarnContext(r.Context(), "Invalid unit price", "amount", dto.UnitPrice.Amount, "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, fmt.Sprintf("Invalid unit price: %s", dto.UnitPrice.Amount))
		return
	}
	quantity := 1
	if dto.Quantity != nil {
		quantity = *dto.Quantity
	}

	store := h.sessionCart(w, r)
	err = store.AddLine(cart.LineInput{
		ProductID:       dto.ProductID,
		VariantID:       dto.VariantID,
		VariantLabel:    dto.VariantLabel,
		UnitPrice:       unitPrice,
		Title:           dto.Title,
		ImageURL:        dto.ImageURL,
		SelectedOptions: dto.SelectedOptions,
	}, quantity)
	if err != nil {
		if errors.Is(err, cart.ErrCurrencyMismatch) {
			mLogger.WarnContext(r.Context(), "Currency mismatch on add", "error", err)
			web.RespondError(w, mLogger, http.StatusConflict, "Cart lines must share one currency")
			return
		}
		mLogger.WarnContext(r.Context(), "Rejected cart line", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid cart line")
		return
	}
	mLogger.InfoContext(r.Context(), "Line added to cart",
		"product_id", dto.ProductID, "variant_id", dto.VariantID, "quantity", quantity)
	web.RespondJSON(w, mLogger, http.StatusOK, cartView(store))
}

// SetQuantity replaces a line's quantity. A quantity of zero or below removes
// the line; an unknown line id leaves the cart unchanged.
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(r, h.logger)
	lineID := chi.URLParam(r, "lineID")
	var dto QuantityDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !h.validateStruct(w, r, mLogger, dto) {
		return
	}

	store := h.sessionCart(w, r)
	store.SetQuantity(lineID, *dto.Quantity)
	mLogger.DebugContext(r.Context(), "Line quantity set", "line_id", lineID, "quantity", *dto.Quantity)
	web.RespondJSON(w, mLogger, http.StatusOK, cartView(store))
}

// RemoveLine removes a line. Removing an absent line succeeds.
func (h *CartHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(r, h.logger)
	lineID := chi.URLParam(r, "lineID")

	store := h.sessionCart(w, r)
	store.RemoveLine(lineID)
	mLogger.DebugContext(r.Context(), "Line removed", "line_id", lineID)
	web.RespondJSON(w, mLogger, http.StatusOK, cartView(store))
}

// Clear empties the session's cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(r, h.logger)
	store := h.sessionCart(w, r)
	store.Clear()
	mLogger.InfoContext(r.Context(), "Cart cleared")
	web.RespondJSON(w, mLogger, http.StatusOK, cartView(store))
}

// Open marks the cart drawer visible.
func (h *CartHandler) Open(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(r, h.logger)
	store := h.sessionCart(w, r)
	store.SetOpen(true)
	web.RespondJSON(w, mLogger, http.StatusOK, cartView(store))
}

// Close marks the cart drawer hidden.
func (h *CartHandler) Close(w http.ResponseWriter, r *http.Request) {
	mLogger := loggerWithReqID(r, h.logger)
	store := h.sessionCart(w, r)
	store.SetOpen(false)
	web.RespondJSON(w, mLogger, http.StatusOK, cartView(store))
}

// sessionCart resolves the visitor's cart, minting a session cookie on first
// contact.
func (h *CartHandler) sessionCart(w http.ResponseWriter, r *http.Request) *cart.Store {
	var sessionID string
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if _, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
			sessionID = cookie.Value
		}
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    sessionID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return h.carts.Cart(sessionID)
}

func (h *CartHandler) validateStruct(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, dto any) bool {
	if err := h.validate.Struct(dto); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			errorResponse := make(map[string]string)
			for _, fieldErr := range validationErrors {
				errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
			}
			mLogger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
			web.RespondJSON(w, mLogger, http.StatusBadRequest, map[string]any{"validation_errors": errorResponse})
			return false
		}
		mLogger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func cartView(store *cart.Store) CartViewDto {
	count := store.TotalItemCount()
	return CartViewDto{
		Lines:           store.Lines(),
		TotalItemCount:  count,
		Subtotal:        store.Subtotal(),
		IsOpen:          store.IsOpen(),
		CheckoutEnabled: count > 0,
	}
}
