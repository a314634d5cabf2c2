package cart

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"
)

// Store owns the cart state for one session. All mutations run under a mutex
// as a full read-modify-persist sequence, so concurrent request handlers
// cannot lose updates. Persistence failures never surface to callers: the
// store logs a warning and keeps operating on the in-memory state.
type Store struct {
	mu     sync.Mutex
	key    string
	lines  []Line
	isOpen bool

	persister Persister
	logger    *slog.Logger
}

// NewStore creates a cart store for the given persistence key and hydrates it
// from previously persisted state. A missing or unparseable payload yields an
// empty cart; it is never an error. The open/close flag is ephemeral and
// always starts closed.
func NewStore(key string, persister Persister, logger *slog.Logger) *Store {
	s := &Store{
		key:       key,
		persister: persister,
		logger:    logger.With("component", "cart", "cart_key", key),
	}
	s.hydrate()
	return s
}

func (s *Store) hydrate() {
	payload, found, err := s.persister.Load(s.key)
	if err != nil {
		s.logger.Warn("Failed to load persisted cart, starting empty", "error", err)
		return
	}
	if !found {
		return
	}
	var lines []Line
	if err := json.Unmarshal(payload, &lines); err != nil {
		s.logger.Warn("Persisted cart payload is corrupt, starting empty", "error", err)
		return
	}
	// Drop any line that violates the quantity floor, e.g. from a tampered payload.
	for _, line := range lines {
		if line.Quantity >= 1 {
			s.lines = append(s.lines, line)
		}
	}
}

// AddLine merges the given catalog snapshot into the cart. If a line with the
// same product+variant already exists its quantity is incremented and its
// price and display metadata are refreshed to the latest snapshot; otherwise
// a new line is appended. Quantity must be positive.
func (s *Store) AddLine(input LineInput, quantity int) error {
	if err := input.validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidLine, quantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.lines) > 0 && s.lines[0].UnitPrice.Currency != input.UnitPrice.Currency {
		return fmt.Errorf("%w: cart is %s, line is %s",
			ErrCurrencyMismatch, s.lines[0].UnitPrice.Currency, input.UnitPrice.Currency)
	}

	id := LineID(input.ProductID, input.VariantID)
	for i := range s.lines {
		if s.lines[i].LineID == id {
			s.lines[i].Quantity += quantity
			s.lines[i].VariantLabel = input.VariantLabel
			s.lines[i].UnitPrice = input.UnitPrice
			s.lines[i].Title = input.Title
			s.lines[i].ImageURL = input.ImageURL
			s.lines[i].SelectedOptions = input.SelectedOptions
			s.persist()
			return nil
		}
	}

	s.lines = append(s.lines, Line{
		LineID:          id,
		ProductID:       input.ProductID,
		VariantID:       input.VariantID,
		VariantLabel:    input.VariantLabel,
		UnitPrice:       input.UnitPrice,
		Quantity:        quantity,
		Title:           input.Title,
		ImageURL:        input.ImageURL,
		SelectedOptions: input.SelectedOptions,
	})
	s.persist()
	return nil
}

// RemoveLine removes the line with the given id. Removing an absent line is a
// no-op, so removal is idempotent.
func (s *Store) RemoveLine(lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(lineID)
	s.persist()
}

// SetQuantity replaces the quantity of the line with the given id. A quantity
// of zero or below behaves exactly as RemoveLine. Unknown line ids are a no-op.
func (s *Store) SetQuantity(lineID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(lineID)
		s.persist()
		return
	}
	for i := range s.lines {
		if s.lines[i].LineID == lineID {
			s.lines[i].Quantity = quantity
			break
		}
	}
	s.persist()
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.persist()
}

// SetOpen sets the cart panel visibility flag. The flag is presentation state
// and is never persisted.
func (s *Store) SetOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = open
}

// ToggleOpen flips the cart panel visibility flag.
func (s *Store) ToggleOpen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = !s.isOpen
}

// IsOpen reports the cart panel visibility flag.
func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isOpen
}

// Lines returns a copy of the cart lines in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)
	return lines
}

// TotalItemCount returns the sum of quantities over all lines.
func (s *Store) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// Subtotal returns the sum of unit price times quantity over all lines, in the
// currency of the first line. An empty cart yields a zero amount with no
// currency.
func (s *Store) Subtotal() Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.lines) == 0 {
		return Money{Amount: decimal.Zero}
	}
	subtotal := Money{Amount: decimal.Zero, Currency: s.lines[0].UnitPrice.Currency}
	for _, line := range s.lines {
		subtotal = subtotal.Add(line.UnitPrice.Mul(line.Quantity))
	}
	return subtotal
}

func (s *Store) removeLocked(lineID string) {
	for i := range s.lines {
		if s.lines[i].LineID == lineID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// persist writes the full line collection through to the persister. Must be
// called with the mutex held.
func (s *Store) persist() {
	payload, err := json.Marshal(s.lines)
	if err != nil {
		s.logger.Warn("Failed to serialize cart, keeping in-memory state only", "error", err)
		return
	}
	if err := s.persister.Save(s.key, payload); err != nil {
		s.logger.Warn("Failed to persist cart, keeping in-memory state only", "error", err)
	}
}
