// Package store implements the entity store: durable CRUD over the three
// flat collections (transactions, categories, budgets). Every mutation
// persists the full collection synchronously before returning, so readers
// always reflect the latest persisted state.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"budgetto/internal/core"
)

// Store is safe for concurrent use by HTTP handlers. A single mutex is
// enough: collections are small and every operation is a full read or a
// full read-modify-write of one blob.
type Store struct {
	mu    sync.Mutex
	blobs Blobs
	gen   uint64

	// Injection points for tests; defaults cover production.
	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used to default transaction dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the opaque ID generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// New creates a Store over the given persistence backend and runs the
// one-shot category repairs (seeding, emoji backfill).
func New(blobs Blobs, opts ...Option) (*Store, error) {
	s := &Store{
		blobs: blobs,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.repairCategories(); err != nil {
		return nil, fmt.Errorf("repair categories: %w", err)
	}
	return s, nil
}

// Generation returns the refresh token: a counter incremented on every
// successful mutation. Consumers key derived-view caches on it and must
// treat a change as an opaque invalidation signal.
func (s *Store) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// Snapshot returns a point-in-time copy of all three collections together
// with the generation it was taken at.
func (s *Store) Snapshot() (core.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.loadTransactions()
	if err != nil {
		return core.Snapshot{}, err
	}
	cats, err := s.repairCategories()
	if err != nil {
		return core.Snapshot{}, err
	}
	budgets, err := s.loadBudgets()
	if err != nil {
		return core.Snapshot{}, err
	}
	return core.Snapshot{
		Generation:   s.gen,
		Transactions: txs,
		Categories:   cats,
		Budgets:      budgets,
	}, nil
}

// --- Transactions ---

func (s *Store) ListTransactions() ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadTransactions()
}

// AddTransaction assigns an ID, defaults the date to today when absent,
// validates, appends, and persists. The input ID is ignored.
func (s *Store) AddTransaction(tx core.Transaction) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx.ID = s.newID()
	if strings.TrimSpace(tx.Date) == "" {
		tx.Date = s.now().Format("2006-01-02")
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}

	txs, err := s.loadTransactions()
	if err != nil {
		return core.Transaction{}, err
	}
	txs = append(txs, tx)
	if err := s.saveTransactions(txs); err != nil {
		return core.Transaction{}, err
	}
	return tx, nil
}

// UpdateTransaction replaces every field of the stored record except the
// immutable ID. Returns core.ErrNotFound for an unknown id.
func (s *Store) UpdateTransaction(tx core.Transaction) (core.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.loadTransactions()
	if err != nil {
		return core.Transaction{}, err
	}
	for i := range txs {
		if txs[i].ID == tx.ID {
			txs[i] = tx
			if err := s.saveTransactions(txs); err != nil {
				return core.Transaction{}, err
			}
			return tx, nil
		}
	}
	return core.Transaction{}, core.ErrNotFound
}

// DeleteTransaction removes the record with the given id. The bool reports
// whether anything was removed; a miss is not an error.
func (s *Store) DeleteTransaction(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.loadTransactions()
	if err != nil {
		return false, err
	}
	kept := txs[:0]
	for _, t := range txs {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(txs) {
		return false, nil
	}
	if err := s.saveTransactions(kept); err != nil {
		return false, err
	}
	return true, nil
}

// --- Categories ---

func (s *Store) ListCategories() ([]core.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repairCategories()
}

// AddCategory stores a new category, generating an id when the draft has
// none. Names must be unique case-insensitively across both types.
func (s *Store) AddCategory(cat core.Category) (core.Category, error) {
	if err := cat.Validate(); err != nil {
		return core.Category{}, err
	}
	cat.Name = strings.TrimSpace(cat.Name)

	s.mu.Lock()
	defer s.mu.Unlock()

	cats, err := s.repairCategories()
	if err != nil {
		return core.Category{}, err
	}
	if strings.TrimSpace(cat.ID) == "" {
		cat.ID = s.newID()
	}
	for _, existing := range cats {
		if strings.EqualFold(existing.Name, cat.Name) {
			return core.Category{}, core.ErrDuplicateName
		}
		if existing.ID == cat.ID {
			return core.Category{}, fmt.Errorf("category id %q already exists", cat.ID)
		}
	}
	cats = append(cats, cat)
	if err := s.saveCategories(cats); err != nil {
		return core.Category{}, err
	}
	return cat, nil
}

func (s *Store) UpdateCategory(cat core.Category) (core.Category, error) {
	if err := cat.Validate(); err != nil {
		return core.Category{}, err
	}
	cat.Name = strings.TrimSpace(cat.Name)

	s.mu.Lock()
	defer s.mu.Unlock()

	cats, err := s.repairCategories()
	if err != nil {
		return core.Category{}, err
	}
	idx := -1
	for i := range cats {
		if cats[i].ID == cat.ID {
			idx = i
			continue
		}
		if strings.EqualFold(cats[i].Name, cat.Name) {
			return core.Category{}, core.ErrDuplicateName
		}
	}
	if idx == -1 {
		return core.Category{}, core.ErrNotFound
	}
	cats[idx] = cat
	if err := s.saveCategories(cats); err != nil {
		return core.Category{}, err
	}
	return cat, nil
}

// DeleteCategory is non-cascading: transactions and budgets referencing the
// deleted category keep their categoryId and degrade at read time.
func (s *Store) DeleteCategory(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cats, err := s.repairCategories()
	if err != nil {
		return false, err
	}
	kept := cats[:0]
	for _, c := range cats {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(cats) {
		return false, nil
	}
	if err := s.saveCategories(kept); err != nil {
		return false, err
	}
	return true, nil
}

// --- Budgets ---

func (s *Store) ListBudgets() ([]core.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadBudgets()
}

// UpsertBudget saves the budget for (categoryID, period), replacing any
// existing record with the same composite id. Saving the same triple twice
// yields one record, not two.
func (s *Store) UpsertBudget(categoryID string, period core.Period, amount core.Money) (core.Budget, error) {
	b := core.Budget{
		ID:         core.BudgetID(categoryID, period),
		CategoryID: categoryID,
		Period:     period,
		Amount:     amount,
	}
	if err := b.Validate(); err != nil {
		return core.Budget{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	budgets, err := s.loadBudgets()
	if err != nil {
		return core.Budget{}, err
	}
	replaced := false
	for i := range budgets {
		if budgets[i].ID == b.ID {
			budgets[i] = b
			replaced = true
			break
		}
	}
	if !replaced {
		budgets = append(budgets, b)
	}
	if err := s.saveBudgets(budgets); err != nil {
		return core.Budget{}, err
	}
	return b, nil
}

func (s *Store) DeleteBudget(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	budgets, err := s.loadBudgets()
	if err != nil {
		return false, err
	}
	kept := budgets[:0]
	for _, b := range budgets {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(budgets) {
		return false, nil
	}
	if err := s.saveBudgets(kept); err != nil {
		return false, err
	}
	return true, nil
}

// GetBudget looks up the budget for a category and period.
func (s *Store) GetBudget(categoryID string, period core.Period) (core.Budget, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	budgets, err := s.loadBudgets()
	if err != nil {
		return core.Budget{}, false, err
	}
	id := core.BudgetID(categoryID, period)
	for _, b := range budgets {
		if b.ID == id {
			return b, true, nil
		}
	}
	return core.Budget{}, false, nil
}

// --- persistence plumbing (callers hold s.mu) ---

// loadCollection decodes one blob. A blob that fails to parse is reported as
// absent: the store discards corrupt state and keeps going rather than
// turning one bad write into a dead application. For categories this also
// means a corrupt blob falls back to the seeded default set.
func loadCollection[T any](b Blobs, key string) ([]T, bool, error) {
	data, found, err := b.Load(key)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		slog.Warn("Discarding corrupt collection blob", "key", key, "error", err)
		return nil, false, nil
	}
	return out, true, nil
}

func (s *Store) saveCollection(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.blobs.Save(key, data); err != nil {
		return err
	}
	s.gen++
	return nil
}

func (s *Store) loadTransactions() ([]core.Transaction, error) {
	txs, _, err := loadCollection[core.Transaction](s.blobs, KeyTransactions)
	return txs, err
}

func (s *Store) saveTransactions(txs []core.Transaction) error {
	if txs == nil {
		txs = []core.Transaction{}
	}
	return s.saveCollection(KeyTransactions, txs)
}

func (s *Store) saveCategories(cats []core.Category) error {
	if cats == nil {
		cats = []core.Category{}
	}
	return s.saveCollection(KeyCategories, cats)
}

func (s *Store) loadBudgets() ([]core.Budget, error) {
	budgets, _, err := loadCollection[core.Budget](s.blobs, KeyBudgets)
	return budgets, err
}

func (s *Store) saveBudgets(budgets []core.Budget) error {
	if budgets == nil {
		budgets = []core.Budget{}
	}
	return s.saveCollection(KeyBudgets, budgets)
}

// repairCategories loads the category collection, seeding the default set on
// first-ever access and backfilling records that predate the emoji field.
// Both repairs persist immediately, so each runs at most once per record.
func (s *Store) repairCategories() ([]core.Category, error) {
	cats, found, err := loadCollection[core.Category](s.blobs, KeyCategories)
	if err != nil {
		return nil, err
	}
	if !found {
		seeded := defaultCategories()
		if err := s.saveCategories(seeded); err != nil {
			return nil, err
		}
		slog.Info("Seeded default categories", "count", len(seeded))
		return seeded, nil
	}

	emojiByID := defaultEmojiByID()
	changed := false
	for i := range cats {
		if cats[i].Emoji != "" {
			continue
		}
		if emoji, ok := emojiByID[cats[i].ID]; ok {
			cats[i].Emoji = emoji
		} else {
			cats[i].Emoji = placeholderEmoji
		}
		changed = true
	}
	if changed {
		if err := s.saveCategories(cats); err != nil {
			return nil, err
		}
		slog.Info("Backfilled category emoji", "count", len(cats))
	}
	return cats, nil
}
