package account

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayurnidaan/ayurnidaan/internal/platform/storage"
)

// Slot is the storage slot holding all registered accounts.
const Slot = "accounts"

// SlotRepo keeps every account in one storage slot, rewritten whole on
// each registration.
type SlotRepo struct {
	mu       sync.Mutex
	store    storage.Store
	accounts []*Account
	now      func() time.Time
}

func NewSlotRepo(store storage.Store) (*SlotRepo, error) {
	r := &SlotRepo{store: store, now: time.Now}
	if _, err := store.Read(Slot, &r.accounts); err != nil {
		return nil, fmt.Errorf("load %s slot: %w", Slot, err)
	}
	return r, nil
}

func (r *SlotRepo) Create(ctx context.Context, a *Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if strings.EqualFold(existing.Email, a.Email) {
			return ErrDuplicateEmail
		}
	}

	cp := a.Clone()
	cp.ID = uuid.New()
	cp.CreatedAt = r.now().UTC()

	next := make([]*Account, len(r.accounts), len(r.accounts)+1)
	copy(next, r.accounts)
	next = append(next, cp)

	if err := r.store.Write(Slot, next); err != nil {
		return err
	}
	r.accounts = next

	a.ID = cp.ID
	a.CreatedAt = cp.CreatedAt
	return nil
}

func (r *SlotRepo) FindByEmail(ctx context.Context, email string) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.accounts {
		if strings.EqualFold(a.Email, email) {
			return a.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

func (r *SlotRepo) FindByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.accounts {
		if a.ID == id {
			return a.Clone(), nil
		}
	}
	return nil, ErrNotFound
}
