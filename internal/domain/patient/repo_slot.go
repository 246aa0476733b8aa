package patient

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayurnidaan/ayurnidaan/internal/platform/storage"
)

// Slot is the storage slot holding the whole record collection.
const Slot = "patients"

// SlotRepo keeps the record collection in one storage slot, mirroring the
// original single-blob layout. Every mutation rewrites the full collection:
// the new sequence is persisted first and only then swapped into memory, so
// a failed write leaves both sides on the old state.
type SlotRepo struct {
	mu      sync.Mutex
	store   storage.Store
	records []*PatientRecord
	now     func() time.Time
}

func NewSlotRepo(store storage.Store) (*SlotRepo, error) {
	r := &SlotRepo{store: store, now: time.Now}
	if _, err := store.Read(Slot, &r.records); err != nil {
		return nil, fmt.Errorf("load %s slot: %w", Slot, err)
	}
	return r, nil
}

func (r *SlotRepo) List(ctx context.Context) ([]*PatientRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*PatientRecord, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.Clone()
	}
	return out, nil
}

func (r *SlotRepo) Append(ctx context.Context, rec *PatientRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := rec.Clone()
	cp.ID = uuid.New()
	cp.CreatedAt = r.now().UTC()

	next := make([]*PatientRecord, len(r.records), len(r.records)+1)
	copy(next, r.records)
	next = append(next, cp)

	if err := r.store.Write(Slot, next); err != nil {
		return err
	}
	r.records = next

	rec.ID = cp.ID
	rec.CreatedAt = cp.CreatedAt
	return nil
}

func (r *SlotRepo) FindByID(ctx context.Context, id uuid.UUID) (*PatientRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.ID == id {
			return rec.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

func (r *SlotRepo) UpdateDiagnosis(ctx context.Context, id uuid.UUID, d Diagnosis) (*PatientRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]*PatientRecord, len(r.records))
	var updated *PatientRecord
	for i, rec := range r.records {
		if rec.ID == id {
			cp := rec.Clone()
			cp.setDiagnosis(&d)
			next[i] = cp
			updated = cp
		} else {
			next[i] = rec
		}
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	if err := r.store.Write(Slot, next); err != nil {
		return nil, err
	}
	r.records = next
	return updated.Clone(), nil
}
