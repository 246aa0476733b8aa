package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no record matches the requested id.
var ErrNotFound = errors.New("patient record not found")

// Repository is the record store. Implementations keep insertion order,
// never delete records, and must leave both memory and persistence
// unchanged when a write fails.
type Repository interface {
	// List returns all records in insertion order.
	List(ctx context.Context) ([]*PatientRecord, error)
	// Append assigns the record an id and adds it to the end of the
	// collection. The whole collection is rewritten; on failure nothing
	// is kept.
	Append(ctx context.Context, rec *PatientRecord) error
	// FindByID returns the matching record or ErrNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*PatientRecord, error)
	// UpdateDiagnosis replaces the diagnosis (and derived summary) of the
	// matching record and persists the full collection. Idempotent.
	UpdateDiagnosis(ctx context.Context, id uuid.UUID, d Diagnosis) (*PatientRecord, error)
}
