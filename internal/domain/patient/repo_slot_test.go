package patient

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/ayurnidaan/ayurnidaan/internal/platform/storage"
)

func newTestRecord(t *testing.T) *PatientRecord {
	t.Helper()
	rec, err := validDraft(t).ToRecord()
	if err != nil {
		t.Fatal(err)
	}
	return rec
}

func TestSlotRepo_AppendAssignsID(t *testing.T) {
	repo, err := NewSlotRepo(storage.NewMemStore())
	if err != nil {
		t.Fatal(err)
	}

	rec := newTestRecord(t)
	if err := repo.Append(context.Background(), rec); err != nil {
		t.Fatal(err)
	}
	if rec.ID == uuid.Nil {
		t.Error("Append did not assign an id")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("Append did not stamp createdAt")
	}

	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].ID != rec.ID {
		t.Fatalf("List = %v", list)
	}
}

func TestSlotRepo_ListKeepsInsertionOrder(t *testing.T) {
	repo, err := NewSlotRepo(storage.NewMemStore())
	if err != nil {
		t.Fatal(err)
	}

	names := []string{"first", "second", "third"}
	for _, name := range names {
		rec := newTestRecord(t)
		rec.Name = name
		if err := repo.Append(context.Background(), rec); err != nil {
			t.Fatal(err)
		}
	}

	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	for i, name := range names {
		if list[i].Name != name {
			t.Errorf("list[%d].Name = %q, want %q", i, list[i].Name, name)
		}
	}
}

func TestSlotRepo_FailedWriteLeavesStateUnchanged(t *testing.T) {
	store := storage.NewMemStore()
	repo, err := NewSlotRepo(store)
	if err != nil {
		t.Fatal(err)
	}

	first := newTestRecord(t)
	if err := repo.Append(context.Background(), first); err != nil {
		t.Fatal(err)
	}

	store.FailWrites = true
	second := newTestRecord(t)
	second.Name = "should not persist"
	if err := repo.Append(context.Background(), second); !errors.Is(err, storage.ErrWrite) {
		t.Fatalf("expected storage.ErrWrite, got %v", err)
	}

	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Fatalf("in-memory state mutated after failed write: %d records", len(list))
	}

	// The persisted slot must also still hold only the first record.
	store.FailWrites = false
	reloaded, err := NewSlotRepo(store)
	if err != nil {
		t.Fatal(err)
	}
	persisted, err := reloaded.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(persisted) != 1 || persisted[0].Name != first.Name {
		t.Fatalf("persisted state mutated after failed write: %v", persisted)
	}
}

func TestSlotRepo_FindByID(t *testing.T) {
	repo, err := NewSlotRepo(storage.NewMemStore())
	if err != nil {
		t.Fatal(err)
	}
	rec := newTestRecord(t)
	if err := repo.Append(context.Background(), rec); err != nil {
		t.Fatal(err)
	}

	got, err := repo.FindByID(context.Background(), rec.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != rec.Name {
		t.Errorf("Name = %q", got.Name)
	}

	if _, err := repo.FindByID(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSlotRepo_UpdateDiagnosis(t *testing.T) {
	store := storage.NewMemStore()
	repo, err := NewSlotRepo(store)
	if err != nil {
		t.Fatal(err)
	}
	rec := newTestRecord(t)
	if err := repo.Append(context.Background(), rec); err != nil {
		t.Fatal(err)
	}

	d := Diagnosis{
		PotentialImbalances: "Vata-Pitta Imbalance (वात-पित्त असंतुलन)",
		PossibleDiseases:    "Amlapitta (Acidity/GERD)",
		Reasoning:           "sample",
	}
	updated, err := repo.UpdateDiagnosis(context.Background(), rec.ID, d)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Dosha != d.PotentialImbalances {
		t.Errorf("dosha = %q, want derived from diagnosis", updated.Dosha)
	}
	if updated.Diagnosis == nil || updated.Diagnosis.Reasoning != "sample" {
		t.Errorf("diagnosis not stored: %+v", updated.Diagnosis)
	}

	// Replaying the same update must end in the same state.
	again, err := repo.UpdateDiagnosis(context.Background(), rec.ID, d)
	if err != nil {
		t.Fatal(err)
	}
	if *again.Diagnosis != *updated.Diagnosis || again.Dosha != updated.Dosha {
		t.Error("UpdateDiagnosis is not idempotent")
	}

	if _, err := repo.UpdateDiagnosis(context.Background(), uuid.New(), d); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// Survives a reload from the same store.
	reloaded, err := NewSlotRepo(store)
	if err != nil {
		t.Fatal(err)
	}
	got, err := reloaded.FindByID(context.Background(), rec.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Diagnosis == nil || got.Diagnosis.PotentialImbalances != d.PotentialImbalances {
		t.Errorf("diagnosis not persisted: %+v", got.Diagnosis)
	}
}

func TestSlotRepo_UpdateDiagnosisFailedWriteKeepsOldState(t *testing.T) {
	store := storage.NewMemStore()
	repo, err := NewSlotRepo(store)
	if err != nil {
		t.Fatal(err)
	}
	rec := newTestRecord(t)
	if err := repo.Append(context.Background(), rec); err != nil {
		t.Fatal(err)
	}

	store.FailWrites = true
	d := Diagnosis{PotentialImbalances: "x", PossibleDiseases: "y", Reasoning: "z"}
	if _, err := repo.UpdateDiagnosis(context.Background(), rec.ID, d); !errors.Is(err, storage.ErrWrite) {
		t.Fatalf("expected storage.ErrWrite, got %v", err)
	}

	got, err := repo.FindByID(context.Background(), rec.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Diagnosis != nil || got.Dosha != NoDosha {
		t.Errorf("record mutated after failed write: %+v", got)
	}
}

func TestSlotRepo_ReturnsClones(t *testing.T) {
	repo, err := NewSlotRepo(storage.NewMemStore())
	if err != nil {
		t.Fatal(err)
	}
	rec := newTestRecord(t)
	if err := repo.Append(context.Background(), rec); err != nil {
		t.Fatal(err)
	}

	got, err := repo.FindByID(context.Background(), rec.ID)
	if err != nil {
		t.Fatal(err)
	}
	got.Name = "mutated by caller"

	fresh, err := repo.FindByID(context.Background(), rec.ID)
	if err != nil {
		t.Fatal(err)
	}
	if fresh.Name == "mutated by caller" {
		t.Error("repo leaked internal state to the caller")
	}
}
