package patient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ayurnidaan/ayurnidaan/internal/domain/diagnosis"
)

// diagnoseTimeout bounds one collaborator call. The caller re-submits on
// timeout; there is no automatic retry.
const diagnoseTimeout = 30 * time.Second

// Service ties the record store to the diagnosis collaborator.
type Service struct {
	repo      Repository
	suggester diagnosis.Suggester
	log       zerolog.Logger
}

func NewService(repo Repository, suggester diagnosis.Suggester, log zerolog.Logger) *Service {
	return &Service{repo: repo, suggester: suggester, log: log}
}

// Save validates the draft and appends the resulting record. When a
// diagnosis result is supplied (the save-after-diagnose path) it is stored
// with the record and the dosha summary is derived from it.
func (s *Service) Save(ctx context.Context, d *Draft, diag *diagnosis.Result) (*PatientRecord, error) {
	rec, err := d.ToRecord()
	if err != nil {
		return nil, err
	}
	if diag != nil {
		rec.setDiagnosis(&Diagnosis{
			PotentialImbalances: diag.PotentialImbalances,
			PossibleDiseases:    diag.PossibleDiseases,
			Reasoning:           diag.Reasoning,
		})
	}
	if err := s.repo.Append(ctx, rec); err != nil {
		return nil, fmt.Errorf("append patient record: %w", err)
	}
	s.log.Info().Str("patient_id", rec.ID.String()).Msg("patient record saved")
	return rec, nil
}

// List returns all records in insertion order, optionally filtered by a
// case-insensitive name substring or an id prefix.
func (s *Service) List(ctx context.Context, search string) ([]*PatientRecord, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	search = strings.TrimSpace(search)
	if search == "" {
		return records, nil
	}
	needle := strings.ToLower(search)
	out := make([]*PatientRecord, 0, len(records))
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Name), needle) ||
			strings.HasPrefix(rec.ID.String(), needle) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Get fetches one record by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*PatientRecord, error) {
	return s.repo.FindByID(ctx, id)
}

// Diagnose runs the collaborator for a stored record and persists the
// result. The record itself is the source of both prompt lines.
func (s *Service) Diagnose(ctx context.Context, id uuid.UUID) (*PatientRecord, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := s.suggest(ctx, rec)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateDiagnosis(ctx, id, Diagnosis{
		PotentialImbalances: result.PotentialImbalances,
		PossibleDiseases:    result.PossibleDiseases,
		Reasoning:           result.Reasoning,
	})
	if err != nil {
		return nil, fmt.Errorf("store diagnosis: %w", err)
	}
	s.log.Info().Str("patient_id", id.String()).Msg("diagnosis stored")
	return updated, nil
}

// DiagnoseDraft runs the collaborator for an unsaved draft. Nothing is
// persisted; the caller decides whether to save afterwards.
func (s *Service) DiagnoseDraft(ctx context.Context, d *Draft) (*diagnosis.Result, error) {
	rec, err := d.ToRecord()
	if err != nil {
		return nil, err
	}
	return s.suggest(ctx, rec)
}

func (s *Service) suggest(ctx context.Context, rec *PatientRecord) (*diagnosis.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, diagnoseTimeout)
	defer cancel()

	result, err := s.suggester.Suggest(ctx, DiagnosisInput(rec))
	if err != nil {
		return nil, fmt.Errorf("suggest diagnosis: %w", err)
	}
	if result == nil {
		return nil, diagnosis.ErrEmptyResponse
	}
	return result, nil
}

// Stats counts records and diagnoses for the profile page.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := &Stats{Total: len(records), ByDosha: make(map[string]int)}
	for _, rec := range records {
		if rec.Diagnosis.Complete() {
			stats.Diagnosed++
		}
		stats.ByDosha[rec.Dosha]++
	}
	return stats, nil
}

// DiagnosisInput renders a record into the two prompt lines the
// collaborator expects.
func DiagnosisInput(rec *PatientRecord) diagnosis.Input {
	return diagnosis.Input{
		PatientDetails: fmt.Sprintf(
			"Name: %s, Age: %s, Gender: %s, Weight: %s, Height: %s, Diet: %s, Visit Date: %s, Location: %s",
			rec.Name, rec.Age, rec.Gender, rec.Weight, rec.Height, rec.Diet, rec.VisitDate, rec.Location),
		Symptoms: fmt.Sprintf(
			"Stool (मल): %s, Urine (मूत्र): %s, Appetite (क्षुधा): %s, Thirst (तृष्णा): %s, Sleep (निद्रा): %s, Tongue (जिह्वा): %s, Mental State (मनो स्वभाव): %s, Other Complaints: %s, Arsh (अर्श): %s, Ashmari (अश्मरी): %s, Kushtha (कुष्ठ): %s, Prameha (प्रमेह): %s, Grahani (ग्रहणी): %s, Shotha (शोथ): %s",
			rec.Mal, rec.Mutra, rec.Kshudha, rec.Trishna, rec.Nidra, rec.Jivha,
			rec.ManoSwabhav, rec.OtherComplaints,
			rec.Arsh, rec.Ashmari, rec.Kushtha, rec.Prameha, rec.Grahani, rec.Shotha),
	}
}
