package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgRepo struct{ pool *pgxpool.Pool }

// NewPGRepo returns a Repository backed by PostgreSQL. Insertion order is
// preserved via the position sequence.
func NewPGRepo(pool *pgxpool.Pool) Repository {
	return &pgRepo{pool: pool}
}

const recordCols = `id, name, age, gender, weight, height, diet, visit_date, location,
	mal, mutra, kshudha, trishna, nidra, jivha, mano_swabhav, other_complaints,
	arsh, ashmari, kushtha, prameha, grahani, shotha,
	dosha, last_visit, potential_imbalances, possible_diseases, reasoning, created_at`

func scanRecord(row pgx.Row) (*PatientRecord, error) {
	var rec PatientRecord
	var imbalances, diseases, reasoning *string
	err := row.Scan(&rec.ID, &rec.Name, &rec.Age, &rec.Gender, &rec.Weight, &rec.Height,
		&rec.Diet, &rec.VisitDate, &rec.Location,
		&rec.Mal, &rec.Mutra, &rec.Kshudha, &rec.Trishna, &rec.Nidra, &rec.Jivha,
		&rec.ManoSwabhav, &rec.OtherComplaints,
		&rec.Arsh, &rec.Ashmari, &rec.Kushtha, &rec.Prameha, &rec.Grahani, &rec.Shotha,
		&rec.Dosha, &rec.LastVisit, &imbalances, &diseases, &reasoning, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	if imbalances != nil && diseases != nil && reasoning != nil {
		rec.Diagnosis = &Diagnosis{
			PotentialImbalances: *imbalances,
			PossibleDiseases:    *diseases,
			Reasoning:           *reasoning,
		}
	}
	return &rec, nil
}

func (r *pgRepo) List(ctx context.Context) ([]*PatientRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+recordCols+` FROM patients ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*PatientRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *pgRepo) Append(ctx context.Context, rec *PatientRecord) error {
	rec.ID = uuid.New()
	if rec.Dosha == "" {
		rec.Dosha = NoDosha
	}
	var imbalances, diseases, reasoning *string
	if rec.Diagnosis.Complete() {
		imbalances = &rec.Diagnosis.PotentialImbalances
		diseases = &rec.Diagnosis.PossibleDiseases
		reasoning = &rec.Diagnosis.Reasoning
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO patients (id, name, age, gender, weight, height, diet, visit_date, location,
			mal, mutra, kshudha, trishna, nidra, jivha, mano_swabhav, other_complaints,
			arsh, ashmari, kushtha, prameha, grahani, shotha,
			dosha, last_visit, potential_imbalances, possible_diseases, reasoning)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,
			$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28)
		RETURNING created_at`,
		rec.ID, rec.Name, rec.Age, rec.Gender, rec.Weight, rec.Height, rec.Diet,
		rec.VisitDate, rec.Location,
		rec.Mal, rec.Mutra, rec.Kshudha, rec.Trishna, rec.Nidra, rec.Jivha,
		rec.ManoSwabhav, rec.OtherComplaints,
		rec.Arsh, rec.Ashmari, rec.Kushtha, rec.Prameha, rec.Grahani, rec.Shotha,
		rec.Dosha, rec.LastVisit, imbalances, diseases, reasoning,
	).Scan(&rec.CreatedAt)
}

func (r *pgRepo) FindByID(ctx context.Context, id uuid.UUID) (*PatientRecord, error) {
	rec, err := scanRecord(r.pool.QueryRow(ctx,
		`SELECT `+recordCols+` FROM patients WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rec, err
}

func (r *pgRepo) UpdateDiagnosis(ctx context.Context, id uuid.UUID, d Diagnosis) (*PatientRecord, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE patients
		SET potential_imbalances = $2, possible_diseases = $3, reasoning = $4, dosha = $2
		WHERE id = $1`,
		id, d.PotentialImbalances, d.PossibleDiseases, d.Reasoning)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}
