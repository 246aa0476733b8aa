package patient

import (
	"time"

	"github.com/google/uuid"
)

// Diagnosis is the three-field result produced by the diagnosis
// collaborator. A record either carries all three fields or none.
type Diagnosis struct {
	PotentialImbalances string `db:"potential_imbalances" json:"potentialImbalances"`
	PossibleDiseases    string `db:"possible_diseases" json:"possibleDiseases"`
	Reasoning           string `db:"reasoning" json:"reasoning"`
}

// Complete reports whether every field of the diagnosis is populated.
func (d *Diagnosis) Complete() bool {
	return d != nil && d.PotentialImbalances != "" && d.PossibleDiseases != "" && d.Reasoning != ""
}

// PatientRecord is one saved intake. Numeric-looking demographics stay as
// free text, matching the intake form. The id is assigned on append and
// never changes; records are never deleted.
type PatientRecord struct {
	ID uuid.UUID `db:"id" json:"id"`

	Name      string `db:"name" json:"name"`
	Age       string `db:"age" json:"age"`
	Gender    string `db:"gender" json:"gender"`
	Weight    string `db:"weight" json:"weight"`
	Height    string `db:"height" json:"height"`
	Diet      string `db:"diet" json:"diet"`
	VisitDate string `db:"visit_date" json:"visitDate"` // YYYY-MM-DD
	Location  string `db:"location" json:"location"`

	Mal             string `db:"mal" json:"mal"`
	Mutra           string `db:"mutra" json:"mutra"`
	Kshudha         string `db:"kshudha" json:"kshudha"`
	Trishna         string `db:"trishna" json:"trishna"`
	Nidra           string `db:"nidra" json:"nidra"`
	Jivha           string `db:"jivha" json:"jivha"`
	ManoSwabhav     string `db:"mano_swabhav" json:"manoSwabhav"`
	OtherComplaints string `db:"other_complaints" json:"otherComplaints,omitempty"`
	Arsh            string `db:"arsh" json:"arsh"`
	Ashmari         string `db:"ashmari" json:"ashmari"`
	Kushtha         string `db:"kushtha" json:"kushtha"`
	Prameha         string `db:"prameha" json:"prameha"`
	Grahani         string `db:"grahani" json:"grahani"`
	Shotha          string `db:"shotha" json:"shotha"`

	// Dosha is the list-view summary, always derived from the diagnosis
	// ("N/A" while no diagnosis exists).
	Dosha     string     `db:"dosha" json:"dosha"`
	LastVisit string     `db:"last_visit" json:"lastVisit"`
	Diagnosis *Diagnosis `json:"diagnosis,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// NoDosha is the summary shown for records without a diagnosis.
const NoDosha = "N/A"

// setDiagnosis replaces the record's diagnosis and rederives the summary
// fields that depend on it.
func (r *PatientRecord) setDiagnosis(d *Diagnosis) {
	if d == nil {
		r.Diagnosis = nil
		r.Dosha = NoDosha
		return
	}
	cp := *d
	r.Diagnosis = &cp
	r.Dosha = cp.PotentialImbalances
}

// Clone returns a deep copy so store callers can't alias internal state.
func (r *PatientRecord) Clone() *PatientRecord {
	cp := *r
	if r.Diagnosis != nil {
		d := *r.Diagnosis
		cp.Diagnosis = &d
	}
	return &cp
}

// Stats summarizes the store for the profile page.
type Stats struct {
	Total     int            `json:"total"`
	Diagnosed int            `json:"diagnosed"`
	ByDosha   map[string]int `json:"byDosha"`
}
