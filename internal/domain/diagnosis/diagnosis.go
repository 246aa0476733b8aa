// Package diagnosis produces Ayurvedic diagnosis suggestions from a
// patient's details and symptom record.
package diagnosis

import (
	"context"
	"errors"
)

// Input is the two-string payload every suggester receives: a formatted
// patient-details line and a formatted symptom line.
type Input struct {
	PatientDetails string `json:"patientDetails"`
	Symptoms       string `json:"symptoms"`
}

// Result is the three-part suggestion. All fields are always populated by
// a successful suggester call.
type Result struct {
	PotentialImbalances string `json:"potentialImbalances"`
	PossibleDiseases    string `json:"possibleDiseases"`
	Reasoning           string `json:"reasoning"`
}

// ErrEmptyResponse is returned when the model produced no usable output.
var ErrEmptyResponse = errors.New("diagnosis: empty model response")

// Suggester analyzes patient data and suggests potential Dosha imbalances
// and possible diseases.
type Suggester interface {
	Suggest(ctx context.Context, in Input) (*Result, error)
}
