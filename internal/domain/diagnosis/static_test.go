package diagnosis

import (
	"context"
	"strings"
	"testing"
)

func TestStaticSuggester_AlwaysComplete(t *testing.T) {
	s := NewStaticSuggester()

	result, err := s.Suggest(context.Background(), Input{
		PatientDetails: "Name: Asha",
		Symptoms:       "Sleep (निद्रा): Khandit (Disturbed) (खंडित)",
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.PotentialImbalances == "" || result.PossibleDiseases == "" || result.Reasoning == "" {
		t.Errorf("incomplete result: %+v", result)
	}
	if !strings.Contains(result.PotentialImbalances, "Vata-Pitta") {
		t.Errorf("potentialImbalances = %q", result.PotentialImbalances)
	}
}

func TestStaticSuggester_SameAnswerForAnyInput(t *testing.T) {
	s := NewStaticSuggester()

	a, err := s.Suggest(context.Background(), Input{})
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Suggest(context.Background(), Input{PatientDetails: "different"})
	if err != nil {
		t.Fatal(err)
	}
	if *a != *b {
		t.Error("static suggester returned different results")
	}
}

func TestStaticSuggester_RespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewStaticSuggester().Suggest(ctx, Input{}); err == nil {
		t.Error("expected error for cancelled context")
	}
}
