package diagnosis

import "context"

// StaticSuggester answers every request with the same sample diagnosis.
// It is the default when no model API key is configured, so the rest of
// the system can be exercised without external calls.
type StaticSuggester struct{}

func NewStaticSuggester() *StaticSuggester { return &StaticSuggester{} }

func (s *StaticSuggester) Suggest(ctx context.Context, in Input) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Result{
		PotentialImbalances: "Vata-Pitta Imbalance (वात-पित्त असंतुलन)",
		PossibleDiseases:    "Amlapitta (Acidity/GERD), Grahani (IBS/Malabsorption)",
		Reasoning:           "This is a static sample diagnosis. The combination of symptoms like irregular appetite (Kshudha), disturbed sleep (Nidra), and a coated tongue (Saam Jivha) points towards a dual Dosha imbalance. To get a live AI-powered diagnosis, please ensure your Google Cloud project has billing enabled and a valid API key is configured in your .env file.",
	}, nil
}
