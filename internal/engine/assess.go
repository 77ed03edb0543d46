package engine

// Assessment is the complete engine output for one Profile.
type Assessment struct {
	OverallRisk        RiskLevel           `json:"overallRisk"`
	SpecificRisks      []SpecificRisk      `json:"specificRisks"`
	CategorizedMetrics map[string]Category `json:"categorizedMetrics"`
	Recommendations    []Recommendation    `json:"recommendations"`
	Summary            HealthSummary       `json:"summary"`
	Derived            Derived             `json:"derived"`
}

// Assess scores p. It is safe to call concurrently; nothing is shared
// between calls and p is never modified.
func Assess(p Profile) Assessment {
	d := Derive(p)
	return Assessment{
		OverallRisk:        OverallRisk(CompositeScore(p, d)),
		SpecificRisks:      SpecificRisks(p, d),
		CategorizedMetrics: Categorize(p, d),
		Recommendations:    Recommendations(p, d),
		Summary:            Summarize(p, d),
		Derived:            d,
	}
}
