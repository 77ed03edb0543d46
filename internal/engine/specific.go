package engine

import (
	"fmt"
	"math"
)

// Disease names, in the order SpecificRisks reports them.
const (
	DiseaseCardiovascular    = "Cardiovascular Disease"
	DiseaseDiabetes          = "Type 2 Diabetes"
	DiseaseStroke            = "Stroke"
	DiseaseMetabolicSyndrome = "Metabolic Syndrome"
)

// SpecificRisk is one disease-specific estimate.
type SpecificRisk struct {
	Type        string   `json:"type"`
	Level       RiskBand `json:"level"`
	SubScore    int      `json:"subScore"`
	Percentage  float64  `json:"percentage"`
	Description string   `json:"description"`
}

// diseaseModel scales a sub-score into a capped percentage. The band is
// taken from the unscaled sub-score, not from the percentage.
type diseaseModel struct {
	name     string
	scale    float64
	cap      float64
	bands    [3]int // inclusive upper bounds of low, moderate, high
	template string
	score    func(Profile, Derived) int
}

var diseaseModels = []diseaseModel{
	{
		name:     DiseaseCardiovascular,
		scale:    1.2,
		cap:      85,
		bands:    [3]int{30, 60, 90},
		template: "%d%% 10-year risk based on current factors",
		score:    cardiovascularScore,
	},
	{
		name:     DiseaseDiabetes,
		scale:    0.8,
		cap:      75,
		bands:    [3]int{25, 50, 75},
		template: "%d%% 10-year risk based on current factors",
		score:    diabetesScore,
	},
	{
		name:     DiseaseStroke,
		scale:    0.6,
		cap:      60,
		bands:    [3]int{20, 40, 60},
		template: "%d%% 10-year risk based on current factors",
		score:    strokeScore,
	},
	{
		name:     DiseaseMetabolicSyndrome,
		scale:    1.1,
		cap:      80,
		bands:    [3]int{20, 40, 60},
		template: "%d%% current risk based on metabolic factors",
		score:    metabolicSyndromeScore,
	},
}

// SpecificRisks evaluates the four disease models in fixed order.
func SpecificRisks(p Profile, d Derived) []SpecificRisk {
	risks := make([]SpecificRisk, 0, len(diseaseModels))
	for _, m := range diseaseModels {
		risks = append(risks, m.evaluate(p, d))
	}
	return risks
}

func (m diseaseModel) evaluate(p Profile, d Derived) SpecificRisk {
	sub := m.score(p, d)
	pct := math.Min(float64(sub)*m.scale, m.cap)
	return SpecificRisk{
		Type:        m.name,
		Level:       band(sub, m.bands),
		SubScore:    sub,
		Percentage:  pct,
		Description: fmt.Sprintf(m.template, int(math.Round(pct))),
	}
}

func band(score int, bounds [3]int) RiskBand {
	switch {
	case score <= bounds[0]:
		return BandLow
	case score <= bounds[1]:
		return BandModerate
	case score <= bounds[2]:
		return BandHigh
	default:
		return BandVeryHigh
	}
}

func cardiovascularScore(p Profile, d Derived) int {
	score := 0
	switch {
	case p.Age > 65:
		score += 25
	case p.Age > 50:
		score += 15
	case p.Age > 35:
		score += 8
	}
	if p.Gender == GenderMale {
		score += 8
	}
	switch {
	case p.SystolicBP >= SystolicStage2 || p.DiastolicBP >= DiastolicStage2:
		score += 20
	case p.SystolicBP >= SystolicElevated:
		score += 12
	}
	if p.Cholesterol >= CholesterolHigh {
		score += 15
	}
	if lowHDL(p) {
		score += 10
	}
	if p.LDLCholesterol >= LDLHigh {
		score += 12
	}
	switch p.SmokingStatus {
	case SmokingCurrent:
		score += 20
	case SmokingFormer:
		score += 8
	}
	switch {
	case d.BMI >= BMIObese:
		score += 15
	case d.BMI >= BMIOverweight:
		score += 8
	}
	if p.HeartDiseaseFamily {
		score += 12
	}
	if p.ExerciseFrequency == ExerciseNone {
		score += 10
	}
	if p.StressLevel == StressVeryHigh {
		score += 8
	}
	return score
}

func diabetesScore(p Profile, d Derived) int {
	score := 0
	switch {
	case p.Age > 65:
		score += 20
	case p.Age > 45:
		score += 12
	}
	switch {
	case d.BMI >= BMIObese:
		score += 25
	case d.BMI >= BMIOverweight:
		score += 15
	}
	switch {
	case p.Glucose >= GlucoseDiabetes:
		score += 40
	case p.Glucose >= GlucosePrediabetes:
		score += 20
	}
	switch {
	case p.HbA1c >= HbA1cDiabetes:
		score += 40
	case p.HbA1c >= HbA1cPrediabetes:
		score += 20
	}
	if p.DiabetesFamily {
		score += 15
	}
	if d.WaistToHeightRatio > WaistToHeightRisk {
		score += 10
	}
	if p.ExerciseFrequency == ExerciseNone {
		score += 8
	}
	return score
}

func strokeScore(p Profile, _ Derived) int {
	score := 0
	switch {
	case p.Age > 75:
		score += 25
	case p.Age > 65:
		score += 18
	case p.Age > 55:
		score += 10
	}
	switch {
	case p.SystolicBP >= SystolicCrisis:
		score += 25
	case p.SystolicBP >= SystolicStage2:
		score += 15
	}
	if p.SmokingStatus == SmokingCurrent {
		score += 20
	}
	if p.HeartDiseaseFamily || p.StrokeFamily {
		score += 12
	}
	if p.DiabetesFamily && p.Glucose >= GlucosePrediabetes {
		score += 10
	}
	return score
}

func metabolicSyndromeScore(p Profile, d Derived) int {
	score := 0
	if d.WaistToHeightRatio > WaistToHeightRisk {
		score += 20
	}
	if p.Triglycerides >= TriglyceridesBorderline {
		score += 15
	}
	if lowHDL(p) {
		score += 15
	}
	// 85 mmHg diastolic is the metabolic syndrome criterion, not a BP band.
	if p.SystolicBP >= SystolicElevated || p.DiastolicBP >= 85 {
		score += 15
	}
	if p.Glucose >= GlucosePrediabetes {
		score += 15
	}
	return score
}
