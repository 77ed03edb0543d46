package engine

import "strings"

// RiskBand is one of four ordinal risk levels.
type RiskBand string

const (
	BandLow      RiskBand = "low"
	BandModerate RiskBand = "moderate"
	BandHigh     RiskBand = "high"
	BandVeryHigh RiskBand = "very-high"
)

// Title renders the band for headings, e.g. "VERY HIGH".
func (b RiskBand) Title() string {
	return strings.ToUpper(strings.Replace(string(b), "-", " ", 1))
}

// Legend returns the score range label of an overall band.
func (b RiskBand) Legend() string {
	switch b {
	case BandLow:
		return "Low (0-60)"
	case BandModerate:
		return "Moderate (61-120)"
	case BandHigh:
		return "High (121-180)"
	default:
		return "Very High (181+)"
	}
}

// RiskLevel is the overall composite result.
type RiskLevel struct {
	Level       RiskBand `json:"level"`
	Score       int      `json:"score"`
	Description string   `json:"description"`
}

// ScaleFraction is the score as a fraction of the nominal 300-point range,
// capped at 1.
func (r RiskLevel) ScaleFraction() float64 {
	f := float64(r.Score) / OverallScale
	if f > 1 {
		return 1
	}
	return f
}

// OverallRisk maps a composite score to its band. Upper bounds are
// inclusive: 60 is low, 61 is moderate.
func OverallRisk(score int) RiskLevel {
	switch {
	case score <= OverallLowMax:
		return RiskLevel{BandLow, score, "Low risk - Excellent health profile!"}
	case score <= OverallModerateMax:
		return RiskLevel{BandModerate, score, "Moderate risk - Some areas for improvement"}
	case score <= OverallHighMax:
		return RiskLevel{BandHigh, score, "High risk - Important to address key factors"}
	default:
		return RiskLevel{BandVeryHigh, score, "Very high risk - Immediate attention recommended"}
	}
}

// CompositeScore sums the weighted contribution of every risk dimension.
// The result has no upper clamp and can go below zero only through the
// exercise, diet and mental health deductions.
func CompositeScore(p Profile, d Derived) int {
	score := 0

	switch {
	case p.Age > 75:
		score += 35
	case p.Age > 65:
		score += 28
	case p.Age > 55:
		score += 20
	case p.Age > 45:
		score += 12
	case p.Age > 35:
		score += 6
	}

	if p.Gender == GenderMale {
		score += 10
	}

	// body composition
	switch {
	case d.BMI >= BMISevere:
		score += 30
	case d.BMI >= BMIObese:
		score += 22
	case d.BMI >= BMIOverweight:
		score += 12
	}
	switch {
	case d.WaistToHeightRatio > WaistToHeightSevere:
		score += 8
	case d.WaistToHeightRatio > WaistToHeightRisk:
		score += 4
	}

	// cardiovascular
	switch {
	case p.SystolicBP >= SystolicCrisis || p.DiastolicBP >= DiastolicCrisis:
		score += 25
	case p.SystolicBP >= SystolicStage2 || p.DiastolicBP >= DiastolicStage2:
		score += 18
	case p.SystolicBP >= SystolicElevated || p.DiastolicBP >= DiastolicNormal:
		score += 10
	}
	switch {
	case p.RestingHeartRate > HeartRateHigh:
		score += 8
	case p.RestingHeartRate > HeartRateElevated:
		score += 4
	}

	// metabolic
	switch {
	case p.Glucose >= GlucoseDiabetes:
		score += 25
	case p.Glucose >= GlucosePrediabetes:
		score += 12
	}
	switch {
	case p.HbA1c >= HbA1cDiabetes:
		score += 20
	case p.HbA1c >= HbA1cPrediabetes:
		score += 10
	}

	// lipids
	switch {
	case p.Cholesterol >= CholesterolHigh:
		score += 15
	case p.Cholesterol >= CholesterolBorderline:
		score += 8
	}
	if lowHDL(p) {
		score += 10
	}
	switch {
	case p.LDLCholesterol >= LDLHigh:
		score += 12
	case p.LDLCholesterol >= LDLBorderline:
		score += 6
	}
	switch {
	case p.Triglycerides >= TriglyceridesHigh:
		score += 8
	case p.Triglycerides >= TriglyceridesBorderline:
		score += 4
	}

	// lifestyle
	switch p.SmokingStatus {
	case SmokingCurrent:
		score += 25
		if p.CigarettesPerDay > 20 {
			score += 10
		}
		if p.SmokingYears > 20 {
			score += 8
		}
	case SmokingFormer:
		score += 8
	}

	switch {
	case p.ExerciseFrequency == ExerciseNone:
		score += 15
	case p.ExerciseFrequency == ExerciseLow:
		score += 8
	case p.ExerciseFrequency == ExerciseHigh && p.ExerciseIntensity == IntensityVigorous:
		score -= 5
	}

	switch p.AlcoholConsumption {
	case AlcoholHeavy:
		score += 12
	case AlcoholModerate:
		score += 4
	}

	// sleep and stress
	if p.SleepHours < 6 || p.SleepHours > 9 {
		score += 6
	}
	switch p.SleepQuality {
	case QualityPoor:
		score += 8
	case QualityFair:
		score += 4
	}
	switch p.StressLevel {
	case StressVeryHigh:
		score += 12
	case StressHigh:
		score += 8
	case StressModerate:
		score += 3
	}

	// diet and hydration
	switch p.DietQuality {
	case QualityPoor:
		score += 12
	case QualityFair:
		score += 6
	case QualityExcellent:
		score -= 3
	}
	if p.WaterIntake < 6 {
		score += 3
	}

	if p.HeartDiseaseFamily {
		score += 12
	}
	if p.DiabetesFamily {
		score += 10
	}
	if p.StrokeFamily {
		score += 8
	}
	if p.CancerFamily {
		score += 5
	}

	switch p.MentalHealthStatus {
	case QualityPoor:
		score += 15
	case QualityFair:
		score += 8
	case QualityExcellent:
		score -= 3
	}

	switch p.LastCheckup {
	case CheckupOver2Years:
		score += 10
	case Checkup1To2Years:
		score += 5
	}

	score += 8 * len(p.ChronicConditions)
	score += 3 * len(p.Medications)

	return score
}
