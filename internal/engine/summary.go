package engine

// HealthSummary is the closing overview of an assessment.
type HealthSummary struct {
	Strengths        []string `json:"strengths"`
	AreasToMonitor   []string `json:"areasToMonitor"`
	ImmediateActions []string `json:"immediateActions"`
}

var immediateActions = []string{
	"Schedule doctor visit",
	"Start health tracking",
	"Set realistic goals",
	"Build support system",
	"Regular monitoring",
}

// Summarize lists strengths and areas to monitor.
//
// The sleep, diet and stress entries use the predicate "A || (B && show)":
// when A holds nothing is listed, so "Good sleep quality" and "Healthy
// diet" appear only for a rating of exactly good, and "Stress management"
// only for very-high stress.
func Summarize(p Profile, d Derived) HealthSummary {
	s := HealthSummary{
		Strengths:        []string{},
		AreasToMonitor:   []string{},
		ImmediateActions: append([]string(nil), immediateActions...),
	}

	if p.SmokingStatus == SmokingNever {
		s.Strengths = append(s.Strengths, "Non-smoker")
	}
	if p.ExerciseFrequency == ExerciseHigh {
		s.Strengths = append(s.Strengths, "Regular exercise")
	}
	if p.SleepQuality != QualityExcellent && p.SleepQuality == QualityGood {
		s.Strengths = append(s.Strengths, "Good sleep quality")
	}
	if p.DietQuality != QualityExcellent && p.DietQuality == QualityGood {
		s.Strengths = append(s.Strengths, "Healthy diet")
	}
	if p.StressLevel == StressLow {
		s.Strengths = append(s.Strengths, "Low stress levels")
	}

	if d.BMI >= BMIOverweight {
		s.AreasToMonitor = append(s.AreasToMonitor, "Weight management")
	}
	if p.SystolicBP >= SystolicElevated {
		s.AreasToMonitor = append(s.AreasToMonitor, "Blood pressure")
	}
	if p.Glucose >= GlucosePrediabetes {
		s.AreasToMonitor = append(s.AreasToMonitor, "Blood sugar levels")
	}
	if p.Cholesterol >= CholesterolBorderline {
		s.AreasToMonitor = append(s.AreasToMonitor, "Cholesterol levels")
	}
	if p.StressLevel != StressHigh && p.StressLevel == StressVeryHigh {
		s.AreasToMonitor = append(s.AreasToMonitor, "Stress management")
	}

	return s
}
