package engine

import "fmt"

type Priority string

const (
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Recommendation is one piece of actionable advice.
type Recommendation struct {
	Category string   `json:"category"`
	Priority Priority `json:"priority"`
	Text     string   `json:"text"`
}

type recommendationRule struct {
	category string
	priority Priority
	applies  func(Profile, Derived) bool
	text     func(Profile, Derived) string
}

func fixedText(s string) func(Profile, Derived) string {
	return func(Profile, Derived) string { return s }
}

// recommendationRules is evaluated top to bottom. Output keeps this order;
// it is not re-sorted by priority.
var recommendationRules = []recommendationRule{
	{
		category: "Weight Management",
		priority: PriorityHigh,
		applies:  func(_ Profile, d Derived) bool { return d.BMI >= BMIOverweight },
		text: func(_ Profile, d Derived) string {
			return fmt.Sprintf("Your BMI is %.1f. Aim to lose 5-10%% of body weight through diet and exercise.", d.BMI)
		},
	},
	{
		category: "Blood Pressure",
		priority: PriorityHigh,
		applies: func(p Profile, _ Derived) bool {
			return p.SystolicBP >= SystolicElevated || p.DiastolicBP >= DiastolicNormal
		},
		text: fixedText("Monitor blood pressure daily, reduce sodium intake, and consider DASH diet principles."),
	},
	{
		category: "Blood Sugar",
		priority: PriorityHigh,
		applies: func(p Profile, _ Derived) bool {
			return p.Glucose >= GlucosePrediabetes || p.HbA1c >= HbA1cPrediabetes
		},
		text: fixedText("Focus on low glycemic index foods, regular meal timing, and post-meal walks."),
	},
	{
		category: "Physical Activity",
		priority: PriorityHigh,
		applies: func(p Profile, _ Derived) bool {
			return p.ExerciseFrequency == ExerciseNone || p.ExerciseFrequency == ExerciseLow
		},
		text: fixedText("Aim for 150 minutes of moderate exercise weekly. Start with 10-minute walks after meals."),
	},
	{
		category: "Smoking Cessation",
		priority: PriorityCritical,
		applies:  func(p Profile, _ Derived) bool { return p.SmokingStatus == SmokingCurrent },
		text:     fixedText("Quitting smoking is the single most important step for your health. Consider nicotine replacement therapy."),
	},
	{
		category: "Sleep Quality",
		priority: PriorityMedium,
		applies: func(p Profile, _ Derived) bool {
			return p.SleepHours < 7 || p.SleepQuality == QualityPoor
		},
		text: fixedText("Aim for 7-9 hours of quality sleep. Maintain consistent sleep schedule and create a relaxing bedtime routine."),
	},
	{
		category: "Stress Management",
		priority: PriorityMedium,
		applies: func(p Profile, _ Derived) bool {
			return p.StressLevel == StressHigh || p.StressLevel == StressVeryHigh
		},
		text: fixedText("Practice stress reduction techniques like meditation, deep breathing, or yoga for 10-15 minutes daily."),
	},
	{
		category: "Nutrition",
		priority: PriorityMedium,
		applies: func(p Profile, _ Derived) bool {
			return p.DietQuality == QualityPoor || p.DietQuality == QualityFair
		},
		text: fixedText("Focus on whole foods: fruits, vegetables, lean proteins, and whole grains. Limit processed foods."),
	},
	{
		category: "Medical Care",
		priority: PriorityMedium,
		applies: func(p Profile, _ Derived) bool {
			return p.LastCheckup == Checkup1To2Years || p.LastCheckup == CheckupOver2Years
		},
		text: fixedText("Schedule regular checkups and screenings appropriate for your age and risk factors."),
	},
}

// Recommendations returns at most one recommendation per rule, in rule
// order.
func Recommendations(p Profile, d Derived) []Recommendation {
	recs := []Recommendation{}
	for _, r := range recommendationRules {
		if !r.applies(p, d) {
			continue
		}
		recs = append(recs, Recommendation{
			Category: r.category,
			Priority: r.priority,
			Text:     r.text(p, d),
		})
	}
	return recs
}
