package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeSingleValueBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(float64) Category
		value float64
		want  string
	}{
		{"bmi underweight", CategorizeBMI, 18.4, "Underweight"},
		{"bmi normal floor", CategorizeBMI, 18.5, "Normal"},
		{"bmi normal ceiling", CategorizeBMI, 24.9, "Normal"},
		{"bmi overweight", CategorizeBMI, 25, "Overweight"},
		{"bmi obese", CategorizeBMI, 30, "Obese"},

		{"waist ratio at threshold", CategorizeWaistToHeight, 0.5, "Normal"},
		{"waist ratio above threshold", CategorizeWaistToHeight, 0.51, "High Risk"},

		{"glucose 99", CategorizeGlucose, 99, "Normal"},
		{"glucose 100", CategorizeGlucose, 100, "Pre-diabetes"},
		{"glucose 125", CategorizeGlucose, 125, "Pre-diabetes"},
		{"glucose 126", CategorizeGlucose, 126, "Diabetes"},

		{"hba1c 5.6", CategorizeHbA1c, 5.6, "Normal"},
		{"hba1c 5.7", CategorizeHbA1c, 5.7, "Pre-diabetes"},
		{"hba1c 6.4", CategorizeHbA1c, 6.4, "Pre-diabetes"},
		{"hba1c 6.5", CategorizeHbA1c, 6.5, "Diabetes"},

		{"cholesterol 199", CategorizeCholesterol, 199, "Desirable"},
		{"cholesterol 200", CategorizeCholesterol, 200, "Borderline High"},
		{"cholesterol 240", CategorizeCholesterol, 240, "High"},

		{"ldl 99", CategorizeLDL, 99, "Optimal"},
		{"ldl 100", CategorizeLDL, 100, "Near Optimal"},
		{"ldl 130", CategorizeLDL, 130, "Borderline High"},
		{"ldl 160", CategorizeLDL, 160, "High"},

		{"triglycerides 149", CategorizeTriglycerides, 149, "Normal"},
		{"triglycerides 150", CategorizeTriglycerides, 150, "Borderline High"},
		{"triglycerides 200", CategorizeTriglycerides, 200, "High"},
		{"triglycerides 499", CategorizeTriglycerides, 499, "High"},
		{"triglycerides 500", CategorizeTriglycerides, 500, "Very High"},

		{"heart rate 59", CategorizeHeartRate, 59, "Low (Athletic)"},
		{"heart rate 60", CategorizeHeartRate, 60, "Normal"},
		{"heart rate 100", CategorizeHeartRate, 100, "Normal"},
		{"heart rate 101", CategorizeHeartRate, 101, "High"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.value).Label)
		})
	}
}

func TestCategorizeBloodPressure(t *testing.T) {
	tests := []struct {
		systolic, diastolic float64
		want                string
	}{
		{119, 79, "Normal"},
		{120, 79, "Elevated"},
		{129, 79, "Elevated"},
		{125, 80, "High (Stage 1)"},
		{139, 95, "High (Stage 1)"},
		// Systolic past 140 stays Stage 1 while diastolic is under 90.
		{145, 85, "High (Stage 1)"},
		{180, 89, "High (Stage 1)"},
		{140, 90, "High (Stage 2)"},
	}

	for _, tt := range tests {
		got := CategorizeBloodPressure(tt.systolic, tt.diastolic)
		assert.Equal(t, tt.want, got.Label, "bp %v/%v", tt.systolic, tt.diastolic)
	}
}

func TestCategorizeHDLDependsOnGender(t *testing.T) {
	assert.Equal(t, "Normal", CategorizeHDL(40, GenderMale).Label)
	assert.Equal(t, "Low (Risk Factor)", CategorizeHDL(39, GenderMale).Label)
	assert.Equal(t, "Low (Risk Factor)", CategorizeHDL(45, GenderFemale).Label)
	assert.Equal(t, "Normal", CategorizeHDL(50, GenderFemale).Label)
	assert.Equal(t, "High (Protective)", CategorizeHDL(60, GenderFemale).Label)
	assert.Equal(t, SeverityDanger, CategorizeHDL(39, GenderMale).Severity)
}

func TestCategorizeCoversEveryMetric(t *testing.T) {
	p := highRiskProfile()
	got := Categorize(p, Derive(p))

	assert.Len(t, got, 10)
	assert.Equal(t, "Obese", got[MetricBMI].Label)
	assert.Equal(t, "High Risk", got[MetricWaistToHeight].Label)
	assert.Equal(t, "High (Stage 2)", got[MetricBloodPressure].Label)
	assert.Equal(t, "Diabetes", got[MetricGlucose].Label)
	assert.Equal(t, "Diabetes", got[MetricHbA1c].Label)
	assert.Equal(t, "High", got[MetricCholesterol].Label)
	assert.Equal(t, "Low (Risk Factor)", got[MetricHDL].Label)
	assert.Equal(t, "High", got[MetricLDL].Label)
	assert.Equal(t, "High", got[MetricTriglycerides].Label)
	assert.Equal(t, "Normal", got[MetricHeartRate].Label)
}
