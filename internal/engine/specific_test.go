package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecificRisks_FixedOrder(t *testing.T) {
	p := baselineProfile()
	risks := SpecificRisks(p, Derive(p))

	require.Len(t, risks, 4)
	assert.Equal(t, DiseaseCardiovascular, risks[0].Type)
	assert.Equal(t, DiseaseDiabetes, risks[1].Type)
	assert.Equal(t, DiseaseStroke, risks[2].Type)
	assert.Equal(t, DiseaseMetabolicSyndrome, risks[3].Type)
	for _, r := range risks {
		assert.Equal(t, 0, r.SubScore)
		assert.Equal(t, BandLow, r.Level)
		assert.Zero(t, r.Percentage)
	}
}

func TestSpecificRisks_HighRiskProfile(t *testing.T) {
	risks := Assess(highRiskProfile()).SpecificRisks
	require.Len(t, risks, 4)

	cvd := risks[0]
	assert.Equal(t, 147, cvd.SubScore)
	assert.Equal(t, BandVeryHigh, cvd.Level)
	assert.Equal(t, 85.0, cvd.Percentage)
	assert.Equal(t, "85% 10-year risk based on current factors", cvd.Description)

	diabetes := risks[1]
	assert.Equal(t, 143, diabetes.SubScore)
	assert.Equal(t, BandVeryHigh, diabetes.Level)
	assert.Equal(t, 75.0, diabetes.Percentage)

	stroke := risks[2]
	assert.Equal(t, 75, stroke.SubScore)
	assert.Equal(t, BandVeryHigh, stroke.Level)
	assert.InDelta(t, 45.0, stroke.Percentage, 1e-9)

	metabolic := risks[3]
	assert.Equal(t, 80, metabolic.SubScore)
	assert.Equal(t, BandVeryHigh, metabolic.Level)
	assert.Equal(t, 80.0, metabolic.Percentage)
	assert.Equal(t, "80% current risk based on metabolic factors", metabolic.Description)
}

func TestSpecificRisks_NeverExceedCaps(t *testing.T) {
	p := highRiskProfile()
	p.Age = 110
	p.SystolicBP = 250
	p.DiastolicBP = 150
	p.Glucose = 400
	p.HbA1c = 15
	p.Weight = 300
	p.WaistCircumference = 200
	p.DiabetesFamily = true
	p.StrokeFamily = true
	p.StressLevel = StressVeryHigh

	caps := map[string]float64{
		DiseaseCardiovascular:    85,
		DiseaseDiabetes:          75,
		DiseaseStroke:            60,
		DiseaseMetabolicSyndrome: 80,
	}
	for _, r := range Assess(p).SpecificRisks {
		assert.LessOrEqual(t, r.Percentage, caps[r.Type], r.Type)
	}
}

func TestSpecificRisks_LevelUsesUnscaledSubScore(t *testing.T) {
	p := baselineProfile()
	p.Age = 70                  // +18
	p.SystolicBP = 145          // +15
	p.HeartDiseaseFamily = true // +12

	stroke := SpecificRisks(p, Derive(p))[2]
	assert.Equal(t, 45, stroke.SubScore)
	assert.InDelta(t, 27.0, stroke.Percentage, 1e-9)
	// 27% would read as moderate; the band follows the sub-score of 45.
	assert.Equal(t, BandHigh, stroke.Level)
	assert.Equal(t, "27% 10-year risk based on current factors", stroke.Description)
}

func TestSpecificRisks_Contributions(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Profile)
		disease int
		want    int
	}{
		{"cvd age over 50", func(p *Profile) { p.Age = 51 }, 0, 15},
		{"cvd elevated systolic only", func(p *Profile) { p.SystolicBP = 130 }, 0, 12},
		{"cvd diastolic 90", func(p *Profile) { p.DiastolicBP = 90 }, 0, 20},
		{"cvd former smoker", func(p *Profile) { p.SmokingStatus = SmokingFormer }, 0, 8},
		{"cvd very high stress", func(p *Profile) { p.StressLevel = StressVeryHigh }, 0, 8},
		{"cvd high stress ignored", func(p *Profile) { p.StressLevel = StressHigh }, 0, 0},
		{"cvd overweight", func(p *Profile) { p.Weight = 75 }, 0, 8},

		{"diabetes age over 45", func(p *Profile) { p.Age = 46 }, 1, 12},
		{"diabetes prediabetic labs", func(p *Profile) {
			p.Glucose = 100
			p.HbA1c = 5.7
		}, 1, 40},
		{"diabetes family", func(p *Profile) { p.DiabetesFamily = true }, 1, 15},
		{"diabetes waist", func(p *Profile) { p.WaistCircumference = 90 }, 1, 10},
		{"diabetes no exercise", func(p *Profile) { p.ExerciseFrequency = ExerciseNone }, 1, 8},

		{"stroke age over 55", func(p *Profile) { p.Age = 56 }, 2, 10},
		{"stroke age over 75", func(p *Profile) { p.Age = 76 }, 2, 25},
		{"stroke diastolic ignored", func(p *Profile) { p.DiastolicBP = 110 }, 2, 0},
		{"stroke former smoker ignored", func(p *Profile) { p.SmokingStatus = SmokingFormer }, 2, 0},
		{"stroke family", func(p *Profile) { p.StrokeFamily = true }, 2, 12},
		{"stroke diabetes family needs glucose", func(p *Profile) { p.DiabetesFamily = true }, 2, 0},
		{"stroke diabetes family with glucose", func(p *Profile) {
			p.DiabetesFamily = true
			p.Glucose = 100
		}, 2, 10},

		{"metabolic diastolic 85", func(p *Profile) { p.DiastolicBP = 85 }, 3, 15},
		{"metabolic diastolic 84", func(p *Profile) { p.DiastolicBP = 84 }, 3, 0},
		{"metabolic low hdl", func(p *Profile) { p.HDLCholesterol = 45 }, 3, 15},
		{"metabolic triglycerides", func(p *Profile) { p.Triglycerides = 150 }, 3, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baselineProfile()
			tt.mutate(&p)
			got := SpecificRisks(p, Derive(p))[tt.disease]
			assert.Equal(t, tt.want, got.SubScore)
		})
	}
}

func TestBand(t *testing.T) {
	bounds := [3]int{25, 50, 75}
	assert.Equal(t, BandLow, band(25, bounds))
	assert.Equal(t, BandModerate, band(26, bounds))
	assert.Equal(t, BandModerate, band(50, bounds))
	assert.Equal(t, BandHigh, band(75, bounds))
	assert.Equal(t, BandVeryHigh, band(76, bounds))
}
