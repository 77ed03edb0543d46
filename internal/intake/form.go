// Package intake collects a health profile section by section and checks it
// against the form bounds before it is handed to the engine.
package intake

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Skufu/vitalrisk/internal/engine"
)

// PersonalInfo is the first form section.
type PersonalInfo struct {
	Age                int            `json:"age" yaml:"age" validate:"gte=18,lte=120"`
	Gender             engine.Gender  `json:"gender" yaml:"gender" validate:"oneof=male female"`
	Weight             float64        `json:"weight" yaml:"weight" validate:"gte=30,lte=300"`
	Height             float64        `json:"height" yaml:"height" validate:"gte=120,lte=250"`
	WaistCircumference float64        `json:"waistCircumference" yaml:"waistCircumference" validate:"gte=50,lte=200"`
	LastCheckup        engine.Checkup `json:"lastCheckup" yaml:"lastCheckup" validate:"oneof=less-than-6-months 6-12-months 1-2-years more-than-2-years"`
}

// VitalSigns holds the vitals and lab results.
type VitalSigns struct {
	SystolicBP       float64 `json:"systolicBP" yaml:"systolicBP" validate:"gte=80,lte=250"`
	DiastolicBP      float64 `json:"diastolicBP" yaml:"diastolicBP" validate:"gte=40,lte=150"`
	RestingHeartRate float64 `json:"restingHeartRate" yaml:"restingHeartRate" validate:"gte=40,lte=120"`
	Glucose          float64 `json:"glucose" yaml:"glucose" validate:"gte=50,lte=400"`
	HbA1c            float64 `json:"hba1c" yaml:"hba1c" validate:"gte=4,lte=15"`
	Cholesterol      float64 `json:"cholesterol" yaml:"cholesterol" validate:"gte=100,lte=400"`
	HDLCholesterol   float64 `json:"hdlCholesterol" yaml:"hdlCholesterol" validate:"gte=20,lte=100"`
	LDLCholesterol   float64 `json:"ldlCholesterol" yaml:"ldlCholesterol" validate:"gte=50,lte=300"`
	Triglycerides    float64 `json:"triglycerides" yaml:"triglycerides" validate:"gte=50,lte=1000"`
}

type Lifestyle struct {
	ExerciseFrequency  engine.ExerciseFrequency  `json:"exerciseFrequency" yaml:"exerciseFrequency" validate:"oneof=none low moderate high"`
	ExerciseIntensity  engine.ExerciseIntensity  `json:"exerciseIntensity" yaml:"exerciseIntensity" validate:"oneof=light moderate vigorous"`
	SmokingStatus      engine.SmokingStatus      `json:"smokingStatus" yaml:"smokingStatus" validate:"oneof=never former current"`
	SmokingYears       int                       `json:"smokingYears" yaml:"smokingYears" validate:"gte=0,lte=80"`
	CigarettesPerDay   int                       `json:"cigarettesPerDay" yaml:"cigarettesPerDay" validate:"gte=0,lte=100"`
	AlcoholConsumption engine.AlcoholConsumption `json:"alcoholConsumption" yaml:"alcoholConsumption" validate:"oneof=none light moderate heavy"`
	DietQuality        engine.Quality            `json:"dietQuality" yaml:"dietQuality" validate:"oneof=poor fair good excellent"`
	WaterIntake        int                       `json:"waterIntake" yaml:"waterIntake" validate:"gte=0,lte=20"`
	SleepHours         float64                   `json:"sleepHours" yaml:"sleepHours" validate:"gte=3,lte=12"`
	SleepQuality       engine.Quality            `json:"sleepQuality" yaml:"sleepQuality" validate:"oneof=poor fair good excellent"`
	StressLevel        engine.StressLevel        `json:"stressLevel" yaml:"stressLevel" validate:"oneof=low moderate high very-high"`
}

type MedicalHistory struct {
	HeartDiseaseFamily bool `json:"heartDiseaseFamily" yaml:"heartDiseaseFamily"`
	DiabetesFamily     bool `json:"diabetesFamily" yaml:"diabetesFamily"`
	StrokeFamily       bool `json:"strokeFamily" yaml:"strokeFamily"`
	CancerFamily       bool `json:"cancerFamily" yaml:"cancerFamily"`
	Medications        List `json:"medications" yaml:"medications"`
	ChronicConditions  List `json:"chronicConditions" yaml:"chronicConditions"`
}

type Wellness struct {
	MentalHealthStatus engine.Quality `json:"mentalHealthStatus" yaml:"mentalHealthStatus" validate:"oneof=poor fair good excellent"`
}

// Form is the flat payload accepted by the HTTP API and the CLI.
type Form struct {
	PersonalInfo   `yaml:",inline"`
	VitalSigns     `yaml:",inline"`
	Lifestyle      `yaml:",inline"`
	MedicalHistory `yaml:",inline"`
	Wellness       `yaml:",inline"`
}

// DefaultForm returns the values the form starts with.
func DefaultForm() Form {
	return Form{
		PersonalInfo: PersonalInfo{
			Age:                30,
			Gender:             engine.GenderMale,
			Weight:             70,
			Height:             175,
			WaistCircumference: 85,
			LastCheckup:        engine.Checkup6To12Months,
		},
		VitalSigns: VitalSigns{
			SystolicBP:       120,
			DiastolicBP:      80,
			RestingHeartRate: 70,
			Glucose:          90,
			HbA1c:            5.5,
			Cholesterol:      180,
			HDLCholesterol:   50,
			LDLCholesterol:   100,
			Triglycerides:    150,
		},
		Lifestyle: Lifestyle{
			ExerciseFrequency:  engine.ExerciseModerate,
			ExerciseIntensity:  engine.IntensityModerate,
			SmokingStatus:      engine.SmokingNever,
			AlcoholConsumption: engine.AlcoholLight,
			DietQuality:        engine.QualityFair,
			WaterIntake:        8,
			SleepHours:         7,
			SleepQuality:       engine.QualityGood,
			StressLevel:        engine.StressModerate,
		},
		MedicalHistory: MedicalHistory{
			Medications:       List{},
			ChronicConditions: List{},
		},
		Wellness: Wellness{
			MentalHealthStatus: engine.QualityGood,
		},
	}
}

// Profile converts f without validating it. List items are trimmed and
// empty entries dropped.
func (f Form) Profile() engine.Profile {
	return engine.Profile{
		Age:                f.Age,
		Gender:             f.Gender,
		Weight:             f.Weight,
		Height:             f.Height,
		WaistCircumference: f.WaistCircumference,
		SystolicBP:         f.SystolicBP,
		DiastolicBP:        f.DiastolicBP,
		RestingHeartRate:   f.RestingHeartRate,
		Glucose:            f.Glucose,
		HbA1c:              f.HbA1c,
		Cholesterol:        f.Cholesterol,
		HDLCholesterol:     f.HDLCholesterol,
		LDLCholesterol:     f.LDLCholesterol,
		Triglycerides:      f.Triglycerides,
		SmokingStatus:      f.SmokingStatus,
		SmokingYears:       f.SmokingYears,
		CigarettesPerDay:   f.CigarettesPerDay,
		ExerciseFrequency:  f.ExerciseFrequency,
		ExerciseIntensity:  f.ExerciseIntensity,
		SleepHours:         f.SleepHours,
		SleepQuality:       f.SleepQuality,
		StressLevel:        f.StressLevel,
		AlcoholConsumption: f.AlcoholConsumption,
		DietQuality:        f.DietQuality,
		WaterIntake:        f.WaterIntake,
		MentalHealthStatus: f.MentalHealthStatus,
		LastCheckup:        f.LastCheckup,
		HeartDiseaseFamily: f.HeartDiseaseFamily,
		DiabetesFamily:     f.DiabetesFamily,
		StrokeFamily:       f.StrokeFamily,
		CancerFamily:       f.CancerFamily,
		Medications:        []string(normalizeItems(f.Medications)),
		ChronicConditions:  []string(normalizeItems(f.ChronicConditions)),
	}
}

// List is a free-text list. It decodes from either an array or a single
// comma separated string, the way the form's text box sends it.
type List []string

func (l *List) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = normalizeItems(items)
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	*l = ParseList(text)
	return nil
}

func (l *List) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*l = ParseList(node.Value)
		return nil
	}
	var items []string
	if err := node.Decode(&items); err != nil {
		return err
	}
	*l = normalizeItems(items)
	return nil
}

// ParseList splits free text on commas, trims each item and
// drops empties.
func ParseList(text string) List {
	return normalizeItems(strings.Split(text, ","))
}

func normalizeItems(items []string) List {
	out := List{}
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
