// Package engine scores a health profile into metric categories, an overall
// composite risk, disease-specific risks and prioritized recommendations.
//
// Every function in this package is pure: the Profile is read, never
// modified, and each call builds a fresh Assessment.
package engine

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type SmokingStatus string

const (
	SmokingNever   SmokingStatus = "never"
	SmokingFormer  SmokingStatus = "former"
	SmokingCurrent SmokingStatus = "current"
)

type ExerciseFrequency string

const (
	ExerciseNone     ExerciseFrequency = "none"
	ExerciseLow      ExerciseFrequency = "low"
	ExerciseModerate ExerciseFrequency = "moderate"
	ExerciseHigh     ExerciseFrequency = "high"
)

type ExerciseIntensity string

const (
	IntensityLight    ExerciseIntensity = "light"
	IntensityModerate ExerciseIntensity = "moderate"
	IntensityVigorous ExerciseIntensity = "vigorous"
)

// Quality is shared by sleep quality, diet quality and mental health status.
type Quality string

const (
	QualityPoor      Quality = "poor"
	QualityFair      Quality = "fair"
	QualityGood      Quality = "good"
	QualityExcellent Quality = "excellent"
)

type StressLevel string

const (
	StressLow      StressLevel = "low"
	StressModerate StressLevel = "moderate"
	StressHigh     StressLevel = "high"
	StressVeryHigh StressLevel = "very-high"
)

type AlcoholConsumption string

const (
	AlcoholNone     AlcoholConsumption = "none"
	AlcoholLight    AlcoholConsumption = "light"
	AlcoholModerate AlcoholConsumption = "moderate"
	AlcoholHeavy    AlcoholConsumption = "heavy"
)

type Checkup string

const (
	CheckupUnder6Months Checkup = "less-than-6-months"
	Checkup6To12Months  Checkup = "6-12-months"
	Checkup1To2Years    Checkup = "1-2-years"
	CheckupOver2Years   Checkup = "more-than-2-years"
)

// Profile is one person's measurements, lifestyle and history. Bounds are
// the caller's responsibility; see package intake.
type Profile struct {
	Age                int     `json:"age"`
	Gender             Gender  `json:"gender"`
	Weight             float64 `json:"weight"`             // kg
	Height             float64 `json:"height"`             // cm
	WaistCircumference float64 `json:"waistCircumference"` // cm

	SystolicBP       float64 `json:"systolicBP"`
	DiastolicBP      float64 `json:"diastolicBP"`
	RestingHeartRate float64 `json:"restingHeartRate"`
	Glucose          float64 `json:"glucose"`
	HbA1c            float64 `json:"hba1c"`
	Cholesterol      float64 `json:"cholesterol"`
	HDLCholesterol   float64 `json:"hdlCholesterol"`
	LDLCholesterol   float64 `json:"ldlCholesterol"`
	Triglycerides    float64 `json:"triglycerides"`

	SmokingStatus      SmokingStatus      `json:"smokingStatus"`
	SmokingYears       int                `json:"smokingYears"`
	CigarettesPerDay   int                `json:"cigarettesPerDay"`
	ExerciseFrequency  ExerciseFrequency  `json:"exerciseFrequency"`
	ExerciseIntensity  ExerciseIntensity  `json:"exerciseIntensity"`
	SleepHours         float64            `json:"sleepHours"`
	SleepQuality       Quality            `json:"sleepQuality"`
	StressLevel        StressLevel        `json:"stressLevel"`
	AlcoholConsumption AlcoholConsumption `json:"alcoholConsumption"`
	DietQuality        Quality            `json:"dietQuality"`
	WaterIntake        int                `json:"waterIntake"` // glasses per day
	MentalHealthStatus Quality            `json:"mentalHealthStatus"`
	LastCheckup        Checkup            `json:"lastCheckup"`

	HeartDiseaseFamily bool `json:"heartDiseaseFamily"`
	DiabetesFamily     bool `json:"diabetesFamily"`
	StrokeFamily       bool `json:"strokeFamily"`
	CancerFamily       bool `json:"cancerFamily"`

	Medications       []string `json:"medications"`
	ChronicConditions []string `json:"chronicConditions"`
}

// Derived holds the values computed once from a Profile and shared by
// every scorer.
type Derived struct {
	BMI                float64 `json:"bmi"`
	WaistToHeightRatio float64 `json:"waistToHeightRatio"`
}

// BMI returns weight in kg over height in metres squared.
func BMI(p Profile) float64 {
	m := p.Height / 100
	return p.Weight / (m * m)
}

// WaistToHeightRatio returns waist circumference over height, both in cm.
func WaistToHeightRatio(p Profile) float64 {
	return p.WaistCircumference / p.Height
}

// Derive computes BMI and waist-to-height ratio.
func Derive(p Profile) Derived {
	return Derived{
		BMI:                BMI(p),
		WaistToHeightRatio: WaistToHeightRatio(p),
	}
}

// hdlFloor is the gender-dependent HDL level below which HDL counts as a
// risk factor.
func hdlFloor(g Gender) float64 {
	if g == GenderMale {
		return 40
	}
	return 50
}

func lowHDL(p Profile) bool {
	return p.HDLCholesterol < hdlFloor(p.Gender)
}
