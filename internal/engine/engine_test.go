package engine

// baselineProfile scores exactly zero on the composite scale and on every
// disease model.
func baselineProfile() Profile {
	return Profile{
		Age:                25,
		Gender:             GenderFemale,
		Weight:             60,
		Height:             170,
		WaistCircumference: 70,
		SystolicBP:         110,
		DiastolicBP:        70,
		RestingHeartRate:   65,
		Glucose:            85,
		HbA1c:              5.0,
		Cholesterol:        170,
		HDLCholesterol:     60,
		LDLCholesterol:     90,
		Triglycerides:      100,
		SmokingStatus:      SmokingNever,
		ExerciseFrequency:  ExerciseModerate,
		ExerciseIntensity:  IntensityModerate,
		SleepHours:         8,
		SleepQuality:       QualityGood,
		StressLevel:        StressLow,
		AlcoholConsumption: AlcoholLight,
		DietQuality:        QualityGood,
		WaterIntake:        8,
		MentalHealthStatus: QualityGood,
		LastCheckup:        CheckupUnder6Months,
	}
}

// idealProfile is a young, active adult with optimal labs.
func idealProfile() Profile {
	p := baselineProfile()
	p.Gender = GenderMale
	p.Weight = 67.4
	p.Height = 175
	p.WaistCircumference = 80
	p.HDLCholesterol = 65
	p.ExerciseFrequency = ExerciseHigh
	p.ExerciseIntensity = IntensityVigorous
	p.SleepQuality = QualityExcellent
	p.DietQuality = QualityExcellent
	p.MentalHealthStatus = QualityExcellent
	return p
}

// highRiskProfile is an older male smoker with uncontrolled vitals and labs.
func highRiskProfile() Profile {
	p := baselineProfile()
	p.Gender = GenderMale
	p.Age = 70
	p.SystolicBP = 165
	p.DiastolicBP = 102
	p.Glucose = 130
	p.HbA1c = 7.0
	p.Cholesterol = 250
	p.HDLCholesterol = 35
	p.LDLCholesterol = 170
	p.Triglycerides = 220
	p.SmokingStatus = SmokingCurrent
	p.CigarettesPerDay = 25
	p.SmokingYears = 25
	p.ExerciseFrequency = ExerciseNone
	p.Weight = 95
	p.Height = 170
	p.WaistCircumference = 110
	p.HeartDiseaseFamily = true
	return p
}

func withCounts(p Profile, conditions, medications int) Profile {
	p.ChronicConditions = make([]string, conditions)
	for i := range p.ChronicConditions {
		p.ChronicConditions[i] = "condition"
	}
	p.Medications = make([]string, medications)
	for i := range p.Medications {
		p.Medications[i] = "medication"
	}
	return p
}

func score(p Profile) int {
	return CompositeScore(p, Derive(p))
}
