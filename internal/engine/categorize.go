package engine

// Severity is a display tag for a Category. It never feeds a score.
type Severity string

const (
	SeverityGood    Severity = "good"
	SeverityCaution Severity = "caution"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Category is the clinical label assigned to one metric.
type Category struct {
	Label    string   `json:"category"`
	Severity Severity `json:"severity"`
}

// Metric names used as keys of Assessment.CategorizedMetrics.
const (
	MetricBMI           = "bmi"
	MetricWaistToHeight = "waistToHeight"
	MetricBloodPressure = "bloodPressure"
	MetricGlucose       = "glucose"
	MetricHbA1c         = "hba1c"
	MetricCholesterol   = "cholesterol"
	MetricHDL           = "hdlCholesterol"
	MetricLDL           = "ldlCholesterol"
	MetricTriglycerides = "triglycerides"
	MetricHeartRate     = "restingHeartRate"
)

func CategorizeBMI(bmi float64) Category {
	switch {
	case bmi < BMIUnderweight:
		return Category{"Underweight", SeverityCaution}
	case bmi < BMIOverweight:
		return Category{"Normal", SeverityGood}
	case bmi < BMIObese:
		return Category{"Overweight", SeverityCaution}
	default:
		return Category{"Obese", SeverityDanger}
	}
}

// CategorizeWaistToHeight has no intermediate band.
func CategorizeWaistToHeight(ratio float64) Category {
	if ratio > WaistToHeightRisk {
		return Category{"High Risk", SeverityDanger}
	}
	return Category{"Normal", SeverityGood}
}

// CategorizeBloodPressure keeps the OR in the Stage 1 branch: a reading
// with systolic >= 140 but diastolic < 90 is still Stage 1.
func CategorizeBloodPressure(systolic, diastolic float64) Category {
	switch {
	case systolic < SystolicNormal && diastolic < DiastolicNormal:
		return Category{"Normal", SeverityGood}
	case systolic < SystolicElevated && diastolic < DiastolicNormal:
		return Category{"Elevated", SeverityCaution}
	case systolic < SystolicStage2 || diastolic < DiastolicStage2:
		return Category{"High (Stage 1)", SeverityWarning}
	default:
		return Category{"High (Stage 2)", SeverityDanger}
	}
}

func CategorizeGlucose(glucose float64) Category {
	switch {
	case glucose < GlucosePrediabetes:
		return Category{"Normal", SeverityGood}
	case glucose < GlucoseDiabetes:
		return Category{"Pre-diabetes", SeverityCaution}
	default:
		return Category{"Diabetes", SeverityDanger}
	}
}

func CategorizeHbA1c(hba1c float64) Category {
	switch {
	case hba1c < HbA1cPrediabetes:
		return Category{"Normal", SeverityGood}
	case hba1c < HbA1cDiabetes:
		return Category{"Pre-diabetes", SeverityCaution}
	default:
		return Category{"Diabetes", SeverityDanger}
	}
}

func CategorizeCholesterol(total float64) Category {
	switch {
	case total < CholesterolBorderline:
		return Category{"Desirable", SeverityGood}
	case total < CholesterolHigh:
		return Category{"Borderline High", SeverityCaution}
	default:
		return Category{"High", SeverityDanger}
	}
}

// CategorizeHDL uses a floor of 40 mg/dL for men and 50 mg/dL for women.
func CategorizeHDL(hdl float64, g Gender) Category {
	switch {
	case hdl >= HDLProtective:
		return Category{"High (Protective)", SeverityGood}
	case hdl >= hdlFloor(g):
		return Category{"Normal", SeverityGood}
	default:
		return Category{"Low (Risk Factor)", SeverityDanger}
	}
}

func CategorizeLDL(ldl float64) Category {
	switch {
	case ldl < LDLNearOptimal:
		return Category{"Optimal", SeverityGood}
	case ldl < LDLBorderline:
		return Category{"Near Optimal", SeverityCaution}
	case ldl < LDLHigh:
		return Category{"Borderline High", SeverityWarning}
	default:
		return Category{"High", SeverityDanger}
	}
}

func CategorizeTriglycerides(tg float64) Category {
	switch {
	case tg < TriglyceridesBorderline:
		return Category{"Normal", SeverityGood}
	case tg < TriglyceridesHigh:
		return Category{"Borderline High", SeverityCaution}
	case tg < TriglyceridesVeryHigh:
		return Category{"High", SeverityWarning}
	default:
		return Category{"Very High", SeverityDanger}
	}
}

func CategorizeHeartRate(bpm float64) Category {
	switch {
	case bpm < HeartRateAthletic:
		return Category{"Low (Athletic)", SeverityGood}
	case bpm <= HeartRateHigh:
		return Category{"Normal", SeverityGood}
	default:
		return Category{"High", SeverityDanger}
	}
}

// Categorize runs every categorizer against p.
func Categorize(p Profile, d Derived) map[string]Category {
	return map[string]Category{
		MetricBMI:           CategorizeBMI(d.BMI),
		MetricWaistToHeight: CategorizeWaistToHeight(d.WaistToHeightRatio),
		MetricBloodPressure: CategorizeBloodPressure(p.SystolicBP, p.DiastolicBP),
		MetricGlucose:       CategorizeGlucose(p.Glucose),
		MetricHbA1c:         CategorizeHbA1c(p.HbA1c),
		MetricCholesterol:   CategorizeCholesterol(p.Cholesterol),
		MetricHDL:           CategorizeHDL(p.HDLCholesterol, p.Gender),
		MetricLDL:           CategorizeLDL(p.LDLCholesterol),
		MetricTriglycerides: CategorizeTriglycerides(p.Triglycerides),
		MetricHeartRate:     CategorizeHeartRate(p.RestingHeartRate),
	}
}
