package engine

// Clinical cut-offs shared by the categorizers and the scorers. A category
// boundary and the matching score addend must always move together.
const (
	BMIUnderweight = 18.5
	BMIOverweight  = 25.0
	BMIObese       = 30.0
	BMISevere      = 35.0

	WaistToHeightRisk   = 0.5
	WaistToHeightSevere = 0.6

	SystolicNormal   = 120.0
	SystolicElevated = 130.0
	SystolicStage2   = 140.0
	SystolicCrisis   = 160.0
	DiastolicNormal  = 80.0
	DiastolicStage2  = 90.0
	DiastolicCrisis  = 100.0

	HeartRateAthletic = 60.0
	HeartRateElevated = 80.0
	HeartRateHigh     = 100.0

	GlucosePrediabetes = 100.0
	GlucoseDiabetes    = 126.0

	HbA1cPrediabetes = 5.7
	HbA1cDiabetes    = 6.5

	CholesterolBorderline = 200.0
	CholesterolHigh       = 240.0

	HDLProtective = 60.0

	LDLNearOptimal = 100.0
	LDLBorderline  = 130.0
	LDLHigh        = 160.0

	TriglyceridesBorderline = 150.0
	TriglyceridesHigh       = 200.0
	TriglyceridesVeryHigh   = 500.0
)

// Overall composite bands, inclusive upper bounds.
const (
	OverallLowMax      = 60
	OverallModerateMax = 120
	OverallHighMax     = 180

	// OverallScale is the nominal top of the composite range used for
	// progress displays; scores may exceed it.
	OverallScale = 300
)
