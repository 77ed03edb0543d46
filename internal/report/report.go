// Package report wraps an engine assessment into a timestamped report and
// renders it for terminals, JSON consumers and Markdown documents.
package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Skufu/vitalrisk/internal/engine"
)

// Disclaimer is attached to every report.
const Disclaimer = "This comprehensive assessment is for educational and informational purposes only and " +
	"should not replace professional medical advice, diagnosis, or treatment. The risk calculations are " +
	"based on general population data and may not account for all individual factors. Always consult " +
	"with qualified healthcare providers for personalized medical guidance, especially if you have " +
	"concerning symptoms or high-risk results. Regular medical checkups and professional health " +
	"screenings are essential for maintaining optimal health."

// Report is one assessment ready for rendering.
type Report struct {
	ID          string            `json:"id"`
	GeneratedAt time.Time         `json:"generatedAt"`
	Assessment  engine.Assessment `json:"assessment"`
	Readings    map[string]string `json:"readings"`
	Disclaimer  string            `json:"disclaimer"`
}

// Generator builds reports from profiles.
type Generator struct {
	now func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// Generate assesses p and wraps the result.
func (g *Generator) Generate(p engine.Profile) *Report {
	a := engine.Assess(p)
	return &Report{
		ID:          "rpt-" + uuid.NewString(),
		GeneratedAt: g.now().UTC(),
		Assessment:  a,
		Readings:    readings(p, a.Derived),
		Disclaimer:  Disclaimer,
	}
}

// readings renders the measured value behind each categorized metric,
// keyed like Assessment.CategorizedMetrics.
func readings(p engine.Profile, d engine.Derived) map[string]string {
	return map[string]string{
		engine.MetricBMI:           fmt.Sprintf("%.1f", d.BMI),
		engine.MetricWaistToHeight: fmt.Sprintf("%.2f", d.WaistToHeightRatio),
		engine.MetricBloodPressure: num(p.SystolicBP) + "/" + num(p.DiastolicBP),
		engine.MetricGlucose:       num(p.Glucose) + " mg/dL",
		engine.MetricHbA1c:         num(p.HbA1c) + "%",
		engine.MetricCholesterol:   num(p.Cholesterol) + " mg/dL",
		engine.MetricHDL:           num(p.HDLCholesterol) + " mg/dL",
		engine.MetricLDL:           num(p.LDLCholesterol) + " mg/dL",
		engine.MetricTriglycerides: num(p.Triglycerides) + " mg/dL",
		engine.MetricHeartRate:     num(p.RestingHeartRate) + " bpm",
	}
}

// num prints a reading as entered: 120, 5.5.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Formatter writes a report to a writer.
type Formatter interface {
	Format(w io.Writer, r *Report) error
}

// Formats lists the names accepted by ForFormat.
var Formats = []string{"terminal", "json", "markdown"}

// ForFormat returns the formatter registered under name.
func ForFormat(name string) (Formatter, error) {
	switch name {
	case "terminal", "":
		return NewTerminalFormatter(), nil
	case "json":
		return NewJSONFormatter(), nil
	case "markdown", "md":
		return NewMarkdownFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown report format %q", name)
	}
}

// metricOrder is the display order of categorized metrics.
var metricOrder = []struct {
	key   string
	title string
}{
	{engine.MetricBMI, "BMI"},
	{engine.MetricWaistToHeight, "Waist-to-Height Ratio"},
	{engine.MetricBloodPressure, "Blood Pressure"},
	{engine.MetricGlucose, "Fasting Glucose"},
	{engine.MetricHbA1c, "HbA1c"},
	{engine.MetricCholesterol, "Total Cholesterol"},
	{engine.MetricHDL, "HDL Cholesterol"},
	{engine.MetricLDL, "LDL Cholesterol"},
	{engine.MetricTriglycerides, "Triglycerides"},
	{engine.MetricHeartRate, "Resting Heart Rate"},
}

// legend is the overall band legend in ascending order.
func legend() []string {
	bands := []engine.RiskBand{engine.BandLow, engine.BandModerate, engine.BandHigh, engine.BandVeryHigh}
	out := make([]string, 0, len(bands))
	for _, b := range bands {
		out = append(out, b.Legend())
	}
	return out
}
