package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Skufu/vitalrisk/internal/engine"
)

// MarkdownFormatter writes a report as Markdown.
type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format writes the report as Markdown.
func (f *MarkdownFormatter) Format(w io.Writer, r *Report) error {
	var b strings.Builder
	f.writeHeader(&b, r)
	f.writeSpecificRisks(&b, r)
	f.writeMetrics(&b, r)
	f.writeRecommendations(&b, r)
	f.writeSummary(&b, r)
	f.writeFooter(&b, r)
	_, err := io.WriteString(w, b.String())
	return err
}

func (f *MarkdownFormatter) writeHeader(b *strings.Builder, r *Report) {
	overall := r.Assessment.OverallRisk
	fmt.Fprintf(b, "# Overall Health Risk Assessment %s\n\n", bandBadge(overall.Level))
	fmt.Fprintln(b, "| Metric | Value |")
	fmt.Fprintln(b, "|--------|-------|")
	fmt.Fprintf(b, "| **Risk Level** | %s RISK |\n", overall.Level.Title())
	fmt.Fprintf(b, "| **Comprehensive Risk Score** | %d/%d |\n", overall.Score, engine.OverallScale)
	fmt.Fprintf(b, "| **Assessment** | %s |\n", overall.Description)
	fmt.Fprintf(b, "| **Bands** | %s |\n\n", strings.Join(legend(), ", "))
}

func (f *MarkdownFormatter) writeSpecificRisks(b *strings.Builder, r *Report) {
	fmt.Fprintln(b, "## Specific Disease Risks")
	fmt.Fprintln(b)
	fmt.Fprintln(b, "| Condition | Level | Estimate |")
	fmt.Fprintln(b, "|-----------|-------|----------|")
	for _, risk := range r.Assessment.SpecificRisks {
		fmt.Fprintf(b, "| %s | %s %s | %s |\n", risk.Type, bandBadge(risk.Level), risk.Level.Title(), risk.Description)
	}
	fmt.Fprintln(b)
}

func (f *MarkdownFormatter) writeMetrics(b *strings.Builder, r *Report) {
	fmt.Fprintln(b, "## Key Health Metrics")
	fmt.Fprintln(b)
	fmt.Fprintln(b, "| Metric | Reading | Category |")
	fmt.Fprintln(b, "|--------|---------|----------|")
	for _, m := range metricOrder {
		if c, ok := r.Assessment.CategorizedMetrics[m.key]; ok {
			fmt.Fprintf(b, "| %s | %s | %s |\n", m.title, r.Readings[m.key], c.Label)
		}
	}
	fmt.Fprintln(b)
}

func (f *MarkdownFormatter) writeRecommendations(b *strings.Builder, r *Report) {
	fmt.Fprintln(b, "## Personalized Health Recommendations")
	fmt.Fprintln(b)
	if len(r.Assessment.Recommendations) == 0 {
		fmt.Fprintln(b, "> No specific recommendations. Keep up your current habits.")
		fmt.Fprintln(b)
		return
	}
	for _, rec := range r.Assessment.Recommendations {
		fmt.Fprintf(b, "- **%s** (%s): %s\n", rec.Category, rec.Priority, rec.Text)
	}
	fmt.Fprintln(b)
}

func (f *MarkdownFormatter) writeSummary(b *strings.Builder, r *Report) {
	s := r.Assessment.Summary
	fmt.Fprintln(b, "## Health Summary & Next Steps")
	fmt.Fprintln(b)
	for _, section := range []struct {
		title string
		items []string
	}{
		{"Strengths", s.Strengths},
		{"Areas to Monitor", s.AreasToMonitor},
		{"Immediate Actions", s.ImmediateActions},
	} {
		fmt.Fprintf(b, "### %s\n\n", section.title)
		if len(section.items) == 0 {
			fmt.Fprintln(b, "_None_")
		}
		for _, item := range section.items {
			fmt.Fprintf(b, "- %s\n", item)
		}
		fmt.Fprintln(b)
	}
}

func (f *MarkdownFormatter) writeFooter(b *strings.Builder, r *Report) {
	fmt.Fprintln(b, "---")
	fmt.Fprintln(b)
	fmt.Fprintf(b, "> **Important Medical Disclaimer:** %s\n\n", r.Disclaimer)
	fmt.Fprintf(b, "<sub>Report `%s` generated %s</sub>\n", r.ID, r.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
}

func bandBadge(b engine.RiskBand) string {
	switch b {
	case engine.BandLow:
		return "🟢"
	case engine.BandModerate:
		return "🟡"
	case engine.BandHigh:
		return "🟠"
	default:
		return "🔴"
	}
}
