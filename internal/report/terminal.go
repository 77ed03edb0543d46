package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Skufu/vitalrisk/internal/engine"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

const barWidth = 40

// TerminalFormatter writes a color-coded report to a terminal.
type TerminalFormatter struct{}

func NewTerminalFormatter() *TerminalFormatter {
	return &TerminalFormatter{}
}

// Format renders the report with ANSI colors. Output is buffered so a
// failed write is reported once.
func (f *TerminalFormatter) Format(w io.Writer, r *Report) error {
	var b strings.Builder
	f.writeHeader(&b, r)
	f.writeOverall(&b, r)
	f.writeSpecificRisks(&b, r)
	f.writeMetrics(&b, r)
	f.writeRecommendations(&b, r)
	f.writeSummary(&b, r)
	f.writeFooter(&b, r)
	_, err := io.WriteString(w, b.String())
	return err
}

func (f *TerminalFormatter) writeHeader(b *strings.Builder, _ *Report) {
	fmt.Fprintf(b, "\n%s%s══════════════════════════════════════════%s\n", colorBold, colorCyan, colorReset)
	fmt.Fprintf(b, "%s%s  Overall Health Risk Assessment%s\n", colorBold, colorCyan, colorReset)
	fmt.Fprintf(b, "%s%s══════════════════════════════════════════%s\n\n", colorBold, colorCyan, colorReset)
}

func (f *TerminalFormatter) writeOverall(b *strings.Builder, r *Report) {
	overall := r.Assessment.OverallRisk
	color := bandColor(overall.Level)

	fmt.Fprintf(b, "  %s%s%s RISK%s  (score %d/%d)\n", colorBold, color, overall.Level.Title(), colorReset, overall.Score, engine.OverallScale)
	fmt.Fprintf(b, "  %s\n", overall.Description)

	filled := int(overall.ScaleFraction() * barWidth)
	if filled < 0 {
		filled = 0
	}
	fmt.Fprintf(b, "  %s%s%s%s\n", color, strings.Repeat("█", filled), colorReset, strings.Repeat("░", barWidth-filled))
	fmt.Fprintf(b, "  %s%s%s\n\n", colorDim, strings.Join(legend(), " | "), colorReset)
}

func (f *TerminalFormatter) writeSpecificRisks(b *strings.Builder, r *Report) {
	fmt.Fprintf(b, "  %s── Specific Disease Risks ──%s\n", colorBold, colorReset)
	for _, risk := range r.Assessment.SpecificRisks {
		fmt.Fprintf(b, "    %-24s %s%-10s%s %s\n",
			risk.Type, bandColor(risk.Level), risk.Level.Title(), colorReset, risk.Description)
	}
	fmt.Fprintln(b)
}

func (f *TerminalFormatter) writeMetrics(b *strings.Builder, r *Report) {
	fmt.Fprintf(b, "  %s── Key Health Metrics ──%s\n", colorBold, colorReset)
	for _, m := range metricOrder {
		c, ok := r.Assessment.CategorizedMetrics[m.key]
		if !ok {
			continue
		}
		fmt.Fprintf(b, "    %-24s %-12s %s%s%s\n", m.title, r.Readings[m.key], severityColor(c.Severity), c.Label, colorReset)
	}
	fmt.Fprintln(b)
}

func (f *TerminalFormatter) writeRecommendations(b *strings.Builder, r *Report) {
	fmt.Fprintf(b, "  %s── Personalized Health Recommendations ──%s\n", colorBold, colorReset)
	if len(r.Assessment.Recommendations) == 0 {
		fmt.Fprintf(b, "    %sNo specific recommendations. Keep up your current habits.%s\n\n", colorGreen, colorReset)
		return
	}
	for _, rec := range r.Assessment.Recommendations {
		color := priorityColor(rec.Priority)
		fmt.Fprintf(b, "    %s[%s]%s %s\n", color, strings.ToUpper(string(rec.Priority)), colorReset, rec.Category)
		fmt.Fprintf(b, "      %s\n", rec.Text)
	}
	fmt.Fprintln(b)
}

func (f *TerminalFormatter) writeSummary(b *strings.Builder, r *Report) {
	s := r.Assessment.Summary
	fmt.Fprintf(b, "  %s── Health Summary & Next Steps ──%s\n", colorBold, colorReset)
	writeList(b, "Strengths", colorGreen, s.Strengths)
	writeList(b, "Areas to Monitor", colorYellow, s.AreasToMonitor)
	writeList(b, "Immediate Actions", colorCyan, s.ImmediateActions)
}

func writeList(b *strings.Builder, title, color string, items []string) {
	fmt.Fprintf(b, "    %s%s%s\n", color, title, colorReset)
	if len(items) == 0 {
		fmt.Fprintf(b, "      %s(none)%s\n", colorDim, colorReset)
	}
	for _, item := range items {
		fmt.Fprintf(b, "      • %s\n", item)
	}
	fmt.Fprintln(b)
}

func (f *TerminalFormatter) writeFooter(b *strings.Builder, r *Report) {
	fmt.Fprintf(b, "  %s%s──────────────────────────────────────────%s\n", colorDim, colorCyan, colorReset)
	fmt.Fprintf(b, "  %s%s%s\n", colorDim, r.Disclaimer, colorReset)
	fmt.Fprintf(b, "  %sReport: %s | Generated: %s%s\n\n",
		colorDim, r.ID, r.GeneratedAt.Format("2006-01-02 15:04:05"), colorReset)
}

func bandColor(b engine.RiskBand) string {
	switch b {
	case engine.BandLow:
		return colorGreen
	case engine.BandModerate:
		return colorYellow
	default:
		return colorRed
	}
}

func severityColor(s engine.Severity) string {
	switch s {
	case engine.SeverityGood:
		return colorGreen
	case engine.SeverityCaution:
		return colorYellow
	case engine.SeverityWarning, engine.SeverityDanger:
		return colorRed
	default:
		return colorReset
	}
}

func priorityColor(p engine.Priority) string {
	switch p {
	case engine.PriorityCritical, engine.PriorityHigh:
		return colorRed
	default:
		return colorYellow
	}
}
