package interp

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Summary renders a plain-text findings summary across panels, suitable for
// download or pasting into a chart note.
func Summary(results map[string]*Result, patientName string, age int, sex Sex, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("BLOOD PANEL INTERPRETATION SUMMARY\n")
	b.WriteString("==================================\n\n")
	fmt.Fprintf(&b, "Patient: %s\n", patientName)
	if age > 0 {
		fmt.Fprintf(&b, "Age: %d\n", age)
	}
	fmt.Fprintf(&b, "Sex: %s\n", sex)
	fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt.Format("2006-01-02 15:04"))

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		res := results[name]
		fmt.Fprintf(&b, "--- %s ---\n", name)
		fmt.Fprintf(&b, "Parameters: %d  Abnormal: %d  Critical: %d\n",
			res.TotalParameters, res.AbnormalCount, res.CriticalCount)

		if len(res.CriticalValues) > 0 {
			b.WriteString("\nCRITICAL VALUES:\n")
			for _, cv := range res.CriticalValues {
				fmt.Fprintf(&b, "  !! %s: %s\n", cv.Parameter, cv.Message)
			}
		}

		if len(res.Abnormalities) > 0 {
			b.WriteString("\nAbnormal findings:\n")
			for _, ab := range res.Abnormalities {
				line := fmt.Sprintf("  - %s: %s", ab.Parameter, ab.Classification)
				if ab.Differential != nil {
					line += " (" + ab.Differential.Title + ")"
				}
				b.WriteString(line + "\n")
			}
		}

		if len(res.QualityChecks) > 0 {
			b.WriteString("\nSample quality:\n")
			for _, qc := range res.QualityChecks {
				fmt.Fprintf(&b, "  [%s] %s: %s\n", qc.Severity, qc.Rule, qc.Interpretation)
			}
		}

		if res.PatternSummary != "" {
			fmt.Fprintf(&b, "\nPattern: %s\n", res.PatternSummary)
		}

		if len(res.Recommendations) > 0 {
			b.WriteString("\nRecommendations:\n")
			for _, rec := range res.Recommendations {
				fmt.Fprintf(&b, "  * %s\n", rec)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("This summary is decision support, not a diagnosis. Correlate clinically.\n")
	return b.String()
}
