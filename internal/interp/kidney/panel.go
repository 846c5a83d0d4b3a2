// Package kidney interprets renal markers and electrolytes. Derived indices
// cover the BUN/creatinine ratio, anion gap, albumin-corrected calcium, and
// KDIGO CKD staging from eGFR.
package kidney

import (
	"fmt"
	"strings"

	"github.com/bloodlens/bloodlens/internal/interp"
)

const educational = "Kidney Function Tests assess glomerular filtration (creatinine, eGFR), tubular function (electrolytes), and overall renal homeostasis. BUN/Creatinine ratio helps differentiate prerenal from intrinsic disease."

var parameters = []string{
	"Creatinine", "BUN", "Urea", "Uric_Acid", "eGFR", "Cystatin_C",
	"Sodium", "Potassium", "Chloride", "Bicarbonate",
	"Calcium", "Phosphorus", "Magnesium",
}

type Panel struct{}

func New() *Panel { return &Panel{} }

func (p *Panel) Name() string { return "KFT" }

func (p *Panel) Parameters() []string { return parameters }

// Borrows declares albumin, needed for the corrected calcium.
func (p *Panel) Borrows() []string { return []string{"Albumin"} }

func (p *Panel) Analyze(values map[string]interp.Value, sex interp.Sex) *interp.Result {
	var albumin float64
	hasAlbumin := false
	if v, ok := values["Albumin"]; ok {
		if f, isNum := v.Float(); isNum {
			albumin, hasAlbumin = f, true
		}
		trimmed := make(map[string]interp.Value, len(values))
		for k, val := range values {
			if k != "Albumin" {
				trimmed[k] = val
			}
		}
		values = trimmed
	}

	res := interp.Evaluate(interp.Config{
		Panel:         p.Name(),
		Ranges:        referenceRanges,
		Differentials: differentials,
		Learning:      learning,
	}, values, sex)

	bun, hasBUN := res.Num("BUN")
	cr, hasCr := res.Num("Creatinine")

	if hasBUN && hasCr && cr > 0 {
		ratio := interp.Round2(bun / cr)
		res.AddIndex("BUN/Creatinine Ratio", interp.Index{
			Value:          interp.Number(ratio),
			Formula:        "BUN / Creatinine",
			Interpretation: interpretBUNCr(ratio),
			Note:           ">20 prerenal; 10-20 normal; <10 intrinsic/hepatic",
		})
		res.AddQualityCheck(bunCrCheck(ratio))
	}

	if na, ok := res.Num("Sodium"); ok {
		cl, hasCl := res.Num("Chloride")
		hco3, hasHCO3 := res.Num("Bicarbonate")
		if hasCl && hasHCO3 {
			ag := interp.Round2(na - (cl + hco3))
			res.AddIndex("Anion Gap", interp.Index{
				Value:          interp.Number(ag),
				Formula:        "Na - (Cl + HCO3)",
				Interpretation: interpretAnionGap(ag),
				Note:           "Normal: 8-12 mEq/L (with K+: 10-20)",
			})
		}
	}

	if ca, ok := res.Num("Calcium"); ok && hasAlbumin && albumin < 4.0 {
		corrected := interp.Round2(ca + 0.8*(4.0-albumin))
		res.AddIndex("Corrected Calcium", interp.Index{
			Value:          interp.Number(corrected),
			Formula:        "Ca + 0.8 x (4.0 - Albumin)",
			Interpretation: fmt.Sprintf("%s mg/dL corrected for albumin of %s g/dL", interp.FormatNum(corrected), interp.FormatNum(albumin)),
			Note:           "Use when albumin <4.0 g/dL. Normal corrected: 8.5-10.5",
		})
	}

	if egfr, ok := res.Num("eGFR"); ok {
		res.AddIndex("CKD Stage", interp.Index{
			Value:          interp.Number(egfr),
			Formula:        "Based on eGFR (CKD-EPI)",
			Interpretation: ckdStage(egfr),
			Note:           "CKD defined as eGFR <60 for >=3 months",
		})
	}

	res.PatternSummary = patternSummary(res, bun, cr, hasBUN, hasCr)
	res.EducationalContent = []string{educational}
	return res
}

func interpretBUNCr(ratio float64) string {
	switch {
	case ratio > 20:
		return "Prerenal (dehydration, CHF, GI bleed)"
	case ratio >= 10:
		return "Normal"
	default:
		return "Intrinsic renal disease, liver disease, or malnutrition"
	}
}

func bunCrCheck(ratio float64) interp.QualityCheck {
	qc := interp.QualityCheck{
		Rule:     "BUN/Creatinine Ratio Assessment",
		Expected: "10-20",
		Actual:   fmt.Sprintf("%.1f", ratio),
	}
	switch {
	case ratio >= 10 && ratio <= 20:
		qc.Severity = interp.SeverityPass
		qc.Interpretation = fmt.Sprintf("BUN/Cr ratio %.1f. Normal range.", ratio)
	case ratio > 20:
		qc.Severity = interp.SeverityWarning
		qc.Interpretation = fmt.Sprintf("BUN/Cr ratio %.1f. Elevated: consider prerenal causes, GI bleeding.", ratio)
	default:
		qc.Severity = interp.SeverityWarning
		qc.Interpretation = fmt.Sprintf("BUN/Cr ratio %.1f. Low: consider liver disease, malnutrition, intrinsic renal.", ratio)
	}
	return qc
}

func interpretAnionGap(ag float64) string {
	switch {
	case ag > 12:
		return "Elevated. Consider MUDPILES: Methanol, Uremia, DKA, Propylene glycol, INH/Iron, Lactic acidosis, Ethylene glycol, Salicylates"
	case ag >= 8:
		return "Normal"
	default:
		return "Low. Consider hypoalbuminemia, multiple myeloma"
	}
}

func ckdStage(egfr float64) string {
	switch {
	case egfr >= 90:
		return "G1 (Normal or high)"
	case egfr >= 60:
		return "G2 (Mildly decreased)"
	case egfr >= 45:
		return "G3a (Mild-moderately decreased)"
	case egfr >= 30:
		return "G3b (Moderate-severely decreased)"
	case egfr >= 15:
		return "G4 (Severely decreased)"
	default:
		return "G5 (Kidney failure)"
	}
}

func patternSummary(res *interp.Result, bun, cr float64, hasBUN, hasCr bool) string {
	var patterns []string

	crStatus := res.Status("Creatinine")
	if crStatus == interp.StatusHigh || crStatus == interp.StatusCriticalHigh {
		if hasBUN && hasCr && cr > 0 && bun/cr > 20 {
			patterns = append(patterns, "Prerenal azotemia pattern: elevated BUN/Cr ratio >20:1.")
		} else {
			patterns = append(patterns, "Renal impairment: elevated creatinine.")
		}
	}

	var lytes []string
	if na, ok := res.Num("Sodium"); ok {
		if na < 136 {
			lytes = append(lytes, "hyponatremia")
		} else if na > 145 {
			lytes = append(lytes, "hypernatremia")
		}
	}
	if k, ok := res.Num("Potassium"); ok {
		if k < 3.5 {
			lytes = append(lytes, "hypokalemia")
		} else if k > 5.0 {
			lytes = append(lytes, "hyperkalemia")
		}
	}
	if len(lytes) > 0 {
		patterns = append(patterns, "Electrolyte abnormalities: "+strings.Join(lytes, ", ")+".")
	}

	if len(patterns) == 0 {
		return "No significant renal or electrolyte pattern identified."
	}
	return strings.Join(patterns, " ")
}
