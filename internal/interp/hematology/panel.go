// Package hematology interprets the Complete Blood Count. Beyond range
// classification it runs sample-consistency checks (Rule of Threes, MCHC
// plausibility) and derives the absolute counts and red-cell indices used in
// anemia workups.
package hematology

import (
	"fmt"
	"math"
	"strings"

	"github.com/bloodlens/bloodlens/internal/interp"
)

const educational = "The Complete Blood Count is the most commonly ordered blood test. It provides information about three cell lines: red blood cells (oxygen transport), white blood cells (immune function), and platelets (hemostasis)."

var parameters = []string{
	"RBC", "Hemoglobin", "Hematocrit", "MCV", "MCH", "MCHC", "RDW", "RDW_SD",
	"WBC", "Neutrophils", "Lymphocytes", "Monocytes", "Eosinophils", "Basophils",
	"Platelets", "MPV", "PDW", "Reticulocytes", "ESR", "ANC", "ALC",
}

type Panel struct{}

func New() *Panel { return &Panel{} }

func (p *Panel) Name() string { return "CBC" }

func (p *Panel) Parameters() []string { return parameters }

func (p *Panel) Analyze(values map[string]interp.Value, sex interp.Sex) *interp.Result {
	res := interp.Evaluate(interp.Config{
		Panel:         p.Name(),
		Ranges:        referenceRanges,
		Differentials: differentials,
	}, values, sex)

	addQualityChecks(res)
	addIndices(res)
	res.PatternSummary = patternSummary(res)
	res.EducationalContent = []string{educational}
	res.Recommendations = recommendations(res)
	return res
}

// Rule of Threes deviation bands, as a fraction of the expected value.
const (
	deviationPass = 0.10
	deviationWarn = 0.20
)

func addQualityChecks(res *interp.Result) {
	if hb, ok := res.Num("Hemoglobin"); ok {
		if rbc, ok := res.Num("RBC"); ok && rbc > 0 {
			res.AddQualityCheck(ruleOfThrees("Rule of Threes: Hb = 3 x RBC", 3*rbc, hb, "g/dL",
				"Hemoglobin is consistent with the RBC count.",
				"Hemoglobin and RBC disagree. Consider abnormal red cell indices (microcytosis, macrocytosis) or a measurement artifact."))
		}
		if hct, ok := res.Num("Hematocrit"); ok {
			res.AddQualityCheck(ruleOfThrees("Rule of Threes: Hct = 3 x Hb", 3*hb, hct, "%",
				"Hematocrit is consistent with hemoglobin.",
				"Hematocrit and hemoglobin disagree. Consider lipemia, hemolysis, cold agglutinins, or in vitro artifact."))

			// Reported MCHC should match Hb/Hct. Spurious elevation above
			// 38 g/dL points at cold agglutinins or lipemia.
			if mchc, ok := res.Num("MCHC"); ok && hct > 0 {
				computed := hb / hct * 100
				res.AddQualityCheck(ruleOfThrees("MCHC plausibility: MCHC = Hb / Hct x 100", computed, mchc, "g/dL",
					"Reported MCHC matches the hemoglobin and hematocrit.",
					"Reported MCHC does not match Hb/Hct. Verify the sample before acting on red cell indices."))
				if mchc > 38 {
					res.AddQualityCheck(interp.QualityCheck{
						Rule:           "MCHC physiologic limit",
						Severity:       interp.SeverityWarning,
						Actual:         interp.FormatNum(mchc) + " g/dL",
						Expected:       "<= 38 g/dL",
						Interpretation: "MCHC above 38 g/dL is rarely physiologic. Consider cold agglutinins, lipemia, or hemolysis.",
					})
				}
			}
		}
	}
}

func ruleOfThrees(rule string, expected, actual float64, unit, okMsg, failMsg string) interp.QualityCheck {
	qc := interp.QualityCheck{
		Rule:     rule,
		Expected: fmt.Sprintf("%.1f %s", expected, unit),
		Actual:   fmt.Sprintf("%.1f %s", actual, unit),
	}
	dev := math.Abs(actual-expected) / expected
	qc.Deviation = fmt.Sprintf("%.1f%%", dev*100)
	switch {
	case dev <= deviationPass:
		qc.Severity = interp.SeverityPass
		qc.Interpretation = okMsg
	case dev <= deviationWarn:
		qc.Severity = interp.SeverityWarning
		qc.Interpretation = failMsg
	default:
		qc.Severity = interp.SeverityError
		qc.Interpretation = failMsg + " Deviation exceeds 20%; recollection may be warranted."
	}
	return qc
}

func addIndices(res *interp.Result) {
	wbc, hasWBC := res.Num("WBC")

	if _, reported := res.Num("ANC"); !reported && hasWBC {
		if neut, ok := res.Num("Neutrophils"); ok {
			anc := interp.Round2(wbc * neut / 100)
			res.AddIndex("ANC", interp.Index{
				Value:          interp.Number(anc),
				Formula:        "WBC x Neutrophils% / 100",
				Interpretation: interpretANC(anc),
				Note:           "Derived from the differential; absolute count not reported.",
			})
		}
	}
	if _, reported := res.Num("ALC"); !reported && hasWBC {
		if lymph, ok := res.Num("Lymphocytes"); ok {
			alc := interp.Round2(wbc * lymph / 100)
			res.AddIndex("ALC", interp.Index{
				Value:          interp.Number(alc),
				Formula:        "WBC x Lymphocytes% / 100",
				Interpretation: interpretALC(alc),
				Note:           "Derived from the differential; absolute count not reported.",
			})
		}
	}

	if neut, ok := res.Num("Neutrophils"); ok {
		if lymph, ok := res.Num("Lymphocytes"); ok && lymph > 0 {
			nlr := interp.Round2(neut / lymph)
			interpretation := "NLR within the usual 1-3 range."
			if nlr > 3 {
				interpretation = "Elevated NLR suggests physiologic stress, infection, or inflammation."
			}
			res.AddIndex("NLR", interp.Index{
				Value:          interp.Number(nlr),
				Formula:        "Neutrophils% / Lymphocytes%",
				Interpretation: interpretation,
			})
		}
	}

	if mcv, ok := res.Num("MCV"); ok && res.Status("MCV") == interp.StatusLow {
		if rbc, ok := res.Num("RBC"); ok && rbc > 0 {
			mentzer := interp.Round2(mcv / rbc)
			interpretation := "Mentzer index >13 favors iron deficiency over thalassemia trait."
			if mentzer < 13 {
				interpretation = "Mentzer index <13 favors thalassemia trait; consider hemoglobin electrophoresis."
			}
			res.AddIndex("Mentzer Index", interp.Index{
				Value:          interp.Number(mentzer),
				Formula:        "MCV / RBC",
				Interpretation: interpretation,
				Note:           "Only meaningful in microcytosis.",
			})
		}
	}
}

func interpretANC(anc float64) string {
	switch {
	case anc < 0.5:
		return "Severe neutropenia. High infection risk."
	case anc < 1.0:
		return "Moderate neutropenia."
	case anc < 1.5:
		return "Mild neutropenia."
	case anc > 8.0:
		return "Neutrophilia."
	default:
		return "Absolute neutrophil count within reference limits."
	}
}

func interpretALC(alc float64) string {
	switch {
	case alc < 1.0:
		return "Lymphopenia."
	case alc > 4.0:
		return "Lymphocytosis."
	default:
		return "Absolute lymphocyte count within reference limits."
	}
}

func patternSummary(res *interp.Result) string {
	hb := res.Status("Hemoglobin")
	mcv := res.Status("MCV")
	wbc := res.Status("WBC")
	plt := res.Status("Platelets")

	low := func(s interp.Status) bool { return s == interp.StatusLow || s == interp.StatusCriticalLow }

	var findings []string
	if low(hb) && low(wbc) && low(plt) {
		findings = append(findings, "Pancytopenia: all three cell lines reduced. Consider marrow failure, infiltration, or hypersplenism.")
	} else if low(hb) {
		switch {
		case low(mcv):
			findings = append(findings, "Microcytic anemia. Iron studies and hemoglobin electrophoresis are the usual next steps.")
		case mcv == interp.StatusHigh || mcv == interp.StatusCriticalHigh:
			findings = append(findings, "Macrocytic anemia. Check B12, folate, reticulocytes, and review medications.")
		case mcv == interp.StatusNormal:
			findings = append(findings, "Normocytic anemia. Reticulocyte count separates hypoproliferative from hemolytic/blood-loss causes.")
		default:
			findings = append(findings, "Anemia with red cell indices unavailable.")
		}
	}
	if wbc == interp.StatusHigh || wbc == interp.StatusCriticalHigh {
		findings = append(findings, "Leukocytosis; review the differential for the driving lineage.")
	}
	if low(plt) {
		findings = append(findings, "Thrombocytopenia; exclude pseudothrombocytopenia on smear before acting.")
	}

	if len(findings) == 0 {
		if res.AbnormalCount == 0 {
			return "All evaluated parameters are within reference limits."
		}
		return "Isolated abnormalities without a dominant cytopenia pattern."
	}
	return strings.Join(findings, " ")
}

func recommendations(res *interp.Result) []string {
	var recs []string
	if res.CriticalCount > 0 {
		recs = append(recs, "Critical values present. Confirm on a fresh sample and notify the treating clinician immediately.")
	}
	for _, qc := range res.QualityChecks {
		if qc.Severity == interp.SeverityError {
			recs = append(recs, "Internal consistency check failed; recollect before interpreting the red cell indices.")
			break
		}
	}
	if res.AbnormalCount > 0 {
		recs = append(recs, "Correlate abnormal findings with the peripheral smear and clinical context.")
	}
	return recs
}
