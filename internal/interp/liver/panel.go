// Package liver interprets the liver function panel. Classification follows
// the R value (hepatocellular vs cholestatic vs mixed), with isolated
// hyperbilirubinemia recognized separately, severity graded by fold over
// the upper limit of normal, and synthetic function assessed from albumin,
// PT, and INR.
package liver

import (
	"fmt"

	"github.com/bloodlens/bloodlens/internal/interp"
)

const educational = "Liver Function Tests include both biochemical markers of injury (ALT, AST, ALP) and functional markers of synthetic capacity (albumin, PT/INR). The R value helps classify injury pattern."

var parameters = []string{
	"ALT", "AST", "ALP", "GGT", "Total_Bilirubin", "Direct_Bilirubin",
	"Albumin", "PT", "INR",
}

type Panel struct{}

func New() *Panel { return &Panel{} }

func (p *Panel) Name() string { return "LFT" }

func (p *Panel) Parameters() []string { return parameters }

func (p *Panel) Analyze(values map[string]interp.Value, sex interp.Sex) *interp.Result {
	res := interp.Evaluate(interp.Config{
		Panel:  p.Name(),
		Ranges: referenceRanges,
	}, values, sex)

	alt, hasALT := res.Num("ALT")
	ast, hasAST := res.Num("AST")
	alp, hasALP := res.Num("ALP")
	tbili, _ := res.Num("Total_Bilirubin")

	var rValue float64
	hasR := false
	if hasALT && hasALP && alp > 0 {
		rValue = interp.Round2((alt / altULN(sex)) / (alp / float64(alpULN)))
		hasR = true
		res.AddIndex("R Value", interp.Index{
			Value:          interp.Number(rValue),
			Formula:        "(ALT / ALT ULN) / (ALP / ALP ULN)",
			Interpretation: interpretR(rValue),
			Note: fmt.Sprintf("ALT ULN %s IU/L, ALP ULN %d IU/L",
				interp.FormatNum(altULN(sex)), alpULN),
		})
	}

	pattern := determinePattern(rValue, hasR, alt, ast, alp, tbili)
	attachPatternDifferentials(res, pattern)

	severityGrade, severityDesc, maxFold := severity(res, sex)
	if maxFold > 1 {
		res.AddIndex("Severity", interp.Index{
			Value:          interp.Number(maxFold),
			Formula:        "max(value / ULN) over ALT, AST, ALP",
			Interpretation: severityDesc,
		})
	}

	if hasALT && hasAST && alt > 0 {
		ratio := interp.Round2(ast / alt)
		res.AddIndex("AST/ALT Ratio", interp.Index{
			Value:          interp.Number(ratio),
			Formula:        "AST / ALT",
			Interpretation: interpretASTALT(ratio),
		})
	}

	impaired := syntheticImpaired(res)
	res.PatternSummary = patternSummary(pattern, severityGrade, impaired)
	res.EducationalContent = educationalContent()
	res.Recommendations = recommendations(res, pattern, impaired)
	return res
}

// determinePattern classifies the injury. Normal enzymes with an elevated
// total bilirubin are isolated hyperbilirubinemia regardless of the R value.
func determinePattern(r float64, hasR bool, alt, ast, alp, tbili float64) string {
	if alt <= 40 && ast <= 40 && alp <= alpULN && tbili > 1.0 {
		return "isolated_hyperbilirubinemia"
	}
	if !hasR {
		return ""
	}
	switch {
	case r >= 5:
		return "hepatocellular"
	case r <= 2:
		return "cholestatic"
	default:
		return "mixed"
	}
}

func attachPatternDifferentials(res *interp.Result, pattern string) {
	set, ok := patternDifferentials[pattern]
	if !ok {
		return
	}
	for i, ab := range res.Abnormalities {
		switch ab.Parameter {
		case "ALT", "AST", "ALP", "Total_Bilirubin":
			if ab.Differential == nil {
				res.Abnormalities[i].Differential = &set
				pr := res.Parameters[ab.Parameter]
				pr.Differential = &set
				res.Parameters[ab.Parameter] = pr
			}
		}
	}
}

func interpretR(r float64) string {
	switch {
	case r >= 5:
		return "R >= 5: hepatocellular injury pattern."
	case r <= 2:
		return "R <= 2: cholestatic injury pattern."
	default:
		return "R between 2 and 5: mixed injury pattern."
	}
}

func interpretASTALT(ratio float64) string {
	switch {
	case ratio > 2:
		return fmt.Sprintf("%.2f:1. Suggestive of alcoholic liver disease (AST/ALT >2:1 is characteristic).", ratio)
	case ratio > 1:
		return fmt.Sprintf("%.2f:1. Possible alcoholic component or cirrhosis (AST > ALT can occur in advanced fibrosis).", ratio)
	default:
		return fmt.Sprintf("%.2f:1. Typical of viral hepatitis, NAFLD, or other non-alcoholic hepatocellular injury.", ratio)
	}
}

func severity(res *interp.Result, sex interp.Sex) (grade, desc string, maxFold float64) {
	maxFold = 1.0
	check := func(param string, uln float64) {
		if v, ok := res.Num(param); ok && v > uln {
			if fold := v / uln; fold > maxFold {
				maxFold = fold
			}
		}
	}
	check("ALT", altULN(sex))
	check("AST", astULN(sex))
	check("ALP", alpULN)

	maxFold = interp.Round2(maxFold)
	switch {
	case maxFold < 3:
		return "mild", "<3x ULN. Often monitored; evaluate for causes.", maxFold
	case maxFold < 10:
		return "moderate", "3-10x ULN. Requires systematic workup.", maxFold
	default:
		return "severe", ">10x ULN. Urgent evaluation needed.", maxFold
	}
}

func syntheticImpaired(res *interp.Result) bool {
	if alb, ok := res.Num("Albumin"); ok && alb < 3.3 {
		return true
	}
	if pt, ok := res.Num("PT"); ok && pt > 13 {
		return true
	}
	if inr, ok := res.Num("INR"); ok && inr > 1.1 {
		return true
	}
	return false
}

func patternSummary(pattern, grade string, impaired bool) string {
	var s string
	switch pattern {
	case "hepatocellular":
		s = fmt.Sprintf("Hepatocellular injury pattern, %s severity.", grade)
	case "cholestatic":
		s = fmt.Sprintf("Cholestatic injury pattern, %s severity.", grade)
	case "mixed":
		s = fmt.Sprintf("Mixed hepatocellular-cholestatic pattern, %s severity.", grade)
	case "isolated_hyperbilirubinemia":
		s = "Isolated hyperbilirubinemia with normal liver enzymes. Fractionate bilirubin."
	default:
		s = "Injury pattern indeterminate; ALT and ALP are both required for the R value."
	}
	if impaired {
		s += " Synthetic function is impaired (low albumin, prolonged PT, or elevated INR)."
	}
	return s
}

func educationalContent() []string {
	return []string{
		educational,
		"The R value classifies injury at presentation: R >= 5 hepatocellular, R <= 2 cholestatic, 2-5 mixed.",
		"AST/ALT ratio >2:1 suggests alcoholic liver disease; AST rarely exceeds 300 IU/L in alcoholic hepatitis.",
		"Albumin, PT, and INR reflect synthetic capacity; enzymes reflect injury, not function.",
	}
}

func recommendations(res *interp.Result, pattern string, impaired bool) []string {
	var recs []string
	if res.AbnormalCount == 0 {
		return nil
	}
	recs = append(recs, "Repeat LFTs in 1-2 weeks to confirm persistence if this is a new finding and the patient is asymptomatic.")

	switch pattern {
	case "hepatocellular":
		recs = append(recs,
			"Hepatocellular workup: HBsAg, anti-HBc IgM, anti-HCV, anti-HAV IgM; ANA, ASMA, IgG; ferritin and TIBC; ceruloplasmin if age <40; acetaminophen level if acute and ALT >1000.",
			"Lifestyle assessment: detailed alcohol history (AUDIT), medication and supplement review, metabolic syndrome evaluation, consider FIB-4 score.")
	case "cholestatic":
		recs = append(recs,
			"Imaging priority: RUQ ultrasound with Doppler first-line; dilated ducts warrant MRCP or ERCP, normal ducts warrant AMA (PBC) and p-ANCA (PSC).",
			"Confirm hepatic origin of elevated ALP with GGT or 5'-nucleotidase (vs bone, placental, intestinal).")
	case "mixed":
		recs = append(recs,
			"Comprehensive evaluation: full viral panel (HAV, HBV, HCV, HEV), autoimmune markers (ANA, ASMA, AMA, IgG, IgM), iron and copper studies, imaging, RUCAM for drug assessment.")
	case "isolated_hyperbilirubinemia":
		recs = append(recs,
			"Fractionate bilirubin: predominantly unconjugated and <3 mg/dL with a normal CBC is likely Gilbert syndrome.",
			"Hemolysis workup if indicated: CBC, reticulocyte count, peripheral smear, LDH, haptoglobin, direct Coombs test.")
	}

	inr, _ := res.Num("INR")
	alb, hasAlb := res.Num("Albumin")
	if inr > 1.5 || (hasAlb && alb < 2.5) {
		recs = append(recs, "Synthetic function concern: impaired hepatic synthesis suggests advanced disease. Urgent hepatology referral; evaluate for encephalopathy and consider MELD score.")
	} else if impaired {
		recs = append(recs, "Mildly impaired synthetic markers; trend albumin, PT, and INR alongside the enzyme pattern.")
	}

	recs = append(recs, "Re-evaluate in 4-6 weeks. If persistent, proceed with full workup per the injury pattern; if resolved, a transient insult is likely.")
	return recs
}
