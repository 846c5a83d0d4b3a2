// Package urinalysis interprets urine routine and microscopy. Dipstick and
// microscopy findings reported as text classify against an accepted-normal
// vocabulary; cell counts and ratios classify quantitatively. Pattern rules
// cover UTI (composite of nitrite, leukocyte esterase, pyuria, bacteriuria)
// and albuminuria staging from the ACR.
package urinalysis

import (
	"strings"

	"github.com/bloodlens/bloodlens/internal/interp"
)

var parameters = []string{
	"Urine_Color", "Urine_Appearance", "Urine_pH", "Specific_Gravity",
	"Urine_Protein", "Urine_Glucose", "Urine_Ketones", "Urine_Bilirubin",
	"Urine_Urobilinogen", "Urine_Blood", "Urine_Nitrite", "Urine_Leukocyte_Esterase",
	"Urine_RBC", "Urine_WBC", "Urine_Epithelial", "Urine_Casts", "Urine_Crystals",
	"Urine_Bacteria", "Urine_Yeast",
	"Protein_Creatinine_Ratio", "Albumin_Creatinine_Ratio", "Microalbumin",
}

var referenceRanges = map[string]interp.RangeTable{
	"Urine_pH":                 interp.Shared(interp.NewRange(4.5, 8.0, "").WithCritical(4.0, 9.0)),
	"Specific_Gravity":         interp.Shared(interp.NewRange(1.005, 1.030, "").WithCritical(1.000, 1.050)),
	"Urine_RBC":                interp.Shared(interp.NewRange(0, 2, "/hpf").WithCritical(0, 100)),
	"Urine_WBC":                interp.Shared(interp.NewRange(0, 5, "/hpf").WithCritical(0, 200)),
	"Urine_Epithelial":         interp.Shared(interp.NewRange(0, 5, "/hpf").WithCritical(0, 100)),
	"Protein_Creatinine_Ratio": interp.Shared(interp.NewRange(0, 150, "mg/g").WithCritical(0, 5000)),
	"Albumin_Creatinine_Ratio": interp.Shared(interp.NewRange(0, 30, "mg/g").WithCritical(0, 5000)),
	"Microalbumin":             interp.Shared(interp.NewRange(0, 30, "mg/L").WithCritical(0, 500)),
}

// Accepted-normal vocabulary for qualitative findings. Matching is
// case-insensitive substring.
var qualitativeNormals = map[string][]string{
	"Urine_Color":              {"pale yellow", "yellow", "straw", "amber"},
	"Urine_Appearance":         {"clear", "slightly hazy"},
	"Urine_Protein":            {"negative", "nil", "absent", "trace"},
	"Urine_Glucose":            {"negative", "nil", "absent"},
	"Urine_Ketones":            {"negative", "nil", "absent"},
	"Urine_Bilirubin":          {"negative", "nil", "absent"},
	"Urine_Urobilinogen":       {"normal", "negative", "<1.0", "0.2"},
	"Urine_Blood":              {"negative", "nil", "absent"},
	"Urine_Nitrite":            {"negative", "nil", "absent"},
	"Urine_Leukocyte_Esterase": {"negative", "nil", "absent"},
	"Urine_Casts":              {"none", "nil", "absent", "none seen", "occasional hyaline"},
	"Urine_Crystals":           {"none", "nil", "absent", "none seen"},
	"Urine_Bacteria":           {"none", "nil", "absent", "none seen", "few"},
	"Urine_Yeast":              {"none", "nil", "absent", "none seen"},
}

var differentials = map[string]map[string]interp.DifferentialSet{
	"Urine_Protein": {
		"abnormal": {
			Title: "Proteinuria",
			Differentials: []interp.Differential{
				{Condition: "Diabetic Nephropathy", Discussion: "Most common cause of nephrotic-range proteinuria. Microalbuminuria is earliest sign. Screen annually in diabetics."},
				{Condition: "Glomerulonephritis", Discussion: "Immune-mediated. IgA nephropathy most common worldwide. Check complement, ANA, ANCA, anti-GBM."},
				{Condition: "Orthostatic Proteinuria", Discussion: "Benign condition in young adults. Protein present only when upright. Split urine collection for diagnosis."},
				{Condition: "Overflow Proteinuria", Discussion: "Multiple myeloma (Bence Jones protein), myoglobinuria. Dipstick may be negative (detects albumin, not globulins)."},
			},
		},
	},
	"Urine_Blood": {
		"abnormal": {
			Title: "Hematuria",
			Differentials: []interp.Differential{
				{Condition: "UTI", Discussion: "Most common cause. Dysuria, frequency, positive nitrite/leukocyte esterase. Culture for confirmation."},
				{Condition: "Nephrolithiasis", Discussion: "Renal colic + hematuria. CT KUB for diagnosis. RBC without casts."},
				{Condition: "Glomerulonephritis", Discussion: "RBC casts = glomerular origin. Dysmorphic RBCs. IgA nephropathy, post-infectious, lupus nephritis."},
				{Condition: "Bladder/Renal Cancer", Discussion: "Painless gross hematuria in adults >40. Cystoscopy and imaging required. Risk factors: smoking, chemical exposure."},
				{Condition: "Contamination/Menstruation", Discussion: "Always consider in females. Clean catch technique important."},
			},
		},
	},
	"Urine_Glucose": {
		"abnormal": {
			Title: "Glucosuria",
			Differentials: []interp.Differential{
				{Condition: "Diabetes Mellitus", Discussion: "Glucose spills into urine when blood glucose exceeds renal threshold (~180 mg/dL). Not a screening test for DM."},
				{Condition: "Renal Glycosuria", Discussion: "Low renal glucose threshold. Benign. Normal blood glucose. Can occur in pregnancy, Fanconi syndrome."},
				{Condition: "SGLT2 Inhibitors", Discussion: "Mechanism of action causes intentional glucosuria. Expected finding on medication."},
			},
		},
	},
	"Urine_WBC": {
		"high": {
			Title: "Pyuria (Elevated Urine WBC)",
			Differentials: []interp.Differential{
				{Condition: "Urinary Tract Infection", Discussion: "WBC >5/hpf with positive nitrite and/or leukocyte esterase strongly suggests UTI. Culture >100,000 CFU/mL."},
				{Condition: "Sterile Pyuria", Discussion: "WBCs without bacteria. Consider: TB, interstitial nephritis, nephrolithiasis, contamination, recently treated UTI, STI (chlamydia)."},
				{Condition: "Interstitial Nephritis", Discussion: "Drug-induced (NSAIDs, antibiotics, PPI). WBC casts, eosinophiluria. Urine eosinophil stain (Hansel)."},
			},
		},
	},
}

type Panel struct{}

func New() *Panel { return &Panel{} }

func (p *Panel) Name() string { return "Urine" }

func (p *Panel) Parameters() []string { return parameters }

func (p *Panel) Analyze(values map[string]interp.Value, sex interp.Sex) *interp.Result {
	res := interp.Evaluate(interp.Config{
		Panel:         p.Name(),
		Ranges:        referenceRanges,
		Qualitative:   qualitativeNormals,
		Differentials: differentials,
	}, values, sex)

	var patterns []string
	if signs := utiSigns(values); signs >= 2 {
		patterns = append(patterns, "UTI pattern: multiple findings suggest urinary tract infection. Recommend urine culture.")
	}

	if acr, ok := res.Num("Albumin_Creatinine_Ratio"); ok {
		if acr >= 300 {
			patterns = append(patterns, "Macroalbuminuria (ACR >=300): significant proteinuria. Evaluate for diabetic/glomerular disease.")
		} else if acr >= 30 {
			patterns = append(patterns, "Microalbuminuria (ACR 30-299): early nephropathy. Optimize BP and glucose control.")
		}
	}

	res.PatternSummary = strings.Join(patterns, " ")
	res.EducationalContent = []string{
		"Urine Routine & Microscopy provides non-invasive assessment of kidney and urinary tract. Dipstick screening plus microscopy for cellular elements, casts, and crystals.",
		"Nitrite + leukocyte esterase + pyuria (>5 WBC/hpf) strongly suggests UTI, but nitrite is negative with some organisms (enterococci, pseudomonas). Gold standard: culture >100,000 CFU/mL.",
		"RBC casts localize hematuria to the glomerulus; dysmorphic RBCs also suggest glomerular origin. Non-dysmorphic RBCs suggest lower urinary tract.",
		"ACR 30-299 mg/g = microalbuminuria, the first sign of diabetic nephropathy. Screen all diabetics annually; ACE inhibitor/ARB reduces progression.",
		"Specific gravity: low (<1.005) = dilute (diabetes insipidus, water intoxication); high (>1.030) = concentrated (dehydration, SIADH, contrast dye); fixed at 1.010 = isosthenuria (renal tubular damage).",
	}
	return res
}

// utiSigns counts the composite findings: positive nitrite, positive
// leukocyte esterase, pyuria >5/hpf, and moderate-or-more bacteriuria.
func utiSigns(values map[string]interp.Value) int {
	text := func(param string) string {
		return strings.ToLower(values[param].String())
	}
	positive := func(s string) bool {
		return strings.Contains(s, "positive") || strings.Contains(s, "+")
	}

	signs := 0
	if positive(text("Urine_Nitrite")) {
		signs++
	}
	if positive(text("Urine_Leukocyte_Esterase")) {
		signs++
	}
	if wbc, ok := values["Urine_WBC"].Float(); ok && wbc > 5 {
		signs++
	}
	bacteria := text("Urine_Bacteria")
	if strings.Contains(bacteria, "many") || strings.Contains(bacteria, "moderate") || strings.Contains(bacteria, "++") {
		signs++
	}
	return signs
}
