// Package lipid interprets the lipid profile. Lower bounds act as treatment
// targets rather than physiologic floors, so low values are flagged only
// for parameters with a protective floor (HDL, ApoA1).
package lipid

import (
	"fmt"

	"github.com/bloodlens/bloodlens/internal/interp"
)

var parameters = []string{
	"Total_Cholesterol", "HDL", "LDL", "VLDL", "Triglycerides", "Non_HDL",
	"TC_HDL_Ratio", "LDL_HDL_Ratio", "ApoA1", "ApoB", "Lp_a",
}

var referenceRanges = map[string]interp.RangeTable{
	"Total_Cholesterol": interp.Shared(interp.NewRange(0, 200, "mg/dL").WithCritical(0, 500)),
	"HDL": interp.BySex(
		interp.NewRange(40, 60, "mg/dL").WithCritical(10, 120),
		interp.NewRange(50, 60, "mg/dL").WithCritical(10, 120),
		interp.NewRange(40, 60, "mg/dL").WithCritical(10, 120),
	),
	"LDL":           interp.Shared(interp.NewRange(0, 100, "mg/dL").WithCritical(0, 500)),
	"VLDL":          interp.Shared(interp.NewRange(2, 30, "mg/dL").WithCritical(0, 100)),
	"Triglycerides": interp.Shared(interp.NewRange(0, 150, "mg/dL").WithCritical(0, 1000)),
	"Non_HDL":       interp.Shared(interp.NewRange(0, 130, "mg/dL").WithCritical(0, 400)),
	"TC_HDL_Ratio":  interp.Shared(interp.NewRange(0, 4.5, "").WithCritical(0, 15)),
	"LDL_HDL_Ratio": interp.Shared(interp.NewRange(0, 3.0, "").WithCritical(0, 10)),
	"ApoA1":         interp.Shared(interp.NewRange(120, 180, "mg/dL").WithCritical(50, 250)),
	"ApoB":          interp.Shared(interp.NewRange(40, 100, "mg/dL").WithCritical(20, 250)),
	"Lp_a":          interp.Shared(interp.NewRange(0, 75, "nmol/L").WithCritical(0, 500)),
}

var differentials = map[string]map[string]interp.DifferentialSet{
	"Total_Cholesterol": {
		"high": {
			Title: "Hypercholesterolemia",
			Differentials: []interp.Differential{
				{Condition: "Primary/Familial Hypercholesterolemia", Discussion: "Genetic disorder of LDL receptor. FH heterozygous: TC 300-500. FH homozygous: TC >500. Tendon xanthomas, premature ASCVD."},
				{Condition: "Dietary/Lifestyle", Discussion: "High saturated fat intake, sedentary lifestyle. Most common cause."},
				{Condition: "Hypothyroidism", Discussion: "Reduced LDL receptor expression. Always check TSH in new hypercholesterolemia."},
				{Condition: "Nephrotic Syndrome", Discussion: "Hepatic overproduction of lipoproteins in response to albumin loss."},
				{Condition: "Medications", Discussion: "Corticosteroids, thiazides, retinoids, cyclosporine, protease inhibitors."},
			},
		},
	},
	"Triglycerides": {
		"high": {
			Title: "Hypertriglyceridemia",
			Differentials: []interp.Differential{
				{Condition: "Metabolic Syndrome/Insulin Resistance", Discussion: "Most common cause. Associated with central obesity, low HDL, hyperglycemia, hypertension."},
				{Condition: "Diabetes Mellitus", Discussion: "Insulin deficiency impairs lipoprotein lipase activity. TG >500 risk of pancreatitis."},
				{Condition: "Alcohol Use", Discussion: "Alcohol stimulates hepatic VLDL production. Can cause massive hypertriglyceridemia."},
				{Condition: "Medications", Discussion: "Estrogens, beta-blockers, thiazides, retinoids, atypical antipsychotics."},
				{Condition: "Familial Hypertriglyceridemia", Discussion: "Genetic disorders of triglyceride metabolism. Type I (LPL deficiency): TG >1000."},
			},
		},
	},
	"HDL": {
		"low": {
			Title: "Low HDL-Cholesterol",
			Differentials: []interp.Differential{
				{Condition: "Metabolic Syndrome", Discussion: "Low HDL is a key component. Associated with insulin resistance, central obesity."},
				{Condition: "Smoking", Discussion: "Reduces HDL by 5-10 mg/dL. Cessation partially reverses this."},
				{Condition: "Sedentary Lifestyle", Discussion: "Regular aerobic exercise raises HDL by 5-10%."},
				{Condition: "Medications", Discussion: "Beta-blockers, anabolic steroids, progestins."},
			},
		},
	},
	"LDL": {
		"high": {
			Title: "Elevated LDL-Cholesterol",
			Differentials: []interp.Differential{
				{Condition: "Familial Hypercholesterolemia", Discussion: "Genetic LDL receptor dysfunction. Dutch Lipid Clinic Network Score for diagnosis. Early statin therapy critical."},
				{Condition: "Dietary", Discussion: "High saturated fat and cholesterol intake."},
				{Condition: "Secondary Causes", Discussion: "Hypothyroidism, nephrotic syndrome, obstructive liver disease, anorexia nervosa."},
			},
		},
	},
	"Lp_a": {
		"high": {
			Title: "Elevated Lipoprotein(a)",
			Differentials: []interp.Differential{
				{Condition: "Genetic (Primary)", Discussion: "Lp(a) levels are >90% genetically determined. Independent ASCVD risk factor. >50 mg/dL (>125 nmol/L) = high risk. Not significantly modifiable by lifestyle. PCSK9 inhibitors reduce by ~25%."},
			},
		},
	},
}

var learning = map[string]string{
	"Total_Cholesterol": "Desirable <200, Borderline 200-239, High >=240 mg/dL. Sum of HDL + LDL + VLDL.",
	"LDL":               "Primary target for therapy. Goals vary by risk: <70 very high risk, <100 high risk, <130 moderate, <160 low risk. Friedewald: LDL = TC - HDL - (TG/5) if TG<400.",
	"HDL":               "Protective factor. <40 (men) or <50 (women) is low. >60 is protective. Exercise, moderate alcohol, and niacin raise HDL.",
	"Triglycerides":     "Normal <150, Borderline 150-199, High 200-499, Very High >=500 (pancreatitis risk). Fasting sample required for accuracy.",
}

type Panel struct{}

func New() *Panel { return &Panel{} }

func (p *Panel) Name() string { return "Lipid" }

func (p *Panel) Parameters() []string { return parameters }

func (p *Panel) Analyze(values map[string]interp.Value, sex interp.Sex) *interp.Result {
	res := interp.Evaluate(interp.Config{
		Panel:         p.Name(),
		Ranges:        referenceRanges,
		Differentials: differentials,
		Learning:      learning,
		Desirable:     true,
	}, values, sex)

	tc, hasTC := res.Num("Total_Cholesterol")
	hdl, hasHDL := res.Num("HDL")
	ldl, hasLDL := res.Num("LDL")
	tg, hasTG := res.Num("Triglycerides")

	if hasTC && hasHDL && hdl > 0 {
		ratio := interp.Round2(tc / hdl)
		interpretation := fmt.Sprintf("%.1f: Optimal (<4.5)", ratio)
		if ratio >= 4.5 {
			interpretation = fmt.Sprintf("%.1f: Elevated (increased CV risk)", ratio)
		}
		res.AddIndex("TC/HDL Ratio", interp.Index{
			Value:          interp.Number(ratio),
			Formula:        "TC / HDL",
			Interpretation: interpretation,
			Note:           "Optimal <4.5 for men, <4.0 for women",
		})
	}

	if hasTC && hasHDL {
		nonHDL := tc - hdl
		interpretation := fmt.Sprintf("%s mg/dL: Optimal (<130)", interp.FormatNum(nonHDL))
		if nonHDL >= 130 {
			interpretation = fmt.Sprintf("%s mg/dL: Elevated (target is LDL goal + 30)", interp.FormatNum(nonHDL))
		}
		res.AddIndex("Non-HDL Cholesterol", interp.Index{
			Value:          interp.Number(nonHDL),
			Formula:        "TC - HDL",
			Interpretation: interpretation,
			Note:           "Better predictor than LDL alone, includes all atherogenic particles",
		})
	}

	if hasTC && hasHDL && hasTG && tg < 400 {
		calcLDL := interp.Round2(tc - hdl - tg/5)
		res.AddIndex("Friedewald LDL", interp.Index{
			Value:          interp.Number(calcLDL),
			Formula:        "TC - HDL - (TG/5)",
			Interpretation: fmt.Sprintf("%s mg/dL (calculated; valid if TG <400)", interp.FormatNum(calcLDL)),
			Note:           "Compare with directly measured LDL if available",
		})
	}

	if hasTG && tg >= 500 {
		res.AddIndex("Pancreatitis Risk", interp.Index{
			Value:          interp.Number(tg),
			Formula:        "TG >= 500 mg/dL",
			Interpretation: "Triglycerides >=500 mg/dL carry significant risk of acute pancreatitis.",
			Note:           "Immediate treatment needed: fibrates, dietary restriction, consider insulin if DKA",
		})
	}

	res.PatternSummary = patternSummary(ldl, hasLDL, tg, hasTG)
	res.EducationalContent = educationalContent()
	return res
}

func patternSummary(ldl float64, hasLDL bool, tg float64, hasTG bool) string {
	var s string
	if hasLDL {
		s = "LDL assessment: " + ldlBand(ldl) + "."
	}
	if hasTG {
		if s != "" {
			s += " "
		}
		s += "Triglyceride assessment: " + tgBand(tg) + "."
	}
	return s
}

func ldlBand(ldl float64) string {
	switch {
	case ldl < 70:
		return "At optimal level for very high-risk patients"
	case ldl < 100:
		return "Optimal for high-risk; above goal for very high-risk"
	case ldl < 130:
		return "Near/above optimal; above goal for most patients with risk factors"
	case ldl < 160:
		return "Borderline high"
	case ldl < 190:
		return "High"
	default:
		return "Very high; consider familial hypercholesterolemia screening"
	}
}

func tgBand(tg float64) string {
	switch {
	case tg < 150:
		return "Normal"
	case tg < 200:
		return "Borderline (150-199)"
	case tg < 500:
		return "High (200-499)"
	default:
		return "VERY HIGH (>=500), pancreatitis risk"
	}
}

func educationalContent() []string {
	return []string{
		"The Lipid Profile assesses cardiovascular risk. LDL is the primary treatment target. Non-HDL cholesterol captures all atherogenic particles. Triglycerides >500 carry pancreatitis risk.",
		"ACC/AHA guidelines focus on statin intensity based on 10-year ASCVD risk rather than specific LDL targets, though LDL goals are still used clinically.",
		"Non-HDL cholesterol (TC minus HDL) captures all atherogenic particles including VLDL and IDL. It is the secondary target when TG is elevated.",
		"The Friedewald equation is inaccurate when TG >400 or in non-fasting samples. The Martin-Hopkins equation is more accurate at low LDL and high TG.",
		"Lp(a) >50 mg/dL (>125 nmol/L) is an independent ASCVD risk factor. Screen once in a lifetime; not significantly modifiable by lifestyle.",
		"TG >=500 carries pancreatitis risk. TG >1000: very high risk; consider LPL deficiency.",
	}
}
