// Package glucose interprets blood sugar and glycemic control markers,
// deriving eAG from HbA1c and HOMA-IR from fasting glucose and insulin, and
// applying the ADA diagnostic cutoffs for diabetes and prediabetes.
package glucose

import (
	"fmt"
	"math"
	"strings"

	"github.com/bloodlens/bloodlens/internal/interp"
)

var parameters = []string{
	"Fasting_Glucose", "Random_Glucose", "PP_Glucose", "HbA1c", "eAG",
	"Insulin", "C_Peptide", "HOMA_IR",
}

var referenceRanges = map[string]interp.RangeTable{
	"Fasting_Glucose": interp.Shared(interp.NewRange(70, 100, "mg/dL").WithCritical(40, 500)),
	"Random_Glucose":  interp.Shared(interp.NewRange(70, 140, "mg/dL").WithCritical(40, 600)),
	"PP_Glucose":      interp.Shared(interp.NewRange(70, 140, "mg/dL").WithCritical(40, 500)),
	"HbA1c":           interp.Shared(interp.NewRange(4.0, 5.6, "%").WithCritical(3.0, 15.0)),
	"eAG":             interp.Shared(interp.NewRange(70, 114, "mg/dL").WithCritical(50, 400)),
	"Insulin":         interp.Shared(interp.NewRange(2.6, 24.9, "uIU/mL").WithCritical(0, 200)),
	"C_Peptide":       interp.Shared(interp.NewRange(0.8, 3.1, "ng/mL").WithCritical(0, 20)),
	"HOMA_IR":         interp.Shared(interp.NewRange(0, 2.5, "").WithCritical(0, 25)),
}

var differentials = map[string]map[string]interp.DifferentialSet{
	"Fasting_Glucose": {
		"high": {
			Title: "Elevated Fasting Glucose",
			Differentials: []interp.Differential{
				{Condition: "Diabetes Mellitus", Discussion: "FBG >=126 mg/dL on two occasions = diabetes. Type 2 most common (>90%). Check HbA1c for confirmation."},
				{Condition: "Impaired Fasting Glucose (Prediabetes)", Discussion: "FBG 100-125 mg/dL. 5-10% annual conversion to diabetes. Lifestyle intervention reduces risk by 58%."},
				{Condition: "Stress Hyperglycemia", Discussion: "Acute illness, surgery, trauma, corticosteroids cause transient elevation. Repeat after recovery."},
				{Condition: "Cushing Syndrome", Discussion: "Cortisol excess causes insulin resistance. Check 24-hour urine cortisol, overnight dexamethasone suppression."},
				{Condition: "Medications", Discussion: "Corticosteroids, thiazides, atypical antipsychotics, tacrolimus, niacin."},
			},
		},
		"low": {
			Title: "Hypoglycemia",
			Differentials: []interp.Differential{
				{Condition: "Insulin/Sulfonylurea Excess", Discussion: "Most common cause in diabetics. Check insulin, C-peptide, sulfonylurea screen. Whipple triad required."},
				{Condition: "Insulinoma", Discussion: "Beta-cell tumor. Inappropriately high insulin and C-peptide with low glucose. 72-hour fast for diagnosis."},
				{Condition: "Adrenal Insufficiency", Discussion: "Cortisol deficiency impairs gluconeogenesis. Check morning cortisol, ACTH stimulation test."},
				{Condition: "Liver Failure", Discussion: "Impaired gluconeogenesis and glycogenolysis in severe hepatic disease."},
				{Condition: "Sepsis", Discussion: "Increased glucose utilization and impaired gluconeogenesis."},
			},
		},
	},
	"HbA1c": {
		"high": {
			Title: "Elevated HbA1c",
			Differentials: []interp.Differential{
				{Condition: "Diabetes Mellitus", Discussion: "HbA1c >=6.5% = diabetes. Reflects average glucose over 2-3 months. Target <7% for most adults (ADA)."},
				{Condition: "Prediabetes", Discussion: "HbA1c 5.7-6.4%. Increased risk of diabetes. Lifestyle modification recommended."},
				{Condition: "Falsely Elevated", Discussion: "Iron deficiency anemia, asplenia, uremia, hypertriglyceridemia can falsely elevate HbA1c. Consider fructosamine in these cases."},
			},
		},
		"low": {
			Title: "Low HbA1c",
			Differentials: []interp.Differential{
				{Condition: "Hemolytic Anemia", Discussion: "Shortened RBC lifespan reduces glycation time, falsely lowering HbA1c."},
				{Condition: "Recent Transfusion", Discussion: "Donor RBCs dilute glycated hemoglobin."},
				{Condition: "Hemoglobin Variants", Discussion: "HbS, HbC, HbE can cause falsely low or high HbA1c depending on assay method."},
			},
		},
	},
	"HOMA_IR": {
		"high": {
			Title: "Elevated HOMA-IR (Insulin Resistance)",
			Differentials: []interp.Differential{
				{Condition: "Metabolic Syndrome", Discussion: "Central obesity, dyslipidemia, hypertension, hyperglycemia. HOMA-IR >2.5 suggests insulin resistance."},
				{Condition: "PCOS", Discussion: "Insulin resistance is a key feature of polycystic ovary syndrome."},
				{Condition: "Non-Alcoholic Fatty Liver Disease", Discussion: "Strong association with insulin resistance."},
				{Condition: "Type 2 Diabetes (early)", Discussion: "Insulin resistance precedes hyperglycemia by years."},
			},
		},
	},
}

type Panel struct{}

func New() *Panel { return &Panel{} }

func (p *Panel) Name() string { return "Sugar" }

func (p *Panel) Parameters() []string { return parameters }

func (p *Panel) Analyze(values map[string]interp.Value, sex interp.Sex) *interp.Result {
	res := interp.Evaluate(interp.Config{
		Panel:         p.Name(),
		Ranges:        referenceRanges,
		Differentials: differentials,
	}, values, sex)

	hba1c, hasA1c := res.Num("HbA1c")
	if hasA1c {
		eag := math.Round(28.7*hba1c - 46.7)
		res.AddIndex("Calculated eAG", interp.Index{
			Value:          interp.Number(eag),
			Formula:        "eAG = 28.7 x HbA1c - 46.7",
			Interpretation: fmt.Sprintf("%s mg/dL", interp.FormatNum(eag)),
			Note:           "Estimated average glucose from HbA1c",
		})
	}

	fasting, hasFasting := res.Num("Fasting_Glucose")
	if insulin, ok := res.Num("Insulin"); ok && hasFasting {
		homa := interp.Round2(fasting * insulin / 405)
		interpretation := fmt.Sprintf("%.2f: Normal (<2.5)", homa)
		if homa >= 2.5 {
			interpretation = fmt.Sprintf("%.2f: Insulin resistant (>=2.5)", homa)
		}
		res.AddIndex("Calculated HOMA-IR", interp.Index{
			Value:          interp.Number(homa),
			Formula:        "(Fasting Glucose x Fasting Insulin) / 405",
			Interpretation: interpretation,
			Note:           "<1.0 = insulin sensitive; 1.0-2.5 = normal; >2.5 = insulin resistant",
		})
	}

	var patterns []string
	if hasFasting {
		if fasting >= 126 {
			patterns = append(patterns, "Fasting glucose >=126: diagnostic of diabetes (if confirmed).")
		} else if fasting >= 100 {
			patterns = append(patterns, "Fasting glucose 100-125: impaired fasting glucose (prediabetes).")
		}
	}
	if hasA1c {
		if hba1c >= 6.5 {
			patterns = append(patterns, "HbA1c >=6.5%: diagnostic of diabetes.")
		} else if hba1c >= 5.7 {
			patterns = append(patterns, "HbA1c 5.7-6.4%: prediabetes.")
		}
	}
	res.PatternSummary = strings.Join(patterns, " ")

	res.EducationalContent = []string{
		"Blood glucose assessment includes acute (fasting/random glucose) and chronic (HbA1c) measurements. HOMA-IR quantifies insulin resistance. C-peptide distinguishes endogenous from exogenous insulin.",
		"Diagnostic criteria for diabetes: FBG >=126 mg/dL, HbA1c >=6.5%, 2-hr OGTT >=200, or random glucose >=200 with symptoms. Two abnormal tests needed (can be the same sample).",
		"HbA1c is falsely low in hemolysis, transfusion, and hemoglobinopathies, and falsely high in iron deficiency and splenectomy. Use fructosamine or CGM when unreliable.",
		"Hypoglycemia workup requires the Whipple triad: symptoms + low glucose + resolution with correction. Check insulin, C-peptide, proinsulin, and a sulfonylurea screen during the episode.",
		"C-peptide is produced 1:1 with insulin. Low C-peptide with high insulin = exogenous insulin; high C-peptide with high insulin = endogenous (insulinoma, sulfonylurea).",
	}
	return res
}
