// Package oncology interprets tumor markers. These are target-floor
// ranges: elevation is the finding, and the primary clinical use is
// monitoring treatment response rather than screening.
package oncology

import (
	"fmt"
	"strings"

	"github.com/bloodlens/bloodlens/internal/interp"
)

var parameters = []string{
	"AFP", "CEA", "Onco_LDH", "Beta2_Microglobulin",
	"CA_19_9", "CA_72_4", "CA_15_3", "CA_27_29", "CA_125", "HE4", "ROMA_Index",
	"Total_PSA", "Free_PSA", "PSA_Ratio", "Beta_hCG",
	"NSE", "CYFRA_21_1", "SCC", "ProGRP",
	"Calcitonin", "Onco_Thyroglobulin", "Chromogranin_A", "Ki_67",
}

var referenceRanges = map[string]interp.RangeTable{
	"AFP":                 interp.Shared(interp.NewRange(0, 10, "ng/mL").WithCritical(0, 50000)),
	"CEA":                 interp.Shared(interp.NewRange(0, 3.0, "ng/mL").WithCritical(0, 1000)),
	"Onco_LDH":            interp.Shared(interp.NewRange(140, 280, "IU/L").WithCritical(50, 5000)),
	"Beta2_Microglobulin": interp.Shared(interp.NewRange(0.8, 2.4, "mg/L").WithCritical(0, 30)),
	"CA_19_9":             interp.Shared(interp.NewRange(0, 37, "U/mL").WithCritical(0, 50000)),
	"CA_72_4":             interp.Shared(interp.NewRange(0, 6.9, "U/mL").WithCritical(0, 500)),
	"CA_15_3":             interp.Shared(interp.NewRange(0, 30, "U/mL").WithCritical(0, 500)),
	"CA_27_29":            interp.Shared(interp.NewRange(0, 38, "U/mL").WithCritical(0, 500)),
	"CA_125":              interp.Shared(interp.NewRange(0, 35, "U/mL").WithCritical(0, 5000)),
	"HE4":                 interp.Shared(interp.NewRange(0, 140, "pmol/L").WithCritical(0, 2000)),
	"ROMA_Index":          interp.Shared(interp.NewRange(0, 11.4, "%").WithCritical(0, 100)),
	"Total_PSA":           interp.Shared(interp.NewRange(0, 4.0, "ng/mL").WithCritical(0, 500)),
	"Free_PSA":            interp.Shared(interp.NewRange(0, 100, "ng/mL").WithCritical(0, 100)),
	"PSA_Ratio":           interp.Shared(interp.NewRange(25, 100, "%").WithCritical(0, 100)),
	"Beta_hCG": {
		Male:    interp.NewRange(0, 2.0, "mIU/mL").WithCritical(0, 500000),
		Female:  interp.NewRange(0, 5.0, "mIU/mL").WithCritical(0, 500000),
		Default: interp.NewRange(0, 5.0, "mIU/mL").WithCritical(0, 500000),
	},
	"NSE":        interp.Shared(interp.NewRange(0, 16.3, "ng/mL").WithCritical(0, 200)),
	"CYFRA_21_1": interp.Shared(interp.NewRange(0, 3.3, "ng/mL").WithCritical(0, 200)),
	"SCC":        interp.Shared(interp.NewRange(0, 1.5, "ng/mL").WithCritical(0, 100)),
	"ProGRP":     interp.Shared(interp.NewRange(0, 68, "pg/mL").WithCritical(0, 5000)),
	"Calcitonin": {
		Male:    interp.NewRange(0, 8.4, "pg/mL").WithCritical(0, 1000),
		Female:  interp.NewRange(0, 5.0, "pg/mL").WithCritical(0, 1000),
		Default: interp.NewRange(0, 8.4, "pg/mL").WithCritical(0, 1000),
	},
	"Onco_Thyroglobulin": interp.Shared(interp.NewRange(0, 55, "ng/mL").WithCritical(0, 500)),
	"Chromogranin_A":     interp.Shared(interp.NewRange(0, 100, "ng/mL").WithCritical(0, 1000)),
	"Ki_67":              interp.Shared(interp.NewRange(0, 10, "%").WithCritical(0, 100)),
}

var differentials = map[string]map[string]interp.DifferentialSet{
	"AFP": {
		"high": {
			Title: "Elevated AFP",
			Differentials: []interp.Differential{
				{Condition: "Hepatocellular Carcinoma", Discussion: "AFP >400 ng/mL in cirrhotic patient is highly suggestive. Screening: AFP + US every 6 months in cirrhosis. Sensitivity ~60%."},
				{Condition: "Germ Cell Tumors", Discussion: "Nonseminomatous germ cell tumors (yolk sac tumor). Also elevated in testicular teratoma. Part of tumor marker panel with beta-hCG and LDH."},
				{Condition: "Pregnancy", Discussion: "AFP rises during normal pregnancy. Abnormal levels in pregnancy may indicate neural tube defects or chromosomal abnormalities."},
				{Condition: "Chronic Liver Disease", Discussion: "Mild elevation (<100) can be seen in cirrhosis, chronic hepatitis without HCC."},
			},
		},
	},
	"CEA": {
		"high": {
			Title: "Elevated CEA",
			Differentials: []interp.Differential{
				{Condition: "Colorectal Cancer", Discussion: "Primary use: monitoring treatment response and recurrence. Not for screening. Preop level >5 = worse prognosis. Rising CEA post-resection suggests recurrence."},
				{Condition: "Other GI Cancers", Discussion: "Pancreatic, gastric, esophageal cancers can elevate CEA."},
				{Condition: "Lung Cancer", Discussion: "Especially adenocarcinoma. Non-specific."},
				{Condition: "Smoking", Discussion: "Smokers have higher baseline CEA (up to 5-10 ng/mL). Always interpret in context."},
				{Condition: "Benign Conditions", Discussion: "IBD, pancreatitis, hypothyroidism, liver disease can mildly elevate CEA."},
			},
		},
	},
	"CA_125": {
		"high": {
			Title: "Elevated CA 125",
			Differentials: []interp.Differential{
				{Condition: "Epithelial Ovarian Cancer", Discussion: "Elevated in ~80% of epithelial ovarian cancers. Better for serous type. Use with HE4 (ROMA index) for risk assessment. Poor screening test due to low specificity."},
				{Condition: "Endometriosis", Discussion: "Commonly elevated, especially during menstruation. Not useful for diagnosis."},
				{Condition: "Other Cancers", Discussion: "Endometrial, fallopian tube, peritoneal, breast, lung, pancreatic."},
				{Condition: "Benign Conditions", Discussion: "Pregnancy, PID, cirrhosis, heart failure, pleural/peritoneal effusions. Any peritoneal inflammation."},
			},
		},
	},
	"Total_PSA": {
		"high": {
			Title: "Elevated PSA",
			Differentials: []interp.Differential{
				{Condition: "Prostate Cancer", Discussion: "PSA 4-10: ~25% chance of cancer. >10: ~50% chance. PSA velocity >0.75/year and low free/total ratio (<25%) increase suspicion. MRI fusion biopsy for diagnosis."},
				{Condition: "BPH", Discussion: "Most common cause of PSA elevation. BPH contributes ~0.3 ng/mL per gram of tissue. Free/total ratio usually >25%."},
				{Condition: "Prostatitis", Discussion: "Acute prostatitis can dramatically elevate PSA. Wait 6-8 weeks after treatment to recheck."},
				{Condition: "Recent Procedures", Discussion: "DRE causes minimal rise. Prostate biopsy, TURP, catheterization can significantly elevate PSA. Wait 6 weeks."},
			},
		},
	},
	"Beta_hCG": {
		"high": {
			Title: "Elevated Beta-hCG",
			Differentials: []interp.Differential{
				{Condition: "Pregnancy", Discussion: "Always the first consideration in women of reproductive age. Doubles every 48 hours in early normal pregnancy."},
				{Condition: "Germ Cell Tumors", Discussion: "Seminoma, choriocarcinoma, embryonal carcinoma. Testicular or extragonadal. Part of GCT staging with AFP and LDH."},
				{Condition: "Gestational Trophoblastic Disease", Discussion: "Hydatidiform mole, choriocarcinoma. Very high levels (>100,000). US shows snowstorm pattern."},
			},
		},
	},
	"Calcitonin": {
		"high": {
			Title: "Elevated Calcitonin",
			Differentials: []interp.Differential{
				{Condition: "Medullary Thyroid Cancer (MTC)", Discussion: "Calcitonin is the primary tumor marker. >100 pg/mL highly suspicious for MTC. Screen in MEN2 families. Pentagastrin stimulation test for borderline values."},
				{Condition: "C-Cell Hyperplasia", Discussion: "Precursor to MTC in MEN2. Mildly elevated calcitonin."},
				{Condition: "Other Cancers", Discussion: "Small cell lung cancer, carcinoid, VIPoma can produce calcitonin."},
			},
		},
	},
	"Ki_67": {
		"high": {
			Title: "Elevated Ki-67 Proliferation Index",
			Differentials: []interp.Differential{
				{Condition: "Aggressive Malignancy", Discussion: "Ki-67 reflects proliferative activity. Breast: <14% low, >30% high. Neuroendocrine tumors: G1 <3%, G2 3-20%, G3 >20%. Lymphoma grading. Higher Ki-67 = more aggressive but often more chemo-responsive."},
			},
		},
	},
	"Chromogranin_A": {
		"high": {
			Title: "Elevated Chromogranin A",
			Differentials: []interp.Differential{
				{Condition: "Neuroendocrine Tumors", Discussion: "Most sensitive marker for NETs. Correlates with tumor burden. Also elevated in carcinoid, pheochromocytoma, medullary thyroid cancer."},
				{Condition: "PPI Use", Discussion: "Proton pump inhibitors cause gastric ECL cell hyperplasia, raising CgA. MUST stop PPI 2 weeks before testing. Very common false positive."},
				{Condition: "Renal Impairment", Discussion: "Reduced clearance causes elevated levels. Interpret with caution in CKD."},
			},
		},
	},
}

type Panel struct{}

func New() *Panel { return &Panel{} }

func (p *Panel) Name() string { return "Oncology" }

func (p *Panel) Parameters() []string { return parameters }

func (p *Panel) Analyze(values map[string]interp.Value, sex interp.Sex) *interp.Result {
	res := interp.Evaluate(interp.Config{
		Panel:         p.Name(),
		Ranges:        referenceRanges,
		Differentials: differentials,
		Desirable:     true,
	}, values, sex)

	psaRatio(res)
	gctPanel(res)
	res.PatternSummary = pattern(res)
	res.EducationalContent = []string{
		"Tumor markers are NOT screening tests, with few exceptions: PSA (controversial), AFP in cirrhosis surveillance, calcitonin in MEN2 families.",
		"The primary use is monitoring treatment response and detecting recurrence. A rising trend is more informative than a single value.",
		"False positives are common: CEA in smoking, CA 125 in menstruation/endometriosis, PSA in BPH/prostatitis, chromogranin A with PPI use. Always consider benign causes.",
		"PSA 4-10 is the gray zone. Use free/total ratio, PSA density, PSA velocity, and MRI to improve specificity. Shared decision-making for screening (USPSTF).",
		"Ki-67 interpretation varies by tumor type. Breast: <14% luminal A, >30% aggressive. NETs: grade-defining (G1 <3%, G2 3-20%, G3 >20%). Lymphoma: distinguishes indolent from aggressive.",
		"Two-marker strategies improve accuracy: AFP + US for HCC screening, CA 125 + HE4 (ROMA) for ovarian cancer risk, AFP + hCG for germ cell tumors.",
	}
	return res
}

func psaRatio(res *interp.Result) {
	total, okT := res.Num("Total_PSA")
	free, okF := res.Num("Free_PSA")
	if !okT || !okF || total <= 0 {
		return
	}
	ratio := interp.Round2(free / total * 100)
	interpretation := "Higher ratio: likely BPH"
	if ratio < 25 {
		interpretation = "Low ratio (<25%): increased cancer risk"
	}
	res.AddIndex("Free/Total PSA Ratio", interp.Index{
		Value:          interp.Text(fmt.Sprintf("%s%%", interp.FormatNum(ratio))),
		Formula:        "(Free PSA / Total PSA) x 100",
		Interpretation: interpretation,
		Note:           "<10% high risk, 10-25% intermediate, >25% likely benign",
	})
}

func gctPanel(res *interp.Result) {
	_, okA := res.Num("AFP")
	_, okB := res.Num("Beta_hCG")
	_, okL := res.Num("Onco_LDH")
	if !okA || !okB || !okL {
		return
	}
	res.AddIndex("GCT Risk Classification", interp.Index{
		Value:          interp.Text("See interpretation"),
		Formula:        "AFP + Beta-hCG + LDH (IGCCCG staging)",
		Interpretation: "Good prognosis: AFP <1000, hCG <5000, LDH <1.5x ULN. Intermediate: any between. Poor: AFP >10000 or hCG >50000 or LDH >10x ULN.",
		Note:           "IGCCCG classification for nonseminomatous germ cell tumors",
	})
}

func pattern(res *interp.Result) string {
	var patterns []string
	if afp, ok := res.Num("AFP"); ok && afp > 400 {
		patterns = append(patterns, "Markedly elevated AFP: consider hepatocellular carcinoma (in cirrhosis) or germ cell tumor.")
	}
	if psa, ok := res.Num("Total_PSA"); ok && psa > 10 {
		patterns = append(patterns, "PSA >10: about 50% probability of prostate cancer. Recommend MRI and biopsy.")
	}
	return strings.Join(patterns, " ")
}
