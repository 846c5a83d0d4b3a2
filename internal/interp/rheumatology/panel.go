// Package rheumatology interprets autoimmune serology and inflammation
// markers. Most ranges are target floors: only a handful of parameters
// (complement levels) have a meaningful lower bound.
package rheumatology

import (
	"strings"

	"github.com/bloodlens/bloodlens/internal/interp"
)

var parameters = []string{
	"RF", "Anti_CCP", "ANA", "ANA_Pattern", "Anti_dsDNA", "Anti_Smith",
	"Complement_C3", "Complement_C4",
	"Anti_Phospholipid_IgG", "Anti_Phospholipid_IgM",
	"Anti_Cardiolipin_IgG", "Anti_Cardiolipin_IgM",
	"Beta2_Glycoprotein", "Lupus_Anticoagulant", "HLA_B27",
	"CRP", "hs_CRP", "ASO",
}

var referenceRanges = map[string]interp.RangeTable{
	"RF":                    interp.Shared(interp.NewRange(0, 14, "IU/mL").WithCritical(0, 1000)),
	"Anti_CCP":              interp.Shared(interp.NewRange(0, 20, "U/mL").WithCritical(0, 500)),
	"Anti_dsDNA":            interp.Shared(interp.NewRange(0, 25, "IU/mL").WithCritical(0, 1000)),
	"Anti_Smith":            interp.Shared(interp.NewRange(0, 20, "U/mL").WithCritical(0, 500)),
	"Complement_C3":         interp.Shared(interp.NewRange(90, 180, "mg/dL").WithCritical(30, 300)),
	"Complement_C4":         interp.Shared(interp.NewRange(10, 40, "mg/dL").WithCritical(2, 80)),
	"Anti_Phospholipid_IgG": interp.Shared(interp.NewRange(0, 20, "GPL").WithCritical(0, 200)),
	"Anti_Phospholipid_IgM": interp.Shared(interp.NewRange(0, 20, "MPL").WithCritical(0, 200)),
	"Anti_Cardiolipin_IgG":  interp.Shared(interp.NewRange(0, 20, "GPL").WithCritical(0, 200)),
	"Anti_Cardiolipin_IgM":  interp.Shared(interp.NewRange(0, 20, "MPL").WithCritical(0, 200)),
	"Beta2_Glycoprotein":    interp.Shared(interp.NewRange(0, 20, "U/mL").WithCritical(0, 200)),
	"CRP":                   interp.Shared(interp.NewRange(0, 5, "mg/L").WithCritical(0, 500)),
	"hs_CRP":                interp.Shared(interp.NewRange(0, 1.0, "mg/L").WithCritical(0, 50)),
	"ASO":                   interp.Shared(interp.NewRange(0, 200, "IU/mL").WithCritical(0, 1000)),
}

// positiveTerms mark a qualitative serology result as abnormal.
var positiveTerms = []string{"positive", "detected", "reactive", "yes", "+"}

var qualitative = map[string][]string{
	"ANA":                 positiveTerms,
	"ANA_Pattern":         positiveTerms,
	"Lupus_Anticoagulant": positiveTerms,
	"HLA_B27":             positiveTerms,
}

var differentials = map[string]map[string]interp.DifferentialSet{
	"RF": {
		"high": {
			Title: "Elevated Rheumatoid Factor",
			Differentials: []interp.Differential{
				{Condition: "Rheumatoid Arthritis", Discussion: "RF positive in 70-80% of RA. Higher titers correlate with more severe disease. Seropositive RA has worse prognosis."},
				{Condition: "Sjogren Syndrome", Discussion: "RF positive in >90%. Dry eyes, dry mouth. Check anti-SSA/SSB."},
				{Condition: "Other Autoimmune", Discussion: "SLE, scleroderma, mixed connective tissue disease. RF is not specific."},
				{Condition: "Infections", Discussion: "Hepatitis C (up to 70% RF+), endocarditis, TB, syphilis. Always check HCV."},
				{Condition: "Elderly/False Positive", Discussion: "Up to 5-10% of healthy elderly are RF positive. Increases with age."},
			},
		},
	},
	"Anti_CCP": {
		"high": {
			Title: "Elevated Anti-CCP",
			Differentials: []interp.Differential{
				{Condition: "Rheumatoid Arthritis", Discussion: "More specific than RF (95% vs 80%). Positive years before symptom onset. Predicts erosive disease. RF+/CCP+ = high probability RA."},
				{Condition: "Other Autoimmune", Discussion: "Occasionally positive in psoriatic arthritis, SLE, Sjogren. Very rarely false positive."},
			},
		},
	},
	"Anti_dsDNA": {
		"high": {
			Title: "Elevated Anti-dsDNA",
			Differentials: []interp.Differential{
				{Condition: "Systemic Lupus Erythematosus", Discussion: "Highly specific for SLE (>95%). Titers correlate with disease activity, especially lupus nephritis. Monitor serially."},
				{Condition: "Drug-Induced Lupus", Discussion: "Usually anti-histone antibody positive, not anti-dsDNA. Procainamide, hydralazine, isoniazid."},
			},
		},
	},
	"Complement_C3": {
		"low": {
			Title: "Low Complement C3",
			Differentials: []interp.Differential{
				{Condition: "Active SLE", Discussion: "Complement consumption during active flares. Low C3 and C4. Monitor with anti-dsDNA for disease activity."},
				{Condition: "Post-Infectious GN", Discussion: "Low C3 with normal C4. Transient. Post-streptococcal most common."},
				{Condition: "Membranoproliferative GN", Discussion: "Persistent low C3. C3 nephritic factor may be present."},
				{Condition: "Genetic Deficiency", Discussion: "Rare hereditary complement deficiencies predispose to infections and SLE."},
			},
		},
	},
	"CRP": {
		"high": {
			Title: "Elevated CRP",
			Differentials: []interp.Differential{
				{Condition: "Infection", Discussion: "CRP rises within 6-8 hours of infection, peaks at 48 hours. Bacterial > viral. CRP >100 mg/L strongly suggests bacterial infection."},
				{Condition: "Autoimmune Inflammation", Discussion: "RA, vasculitis, PMR/GCA, IBD. Notably, SLE often has NORMAL CRP (unless serositis or infection)."},
				{Condition: "Cardiovascular Risk", Discussion: "hs-CRP: <1.0 low risk, 1.0-3.0 average, >3.0 high risk. >10 = acute process (not for CV risk assessment)."},
				{Condition: "Malignancy", Discussion: "Tumor-associated inflammation. Lymphoma, renal cell carcinoma."},
			},
		},
	},
	"ASO": {
		"high": {
			Title: "Elevated ASO Titer",
			Differentials: []interp.Differential{
				{Condition: "Recent Streptococcal Infection", Discussion: "Rises 1-3 weeks after pharyngitis, peaks at 3-5 weeks. Used to diagnose rheumatic fever (Jones criteria) and post-streptococcal GN."},
				{Condition: "Rheumatic Fever", Discussion: "Elevated ASO is one of the Jones criteria supporting evidence. Major criteria: carditis, arthritis, chorea, erythema marginatum, subcutaneous nodules."},
			},
		},
	},
}

type Panel struct{}

func New() *Panel { return &Panel{} }

func (p *Panel) Name() string { return "Rheumatology" }

func (p *Panel) Parameters() []string { return parameters }

func (p *Panel) Analyze(values map[string]interp.Value, sex interp.Sex) *interp.Result {
	res := interp.Evaluate(interp.Config{
		Panel:         p.Name(),
		Ranges:        referenceRanges,
		Positive:      qualitative,
		Differentials: differentials,
		Desirable:     true,
		AbnormalAs:    "high",
	}, values, sex)

	res.PatternSummary = pattern(values, res)
	res.EducationalContent = []string{
		"ANA is a screening test: positive in 95% of SLE but also in 5-15% of healthy individuals. Titer and pattern matter: homogeneous = SLE/drug-induced; speckled = mixed CTD, Sjogren; nucleolar = scleroderma; centromere = limited scleroderma.",
		"RF is sensitive but not specific (positive in infections, other autoimmune diseases, elderly). Anti-CCP is highly specific (>95%) for RA and predicts erosive disease. RF+/CCP+ = strong RA diagnosis.",
		"Low C3/C4 = active SLE with complement consumption. Rising complement = response to treatment. Normal complement does not exclude SLE.",
		"CRP is elevated in RA, PMR/GCA, vasculitis, but often NORMAL in active SLE (unless serositis or superimposed infection). This distinguishes SLE flare from infection.",
		"APS diagnosis requires at least one clinical criterion (thrombosis or pregnancy morbidity) AND one laboratory criterion (lupus anticoagulant, anticardiolipin, anti-beta2GPI), with the lab test positive on TWO occasions 12 weeks apart.",
	}
	return res
}

func pattern(values map[string]interp.Value, res *interp.Result) string {
	var patterns []string

	rf, okRF := res.Num("RF")
	ccp, okCCP := res.Num("Anti_CCP")
	if okRF && okCCP && rf > 14 && ccp > 20 {
		patterns = append(patterns, "Seropositive RA pattern: RF+ and Anti-CCP+ indicate high probability of rheumatoid arthritis with erosive disease risk.")
	}

	ana := strings.ToLower(values["ANA"].String())
	dsdna, okDNA := res.Num("Anti_dsDNA")
	if (strings.Contains(ana, "positive") || strings.Contains(ana, "1:")) && okDNA && dsdna > 25 {
		features := []string{"ANA+", "Anti-dsDNA+"}
		if c3, ok := res.Num("Complement_C3"); ok && c3 < 90 {
			features = append(features, "Low C3")
		}
		if c4, ok := res.Num("Complement_C4"); ok && c4 < 10 {
			features = append(features, "Low C4")
		}
		patterns = append(patterns, "SLE pattern: "+strings.Join(features, ", ")+". Evaluate for systemic lupus erythematosus.")
	}

	apsPositive := 0
	for _, marker := range []string{"Anti_Cardiolipin_IgG", "Anti_Cardiolipin_IgM", "Beta2_Glycoprotein"} {
		if v, ok := res.Num(marker); ok && v > 20 {
			apsPositive++
		}
	}
	if strings.Contains(strings.ToLower(values["Lupus_Anticoagulant"].String()), "positive") {
		apsPositive++
	}
	if apsPositive >= 2 {
		patterns = append(patterns, "Antiphospholipid syndrome pattern: multiple APS markers positive. Evaluate thrombotic risk.")
	}

	return strings.Join(patterns, " ")
}
