// Package thyroid interprets thyroid function tests. The TSH/FT4/FT3
// combination resolves into the standard patterns: primary, subclinical,
// and central hypothyroidism, overt and subclinical hyperthyroidism, T3
// thyrotoxicosis, and inappropriate TSH secretion.
package thyroid

import (
	"strings"

	"github.com/bloodlens/bloodlens/internal/interp"
)

var parameters = []string{
	"TSH", "T3", "T4", "FT3", "FT4", "Reverse_T3", "T3_Uptake",
	"Anti_TPO", "Anti_Thyroglobulin", "TSH_Receptor_Ab", "Thyroglobulin",
}

var referenceRanges = map[string]interp.RangeTable{
	"TSH":                interp.Shared(interp.NewRange(0.4, 4.0, "mIU/L").WithCritical(0.01, 50)),
	"T3":                 interp.Shared(interp.NewRange(80, 200, "ng/dL").WithCritical(30, 500)),
	"T4":                 interp.Shared(interp.NewRange(5.0, 12.0, "ug/dL").WithCritical(2.0, 25)),
	"FT3":                interp.Shared(interp.NewRange(2.3, 4.2, "pg/mL").WithCritical(1.0, 10)),
	"FT4":                interp.Shared(interp.NewRange(0.8, 1.8, "ng/dL").WithCritical(0.3, 5.0)),
	"Reverse_T3":         interp.Shared(interp.NewRange(10, 24, "ng/dL").WithCritical(5, 80)),
	"T3_Uptake":          interp.Shared(interp.NewRange(24, 37, "%").WithCritical(15, 55)),
	"Anti_TPO":           interp.Shared(interp.NewRange(0, 35, "IU/mL").WithCritical(0, 2000)),
	"Anti_Thyroglobulin": interp.Shared(interp.NewRange(0, 40, "IU/mL").WithCritical(0, 2000)),
	"TSH_Receptor_Ab":    interp.Shared(interp.NewRange(0, 1.75, "IU/L").WithCritical(0, 50)),
	"Thyroglobulin":      interp.Shared(interp.NewRange(0, 55, "ng/mL").WithCritical(0, 500)),
}

var differentials = map[string]map[string]interp.DifferentialSet{
	"TSH": {
		"high": {
			Title: "Elevated TSH",
			Differentials: []interp.Differential{
				{Condition: "Primary Hypothyroidism", Discussion: "High TSH + low FT4. Most common: Hashimoto thyroiditis (anti-TPO+). Also post-thyroidectomy, post-radioiodine, iodine deficiency."},
				{Condition: "Subclinical Hypothyroidism", Discussion: "High TSH + normal FT4. Treat if TSH >10, symptoms present, or anti-TPO positive. Monitor if TSH 4-10."},
				{Condition: "Recovery from Non-Thyroidal Illness", Discussion: "TSH may transiently rise to 10-20 during recovery phase of sick euthyroid syndrome."},
				{Condition: "TSH-Secreting Pituitary Adenoma", Discussion: "Rare. High TSH + high FT4. Inappropriate TSH secretion. MRI pituitary."},
			},
		},
		"low": {
			Title: "Suppressed TSH",
			Differentials: []interp.Differential{
				{Condition: "Graves Disease", Discussion: "Most common cause of hyperthyroidism. Diffuse goiter, ophthalmopathy, dermopathy. TSH receptor antibodies positive. Radioiodine uptake elevated and diffuse."},
				{Condition: "Toxic Multinodular Goiter", Discussion: "Multiple autonomous nodules. More common in elderly. Radioiodine scan shows patchy uptake."},
				{Condition: "Thyroiditis (Subacute/Painless)", Discussion: "Transient thyrotoxicosis from thyroid destruction. Painful (de Quervain) or painless (postpartum). Low radioiodine uptake distinguishes from Graves."},
				{Condition: "Exogenous Thyroid Hormone", Discussion: "Overtreatment, factitious use. Low thyroglobulin if exogenous."},
				{Condition: "Central Hypothyroidism", Discussion: "Pituitary/hypothalamic disease. Low/normal TSH + low FT4. Check other pituitary hormones. MRI pituitary."},
			},
		},
	},
	"Anti_TPO": {
		"high": {
			Title: "Elevated Anti-TPO Antibodies",
			Differentials: []interp.Differential{
				{Condition: "Hashimoto Thyroiditis", Discussion: "Most common cause of hypothyroidism in iodine-sufficient areas. Anti-TPO positive in >90%. Lymphocytic infiltration of thyroid."},
				{Condition: "Graves Disease", Discussion: "Anti-TPO can be positive in 50-80% of Graves patients. TSH receptor antibody is more specific."},
				{Condition: "Other Autoimmune Diseases", Discussion: "Can be positive in Type 1 DM, SLE, RA, Sjogren without thyroid disease (5-10% of general population)."},
			},
		},
	},
	"TSH_Receptor_Ab": {
		"high": {
			Title: "Elevated TSH Receptor Antibodies (TRAb)",
			Differentials: []interp.Differential{
				{Condition: "Graves Disease", Discussion: "Highly specific (>99%). Stimulating antibodies cause hyperthyroidism. Useful for diagnosis, monitoring, and predicting relapse. Important in pregnancy (neonatal thyrotoxicosis risk)."},
			},
		},
	},
}

type Panel struct{}

func New() *Panel { return &Panel{} }

func (p *Panel) Name() string { return "TFT" }

func (p *Panel) Parameters() []string { return parameters }

func (p *Panel) Analyze(values map[string]interp.Value, sex interp.Sex) *interp.Result {
	res := interp.Evaluate(interp.Config{
		Panel:         p.Name(),
		Ranges:        referenceRanges,
		Differentials: differentials,
	}, values, sex)

	res.PatternSummary = pattern(res)
	res.EducationalContent = []string{
		"Thyroid Function Tests follow a hierarchical approach: TSH first, then FT4/FT3. The inverse log-linear TSH-FT4 relationship makes TSH the most sensitive screening test.",
		"Small changes in FT4 cause large changes in TSH: a 2-fold change in FT4 causes a 100-fold change in TSH.",
		"Antibodies tell the etiology: anti-TPO points to Hashimoto, TRAb to Graves, anti-Tg is used for thyroid cancer monitoring.",
		"Acute illness can cause low T3, low TSH, low FT4 (sick euthyroid syndrome). Avoid diagnosing thyroid disease during acute illness unless clinically obvious.",
	}
	return res
}

func pattern(res *interp.Result) string {
	tsh, hasTSH := res.Num("TSH")
	ft4, hasFT4 := res.Num("FT4")
	if !hasTSH || !hasFT4 {
		return ""
	}

	var patterns []string
	switch {
	case tsh > 4.0 && ft4 < 0.8:
		patterns = append(patterns, "Primary hypothyroidism: high TSH + low FT4.")
	case tsh > 4.0 && ft4 <= 1.8:
		patterns = append(patterns, "Subclinical hypothyroidism: high TSH + normal FT4.")
	case tsh < 0.4 && ft4 > 1.8:
		patterns = append(patterns, "Overt hyperthyroidism: low TSH + high FT4.")
	case tsh < 0.4 && ft4 >= 0.8:
		if ft3, ok := res.Num("FT3"); ok && ft3 > 4.2 {
			patterns = append(patterns, "T3 thyrotoxicosis: low TSH + normal FT4 + high FT3.")
		} else {
			patterns = append(patterns, "Subclinical hyperthyroidism: low TSH + normal FT4.")
		}
	case tsh < 0.4 && ft4 < 0.8:
		patterns = append(patterns, "Central hypothyroidism: low TSH + low FT4 (pituitary/hypothalamic).")
	case tsh > 4.0 && ft4 > 1.8:
		patterns = append(patterns, "TSH-secreting adenoma or thyroid hormone resistance: high TSH + high FT4.")
	}
	return strings.Join(patterns, " ")
}
