package urinalysis

import (
	"strings"
	"testing"

	"github.com/bloodlens/bloodlens/internal/interp"
)

func TestAnalyze_QualitativeNormals(t *testing.T) {
	res := New().Analyze(map[string]interp.Value{
		"Urine_Color":      interp.Text("Pale Yellow"),
		"Urine_Appearance": interp.Text("Clear"),
		"Urine_Protein":    interp.Text("Trace"),
		"Urine_Glucose":    interp.Text("Negative"),
	}, interp.SexFemale)

	for _, param := range []string{"Urine_Color", "Urine_Appearance", "Urine_Protein", "Urine_Glucose"} {
		if got := res.Status(param); got != interp.StatusNormal {
			t.Errorf("%s = %q, want normal", param, got)
		}
	}
}

func TestAnalyze_AbnormalDipstickAttachesDifferential(t *testing.T) {
	res := New().Analyze(map[string]interp.Value{
		"Urine_Protein": interp.Text("+2"),
	}, interp.SexMale)

	if got := res.Status("Urine_Protein"); got != interp.StatusAbnormal {
		t.Fatalf("status = %q, want abnormal", got)
	}
	pr := res.Parameters["Urine_Protein"]
	if pr.Differential == nil || pr.Differential.Title != "Proteinuria" {
		t.Errorf("differential = %+v", pr.Differential)
	}
}

func TestAnalyze_UTIPattern(t *testing.T) {
	res := New().Analyze(map[string]interp.Value{
		"Urine_Nitrite":            interp.Text("Positive"),
		"Urine_Leukocyte_Esterase": interp.Text("Positive"),
		"Urine_WBC":                interp.Number(25),
		"Urine_Bacteria":           interp.Text("Many"),
	}, interp.SexFemale)

	if !strings.Contains(res.PatternSummary, "UTI pattern") {
		t.Errorf("pattern = %q", res.PatternSummary)
	}
	pr := res.Parameters["Urine_WBC"]
	if pr.Differential == nil || pr.Differential.Title != "Pyuria (Elevated Urine WBC)" {
		t.Errorf("WBC differential = %+v", pr.Differential)
	}
}

func TestAnalyze_SingleSignIsNotUTI(t *testing.T) {
	res := New().Analyze(map[string]interp.Value{
		"Urine_WBC": interp.Number(12),
	}, interp.SexFemale)
	if strings.Contains(res.PatternSummary, "UTI pattern") {
		t.Errorf("one finding should not trigger the UTI pattern: %q", res.PatternSummary)
	}
}

func TestAnalyze_AlbuminuriaStaging(t *testing.T) {
	res := New().Analyze(map[string]interp.Value{
		"Albumin_Creatinine_Ratio": interp.Number(120),
	}, interp.SexMale)
	if !strings.Contains(res.PatternSummary, "Microalbuminuria") {
		t.Errorf("pattern = %q", res.PatternSummary)
	}

	res = New().Analyze(map[string]interp.Value{
		"Albumin_Creatinine_Ratio": interp.Number(450),
	}, interp.SexMale)
	if !strings.Contains(res.PatternSummary, "Macroalbuminuria") {
		t.Errorf("pattern = %q", res.PatternSummary)
	}
}

func TestAnalyze_MixedQuantQual(t *testing.T) {
	res := New().Analyze(map[string]interp.Value{
		"Urine_pH":         interp.Number(6.0),
		"Specific_Gravity": interp.Number(1.045),
		"Urine_Casts":      interp.Text("None seen"),
	}, interp.SexMale)

	if got := res.Status("Urine_pH"); got != interp.StatusNormal {
		t.Errorf("pH = %q, want normal", got)
	}
	if got := res.Status("Specific_Gravity"); got != interp.StatusHigh {
		t.Errorf("specific gravity = %q, want high", got)
	}
	if got := res.Status("Urine_Casts"); got != interp.StatusNormal {
		t.Errorf("casts = %q, want normal", got)
	}
}
