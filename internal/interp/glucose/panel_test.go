package glucose

import (
	"strings"
	"testing"

	"github.com/bloodlens/bloodlens/internal/interp"
)

func num(v float64) interp.Value { return interp.Number(v) }

func TestAnalyze_EstimatedAverageGlucose(t *testing.T) {
	res := New().Analyze(map[string]interp.Value{"HbA1c": num(7.0)}, interp.SexMale)

	eag, ok := res.CalculatedIndices["Calculated eAG"]
	if !ok {
		t.Fatal("Calculated eAG index missing")
	}
	// 28.7 * 7.0 - 46.7 = 154.2, rounded to 154.
	if v, _ := eag.Value.Float(); v != 154 {
		t.Errorf("eAG = %v, want 154", v)
	}
}

func TestAnalyze_HOMAIR(t *testing.T) {
	res := New().Analyze(map[string]interp.Value{
		"Fasting_Glucose": num(110),
		"Insulin":         num(15),
	}, interp.SexFemale)

	homa, ok := res.CalculatedIndices["Calculated HOMA-IR"]
	if !ok {
		t.Fatal("Calculated HOMA-IR index missing")
	}
	// 110 * 15 / 405 = 4.07
	if v, _ := homa.Value.Float(); v != 4.07 {
		t.Errorf("HOMA-IR = %v, want 4.07", v)
	}
	if !strings.Contains(homa.Interpretation, "Insulin resistant") {
		t.Errorf("interpretation = %q", homa.Interpretation)
	}
}

func TestAnalyze_DiabetesPattern(t *testing.T) {
	res := New().Analyze(map[string]interp.Value{
		"Fasting_Glucose": num(140),
		"HbA1c":           num(7.2),
	}, interp.SexMale)
	if !strings.Contains(res.PatternSummary, "diagnostic of diabetes (if confirmed)") {
		t.Errorf("pattern = %q", res.PatternSummary)
	}
	if !strings.Contains(res.PatternSummary, "HbA1c >=6.5%: diagnostic of diabetes.") {
		t.Errorf("pattern = %q", res.PatternSummary)
	}
}

func TestAnalyze_PrediabetesPattern(t *testing.T) {
	res := New().Analyze(map[string]interp.Value{
		"Fasting_Glucose": num(110),
		"HbA1c":           num(6.0),
	}, interp.SexMale)
	if !strings.Contains(res.PatternSummary, "impaired fasting glucose (prediabetes)") {
		t.Errorf("pattern = %q", res.PatternSummary)
	}
	if !strings.Contains(res.PatternSummary, "HbA1c 5.7-6.4%: prediabetes.") {
		t.Errorf("pattern = %q", res.PatternSummary)
	}
}

func TestAnalyze_CriticalHypoglycemia(t *testing.T) {
	res := New().Analyze(map[string]interp.Value{"Fasting_Glucose": num(35)}, interp.SexMale)
	if got := res.Status("Fasting_Glucose"); got != interp.StatusCriticalLow {
		t.Fatalf("status = %q, want critical_low", got)
	}
	pr := res.Parameters["Fasting_Glucose"]
	if pr.Differential == nil || pr.Differential.Title != "Hypoglycemia" {
		t.Errorf("differential = %+v", pr.Differential)
	}
}

func TestAnalyze_NormalGlycemia(t *testing.T) {
	res := New().Analyze(map[string]interp.Value{
		"Fasting_Glucose": num(88),
		"HbA1c":           num(5.2),
	}, interp.SexFemale)
	if res.AbnormalCount != 0 {
		t.Errorf("AbnormalCount = %d, want 0", res.AbnormalCount)
	}
	if res.PatternSummary != "" {
		t.Errorf("pattern = %q, want empty", res.PatternSummary)
	}
}
