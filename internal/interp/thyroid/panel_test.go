package thyroid

import (
	"strings"
	"testing"

	"github.com/bloodlens/bloodlens/internal/interp"
)

func num(v float64) interp.Value { return interp.Number(v) }

func analyze(t *testing.T, values map[string]interp.Value) *interp.Result {
	t.Helper()
	return New().Analyze(values, interp.SexFemale)
}

func TestAnalyze_PrimaryHypothyroidism(t *testing.T) {
	res := analyze(t, map[string]interp.Value{
		"TSH": num(12.0),
		"FT4": num(0.5),
	})
	if !strings.Contains(res.PatternSummary, "Primary hypothyroidism") {
		t.Errorf("pattern = %q", res.PatternSummary)
	}
	pr := res.Parameters["TSH"]
	if pr.Differential == nil || !strings.Contains(pr.Differential.Title, "Elevated TSH") {
		t.Errorf("TSH differential = %+v", pr.Differential)
	}
}

func TestAnalyze_SubclinicalHypothyroidism(t *testing.T) {
	res := analyze(t, map[string]interp.Value{
		"TSH": num(7.5),
		"FT4": num(1.2),
	})
	if !strings.Contains(res.PatternSummary, "Subclinical hypothyroidism") {
		t.Errorf("pattern = %q", res.PatternSummary)
	}
}

func TestAnalyze_OvertHyperthyroidism(t *testing.T) {
	res := analyze(t, map[string]interp.Value{
		"TSH": num(0.05),
		"FT4": num(3.2),
	})
	if !strings.Contains(res.PatternSummary, "Overt hyperthyroidism") {
		t.Errorf("pattern = %q", res.PatternSummary)
	}
}

func TestAnalyze_T3Thyrotoxicosis(t *testing.T) {
	res := analyze(t, map[string]interp.Value{
		"TSH": num(0.1),
		"FT4": num(1.4),
		"FT3": num(5.5),
	})
	if !strings.Contains(res.PatternSummary, "T3 thyrotoxicosis") {
		t.Errorf("pattern = %q", res.PatternSummary)
	}

	// Without the FT3 elevation the same TSH/FT4 pair is subclinical.
	res = analyze(t, map[string]interp.Value{
		"TSH": num(0.1),
		"FT4": num(1.4),
	})
	if !strings.Contains(res.PatternSummary, "Subclinical hyperthyroidism") {
		t.Errorf("pattern = %q", res.PatternSummary)
	}
}

func TestAnalyze_CentralHypothyroidism(t *testing.T) {
	res := analyze(t, map[string]interp.Value{
		"TSH": num(0.2),
		"FT4": num(0.5),
	})
	if !strings.Contains(res.PatternSummary, "Central hypothyroidism") {
		t.Errorf("pattern = %q", res.PatternSummary)
	}
}

func TestAnalyze_NoPatternWithoutBothHormones(t *testing.T) {
	res := analyze(t, map[string]interp.Value{"TSH": num(9.0)})
	if res.PatternSummary != "" {
		t.Errorf("pattern = %q, want empty without FT4", res.PatternSummary)
	}
}

func TestAnalyze_CriticalTSH(t *testing.T) {
	res := analyze(t, map[string]interp.Value{"TSH": num(75)})
	if got := res.Status("TSH"); got != interp.StatusCriticalHigh {
		t.Errorf("TSH 75 = %q, want critical_high", got)
	}
	if res.CriticalCount != 1 {
		t.Errorf("CriticalCount = %d, want 1", res.CriticalCount)
	}
}

func TestAnalyze_AutoantibodyDifferential(t *testing.T) {
	res := analyze(t, map[string]interp.Value{"Anti_TPO": num(250)})
	pr := res.Parameters["Anti_TPO"]
	if pr.Differential == nil {
		t.Fatal("Anti_TPO differential missing")
	}
	var hashimoto bool
	for _, d := range pr.Differential.Differentials {
		if strings.Contains(d.Condition, "Hashimoto") {
			hashimoto = true
		}
	}
	if !hashimoto {
		t.Errorf("differentials = %+v", pr.Differential.Differentials)
	}
}
