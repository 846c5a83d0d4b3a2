package oncology

import (
	"strings"
	"testing"

	"github.com/bloodlens/bloodlens/internal/interp"
)

func num(v float64) interp.Value { return interp.Number(v) }

func TestAnalyze_FreeToTotalPSARatio(t *testing.T) {
	res := New().Analyze(map[string]interp.Value{
		"Total_PSA": num(8.0),
		"Free_PSA":  num(1.0),
	}, interp.SexMale)

	idx, ok := res.CalculatedIndices["Free/Total PSA Ratio"]
	if !ok {
		t.Fatal("Free/Total PSA Ratio index missing")
	}
	if got := idx.Value.String(); got != "12.5%" {
		t.Errorf("ratio = %q, want 12.5%%", got)
	}
	if !strings.Contains(idx.Interpretation, "increased cancer risk") {
		t.Errorf("interpretation = %q", idx.Interpretation)
	}
}

func TestAnalyze_PSARatioNeedsBothValues(t *testing.T) {
	res := New().Analyze(map[string]interp.Value{"Total_PSA": num(8.0)}, interp.SexMale)
	if _, ok := res.CalculatedIndices["Free/Total PSA Ratio"]; ok {
		t.Error("ratio must not be derived without the free fraction")
	}
}

func TestAnalyze_GermCellTumorPanel(t *testing.T) {
	res := New().Analyze(map[string]interp.Value{
		"AFP":      num(850),
		"Beta_hCG": num(1200),
		"Onco_LDH": num(400),
	}, interp.SexMale)

	idx, ok := res.CalculatedIndices["GCT Risk Classification"]
	if !ok {
		t.Fatal("GCT Risk Classification index missing")
	}
	if !strings.Contains(idx.Interpretation, "Good prognosis") {
		t.Errorf("interpretation = %q", idx.Interpretation)
	}
	if !strings.Contains(res.PatternSummary, "Markedly elevated AFP") {
		t.Errorf("pattern = %q", res.PatternSummary)
	}
}

func TestAnalyze_HighPSAPattern(t *testing.T) {
	res := New().Analyze(map[string]interp.Value{"Total_PSA": num(14)}, interp.SexMale)
	if !strings.Contains(res.PatternSummary, "PSA >10") {
		t.Errorf("pattern = %q", res.PatternSummary)
	}
}

func TestAnalyze_SexSpecificBetaHCG(t *testing.T) {
	values := map[string]interp.Value{"Beta_hCG": num(4.0)}
	if got := New().Analyze(values, interp.SexMale).Status("Beta_hCG"); got != interp.StatusHigh {
		t.Errorf("male Beta_hCG 4.0 = %q, want high", got)
	}
	if got := New().Analyze(values, interp.SexFemale).Status("Beta_hCG"); got != interp.StatusNormal {
		t.Errorf("female Beta_hCG 4.0 = %q, want normal", got)
	}
}

func TestAnalyze_ChromograninDifferentialMentionsPPI(t *testing.T) {
	res := New().Analyze(map[string]interp.Value{"Chromogranin_A": num(300)}, interp.SexFemale)
	pr := res.Parameters["Chromogranin_A"]
	if pr.Differential == nil {
		t.Fatal("Chromogranin_A differential missing")
	}
	var ppi bool
	for _, d := range pr.Differential.Differentials {
		if d.Condition == "PPI Use" {
			ppi = true
		}
	}
	if !ppi {
		t.Errorf("differentials = %+v", pr.Differential.Differentials)
	}
}

func TestAnalyze_LowMarkerIsNotFlagged(t *testing.T) {
	// Tumor marker floors are not physiologic; a low CEA is a good result.
	res := New().Analyze(map[string]interp.Value{"CEA": num(0.4)}, interp.SexMale)
	if got := res.Status("CEA"); got != interp.StatusNormal {
		t.Errorf("CEA 0.4 = %q, want normal", got)
	}
}
