package rheumatology

import (
	"strings"
	"testing"

	"github.com/bloodlens/bloodlens/internal/interp"
)

func num(v float64) interp.Value { return interp.Number(v) }

func TestAnalyze_SeropositiveRAPattern(t *testing.T) {
	res := New().Analyze(map[string]interp.Value{
		"RF":       num(85),
		"Anti_CCP": num(140),
	}, interp.SexFemale)

	if !strings.Contains(res.PatternSummary, "Seropositive RA pattern") {
		t.Errorf("pattern = %q", res.PatternSummary)
	}
	pr := res.Parameters["Anti_CCP"]
	if pr.Differential == nil || pr.Differential.Title != "Elevated Anti-CCP" {
		t.Errorf("Anti_CCP differential = %+v", pr.Differential)
	}
}

func TestAnalyze_SLEPatternWithComplementConsumption(t *testing.T) {
	res := New().Analyze(map[string]interp.Value{
		"ANA":           interp.Text("Positive 1:320"),
		"Anti_dsDNA":    num(180),
		"Complement_C3": num(60),
		"Complement_C4": num(8),
	}, interp.SexFemale)

	if !strings.Contains(res.PatternSummary, "SLE pattern") {
		t.Fatalf("pattern = %q", res.PatternSummary)
	}
	for _, feature := range []string{"ANA+", "Anti-dsDNA+", "Low C3", "Low C4"} {
		if !strings.Contains(res.PatternSummary, feature) {
			t.Errorf("pattern %q missing feature %q", res.PatternSummary, feature)
		}
	}
	pr := res.Parameters["Complement_C3"]
	if pr.Differential == nil || pr.Differential.Title != "Low Complement C3" {
		t.Errorf("C3 differential = %+v", pr.Differential)
	}
}

func TestAnalyze_APSPattern(t *testing.T) {
	res := New().Analyze(map[string]interp.Value{
		"Anti_Cardiolipin_IgG": num(45),
		"Lupus_Anticoagulant":  interp.Text("Positive"),
	}, interp.SexMale)
	if !strings.Contains(res.PatternSummary, "Antiphospholipid syndrome pattern") {
		t.Errorf("pattern = %q", res.PatternSummary)
	}
}

func TestAnalyze_SingleAPSMarkerIsNotAPattern(t *testing.T) {
	res := New().Analyze(map[string]interp.Value{
		"Anti_Cardiolipin_IgG": num(45),
	}, interp.SexMale)
	if strings.Contains(res.PatternSummary, "Antiphospholipid") {
		t.Errorf("one marker should not trigger the APS pattern: %q", res.PatternSummary)
	}
}

func TestAnalyze_QualitativeMarkers(t *testing.T) {
	res := New().Analyze(map[string]interp.Value{
		"ANA":         interp.Text("Negative"),
		"ANA_Pattern": interp.Text("Speckled"),
		"HLA_B27":     interp.Text("Positive"),
	}, interp.SexMale)

	if got := res.Status("ANA"); got != interp.StatusNormal {
		t.Errorf("ANA negative = %q, want normal", got)
	}
	// A reported pattern is descriptive, not a positivity call.
	if got := res.Status("ANA_Pattern"); got != interp.StatusNormal {
		t.Errorf("ANA_Pattern speckled = %q, want normal", got)
	}
	if got := res.Status("HLA_B27"); got != interp.StatusAbnormal {
		t.Errorf("HLA_B27 positive = %q, want abnormal", got)
	}
}

func TestAnalyze_TreatLowBoundsAsTargets(t *testing.T) {
	// RF of 2 sits below the printed range but is a desirable result.
	res := New().Analyze(map[string]interp.Value{"RF": num(2)}, interp.SexFemale)
	if got := res.Status("RF"); got != interp.StatusNormal {
		t.Errorf("RF 2 = %q, want normal", got)
	}
}

func TestAnalyze_ElevatedCRP(t *testing.T) {
	res := New().Analyze(map[string]interp.Value{"CRP": num(120)}, interp.SexMale)
	pr := res.Parameters["CRP"]
	if pr.Differential == nil || pr.Differential.Title != "Elevated CRP" {
		t.Fatalf("CRP differential = %+v", pr.Differential)
	}
	var infection bool
	for _, d := range pr.Differential.Differentials {
		if d.Condition == "Infection" {
			infection = true
		}
	}
	if !infection {
		t.Errorf("differentials = %+v", pr.Differential.Differentials)
	}
}
