package interp

import (
	"strings"
	"testing"
)

func testConfig() Config {
	return Config{
		Panel: "Test",
		Ranges: map[string]RangeTable{
			"Hemoglobin": Shared(NewRange(13.5, 17.5, "g/dL").WithCritical(7.0, 20.0)),
			"WBC":        Shared(NewRange(4.0, 11.0, "10^3/uL")),
		},
		Qualitative: map[string][]string{
			"Urine_Protein": {"negative", "nil", "absent", "trace"},
		},
		Differentials: map[string]map[string]DifferentialSet{
			"Hemoglobin": {
				"low": {Title: "Anemia", Differentials: []Differential{
					{Condition: "Iron Deficiency", Discussion: "Most common cause."},
				}},
			},
		},
	}
}

func TestEvaluate_Normal(t *testing.T) {
	res := Evaluate(testConfig(), map[string]Value{
		"Hemoglobin": Number(15.0),
		"WBC":        Number(7.2),
	}, SexMale)

	if res.TotalParameters != 2 {
		t.Fatalf("TotalParameters = %d, want 2", res.TotalParameters)
	}
	if res.AbnormalCount != 0 || res.CriticalCount != 0 {
		t.Errorf("counts = (%d abnormal, %d critical), want zero", res.AbnormalCount, res.CriticalCount)
	}
	if got := res.Status("Hemoglobin"); got != StatusNormal {
		t.Errorf("Hemoglobin status = %q, want normal", got)
	}
}

func TestEvaluate_AbnormalAttachesDifferential(t *testing.T) {
	res := Evaluate(testConfig(), map[string]Value{"Hemoglobin": Number(10.0)}, SexMale)

	if res.AbnormalCount != 1 {
		t.Fatalf("AbnormalCount = %d, want 1", res.AbnormalCount)
	}
	pr := res.Parameters["Hemoglobin"]
	if pr.Differential == nil || pr.Differential.Title != "Anemia" {
		t.Fatalf("expected anemia differential, got %+v", pr.Differential)
	}
	if len(res.Abnormalities) != 1 || res.Abnormalities[0].Parameter != "Hemoglobin" {
		t.Errorf("abnormalities = %+v", res.Abnormalities)
	}
}

func TestEvaluate_Critical(t *testing.T) {
	res := Evaluate(testConfig(), map[string]Value{"Hemoglobin": Number(6.0)}, SexMale)

	if res.CriticalCount != 1 {
		t.Fatalf("CriticalCount = %d, want 1", res.CriticalCount)
	}
	cv := res.CriticalValues[0]
	if cv.Status != StatusCriticalLow {
		t.Errorf("status = %q, want critical_low", cv.Status)
	}
	if !strings.Contains(cv.Message, "below the critical threshold of 7") {
		t.Errorf("unexpected critical message: %q", cv.Message)
	}
	// Critical low still keys the "low" differential table.
	if pr := res.Parameters["Hemoglobin"]; pr.Differential == nil {
		t.Error("critical_low should attach the low differential")
	}
}

func TestEvaluate_Qualitative(t *testing.T) {
	res := Evaluate(testConfig(), map[string]Value{
		"Urine_Protein": Text("Negative"),
	}, SexUnknown)
	if got := res.Status("Urine_Protein"); got != StatusNormal {
		t.Errorf("status = %q, want normal for negative result", got)
	}

	res = Evaluate(testConfig(), map[string]Value{
		"Urine_Protein": Text("2+"),
	}, SexUnknown)
	if got := res.Status("Urine_Protein"); got != StatusAbnormal {
		t.Errorf("status = %q, want abnormal for 2+ result", got)
	}
}

func TestEvaluate_PositiveTerms(t *testing.T) {
	cfg := Config{
		Panel: "Serology",
		Positive: map[string][]string{
			"ANA": {"positive", "detected", "reactive", "yes", "+"},
		},
	}

	res := Evaluate(cfg, map[string]Value{"ANA": Text("Positive 1:160")}, SexFemale)
	if got := res.Status("ANA"); got != StatusAbnormal {
		t.Errorf("status = %q, want abnormal for positive serology", got)
	}

	res = Evaluate(cfg, map[string]Value{"ANA": Text("negative")}, SexFemale)
	if got := res.Status("ANA"); got != StatusNormal {
		t.Errorf("status = %q, want normal for negative serology", got)
	}
}

func TestEvaluate_UnknownParameter(t *testing.T) {
	res := Evaluate(testConfig(), map[string]Value{"Mystery": Number(42)}, SexMale)
	if got := res.Status("Mystery"); got != StatusUnknown {
		t.Errorf("status = %q, want unknown for unconfigured parameter", got)
	}
	if res.AbnormalCount != 0 {
		t.Errorf("unknown parameters must not count as abnormal")
	}
}

func TestEvaluate_AbnormalAsOverride(t *testing.T) {
	cfg := Config{
		Panel:    "Serology",
		Positive: map[string][]string{"HLA_B27": {"positive"}},
		Differentials: map[string]map[string]DifferentialSet{
			"HLA_B27": {"high": {Title: "Spondyloarthropathy"}},
		},
		AbnormalAs: "high",
	}
	res := Evaluate(cfg, map[string]Value{"HLA_B27": Text("positive")}, SexMale)
	pr := res.Parameters["HLA_B27"]
	if pr.Differential == nil || pr.Differential.Title != "Spondyloarthropathy" {
		t.Errorf("qualitative abnormal should key the high differential, got %+v", pr.Differential)
	}
}
