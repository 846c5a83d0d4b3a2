package interp

import "testing"

func TestParseSex(t *testing.T) {
	cases := map[string]Sex{
		"male":   SexMale,
		"M":      SexMale,
		"Female": SexFemale,
		"f":      SexFemale,
		"":       SexUnknown,
		"other":  SexUnknown,
	}
	for in, want := range cases {
		if got := ParseSex(in); got != want {
			t.Errorf("ParseSex(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestClassify(t *testing.T) {
	r := NewRange(13.5, 17.5, "g/dL").WithCritical(7.0, 20.0)

	cases := []struct {
		value float64
		want  Status
	}{
		{15.0, StatusNormal},
		{13.5, StatusNormal},
		{17.5, StatusNormal},
		{12.0, StatusLow},
		{18.0, StatusHigh},
		{6.5, StatusCriticalLow},
		{21.0, StatusCriticalHigh},
	}
	for _, tc := range cases {
		if got := Classify(tc.value, r); got != tc.want {
			t.Errorf("Classify(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestClassify_NilBand(t *testing.T) {
	if got := Classify(10, nil); got != StatusUnknown {
		t.Errorf("Classify with nil band = %q, want unknown", got)
	}
}

func TestClassify_NoCriticals(t *testing.T) {
	r := NewRange(7, 56, "U/L")
	if got := Classify(500, r); got != StatusHigh {
		t.Errorf("Classify(500) = %q, want high without critical thresholds", got)
	}
}

func TestClassifyDesirable(t *testing.T) {
	// Floor at zero: values below the range's low are never flagged.
	ldl := NewRange(0, 100, "mg/dL").WithCritical(0, 500)
	if got := ClassifyDesirable(40, ldl); got != StatusNormal {
		t.Errorf("ClassifyDesirable(40) = %q, want normal for zero-floor band", got)
	}
	if got := ClassifyDesirable(160, ldl); got != StatusHigh {
		t.Errorf("ClassifyDesirable(160) = %q, want high", got)
	}
	if got := ClassifyDesirable(600, ldl); got != StatusCriticalHigh {
		t.Errorf("ClassifyDesirable(600) = %q, want critical_high", got)
	}

	// Non-zero floor still flags low (HDL).
	hdl := NewRange(40, 100, "mg/dL")
	if got := ClassifyDesirable(30, hdl); got != StatusLow {
		t.Errorf("ClassifyDesirable(30) = %q, want low for non-zero floor", got)
	}
}

func TestForSex(t *testing.T) {
	male := NewRange(13.5, 17.5, "g/dL")
	female := NewRange(12.0, 16.0, "g/dL")
	table := BySex(male, female, male)

	if got := table.ForSex(SexMale); got != male {
		t.Error("ForSex(male) did not return male band")
	}
	if got := table.ForSex(SexFemale); got != female {
		t.Error("ForSex(female) did not return female band")
	}
	if got := table.ForSex(SexUnknown); got != male {
		t.Error("ForSex(unknown) did not fall back to default band")
	}

	shared := Shared(NewRange(0.4, 4.0, "mIU/L"))
	if got := shared.ForSex(SexFemale); got != shared.Default {
		t.Error("shared table must resolve to the default band for every sex")
	}
}

func TestStatusDirection(t *testing.T) {
	cases := map[Status]string{
		StatusLow:          "low",
		StatusCriticalLow:  "low",
		StatusHigh:         "high",
		StatusCriticalHigh: "high",
		StatusAbnormal:     "abnormal",
		StatusNormal:       "",
		StatusUnknown:      "",
	}
	for in, want := range cases {
		if got := in.Direction(); got != want {
			t.Errorf("%q.Direction() = %q, want %q", in, got, want)
		}
	}
}
