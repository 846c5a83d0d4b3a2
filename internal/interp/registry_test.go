package interp

import "testing"

type stubPanel struct {
	name    string
	params  []string
	borrows []string
	seen    map[string]Value
}

func (p *stubPanel) Name() string         { return p.name }
func (p *stubPanel) Parameters() []string { return p.params }
func (p *stubPanel) Analyze(values map[string]Value, sex Sex) *Result {
	p.seen = values
	return &Result{Panel: p.name, TotalParameters: len(values)}
}
func (p *stubPanel) Borrows() []string { return p.borrows }

func TestRegistry_RoutesToOwningPanel(t *testing.T) {
	cbc := &stubPanel{name: "CBC", params: []string{"Hemoglobin", "WBC"}}
	lft := &stubPanel{name: "LFT", params: []string{"ALT", "AST"}}

	reg := NewRegistry()
	reg.Register(cbc)
	reg.Register(lft)

	results := reg.AnalyzeAll(map[string]Value{
		"Hemoglobin": Number(15),
		"ALT":        Number(30),
	}, SexMale)

	if len(results) != 2 {
		t.Fatalf("expected 2 panel results, got %d", len(results))
	}
	if _, ok := cbc.seen["Hemoglobin"]; !ok {
		t.Error("CBC panel did not receive Hemoglobin")
	}
	if _, ok := lft.seen["ALT"]; !ok {
		t.Error("LFT panel did not receive ALT")
	}
}

func TestRegistry_FallbackToFirstPanel(t *testing.T) {
	cbc := &stubPanel{name: "CBC", params: []string{"Hemoglobin"}}
	lft := &stubPanel{name: "LFT", params: []string{"ALT"}}

	reg := NewRegistry()
	reg.Register(cbc)
	reg.Register(lft)

	reg.AnalyzeAll(map[string]Value{"Mystery": Number(1)}, SexMale)
	if _, ok := cbc.seen["Mystery"]; !ok {
		t.Error("unclaimed parameter should route to the first registered panel")
	}
}

func TestRegistry_FirstClaimWins(t *testing.T) {
	a := &stubPanel{name: "A", params: []string{"Shared"}}
	b := &stubPanel{name: "B", params: []string{"Shared"}}

	reg := NewRegistry()
	reg.Register(a)
	reg.Register(b)

	reg.AnalyzeAll(map[string]Value{"Shared": Number(1)}, SexMale)
	if a.seen == nil {
		t.Error("first-registered panel should own the contested parameter")
	}
	if b.seen != nil {
		t.Error("second panel must not receive the contested parameter")
	}
}

func TestRegistry_BorrowedParameters(t *testing.T) {
	lft := &stubPanel{name: "LFT", params: []string{"Albumin"}}
	kft := &stubPanel{name: "KFT", params: []string{"Calcium"}, borrows: []string{"Albumin"}}

	reg := NewRegistry()
	reg.Register(lft)
	reg.Register(kft)

	reg.AnalyzeAll(map[string]Value{
		"Albumin": Number(3.0),
		"Calcium": Number(8.5),
	}, SexFemale)

	if _, ok := kft.seen["Albumin"]; !ok {
		t.Error("borrowing panel should receive a copy of the borrowed parameter")
	}
	if _, ok := lft.seen["Albumin"]; !ok {
		t.Error("owner must still receive the borrowed parameter")
	}
}

func TestRegistry_Names(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&stubPanel{name: "CBC"})
	reg.Register(&stubPanel{name: "LFT"})
	reg.Register(&stubPanel{name: "CBC"}) // re-register keeps position

	names := reg.Names()
	if len(names) != 2 || names[0] != "CBC" || names[1] != "LFT" {
		t.Errorf("Names() = %v, want [CBC LFT]", names)
	}
}
