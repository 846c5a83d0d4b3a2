package report

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/bloodlens/bloodlens/internal/interp"
	"github.com/bloodlens/bloodlens/internal/interp/glucose"
	"github.com/bloodlens/bloodlens/internal/interp/hematology"
)

type mockReportRepo struct {
	reports map[uuid.UUID]*Report
}

func newMockReportRepo() *mockReportRepo {
	return &mockReportRepo{reports: make(map[uuid.UUID]*Report)}
}

func (m *mockReportRepo) Create(_ context.Context, r *Report) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	m.reports[r.ID] = r
	return nil
}

func (m *mockReportRepo) GetByID(_ context.Context, id uuid.UUID) (*Report, error) {
	r, ok := m.reports[id]
	if !ok {
		return nil, fmt.Errorf("report %s not found", id)
	}
	return r, nil
}

func (m *mockReportRepo) Update(_ context.Context, r *Report) error {
	if _, ok := m.reports[r.ID]; !ok {
		return fmt.Errorf("report %s not found", r.ID)
	}
	r.UpdatedAt = time.Now().UTC()
	m.reports[r.ID] = r
	return nil
}

func (m *mockReportRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.reports[id]; !ok {
		return fmt.Errorf("report %s not found", id)
	}
	delete(m.reports, id)
	return nil
}

func (m *mockReportRepo) List(_ context.Context, limit, offset int) ([]*Report, int, error) {
	var out []*Report
	for _, r := range m.reports {
		out = append(out, r)
	}
	return out, len(m.reports), nil
}

func (m *mockReportRepo) ListByPatient(_ context.Context, patientName string, limit, offset int) ([]*Report, int, error) {
	var out []*Report
	for _, r := range m.reports {
		if r.PatientName == patientName {
			out = append(out, r)
		}
	}
	return out, len(out), nil
}

func newTestService(repo Repository) *Service {
	reg := interp.NewRegistry()
	reg.Register(hematology.New())
	reg.Register(glucose.New())
	return NewService(repo, reg, nil)
}

func validReport() *Report {
	return &Report{
		PatientName: "Jane Doe",
		PatientAge:  42,
		PatientSex:  "female",
		Values: map[string]interp.Value{
			"Hemoglobin":      interp.Number(10.5),
			"Fasting_Glucose": interp.Number(130),
		},
	}
}

func TestCreateReport_RunsAnalysis(t *testing.T) {
	repo := newMockReportRepo()
	svc := newTestService(repo)

	r := validReport()
	if err := svc.CreateReport(context.Background(), r); err != nil {
		t.Fatalf("CreateReport: %v", err)
	}
	if r.ID == uuid.Nil {
		t.Fatal("report was not assigned an ID")
	}

	cbc, ok := r.Analysis["CBC"]
	if !ok {
		t.Fatal("CBC analysis missing")
	}
	if got := cbc.Status("Hemoglobin"); got != interp.StatusLow {
		t.Errorf("Hemoglobin status = %q, want low", got)
	}
	sugar, ok := r.Analysis["Sugar"]
	if !ok {
		t.Fatal("Sugar analysis missing")
	}
	if got := sugar.Status("Fasting_Glucose"); got != interp.StatusHigh {
		t.Errorf("Fasting_Glucose status = %q, want high", got)
	}
}

func TestCreateReport_Validation(t *testing.T) {
	svc := newTestService(newMockReportRepo())
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*Report)
		want   string
	}{
		{"missing name", func(r *Report) { r.PatientName = "" }, "patient_name is required"},
		{"negative age", func(r *Report) { r.PatientAge = -1 }, "patient_age"},
		{"implausible age", func(r *Report) { r.PatientAge = 150 }, "patient_age"},
		{"no values", func(r *Report) { r.Values = nil }, "at least one parameter value"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validReport()
			tc.mutate(r)
			err := svc.CreateReport(ctx, r)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %q, want substring %q", err, tc.want)
			}
		})
	}
}

func TestUpdateReport_ReanalyzesAndKeepsCreatedAt(t *testing.T) {
	repo := newMockReportRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	r := validReport()
	if err := svc.CreateReport(ctx, r); err != nil {
		t.Fatalf("CreateReport: %v", err)
	}
	created := r.CreatedAt

	updated := validReport()
	updated.ID = r.ID
	updated.Values = map[string]interp.Value{
		"Hemoglobin": interp.Number(13.5),
	}
	if err := svc.UpdateReport(ctx, updated); err != nil {
		t.Fatalf("UpdateReport: %v", err)
	}

	if !updated.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want preserved %v", updated.CreatedAt, created)
	}
	cbc := updated.Analysis["CBC"]
	if cbc == nil {
		t.Fatal("CBC analysis missing after update")
	}
	if got := cbc.Status("Hemoglobin"); got != interp.StatusNormal {
		t.Errorf("Hemoglobin status = %q, want normal after update", got)
	}
	if _, ok := updated.Analysis["Sugar"]; ok {
		t.Error("stale Sugar analysis retained after values were replaced")
	}
}

func TestUpdateReport_MissingReport(t *testing.T) {
	svc := newTestService(newMockReportRepo())
	r := validReport()
	r.ID = uuid.New()
	if err := svc.UpdateReport(context.Background(), r); err == nil {
		t.Fatal("expected error for unknown report")
	}
}

func TestUpdateReport_RunsInTransaction(t *testing.T) {
	repo := newMockReportRepo()
	reg := interp.NewRegistry()
	reg.Register(hematology.New())

	var txCalls int
	svc := NewService(repo, reg, func(ctx context.Context, fn func(ctx context.Context) error) error {
		txCalls++
		return fn(ctx)
	})

	r := &Report{
		PatientName: "John Roe",
		PatientAge:  55,
		PatientSex:  "male",
		Values:      map[string]interp.Value{"Hemoglobin": interp.Number(15)},
	}
	ctx := context.Background()
	if err := svc.CreateReport(ctx, r); err != nil {
		t.Fatalf("CreateReport: %v", err)
	}
	if err := svc.UpdateReport(ctx, r); err != nil {
		t.Fatalf("UpdateReport: %v", err)
	}
	if txCalls != 1 {
		t.Errorf("tx runner invoked %d times, want 1", txCalls)
	}
}

func TestDeleteReport(t *testing.T) {
	repo := newMockReportRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	r := validReport()
	if err := svc.CreateReport(ctx, r); err != nil {
		t.Fatalf("CreateReport: %v", err)
	}
	if err := svc.DeleteReport(ctx, r.ID); err != nil {
		t.Fatalf("DeleteReport: %v", err)
	}
	if _, err := svc.GetReport(ctx, r.ID); err == nil {
		t.Fatal("report still retrievable after delete")
	}
}

func TestAnalyze_Stateless(t *testing.T) {
	svc := newTestService(newMockReportRepo())
	results := svc.Analyze(map[string]interp.Value{
		"Hemoglobin": interp.Number(6.5),
	}, interp.SexMale)

	cbc, ok := results["CBC"]
	if !ok {
		t.Fatal("CBC result missing")
	}
	if cbc.CriticalCount != 1 {
		t.Errorf("CriticalCount = %d, want 1", cbc.CriticalCount)
	}
}

func TestSummary(t *testing.T) {
	repo := newMockReportRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	r := validReport()
	if err := svc.CreateReport(ctx, r); err != nil {
		t.Fatalf("CreateReport: %v", err)
	}

	text, err := svc.Summary(ctx, r.ID)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if !strings.Contains(text, "Jane Doe") {
		t.Errorf("summary missing patient name:\n%s", text)
	}
	if !strings.Contains(text, "CBC") {
		t.Errorf("summary missing panel section:\n%s", text)
	}
}

func TestPanels_RegistrationOrder(t *testing.T) {
	svc := newTestService(newMockReportRepo())
	panels := svc.Panels()
	if len(panels) != 2 {
		t.Fatalf("len(panels) = %d, want 2", len(panels))
	}
	if panels[0].Name != "CBC" || panels[1].Name != "Sugar" {
		t.Errorf("panel order = %s, %s; want CBC, Sugar", panels[0].Name, panels[1].Name)
	}
	if len(panels[0].Parameters) == 0 {
		t.Error("CBC parameter list empty")
	}
}

func TestListReportsByPatient(t *testing.T) {
	repo := newMockReportRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	for _, name := range []string{"Jane Doe", "Jane Doe", "John Roe"} {
		r := validReport()
		r.PatientName = name
		if err := svc.CreateReport(ctx, r); err != nil {
			t.Fatalf("CreateReport: %v", err)
		}
	}

	reports, total, err := svc.ListReportsByPatient(ctx, "Jane Doe", 20, 0)
	if err != nil {
		t.Fatalf("ListReportsByPatient: %v", err)
	}
	if total != 2 || len(reports) != 2 {
		t.Errorf("got %d reports (total %d), want 2", len(reports), total)
	}
}
