package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bloodlens/bloodlens/internal/interp"
)

// TxRunner runs fn with transactional semantics. Production wiring uses
// db.WithTx; tests pass nil to run fn directly.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

// Service provides business logic for the report domain: validating
// submissions, running the interpretation engine, and persisting results.
type Service struct {
	reports  Repository
	registry *interp.Registry
	inTx     TxRunner
}

func NewService(reports Repository, registry *interp.Registry, inTx TxRunner) *Service {
	if inTx == nil {
		inTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}
	}
	return &Service{reports: reports, registry: registry, inTx: inTx}
}

func (s *Service) validate(r *Report) error {
	if r.PatientName == "" {
		return fmt.Errorf("patient_name is required")
	}
	if r.PatientAge < 0 || r.PatientAge > 120 {
		return fmt.Errorf("patient_age must be between 0 and 120, got %d", r.PatientAge)
	}
	if len(r.Values) == 0 {
		return fmt.Errorf("at least one parameter value is required")
	}
	return nil
}

// Analyze runs the interpretation engine without persisting anything.
func (s *Service) Analyze(values map[string]interp.Value, sex interp.Sex) map[string]*interp.Result {
	return s.registry.AnalyzeAll(values, sex)
}

// CreateReport validates, analyzes, and stores a new report.
func (s *Service) CreateReport(ctx context.Context, r *Report) error {
	if err := s.validate(r); err != nil {
		return err
	}
	r.Analysis = s.registry.AnalyzeAll(r.Values, r.Sex())
	return s.reports.Create(ctx, r)
}

func (s *Service) GetReport(ctx context.Context, id uuid.UUID) (*Report, error) {
	return s.reports.GetByID(ctx, id)
}

// UpdateReport replaces a report's values and patient details and re-runs
// the analysis. The read-modify-write runs in one transaction.
func (s *Service) UpdateReport(ctx context.Context, r *Report) error {
	if err := s.validate(r); err != nil {
		return err
	}
	return s.inTx(ctx, func(ctx context.Context) error {
		existing, err := s.reports.GetByID(ctx, r.ID)
		if err != nil {
			return err
		}
		r.CreatedAt = existing.CreatedAt
		r.Analysis = s.registry.AnalyzeAll(r.Values, r.Sex())
		return s.reports.Update(ctx, r)
	})
}

func (s *Service) DeleteReport(ctx context.Context, id uuid.UUID) error {
	return s.reports.Delete(ctx, id)
}

func (s *Service) ListReports(ctx context.Context, limit, offset int) ([]*Report, int, error) {
	return s.reports.List(ctx, limit, offset)
}

func (s *Service) ListReportsByPatient(ctx context.Context, patientName string, limit, offset int) ([]*Report, int, error) {
	return s.reports.ListByPatient(ctx, patientName, limit, offset)
}

// Summary renders the stored analysis of a report as a plain-text document.
func (s *Service) Summary(ctx context.Context, id uuid.UUID) (string, error) {
	r, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return interp.Summary(r.Analysis, r.PatientName, r.PatientAge, r.Sex(), time.Now().UTC()), nil
}

// PanelInfo describes one registered panel for the catalog endpoint.
type PanelInfo struct {
	Name       string   `json:"name"`
	Parameters []string `json:"parameters"`
}

// Panels lists the registered panels and the parameters each owns, in
// registration order.
func (s *Service) Panels() []PanelInfo {
	names := s.registry.Names()
	out := make([]PanelInfo, 0, len(names))
	for _, name := range names {
		p, ok := s.registry.Get(name)
		if !ok {
			continue
		}
		out = append(out, PanelInfo{Name: name, Parameters: p.Parameters()})
	}
	return out
}
