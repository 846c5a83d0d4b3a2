package report

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines CRUD operations for stored blood reports.
type Repository interface {
	Create(ctx context.Context, r *Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*Report, error)
	Update(ctx context.Context, r *Report) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Report, int, error)
	ListByPatient(ctx context.Context, patientName string, limit, offset int) ([]*Report, int, error)
}
