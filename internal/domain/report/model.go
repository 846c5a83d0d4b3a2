package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/bloodlens/bloodlens/internal/interp"
)

// Report maps to the reports table. Values holds the lab results as
// submitted; Analysis holds the per-panel interpretation computed from them.
type Report struct {
	ID          uuid.UUID                 `db:"id" json:"id"`
	PatientName string                    `db:"patient_name" json:"patient_name"`
	PatientAge  int                       `db:"patient_age" json:"patient_age"`
	PatientSex  string                    `db:"patient_sex" json:"patient_sex"`
	Values      map[string]interp.Value   `db:"values" json:"values"`
	Analysis    map[string]*interp.Result `db:"analysis" json:"analysis"`
	CreatedAt   time.Time                 `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time                 `db:"updated_at" json:"updated_at"`
}

// Sex returns the patient sex parsed into the form the interpreter expects.
func (r *Report) Sex() interp.Sex {
	return interp.ParseSex(r.PatientSex)
}
