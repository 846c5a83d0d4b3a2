package report

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bloodlens/bloodlens/internal/interp"
	"github.com/bloodlens/bloodlens/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx, ok := db.TxFromContext(ctx); ok {
		return tx
	}
	return r.pool
}

const reportCols = `id, patient_name, patient_age, patient_sex, report_values, analysis, created_at, updated_at`

func (r *repoPG) scanReport(row pgx.Row) (*Report, error) {
	var rep Report
	var valuesJSON, analysisJSON []byte
	err := row.Scan(&rep.ID, &rep.PatientName, &rep.PatientAge, &rep.PatientSex,
		&valuesJSON, &analysisJSON, &rep.CreatedAt, &rep.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(valuesJSON, &rep.Values); err != nil {
		return nil, fmt.Errorf("decode report values: %w", err)
	}
	if err := json.Unmarshal(analysisJSON, &rep.Analysis); err != nil {
		return nil, fmt.Errorf("decode report analysis: %w", err)
	}
	return &rep, nil
}

func encodeReport(values map[string]interp.Value, analysis map[string]*interp.Result) ([]byte, []byte, error) {
	valuesJSON, err := json.Marshal(values)
	if err != nil {
		return nil, nil, fmt.Errorf("encode report values: %w", err)
	}
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return nil, nil, fmt.Errorf("encode report analysis: %w", err)
	}
	return valuesJSON, analysisJSON, nil
}

func (r *repoPG) Create(ctx context.Context, rep *Report) error {
	rep.ID = uuid.New()
	valuesJSON, analysisJSON, err := encodeReport(rep.Values, rep.Analysis)
	if err != nil {
		return err
	}
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO reports (id, patient_name, patient_age, patient_sex, report_values, analysis)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at, updated_at`,
		rep.ID, rep.PatientName, rep.PatientAge, rep.PatientSex, valuesJSON, analysisJSON).
		Scan(&rep.CreatedAt, &rep.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Report, error) {
	return r.scanReport(r.conn(ctx).QueryRow(ctx, `SELECT `+reportCols+` FROM reports WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, rep *Report) error {
	valuesJSON, analysisJSON, err := encodeReport(rep.Values, rep.Analysis)
	if err != nil {
		return err
	}
	_, err = r.conn(ctx).Exec(ctx, `
		UPDATE reports SET patient_name=$2, patient_age=$3, patient_sex=$4,
			report_values=$5, analysis=$6, updated_at=NOW()
		WHERE id = $1`,
		rep.ID, rep.PatientName, rep.PatientAge, rep.PatientSex, valuesJSON, analysisJSON)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Report, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM reports`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+reportCols+` FROM reports ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Report
	for rows.Next() {
		rep, err := r.scanReport(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, rep)
	}
	return items, total, rows.Err()
}

func (r *repoPG) ListByPatient(ctx context.Context, patientName string, limit, offset int) ([]*Report, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM reports WHERE patient_name = $1`, patientName).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+reportCols+` FROM reports WHERE patient_name = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, patientName, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Report
	for rows.Next() {
		rep, err := r.scanReport(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, rep)
	}
	return items, total, rows.Err()
}
