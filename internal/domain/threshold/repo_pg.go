package threshold

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Beka01247/tmc-sapa-telemed-sub000/internal/domain/measurement"
	"github.com/Beka01247/tmc-sapa-telemed-sub000/internal/platform/db"
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
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

// Bounds come back as text so the NUMERIC values survive unrounded.
const cols = `id, patient_id, provider_id, measurement_type, min_value::text, max_value::text,
	min_value2::text, max_value2::text, notes, created_at, updated_at`

func (r *repoPG) scan(row pgx.Row) (*Threshold, error) {
	var t Threshold
	err := row.Scan(&t.ID, &t.PatientID, &t.ProviderID, &t.MeasurementType,
		&t.MinValue, &t.MaxValue, &t.MinValue2, &t.MaxValue2, &t.Notes,
		&t.CreatedAt, &t.UpdatedAt)
	return &t, err
}

func (r *repoPG) Upsert(ctx context.Context, t *Threshold) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO critical_values (id, patient_id, provider_id, measurement_type,
			min_value, max_value, min_value2, max_value2, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (patient_id, measurement_type) DO UPDATE SET
			provider_id = EXCLUDED.provider_id,
			min_value   = EXCLUDED.min_value,
			max_value   = EXCLUDED.max_value,
			min_value2  = EXCLUDED.min_value2,
			max_value2  = EXCLUDED.max_value2,
			notes       = EXCLUDED.notes,
			updated_at  = NOW()
		RETURNING id, created_at, updated_at`,
		t.ID, t.PatientID, t.ProviderID, t.MeasurementType,
		t.MinValue, t.MaxValue, t.MinValue2, t.MaxValue2, t.Notes).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *repoPG) Find(ctx context.Context, patientID uuid.UUID, mt measurement.Type) (*Threshold, error) {
	t, err := r.scan(r.conn(ctx).QueryRow(ctx,
		`SELECT `+cols+` FROM critical_values WHERE patient_id = $1 AND measurement_type = $2`,
		patientID, mt))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *repoPG) FindForUpdate(ctx context.Context, patientID uuid.UUID, mt measurement.Type) (*Threshold, error) {
	t, err := r.scan(r.conn(ctx).QueryRow(ctx,
		`SELECT `+cols+` FROM critical_values WHERE patient_id = $1 AND measurement_type = $2 FOR UPDATE`,
		patientID, mt))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Threshold, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+cols+` FROM critical_values WHERE patient_id = $1 ORDER BY measurement_type`,
		patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Threshold
	for rows.Next() {
		t, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, nil
}

func (r *repoPG) Delete(ctx context.Context, patientID uuid.UUID, mt measurement.Type) (bool, error) {
	tag, err := r.conn(ctx).Exec(ctx,
		`DELETE FROM critical_values WHERE patient_id = $1 AND measurement_type = $2`,
		patientID, mt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
