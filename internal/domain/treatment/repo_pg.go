package treatment

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

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

const cols = `id, patient_id, provider_id, medication, dosage, frequency, duration, notes, created_at, updated_at`

func (r *repoPG) scan(row pgx.Row) (*Treatment, error) {
	var t Treatment
	err := row.Scan(&t.ID, &t.PatientID, &t.ProviderID, &t.Medication, &t.Dosage, &t.Frequency, &t.Duration, &t.Notes, &t.CreatedAt, &t.UpdatedAt)
	return &t, err
}

func (r *repoPG) Create(ctx context.Context, t *Treatment) error {
	t.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO treatments (id, patient_id, provider_id, medication, dosage, frequency, duration, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at, updated_at`,
		t.ID, t.PatientID, t.ProviderID, t.Medication, t.Dosage, t.Frequency, t.Duration, t.Notes).Scan(&t.CreatedAt, &t.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Treatment, error) {
	t, err := r.scan(r.conn(ctx).QueryRow(ctx, `SELECT `+cols+` FROM treatments WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return t, err
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Treatment, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+cols+` FROM treatments WHERE patient_id = $1 ORDER BY created_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Treatment
	for rows.Next() {
		t, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, t *Treatment) (bool, error) {
	err := r.conn(ctx).QueryRow(ctx, `
		UPDATE treatments
		SET medication = $2, dosage = $3, frequency = $4, duration = $5, notes = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`,
		t.ID, t.Medication, t.Dosage, t.Frequency, t.Duration, t.Notes).Scan(&t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM treatments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
