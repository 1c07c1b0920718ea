package recommendation

import (
	"context"

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

const cols = `id, patient_id, provider_id, description, created_at`

func (r *repoPG) Create(ctx context.Context, rec *Recommendation) error {
	rec.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO recommendations (id, patient_id, provider_id, description)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at`,
		rec.ID, rec.PatientID, rec.ProviderID, rec.Description).Scan(&rec.CreatedAt)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Recommendation, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+cols+` FROM recommendations WHERE patient_id = $1 ORDER BY created_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Recommendation
	for rows.Next() {
		var rec Recommendation
		if err := rows.Scan(&rec.ID, &rec.PatientID, &rec.ProviderID, &rec.Description, &rec.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &rec)
	}
	return items, rows.Err()
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM recommendations WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
