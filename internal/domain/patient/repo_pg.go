package patient

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

const cols = `id, full_name, email, iin, telephone, city, organization, user_type, date_of_birth, gender, created_at`

func (r *repoPG) scan(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.FullName, &p.Email, &p.IIN, &p.Telephone, &p.City, &p.Organization, &p.UserType, &p.DateOfBirth, &p.Gender, &p.CreatedAt)
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	p.UserType = UserTypePatient
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO users (id, full_name, email, iin, telephone, city, organization, user_type, date_of_birth, gender)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING created_at`,
		p.ID, p.FullName, p.Email, p.IIN, p.Telephone, p.City, p.Organization, p.UserType, p.DateOfBirth, p.Gender).Scan(&p.CreatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	p, err := r.scan(r.conn(ctx).QueryRow(ctx, `SELECT `+cols+` FROM users WHERE id = $1 AND user_type = 'PATIENT'`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

func (r *repoPG) GetByEmail(ctx context.Context, email string) (*Patient, error) {
	p, err := r.scan(r.conn(ctx).QueryRow(ctx, `SELECT `+cols+` FROM users WHERE email = $1 AND user_type = 'PATIENT'`, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

func (r *repoPG) ListByOrgAndCity(ctx context.Context, organization, city string, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `
		SELECT COUNT(*) FROM users
		WHERE user_type = 'PATIENT' AND organization = $1 AND city = $2`,
		organization, city).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+cols+` FROM users
		WHERE user_type = 'PATIENT' AND organization = $1 AND city = $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
		organization, city, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Patient
	for rows.Next() {
		p, err := r.scan(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}
