package alert

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

const cols = `id, patient_id, measurement_id, critical_value_id, status, message,
	acknowledged, acknowledged_by, acknowledged_at, created_at`

// viewCols joins in the patient's name and the measurement's type for list
// endpoints. a/u/m aliases match the FROM clauses below.
const viewCols = `a.id, a.patient_id, a.measurement_id, a.critical_value_id, a.status, a.message,
	a.acknowledged, a.acknowledged_by, a.acknowledged_at, a.created_at, u.full_name, m.type`

func (r *repoPG) scan(row pgx.Row) (*Alert, error) {
	var a Alert
	err := row.Scan(&a.ID, &a.PatientID, &a.MeasurementID, &a.ThresholdID, &a.Status, &a.Message,
		&a.Acknowledged, &a.AcknowledgedBy, &a.AcknowledgedAt, &a.CreatedAt)
	return &a, err
}

func (r *repoPG) scanView(row pgx.Row) (*View, error) {
	var v View
	err := row.Scan(&v.ID, &v.PatientID, &v.MeasurementID, &v.ThresholdID, &v.Status, &v.Message,
		&v.Acknowledged, &v.AcknowledgedBy, &v.AcknowledgedAt, &v.CreatedAt, &v.PatientName, &v.MeasurementType)
	return &v, err
}

func (r *repoPG) Create(ctx context.Context, a *Alert) error {
	a.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO patient_alerts (id, patient_id, measurement_id, critical_value_id, status, message)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING acknowledged, created_at`,
		a.ID, a.PatientID, a.MeasurementID, a.ThresholdID, a.Status, a.Message).Scan(&a.Acknowledged, &a.CreatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Alert, error) {
	a, err := r.scan(r.conn(ctx).QueryRow(ctx, `SELECT `+cols+` FROM patient_alerts WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *repoPG) DeleteByPatientAndType(ctx context.Context, patientID uuid.UUID, mt measurement.Type) error {
	_, err := r.conn(ctx).Exec(ctx, `
		DELETE FROM patient_alerts a
		USING measurements m
		WHERE a.measurement_id = m.id AND a.patient_id = $1 AND m.type = $2`,
		patientID, mt)
	return err
}

func (r *repoPG) DeleteUnacknowledgedByPatientAndType(ctx context.Context, patientID uuid.UUID, mt measurement.Type) error {
	_, err := r.conn(ctx).Exec(ctx, `
		DELETE FROM patient_alerts a
		USING measurements m
		WHERE a.measurement_id = m.id AND a.patient_id = $1 AND m.type = $2 AND NOT a.acknowledged`,
		patientID, mt)
	return err
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, unackOnly bool) ([]*View, error) {
	q := `
		SELECT ` + viewCols + `
		FROM patient_alerts a
		JOIN users u ON u.id = a.patient_id
		JOIN measurements m ON m.id = a.measurement_id
		WHERE a.patient_id = $1`
	if unackOnly {
		q += ` AND NOT a.acknowledged`
	}
	q += ` ORDER BY a.created_at DESC`

	rows, err := r.conn(ctx).Query(ctx, q, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collectViews(rows)
}

func (r *repoPG) ListUnacknowledged(ctx context.Context, limit, offset int) ([]*View, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+viewCols+`
		FROM patient_alerts a
		JOIN users u ON u.id = a.patient_id
		JOIN measurements m ON m.id = a.measurement_id
		WHERE NOT a.acknowledged
		ORDER BY a.created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collectViews(rows)
}

func (r *repoPG) collectViews(rows pgx.Rows) ([]*View, error) {
	var items []*View
	for rows.Next() {
		v, err := r.scanView(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

func (r *repoPG) AcknowledgePending(ctx context.Context, id, byUserID uuid.UUID) (*Alert, error) {
	a, err := r.scan(r.conn(ctx).QueryRow(ctx, `
		UPDATE patient_alerts
		SET acknowledged = TRUE, acknowledged_by = $2, acknowledged_at = NOW()
		WHERE id = $1 AND NOT acknowledged
		RETURNING `+cols, id, byUserID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *repoPG) AcknowledgeByPatientAndType(ctx context.Context, patientID uuid.UUID, mt measurement.Type, byUserID uuid.UUID) ([]*Alert, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		UPDATE patient_alerts a
		SET acknowledged = TRUE, acknowledged_by = $3, acknowledged_at = NOW()
		FROM measurements m
		WHERE a.measurement_id = m.id AND a.patient_id = $1 AND m.type = $2 AND NOT a.acknowledged
		RETURNING a.id, a.patient_id, a.measurement_id, a.critical_value_id, a.status, a.message,
			a.acknowledged, a.acknowledged_by, a.acknowledged_at, a.created_at`,
		patientID, mt, byUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Alert
	for rows.Next() {
		a, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
