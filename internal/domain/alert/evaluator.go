package alert

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/Beka01247/tmc-sapa-telemed-sub000/internal/domain/measurement"
	"github.com/Beka01247/tmc-sapa-telemed-sub000/internal/domain/threshold"
	"github.com/Beka01247/tmc-sapa-telemed-sub000/internal/platform/db"
)

// Evaluator reconciles a patient's alert state for one measurement type
// against the configured threshold whenever a new measurement lands.
// It satisfies the measurement service's evaluator hook.
type Evaluator struct {
	thresholds threshold.Repository
	alerts     Repository
	tx         db.TxRunner
	log        zerolog.Logger
}

func NewEvaluator(thresholds threshold.Repository, alerts Repository, tx db.TxRunner, log zerolog.Logger) *Evaluator {
	return &Evaluator{thresholds: thresholds, alerts: alerts, tx: tx, log: log}
}

// Evaluate runs in its own transaction: the threshold row is locked for the
// duration, so concurrent measurements of the same pair serialize and the
// pair never shows more than one alert. No configured threshold means the
// pair's alerts are left untouched.
func (e *Evaluator) Evaluate(ctx context.Context, m *measurement.Measurement) error {
	return e.tx.Run(ctx, func(ctx context.Context) error {
		th, err := e.thresholds.FindForUpdate(ctx, m.UserID, m.Type)
		if err != nil {
			return fmt.Errorf("load threshold: %w", err)
		}
		if th == nil {
			return nil
		}

		critical, err := exceedsThreshold(m, th)
		if err != nil {
			return err
		}

		if err := e.alerts.DeleteByPatientAndType(ctx, m.UserID, m.Type); err != nil {
			return fmt.Errorf("clear alerts: %w", err)
		}
		if !critical {
			return nil
		}

		a := &Alert{
			PatientID:     m.UserID,
			MeasurementID: m.ID,
			ThresholdID:   &th.ID,
			Status:        StatusCritical,
			Message:       criticalMessage(m),
		}
		if err := e.alerts.Create(ctx, a); err != nil {
			return fmt.Errorf("create alert: %w", err)
		}
		e.log.Info().
			Str("patient_id", m.UserID.String()).
			Str("type", string(m.Type)).
			Str("alert_id", a.ID.String()).
			Msg("critical alert raised")
		return nil
	})
}

// exceedsThreshold reports whether the measurement falls strictly outside any
// configured bound. Values equal to a bound are in range. Text measurements
// and thresholds without bounds never trip.
func exceedsThreshold(m *measurement.Measurement, th *threshold.Threshold) (bool, error) {
	def, ok := measurement.Lookup(m.Type)
	if !ok || !def.Numeric() || !th.HasBounds() {
		return false, nil
	}

	out, err := outsideBounds(m.Value1, th.MinValue, th.MaxValue)
	if err != nil {
		return false, err
	}
	if out {
		return true, nil
	}

	if def.Kind == measurement.KindDouble && m.Value2 != nil {
		return outsideBounds(*m.Value2, th.MinValue2, th.MaxValue2)
	}
	return false, nil
}

func outsideBounds(value string, min, max *string) (bool, error) {
	if min == nil && max == nil {
		return false, nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return false, fmt.Errorf("non-numeric measurement value %q: %w", value, err)
	}
	if min != nil {
		lo, err := strconv.ParseFloat(*min, 64)
		if err != nil {
			return false, fmt.Errorf("non-numeric bound %q: %w", *min, err)
		}
		if v < lo {
			return true, nil
		}
	}
	if max != nil {
		hi, err := strconv.ParseFloat(*max, 64)
		if err != nil {
			return false, fmt.Errorf("non-numeric bound %q: %w", *max, err)
		}
		if v > hi {
			return true, nil
		}
	}
	return false, nil
}

// criticalMessage formats the patient-facing alert text. Blood pressure has
// its own two-component phrasing; everything else uses the catalog title.
func criticalMessage(m *measurement.Measurement) string {
	def, _ := measurement.Lookup(m.Type)
	if def.Kind == measurement.KindDouble {
		v2 := ""
		if m.Value2 != nil {
			v2 = *m.Value2
		}
		return fmt.Sprintf("%s %s/%s вне нормальных значений", def.Title, m.Value1, v2)
	}
	return fmt.Sprintf("%s: %s, вне нормальных значений", def.Title, m.Value1)
}
