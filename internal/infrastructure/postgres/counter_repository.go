package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

var _ repository.CounterRepository = (*CounterRepo)(nil)

// CounterRepo asigna consecutivos atómicos por (scope, period) con un upsert
// de incremento. El RETURNING garantiza que dos llamadas concurrentes nunca
// reciban el mismo número.
type CounterRepo struct {
	q Querier
}

// NewCounterRepository construye el adaptador de consecutivos. Pasar pool o tx (Querier).
func NewCounterRepository(q Querier) *CounterRepo {
	return &CounterRepo{q: q}
}

// Next devuelve el siguiente consecutivo para (scope, period), empezando en 1.
func (r *CounterRepo) Next(scope, period string) (int64, error) {
	query := `
		INSERT INTO counters (scope, period, value)
		VALUES ($1, $2, 1)
		ON CONFLICT (scope, period)
		DO UPDATE SET value = counters.value + 1
		RETURNING value`
	var value int64
	if err := r.q.QueryRow(context.Background(), query, scope, period).Scan(&value); err != nil {
		return 0, fmt.Errorf("next counter %s/%s: %w", scope, period, err)
	}
	return value, nil
}
