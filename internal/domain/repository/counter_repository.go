package repository

// CounterRepository asigna consecutivos atómicos por (scope, period).
// Ejemplos: ("work_order", "2026") para numeración anual de órdenes;
// ("movement:RECEIPT", "20260831") para numeración diaria por tipo.
// El incremento debe ser atómico en el store: nunca derivar el siguiente
// número escaneando los existentes.
type CounterRepository interface {
	Next(scope, period string) (int64, error)
}
