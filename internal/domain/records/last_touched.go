package records

import "sync"

// LastTouched es la referencia "último registro creado o actualizado" de un tipo.
// Se inyecta en el Service; no hay estado a nivel de paquete.
//
// Invariante: contiene la semilla o un registro cuyo último save fue exitoso.
type LastTouched[T any] struct {
	mu  sync.Mutex
	rec T
}

func NewLastTouched[T any](seed T) *LastTouched[T] {
	return &LastTouched[T]{rec: seed}
}

// Get devuelve una copia del registro actual.
func (c *LastTouched[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rec
}

// Replace reemplaza el registro (después de un save exitoso).
func (c *LastTouched[T]) Replace(rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rec = rec
}

// ReplaceIf reemplaza el registro por next solo si match(actual) es true.
func (c *LastTouched[T]) ReplaceIf(match func(cur T) bool, next T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !match(c.rec) {
		return false
	}
	c.rec = next
	return true
}

// Update corre fn con el lock tomado. Solo si fn no falla se guarda el resultado;
// si falla, la referencia queda como estaba.
func (c *LastTouched[T]) Update(fn func(cur T) (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := fn(c.rec)
	if err != nil {
		return c.rec, err
	}
	c.rec = next
	return next, nil
}
