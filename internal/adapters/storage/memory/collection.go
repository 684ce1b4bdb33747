package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"pet-records/internal/domain/records"
)

type entry struct {
	seq uint64
	doc []byte
	// fields es el documento decodificado de forma genérica, para filtrar.
	fields map[string]any
}

// Collection es una colección documental en memoria. Guarda el JSON de cada
// registro (no el valor Go), así que nunca comparte memoria con el caller.
type Collection[T any] struct {
	mu   sync.RWMutex
	byID map[string]*entry
	seq  uint64
}

func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{
		byID: make(map[string]*entry),
	}
}

var _ records.Store[struct{}] = (*Collection[struct{}])(nil)

func (c *Collection[T]) Save(ctx context.Context, id string, rec T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return errors.New("record id required")
	}

	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(doc, &fields); err != nil {
		return fmt.Errorf("decode document fields: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, exists := c.byID[id]; exists {
		e.doc = doc
		e.fields = fields
		return nil
	}
	c.seq++
	c.byID[id] = &entry{seq: c.seq, doc: doc, fields: fields}
	return nil
}

func (c *Collection[T]) Find(ctx context.Context, filter records.Filter) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	// Copiamos seq/doc bajo el lock: Save reescribe las entradas existentes.
	c.mu.RLock()
	matched := make([]entry, 0)
	for _, e := range c.byID {
		if matches(e.fields, filter) {
			matched = append(matched, entry{seq: e.seq, doc: e.doc})
		}
	}
	c.mu.RUnlock()

	// Orden de inserción, igual que los adapters SQL.
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].seq < matched[j].seq
	})

	out := make([]T, 0, len(matched))
	for _, e := range matched {
		var rec T
		if err := json.Unmarshal(e.doc, &rec); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (c *Collection[T]) FindOne(ctx context.Context, filter records.Filter) (T, bool, error) {
	var zero T
	all, err := c.Find(ctx, filter)
	if err != nil {
		return zero, false, err
	}
	if len(all) == 0 {
		return zero, false, nil
	}
	return all[0], true, nil
}

// Len es útil en tests.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byID)
}

func matches(fields map[string]any, filter records.Filter) bool {
	for k, want := range filter {
		v, ok := fields[k]
		if !ok || v == nil {
			return false
		}
		if fmt.Sprint(v) != want {
			return false
		}
	}
	return true
}
