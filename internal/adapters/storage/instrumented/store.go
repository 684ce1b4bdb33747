// Package instrumented decora un records.Store con métricas de Prometheus.
package instrumented

import (
	"context"
	"time"

	"pet-records/internal/domain/records"
	"pet-records/internal/platform/metrics"
)

type store[T any] struct {
	collection string
	next       records.Store[T]
}

// Wrap mide cada operación de next bajo el label collection.
func Wrap[T any](collection string, next records.Store[T]) records.Store[T] {
	return &store[T]{collection: collection, next: next}
}

func (s *store[T]) Find(ctx context.Context, filter records.Filter) ([]T, error) {
	defer s.observe("find", time.Now())
	out, err := s.next.Find(ctx, filter)
	s.count("find", err)
	return out, err
}

func (s *store[T]) FindOne(ctx context.Context, filter records.Filter) (T, bool, error) {
	defer s.observe("find_one", time.Now())
	rec, ok, err := s.next.FindOne(ctx, filter)
	s.count("find_one", err)
	return rec, ok, err
}

func (s *store[T]) Save(ctx context.Context, id string, rec T) error {
	defer s.observe("save", time.Now())
	err := s.next.Save(ctx, id, rec)
	s.count("save", err)
	return err
}

func (s *store[T]) observe(op string, started time.Time) {
	metrics.StoreOpSeconds.WithLabelValues(s.collection, op).Observe(time.Since(started).Seconds())
}

func (s *store[T]) count(op string, err error) {
	metrics.StoreOpsTotal.WithLabelValues(s.collection, op, metrics.Outcome(err)).Inc()
}
