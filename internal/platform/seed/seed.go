// Package seed crea registros iniciales desde un archivo YAML:
//
//	cats:
//	  - {name: "Tom Cat", bedsOwned: 2}
//	dogs:
//	  - {name: Rex, breed: Lab, age: 4}
package seed

import (
	"context"
	"fmt"
	"io"
	"os"

	"pet-records/internal/domain/records"

	"gopkg.in/yaml.v3"
)

// File es el contenido del YAML.
type File struct {
	Cats []records.Fields `yaml:"cats"`
	Dogs []records.Fields `yaml:"dogs"`
}

// Creator es lo mínimo que necesitamos de un records.Service.
type Creator[T any] interface {
	Create(ctx context.Context, fields records.Fields) (T, error)
}

// Result cuenta lo creado por tipo.
type Result struct {
	Cats int
	Dogs int
}

func Decode(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return File{}, fmt.Errorf("decode seed: %w", err)
	}
	return f, nil
}

func LoadFile(path string) (File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("open seed: %w", err)
	}
	defer fh.Close()
	return Decode(fh)
}

// Apply crea cada entrada en orden; la última de cada tipo queda como LastTouched.
// Corta en el primer error indicando tipo e índice.
func Apply[C, D any](ctx context.Context, f File, cats Creator[C], dogs Creator[D]) (Result, error) {
	var res Result

	n, err := apply(ctx, "cats", f.Cats, cats)
	res.Cats = n
	if err != nil {
		return res, err
	}

	n, err = apply(ctx, "dogs", f.Dogs, dogs)
	res.Dogs = n
	return res, err
}

func apply[T any](ctx context.Context, kind string, entries []records.Fields, c Creator[T]) (int, error) {
	for i, fields := range entries {
		if _, err := c.Create(ctx, fields); err != nil {
			return i, fmt.Errorf("seed %s[%d]: %w", kind, i, err)
		}
	}
	return len(entries), nil
}
