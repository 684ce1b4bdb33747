package router

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"pet-records/internal/adapters/storage/instrumented"
	mem "pet-records/internal/adapters/storage/memory"
	pg "pet-records/internal/adapters/storage/postgres"
	lite "pet-records/internal/adapters/storage/sqlite"
	"pet-records/internal/domain/cats"
	"pet-records/internal/domain/dogs"
	"pet-records/internal/domain/records"
)

// Drivers soportados para el store documental.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Services agrupa un servicio por tipo de registro.
type Services struct {
	Cats *cats.Service
	Dogs *dogs.Service
}

// StoreOptions elige el backend. Con DB == nil se usa in-memory.
type StoreOptions struct {
	Driver  string
	DB      *sql.DB
	Timeout time.Duration
}

// NewServices crea las colecciones (tablas si hace falta) y los servicios.
func NewServices(ctx context.Context, opts StoreOptions) (Services, error) {
	driver := strings.ToLower(strings.TrimSpace(opts.Driver))
	if opts.DB == nil {
		driver = DriverMemory
	}

	var (
		catStore records.Store[cats.Cat]
		dogStore records.Store[dogs.Dog]
	)

	switch driver {
	case DriverMemory, "":
		catStore = mem.NewCollection[cats.Cat]()
		dogStore = mem.NewCollection[dogs.Dog]()

	case DriverPostgres:
		c, err := pg.NewCollection[cats.Cat](ctx, opts.DB, cats.Collection, opts.Timeout)
		if err != nil {
			return Services{}, err
		}
		d, err := pg.NewCollection[dogs.Dog](ctx, opts.DB, dogs.Collection, opts.Timeout)
		if err != nil {
			return Services{}, err
		}
		catStore, dogStore = c, d

	case DriverSQLite:
		c, err := lite.NewCollection[cats.Cat](ctx, opts.DB, cats.Collection, opts.Timeout)
		if err != nil {
			return Services{}, err
		}
		d, err := lite.NewCollection[dogs.Dog](ctx, opts.DB, dogs.Collection, opts.Timeout)
		if err != nil {
			return Services{}, err
		}
		catStore, dogStore = c, d

	default:
		return Services{}, fmt.Errorf("unknown store driver %q", opts.Driver)
	}

	return Services{
		Cats: cats.NewService(instrumented.Wrap(cats.Collection, catStore)),
		Dogs: dogs.NewService(instrumented.Wrap(dogs.Collection, dogStore)),
	}, nil
}

// NewMemoryServices es el fallback de dev/tests.
func NewMemoryServices() Services {
	s, _ := NewServices(context.Background(), StoreOptions{Driver: DriverMemory})
	return s
}
