package seed

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mem "pet-records/internal/adapters/storage/memory"
	"pet-records/internal/domain/cats"
	"pet-records/internal/domain/dogs"
	"pet-records/internal/domain/records"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
cats:
  - {name: "Tom Cat", bedsOwned: 2}
  - {name: Felix}
dogs:
  - {name: Rex, breed: Lab, age: 4}
`

func TestApplyCreatesInOrder(t *testing.T) {
	f, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)

	catSvc := cats.NewService(mem.NewCollection[cats.Cat]())
	dogSvc := dogs.NewService(mem.NewCollection[dogs.Dog]())

	res, err := Apply[cats.Cat, dogs.Dog](context.Background(), f, catSvc, dogSvc)
	require.NoError(t, err)
	assert.Equal(t, Result{Cats: 2, Dogs: 1}, res)

	assert.Equal(t, "Felix", catSvc.Last().Name)
	assert.Equal(t, 0, catSvc.Last().BedsOwned)

	tom, err := catSvc.GetByName(context.Background(), "Tom Cat")
	require.NoError(t, err)
	assert.Equal(t, 2, tom.BedsOwned)

	rex, err := dogSvc.GetByName(context.Background(), "Rex")
	require.NoError(t, err)
	assert.Equal(t, 4, rex.Age)
	assert.Equal(t, "Lab", rex.Breed)
}

func TestApplyStopsAtInvalidEntry(t *testing.T) {
	f, err := Decode(strings.NewReader(`
dogs:
  - {name: Rex, breed: Lab, age: 4}
  - {name: Fido, age: 2}
`))
	require.NoError(t, err)

	catSvc := cats.NewService(mem.NewCollection[cats.Cat]())
	dogSvc := dogs.NewService(mem.NewCollection[dogs.Dog]())

	res, err := Apply[cats.Cat, dogs.Dog](context.Background(), f, catSvc, dogSvc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dogs[1]")
	assert.True(t, records.IsValidation(err))
	assert.Equal(t, 1, res.Dogs)
	assert.Equal(t, "Rex", dogSvc.Last().Name)
}

func TestDecodeRejectsUnknownSections(t *testing.T) {
	_, err := Decode(strings.NewReader("birds: []\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, f.Cats, 2)
	assert.Len(t, f.Dogs, 1)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDecodeEmpty(t *testing.T) {
	f, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Cats)
}
