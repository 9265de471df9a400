package localstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pet-care-hub/internal/domain/pets"
)

func samplePets() []pets.Pet {
	created := time.Date(2024, 8, 25, 10, 0, 0, 0, time.UTC)
	return []pets.Pet{
		{ID: "1", Name: "Barsik", Type: pets.TypeCat, Breed: "British Shorthair", Age: 3, Weight: 4.5, OwnerID: "1", CreatedAt: created},
		{ID: "2", Name: "Rex", Type: pets.TypeDog, Breed: "German Shepherd", Age: 2, Weight: 28, OwnerID: "1", CreatedAt: created, Favorite: true},
	}
}

func TestFileKV_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, kv.Save(ctx, KeyPets, samplePets()))

	var got []pets.Pet
	ok, err := kv.Load(ctx, KeyPets, &got)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, samplePets(), got)
}

func TestFileKV_AbsentKey(t *testing.T) {
	ctx := context.Background()
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)

	var got []pets.Pet
	ok, err := kv.Load(ctx, KeyPets, &got)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFileKV_MalformedBlobIsDiscarded(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	kv, err := NewFileKV(dir)
	require.NoError(t, err)

	path := filepath.Join(dir, KeyPets+".json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o660))

	var got []pets.Pet
	ok, err := kv.Load(ctx, KeyPets, &got)
	require.NoError(t, err, "corrupt blob must not surface an error")
	require.False(t, ok, "corrupt blob must read as absent")

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr), "corrupt blob must be removed")
}

func TestFileKV_Remove(t *testing.T) {
	ctx := context.Background()
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, kv.Save(ctx, KeyUser, map[string]string{"id": "1"}))
	require.NoError(t, kv.Remove(ctx, KeyUser))
	// remover una clave ausente también es ok
	require.NoError(t, kv.Remove(ctx, KeyUser))

	var got map[string]string
	ok, err := kv.Load(ctx, KeyUser, &got)
	require.NoError(t, err)
	require.False(t, ok)
}
