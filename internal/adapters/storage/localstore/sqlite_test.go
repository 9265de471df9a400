package localstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pet-care-hub/internal/domain/vaccinations"
)

func openTestSQLite(t *testing.T) *SQLiteKV {
	t.Helper()
	kv, err := OpenSQLite(filepath.Join(t.TempDir(), "petcare.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func TestSQLiteKV_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := openTestSQLite(t)

	next := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
	want := []vaccinations.Vaccination{
		{
			ID:                  "v1",
			PetID:               "1",
			PetName:             "Barsik",
			PetType:             "cat",
			Type:                vaccinations.TypeComplex,
			VaccinationDate:     time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC),
			NextVaccinationDate: &next,
			Status:              vaccinations.StatusScheduled,
			CreatedAt:           time.Date(2024, 8, 15, 9, 30, 0, 0, time.UTC),
		},
	}

	require.NoError(t, kv.Save(ctx, KeyVaccinations, want))

	var got []vaccinations.Vaccination
	ok, err := kv.Load(ctx, KeyVaccinations, &got)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestSQLiteKV_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	kv := openTestSQLite(t)

	require.NoError(t, kv.Save(ctx, KeyUser, map[string]string{"id": "1"}))
	require.NoError(t, kv.Save(ctx, KeyUser, map[string]string{"id": "2"}))

	var got map[string]string
	ok, err := kv.Load(ctx, KeyUser, &got)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "2", got["id"])
}

func TestSQLiteKV_MalformedBlobIsDiscarded(t *testing.T) {
	ctx := context.Background()
	kv := openTestSQLite(t)

	_, err := kv.db.ExecContext(ctx, `INSERT INTO kv (key, value) VALUES (?, ?)`, KeyPets, "{not json")
	require.NoError(t, err)

	var got []map[string]any
	ok, err := kv.Load(ctx, KeyPets, &got)
	require.NoError(t, err, "corrupt blob must not surface an error")
	require.False(t, ok, "corrupt blob must read as absent")

	ok, err = kv.Load(ctx, KeyPets, &got)
	require.NoError(t, err)
	require.False(t, ok, "corrupt blob must have been removed")
}
