package address_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VasaraSujal/king-hub/internal/address"
)

func setupTestRepo(t *testing.T, dbPath string) *address.Repository {
	t.Helper()

	repo, err := address.NewRepository(dbPath)
	require.NoError(t, err)

	require.NoError(t, repo.RunMigrations("./migrations"))
	return repo
}

func TestLoad_EmptyAfterMigrations(t *testing.T) {
	repo := setupTestRepo(t, ":memory:")
	defer repo.Close()

	addresses, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, addresses)
}

func TestStore_OverwritesWholesale(t *testing.T) {
	repo := setupTestRepo(t, ":memory:")
	defer repo.Close()

	ctx := context.Background()
	require.NoError(t, repo.Store(ctx, []string{"12 MG Road, Pune"}))
	require.NoError(t, repo.Store(ctx, []string{"12 MG Road, Pune", "7 Park Street, Kolkata"}))

	addresses, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"12 MG Road, Pune", "7 Park Street, Kolkata"}, addresses)
}

func TestStore_SurvivesRestart(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "storefront.db")
	ctx := context.Background()

	repo := setupTestRepo(t, dbPath)
	require.NoError(t, repo.Store(ctx, []string{"12 MG Road, Pune"}))
	require.NoError(t, repo.Close())

	// A fresh repository over the same file sees the saved list.
	reopened := setupTestRepo(t, dbPath)
	defer reopened.Close()

	addresses, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"12 MG Road, Pune"}, addresses)
}

func TestStore_PreservesDuplicatesAndOrder(t *testing.T) {
	repo := setupTestRepo(t, ":memory:")
	defer repo.Close()

	ctx := context.Background()
	list := []string{"A Street", "B Street", "A Street"}
	require.NoError(t, repo.Store(ctx, list))

	addresses, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, list, addresses)
}
