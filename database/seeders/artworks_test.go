package seeders_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/artstock/app/models"
	"github.com/shashiranjanraj/artstock/database/seeders"
	"github.com/shashiranjanraj/artstock/pkg/database"
)

func TestSeedArtworksIsIdempotent(t *testing.T) {
	db, err := database.Connect("sqlite", filepath.Join(t.TempDir(), "inventory.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))

	require.NoError(t, seeders.SeedArtworks(db))

	var first int64
	require.NoError(t, db.Model(&models.Product{}).Count(&first).Error)
	assert.Greater(t, first, int64(0))

	// A second run finds the rows by sku and creates nothing new.
	require.NoError(t, seeders.SeedArtworks(db))

	var second int64
	require.NoError(t, db.Model(&models.Product{}).Count(&second).Error)
	assert.Equal(t, first, second)
}
