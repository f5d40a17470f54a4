package repositories_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/artstock/app/models"
	"github.com/shashiranjanraj/artstock/app/repositories"
	"github.com/shashiranjanraj/artstock/pkg/database"
)

func newTestRepo(t *testing.T) *repositories.ProductRepository {
	t.Helper()

	db, err := database.Connect("sqlite", filepath.Join(t.TempDir(), "inventory.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))

	return repositories.NewProductRepository(db)
}

func str(s string) *string { return &s }

func byID(id uint) repositories.Ref   { return repositories.Ref{ID: &id} }
func bySKU(s string) repositories.Ref { return repositories.Ref{SKU: &s} }

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	repo := newTestRepo(t)

	for want := uint(1); want <= 3; want++ {
		p := models.Product{Title: "Untitled"}
		require.NoError(t, repo.Create(&p))
		assert.Equal(t, want, p.ID)
	}
}

func TestCreateDuplicateSKU(t *testing.T) {
	repo := newTestRepo(t)

	first := models.Product{Title: "Sunset", SKU: str("SUN-001")}
	require.NoError(t, repo.Create(&first))

	second := models.Product{Title: "Another Sunset", SKU: str("SUN-001")}
	err := repo.Create(&second)
	require.ErrorIs(t, err, repositories.ErrDuplicateSKU)

	all, err := repo.All()
	require.NoError(t, err)
	assert.Len(t, all, 1, "the failed insert must not create a row")
}

func TestCreateAllowsManyNullSKUs(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Create(&models.Product{Title: "One"}))
	require.NoError(t, repo.Create(&models.Product{Title: "Two"}))

	all, err := repo.All()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAddQuantityNeverClamps(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.Create(&models.Product{Title: "Sunset", SKU: str("SUN-001"), Quantity: 3}))

	n, err := repo.AddQuantity(bySKU("SUN-001"), -1)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	p, err := repo.Find(bySKU("SUN-001"))
	require.NoError(t, err)
	assert.Equal(t, 2, p.Quantity)

	// Drive it below zero: the store does not clamp.
	_, err = repo.AddQuantity(bySKU("SUN-001"), -5)
	require.NoError(t, err)

	p, err = repo.Find(bySKU("SUN-001"))
	require.NoError(t, err)
	assert.Equal(t, -3, p.Quantity)
}

func TestSetQuantityIgnoresPriorValue(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.Create(&models.Product{Title: "Sunset", SKU: str("SUN-001"), Quantity: 42}))

	n, err := repo.SetQuantity(bySKU("SUN-001"), 5)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	p, err := repo.Find(bySKU("SUN-001"))
	require.NoError(t, err)
	assert.Equal(t, 5, p.Quantity)
}

func TestDeleteReportsRowCount(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.Create(&models.Product{Title: "Sunset"}))

	n, err := repo.Delete(byID(1))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	// Gone now, both for delete and find.
	n, err = repo.Delete(byID(1))
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	_, err = repo.Find(byID(1))
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestAllOrderedByID(t *testing.T) {
	repo := newTestRepo(t)
	titles := []string{"First", "Second", "Third"}
	for _, title := range titles {
		require.NoError(t, repo.Create(&models.Product{Title: title}))
	}

	all, err := repo.All()
	require.NoError(t, err)
	require.Len(t, all, len(titles))
	for i, p := range all {
		assert.Equal(t, uint(i+1), p.ID)
		assert.Equal(t, titles[i], p.Title)
	}
}

func TestFindBySKUSkipsNullSKURows(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.Create(&models.Product{Title: "No SKU"}))

	rows, err := repo.FindBySKU("ANYTHING")
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = repo.Find(bySKU("ANYTHING"))
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestFindReturnsAllColumns(t *testing.T) {
	repo := newTestRepo(t)
	in := models.Product{
		Title:    "Mountain Morning",
		SKU:      str("MTN-002"),
		Artist:   str("A. Painter"),
		Year:     intp(2021),
		Price:    fltp(220.0),
		Quantity: 1,
	}
	require.NoError(t, repo.Create(&in))

	p, err := repo.Find(byID(in.ID))
	require.NoError(t, err)
	assert.Equal(t, in, p)
}

func intp(n int) *int         { return &n }
func fltp(f float64) *float64 { return &f }
