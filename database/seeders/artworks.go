package seeders

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/artstock/app/models"
)

func init() {
	Register("artworks", SeedArtworks)
}

// SeedArtworks inserts a small demo catalogue. Rows are keyed by sku with
// FirstOrCreate, so re-running the seeder never duplicates them.
func SeedArtworks(db *gorm.DB) error {
	rows := []models.Product{
		{SKU: str("SUN-001"), Title: "Sunset Over the Bay", Artist: str("A. Painter"), Year: num(2020), Price: flt(150.0), Quantity: 3},
		{SKU: str("MTN-002"), Title: "Mountain Morning", Artist: str("A. Painter"), Year: num(2021), Price: flt(220.0), Quantity: 1},
		{SKU: str("ABS-003"), Title: "Composition in Blue", Artist: str("B. Sculptor"), Year: num(2019), Price: flt(480.0), Quantity: 2},
		{SKU: str("SKT-004"), Title: "Untitled Sketch", Quantity: 5},
	}

	for i := range rows {
		res := db.Where("sku = ?", *rows[i].SKU).FirstOrCreate(&rows[i])
		if res.Error != nil {
			return fmt.Errorf("seed %q: %w", *rows[i].SKU, res.Error)
		}
	}
	return nil
}

func str(s string) *string   { return &s }
func num(n int) *int         { return &n }
func flt(f float64) *float64 { return &f }
