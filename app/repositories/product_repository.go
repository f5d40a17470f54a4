package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/artstock/app/models"
)

// ErrDuplicateSKU is returned by Create when the sku is already taken.
var ErrDuplicateSKU = errors.New("duplicate sku")

// ErrNotFound is returned by Find when no row matches.
var ErrNotFound = errors.New("product not found")

// Ref identifies a product by numeric id or by sku.
// When both are set the id wins.
type Ref struct {
	ID  *uint
	SKU *string
}

// Valid reports whether the ref carries at least one identifier.
func (ref Ref) Valid() bool { return ref.ID != nil || ref.SKU != nil }

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create persists a new product and fills in the store-assigned id.
// A sku collision comes back as ErrDuplicateSKU; anything else is fatal
// and wrapped as-is for the caller to propagate.
func (r *ProductRepository) Create(p *models.Product) error {
	if err := r.db.Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			sku := ""
			if p.SKU != nil {
				sku = *p.SKU
			}
			return fmt.Errorf("%w %q", ErrDuplicateSKU, sku)
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// Delete removes the row matching ref and reports how many rows went away.
func (r *ProductRepository) Delete(ref Ref) (int64, error) {
	res := r.query(ref).Delete(&models.Product{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete product: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// SetQuantity assigns an absolute quantity to the row matching ref.
func (r *ProductRepository) SetQuantity(ref Ref, qty int) (int64, error) {
	res := r.query(ref).UpdateColumn("quantity", qty)
	if res.Error != nil {
		return 0, fmt.Errorf("set quantity: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// AddQuantity applies a signed delta in a single UPDATE, never
// read-then-write. Quantity may go negative; the store does not clamp it.
func (r *ProductRepository) AddQuantity(ref Ref, delta int) (int64, error) {
	res := r.query(ref).UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))
	if res.Error != nil {
		return 0, fmt.Errorf("adjust quantity: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// All returns every product ordered by ascending id.
func (r *ProductRepository) All() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// FindBySKU returns the products carrying sku, ordered by ascending id.
// Rows whose sku is NULL never match.
func (r *ProductRepository) FindBySKU(sku string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("sku = ?", sku).Order("id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products by sku: %w", err)
	}
	return products, nil
}

// Find returns the single product matching ref, or ErrNotFound.
func (r *ProductRepository) Find(ref Ref) (models.Product, error) {
	var p models.Product
	err := r.query(ref).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("find product: %w", err)
	}
	return p, nil
}

// query builds the WHERE clause for ref. Callers guarantee ref.Valid().
func (r *ProductRepository) query(ref Ref) *gorm.DB {
	q := r.db.Model(&models.Product{})
	if ref.ID != nil {
		return q.Where("id = ?", *ref.ID)
	}
	return q.Where("sku = ?", *ref.SKU)
}
