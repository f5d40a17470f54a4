package services

import (
	"errors"

	"github.com/shashiranjanraj/artstock/app/models"
	"github.com/shashiranjanraj/artstock/app/repositories"
)

// ErrMissingIdentifier is returned when an operation that needs a target
// was given neither an id nor a sku. The CLI turns it into a guidance
// line; the store is never touched.
var ErrMissingIdentifier = errors.New("missing identifier")

// AddInput carries the fields of a new product. Optional fields stay nil.
type AddInput struct {
	Title    string
	Artist   *string
	Year     *int
	Price    *float64
	Quantity int
	SKU      *string
}

// InventoryService implements the command surface on top of the repository.
type InventoryService struct {
	repo *repositories.ProductRepository
}

func NewInventoryService(repo *repositories.ProductRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

// Add inserts a new product and returns it with the assigned id.
func (s *InventoryService) Add(in AddInput) (models.Product, error) {
	p := models.Product{
		SKU:      in.SKU,
		Title:    in.Title,
		Artist:   in.Artist,
		Year:     in.Year,
		Price:    in.Price,
		Quantity: in.Quantity,
	}
	if err := s.repo.Create(&p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// Remove deletes the product matching ref and reports the removed row count.
func (s *InventoryService) Remove(ref repositories.Ref) (int64, error) {
	if !ref.Valid() {
		return 0, ErrMissingIdentifier
	}
	return s.repo.Delete(ref)
}

// SetQuantity assigns an absolute quantity.
func (s *InventoryService) SetQuantity(ref repositories.Ref, qty int) (int64, error) {
	if !ref.Valid() {
		return 0, ErrMissingIdentifier
	}
	return s.repo.SetQuantity(ref, qty)
}

// AdjustQuantity applies a signed delta atomically; no clamping at zero.
func (s *InventoryService) AdjustQuantity(ref repositories.Ref, delta int) (int64, error) {
	if !ref.Valid() {
		return 0, ErrMissingIdentifier
	}
	return s.repo.AddQuantity(ref, delta)
}

// List returns all products in id order, or just those carrying sku when
// sku is non-empty.
func (s *InventoryService) List(sku string) ([]models.Product, error) {
	if sku != "" {
		return s.repo.FindBySKU(sku)
	}
	return s.repo.All()
}

// Get fetches a single product.
func (s *InventoryService) Get(ref repositories.Ref) (models.Product, error) {
	if !ref.Valid() {
		return models.Product{}, ErrMissingIdentifier
	}
	return s.repo.Find(ref)
}
