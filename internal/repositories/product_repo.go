package repositories

import (
	"errors"

	"katalog/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateID     = errors.New("duplicate product id")
)

// ProductRepository defines the interface for product data access.
// Returned products are copies; changes only take effect through
// Update, Modify or ReplaceAll.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(id string, product *models.Product) error
	Modify(id string, fn func(p *models.Product) error) (*models.Product, error)
	Delete(id string) error

	Search(keyword string) []models.Product
	FilterByPriceRange(minPrice, maxPrice float64) []models.Product
	FilterByColor(color string) []models.Product
	FilterByKind(kind models.Kind) []models.Product
	SortByPrice(ascending bool) []models.Product
	SortByName() []models.Product

	Count() int
	TotalStock() int
	AveragePrice() float64

	ReplaceAll(products []models.Product)
	Clear()
}
