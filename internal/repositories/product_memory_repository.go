package repositories

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"

	"katalog/internal/models"
)

var _ ProductRepository = (*MemoryProductRepository)(nil)

// MemoryProductRepository is an in-memory implementation of ProductRepository.
// Products are kept in insertion order.
type MemoryProductRepository struct {
	products []models.Product
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make([]models.Product, 0),
	}
}

// indexOf must be called with the lock held.
func (r *MemoryProductRepository) indexOf(id string) int {
	return slices.IndexFunc(r.products, func(p models.Product) bool {
		return p.ID == id
	})
}

// GetAll returns all products in insertion order.
func (r *MemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.products), nil
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("get product %s: %w", id, ErrProductNotFound)
	}
	product := r.products[i]
	return &product, nil
}

// Create appends a new product. A product without an ID gets one.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	if product == nil {
		return fmt.Errorf("create product: %w", models.ErrValidation)
	}
	if product.ID == "" {
		product.ID = models.NewID()
	}
	if err := product.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(product.ID) >= 0 {
		return fmt.Errorf("create product %s: %w", product.ID, ErrDuplicateID)
	}
	r.products = append(r.products, *product)
	return nil
}

// Update replaces the stored product in place. The stored ID always wins
// over whatever ID the replacement carries, and the variant cannot change.
func (r *MemoryProductRepository) Update(id string, product *models.Product) error {
	if product == nil {
		return fmt.Errorf("update product: %w", models.ErrValidation)
	}
	replacement := *product
	replacement.ID = id

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("update product %s: %w", id, ErrProductNotFound)
	}
	if err := r.products[i].SameVariant(&replacement); err != nil {
		return fmt.Errorf("update product %s: %w", id, err)
	}
	if err := replacement.Validate(); err != nil {
		return err
	}
	r.products[i] = replacement
	product.ID = id
	return nil
}

// Modify runs fn on a copy of the stored product and stores the result,
// all under the write lock. If fn fails, the stored product is unchanged.
func (r *MemoryProductRepository) Modify(id string, fn func(p *models.Product) error) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("update product %s: %w", id, ErrProductNotFound)
	}
	working := r.products[i]
	if err := fn(&working); err != nil {
		return nil, err
	}
	working.ID = id
	if err := r.products[i].SameVariant(&working); err != nil {
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}
	if err := working.Validate(); err != nil {
		return nil, err
	}
	r.products[i] = working
	return &working, nil
}

// Delete removes a product by its ID.
func (r *MemoryProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("delete product %s: %w", id, ErrProductNotFound)
	}
	r.products = slices.Delete(r.products, i, i+1)
	return nil
}

func (r *MemoryProductRepository) filter(keep func(p *models.Product) bool) []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, 0)
	for i := range r.products {
		if keep(&r.products[i]) {
			out = append(out, r.products[i])
		}
	}
	return out
}

func containsFold(s, lowerSubstr string) bool {
	return strings.Contains(strings.ToLower(s), lowerSubstr)
}

// Search matches keyword against name, model and color, ignoring case.
// A blank keyword returns every product.
func (r *MemoryProductRepository) Search(keyword string) []models.Product {
	if strings.TrimSpace(keyword) == "" {
		all, _ := r.GetAll()
		return all
	}
	needle := strings.ToLower(keyword)
	return r.filter(func(p *models.Product) bool {
		return containsFold(p.Name, needle) || containsFold(p.Model, needle) || containsFold(p.Color, needle)
	})
}

// FilterByPriceRange returns products priced within [minPrice, maxPrice].
func (r *MemoryProductRepository) FilterByPriceRange(minPrice, maxPrice float64) []models.Product {
	return r.filter(func(p *models.Product) bool {
		return p.Price >= minPrice && p.Price <= maxPrice
	})
}

// FilterByColor matches a color substring, ignoring case. A blank color
// returns every product.
func (r *MemoryProductRepository) FilterByColor(color string) []models.Product {
	if strings.TrimSpace(color) == "" {
		all, _ := r.GetAll()
		return all
	}
	needle := strings.ToLower(color)
	return r.filter(func(p *models.Product) bool {
		return containsFold(p.Color, needle)
	})
}

func (r *MemoryProductRepository) FilterByKind(kind models.Kind) []models.Product {
	return r.filter(func(p *models.Product) bool {
		return p.Kind() == kind
	})
}

// SortByPrice returns a sorted copy; equal prices keep insertion order.
func (r *MemoryProductRepository) SortByPrice(ascending bool) []models.Product {
	sorted, _ := r.GetAll()
	slices.SortStableFunc(sorted, func(a, b models.Product) int {
		if ascending {
			return cmp.Compare(a.Price, b.Price)
		}
		return cmp.Compare(b.Price, a.Price)
	})
	return sorted
}

// SortByName returns a copy sorted by name; equal names keep insertion order.
func (r *MemoryProductRepository) SortByName() []models.Product {
	sorted, _ := r.GetAll()
	slices.SortStableFunc(sorted, func(a, b models.Product) int {
		return strings.Compare(a.Name, b.Name)
	})
	return sorted
}

func (r *MemoryProductRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.products)
}

func (r *MemoryProductRepository) TotalStock() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, p := range r.products {
		total += p.Stock
	}
	return total
}

// AveragePrice is the arithmetic mean of all prices, or 0 for an empty catalog.
func (r *MemoryProductRepository) AveragePrice() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.products) == 0 {
		return 0
	}
	var sum float64
	for _, p := range r.products {
		sum += p.Price
	}
	return sum / float64(len(r.products))
}

// ReplaceAll swaps in a new collection wholesale, as read from a snapshot.
func (r *MemoryProductRepository) ReplaceAll(products []models.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = slices.Clone(products)
	if r.products == nil {
		r.products = make([]models.Product, 0)
	}
}

func (r *MemoryProductRepository) Clear() {
	r.ReplaceAll(nil)
}
