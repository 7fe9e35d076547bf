package services

import (
	"errors"
	"fmt"
	"sync/atomic"

	"katalog/internal/models"
	"katalog/internal/persistence"
	"katalog/internal/repositories"

	"go.uber.org/zap"
)

// ErrSnapshotNotSaved means the in-memory change succeeded but writing the
// snapshot afterwards did not.
var ErrSnapshotNotSaved = errors.New("change applied but snapshot not saved")

// Persistence is the file layer the service snapshots to.
type Persistence interface {
	SaveSnapshot(products []models.Product) error
	LoadSnapshot() ([]models.Product, error)
	ExportCSV(name string, products []models.Product) (string, error)
	ImportCSV(name string) (*persistence.ImportResult, error)
}

// Statistics summarizes the catalog.
type Statistics struct {
	Count        int
	TotalStock   int
	AveragePrice float64
	ByKind       map[models.Kind]int
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo   repositories.ProductRepository
	store  Persistence
	logger *zap.Logger

	// set while the file on disk is a snapshot that failed to load and
	// nothing has been written over it yet
	unreadable atomic.Bool
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, store Persistence, logger *zap.Logger) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		repo:   repo,
		store:  store,
		logger: logger.Named("products"),
	}
}

// persist snapshots the current collection after a mutation.
func (s *ProductService) persist() error {
	all, err := s.repo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to read products for snapshot: %w", err)
	}
	if err := s.store.SaveSnapshot(all); err != nil {
		s.logger.Error("snapshot save failed", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrSnapshotNotSaved, err)
	}
	s.unreadable.Store(false)
	return nil
}

// SnapshotUnreadable reports whether the last load failed and the catalog
// has not been saved since.
func (s *ProductService) SnapshotUnreadable() bool {
	return s.unreadable.Load()
}

// ListProducts retrieves all products in insertion order.
func (s *ProductService) ListProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProduct retrieves a single product by its ID.
func (s *ProductService) GetProduct(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct adds a product and snapshots the catalog.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.logger.Info("product created", zap.String("id", product.ID), zap.String("name", product.Name), zap.String("model", product.Model))
	return s.persist()
}

// UpdateProduct replaces the product stored under id, keeping that id.
func (s *ProductService) UpdateProduct(id string, product *models.Product) error {
	if err := s.repo.Update(id, product); err != nil {
		return err
	}
	s.logger.Info("product updated", zap.String("id", id))
	return s.persist()
}

// EditProduct applies edit to the stored product atomically. When edit
// fails the product is left as it was.
func (s *ProductService) EditProduct(id string, edit func(p *models.Product) error) (*models.Product, error) {
	updated, err := s.repo.Modify(id, edit)
	if err != nil {
		return nil, err
	}
	s.logger.Info("product edited", zap.String("id", id))
	return updated, s.persist()
}

func (s *ProductService) ChangePrice(id string, price float64) (*models.Product, error) {
	return s.EditProduct(id, func(p *models.Product) error {
		return p.SetPrice(price)
	})
}

func (s *ProductService) ChangeStock(id string, stock int) (*models.Product, error) {
	return s.EditProduct(id, func(p *models.Product) error {
		return p.SetStock(stock)
	})
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.logger.Info("product deleted", zap.String("id", id))
	return s.persist()
}

func (s *ProductService) Search(keyword string) []models.Product {
	return s.repo.Search(keyword)
}

func (s *ProductService) FilterByPriceRange(minPrice, maxPrice float64) []models.Product {
	return s.repo.FilterByPriceRange(minPrice, maxPrice)
}

func (s *ProductService) FilterByColor(color string) []models.Product {
	return s.repo.FilterByColor(color)
}

func (s *ProductService) FilterByKind(kind models.Kind) []models.Product {
	return s.repo.FilterByKind(kind)
}

func (s *ProductService) SortByPrice(ascending bool) []models.Product {
	return s.repo.SortByPrice(ascending)
}

func (s *ProductService) SortByName() []models.Product {
	return s.repo.SortByName()
}

// Statistics returns catalog totals and a count per variant.
func (s *ProductService) Statistics() Statistics {
	stats := Statistics{
		Count:        s.repo.Count(),
		TotalStock:   s.repo.TotalStock(),
		AveragePrice: s.repo.AveragePrice(),
		ByKind:       make(map[models.Kind]int, len(models.Kinds)),
	}
	for _, k := range models.Kinds {
		stats.ByKind[k] = len(s.repo.FilterByKind(k))
	}
	return stats
}

// SaveSnapshot writes the catalog to the snapshot file on demand.
func (s *ProductService) SaveSnapshot() error {
	all, err := s.repo.GetAll()
	if err != nil {
		return err
	}
	if err := s.store.SaveSnapshot(all); err != nil {
		return err
	}
	s.unreadable.Store(false)
	return nil
}

// LoadSnapshot replaces the catalog with the snapshot contents. If the
// snapshot cannot be read the catalog falls back to empty and the error is
// returned for reporting.
func (s *ProductService) LoadSnapshot() (int, error) {
	products, err := s.store.LoadSnapshot()
	if err != nil {
		s.logger.Warn("snapshot load failed, starting with an empty catalog", zap.Error(err))
		s.repo.Clear()
		s.unreadable.Store(true)
		return 0, err
	}
	s.unreadable.Store(false)
	s.repo.ReplaceAll(products)
	return len(products), nil
}

// ExportCSV writes the catalog to data/<name>.csv and returns the path.
func (s *ProductService) ExportCSV(name string) (string, error) {
	all, err := s.repo.GetAll()
	if err != nil {
		return "", err
	}
	return s.store.ExportCSV(name, all)
}

// ImportCSV appends the products read from data/<name>.csv and returns how
// many were added along with the rows that were skipped.
func (s *ProductService) ImportCSV(name string) (int, []*persistence.MalformedRowError, error) {
	result, err := s.store.ImportCSV(name)
	if err != nil {
		return 0, nil, err
	}

	imported := 0
	for i := range result.Products {
		if err := s.repo.Create(&result.Products[i]); err != nil {
			s.logger.Warn("skipping imported product", zap.String("model", result.Products[i].Model), zap.Error(err))
			continue
		}
		imported++
	}
	s.logger.Info("csv import finished", zap.Int("imported", imported), zap.Int("skipped", len(result.Skipped)))

	if imported == 0 {
		return 0, result.Skipped, nil
	}
	return imported, result.Skipped, s.persist()
}
