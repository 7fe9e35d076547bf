package persistence

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"katalog/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// snapshotRecord is one product row of the snapshot database. Kind is the
// discriminator; only the variant columns of that kind are meaningful.
type snapshotRecord struct {
	Position  int     `gorm:"primaryKey;autoIncrement:false"`
	ProductID string  `gorm:"column:product_id;type:varchar(64);index"`
	Kind      string  `gorm:"type:varchar(32);not null"`
	Name      string  `gorm:"type:varchar(100)"`
	Model     string  `gorm:"type:varchar(255)"`
	Price     float64 `gorm:"not null"`
	Stock     int     `gorm:"not null"`
	Color     string  `gorm:"type:varchar(100)"`
	StorageGB int     `gorm:"column:storage_gb"`

	ScreenSize        string
	Chip              string
	Camera            string
	CaseSize          string
	CaseMaterial      string
	Cellular          bool
	NoiseCancellation string
	BatteryLifeHours  int
}

func (snapshotRecord) TableName() string {
	return "products"
}

func toRecord(position int, p models.Product) snapshotRecord {
	rec := snapshotRecord{
		Position:  position,
		ProductID: p.ID,
		Kind:      p.Kind().String(),
		Name:      p.Name,
		Model:     p.Model,
		Price:     p.Price,
		Stock:     p.Stock,
		Color:     p.Color,
		StorageGB: p.StorageGB,
	}
	switch s := p.Spec.(type) {
	case models.LaptopSpec:
		rec.ScreenSize, rec.Chip = s.ScreenSize, s.Chip
	case models.TabletSpec:
		rec.ScreenSize, rec.Cellular = s.ScreenSize, s.Cellular
	case models.PhoneSpec:
		rec.ScreenSize, rec.Camera = s.ScreenSize, s.Camera
	case models.WatchSpec:
		rec.CaseSize, rec.CaseMaterial, rec.Cellular = s.CaseSize, s.CaseMaterial, s.Cellular
	case models.EarbudsSpec:
		rec.NoiseCancellation, rec.BatteryLifeHours = s.NoiseCancellation, s.BatteryLifeHours
	}
	return rec
}

func (r snapshotRecord) toProduct() (models.Product, error) {
	kind, err := models.ParseKind(r.Kind)
	if err != nil {
		return models.Product{}, err
	}
	var spec models.Spec
	switch kind {
	case models.KindVisionDevice:
		spec = models.VisionDeviceSpec{}
	case models.KindLaptop:
		spec = models.LaptopSpec{ScreenSize: r.ScreenSize, Chip: r.Chip}
	case models.KindTablet:
		spec = models.TabletSpec{ScreenSize: r.ScreenSize, Cellular: r.Cellular}
	case models.KindPhone:
		spec = models.PhoneSpec{ScreenSize: r.ScreenSize, Camera: r.Camera}
	case models.KindWatch:
		spec = models.WatchSpec{CaseSize: r.CaseSize, CaseMaterial: r.CaseMaterial, Cellular: r.Cellular}
	case models.KindEarbuds:
		spec = models.EarbudsSpec{NoiseCancellation: r.NoiseCancellation, BatteryLifeHours: r.BatteryLifeHours}
	}
	return models.Product{
		ID:        r.ProductID,
		Name:      r.Name,
		Model:     r.Model,
		Price:     r.Price,
		Stock:     r.Stock,
		Color:     r.Color,
		StorageGB: r.StorageGB,
		Spec:      spec,
	}, nil
}

func openSnapshotDB(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
}

func closeSnapshotDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveSnapshot writes the whole collection, in order, to the snapshot file.
// The file is built next to the target and renamed over it, so a failed
// save leaves the previous snapshot in place.
func (s *FileStore) SaveSnapshot(products []models.Product) error {
	if err := s.ensureDataDir(); err != nil {
		return err
	}

	target := s.SnapshotPath()
	tmp := target + ".tmp"
	if err := os.Remove(tmp); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrSnapshotWrite, err)
	}

	if err := s.writeSnapshot(tmp, products); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %w", ErrSnapshotWrite, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %w", ErrSnapshotWrite, err)
	}

	s.logger.Info("snapshot saved", zap.String("path", target), zap.Int("products", len(products)))
	return nil
}

func (s *FileStore) writeSnapshot(path string, products []models.Product) (err error) {
	db, err := openSnapshotDB(path)
	if err != nil {
		return fmt.Errorf("failed to open snapshot database: %w", err)
	}
	defer func() {
		if closeErr := closeSnapshotDB(db); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close snapshot database: %w", closeErr)
		}
	}()

	if err := db.AutoMigrate(&snapshotRecord{}); err != nil {
		return fmt.Errorf("failed to create snapshot schema: %w", err)
	}

	records := make([]snapshotRecord, 0, len(products))
	for i, p := range products {
		records = append(records, toRecord(i+1, p))
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if len(records) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(records, 100).Error; err != nil {
			return fmt.Errorf("failed to write products: %w", err)
		}
		return nil
	})
}

// LoadSnapshot reads the collection back in saved order. A missing file is
// the first-run state and yields an empty collection without error.
func (s *FileStore) LoadSnapshot() ([]models.Product, error) {
	if err := s.ensureDataDir(); err != nil {
		return nil, err
	}

	path := s.SnapshotPath()
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Info("no snapshot found, starting empty", zap.String("path", path))
			return []models.Product{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrSnapshotUnreadable, err)
	}

	db, err := openSnapshotDB(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshotUnreadable, err)
	}
	defer func() {
		if closeErr := closeSnapshotDB(db); closeErr != nil {
			s.logger.Warn("failed to close snapshot database", zap.Error(closeErr))
		}
	}()

	if !db.Migrator().HasTable(&snapshotRecord{}) {
		return nil, fmt.Errorf("%w: %s has no products table", ErrSnapshotUnreadable, path)
	}

	var records []snapshotRecord
	if err := db.Order("position").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshotUnreadable, err)
	}

	products := make([]models.Product, 0, len(records))
	for _, rec := range records {
		p, err := rec.toProduct()
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrSnapshotUnreadable, rec.Position, err)
		}
		products = append(products, p)
	}

	s.logger.Info("snapshot loaded", zap.String("path", path), zap.Int("products", len(products)))
	return products, nil
}
