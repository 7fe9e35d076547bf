package services

import (
	"fmt"

	"katalog/internal/models"

	"go.uber.org/zap"
)

type sampleProduct struct {
	spec    models.Spec
	model   string
	price   float64
	stock   int
	color   string
	storage int
}

var sampleCatalog = []sampleProduct{
	{models.VisionDeviceSpec{}, "256GB", 25999.00, 15, "Space Gray", 256},
	{models.VisionDeviceSpec{}, "512GB", 27999.00, 8, "Space Gray", 512},

	{models.LaptopSpec{ScreenSize: "13.6in", Chip: "M3"}, "Air M3 13", 8999.00, 20, "Midnight", 256},
	{models.LaptopSpec{ScreenSize: "15.3in", Chip: "M3"}, "Air M3 15", 10499.00, 12, "Silver", 512},
	{models.LaptopSpec{ScreenSize: "14.2in", Chip: "M3"}, "Pro M3 14", 15999.00, 18, "Space Gray", 512},
	{models.LaptopSpec{ScreenSize: "16.2in", Chip: "M3 Max"}, "Pro M3 Max 16", 24999.00, 10, "Space Black", 1024},

	{models.TabletSpec{ScreenSize: "10.9in", Cellular: false}, "10th gen 10.9", 3599.00, 25, "Blue", 64},
	{models.TabletSpec{ScreenSize: "10.9in", Cellular: false}, "Air 5th gen 11", 4399.00, 22, "Purple", 256},
	{models.TabletSpec{ScreenSize: "12.9in", Cellular: true}, "Pro 12.9", 9299.00, 15, "Space Gray", 512},

	{models.PhoneSpec{ScreenSize: "6.1in", Camera: "Dual camera"}, "15 128GB", 5999.00, 30, "Pink", 128},
	{models.PhoneSpec{ScreenSize: "6.7in", Camera: "Dual camera"}, "15 Plus 256GB", 7999.00, 20, "Blue", 256},
	{models.PhoneSpec{ScreenSize: "6.1in", Camera: "Pro triple camera"}, "15 Pro 256GB", 8999.00, 25, "Natural Titanium", 256},
	{models.PhoneSpec{ScreenSize: "6.7in", Camera: "Pro triple camera"}, "15 Pro Max 512GB", 11799.00, 18, "Blue Titanium", 512},

	{models.WatchSpec{CaseSize: "44mm", CaseMaterial: "Aluminum", Cellular: false}, "SE 2nd gen", 1999.00, 35, "Midnight", 32},
	{models.WatchSpec{CaseSize: "45mm", CaseMaterial: "Aluminum", Cellular: true}, "Series 9", 2999.00, 28, "Pink Sand", 64},
	{models.WatchSpec{CaseSize: "49mm", CaseMaterial: "Titanium", Cellular: true}, "Ultra 2", 6499.00, 12, "Natural Titanium", 64},

	{models.EarbudsSpec{NoiseCancellation: "Adaptive EQ", BatteryLifeHours: 30}, "3rd gen", 1399.00, 50, "White", 256},
	{models.EarbudsSpec{NoiseCancellation: "Active Noise Cancellation", BatteryLifeHours: 30}, "Pro 2nd gen", 1899.00, 40, "White", 256},
	{models.EarbudsSpec{NoiseCancellation: "Active Noise Cancellation", BatteryLifeHours: 20}, "Max", 4399.00, 20, "Silver", 512},
}

// SeedSampleData fills an empty catalog with the sample products and
// snapshots it. A catalog that already has products is left alone.
func (s *ProductService) SeedSampleData() (int, error) {
	if s.repo.Count() > 0 {
		return 0, nil
	}

	seeded := 0
	for _, sp := range sampleCatalog {
		p, err := models.New(sp.spec, sp.model, sp.price, sp.stock, sp.color, sp.storage)
		if err != nil {
			return seeded, fmt.Errorf("failed to build sample product %s: %w", sp.model, err)
		}
		if err := s.repo.Create(p); err != nil {
			s.logger.Warn("error seeding product", zap.String("model", p.Model), zap.Error(err))
			continue
		}
		seeded++
	}
	s.logger.Info("sample data seeded", zap.Int("products", seeded))
	return seeded, s.persist()
}
