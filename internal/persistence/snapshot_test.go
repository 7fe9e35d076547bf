package persistence_test

import (
	"os"
	"path/filepath"
	"testing"

	"katalog/internal/models"
	"katalog/internal/persistence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleCatalog returns one product of every variant.
func sampleCatalog(t *testing.T) []models.Product {
	t.Helper()
	specs := []struct {
		spec    models.Spec
		model   string
		price   float64
		stock   int
		color   string
		storage int
	}{
		{models.VisionDeviceSpec{}, "256GB", 25999.00, 15, "Space Gray", 256},
		{models.LaptopSpec{ScreenSize: "14.2in", Chip: "M3"}, "Pro M3 14", 15999.00, 18, "Space Gray", 512},
		{models.TabletSpec{ScreenSize: "12.9in", Cellular: true}, "Pro 12.9", 9299.00, 15, "Space Gray", 512},
		{models.PhoneSpec{ScreenSize: "6.7in", Camera: "Pro triple camera"}, "15 Pro Max 512GB", 11799.00, 18, "Blue Titanium", 512},
		{models.WatchSpec{CaseSize: "49mm", CaseMaterial: "Titanium", Cellular: true}, "Ultra 2", 6499.00, 12, "Natural Titanium", 64},
		{models.EarbudsSpec{NoiseCancellation: "Active Noise Cancellation", BatteryLifeHours: 20}, "Max", 4399.00, 20, "Silver", 512},
	}
	out := make([]models.Product, 0, len(specs))
	for _, s := range specs {
		p, err := models.New(s.spec, s.model, s.price, s.stock, s.color, s.storage)
		require.NoError(t, err)
		out = append(out, *p)
	}
	return out
}

func TestSnapshot_RoundTripKeepsEveryField(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	store := persistence.NewFileStore(dir, "products.db", nil)
	products := sampleCatalog(t)

	require.NoError(t, store.SaveSnapshot(products))
	assert.FileExists(t, filepath.Join(dir, "products.db"))
	assert.NoFileExists(t, filepath.Join(dir, "products.db.tmp"))

	loaded, err := store.LoadSnapshot()
	require.NoError(t, err)
	assert.Equal(t, products, loaded)
}

func TestSnapshot_SaveOverwritesPreviousContent(t *testing.T) {
	store := persistence.NewFileStore(t.TempDir(), "products.db", nil)
	products := sampleCatalog(t)

	require.NoError(t, store.SaveSnapshot(products))
	require.NoError(t, store.SaveSnapshot(products[2:3]))

	loaded, err := store.LoadSnapshot()
	require.NoError(t, err)
	assert.Equal(t, products[2:3], loaded)

	require.NoError(t, store.SaveSnapshot(nil))
	loaded, err = store.LoadSnapshot()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestSnapshot_MissingFileIsEmpty(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := persistence.NewFileStore(dir, "products.db", nil)

	loaded, err := store.LoadSnapshot()
	require.NoError(t, err)
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
	assert.DirExists(t, dir, "load creates the data directory")
}

func TestSnapshot_CorruptFileIsReported(t *testing.T) {
	dir := t.TempDir()
	garbage := make([]byte, 4096)
	for i := range garbage {
		garbage[i] = byte('A' + i%26)
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.db"), garbage, 0o644))

	store := persistence.NewFileStore(dir, "products.db", nil)
	loaded, err := store.LoadSnapshot()
	assert.Nil(t, loaded)
	assert.ErrorIs(t, err, persistence.ErrSnapshotUnreadable)
	assert.ErrorIs(t, err, persistence.ErrPersistenceUnavailable)
}

func TestSnapshot_DataDirCannotBeCreated(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	store := persistence.NewFileStore(filepath.Join(blocker, "data"), "products.db", nil)
	err := store.SaveSnapshot(sampleCatalog(t))
	assert.ErrorIs(t, err, persistence.ErrDataDir)

	_, err = store.LoadSnapshot()
	assert.ErrorIs(t, err, persistence.ErrPersistenceUnavailable)
}
