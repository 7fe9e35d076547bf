package models_test

import (
	"errors"
	"math"
	"testing"

	"katalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLaptop(t *testing.T) *models.Product {
	t.Helper()
	p, err := models.New(models.LaptopSpec{ScreenSize: "13.6in", Chip: "M2"}, "Air M2", 8999.00, 10, "Silver", 256)
	require.NoError(t, err)
	return p
}

func TestNew_AssignsIdentityAndName(t *testing.T) {
	p := newLaptop(t)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Laptop", p.Name)
	assert.Equal(t, models.KindLaptop, p.Kind())
	assert.Equal(t, 8999.00, p.Price)
	assert.Equal(t, 10, p.Stock)

	other := newLaptop(t)
	assert.NotEqual(t, p.ID, other.ID)
}

func TestNew_RejectsNegativeValues(t *testing.T) {
	_, err := models.New(models.PhoneSpec{}, "X", -1, 1, "Black", 128)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = models.New(models.PhoneSpec{}, "X", 1, -1, "Black", 128)
	var ve *models.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "Stock")

	_, err = models.New(nil, "X", 1, 1, "Black", 128)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestSetPriceAndStock(t *testing.T) {
	p := newLaptop(t)

	assert.NoError(t, p.SetPrice(7999.50))
	assert.Equal(t, 7999.50, p.Price)
	assert.NoError(t, p.SetPrice(0))
	assert.Equal(t, 0.0, p.Price)

	err := p.SetPrice(-0.01)
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Equal(t, 0.0, p.Price, "price must stay unchanged after a rejected update")

	assert.NoError(t, p.SetStock(3))
	err = p.SetStock(-5)
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Equal(t, 3, p.Stock)
}

func TestNew_RejectsNonFinitePrice(t *testing.T) {
	for _, price := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		_, err := models.New(models.PhoneSpec{}, "X", price, 1, "Black", 128)
		assert.ErrorIs(t, err, models.ErrValidation, "price %v", price)
	}

	p := newLaptop(t)
	err := p.SetPrice(math.Inf(1))
	var ve *models.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Field 'Price' failed on the 'finite' tag", ve.Fields["Price"])
	assert.Equal(t, 8999.00, p.Price)
}

func TestValidate_NameMustMatchVariant(t *testing.T) {
	p := newLaptop(t)
	require.NoError(t, p.Validate())

	p.Spec = models.EarbudsSpec{NoiseCancellation: "ANC", BatteryLifeHours: 30}
	err := p.Validate()
	var ve *models.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "Name")

	p.Name = "Earbuds"
	assert.NoError(t, p.Validate())
}

func TestSameVariant(t *testing.T) {
	laptop := newLaptop(t)
	other := newLaptop(t)
	phone, err := models.New(models.PhoneSpec{}, "15", 5999, 1, "Black", 128)
	require.NoError(t, err)

	assert.NoError(t, laptop.SameVariant(other))
	assert.ErrorIs(t, laptop.SameVariant(phone), models.ErrValidation)
}

func TestSetSpec_KeepsVariant(t *testing.T) {
	p := newLaptop(t)

	assert.NoError(t, p.SetSpec(models.LaptopSpec{ScreenSize: "15.3in", Chip: "M3"}))
	assert.Equal(t, models.LaptopSpec{ScreenSize: "15.3in", Chip: "M3"}, p.Spec)

	err := p.SetSpec(models.PhoneSpec{ScreenSize: "6.1in"})
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Equal(t, models.KindLaptop, p.Kind())
}

func TestEqual_ComparesIdentityOnly(t *testing.T) {
	p := newLaptop(t)
	clone := *p
	clone.Model = "something else"
	assert.True(t, p.Equal(&clone))

	other := newLaptop(t)
	other.Model = p.Model
	assert.False(t, p.Equal(other))
}

func TestSummary(t *testing.T) {
	p := newLaptop(t)
	assert.Equal(t, "Laptop - Air M2 | Color: Silver | Storage: 256GB | Price: 8999.00 | Stock: 10", p.Summary())
	assert.Equal(t, p.Summary()+" | Screen: 13.6in | Chip: M2", p.String())
}

func TestDescribe_VariesByVariant(t *testing.T) {
	laptop := newLaptop(t)
	assert.Contains(t, laptop.Describe(), "13.6in")
	assert.Contains(t, laptop.Describe(), "M2")
	assert.Equal(t, laptop.Describe(), laptop.Describe())

	watch, err := models.New(models.WatchSpec{CaseSize: "45mm", CaseMaterial: "Aluminum", Cellular: true}, "Series 9", 2999, 28, "Pink", 64)
	require.NoError(t, err)
	assert.Contains(t, watch.Describe(), "with cellular")

	require.NoError(t, watch.SetSpec(models.WatchSpec{CaseSize: "45mm", CaseMaterial: "Aluminum"}))
	assert.Contains(t, watch.Describe(), "without cellular")

	buds, err := models.New(models.EarbudsSpec{NoiseCancellation: "ANC", BatteryLifeHours: 20}, "Max", 4399, 20, "Silver", 512)
	require.NoError(t, err)
	assert.Contains(t, buds.Describe(), "20 hours")
}

func TestKindMapping(t *testing.T) {
	for _, k := range models.Kinds {
		parsed, err := models.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)

		byName, ok := models.KindForName(k.Label())
		assert.True(t, ok)
		assert.Equal(t, k, byName)

		spec, ok := models.DefaultSpec(k)
		assert.True(t, ok)
		assert.Equal(t, k, spec.Kind())
	}

	_, err := models.ParseKind("toaster")
	assert.Error(t, err)
	_, ok := models.KindForName("laptop")
	assert.False(t, ok, "name mapping is case sensitive")
}
