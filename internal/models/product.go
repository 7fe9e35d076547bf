package models

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsInf(f, 0) && !math.IsNaN(f)
	})
	return v
}

// Product represents one SKU in the catalog.
type Product struct {
	ID        string  `json:"id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Model     string  `json:"model"`
	Price     float64 `json:"price" validate:"finite,gte=0"`
	Stock     int     `json:"stock" validate:"gte=0"`
	Color     string  `json:"color"`
	StorageGB int     `json:"storage_gb"`
	Spec      Spec    `json:"-" validate:"required"`
}

// New builds a product of the spec's variant with a freshly generated ID.
func New(spec Spec, model string, price float64, stock int, color string, storageGB int) (*Product, error) {
	if spec == nil {
		return nil, newValidationError("Spec", "required")
	}
	p := &Product{
		ID:        NewID(),
		Name:      spec.Kind().Label(),
		Model:     model,
		Price:     price,
		Stock:     stock,
		Color:     color,
		StorageGB: storageGB,
		Spec:      spec,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// NewID returns a random opaque identifier.
func NewID() string {
	return uuid.NewString()
}

// Kind returns the variant of the product, or zero when no spec is set.
func (p *Product) Kind() Kind {
	if p.Spec == nil {
		return 0
	}
	return p.Spec.Kind()
}

// Validate checks the record invariants.
func (p *Product) Validate() error {
	if err := validate.Struct(p); err != nil {
		return toValidationError(err)
	}
	if !p.Kind().Valid() {
		return newValidationError("Spec", "kind")
	}
	if p.Name != p.Kind().Label() {
		return newValidationError("Name", "kind")
	}
	return nil
}

// SameVariant rejects a replacement of a different variant than p.
func (p *Product) SameVariant(replacement *Product) error {
	if replacement.Kind() != p.Kind() {
		return newValidationError("Spec", "kind")
	}
	return nil
}

// SetPrice updates the price; a negative or infinite value leaves the
// product untouched.
func (p *Product) SetPrice(price float64) error {
	if err := validate.Var(price, "finite,gte=0"); err != nil {
		return varValidationError("Price", err)
	}
	p.Price = price
	return nil
}

// SetStock updates the stock; a negative value leaves the product untouched.
func (p *Product) SetStock(stock int) error {
	if err := validate.Var(stock, "gte=0"); err != nil {
		return varValidationError("Stock", err)
	}
	p.Stock = stock
	return nil
}

// SetSpec replaces the variant attributes. The variant itself cannot change.
func (p *Product) SetSpec(spec Spec) error {
	if spec == nil {
		return newValidationError("Spec", "required")
	}
	if p.Spec != nil && spec.Kind() != p.Spec.Kind() {
		return newValidationError("Spec", "kind")
	}
	p.Spec = spec
	return nil
}

// Equal reports whether both products have the same identity.
func (p *Product) Equal(other *Product) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.ID == other.ID
}

// Summary is the single-line form used by listings.
func (p *Product) Summary() string {
	return fmt.Sprintf("%s - %s | Color: %s | Storage: %dGB | Price: %.2f | Stock: %d",
		p.Name, p.Model, p.Color, p.StorageGB, p.Price, p.Stock)
}

func (p *Product) String() string {
	return p.Summary() + specSuffix(p.Spec)
}
