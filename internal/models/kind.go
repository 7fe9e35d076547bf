package models

import "fmt"

// Kind identifies which product variant a record holds.
type Kind int

const (
	KindVisionDevice Kind = iota + 1
	KindLaptop
	KindTablet
	KindPhone
	KindWatch
	KindEarbuds
)

// Kinds lists every variant in menu order.
var Kinds = []Kind{KindVisionDevice, KindLaptop, KindTablet, KindPhone, KindWatch, KindEarbuds}

var kindCodes = map[Kind]string{
	KindVisionDevice: "vision_device",
	KindLaptop:       "laptop",
	KindTablet:       "tablet",
	KindPhone:        "phone",
	KindWatch:        "watch",
	KindEarbuds:      "earbuds",
}

var kindLabels = map[Kind]string{
	KindVisionDevice: "Vision Device",
	KindLaptop:       "Laptop",
	KindTablet:       "Tablet",
	KindPhone:        "Phone",
	KindWatch:        "Watch",
	KindEarbuds:      "Earbuds",
}

// String returns the stable code used as the snapshot discriminator.
func (k Kind) String() string {
	if code, ok := kindCodes[k]; ok {
		return code
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Label returns the product family name stored in Product.Name.
func (k Kind) Label() string {
	return kindLabels[k]
}

// Valid reports whether k is one of the six known variants.
func (k Kind) Valid() bool {
	_, ok := kindCodes[k]
	return ok
}

// ParseKind is the inverse of Kind.String.
func ParseKind(code string) (Kind, error) {
	for k, c := range kindCodes {
		if c == code {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown product kind %q", code)
}

// KindForName maps a product family name (the CSV Name column) to its variant.
// The match is exact, like the labels written on export.
func KindForName(name string) (Kind, bool) {
	for k, label := range kindLabels {
		if label == name {
			return k, true
		}
	}
	return 0, false
}
