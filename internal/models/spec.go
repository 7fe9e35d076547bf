package models

// Spec carries the variant-specific attributes of a product. Exactly one of
// the concrete types below is stored in Product.Spec, and its Kind decides
// how the product is described and persisted.
type Spec interface {
	Kind() Kind
}

// VisionDeviceSpec has no attributes beyond the shared ones.
type VisionDeviceSpec struct{}

type LaptopSpec struct {
	ScreenSize string
	Chip       string
}

type TabletSpec struct {
	ScreenSize string
	Cellular   bool
}

type PhoneSpec struct {
	ScreenSize string
	Camera     string
}

type WatchSpec struct {
	CaseSize     string
	CaseMaterial string
	Cellular     bool
}

type EarbudsSpec struct {
	NoiseCancellation string
	BatteryLifeHours  int
}

func (VisionDeviceSpec) Kind() Kind { return KindVisionDevice }
func (LaptopSpec) Kind() Kind       { return KindLaptop }
func (TabletSpec) Kind() Kind       { return KindTablet }
func (PhoneSpec) Kind() Kind        { return KindPhone }
func (WatchSpec) Kind() Kind        { return KindWatch }
func (EarbudsSpec) Kind() Kind      { return KindEarbuds }

// DefaultSpec returns the fixed attributes given to products rebuilt from a
// CSV row, since the CSV format does not carry variant columns.
func DefaultSpec(k Kind) (Spec, bool) {
	switch k {
	case KindVisionDevice:
		return VisionDeviceSpec{}, true
	case KindLaptop:
		return LaptopSpec{ScreenSize: "16in", Chip: "M3"}, true
	case KindTablet:
		return TabletSpec{ScreenSize: "11in", Cellular: false}, true
	case KindPhone:
		return PhoneSpec{ScreenSize: "6.7in", Camera: "Pro triple camera"}, true
	case KindWatch:
		return WatchSpec{CaseSize: "45mm", CaseMaterial: "Aluminum", Cellular: false}, true
	case KindEarbuds:
		return EarbudsSpec{NoiseCancellation: "Active Noise Cancellation", BatteryLifeHours: 30}, true
	default:
		return nil, false
	}
}
