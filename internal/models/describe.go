package models

import "fmt"

// Describe returns a human-readable description whose wording depends on
// the variant. It only reads the product.
func (p *Product) Describe() string {
	switch s := p.Spec.(type) {
	case VisionDeviceSpec:
		return fmt.Sprintf("Vision Device %s is a spatial computer with an ultra high resolution display, "+
			"hand and eye tracking, and %dGB of storage for immersive experiences.",
			p.Model, p.StorageGB)
	case LaptopSpec:
		return fmt.Sprintf("Laptop %s with a %s display and the %s chip. "+
			"Strong performance and long battery life for professional work.",
			p.Model, s.ScreenSize, s.Chip)
	case TabletSpec:
		return fmt.Sprintf("Tablet %s with a %s display and %dGB of storage, %s cellular connectivity. "+
			"Light, portable and fast.",
			p.Model, s.ScreenSize, p.StorageGB, supportWord(s.Cellular))
	case PhoneSpec:
		return fmt.Sprintf("Phone %s with a %s display and a %s camera system. "+
			"Excellent performance and photography.",
			p.Model, s.ScreenSize, s.Camera)
	case WatchSpec:
		return fmt.Sprintf("Watch %s with a %s %s case, %s cellular connectivity "+
			"and all-day health monitoring.",
			p.Model, s.CaseSize, s.CaseMaterial, supportWord(s.Cellular))
	case EarbudsSpec:
		return fmt.Sprintf("Earbuds %s with %s, up to %d hours of battery life, "+
			"great sound and easy pairing.",
			p.Model, s.NoiseCancellation, s.BatteryLifeHours)
	default:
		return p.Summary()
	}
}

func specSuffix(spec Spec) string {
	switch s := spec.(type) {
	case LaptopSpec:
		return fmt.Sprintf(" | Screen: %s | Chip: %s", s.ScreenSize, s.Chip)
	case TabletSpec:
		return fmt.Sprintf(" | Screen: %s | %s", s.ScreenSize, connectivity(s.Cellular, "Wi-Fi"))
	case PhoneSpec:
		return fmt.Sprintf(" | Screen: %s | Camera: %s", s.ScreenSize, s.Camera)
	case WatchSpec:
		return fmt.Sprintf(" | Case: %s %s | %s", s.CaseSize, s.CaseMaterial, connectivity(s.Cellular, "GPS"))
	case EarbudsSpec:
		return fmt.Sprintf(" | Noise cancellation: %s | Battery: %dh", s.NoiseCancellation, s.BatteryLifeHours)
	default:
		return ""
	}
}

func supportWord(ok bool) string {
	if ok {
		return "with"
	}
	return "without"
}

func connectivity(cellular bool, fallback string) string {
	if cellular {
		return "Cellular"
	}
	return fallback
}
