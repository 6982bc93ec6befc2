package billing

import (
	"testing"

	"github.com/arjunpx/fuelbill-api/internal/domain/enum"
)

func TestDefaultsForRetailBrands(t *testing.T) {
	tests := []struct {
		brand   enum.BrandTemplate
		station string
	}{
		{enum.BrandIndianOil, "Indian Oil"},
		{enum.BrandBharat, "Bharat Petroleum"},
		{enum.BrandHP, "HP Oil"},
		{enum.BrandEssar, "Essar Oil"},
	}

	for _, tt := range tests {
		d, ok := DefaultsFor(tt.brand)
		if !ok {
			t.Fatalf("DefaultsFor(%s) returned no defaults", tt.brand)
		}
		if d.StationName != tt.station {
			t.Errorf("DefaultsFor(%s).StationName = %q, want %q", tt.brand, d.StationName, tt.station)
		}
		if d.WelcomeMessage != "WELCOMES YOU" {
			t.Errorf("DefaultsFor(%s).WelcomeMessage = %q, want WELCOMES YOU", tt.brand, d.WelcomeMessage)
		}
	}
}

func TestDefaultsForCustomHasNoOverride(t *testing.T) {
	if _, ok := DefaultsFor(enum.BrandCustom); ok {
		t.Error("custom brand must not override user-entered values")
	}
}
