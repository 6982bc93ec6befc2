package billing

import "github.com/arjunpx/fuelbill-api/internal/domain/enum"

// BrandDefaults are the field overrides applied when the user switches
// to a retailer brand template.
type BrandDefaults struct {
	StationName    string
	WelcomeMessage string
}

var brandDefaults = map[enum.BrandTemplate]BrandDefaults{
	enum.BrandIndianOil: {StationName: "Indian Oil", WelcomeMessage: "WELCOMES YOU"},
	enum.BrandBharat:    {StationName: "Bharat Petroleum", WelcomeMessage: "WELCOMES YOU"},
	enum.BrandHP:        {StationName: "HP Oil", WelcomeMessage: "WELCOMES YOU"},
	enum.BrandEssar:     {StationName: "Essar Oil", WelcomeMessage: "WELCOMES YOU"},
}

// DefaultsFor returns the overrides for a retailer brand. The second
// return is false for the custom brand, which never overrides
// user-entered values. Unknown brands are rejected at the schema
// boundary and never reach this table.
func DefaultsFor(brand enum.BrandTemplate) (BrandDefaults, bool) {
	d, ok := brandDefaults[brand]
	return d, ok
}
