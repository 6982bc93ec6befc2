package enum

import (
	"encoding/json"
	"fmt"
)

// BrandTemplate identifies the receipt layout variant for a fuel retailer
type BrandTemplate string

const (
	BrandIndianOil BrandTemplate = "indianoil"
	BrandBharat    BrandTemplate = "bharat"
	BrandHP        BrandTemplate = "hp"
	BrandEssar     BrandTemplate = "essar"
	BrandCustom    BrandTemplate = "custom"
)

// Valid reports whether the value is a known brand template
func (b BrandTemplate) Valid() bool {
	switch b {
	case BrandIndianOil, BrandBharat, BrandHP, BrandEssar, BrandCustom:
		return true
	}
	return false
}

// DisplayName returns the retailer name shown in brand pickers
func (b BrandTemplate) DisplayName() string {
	switch b {
	case BrandIndianOil:
		return "Indian Oil"
	case BrandBharat:
		return "Bharat Petroleum"
	case BrandHP:
		return "HP Oil"
	case BrandEssar:
		return "Essar Oil"
	case BrandCustom:
		return "Custom"
	}
	return string(b)
}

func (b BrandTemplate) String() string {
	return string(b)
}

func (b BrandTemplate) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(b))
}

func (b *BrandTemplate) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	v := BrandTemplate(str)
	if !v.Valid() {
		return fmt.Errorf("invalid brand template %q", str)
	}
	*b = v
	return nil
}
