package enum

import (
	"encoding/json"
	"fmt"
)

// ProductType is the dispensed fuel product
type ProductType string

const (
	ProductPetrol ProductType = "Petrol"
	ProductDiesel ProductType = "Diesel"
	ProductCNG    ProductType = "CNG"
)

// Valid reports whether the value is a known product type
func (p ProductType) Valid() bool {
	switch p {
	case ProductPetrol, ProductDiesel, ProductCNG:
		return true
	}
	return false
}

func (p ProductType) String() string {
	return string(p)
}

func (p ProductType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(p))
}

func (p *ProductType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	v := ProductType(str)
	if !v.Valid() {
		return fmt.Errorf("invalid product type %q", str)
	}
	*p = v
	return nil
}
