package enum

import (
	"encoding/json"
	"fmt"
)

// PresetType records whether the pump transaction was initiated by a
// fixed amount or a fixed volume. It selects which of volume/amount is
// recomputed when the rate changes.
type PresetType string

const (
	PresetAmount PresetType = "Amount"
	PresetLitres PresetType = "Litres"
)

// Valid reports whether the value is a known preset type
func (p PresetType) Valid() bool {
	return p == PresetAmount || p == PresetLitres
}

func (p PresetType) String() string {
	return string(p)
}

func (p PresetType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(p))
}

func (p *PresetType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	v := PresetType(str)
	if !v.Valid() {
		return fmt.Errorf("invalid preset type %q", str)
	}
	*p = v
	return nil
}
