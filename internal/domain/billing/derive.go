// Package billing holds the pure receipt logic: field derivation,
// brand defaults, transaction codes, and template dispatch. Nothing in
// this package touches I/O or shared state, so every rule is testable
// without the HTTP shell.
package billing

import (
	"math"

	"github.com/arjunpx/fuelbill-api/internal/domain/entity"
	"github.com/arjunpx/fuelbill-api/internal/domain/enum"
)

// NumericField names one of the three mutually constrained pump fields.
type NumericField string

const (
	FieldRate   NumericField = "ratePerLitre"
	FieldVolume NumericField = "volume"
	FieldAmount NumericField = "amount"
)

// Round2 rounds half-up to two decimal places. Half-up (not banker's)
// keeps 1170/106.34 at 11.00 and matches how the receipt displays
// money and volume.
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// Recompute applies a single numeric edit to the record and rederives
// the dependent field selected by the preset type:
//
//	Amount preset: rate or amount edits recompute volume = amount/rate
//	Litres preset: rate or volume edits recompute amount = rate*volume
//
// A non-positive rate skips the division entirely, leaving volume at
// its prior value. The input record is never mutated; the edit either
// fully applies or the caller keeps the previous record.
func Recompute(prev entity.BillRecord, field NumericField, value float64) entity.BillRecord {
	next := prev

	switch field {
	case FieldRate:
		next.RatePerLitre = value
	case FieldVolume:
		next.Volume = value
	case FieldAmount:
		next.Amount = value
	default:
		return next
	}

	switch prev.PresetType {
	case enum.PresetAmount:
		if field == FieldRate || field == FieldAmount {
			if next.RatePerLitre > 0 {
				next.Volume = Round2(next.Amount / next.RatePerLitre)
			}
		}
	case enum.PresetLitres:
		if field == FieldRate || field == FieldVolume {
			next.Amount = Round2(next.RatePerLitre * next.Volume)
		}
	}

	return next
}
