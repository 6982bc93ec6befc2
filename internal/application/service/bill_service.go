package service

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/arjunpx/fuelbill-api/internal/domain/billing"
	"github.com/arjunpx/fuelbill-api/internal/domain/entity"
	"github.com/arjunpx/fuelbill-api/internal/domain/enum"
	"github.com/arjunpx/fuelbill-api/internal/domain/repository"
	"github.com/arjunpx/fuelbill-api/internal/logger"
	"github.com/arjunpx/fuelbill-api/pkg/apperror"
)

// BillService owns the session-scoped bill lifecycle: field edits with
// derivation, full-record replace, brand switching, transaction codes,
// and the custom logo. All receipt math lives in the billing package;
// this service only routes edits into it.
type BillService struct {
	bills repository.BillRepository
	codes *billing.CodeGenerator
	log   zerolog.Logger
}

// NewBillService creates a new bill service
func NewBillService(bills repository.BillRepository, codes *billing.CodeGenerator) *BillService {
	return &BillService{
		bills: bills,
		codes: codes,
		log:   logger.WithComponent("bill_service"),
	}
}

// Get returns the session's current record, seeding a fresh one for
// unknown sessions.
func (s *BillService) Get(sessionID uuid.UUID) entity.BillRecord {
	return s.bills.Fetch(sessionID)
}

// UpdateField applies a single-field edit. Numeric fields run through
// the derivation engine; enum fields are checked; everything else is a
// plain assignment. Unknown field names are rejected.
func (s *BillService) UpdateField(sessionID uuid.UUID, field string, value interface{}) (entity.BillRecord, error) {
	switch field {
	case "ratePerLitre", "volume", "amount":
		v := coerceNumber(value)
		rec := s.bills.Mutate(sessionID, func(rec *entity.BillRecord) {
			*rec = billing.Recompute(*rec, billing.NumericField(field), v)
		})
		return rec, nil

	case "brandTemplate":
		brand := enum.BrandTemplate(coerceString(value))
		if !brand.Valid() {
			return entity.BillRecord{}, apperror.NewBadRequestError("Invalid brand template: " + coerceString(value))
		}
		return s.SwitchBrand(sessionID, brand)

	case "productType":
		product := enum.ProductType(coerceString(value))
		if !product.Valid() {
			return entity.BillRecord{}, apperror.NewBadRequestError("Invalid product type: " + coerceString(value))
		}
		return s.bills.Mutate(sessionID, func(rec *entity.BillRecord) {
			rec.ProductType = product
		}), nil

	case "presetType":
		preset := enum.PresetType(coerceString(value))
		if !preset.Valid() {
			return entity.BillRecord{}, apperror.NewBadRequestError("Invalid preset type: " + coerceString(value))
		}
		return s.bills.Mutate(sessionID, func(rec *entity.BillRecord) {
			rec.PresetType = preset
		}), nil
	}

	assign, ok := textFields[field]
	if !ok {
		return entity.BillRecord{}, apperror.NewBadRequestError("Unknown field: " + field)
	}
	text := coerceString(value)
	return s.bills.Mutate(sessionID, func(rec *entity.BillRecord) {
		assign(rec, text)
	}), nil
}

// Replace swaps in a fully validated record, keeping the previous one
// when validation upstream failed (the caller never gets here then).
func (s *BillService) Replace(sessionID uuid.UUID, rec entity.BillRecord) entity.BillRecord {
	s.bills.Replace(sessionID, rec)
	s.log.Debug().Str("session", sessionID.String()).Msg("bill record replaced")
	return rec
}

// Reset discards the session's record so the next access reseeds the
// defaults with a fresh date and time stamp.
func (s *BillService) Reset(sessionID uuid.UUID) entity.BillRecord {
	s.bills.Remove(sessionID)
	return s.bills.Fetch(sessionID)
}

// SwitchBrand changes the template. Retail brands overwrite the
// station name and welcome message with their defaults; the custom
// brand keeps whatever the user entered. The custom logo survives
// switches in both directions.
func (s *BillService) SwitchBrand(sessionID uuid.UUID, brand enum.BrandTemplate) (entity.BillRecord, error) {
	if !brand.Valid() {
		return entity.BillRecord{}, apperror.NewBadRequestError("Invalid brand template: " + brand.String())
	}
	rec := s.bills.Mutate(sessionID, func(rec *entity.BillRecord) {
		rec.BrandTemplate = brand
		if defaults, ok := billing.DefaultsFor(brand); ok {
			rec.StationName = defaults.StationName
			rec.WelcomeMessage = defaults.WelcomeMessage
		}
	})
	return rec, nil
}

// GenerateCodes draws a fresh ATOT/VTOT pair onto the record.
func (s *BillService) GenerateCodes(sessionID uuid.UUID) entity.BillRecord {
	atot, vtot := s.codes.GenerateCodes()
	return s.bills.Mutate(sessionID, func(rec *entity.BillRecord) {
		rec.ATOTCode = atot
		rec.VTOTCode = vtot
	})
}

// SetLogo stores an uploaded logo data URL and switches the record to
// the custom brand, mirroring the upload flow of the form.
func (s *BillService) SetLogo(sessionID uuid.UUID, dataURL string) entity.BillRecord {
	return s.bills.Mutate(sessionID, func(rec *entity.BillRecord) {
		rec.CustomLogo = dataURL
		rec.BrandTemplate = enum.BrandCustom
	})
}

// RemoveLogo clears the custom logo.
func (s *BillService) RemoveLogo(sessionID uuid.UUID) entity.BillRecord {
	return s.bills.Mutate(sessionID, func(rec *entity.BillRecord) {
		rec.CustomLogo = ""
	})
}

// textFields maps plain string fields to their setters.
var textFields = map[string]func(*entity.BillRecord, string){
	"stationName":     func(r *entity.BillRecord, v string) { r.StationName = v },
	"stationLocation": func(r *entity.BillRecord, v string) { r.StationLocation = v },
	"stationCode":     func(r *entity.BillRecord, v string) { r.StationCode = v },
	"phoneNumber":     func(r *entity.BillRecord, v string) { r.PhoneNumber = v },
	"receiptNumber":   func(r *entity.BillRecord, v string) { r.ReceiptNumber = v },
	"localId":         func(r *entity.BillRecord, v string) { r.LocalID = v },
	"fipNumber":       func(r *entity.BillRecord, v string) { r.FIPNumber = v },
	"nozzleNumber":    func(r *entity.BillRecord, v string) { r.NozzleNumber = v },
	"atotCode":        func(r *entity.BillRecord, v string) { r.ATOTCode = v },
	"vtotCode":        func(r *entity.BillRecord, v string) { r.VTOTCode = v },
	"vehicleNumber":   func(r *entity.BillRecord, v string) { r.VehicleNumber = v },
	"mobileNumber":    func(r *entity.BillRecord, v string) { r.MobileNumber = v },
	"customerName":    func(r *entity.BillRecord, v string) { r.CustomerName = v },
	"billDate":        func(r *entity.BillRecord, v string) { r.BillDate = v },
	"billTime":        func(r *entity.BillRecord, v string) { r.BillTime = v },
	"cstNumber":       func(r *entity.BillRecord, v string) { r.CSTNumber = v },
	"lstNumber":       func(r *entity.BillRecord, v string) { r.LSTNumber = v },
	"vatNumber":       func(r *entity.BillRecord, v string) { r.VATNumber = v },
	"gstTin":          func(r *entity.BillRecord, v string) { r.GSTTin = v },
	"txnNumber":       func(r *entity.BillRecord, v string) { r.TxnNumber = v },
	"attendant":       func(r *entity.BillRecord, v string) { r.Attendant = v },
	"fccNumber":       func(r *entity.BillRecord, v string) { r.FCCNumber = v },
	"fccDate":         func(r *entity.BillRecord, v string) { r.FCCDate = v },
	"fccTime":         func(r *entity.BillRecord, v string) { r.FCCTime = v },
	"welcomeMessage":  func(r *entity.BillRecord, v string) { r.WelcomeMessage = v },
	"footerMessage":   func(r *entity.BillRecord, v string) { r.FooterMessage = v },
}

// coerceNumber turns whatever JSON carried into a non-negative float.
// Malformed or missing input becomes 0 rather than an error, so a
// half-typed form value never wedges the record.
func coerceNumber(value interface{}) float64 {
	var v float64
	switch n := value.(type) {
	case float64:
		v = n
	case float32:
		v = float64(n)
	case int:
		v = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		v = parsed
	default:
		return 0
	}
	if v < 0 {
		return 0
	}
	return v
}

func coerceString(value interface{}) string {
	s, _ := value.(string)
	return s
}
