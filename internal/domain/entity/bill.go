package entity

import (
	"time"

	"github.com/arjunpx/fuelbill-api/internal/domain/enum"
)

// BillRecord holds every field that can appear on a fuel receipt. It is
// the single mutable record of a session: initialized from seed
// defaults, edited field by field, and never persisted.
//
// Binding tags drive full-record validation on the raw-JSON replace
// endpoint; enum fields additionally reject unknown values during
// unmarshalling.
type BillRecord struct {
	// Branding
	BrandTemplate  enum.BrandTemplate `json:"brandTemplate" binding:"required,oneof=indianoil bharat hp essar custom"`
	CustomLogo     string             `json:"customLogo,omitempty"`
	WelcomeMessage string             `json:"welcomeMessage"`

	// Station info
	StationName     string `json:"stationName" binding:"required"`
	StationLocation string `json:"stationLocation" binding:"required"`
	StationCode     string `json:"stationCode"`
	PhoneNumber     string `json:"phoneNumber"`

	// Bill details
	ReceiptNumber string           `json:"receiptNumber" binding:"required"`
	LocalID       string           `json:"localId"`
	FIPNumber     string           `json:"fipNumber"`
	NozzleNumber  string           `json:"nozzleNumber"`
	ProductType   enum.ProductType `json:"productType" binding:"required,oneof=Petrol Diesel CNG"`
	PresetType    enum.PresetType  `json:"presetType" binding:"required,oneof=Amount Litres"`
	RatePerLitre  float64          `json:"ratePerLitre" binding:"min=0"`
	Volume        float64          `json:"volume" binding:"min=0"`
	Amount        float64          `json:"amount" binding:"min=0"`

	// Transaction codes
	ATOTCode string `json:"atotCode" binding:"omitempty,len=6,numeric"`
	VTOTCode string `json:"vtotCode" binding:"omitempty,len=6,numeric"`

	// Customer info
	VehicleNumber string `json:"vehicleNumber"`
	MobileNumber  string `json:"mobileNumber"`
	CustomerName  string `json:"customerName"`

	// Date/time
	BillDate string `json:"billDate" binding:"required"`
	BillTime string `json:"billTime" binding:"required"`

	// Regulatory
	CSTNumber string `json:"cstNumber"`
	LSTNumber string `json:"lstNumber"`
	VATNumber string `json:"vatNumber"`
	GSTTin    string `json:"gstTin"`
	TxnNumber string `json:"txnNumber"`
	Attendant string `json:"attendant"`
	FCCNumber string `json:"fccNumber"`
	FCCDate   string `json:"fccDate"`
	FCCTime   string `json:"fccTime"`

	// Footer
	FooterMessage string `json:"footerMessage"`
}

// NewDefaultBill returns the seed record every session starts from,
// stamped with the current date and time.
func NewDefaultBill(now time.Time) BillRecord {
	return BillRecord{
		BrandTemplate:   enum.BrandBharat,
		StationName:     "Bharat Petroleum",
		StationLocation: "BANGALORE 73",
		StationCode:     "73",
		PhoneNumber:     "NO: 12345",
		ReceiptNumber:   "3294",
		NozzleNumber:    "NO1",
		ProductType:     enum.ProductPetrol,
		PresetType:      enum.PresetAmount,
		RatePerLitre:    106.34,
		Volume:          11,
		Amount:          1170,
		BillDate:        now.Format("2006-01-02"),
		BillTime:        now.Format("15:04"),
		Attendant:       "Not Available",
		FCCNumber:       "Not Available",
		WelcomeMessage:  "WELCOMES YOU",
		FooterMessage:   "Thank You! Visit Again",
	}
}
