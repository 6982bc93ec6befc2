package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/arjunpx/fuelbill-api/internal/domain/billing"
	"github.com/arjunpx/fuelbill-api/internal/domain/entity"
	"github.com/arjunpx/fuelbill-api/internal/domain/enum"
	"github.com/arjunpx/fuelbill-api/internal/infrastructure/repository"
	"github.com/arjunpx/fuelbill-api/pkg/apperror"
)

func newBillService() *BillService {
	store := repository.NewMemoryBillStore(repository.MemoryBillStoreConfig{})
	return NewBillService(store, billing.NewSeededCodeGenerator(1))
}

func TestGetSeedsDefaults(t *testing.T) {
	svc := newBillService()
	rec := svc.Get(uuid.New())

	if rec.BrandTemplate != enum.BrandBharat {
		t.Errorf("expected default brand bharat, got %s", rec.BrandTemplate)
	}
	if rec.Amount != 1170 {
		t.Errorf("expected default amount 1170, got %v", rec.Amount)
	}
}

func TestUpdateAmountDerivesVolume(t *testing.T) {
	svc := newBillService()
	session := uuid.New()

	rec, err := svc.UpdateField(session, "amount", 1170.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Volume != 11.00 {
		t.Errorf("expected derived volume 11.00, got %v", rec.Volume)
	}
}

func TestUpdateFieldCoercesStringNumbers(t *testing.T) {
	svc := newBillService()
	session := uuid.New()

	rec, err := svc.UpdateField(session, "ratePerLitre", "100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.RatePerLitre != 100 {
		t.Errorf("expected rate 100, got %v", rec.RatePerLitre)
	}
}

func TestUpdateFieldMalformedNumberBecomesZero(t *testing.T) {
	svc := newBillService()
	session := uuid.New()

	rec, err := svc.UpdateField(session, "volume", "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Volume != 0 {
		t.Errorf("expected volume 0 for malformed input, got %v", rec.Volume)
	}
}

func TestUpdateFieldNegativeClampedToZero(t *testing.T) {
	svc := newBillService()
	session := uuid.New()

	rec, err := svc.UpdateField(session, "amount", -50.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Amount != 0 {
		t.Errorf("expected amount 0 for negative input, got %v", rec.Amount)
	}
}

func TestUpdateFieldUnknownRejected(t *testing.T) {
	svc := newBillService()

	_, err := svc.UpdateField(uuid.New(), "noSuchField", "x")
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != 400 {
		t.Errorf("expected 400, got %d", appErr.Code)
	}
}

func TestUpdateFieldTextAssigns(t *testing.T) {
	svc := newBillService()
	session := uuid.New()

	rec, err := svc.UpdateField(session, "vehicleNumber", "KA 01 AB 1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.VehicleNumber != "KA 01 AB 1234" {
		t.Errorf("expected vehicle number to stick, got %q", rec.VehicleNumber)
	}
}

func TestUpdateFieldInvalidEnumRejected(t *testing.T) {
	svc := newBillService()

	if _, err := svc.UpdateField(uuid.New(), "brandTemplate", "shell"); err == nil {
		t.Error("expected error for unknown brand")
	}
	if _, err := svc.UpdateField(uuid.New(), "productType", "Kerosene"); err == nil {
		t.Error("expected error for unknown product type")
	}
	if _, err := svc.UpdateField(uuid.New(), "presetType", "Gallons"); err == nil {
		t.Error("expected error for unknown preset type")
	}
}

func TestSwitchBrandAppliesDefaults(t *testing.T) {
	svc := newBillService()
	session := uuid.New()

	rec, err := svc.SwitchBrand(session, enum.BrandIndianOil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.StationName != "Indian Oil" {
		t.Errorf("expected station name Indian Oil, got %q", rec.StationName)
	}
	if rec.BrandTemplate != enum.BrandIndianOil {
		t.Errorf("expected brand indianoil, got %s", rec.BrandTemplate)
	}
}

func TestSwitchBrandToCustomKeepsStationName(t *testing.T) {
	svc := newBillService()
	session := uuid.New()

	if _, err := svc.UpdateField(session, "stationName", "My Own Pump"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec, err := svc.SwitchBrand(session, enum.BrandCustom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.StationName != "My Own Pump" {
		t.Errorf("custom brand must keep user station name, got %q", rec.StationName)
	}
}

func TestSwitchBrandKeepsCustomLogo(t *testing.T) {
	svc := newBillService()
	session := uuid.New()

	svc.SetLogo(session, "data:image/png;base64,AAAA")
	rec, err := svc.SwitchBrand(session, enum.BrandHP)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.CustomLogo == "" {
		t.Error("logo must survive a brand switch")
	}

	rec, err = svc.SwitchBrand(session, enum.BrandCustom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.CustomLogo != "data:image/png;base64,AAAA" {
		t.Errorf("expected logo to round-trip, got %q", rec.CustomLogo)
	}
}

func TestSetLogoSwitchesToCustom(t *testing.T) {
	svc := newBillService()
	session := uuid.New()

	rec := svc.SetLogo(session, "data:image/png;base64,AAAA")
	if rec.BrandTemplate != enum.BrandCustom {
		t.Errorf("uploading a logo must switch to custom, got %s", rec.BrandTemplate)
	}

	rec = svc.RemoveLogo(session)
	if rec.CustomLogo != "" {
		t.Errorf("expected logo cleared, got %q", rec.CustomLogo)
	}
}

func TestGenerateCodesStampsRecord(t *testing.T) {
	svc := newBillService()
	session := uuid.New()

	rec := svc.GenerateCodes(session)
	if len(rec.ATOTCode) != 6 || len(rec.VTOTCode) != 6 {
		t.Errorf("expected six-digit codes, got %q / %q", rec.ATOTCode, rec.VTOTCode)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	svc := newBillService()
	session := uuid.New()

	if _, err := svc.UpdateField(session, "stationName", "Changed"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec := svc.Reset(session)
	if rec.StationName != "Bharat Petroleum" {
		t.Errorf("expected defaults after reset, got %q", rec.StationName)
	}
}

func TestReplaceStoresRecord(t *testing.T) {
	svc := newBillService()
	session := uuid.New()

	want := entity.NewDefaultBill(time.Now())
	want.StationName = "Replaced Station"
	got := svc.Replace(session, want)
	if got.StationName != "Replaced Station" {
		t.Errorf("expected replaced record, got %q", got.StationName)
	}
	if svc.Get(session).StationName != "Replaced Station" {
		t.Error("replaced record must persist in the store")
	}
}
