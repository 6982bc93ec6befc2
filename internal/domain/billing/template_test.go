package billing

import (
	"testing"
	"time"

	"github.com/arjunpx/fuelbill-api/internal/domain/entity"
	"github.com/arjunpx/fuelbill-api/internal/domain/enum"
)

func testBill() entity.BillRecord {
	return entity.NewDefaultBill(time.Date(2025, 3, 14, 9, 26, 0, 0, time.UTC))
}

func findRow(section *entity.ReceiptSection, label string) *entity.ReceiptRow {
	if section == nil {
		return nil
	}
	for i := range section.Rows {
		if section.Rows[i].Label == label {
			return &section.Rows[i]
		}
	}
	return nil
}

func TestSectionOrderDiffersPerBrand(t *testing.T) {
	rec := testBill()
	orders := map[enum.BrandTemplate]string{}
	for _, brand := range []enum.BrandTemplate{enum.BrandIndianOil, enum.BrandBharat, enum.BrandHP, enum.BrandEssar} {
		doc := Sections(brand, &rec)
		key := ""
		for _, s := range doc.Sections {
			key += s.Name + ","
		}
		orders[brand] = key
	}

	seen := map[string]enum.BrandTemplate{}
	for brand, key := range orders {
		if other, dup := seen[key]; dup {
			t.Errorf("brands %s and %s share the same section order", brand, other)
		}
		seen[key] = brand
	}
}

func TestCustomFallsBackToIndianOilOrder(t *testing.T) {
	rec := testBill()
	custom := Sections(enum.BrandCustom, &rec)
	indian := Sections(enum.BrandIndianOil, &rec)

	if len(custom.Sections) != len(indian.Sections) {
		t.Fatalf("section counts differ: %d vs %d", len(custom.Sections), len(indian.Sections))
	}
	for i := range custom.Sections {
		if custom.Sections[i].Name != indian.Sections[i].Name {
			t.Errorf("section %d: custom=%s indianoil=%s", i, custom.Sections[i].Name, indian.Sections[i].Name)
		}
	}
}

func TestRegulatoryPlaceholderAsymmetry(t *testing.T) {
	rec := testBill()
	rec.CSTNumber = ""

	indian := Sections(enum.BrandIndianOil, &rec)
	row := findRow(indian.Section(SectionRegulatory), "CST NO:")
	if row == nil {
		t.Fatal("indianoil regulatory section is missing the CST row")
	}
	if row.Value != "Not Available" {
		t.Errorf("indianoil CST value = %q, want Not Available", row.Value)
	}

	bharat := Sections(enum.BrandBharat, &rec)
	if row := findRow(bharat.Section(SectionRegulatory), "CST NO:"); row != nil {
		t.Errorf("bharat regulatory section must omit the empty CST row, got %q", row.Value)
	}

	// A populated field shows up under both policies.
	rec.CSTNumber = "CST-104"
	bharat = Sections(enum.BrandBharat, &rec)
	row = findRow(bharat.Section(SectionRegulatory), "CST NO:")
	if row == nil || row.Value != "CST-104" {
		t.Errorf("bharat CST row = %+v, want CST-104", row)
	}
}

func TestNumericFormatting(t *testing.T) {
	rec := testBill()
	rec.RatePerLitre = 106.34
	rec.Volume = 11
	rec.Amount = 1170

	doc := Sections(enum.BrandBharat, &rec)
	txn := doc.Section(SectionTransaction)

	if row := findRow(txn, "RATE/L:"); row == nil || row.Value != "Rs. 106.34" {
		t.Errorf("rate row = %+v, want Rs. 106.34", row)
	}
	if row := findRow(txn, "VOLUME:"); row == nil || row.Value != "11.00 L" {
		t.Errorf("volume row = %+v, want 11.00 L", row)
	}
	if row := findRow(txn, "AMOUNT:"); row == nil || row.Value != "Rs. 1170.00" {
		t.Errorf("amount row = %+v, want Rs. 1170.00", row)
	}
}

func TestOptionalFieldFallbacks(t *testing.T) {
	rec := testBill()
	rec.PhoneNumber = ""
	rec.NozzleNumber = ""
	rec.VehicleNumber = ""
	rec.ATOTCode = ""

	doc := Sections(enum.BrandIndianOil, &rec)

	if row := findRow(doc.Section(SectionStation), "TEL NO:"); row == nil || row.Value != "N/A" {
		t.Errorf("TEL NO row = %+v, want N/A", row)
	}
	if row := findRow(doc.Section(SectionDetails), "NOZZLE NO:"); row == nil || row.Value != "NO1" {
		t.Errorf("NOZZLE NO row = %+v, want NO1", row)
	}
	if row := findRow(doc.Section(SectionCustomer), "VEHICLE NO:"); row == nil || row.Value != "Not Entered" {
		t.Errorf("VEHICLE NO row = %+v, want Not Entered", row)
	}
	if row := findRow(doc.Section(SectionTransaction), "ATOT:"); row == nil || row.Value != "N/A" {
		t.Errorf("ATOT row = %+v, want N/A", row)
	}
	if row := findRow(doc.Section(SectionCustomer), "CUSTOMER:"); row != nil {
		t.Errorf("empty customer name should be omitted, got %+v", row)
	}
}

func TestDateAndTimeRendering(t *testing.T) {
	rec := testBill()
	rec.BillDate = "2025-03-14"
	rec.BillTime = "09:26"

	doc := Sections(enum.BrandEssar, &rec)
	dt := doc.Section(SectionDateTime)

	if row := findRow(dt, "DATE:"); row == nil || row.Value != "2025-03-14" {
		t.Errorf("date row = %+v, want 2025-03-14", row)
	}
	// Times pass through untouched, no timezone handling.
	if row := findRow(dt, "TIME:"); row == nil || row.Value != "09:26" {
		t.Errorf("time row = %+v, want 09:26", row)
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"2025-03-14", "2025-03-14"},
		{"2025-03-14T00:00:00Z", "2025-03-14"},
		{"14/03/2025", "2025-03-14"},
		{"not a date", "not a date"},
	}
	for _, tt := range tests {
		if got := FormatDate(tt.in); got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFooterSplitsLines(t *testing.T) {
	rec := testBill()
	rec.FooterMessage = "Thank You!\nVisit Again"

	doc := Sections(enum.BrandHP, &rec)
	footer := doc.Section(SectionFooter)
	if footer == nil || len(footer.Rows) != 2 {
		t.Fatalf("footer = %+v, want two rows", footer)
	}
	if footer.Rows[0].Value != "Thank You!" || footer.Rows[1].Value != "Visit Again" {
		t.Errorf("footer rows = %+v", footer.Rows)
	}
}

func TestCustomLogoOnlyForCustomBrand(t *testing.T) {
	rec := testBill()
	rec.CustomLogo = "data:image/png;base64,AAAA"

	if doc := Sections(enum.BrandBharat, &rec); doc.LogoData != "" {
		t.Error("non-custom brand must not carry the custom logo")
	}
	if doc := Sections(enum.BrandCustom, &rec); doc.LogoData == "" {
		t.Error("custom brand must carry the custom logo")
	}
}
