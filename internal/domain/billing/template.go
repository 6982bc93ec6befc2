package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/arjunpx/fuelbill-api/internal/domain/entity"
	"github.com/arjunpx/fuelbill-api/internal/domain/enum"
)

// Section names, in the order the Indian Oil layout prints them.
const (
	SectionHeader      = "header"
	SectionStation     = "station"
	SectionDetails     = "details"
	SectionTransaction = "transaction"
	SectionCustomer    = "customer"
	SectionDateTime    = "datetime"
	SectionRegulatory  = "regulatory"
	SectionFooter      = "footer"
)

// rowSpec declares one receipt line: a label, an accessor into the
// record, and what to do when the accessed value is empty. A row
// either falls back to a placeholder string or is omitted entirely.
type rowSpec struct {
	label     string
	value     func(r *entity.BillRecord) string
	fallback  string
	omitEmpty bool
}

// TemplateSpec is the layout contract of one brand: the section order
// and whether empty regulatory fields print "Not Available"
// placeholders or are dropped from the section.
type TemplateSpec struct {
	Order                  []string
	RegulatoryPlaceholders bool
}

var templates = map[enum.BrandTemplate]TemplateSpec{
	enum.BrandIndianOil: {
		Order: []string{
			SectionHeader, SectionStation, SectionDetails, SectionTransaction,
			SectionCustomer, SectionDateTime, SectionRegulatory, SectionFooter,
		},
		RegulatoryPlaceholders: true,
	},
	enum.BrandBharat: {
		Order: []string{
			SectionHeader, SectionStation, SectionDetails, SectionDateTime,
			SectionTransaction, SectionCustomer, SectionRegulatory, SectionFooter,
		},
	},
	enum.BrandHP: {
		Order: []string{
			SectionHeader, SectionDetails, SectionStation, SectionTransaction,
			SectionDateTime, SectionCustomer, SectionRegulatory, SectionFooter,
		},
	},
	enum.BrandEssar: {
		Order: []string{
			SectionHeader, SectionStation, SectionTransaction, SectionDetails,
			SectionCustomer, SectionDateTime, SectionRegulatory, SectionFooter,
		},
	},
}

// TemplateFor resolves the layout for a brand. The custom brand reuses
// the Indian Oil layout, placeholders included.
func TemplateFor(brand enum.BrandTemplate) TemplateSpec {
	if spec, ok := templates[brand]; ok {
		return spec
	}
	return templates[enum.BrandIndianOil]
}

var stationRows = []rowSpec{
	{label: "TEL NO:", value: func(r *entity.BillRecord) string { return r.PhoneNumber }, fallback: "N/A"},
}

var detailRows = []rowSpec{
	{label: "RECEIPT NO:", value: func(r *entity.BillRecord) string { return r.ReceiptNumber }},
	{label: "LOCAL ID:", value: func(r *entity.BillRecord) string { return r.LocalID }, fallback: "N/A"},
	{label: "FIP NO:", value: func(r *entity.BillRecord) string { return r.FIPNumber }, fallback: "N/A"},
	{label: "NOZZLE NO:", value: func(r *entity.BillRecord) string { return r.NozzleNumber }, fallback: "NO1"},
	{label: "PRODUCT:", value: func(r *entity.BillRecord) string { return r.ProductType.String() }},
}

var transactionRows = []rowSpec{
	{label: "PRESET TYPE:", value: func(r *entity.BillRecord) string { return r.PresetType.String() }},
	{label: "RATE/L:", value: func(r *entity.BillRecord) string { return FormatMoney(r.RatePerLitre) }},
	{label: "VOLUME:", value: func(r *entity.BillRecord) string { return FormatVolume(r.Volume) }},
	{label: "AMOUNT:", value: func(r *entity.BillRecord) string { return FormatMoney(r.Amount) }},
	{label: "ATOT:", value: func(r *entity.BillRecord) string { return r.ATOTCode }, fallback: "N/A"},
	{label: "VTOT:", value: func(r *entity.BillRecord) string { return r.VTOTCode }, fallback: "N/A"},
}

var customerRows = []rowSpec{
	{label: "VEHICLE NO:", value: func(r *entity.BillRecord) string { return r.VehicleNumber }, fallback: "Not Entered"},
	{label: "MOBILE NO:", value: func(r *entity.BillRecord) string { return r.MobileNumber }, fallback: "Not Entered"},
	{label: "CUSTOMER:", value: func(r *entity.BillRecord) string { return r.CustomerName }, omitEmpty: true},
}

var dateTimeRows = []rowSpec{
	{label: "DATE:", value: func(r *entity.BillRecord) string { return FormatDate(r.BillDate) }},
	{label: "TIME:", value: func(r *entity.BillRecord) string { return r.BillTime }},
}

var regulatoryRows = []rowSpec{
	{label: "CST NO:", value: func(r *entity.BillRecord) string { return r.CSTNumber }},
	{label: "LST NO:", value: func(r *entity.BillRecord) string { return r.LSTNumber }},
	{label: "VAT NO:", value: func(r *entity.BillRecord) string { return r.VATNumber }},
	{label: "GST TIN:", value: func(r *entity.BillRecord) string { return r.GSTTin }},
	{label: "TXN NO:", value: func(r *entity.BillRecord) string { return r.TxnNumber }},
	{label: "ATTENDANT ID:", value: func(r *entity.BillRecord) string { return r.Attendant }},
	{label: "FCC NO:", value: func(r *entity.BillRecord) string { return r.FCCNumber }},
	{label: "FCC DATE:", value: func(r *entity.BillRecord) string { return FormatDate(r.FCCDate) }},
	{label: "FCC TIME:", value: func(r *entity.BillRecord) string { return r.FCCTime }},
}

// Sections renders the record through the brand's template into an
// ordered receipt document.
func Sections(brand enum.BrandTemplate, record *entity.BillRecord) *entity.ReceiptDocument {
	spec := TemplateFor(brand)

	doc := &entity.ReceiptDocument{Brand: brand.String()}
	if brand == enum.BrandCustom {
		doc.LogoData = record.CustomLogo
	}

	for _, name := range spec.Order {
		var section entity.ReceiptSection
		switch name {
		case SectionHeader:
			section = headerSection(record)
		case SectionStation:
			section = buildSection(SectionStation, stationRows, record)
		case SectionDetails:
			section = buildSection(SectionDetails, detailRows, record)
		case SectionTransaction:
			section = buildSection(SectionTransaction, transactionRows, record)
		case SectionCustomer:
			section = buildSection(SectionCustomer, customerRows, record)
		case SectionDateTime:
			section = buildSection(SectionDateTime, dateTimeRows, record)
		case SectionRegulatory:
			section = regulatorySection(record, spec.RegulatoryPlaceholders)
		case SectionFooter:
			section = footerSection(record)
		}
		doc.Sections = append(doc.Sections, section)
	}

	return doc
}

func buildSection(name string, specs []rowSpec, record *entity.BillRecord) entity.ReceiptSection {
	section := entity.ReceiptSection{Name: name}
	for _, s := range specs {
		v := s.value(record)
		if v == "" {
			if s.omitEmpty {
				continue
			}
			v = s.fallback
		}
		section.Rows = append(section.Rows, entity.ReceiptRow{Label: s.label, Value: v})
	}
	return section
}

func headerSection(record *entity.BillRecord) entity.ReceiptSection {
	section := entity.ReceiptSection{Name: SectionHeader}
	section.Rows = append(section.Rows, entity.ReceiptRow{Value: record.StationName})
	section.Rows = append(section.Rows, entity.ReceiptRow{Value: record.WelcomeMessage})
	if record.StationLocation != "" {
		section.Rows = append(section.Rows, entity.ReceiptRow{Value: record.StationLocation})
	}
	if record.StationCode != "" {
		section.Rows = append(section.Rows, entity.ReceiptRow{Value: record.StationCode})
	}
	return section
}

// regulatorySection is the one place the brands disagree on policy:
// the Indian Oil layout prints every line with "Not Available" when
// empty, every other layout drops empty lines.
func regulatorySection(record *entity.BillRecord, placeholders bool) entity.ReceiptSection {
	specs := make([]rowSpec, len(regulatoryRows))
	copy(specs, regulatoryRows)
	for i := range specs {
		if placeholders {
			specs[i].fallback = "Not Available"
		} else {
			specs[i].omitEmpty = true
		}
	}
	return buildSection(SectionRegulatory, specs, record)
}

func footerSection(record *entity.BillRecord) entity.ReceiptSection {
	section := entity.ReceiptSection{Name: SectionFooter}
	for _, line := range strings.Split(record.FooterMessage, "\n") {
		section.Rows = append(section.Rows, entity.ReceiptRow{Value: line})
	}
	return section
}

// FormatMoney renders rate and amount fields to exactly two decimals.
func FormatMoney(v float64) string {
	return fmt.Sprintf("Rs. %.2f", v)
}

// FormatVolume renders litres to exactly two decimals.
func FormatVolume(v float64) string {
	return fmt.Sprintf("%.2f L", v)
}

// FormatDate normalizes a date field to YYYY-MM-DD. Values that do not
// parse are passed through verbatim; empty stays empty.
func FormatDate(s string) string {
	if s == "" {
		return ""
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "02/01/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}
