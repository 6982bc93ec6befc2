package service

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/arjunpx/fuelbill-api/internal/domain/billing"
	"github.com/arjunpx/fuelbill-api/internal/domain/entity"
	"github.com/arjunpx/fuelbill-api/internal/domain/repository"
	"github.com/arjunpx/fuelbill-api/internal/logger"
	"github.com/arjunpx/fuelbill-api/pkg/apperror"
	"github.com/arjunpx/fuelbill-api/pkg/printer"
	"github.com/arjunpx/fuelbill-api/pkg/raster"
)

// ReceiptService turns a session's bill record into the rendered
// receipt: the structured preview, the PNG export, and the ESC/POS
// print job.
type ReceiptService struct {
	bills       repository.BillRepository
	printer     printer.Printer
	renderer    *raster.Renderer
	printerType string
	paperWidth  int
	log         zerolog.Logger
}

// PrinterStatus reports the configured printer and its connectivity.
type PrinterStatus struct {
	Type      string `json:"type"`
	Connected bool   `json:"connected"`
}

// NewReceiptService creates a new receipt service
func NewReceiptService(bills repository.BillRepository, p printer.Printer, renderer *raster.Renderer, printerType string, paperWidth int) *ReceiptService {
	return &ReceiptService{
		bills:       bills,
		printer:     p,
		renderer:    renderer,
		printerType: printerType,
		paperWidth:  paperWidth,
		log:         logger.WithComponent("receipt_service"),
	}
}

// Preview builds the brand-ordered receipt document for the session's
// current record.
func (s *ReceiptService) Preview(sessionID uuid.UUID) *entity.ReceiptDocument {
	rec := s.bills.Fetch(sessionID)
	return billing.Sections(rec.BrandTemplate, &rec)
}

// ExportPNG rasterizes the receipt and returns the image bytes plus
// the download filename.
func (s *ReceiptService) ExportPNG(sessionID uuid.UUID) ([]byte, string, error) {
	rec := s.bills.Fetch(sessionID)
	doc := billing.Sections(rec.BrandTemplate, &rec)

	data, err := s.renderer.EncodePNG(rasterDocument(doc))
	if err != nil {
		s.log.Error().Err(err).Str("session", sessionID.String()).Msg("png export failed")
		return nil, "", apperror.NewExportError(err)
	}

	name := rec.ReceiptNumber
	if name == "" {
		name = "receipt"
	}
	return data, "fuel-bill-" + name + ".png", nil
}

// Print formats the receipt as ESC/POS and sends it to the configured
// printer. The formatted document comes back either way, so callers
// can fall back to showing it when the hardware is offline.
func (s *ReceiptService) Print(sessionID uuid.UUID) (*entity.ReceiptDocument, []byte, error) {
	rec := s.bills.Fetch(sessionID)
	doc := billing.Sections(rec.BrandTemplate, &rec)
	job := FormatReceipt(doc, s.paperWidth)

	if err := s.printer.Print(job); err != nil {
		s.log.Warn().Err(err).Str("session", sessionID.String()).Msg("print failed")
		return doc, job, err
	}

	s.log.Info().
		Str("session", sessionID.String()).
		Str("receipt_no", rec.ReceiptNumber).
		Int("bytes", len(job)).
		Msg("receipt printed")
	return doc, job, nil
}

// Status reports the printer type and whether the transport is live.
func (s *ReceiptService) Status() PrinterStatus {
	return PrinterStatus{
		Type:      s.printerType,
		Connected: s.printer.IsConnected(),
	}
}

// FormatReceipt encodes a receipt document as an ESC/POS job. The
// header prints centered with the station name doubled, body sections
// print as key/value lines split by the dashed roll divider, and the
// footer prints centered above a partial cut.
func FormatReceipt(doc *entity.ReceiptDocument, paperWidth int) []byte {
	d := printer.NewDocument(paperWidth)

	for i, section := range doc.Sections {
		switch section.Name {
		case billing.SectionHeader:
			d.SetAlign(printer.AlignCenter).SetBold(true)
			for j, row := range section.Rows {
				if j == 0 {
					d.SetFontSize(printer.FontDouble).Text(row.Value).SetFontSize(printer.FontNormal)
					continue
				}
				d.Text(row.Value)
			}
			d.SetBold(false).SetAlign(printer.AlignLeft)
			d.Separator('=')

		case billing.SectionFooter:
			d.Separator('=')
			d.SetAlign(printer.AlignCenter)
			for _, row := range section.Rows {
				d.Text(row.Value)
			}
			d.SetAlign(printer.AlignLeft)

		default:
			for _, row := range section.Rows {
				d.KeyValue(row.Label, row.Value)
			}
			// No divider between the last body section and the footer
			// rule that follows it.
			if i+1 < len(doc.Sections) && doc.Sections[i+1].Name != billing.SectionFooter {
				d.DashedSeparator()
			}
		}
	}

	d.FeedLines(3).PartialCut()
	return d.Bytes()
}

// rasterDocument maps the receipt entity onto the renderer's input
// types, which keeps pkg/raster free of domain imports.
func rasterDocument(doc *entity.ReceiptDocument) *raster.Document {
	out := &raster.Document{LogoData: doc.LogoData}
	for _, section := range doc.Sections {
		rs := raster.Section{Name: section.Name}
		for _, row := range section.Rows {
			rs.Rows = append(rs.Rows, raster.Row{Label: row.Label, Value: row.Value})
		}
		out.Sections = append(out.Sections, rs)
	}
	return out
}
