// Package raster draws a rendered receipt onto a canvas and encodes
// it as a PNG for download. The layout mimics thermal paper: monospace
// text, centered header and footer, dashed dividers between sections.
package raster

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
)

// Row is one label/value line. Header and footer lines have no label
// and are centered.
type Row struct {
	Label string
	Value string
}

// Section is an ordered run of rows.
type Section struct {
	Name string
	Rows []Row
}

// Document is the rasterizer's input: the receipt sections in print
// order, plus an optional logo (data URL) shown above the header.
type Document struct {
	Sections []Section
	LogoData string
}

// Config controls the output geometry.
type Config struct {
	// Width is the logical paper width in pixels. Default 300, like
	// the on-screen receipt.
	Width int
	// Scale supersamples the output (2 doubles every dimension).
	Scale float64
	// FontPath optionally overrides the embedded Go Mono face with a
	// TTF file on disk.
	FontPath string
}

// Layout constants in logical pixels, taken from the receipt styling.
const (
	padX        = 16.0
	padY        = 20.0
	fontSize    = 11.0
	lineHeight  = 16.0
	headerSize  = 15.0
	welcomeSize = 18.0
	sectionGap  = 9.0
	logoSize    = 80.0
)

// Renderer rasterizes receipt documents. Safe for concurrent use once
// constructed.
type Renderer struct {
	cfg     Config
	regular *text.FontSource
	bold    *text.FontSource
}

// NewRenderer loads the fonts and validates the configuration.
func NewRenderer(cfg Config) (*Renderer, error) {
	if cfg.Width <= 0 {
		cfg.Width = 300
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 2
	}

	regularTTF := gomono.TTF
	boldTTF := gomonobold.TTF
	if cfg.FontPath != "" {
		src, err := text.NewFontSourceFromFile(cfg.FontPath)
		if err != nil {
			return nil, fmt.Errorf("raster: load font %s: %w", cfg.FontPath, err)
		}
		bold, err := text.NewFontSourceFromFile(cfg.FontPath)
		if err != nil {
			return nil, fmt.Errorf("raster: load font %s: %w", cfg.FontPath, err)
		}
		return &Renderer{cfg: cfg, regular: src, bold: bold}, nil
	}

	regular, err := text.NewFontSource(regularTTF)
	if err != nil {
		return nil, fmt.Errorf("raster: parse embedded mono font: %w", err)
	}
	bold, err := text.NewFontSource(boldTTF)
	if err != nil {
		return nil, fmt.Errorf("raster: parse embedded mono bold font: %w", err)
	}
	return &Renderer{cfg: cfg, regular: regular, bold: bold}, nil
}

// Render draws the document and returns the image.
func (r *Renderer) Render(doc *Document) (image.Image, error) {
	logo := r.decodeLogo(doc.LogoData)

	height := r.measure(doc, logo)
	s := r.cfg.Scale
	ctx := gg.NewContext(int(float64(r.cfg.Width)*s), int(height*s))
	defer ctx.Close()
	ctx.ClearWithColor(gg.RGB(1, 1, 1))
	ctx.SetRGB(0, 0, 0)

	if err := r.draw(ctx, doc, logo); err != nil {
		return nil, err
	}
	return ctx.Image(), nil
}

// EncodePNG renders the document and encodes it as PNG bytes.
func (r *Renderer) EncodePNG(doc *Document) ([]byte, error) {
	img, err := r.Render(doc)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("raster: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// measure computes the logical height the draw pass will use.
func (r *Renderer) measure(doc *Document, logo image.Image) float64 {
	y := padY
	if logo != nil {
		y += logoSize + 8
	}
	for i, section := range doc.Sections {
		switch section.Name {
		case "header":
			// Station name and welcome lines are larger than the rest.
			for j := range section.Rows {
				switch j {
				case 0:
					y += headerSize + 6
				case 1:
					y += welcomeSize + 6
				default:
					y += lineHeight
				}
			}
			y += sectionGap + 2 // solid rule under the header
		case "footer":
			y += 2 + sectionGap // solid rule above the footer
			y += float64(len(section.Rows)) * lineHeight
		default:
			y += float64(len(section.Rows)) * lineHeight
			y += sectionGap
			if i < len(doc.Sections)-1 {
				y += 1 + sectionGap // dashed divider
			}
		}
	}
	return y + padY
}

// draw walks the sections top to bottom with a cursor, mirroring the
// arithmetic in measure.
func (r *Renderer) draw(ctx *gg.Context, doc *Document, logo image.Image) error {
	s := r.cfg.Scale
	width := float64(r.cfg.Width)
	center := width / 2

	body := r.regular.Face(fontSize * s)
	header := r.bold.Face(headerSize * s)
	welcome := r.bold.Face(welcomeSize * s)

	y := padY
	if logo != nil {
		r.drawLogo(ctx, logo, center, y)
		y += logoSize + 8
	}

	for i, section := range doc.Sections {
		switch section.Name {
		case "header":
			for j, row := range section.Rows {
				switch j {
				case 0:
					ctx.SetFont(header)
					y += headerSize
					ctx.DrawStringAnchored(row.Value, center*s, y*s, 0.5, 0)
					y += 6
				case 1:
					ctx.SetFont(welcome)
					y += welcomeSize
					ctx.DrawStringAnchored(row.Value, center*s, y*s, 0.5, 0)
					y += 6
				default:
					ctx.SetFont(body)
					y += lineHeight
					ctx.DrawStringAnchored(row.Value, center*s, y*s, 0.5, 0)
				}
			}
			y += sectionGap
			if err := r.rule(ctx, y, 2); err != nil {
				return err
			}
			y += 2
		case "footer":
			if err := r.rule(ctx, y, 2); err != nil {
				return err
			}
			y += 2 + sectionGap
			ctx.SetFont(body)
			for _, row := range section.Rows {
				y += lineHeight
				ctx.DrawStringAnchored(row.Value, center*s, y*s, 0.5, 0)
			}
		default:
			ctx.SetFont(body)
			for _, row := range section.Rows {
				y += lineHeight
				ctx.DrawString(row.Label, padX*s, y*s)
				ctx.DrawStringAnchored(row.Value, (width-padX)*s, y*s, 1, 0)
			}
			y += sectionGap
			if i < len(doc.Sections)-1 {
				if err := r.dashedRule(ctx, y); err != nil {
					return err
				}
				y += 1 + sectionGap
			}
		}
	}
	return nil
}

func (r *Renderer) rule(ctx *gg.Context, y, thickness float64) error {
	s := r.cfg.Scale
	ctx.DrawRectangle(padX*s, y*s, (float64(r.cfg.Width)-2*padX)*s, thickness*s)
	return ctx.Fill()
}

func (r *Renderer) dashedRule(ctx *gg.Context, y float64) error {
	s := r.cfg.Scale
	ctx.SetDash(3*s, 3*s)
	ctx.SetLineWidth(1 * s)
	ctx.MoveTo(padX*s, y*s)
	ctx.LineTo((float64(r.cfg.Width)-padX)*s, y*s)
	err := ctx.Stroke()
	ctx.ClearDash()
	return err
}

func (r *Renderer) drawLogo(ctx *gg.Context, logo image.Image, centerX, y float64) {
	s := r.cfg.Scale
	bounds := logo.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}

	// Fit into the logo box, preserving aspect ratio.
	scale := logoSize * s / float64(bounds.Dx())
	if alt := logoSize * s / float64(bounds.Dy()); alt < scale {
		scale = alt
	}
	w := float64(bounds.Dx()) * scale
	h := float64(bounds.Dy()) * scale

	ctx.DrawImageEx(gg.ImageBufFromImage(logo), gg.DrawImageOptions{
		X:             centerX*s - w/2,
		Y:             y * s,
		DstWidth:      w,
		DstHeight:     h,
		Interpolation: gg.InterpBilinear,
		Opacity:       1.0,
		BlendMode:     gg.BlendNormal,
	})
}

// decodeLogo parses a data URL into an image. Anything malformed is
// skipped rather than failing the whole export.
func (r *Renderer) decodeLogo(dataURL string) image.Image {
	if dataURL == "" {
		return nil
	}
	idx := strings.Index(dataURL, "base64,")
	if idx < 0 {
		return nil
	}
	raw, err := base64.StdEncoding.DecodeString(dataURL[idx+len("base64,"):])
	if err != nil {
		return nil
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil
	}
	return img
}
