package raster

import (
	"bytes"
	"image/png"
	"testing"
)

func sampleDocument() *Document {
	return &Document{
		Sections: []Section{
			{Name: "header", Rows: []Row{
				{Value: "Bharat Petroleum"},
				{Value: "WELCOMES YOU"},
				{Value: "BANGALORE 73"},
			}},
			{Name: "transaction", Rows: []Row{
				{Label: "RATE/L:", Value: "Rs. 106.34"},
				{Label: "VOLUME:", Value: "11.00 L"},
				{Label: "AMOUNT:", Value: "Rs. 1170.00"},
			}},
			{Name: "footer", Rows: []Row{{Value: "Thank You! Visit Again"}}},
		},
	}
}

func TestEncodePNGDecodable(t *testing.T) {
	r, err := NewRenderer(Config{})
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	data, err := r.EncodePNG(sampleDocument())
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a decodable PNG: %v", err)
	}
	if img.Bounds().Dx() != 600 { // 300 logical px at default scale 2
		t.Errorf("width = %d, want 600", img.Bounds().Dx())
	}
}

func TestScaleControlsDimensions(t *testing.T) {
	doc := sampleDocument()

	r1, err := NewRenderer(Config{Scale: 1})
	if err != nil {
		t.Fatal(err)
	}
	r3, err := NewRenderer(Config{Scale: 3})
	if err != nil {
		t.Fatal(err)
	}

	img1, err := r1.Render(doc)
	if err != nil {
		t.Fatal(err)
	}
	img3, err := r3.Render(doc)
	if err != nil {
		t.Fatal(err)
	}

	if img3.Bounds().Dx() != 3*img1.Bounds().Dx() {
		t.Errorf("widths %d and %d do not scale 3x", img1.Bounds().Dx(), img3.Bounds().Dx())
	}
	if img3.Bounds().Dy() < 3*img1.Bounds().Dy()-3 {
		t.Errorf("heights %d and %d do not scale 3x", img1.Bounds().Dy(), img3.Bounds().Dy())
	}
}

func TestMalformedLogoIsSkipped(t *testing.T) {
	r, err := NewRenderer(Config{})
	if err != nil {
		t.Fatal(err)
	}

	doc := sampleDocument()
	doc.LogoData = "data:image/png;base64,not-base64!"
	if _, err := r.EncodePNG(doc); err != nil {
		t.Errorf("malformed logo must not fail the export: %v", err)
	}
}
