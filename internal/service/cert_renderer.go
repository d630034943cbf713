package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/signintech/gopdf"
)

// CertificateData carries everything the renderer needs to lay out a
// certificate document.
type CertificateData struct {
	TraineeName string
	Skill       string
	IssuedAt    time.Time
}

// CertificateRenderer produces a certificate document at destPath.
type CertificateRenderer interface {
	Render(destPath string, data CertificateData) error
}

// PDFRenderer renders certificates as single-page landscape A4 PDFs.
type PDFRenderer struct {
	fontPath string
}

// NewPDFRenderer creates a renderer using the TTF font at fontPath.
func NewPDFRenderer(fontPath string) *PDFRenderer {
	return &PDFRenderer{fontPath: fontPath}
}

func (r *PDFRenderer) Render(destPath string, data CertificateData) error {
	pdf := gopdf.GoPdf{}
	pageSize := *gopdf.PageSizeA4Landscape
	pdf.Start(gopdf.Config{PageSize: pageSize})
	pdf.AddPage()

	if err := pdf.AddTTFFont("cert", r.fontPath); err != nil {
		return fmt.Errorf("load font: %w", err)
	}

	lines := []struct {
		size float64
		y    float64
		text string
	}{
		{32, 120, "Certificate of Completion"},
		{16, 200, "This is to certify that"},
		{26, 250, data.TraineeName},
		{16, 310, fmt.Sprintf("has successfully completed the vocational training program in %s", data.Skill)},
		{14, 400, fmt.Sprintf("Issued on %s", data.IssuedAt.Format("2 January 2006"))},
	}
	for _, line := range lines {
		if err := pdf.SetFont("cert", "", line.size); err != nil {
			return fmt.Errorf("set font: %w", err)
		}
		width, err := pdf.MeasureTextWidth(line.text)
		if err != nil {
			return fmt.Errorf("measure text: %w", err)
		}
		pdf.SetXY((pageSize.W-width)/2, line.y)
		if err := pdf.Cell(nil, line.text); err != nil {
			return fmt.Errorf("draw text: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("create certificate dir: %w", err)
	}
	if err := pdf.WritePdf(destPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
