package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"internship-program-api/models"
)

// A4 landscape in points.
const (
	pageW = 842.0
	pageH = 595.0
)

// OverlayRenderer draws the certificate on an A4 landscape page: the
// template background image first, then white boxes with centered text
// over each placeholder area. Coordinates come from the printed template
// layout and are measured from the bottom edge.
type OverlayRenderer struct {
	TemplateDir string
	City        string
}

func (r *OverlayRenderer) Render(template models.CertificateTemplate, data CertificateData) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "L",
		UnitStr:        "pt",
		SizeStr:        "A4",
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	if r.TemplateDir != "" {
		r.drawBackground(pdf, template)
	}

	if data.Number != "" {
		drawCenteredWithBg(pdf, 405, fmt.Sprintf("Nomor: %s", data.Number), "", 14, 300, 20)
	}
	if data.FullName != "" {
		drawCenteredWithBg(pdf, 310, data.FullName, "B", 24, 500, 30)
	}
	if data.Institution != "" {
		drawCenteredWithBg(pdf, 285, data.Institution, "", 16, 400, 20)
	}
	if data.Placement != "" {
		drawCenteredWithBg(pdf, 240, fmt.Sprintf("Unit Penempatan: %s", data.Placement), "B", 14, 400, 20)
	}
	if data.PeriodStart != "" && data.PeriodEnd != "" {
		drawCenteredWithBg(pdf, 215, fmt.Sprintf("%s - %s", data.PeriodStart, data.PeriodEnd), "", 12, 300, 18)
	}
	if data.IssuedAt != "" {
		drawIssueDate(pdf, fmt.Sprintf("%s, %s", r.City, data.IssuedAt))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render certificate pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *OverlayRenderer) drawBackground(pdf *gofpdf.Fpdf, template models.CertificateTemplate) {
	path := filepath.Join(r.TemplateDir, string(template)+".png")
	if _, err := os.Stat(path); err != nil {
		return
	}
	pdf.ImageOptions(path, 0, 0, pageW, pageH, false,
		gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
}

// drawCenteredWithBg paints a white box over the placeholder area and
// centers the text on it. y is measured from the bottom edge, at the
// text baseline, matching the template's coordinate sheet.
func drawCenteredWithBg(pdf *gofpdf.Fpdf, yFromBottom float64, text, style string, size, bgWidth, bgHeight float64) {
	baseline := pageH - yFromBottom
	rectX := pageW/2 - bgWidth/2
	rectY := baseline - bgHeight + 5

	pdf.SetFillColor(255, 255, 255)
	pdf.SetDrawColor(255, 255, 255)
	pdf.Rect(rectX, rectY, bgWidth, bgHeight, "FD")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", style, size)
	width := pdf.GetStringWidth(text)
	pdf.Text(pageW/2-width/2, baseline, text)
}

// drawIssueDate covers the date placeholder above the signature block in
// the bottom-right corner.
func drawIssueDate(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFillColor(255, 255, 255)
	pdf.SetDrawColor(255, 255, 255)
	pdf.Rect(560, pageH-110, 200, 15, "FD")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(560, pageH-98, text)
}
