package render

import (
	"os"

	"internship-program-api/models"
)

// CertificateData carries the fields printed onto a certificate.
type CertificateData struct {
	Number      string
	FullName    string
	Institution string
	Placement   string
	PeriodStart string
	PeriodEnd   string
	IssuedAt    string
	City        string
}

// Renderer produces the certificate PDF bytes for a template family.
type Renderer interface {
	Render(template models.CertificateTemplate, data CertificateData) ([]byte, error)
}

// NewFromEnv builds the overlay renderer. CERT_TEMPLATE_DIR may hold
// student.png / general.png backgrounds; without them the page is plain.
func NewFromEnv() Renderer {
	return &OverlayRenderer{
		TemplateDir: os.Getenv("CERT_TEMPLATE_DIR"),
		City:        envOr("CERT_CITY", "Sukabumi"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
