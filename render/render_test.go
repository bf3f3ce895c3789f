package render

import (
	"bytes"
	"strings"
	"testing"

	"internship-program-api/models"
)

func TestOverlayRendererProducesPDF(t *testing.T) {
	r := &OverlayRenderer{City: "Sukabumi"}

	out, err := r.Render(models.TemplateStudent, CertificateData{
		Number:      "BBPBAT/CERT/2026/007",
		FullName:    "Siti Rahma",
		Institution: "Universitas Padjadjaran",
		Placement:   "Perpustakaan",
		PeriodStart: "1 Februari 2026",
		PeriodEnd:   "30 April 2026",
		IssuedAt:    "2 Mei 2026",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output does not start with a PDF header")
	}
}

func TestOverlayRendererEmptyFieldsStillRenders(t *testing.T) {
	r := &OverlayRenderer{}
	out, err := r.Render(models.TemplateGeneral, CertificateData{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(out) == 0 {
		t.Errorf("expected non-empty pdf output")
	}
}

func TestRenderTokens(t *testing.T) {
	got := RenderTokens("Halo {{NAME}}, password: {{PASSWORD}} ({{MISSING}})", map[string]string{
		"NAME":     "Budi",
		"PASSWORD": "s3cret",
	})
	if !strings.Contains(got, "Halo Budi") || !strings.Contains(got, "password: s3cret") {
		t.Errorf("unexpected output %q", got)
	}
	if !strings.Contains(got, "{{MISSING}}") {
		t.Errorf("unknown token should survive, got %q", got)
	}
}
