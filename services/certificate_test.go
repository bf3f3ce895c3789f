package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"internship-program-api/models"
)

type recordingStore struct {
	deleted   []string
	deleteErr error
}

func (r *recordingStore) Save(ctx context.Context, key string, _ io.Reader, _ int64, _ string) (string, error) {
	return key, nil
}

func (r *recordingStore) Delete(ctx context.Context, key string) error {
	r.deleted = append(r.deleted, key)
	return r.deleteErr
}

func TestFormatCertificateNumber(t *testing.T) {
	got := FormatCertificateNumber("BBPBAT", 2026, 7)
	if got != "BBPBAT/CERT/2026/007" {
		t.Errorf("got %q", got)
	}
	// Padding grows past three digits instead of truncating.
	got = FormatCertificateNumber("BBPBAT", 2026, 1024)
	if got != "BBPBAT/CERT/2026/1024" {
		t.Errorf("got %q", got)
	}
}

func TestParseCertificateSequence(t *testing.T) {
	tests := []struct {
		number string
		want   int
	}{
		{"BBPBAT/CERT/2026/007", 7},
		{"BBPBAT/CERT/2026/1024", 1024},
		{"BBPBAT/CERT/2025/007", 0}, // wrong year
		{"OTHER/CERT/2026/007", 0},  // wrong org
		{"BBPBAT/CERT/2026/abc", 0}, // unparsable tail
		{"BBPBAT/CERT/2026/-3", 0},  // negative tail
		{"garbage", 0},
	}
	for _, tt := range tests {
		if got := ParseCertificateSequence(tt.number, "BBPBAT", 2026); got != tt.want {
			t.Errorf("ParseCertificateSequence(%q) = %d, want %d", tt.number, got, tt.want)
		}
	}
}

func TestNextSequenceUsesHighestParsedValue(t *testing.T) {
	// Out-of-order issuance: row order must not matter, only the max
	// parsed sequence does.
	numbers := []string{
		"BBPBAT/CERT/2026/003",
		"BBPBAT/CERT/2026/010",
		"BBPBAT/CERT/2026/002",
	}
	if got := nextSequence(numbers, "BBPBAT", 2026); got != 11 {
		t.Errorf("got %d, want 11", got)
	}
}

func TestNextSequenceDefaultsToOne(t *testing.T) {
	if got := nextSequence(nil, "BBPBAT", 2026); got != 1 {
		t.Errorf("empty year scope: got %d, want 1", got)
	}
	unparsable := []string{"BBPBAT/CERT/2026/old-format", "BBPBAT/CERT/2025/099"}
	if got := nextSequence(unparsable, "BBPBAT", 2026); got != 1 {
		t.Errorf("unparsable numbers: got %d, want 1", got)
	}
}

func TestEligibilityError(t *testing.T) {
	tests := []struct {
		name     string
		category models.Category
		report   bool
		payment  bool
		want     error
	}{
		{"student with accepted report", models.CategoryStudent, true, false, nil},
		{"student without accepted report", models.CategoryStudent, false, true, ErrNoAcceptedReport},
		{"general with verified payment", models.CategoryGeneral, false, true, nil},
		{"general without verified payment", models.CategoryGeneral, true, false, ErrPaymentUnverified},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := eligibilityError(tt.category, tt.report, tt.payment)
			if !errors.Is(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	if eligibilityError(models.Category("staff"), true, true) == nil {
		t.Errorf("unknown category must not be eligible")
	}
}

func TestRemoveStoredFileAfterRollback(t *testing.T) {
	store := &recordingStore{}
	svc := &CertificateService{store: store, org: "BBPBAT"}

	// A rollback after a successful upload must clean the file up.
	svc.removeStoredFile(context.Background(), "certificates/2026/abc.pdf")
	if len(store.deleted) != 1 || store.deleted[0] != "certificates/2026/abc.pdf" {
		t.Fatalf("expected one delete for the stored key, got %v", store.deleted)
	}

	// Nothing was uploaded before the failure: nothing to delete.
	svc.removeStoredFile(context.Background(), "")
	if len(store.deleted) != 1 {
		t.Fatalf("empty key must not trigger a delete, got %v", store.deleted)
	}

	// Compensation stays best-effort when the backend refuses.
	store.deleteErr = errors.New("bucket unavailable")
	svc.removeStoredFile(context.Background(), "certificates/2026/def.pdf")
	if len(store.deleted) != 2 {
		t.Fatalf("delete must still be attempted on a failing store, got %v", store.deleted)
	}
}
