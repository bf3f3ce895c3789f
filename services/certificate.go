package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"internship-program-api/config"
	"internship-program-api/models"
	"internship-program-api/render"
	"internship-program-api/storage"
	"internship-program-api/utils"
)

// Issuance precondition failures, surfaced to the controller as 400s.
var (
	ErrAlreadyIssued     = errors.New("profile already holds a certificate")
	ErrProfileNotDone    = errors.New("profile has not completed the program")
	ErrNoAcceptedReport  = errors.New("student participants need an accepted final report")
	ErrPaymentUnverified = errors.New("general participants need a verified payment")
)

type CertificateService struct {
	db       *gorm.DB
	renderer render.Renderer
	store    storage.Store
	org      string
}

func NewCertificateService(db *gorm.DB, renderer render.Renderer, store storage.Store) *CertificateService {
	if db == nil {
		db = config.DB
	}
	org := os.Getenv("CERT_ORG")
	if org == "" {
		org = "BBPBAT"
	}
	return &CertificateService{db: db, renderer: renderer, store: store, org: org}
}

// FormatCertificateNumber builds "{ORG}/CERT/{year}/{seq}" with the
// sequence zero-padded to three digits.
func FormatCertificateNumber(org string, year, seq int) string {
	return fmt.Sprintf("%s/CERT/%d/%03d", org, year, seq)
}

// ParseCertificateSequence extracts the trailing sequence of a number
// belonging to the given org and year. Returns 0 for numbers outside
// the scope or with an unparsable tail.
func ParseCertificateSequence(number, org string, year int) int {
	prefix := fmt.Sprintf("%s/CERT/%d/", org, year)
	if !strings.HasPrefix(number, prefix) {
		return 0
	}
	seq, err := strconv.Atoi(strings.TrimPrefix(number, prefix))
	if err != nil || seq < 0 {
		return 0
	}
	return seq
}

// nextSequence returns 1 plus the highest parsed sequence among the
// numbers already issued for the year. Unparsable numbers count as 0,
// so a polluted table never blocks issuance.
func nextSequence(numbers []string, org string, year int) int {
	max := 0
	for _, n := range numbers {
		if seq := ParseCertificateSequence(n, org, year); seq > max {
			max = seq
		}
	}
	return max + 1
}

// eligibilityError checks the category gate and returns the matching
// precondition error, or nil when eligible.
func eligibilityError(category models.Category, hasAcceptedReport, hasVerifiedPayment bool) error {
	switch category {
	case models.CategoryStudent:
		if !hasAcceptedReport {
			return ErrNoAcceptedReport
		}
	case models.CategoryGeneral:
		if !hasVerifiedPayment {
			return ErrPaymentUnverified
		}
	default:
		return fmt.Errorf("unknown category %q", category)
	}
	return nil
}

// Issue runs the whole issuance as one transaction: lock the profile
// row, verify every precondition, compute the next number within the
// year scope, render and store the document, create the certificate and
// mark the profile graduated. Any failure rolls everything back.
func (s *CertificateService) Issue(ctx context.Context, profileID int, finalScore *float64) (*models.Certificate, error) {
	var issued models.Certificate
	var storedKey string

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile models.ParticipantProfile
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("User").Preload("Placement").
			Where("profile_id = ?", profileID).
			First(&profile).Error; err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&models.Certificate{}).
			Where("profile_id = ?", profileID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyIssued
		}

		if profile.Status != models.ProfileCompleted {
			return ErrProfileNotDone
		}

		var acceptedReports int64
		if err := tx.Model(&models.Report{}).
			Where("profile_id = ? AND status = ?", profileID, models.ReportAccepted).
			Count(&acceptedReports).Error; err != nil {
			return err
		}
		var verifiedPayments int64
		if err := tx.Model(&models.PaymentProof{}).
			Where("profile_id = ? AND status = ?", profileID, models.PaymentVerified).
			Count(&verifiedPayments).Error; err != nil {
			return err
		}
		if err := eligibilityError(profile.Category, acceptedReports > 0, verifiedPayments > 0); err != nil {
			return err
		}

		now := time.Now()
		year := now.Year()

		// Read-then-write sequence generation; the surrounding lock and
		// transaction keep concurrent issuances from colliding.
		var numbers []string
		if err := tx.Model(&models.Certificate{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("number LIKE ?", fmt.Sprintf("%s/CERT/%d/%%", s.org, year)).
			Pluck("number", &numbers).Error; err != nil {
			return err
		}
		number := FormatCertificateNumber(s.org, year, nextSequence(numbers, s.org, year))

		template := models.TemplateForCategory(profile.Category)
		pdf, err := s.renderer.Render(template, render.CertificateData{
			Number:      number,
			FullName:    profile.User.FullName,
			Institution: profile.InstitutionName,
			Placement:   placementName(&profile),
			PeriodStart: utils.FormatIndoDatePtr(profile.StartDate),
			PeriodEnd:   utils.FormatIndoDatePtr(profile.EndDate),
			IssuedAt:    utils.FormatIndoDate(now),
		})
		if err != nil {
			return fmt.Errorf("render certificate: %w", err)
		}

		key := fmt.Sprintf("certificates/%d/%s", year, utils.GenerateUniqueFilename("certificate.pdf"))
		url, err := s.store.Save(ctx, key, bytes.NewReader(pdf), int64(len(pdf)), "application/pdf")
		if err != nil {
			return fmt.Errorf("store certificate: %w", err)
		}
		storedKey = key

		issued = models.Certificate{
			ProfileID:  profileID,
			Number:     number,
			FinalScore: finalScore,
			FilePath:   url,
			Template:   template,
			IssuedAt:   now,
		}
		if err := tx.Create(&issued).Error; err != nil {
			return err
		}

		return tx.Model(&models.ParticipantProfile{}).
			Where("profile_id = ?", profileID).
			Update("status", models.ProfileGraduated).Error
	})
	if err != nil {
		// The store write is outside the transaction; a rollback after a
		// successful Save would otherwise leave an orphaned file behind.
		s.removeStoredFile(ctx, storedKey)
		return nil, err
	}
	return &issued, nil
}

// removeStoredFile is the best-effort compensation for a rolled-back
// issuance. A failed delete only logs; the database stays consistent
// either way.
func (s *CertificateService) removeStoredFile(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.store.Delete(ctx, key); err != nil {
		log.Printf("certificate: failed to remove %s after rollback: %v", key, err)
	}
}

// EligibleParticipants lists completed, not-yet-certified profiles for
// the admin issuance page, with the category gate precomputed per row.
type EligibleParticipant struct {
	Profile  models.ParticipantProfile `json:"profile"`
	Eligible bool                      `json:"eligible"`
	Blocker  string                    `json:"blocker,omitempty"`
}

func (s *CertificateService) EligibleParticipants() ([]EligibleParticipant, error) {
	var profiles []models.ParticipantProfile
	if err := s.db.Preload("User").Preload("Placement").
		Where("status = ?", models.ProfileCompleted).
		Where("profile_id NOT IN (?)", s.db.Model(&models.Certificate{}).Select("profile_id")).
		Find(&profiles).Error; err != nil {
		return nil, err
	}

	out := make([]EligibleParticipant, 0, len(profiles))
	for _, p := range profiles {
		row := EligibleParticipant{Profile: p, Eligible: true}

		var acceptedReports, verifiedPayments int64
		if err := s.db.Model(&models.Report{}).
			Where("profile_id = ? AND status = ?", p.ProfileID, models.ReportAccepted).
			Count(&acceptedReports).Error; err != nil {
			return nil, err
		}
		if err := s.db.Model(&models.PaymentProof{}).
			Where("profile_id = ? AND status = ?", p.ProfileID, models.PaymentVerified).
			Count(&verifiedPayments).Error; err != nil {
			return nil, err
		}

		if err := eligibilityError(p.Category, acceptedReports > 0, verifiedPayments > 0); err != nil {
			row.Eligible = false
			row.Blocker = err.Error()
		}
		out = append(out, row)
	}
	return out, nil
}

func placementName(p *models.ParticipantProfile) string {
	if p.Placement != nil {
		return p.Placement.Name
	}
	return ""
}
