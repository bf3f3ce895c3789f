package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"internship-program-api/config"
	"internship-program-api/models"
)

// ErrQuotaFull is the intake guard failure: no seat remains for the
// chosen unit and category.
var ErrQuotaFull = errors.New("no seats remaining for this placement and category")

type QuotaService struct {
	db *gorm.DB
}

func NewQuotaService(db *gorm.DB) *QuotaService {
	if db == nil {
		db = config.DB
	}
	return &QuotaService{db: db}
}

// RemainingSeats returns capacity minus the registrations that currently
// hold a seat: pending and approved both count, rejected frees the seat.
// Never negative even if capacity was lowered after intake.
func (s *QuotaService) RemainingSeats(placementID int, category models.Category) (int, error) {
	if !category.Valid() {
		return 0, fmt.Errorf("unknown category %q", category)
	}

	var unit models.PlacementUnit
	if err := s.db.Where("placement_id = ?", placementID).First(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("placement %d not found", placementID)
		}
		return 0, err
	}

	taken, err := s.occupiedSeats(placementID, category)
	if err != nil {
		return 0, err
	}

	remaining := unit.QuotaFor(category) - int(taken)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// EnsureSeatAvailable is the submission-time guard. A nil placement
// means no unit was chosen, which carries no quota constraint; otherwise
// the submission needs at least one remaining seat.
func (s *QuotaService) EnsureSeatAvailable(placementID *int, category models.Category) error {
	if placementID == nil {
		return nil
	}
	remaining, err := s.RemainingSeats(*placementID, category)
	if err != nil {
		return err
	}
	if remaining <= 0 {
		return ErrQuotaFull
	}
	return nil
}

func (s *QuotaService) occupiedSeats(placementID int, category models.Category) (int64, error) {
	var taken int64
	err := s.db.Model(&models.Registration{}).
		Where("placement_id = ? AND category = ? AND status IN ?",
			placementID, category,
			[]models.RegistrationStatus{models.RegistrationPending, models.RegistrationApproved}).
		Count(&taken).Error
	return taken, err
}

// PlacementAvailability is the public listing row: unit info plus the
// live remaining seats per category.
type PlacementAvailability struct {
	Placement        models.PlacementUnit `json:"placement"`
	StudentRemaining int                  `json:"student_remaining"`
	GeneralRemaining int                  `json:"general_remaining"`
}

// ListAvailability returns every placement unit with remaining seats for
// both categories, for the public intake page.
func (s *QuotaService) ListAvailability() ([]PlacementAvailability, error) {
	var units []models.PlacementUnit
	if err := s.db.Order("name ASC").Find(&units).Error; err != nil {
		return nil, err
	}

	out := make([]PlacementAvailability, 0, len(units))
	for _, unit := range units {
		student, err := s.RemainingSeats(unit.PlacementID, models.CategoryStudent)
		if err != nil {
			return nil, err
		}
		general, err := s.RemainingSeats(unit.PlacementID, models.CategoryGeneral)
		if err != nil {
			return nil, err
		}
		out = append(out, PlacementAvailability{
			Placement:        unit,
			StudentRemaining: student,
			GeneralRemaining: general,
		})
	}
	return out, nil
}
