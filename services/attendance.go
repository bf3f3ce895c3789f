package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"internship-program-api/config"
	"internship-program-api/models"
)

// Clock errors surfaced to the controller as 409s.
var (
	ErrDayCompleted = errors.New("attendance for today is already complete")
	ErrLeaveDay     = errors.New("a leave record exists for today")
	ErrDuplicateDay = errors.New("an attendance record already exists for this date")
)

type clockStep int

const (
	stepCheckIn clockStep = iota
	stepCheckOut
	stepDone
	stepBlocked
)

// nextClockStep decides what a clock request does to today's record:
// first call of the day records check-in, second records check-out, any
// later call is rejected. A leave record blocks clocking entirely.
func nextClockStep(rec *models.AttendanceRecord) clockStep {
	if rec == nil {
		return stepCheckIn
	}
	if models.LeaveStatus(rec.Status) {
		return stepBlocked
	}
	if rec.CheckIn == nil {
		return stepCheckIn
	}
	if rec.CheckOut == nil {
		return stepCheckOut
	}
	return stepDone
}

type AttendanceService struct {
	db *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	if db == nil {
		db = config.DB
	}
	return &AttendanceService{db: db}
}

// Clock applies the half-transition for now's date and returns the
// updated record.
func (s *AttendanceService) Clock(profileID int, now time.Time) (*models.AttendanceRecord, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var rec models.AttendanceRecord
	err := s.db.Where("profile_id = ? AND record_date = ?", profileID, today).First(&rec).Error
	existing := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var step clockStep
	if existing {
		step = nextClockStep(&rec)
	} else {
		step = nextClockStep(nil)
	}

	switch step {
	case stepCheckIn:
		if !existing {
			rec = models.AttendanceRecord{
				ProfileID:  profileID,
				RecordDate: today,
			}
		}
		rec.CheckIn = &now
		rec.Status = models.AttendancePresent
		if !existing {
			if err := s.db.Create(&rec).Error; err != nil {
				return nil, err
			}
			return &rec, nil
		}
		err = s.db.Model(&models.AttendanceRecord{}).
			Where("attendance_id = ?", rec.AttendanceID).
			Updates(map[string]interface{}{
				"check_in": now,
				"status":   models.AttendancePresent,
			}).Error
		return &rec, err

	case stepCheckOut:
		rec.CheckOut = &now
		err = s.db.Model(&models.AttendanceRecord{}).
			Where("attendance_id = ?", rec.AttendanceID).
			Update("check_out", now).Error
		return &rec, err

	case stepBlocked:
		return nil, ErrLeaveDay

	default:
		return nil, ErrDayCompleted
	}
}

// SubmitLeave records an excused or sick day. Fails when any record
// already exists for that date, including a clocked one.
func (s *AttendanceService) SubmitLeave(profileID int, date time.Time, status models.AttendanceStatus, note, proofPath string) (*models.AttendanceRecord, error) {
	if !models.LeaveStatus(status) {
		return nil, errors.New("leave status must be excused or sick")
	}

	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	var count int64
	if err := s.db.Model(&models.AttendanceRecord{}).
		Where("profile_id = ? AND record_date = ?", profileID, date).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateDay
	}

	rec := models.AttendanceRecord{
		ProfileID:  profileID,
		RecordDate: date,
		Status:     status,
		Note:       note,
		ProofPath:  proofPath,
	}
	if err := s.db.Create(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}
