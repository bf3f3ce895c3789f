package models

import (
	"time"
)

// ProfileStatus lifecycle: active -> completed -> graduated. Graduated is
// terminal and only ever set by certificate issuance.
type ProfileStatus string

const (
	ProfileActive    ProfileStatus = "active"
	ProfileCompleted ProfileStatus = "completed"
	ProfileGraduated ProfileStatus = "graduated"
)

// ParticipantProfile is the per-user participant record created when a
// registration is approved. The two completeness flags are derived and
// recomputed explicitly through services.RecomputeCompleteness.
type ParticipantProfile struct {
	ProfileID int      `gorm:"primaryKey;column:profile_id" json:"profile_id"`
	UserID    int      `gorm:"column:user_id;unique" json:"user_id"`
	Category  Category `gorm:"column:category" json:"category"`

	PlacementID *int `gorm:"column:placement_id" json:"placement_id,omitempty"`

	// Personal
	Address       string     `gorm:"column:address" json:"address"`
	Phone         string     `gorm:"column:phone" json:"phone"`
	BirthPlace    string     `gorm:"column:birth_place" json:"birth_place"`
	BirthDate     *time.Time `gorm:"column:birth_date;type:date" json:"birth_date,omitempty"`
	BloodType     string     `gorm:"column:blood_type" json:"blood_type"`
	MedicalNotes  string     `gorm:"column:medical_notes" json:"medical_notes"`
	SpecialCare   string     `gorm:"column:special_care" json:"special_care"`
	GuardianName  string     `gorm:"column:guardian_name" json:"guardian_name"`
	GuardianPhone string     `gorm:"column:guardian_phone" json:"guardian_phone"`

	// Institution
	MemberNumber       string `gorm:"column:member_number" json:"member_number"`
	InstitutionName    string `gorm:"column:institution_name" json:"institution_name"`
	InstitutionAddress string `gorm:"column:institution_address" json:"institution_address"`
	InstitutionEmail   string `gorm:"column:institution_email" json:"institution_email"`
	InstitutionPhone   string `gorm:"column:institution_phone" json:"institution_phone"`

	// Supervisor
	SupervisorName  string `gorm:"column:supervisor_name" json:"supervisor_name"`
	SupervisorPhone string `gorm:"column:supervisor_phone" json:"supervisor_phone"`
	SupervisorEmail string `gorm:"column:supervisor_email" json:"supervisor_email"`

	// Program dates: planned dates are filled by the participant, official
	// dates are copied from them the first time both are present.
	PlannedStart *time.Time `gorm:"column:planned_start;type:date" json:"planned_start,omitempty"`
	PlannedEnd   *time.Time `gorm:"column:planned_end;type:date" json:"planned_end,omitempty"`
	StartDate    *time.Time `gorm:"column:start_date;type:date" json:"start_date,omitempty"`
	EndDate      *time.Time `gorm:"column:end_date;type:date" json:"end_date,omitempty"`

	Status ProfileStatus `gorm:"column:status;default:active" json:"status"`

	ProfileComplete   bool `gorm:"column:profile_complete" json:"profile_complete"`
	DocumentsComplete bool `gorm:"column:documents_complete" json:"documents_complete"`

	CreateAt *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at"`

	// Relations
	User      User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Placement *PlacementUnit `gorm:"foreignKey:PlacementID;constraint:OnDelete:SET NULL" json:"placement,omitempty"`
	Documents []Document     `gorm:"foreignKey:ProfileID" json:"documents,omitempty"`
}

func (ParticipantProfile) TableName() string {
	return "participant_profiles"
}

// DocumentKind tags an uploaded participant document. A profile holds at
// most one document per kind.
type DocumentKind string

const (
	DocumentKTP        DocumentKind = "ktp"
	DocumentKTM        DocumentKind = "ktm"
	DocumentKK         DocumentKind = "kk"
	DocumentPhoto      DocumentKind = "photo"
	DocumentProposal   DocumentKind = "proposal"
	DocumentTranscript DocumentKind = "transcript"
	DocumentStatement  DocumentKind = "statement"
)

// RequiredDocumentKinds is the set a profile needs before its
// documents_complete flag turns true.
var RequiredDocumentKinds = []DocumentKind{
	DocumentKTP, DocumentKTM, DocumentKK, DocumentPhoto,
	DocumentProposal, DocumentTranscript, DocumentStatement,
}

func ValidDocumentKind(kind DocumentKind) bool {
	for _, k := range RequiredDocumentKinds {
		if k == kind {
			return true
		}
	}
	return false
}

type Document struct {
	DocumentID int          `gorm:"primaryKey;column:document_id" json:"document_id"`
	ProfileID  int          `gorm:"column:profile_id;uniqueIndex:uniq_profile_kind" json:"profile_id"`
	Kind       DocumentKind `gorm:"column:kind;uniqueIndex:uniq_profile_kind" json:"kind"`
	FilePath   string       `gorm:"column:file_path" json:"file_path"`
	UploadedAt time.Time    `gorm:"column:uploaded_at" json:"uploaded_at"`
}

func (Document) TableName() string {
	return "documents"
}
