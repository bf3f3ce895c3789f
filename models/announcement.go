package models

import (
	"time"
)

type AnnouncementStatus string

const (
	AnnouncementDraft     AnnouncementStatus = "draft"
	AnnouncementPublished AnnouncementStatus = "published"
)

type AnnouncementPriority string

const (
	PriorityHigh   AnnouncementPriority = "high"
	PriorityMedium AnnouncementPriority = "medium"
	PriorityLow    AnnouncementPriority = "low"
)

// AudienceAll targets every participant; otherwise the audience holds a
// Category value and only matching participants see the announcement.
const AudienceAll = "all"

type Announcement struct {
	AnnouncementID int                  `gorm:"primaryKey;column:announcement_id" json:"announcement_id"`
	Title          string               `gorm:"column:title" json:"title"`
	Content        string               `gorm:"column:content" json:"content"`
	AuthorID       *int                 `gorm:"column:author_id" json:"author_id,omitempty"`
	Category       string               `gorm:"column:category;default:general" json:"category"`
	Priority       AnnouncementPriority `gorm:"column:priority;default:medium" json:"priority"`
	Audience       string               `gorm:"column:audience;default:all" json:"audience"`
	Status         AnnouncementStatus   `gorm:"column:status;default:draft" json:"status"`
	CreateAt       *time.Time           `gorm:"column:create_at" json:"create_at"`
	UpdateAt       *time.Time           `gorm:"column:update_at" json:"update_at"`
	PublishedAt    *time.Time           `gorm:"column:published_at" json:"published_at,omitempty"`
	DeleteAt       *time.Time           `gorm:"column:delete_at" json:"delete_at,omitempty"`

	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (Announcement) TableName() string {
	return "announcements"
}
