package models

import "time"

// ContentType is the closed set of schedulable content kinds.
type ContentType string

const (
	TypePost   ContentType = "Post"
	TypeStory  ContentType = "Story"
	TypeReel   ContentType = "Reel"
	TypeTikTok ContentType = "TikTok"
)

// ContentTypes lists the four types in their fixed display order.
var ContentTypes = []ContentType{TypePost, TypeStory, TypeReel, TypeTikTok}

// Valid reports whether t is one of the four known content types.
func (t ContentType) Valid() bool {
	switch t {
	case TypePost, TypeStory, TypeReel, TypeTikTok:
		return true
	}
	return false
}

// ContentStatus is the approval state of a content item. Items start
// Pending; Approved and Rejected are terminal.
type ContentStatus string

const (
	StatusPending  ContentStatus = "Pending"
	StatusApproved ContentStatus = "Approved"
	StatusRejected ContentStatus = "Rejected"
)

// Valid reports whether s is a known status.
func (s ContentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// ContentItem represents a single piece of scheduled social content
// awaiting or having received approval (PostgreSQL).
type ContentItem struct {
	ID                string        `json:"id" gorm:"type:uuid;primaryKey"`
	Caption           string        `json:"caption"`
	ContentType       ContentType   `json:"content_type" gorm:"size:10;index"`
	MediaURL          string        `json:"media_url"`
	Status            ContentStatus `json:"status" gorm:"size:10;index;default:Pending"`
	ScheduleDate      time.Time     `json:"schedule_date" gorm:"index"` // date-only semantics, time of day ignored
	RejectionNotes    string        `json:"rejection_notes,omitempty"`
	RejectedAt        *time.Time    `json:"rejected_at,omitempty"`
	AssignedTo        string        `json:"assigned_to" gorm:"type:uuid;index"`
	AssignedToProfile *Profile      `json:"assigned_to_profile,omitempty" gorm:"foreignKey:AssignedTo"`
	CreatedBy         string        `json:"created_by" gorm:"type:uuid"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// CreateContentRequest defines the request body for creating a content item
type CreateContentRequest struct {
	Caption      string `json:"caption" validate:"required"`
	ContentType  string `json:"content_type" validate:"required,oneof=Post Story Reel TikTok"`
	MediaURL     string `json:"media_url" validate:"required,url"`
	ScheduleDate string `json:"schedule_date" validate:"required,datetime=2006-01-02"`
	AssignedTo   string `json:"assigned_to" validate:"required,uuid"`
}

// RejectContentRequest defines the request body for rejecting a content item.
// Notes are checked non-empty after trimming; the raw text is stored.
type RejectContentRequest struct {
	Notes string `json:"notes" validate:"required"`
}
