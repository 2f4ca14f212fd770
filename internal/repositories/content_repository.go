package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/stagelink/approval/backend/internal/models"
	"gorm.io/gorm"
)

// ErrStatusFinal is returned when a status transition is attempted on an
// item that already left Pending. Approved and Rejected are terminal.
var ErrStatusFinal = errors.New("content item status is final")

// ContentRepository defines the interface for content item data operations
type ContentRepository interface {
	CreateContentItem(item *models.ContentItem) error
	// ListVisible returns the items the viewer may see: every item for an
	// admin, otherwise only items assigned to viewerID. Results carry the
	// joined assignee profile and are ordered by schedule date ascending.
	ListVisible(viewerID string, isAdmin bool) ([]models.ContentItem, error)
	// GetVisibleByID retrieves a single item under the same visibility rule;
	// an item assigned to someone else is a not-found, not a forbidden.
	GetVisibleByID(id, viewerID string, isAdmin bool) (*models.ContentItem, error)
	// UpdateStatus transitions an item from Pending to status. Rejection
	// notes and timestamp are only written when status is Rejected.
	UpdateStatus(id string, status models.ContentStatus, rejectionNotes string, rejectedAt *time.Time) error
}

// PostgresContentRepository implements ContentRepository for PostgreSQL
type PostgresContentRepository struct {
	db *gorm.DB
}

// NewPostgresContentRepository creates a new PostgresContentRepository
func NewPostgresContentRepository(db *gorm.DB) *PostgresContentRepository {
	return &PostgresContentRepository{db: db}
}

// CreateContentItem creates a new content item in PostgreSQL
func (r *PostgresContentRepository) CreateContentItem(item *models.ContentItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.Status = models.StatusPending
	return r.db.Create(item).Error
}

// ListVisible retrieves the viewer's content items with the assignee joined
func (r *PostgresContentRepository) ListVisible(viewerID string, isAdmin bool) ([]models.ContentItem, error) {
	var items []models.ContentItem
	query := r.db.Preload("AssignedToProfile").Order("schedule_date ASC")
	if !isAdmin {
		query = query.Where("assigned_to = ?", viewerID)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetVisibleByID retrieves a single content item under the visibility rule
func (r *PostgresContentRepository) GetVisibleByID(id, viewerID string, isAdmin bool) (*models.ContentItem, error) {
	var item models.ContentItem
	query := r.db.Preload("AssignedToProfile").Where("id = ?", id)
	if !isAdmin {
		query = query.Where("assigned_to = ?", viewerID)
	}
	if err := query.First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateStatus transitions a Pending item to Approved or Rejected
func (r *PostgresContentRepository) UpdateStatus(id string, status models.ContentStatus, rejectionNotes string, rejectedAt *time.Time) error {
	updates := map[string]interface{}{"status": status}
	if status == models.StatusRejected {
		updates["rejection_notes"] = rejectionNotes
		updates["rejected_at"] = rejectedAt
	}

	res := r.db.Model(&models.ContentItem{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Either the row is gone or the status already left Pending.
		var item models.ContentItem
		if err := r.db.Select("id").First(&item, "id = ?", id).Error; err != nil {
			return err
		}
		return ErrStatusFinal
	}
	return nil
}
