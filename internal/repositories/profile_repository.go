package repositories

import (
	"github.com/google/uuid"
	"github.com/stagelink/approval/backend/internal/models"
	"gorm.io/gorm"
)

// ProfileRepository defines the interface for profile data operations
type ProfileRepository interface {
	CreateProfile(profile *models.Profile) error
	GetProfileByID(id string) (*models.Profile, error)
	GetProfileByEmail(email string) (*models.Profile, error)
	GetProfileByFirebaseUID(firebaseUID string) (*models.Profile, error)
	ListClientProfiles() ([]models.Profile, error)
	UpdateProfile(profile *models.Profile) error
}

// PostgresProfileRepository implements ProfileRepository for PostgreSQL
type PostgresProfileRepository struct {
	db *gorm.DB
}

// NewPostgresProfileRepository creates a new PostgresProfileRepository
func NewPostgresProfileRepository(db *gorm.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

// CreateProfile creates a new profile in PostgreSQL
func (r *PostgresProfileRepository) CreateProfile(profile *models.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	return r.db.Create(profile).Error
}

// GetProfileByID retrieves a profile by ID from PostgreSQL
func (r *PostgresProfileRepository) GetProfileByID(id string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetProfileByEmail retrieves a profile by email from PostgreSQL
func (r *PostgresProfileRepository) GetProfileByEmail(email string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("email = ?", email).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetProfileByFirebaseUID retrieves a profile by Firebase UID from PostgreSQL
func (r *PostgresProfileRepository) GetProfileByFirebaseUID(firebaseUID string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("firebase_uid = ?", firebaseUID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListClientProfiles retrieves all non-admin profiles, ordered by email
func (r *PostgresProfileRepository) ListClientProfiles() ([]models.Profile, error) {
	var profiles []models.Profile
	if err := r.db.Where("is_admin = ?", false).Order("email ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// UpdateProfile updates an existing profile in PostgreSQL
func (r *PostgresProfileRepository) UpdateProfile(profile *models.Profile) error {
	return r.db.Save(profile).Error
}
