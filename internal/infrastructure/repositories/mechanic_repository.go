package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rathoremon/car-repair-sub000/domain"
)

// MechanicProfileRepositoryImpl implements domain.MechanicProfileRepository using GORM
type MechanicProfileRepositoryImpl struct {
	db *gorm.DB
}

// DBMechanicProfile represents the database model for MechanicProfile
type DBMechanicProfile struct {
	ID                string `gorm:"primaryKey;size:36"`
	AccountID         string `gorm:"uniqueIndex;size:36;not null"`
	ProviderID        string `gorm:"index;size:36;not null"`
	CredentialRotated bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName returns the table name for GORM
func (DBMechanicProfile) TableName() string {
	return "mechanic_profiles"
}

// BeforeCreate assigns an opaque id when the caller did not.
func (m *DBMechanicProfile) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// NewMechanicProfileRepository creates a new mechanic profile repository
func NewMechanicProfileRepository(db *gorm.DB) domain.MechanicProfileRepository {
	return &MechanicProfileRepositoryImpl{db: db}
}

// Create implements domain.MechanicProfileRepository
func (r *MechanicProfileRepositoryImpl) Create(ctx context.Context, profile *domain.MechanicProfile) error {
	row := &DBMechanicProfile{
		ID:                profile.ID,
		AccountID:         profile.AccountID,
		ProviderID:        profile.ProviderID,
		CredentialRotated: profile.CredentialRotated,
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	profile.ID = row.ID
	profile.CreatedAt = row.CreatedAt
	profile.UpdatedAt = row.UpdatedAt
	return nil
}

// FindByAccountID implements domain.MechanicProfileRepository
func (r *MechanicProfileRepositoryImpl) FindByAccountID(ctx context.Context, accountID string) (*domain.MechanicProfile, error) {
	var row DBMechanicProfile
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return mechanicToDomain(&row), nil
}

// MarkCredentialRotated implements domain.MechanicProfileRepository
func (r *MechanicProfileRepositoryImpl) MarkCredentialRotated(ctx context.Context, accountID string) error {
	res := r.db.WithContext(ctx).Model(&DBMechanicProfile{}).Where("account_id = ?", accountID).
		Update("credential_rotated", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func mechanicToDomain(row *DBMechanicProfile) *domain.MechanicProfile {
	return &domain.MechanicProfile{
		ID:                row.ID,
		AccountID:         row.AccountID,
		ProviderID:        row.ProviderID,
		CredentialRotated: row.CredentialRotated,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}
