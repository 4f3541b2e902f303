package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rathoremon/car-repair-sub000/domain"
)

// ProviderProfileRepositoryImpl implements domain.ProviderProfileRepository using GORM
type ProviderProfileRepositoryImpl struct {
	db *gorm.DB
}

// DBProviderProfile represents the database model for ProviderProfile
type DBProviderProfile struct {
	ID        string `gorm:"primaryKey;size:36"`
	AccountID string `gorm:"uniqueIndex;size:36;not null"`
	KYCStatus string `gorm:"size:16;not null;default:pending"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (DBProviderProfile) TableName() string {
	return "provider_profiles"
}

// BeforeCreate assigns an opaque id when the caller did not.
func (p *DBProviderProfile) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// NewProviderProfileRepository creates a new provider profile repository
func NewProviderProfileRepository(db *gorm.DB) domain.ProviderProfileRepository {
	return &ProviderProfileRepositoryImpl{db: db}
}

// Create implements domain.ProviderProfileRepository
func (r *ProviderProfileRepositoryImpl) Create(ctx context.Context, profile *domain.ProviderProfile) error {
	row := providerToDB(profile)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	applyProviderRow(profile, row)
	return nil
}

// FindByAccountID implements domain.ProviderProfileRepository
func (r *ProviderProfileRepositoryImpl) FindByAccountID(ctx context.Context, accountID string) (*domain.ProviderProfile, error) {
	var row DBProviderProfile
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return providerToDomain(&row), nil
}

// Ensure implements domain.ProviderProfileRepository. Insert-or-skip on the
// account_id unique constraint, then read back: the loser of a concurrent
// create sees the winner's row instead of an error.
func (r *ProviderProfileRepositoryImpl) Ensure(ctx context.Context, accountID string) (*domain.ProviderProfile, error) {
	row := &DBProviderProfile{
		AccountID: accountID,
		KYCStatus: string(domain.KYCPending),
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "account_id"}}, DoNothing: true}).
		Create(row).Error
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}
	return r.FindByAccountID(ctx, accountID)
}

func providerToDB(profile *domain.ProviderProfile) *DBProviderProfile {
	return &DBProviderProfile{
		ID:        profile.ID,
		AccountID: profile.AccountID,
		KYCStatus: string(profile.KYCStatus),
	}
}

func applyProviderRow(profile *domain.ProviderProfile, row *DBProviderProfile) {
	profile.ID = row.ID
	profile.AccountID = row.AccountID
	profile.CreatedAt = row.CreatedAt
	profile.UpdatedAt = row.UpdatedAt
}

func providerToDomain(row *DBProviderProfile) *domain.ProviderProfile {
	return &domain.ProviderProfile{
		ID:        row.ID,
		AccountID: row.AccountID,
		KYCStatus: domain.KYCStatus(row.KYCStatus),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
