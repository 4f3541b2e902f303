package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rathoremon/car-repair-sub000/domain"
)

// AccountRepositoryImpl implements domain.AccountRepository using GORM
type AccountRepositoryImpl struct {
	db *gorm.DB
}

// DBAccount represents the database model for Account (with GORM tags)
type DBAccount struct {
	ID                 string  `gorm:"primaryKey;size:36"`
	Name               string  `gorm:"size:255;not null"`
	Email              *string `gorm:"uniqueIndex;size:255"`
	Phone              string  `gorm:"uniqueIndex;size:32;not null"`
	PasswordHash       string  `gorm:"column:password;not null"`
	Role               string  `gorm:"index;size:32;not null"`
	OtpVerified        bool
	OtpVerifiedAt      *time.Time
	OnboardingComplete bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBAccount) TableName() string {
	return "accounts"
}

// BeforeCreate assigns an opaque id when the caller did not.
func (a *DBAccount) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) domain.AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

// Create implements domain.AccountRepository
func (r *AccountRepositoryImpl) Create(ctx context.Context, account *domain.Account) error {
	row := accountToDB(account)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return mapDuplicate(err)
	}
	applyAccountRow(account, row)
	return nil
}

// CreateWithProvider implements domain.AccountRepository. The account and its
// provider profile land in one transaction so a provider account can never
// exist without its mandated profile.
func (r *AccountRepositoryImpl) CreateWithProvider(ctx context.Context, account *domain.Account, profile *domain.ProviderProfile) error {
	accRow := accountToDB(account)
	profRow := providerToDB(profile)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(accRow).Error; err != nil {
			return err
		}
		profRow.AccountID = accRow.ID
		return tx.Create(profRow).Error
	})
	if err != nil {
		return mapDuplicate(err)
	}

	applyAccountRow(account, accRow)
	applyProviderRow(profile, profRow)
	return nil
}

// FindByID implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByPhone implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByPhone(ctx context.Context, phone string) (*domain.Account, error) {
	return r.findOne(ctx, "phone = ?", phone)
}

// FindByEmail implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *AccountRepositoryImpl) findOne(ctx context.Context, query string, arg interface{}) (*domain.Account, error) {
	var row DBAccount
	err := r.db.WithContext(ctx).Where(query, arg).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return accountToDomain(&row), nil
}

// UpdatePassword implements domain.AccountRepository
func (r *AccountRepositoryImpl) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	res := r.db.WithContext(ctx).Model(&DBAccount{}).Where("id = ?", id).Update("password", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// MarkOtpVerified implements domain.AccountRepository
func (r *AccountRepositoryImpl) MarkOtpVerified(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&DBAccount{}).Where("id = ?", id).
		Updates(map[string]interface{}{"otp_verified": true, "otp_verified_at": at}).Error
}

// ClearOtpVerification implements domain.AccountRepository. Unconditional and
// idempotent: concurrent callers racing on stale state all converge on the
// same cleared row.
func (r *AccountRepositoryImpl) ClearOtpVerification(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&DBAccount{}).Where("id = ?", id).
		Updates(map[string]interface{}{"otp_verified": false, "otp_verified_at": nil}).Error
}

func mapDuplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrAccountExists
	}
	return err
}

func accountToDB(account *domain.Account) *DBAccount {
	var email *string
	if account.Email != "" {
		email = &account.Email
	}
	return &DBAccount{
		ID:                 account.ID,
		Name:               account.Name,
		Email:              email,
		Phone:              account.Phone,
		PasswordHash:       account.PasswordHash,
		Role:               string(account.Role),
		OtpVerified:        account.OtpVerified,
		OtpVerifiedAt:      account.OtpVerifiedAt,
		OnboardingComplete: account.OnboardingComplete,
	}
}

func applyAccountRow(account *domain.Account, row *DBAccount) {
	account.ID = row.ID
	account.CreatedAt = row.CreatedAt
	account.UpdatedAt = row.UpdatedAt
}

func accountToDomain(row *DBAccount) *domain.Account {
	email := ""
	if row.Email != nil {
		email = *row.Email
	}
	return &domain.Account{
		ID:                 row.ID,
		Name:               row.Name,
		Email:              email,
		Phone:              row.Phone,
		PasswordHash:       row.PasswordHash,
		Role:               domain.Role(row.Role),
		OtpVerified:        row.OtpVerified,
		OtpVerifiedAt:      row.OtpVerifiedAt,
		OnboardingComplete: row.OnboardingComplete,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}
