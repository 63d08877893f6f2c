package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"youthcup_backend/internal/feature/auth/usecase"
)

// RefreshTokenModel is the GORM model for the refresh_tokens table, used
// when Redis is unavailable.
type RefreshTokenModel struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false"`
	Token     string    `gorm:"type:text;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

// refreshTokenGorm is a SQL implementation of RefreshTokenStore.
type refreshTokenGorm struct {
	db  *gorm.DB
	now func() time.Time
}

// Compile-time check to ensure refreshTokenGorm implements RefreshTokenStore.
var _ usecase.RefreshTokenStore = (*refreshTokenGorm)(nil)

// NewRefreshTokenGorm creates a new instance of refreshTokenGorm.
func NewRefreshTokenGorm(db *gorm.DB) *refreshTokenGorm {
	return &refreshTokenGorm{db: db, now: time.Now}
}

// Save upserts the user's row.
func (r *refreshTokenGorm) Save(ctx context.Context, userID uint, token string, ttl time.Duration) error {
	model := RefreshTokenModel{UserID: userID, Token: token, ExpiresAt: r.now().Add(ttl)}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "expires_at", "updated_at"}),
	}).Create(&model).Error
}

// Get returns the token unless it is missing or expired.
func (r *refreshTokenGorm) Get(ctx context.Context, userID uint) (string, error) {
	var model RefreshTokenModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", usecase.ErrRefreshTokenNotFound
		}
		return "", err
	}
	if !r.now().Before(model.ExpiresAt) {
		return "", usecase.ErrRefreshTokenNotFound
	}
	return model.Token, nil
}

// Delete removes the user's row.
func (r *refreshTokenGorm) Delete(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Delete(&RefreshTokenModel{}, "user_id = ?", userID).Error
}

// DeleteExpired removes all expired rows and returns how many were deleted.
func (r *refreshTokenGorm) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at <= ?", r.now()).Delete(&RefreshTokenModel{})
	return result.RowsAffected, result.Error
}
