// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"recipehub/internal/domain/entity"
	domainerrors "recipehub/internal/domain/errors"
	"recipehub/internal/domain/repository"
	"recipehub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tokenRepository implements the repository.TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// Store appends a freshly issued token record.
func (repo *tokenRepository) Store(ctx context.Context, token *entity.IssuedToken) error {
	tokenM := fromTokenDomain(token)
	if tokenM.ID == uuid.Nil {
		tokenM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to store token")
	}

	// Update the entity with generated values
	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// IsValid reports whether a live record exists for the (userID, value) pair.
// Missing, expired and invalidated records all read the same: not valid.
func (repo *tokenRepository) IsValid(ctx context.Context, userID int, value string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserTokenModel{}).
		Where("user_id = ? AND value = ? AND invalidated = ? AND expires_at > ?",
			userID, value, false, time.Now()).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check token validity")
	}

	return count > 0, nil
}

// Invalidate flips a single live record with this value to invalidated.
// The conditional UPDATE makes the transition atomic: under concurrent calls
// the row matches at most once, so at most one caller sees RowsAffected > 0.
func (repo *tokenRepository) Invalidate(ctx context.Context, value string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserTokenModel{}).
		Where("value = ? AND invalidated = ?", value, false).
		Update("invalidated", true)

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to invalidate token")
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---

// toTokenDomain converts a GORM UserTokenModel to a domain IssuedToken entity.
func toTokenDomain(data *model.UserTokenModel) *entity.IssuedToken {
	if data == nil {
		return nil
	}

	return &entity.IssuedToken{
		ID:          data.ID,
		UserID:      data.UserID,
		Value:       data.Value,
		Kind:        entity.TokenKind(data.Kind),
		ExpiresAt:   data.ExpiresAt,
		Invalidated: data.Invalidated,
		CreatedAt:   data.CreatedAt,
	}
}

// fromTokenDomain converts a domain IssuedToken entity to a GORM UserTokenModel.
func fromTokenDomain(data *entity.IssuedToken) *model.UserTokenModel {
	if data == nil {
		return nil
	}

	return &model.UserTokenModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Value:       data.Value,
		Kind:        string(data.Kind),
		ExpiresAt:   data.ExpiresAt,
		Invalidated: data.Invalidated,
		CreatedAt:   data.CreatedAt,
	}
}
