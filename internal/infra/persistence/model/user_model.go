package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The credential columns hold the base64
// encoded PBKDF2 hash and its salt; they are only ever written together.
type UserModel struct {
	ID               int      `gorm:"primaryKey;autoIncrement"`
	Name             string   `gorm:"type:varchar(100);not null"`
	Email            string   `gorm:"type:varchar(255);unique;not null"`
	PasswordHash     string   `gorm:"type:varchar(64);not null"`
	PasswordSalt     string   `gorm:"type:varchar(64);not null"`
	DietPreferences  []string `gorm:"type:jsonb;serializer:json"`
	FavoriteCuisines []string `gorm:"type:jsonb;serializer:json"`
	CreatedAt        time.Time

	Tokens []UserTokenModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserTokenModel mirrors the 'user_tokens' table. Rows are append-only except
// for the invalidated flag, which flips from false to true exactly once.
type UserTokenModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID      int       `gorm:"not null;index"`
	Value       string    `gorm:"type:text;not null;index"`
	Kind        string    `gorm:"type:varchar(32);not null"`
	ExpiresAt   time.Time `gorm:"not null"`
	Invalidated bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserTokenModel) TableName() string {
	return "user_tokens"
}
