package model

import "time"

// User represents a registered account in the identity store.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime;<-:create"`
}

// TableName pins the table name used by the identity store.
func (User) TableName() string {
	return "users"
}
