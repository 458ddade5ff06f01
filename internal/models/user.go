// Package models contains data models for the progress API.
package models

import "time"

// User represents a registered account.
type User struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	Roles        []UserRole `json:"roles,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}

// RoleValues returns the role values assigned to the user.
// Roles must have been preloaded with their Role association.
func (u *User) RoleValues() []string {
	values := make([]string, 0, len(u.Roles))
	for _, ur := range u.Roles {
		if ur.Role != nil {
			values = append(values, ur.Role.Value)
		}
	}
	return values
}
