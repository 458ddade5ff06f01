package models

import "time"

// Built-in role values.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// Role is a named permission group ("Admin", "User", ...).
type Role struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Value       string    `json:"value" gorm:"uniqueIndex;not null"`
	Description string    `json:"description" gorm:"not null;default:''"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the database table name for the Role model.
func (Role) TableName() string {
	return "roles"
}

// UserRole assigns a role to a user. The pair is unique.
type UserRole struct {
	UserID int64 `json:"user_id" gorm:"primaryKey"`
	RoleID int64 `json:"role_id" gorm:"primaryKey"`
	Role   *Role `json:"role,omitempty" gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the database table name for the UserRole model.
func (UserRole) TableName() string {
	return "user_roles"
}
