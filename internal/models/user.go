package models

import "time"

// Role is the access level stored on a user.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents an account of the store.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null"` // bcrypt hash, never serialized
	Role      Role      `json:"role" gorm:"type:varchar(10);not null;default:USER"`
	Name      string    `json:"name" gorm:"type:varchar(100)"`
	CreatedAt time.Time `json:"createdAt"`
}
