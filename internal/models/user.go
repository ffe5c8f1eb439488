package models

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID       string   `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name     string   `gorm:"column:name;type:text" json:"name"`
	Email    string   `gorm:"column:email;type:text;uniqueIndex" json:"email"`
	Password string   `gorm:"column:password;type:text" json:"-"`
	Role     UserRole `gorm:"column:role;type:text;default:user" json:"role"`

	PrivacyAccepted   bool       `gorm:"column:privacy_accepted" json:"privacy_accepted"`
	PrivacyAcceptedAt *time.Time `gorm:"column:privacy_accepted_at" json:"privacy_accepted_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }
