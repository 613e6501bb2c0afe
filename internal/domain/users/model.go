package users

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Username     string  `gorm:"not null;uniqueIndex:idx_users_username" json:"username"`
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	PasswordHash *string `gorm:"column:password_hash" json:"-"`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'" json:"-"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub" json:"-"`
	Role         string  `gorm:"type:varchar(10);not null;default:'USER'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
