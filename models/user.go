package models

import (
	"strings"
	"time"
)

// Role is the closed set of account roles. Handlers switch on these
// constants; raw string comparisons are not allowed outside this package.
type Role string

const (
	RoleAdmin     Role = "admin"
	RolePersonnel Role = "personnel"
	RoleUser      Role = "user"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RolePersonnel, RoleUser:
		return true
	}
	return false
}

// CanReview reports whether the role may act on certificate reviews.
func (r Role) CanReview() bool {
	return r == RoleAdmin || r == RolePersonnel
}

type User struct {
	UserID        int        `gorm:"primaryKey;column:user_id" json:"user_id"`
	UserFname     string     `gorm:"column:user_fname" json:"user_fname"`
	UserLname     string     `gorm:"column:user_lname" json:"user_lname"`
	Email         string     `gorm:"column:email;unique" json:"email"`
	Password      string     `gorm:"column:password" json:"-"`
	Role          Role       `gorm:"column:role" json:"role"`
	Batch         string     `gorm:"column:batch" json:"batch"`
	ContactNumber *string    `gorm:"column:contact_number" json:"contact_number,omitempty"`
	Address       *string    `gorm:"column:address" json:"address,omitempty"`
	AddedBy       *int       `gorm:"column:added_by" json:"added_by,omitempty"`
	CreateAt      *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt      *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt      *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// FullName returns the display name used in notifications and logs.
func (u User) FullName() string {
	return strings.TrimSpace(u.UserFname + " " + u.UserLname)
}
