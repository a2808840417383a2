package models

import (
	"strings"
	"time"
)

type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	Username  string     `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email     string     `gorm:"uniqueIndex;not null" json:"email"`
	Password  string     `json:"-"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Role      int        `gorm:"default:0" json:"role"`
	Status    int        `gorm:"default:1" json:"status"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// FullName joins first and last name, trimming when either is empty.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
