package models

import "gorm.io/gorm"

// AdminUserID marks the distinguished account: the first user ever
// registered. Only this account may manage posts.
const AdminUserID = 1

type User struct {
	gorm.Model

	Email    string `gorm:"column:email;uniqueIndex"` // login identifier, globally unique
	Name     string `gorm:"column:name"`              // display name
	Password string `gorm:"column:password"`          // argon2id hash, plaintext is never stored
}

func (u *User) IsAdmin() bool {
	return u.ID == AdminUserID
}
