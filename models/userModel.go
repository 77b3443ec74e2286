package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Fullname string `json:"fullname" binding:"required"`
	Email    string `json:"email" binding:"required,email" gorm:"uniqueIndex"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Actor is the identity resolved from the request session. Privileged
// services receive it explicitly instead of re-reading global state.
type Actor struct {
	UserID uint
	Email  string
	Role   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == "admin"
}
