package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	gorm.Model
	ID       uint    `gorm:"primary_key" autoIncrement:"true"`
	Email    string  `gorm:"index:idx_email;unique;not null;" json:"email" binding:"required,email"`
	Password string  `gorm:"not null;" json:"password" binding:"required"`
	Balance  float64 `gorm:"default:0; check:balance >= 0" json:"-"`
	Role     string  `gorm:"default:user; not null" json:"-"`
	Banned   bool    `gorm:"default:false" json:"-"`
}

func (user *User) IsAdmin() bool {
	return user.Role == RoleAdmin
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func (user *User) ValidatePassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	return err == nil
}
