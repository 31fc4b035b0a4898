package models

import (
	"gorm.io/gorm"
)

// User represents a user in the directory
type User struct {
	ID          string `json:"id" gorm:"primaryKey"`
	Username    string `json:"username" gorm:"unique;not null"`
	DisplayName string `json:"displayName" gorm:"column:display_name"`
	Email       string `json:"email" gorm:"column:email"`
	Locale      string `json:"locale" gorm:"default:'en'"`
	Password    string `json:"-" gorm:"not null"`
	gorm.Model
}

// TableName specifies the table name for User Model
func (User) TableName() string {
	return "users"
}
