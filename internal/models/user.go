package models

import "time"

// User holds identity, credential and verification state. A token field and
// its expiry are always both nil or both set; IsVerified flips false->true
// exactly once and never back.
type User struct {
	BaseModel
	FirstName string   `gorm:"not null"`
	LastName  string   `gorm:"not null"`
	Email     string   `gorm:"not null;index"`
	Username  string   `gorm:"not null;index"`
	Password  string   `gorm:"not null"` // bcrypt hash, never plaintext
	Role      UserRole `gorm:"type:varchar(20);not null;default:'Admin'"`

	IsVerified   bool `gorm:"not null;default:false"`
	DateVerified *time.Time

	AccountVerificationToken        *string `gorm:"index"`
	AccountVerificationTokenExpires *time.Time

	ResetPasswordToken   *string `gorm:"index"`
	ResetPasswordExpires *time.Time

	Expenses []Expense `gorm:"foreignKey:UserID"`
}
