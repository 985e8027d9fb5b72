package models

// Expense is owned by exactly one user and references a category both by id
// and by a name snapshot taken at write time. The snapshot is not re-validated
// against later category renames.
type Expense struct {
	BaseModel
	UserID       string      `gorm:"type:uuid;not null;index"`
	Name         string      `gorm:"not null"`
	Description  string      `gorm:"not null"`
	Price        float64     `gorm:"type:decimal(10,2);not null"`
	CategoryID   string      `gorm:"type:uuid;not null;index"`
	CategoryName string      `gorm:"not null"`
	PaidVia      PaymentMode `gorm:"type:varchar(20);not null"`
	CreatedBy    string      `gorm:"not null"`

	User     *User     `gorm:"foreignKey:UserID"`
	Category *Category `gorm:"foreignKey:CategoryID"`
}
