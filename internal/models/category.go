package models

// Category is shared reference data: a named classification for expenses.
// CreatedBy/UpdatedBy record the acting admin's email.
type Category struct {
	BaseModel
	Name      string         `gorm:"not null;index"`
	Status    CategoryStatus `gorm:"type:varchar(20);not null;default:'Active'"`
	CreatedBy string         `gorm:"not null"`
	UpdatedBy string

	Expenses []Expense `gorm:"foreignKey:CategoryID"`
}
