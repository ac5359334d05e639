package model

// Supplier is a goods provider referenced by product entries
type Supplier struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Email       string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	PhoneNumber string `gorm:"type:varchar(20)" json:"phone_number"`
	Address     string `gorm:"type:text" json:"address"`

	// Relations
	Entries []ProductEntry `json:"entries,omitempty"`
}
