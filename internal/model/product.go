package model

type Product struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`

	// Relations
	Entries []ProductEntry `json:"entries,omitempty"`
}
