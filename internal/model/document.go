package model

import "time"

// Document is an uploaded file owned by a user, optionally tied to a product.
// Content is stored in the row so downloads serve the exact bytes received.
type Document struct {
	BaseModel
	FileName   string    `gorm:"type:varchar(255);not null;index" json:"file_name" validate:"required"`
	FileType   string    `gorm:"type:varchar(100)" json:"file_type"`
	UploadDate time.Time `gorm:"type:date;not null;index" json:"upload_date"`

	UserID uint  `gorm:"not null;index" json:"user_id" validate:"required"`
	User   *User `gorm:"foreignKey:UserID" json:"user,omitempty" validate:"-"`

	ProductID *uint    `gorm:"index" json:"product_id,omitempty"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty" validate:"-"`

	Content []byte `gorm:"type:bytea" json:"-"`
}

// DocumentResponse for API responses (content excluded, user masked)
type DocumentResponse struct {
	ID         uint          `json:"id"`
	FileName   string        `json:"file_name"`
	FileType   string        `json:"file_type"`
	UploadDate string        `json:"upload_date"`
	UserID     uint          `json:"user_id"`
	User       *UserResponse `json:"user,omitempty"`
	ProductID  *uint         `json:"product_id,omitempty"`
	Product    *Product      `json:"product,omitempty"`
	Size       int           `json:"size"`
	CreatedAt  time.Time     `json:"created_at"`
}

// ToResponse converts Document to DocumentResponse
func (d *Document) ToResponse() DocumentResponse {
	response := DocumentResponse{
		ID:         d.ID,
		FileName:   d.FileName,
		FileType:   d.FileType,
		UploadDate: d.UploadDate.Format("2006-01-02"),
		UserID:     d.UserID,
		ProductID:  d.ProductID,
		Product:    d.Product,
		Size:       len(d.Content),
		CreatedAt:  d.CreatedAt,
	}

	if d.User != nil {
		userResp := d.User.ToResponse()
		response.User = &userResp
	}

	return response
}
