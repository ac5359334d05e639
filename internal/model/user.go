package model

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// User represents an authenticated user in the system.
// UID is the opaque external identifier exposed to clients; the numeric
// primary key never leaves the API boundary inside tokens.
type User struct {
	BaseModel
	UID        string `gorm:"type:varchar(36);uniqueIndex;not null" json:"uid"`
	FullName   string `gorm:"type:varchar(255);not null" json:"full_name" validate:"required"`
	Email      string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password   string `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	NationalID string `gorm:"type:varchar(14)" json:"national_id"` // Stored digits-only
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// NormalizeNationalID strips everything but digits from a national id,
// whatever punctuation the caller typed.
func NormalizeNationalID(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MaskNationalID renders an 11-digit national id in the canonical
// 000.000.000-00 display format. Anything else is returned as stored.
func MaskNationalID(digits string) string {
	if len(digits) != 11 {
		return digits
	}
	return digits[0:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:11]
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID         uint   `json:"id"`
	UID        string `json:"uid"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	NationalID string `json:"national_id"` // Masked for display
}

// ToResponse converts User to UserResponse, masking the national id
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:         u.ID,
		UID:        u.UID,
		FullName:   u.FullName,
		Email:      u.Email,
		NationalID: MaskNationalID(u.NationalID),
	}
}
