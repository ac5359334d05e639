package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeNationalID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already digits", "12345678901", "12345678901"},
		{"canonical punctuation", "123.456.789-01", "12345678901"},
		{"mixed punctuation", "123 456/789.01", "12345678901"},
		{"empty", "", ""},
		{"letters stripped", "abc123", "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeNationalID(tt.input))
		})
	}
}

func TestMaskNationalID(t *testing.T) {
	assert.Equal(t, "123.456.789-01", MaskNationalID("12345678901"))

	// Anything that isn't 11 digits is returned as stored
	assert.Equal(t, "12345", MaskNationalID("12345"))
	assert.Equal(t, "", MaskNationalID(""))
}

func TestUserToResponseMasksNationalID(t *testing.T) {
	user := User{
		UID:        "some-uid",
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		NationalID: "98765432100",
	}

	resp := user.ToResponse()
	assert.Equal(t, "987.654.321-00", resp.NationalID)
	assert.Equal(t, "some-uid", resp.UID)
}

func TestPasswordHashing(t *testing.T) {
	var user User
	assert.NoError(t, user.SetPassword("secret123"))
	assert.NotEqual(t, "secret123", user.Password)

	assert.True(t, user.CheckPassword("secret123"))
	assert.False(t, user.CheckPassword("wrong"))
}
