package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHexKey(t *testing.T) {
	assert.True(t, IsHexKey("507f1f77bcf86cd799439011"))
	assert.True(t, IsHexKey("507F1F77BCF86CD799439011"))
	assert.False(t, IsHexKey("507f1f77bcf86cd79943901"))   // 23 chars
	assert.False(t, IsHexKey("507f1f77bcf86cd7994390111")) // 25 chars
	assert.False(t, IsHexKey("507f1f77bcf86cd79943901z"))  // non-hex rune
	assert.False(t, IsHexKey(""))
}

func TestNormalizeUserKey(t *testing.T) {
	// Hex keys canonicalize to lowercase so either casing reads the same rows.
	assert.Equal(t, "507f1f77bcf86cd799439011", NormalizeUserKey("507F1F77BCF86CD799439011"))
	assert.Equal(t, "507f1f77bcf86cd799439011", NormalizeUserKey("507f1f77bcf86cd799439011"))

	// Opaque identifiers pass through untouched, including hex-ish but malformed ones.
	assert.Equal(t, "user-42", NormalizeUserKey("user-42"))
	assert.Equal(t, "507f1f77bcf86cd79943901z", NormalizeUserKey("507f1f77bcf86cd79943901z"))
}

func TestUserKeyForms(t *testing.T) {
	assert.Equal(t, []string{"user-42"}, UserKeyForms("user-42"))
	assert.Equal(t,
		[]string{"507f1f77bcf86cd799439011", "507F1F77BCF86CD799439011"},
		UserKeyForms("507F1F77BCF86CD799439011"),
	)
}
