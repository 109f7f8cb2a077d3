package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPhoneValid(t *testing.T) {
	valid := []string{
		"+5215511223344",
		"5511223344",
		"+1 (555) 123-4567",
		"55 1122 3344",
	}
	for _, p := range valid {
		assert.True(t, IsPhoneValid(p), p)
	}

	invalid := []string{
		"",
		"12345",          // too short
		"+015511223344",  // leading zero
		"phone",
		"+52155112233445566", // too long
	}
	for _, p := range invalid {
		assert.False(t, IsPhoneValid(p), p)
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+15551234567", NormalizePhone(" +1 (555) 123-4567 "))
	assert.Equal(t, "5511223344", NormalizePhone("55 1122-3344"))
}
