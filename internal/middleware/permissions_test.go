package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCapability(t *testing.T) {
	assert.True(t, HasCapability("owner", CanEditServices))
	assert.True(t, HasCapability("owner", CanViewAuditLogs))
	assert.True(t, HasCapability("staff", CanCreateReservations))

	assert.False(t, HasCapability("staff", CanEditServices))
	assert.False(t, HasCapability("staff", CanManageStaff))
	assert.False(t, HasCapability("", CanCreateReservations))
	assert.False(t, HasCapability("intruder", CanCreateReservations))
}
