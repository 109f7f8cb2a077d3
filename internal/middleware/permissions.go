package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Capability names checked before mutating operations. The engine
// itself is capability-agnostic; the gate lives entirely at the edge.
const (
	CanCreateReservations = "create_reservations"
	CanEditServices       = "edit_services"
	CanEditBusinessHours  = "edit_business_hours"
	CanManageStaff        = "manage_staff"
	CanViewAuditLogs      = "view_audit_logs"
)

var roleCapabilities = map[string]map[string]bool{
	"owner": {
		CanCreateReservations: true,
		CanEditServices:       true,
		CanEditBusinessHours:  true,
		CanManageStaff:        true,
		CanViewAuditLogs:      true,
	},
	"staff": {
		CanCreateReservations: true,
	},
}

func HasCapability(role, capability string) bool {
	return roleCapabilities[role][capability]
}

// RequireCapability gates a route group on one capability of the
// authenticated role. Must run after AuthMiddleware.
func RequireCapability(capability string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.MustGet(ContextUserRole).(string)
		if !HasCapability(role, capability) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
