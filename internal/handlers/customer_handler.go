package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LunaSuiteApps/salon-scheduler/internal/httperr"
	"github.com/LunaSuiteApps/salon-scheduler/internal/httpresp"
	"github.com/LunaSuiteApps/salon-scheduler/internal/middleware"
	"github.com/LunaSuiteApps/salon-scheduler/internal/models"
	ucBooking "github.com/LunaSuiteApps/salon-scheduler/internal/usecase/booking"
)

type CustomerHandler struct {
	db      *gorm.DB
	summary *ucBooking.GetCustomerSummary
}

func NewCustomerHandler(db *gorm.DB, summary *ucBooking.GetCustomerSummary) *CustomerHandler {
	return &CustomerHandler{db: db, summary: summary}
}

func (h *CustomerHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	q := h.db.Where("salon_id = ?", salonID)

	if query := strings.TrimSpace(strings.ToLower(c.Query("query"))); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(full_name) LIKE ? OR phone LIKE ?", like, like)
	}

	var customers []models.Customer
	if err := q.Order("full_name ASC").Find(&customers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_customers", "Could not list customers.")
		return
	}

	httpresp.List(c, customers)
}

// Summary returns the customer's derived aggregates: visit total,
// loyalty tier, last visit and full history, recomputed on every call.
func (h *CustomerHandler) Summary(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	customerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid customer id.")
		return
	}

	// The appointment being displayed can be excluded from the
	// history list so detail views do not echo themselves.
	var exclude uint
	if v := c.Query("exclude_appointment_id"); v != "" {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			exclude = uint(parsed)
		}
	}

	summary, err := h.summary.Execute(c.Request.Context(), salonID, uint(customerID), exclude)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "customer_not_found", "Customer not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_summary", "Could not build customer summary.")
		return
	}

	c.JSON(http.StatusOK, summary)
}
