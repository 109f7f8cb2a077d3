package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LunaSuiteApps/salon-scheduler/internal/httperr"
	"github.com/LunaSuiteApps/salon-scheduler/internal/media"
	"github.com/LunaSuiteApps/salon-scheduler/internal/middleware"
)

const maxInspirationUploadBytes = 10 << 20

// InspirationHandler receives "inspiration" reference photos for a
// booking. The returned key is later attached to the appointment by
// the booking request.
type InspirationHandler struct {
	store *media.Store
}

func NewInspirationHandler(store *media.Store) *InspirationHandler {
	return &InspirationHandler{store: store}
}

func (h *InspirationHandler) Upload(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Multipart field 'image' is required.")
		return
	}
	if file.Size > maxInspirationUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Image must be 10MB or smaller.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Could not read uploaded file.")
		return
	}
	defer src.Close()

	key, err := h.store.UploadInspiration(c.Request.Context(), salonID, src)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "File is not a decodable image.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"key": key})
}
