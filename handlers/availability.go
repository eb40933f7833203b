package handlers

import (
	"net/http"
	"strconv"

	"hoofline/models"
	"hoofline/services/scheduling"
	"hoofline/utils"

	"github.com/gin-gonic/gin"
)

// Server-accepted bounds for a requested service duration, in minutes.
const (
	minSlotDuration = 15
	maxSlotDuration = 480
)

// AvailabilityHandler exposes the resolver and slot-generation endpoints.
type AvailabilityHandler struct {
	Engine scheduling.SchedulingEngine
}

func NewAvailabilityHandler(engine scheduling.SchedulingEngine) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine}
}

// ResolveDay handles GET /api/providers/:id/availability?date=YYYY-MM-DD.
func (h *AvailabilityHandler) ResolveDay(c *gin.Context) {
	providerID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "query parameter 'date' is required")
		return
	}

	resolved, err := h.Engine.ResolveDay(c.Request.Context(), providerID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resolved)
}

// DaySlots handles GET /api/providers/:id/slots?date=&duration=&lat=&lng=.
func (h *AvailabilityHandler) DaySlots(c *gin.Context) {
	providerID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "query parameter 'date' is required")
		return
	}

	duration := 0
	if raw := c.Query("duration"); raw != "" {
		var err error
		duration, err = strconv.Atoi(raw)
		if err != nil || duration < minSlotDuration || duration > maxSlotDuration {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", "duration must be a number of minutes between 15 and 480")
			return
		}
	}

	loc, err := parseLocationQuery(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	schedule, err := h.Engine.DaySchedule(c.Request.Context(), providerID, date, duration, loc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// parseLocationQuery reads an optional lat/lng pair. A missing pair means no
// travel constraint is applied, never an error.
func parseLocationQuery(c *gin.Context) (*models.Location, error) {
	rawLat, rawLng := c.Query("lat"), c.Query("lng")
	if rawLat == "" || rawLng == "" {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return nil, err
	}
	lng, err := strconv.ParseFloat(rawLng, 64)
	if err != nil {
		return nil, err
	}

	loc, err := models.NewLocation(lat, lng)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}
