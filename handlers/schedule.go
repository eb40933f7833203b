package handlers

import (
	"net/http"

	"hoofline/middleware"
	providerSvc "hoofline/services/provider"
	"hoofline/utils"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler exposes the provider dashboard's schedule management.
type ScheduleHandler struct {
	Schedule providerSvc.ScheduleService
}

func NewScheduleHandler(schedule providerSvc.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Schedule: schedule}
}

// SetWeekly handles PUT /api/providers/schedule/weekly.
func (h *ScheduleHandler) SetWeekly(c *gin.Context) {
	providerID := c.GetString(middleware.CtxProviderID)

	var input struct {
		Entries []providerSvc.WeeklyEntry `json:"entries" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if err := h.Schedule.SetWeekly(c.Request.Context(), providerID, input.Entries); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// UpsertException handles PUT /api/providers/schedule/exceptions.
func (h *ScheduleHandler) UpsertException(c *gin.Context) {
	providerID := c.GetString(middleware.CtxProviderID)

	var req providerSvc.ExceptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if err := h.Schedule.UpsertException(c.Request.Context(), providerID, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// DeleteException handles DELETE /api/providers/schedule/exceptions/:date;
// the date reverts to the weekly schedule.
func (h *ScheduleHandler) DeleteException(c *gin.Context) {
	providerID := c.GetString(middleware.CtxProviderID)
	date := c.Param("date")

	if err := h.Schedule.DeleteException(c.Request.Context(), providerID, date); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// GetSchedule handles GET /api/providers/schedule.
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	providerID := c.GetString(middleware.CtxProviderID)

	schedule, err := h.Schedule.GetSchedule(c.Request.Context(), providerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}
