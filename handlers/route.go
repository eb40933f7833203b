package handlers

import (
	"net/http"

	"hoofline/middleware"
	"hoofline/models"
	routeSvc "hoofline/services/route"
	"hoofline/utils"

	"github.com/gin-gonic/gin"
)

// RouteHandler exposes route planning and stop execution for mobile providers.
type RouteHandler struct {
	Routes routeSvc.RouteService
}

func NewRouteHandler(routes routeSvc.RouteService) *RouteHandler {
	return &RouteHandler{Routes: routes}
}

// Plan handles POST /api/routes.
func (h *RouteHandler) Plan(c *gin.Context) {
	providerID := c.GetString(middleware.CtxProviderID)

	var input struct {
		Date       string   `json:"date" binding:"required"`
		BookingIDs []string `json:"bookingIds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	route, err := h.Routes.PlanRoute(c.Request.Context(), providerID, input.Date, input.BookingIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, route)
}

// Get handles GET /api/routes/:id, returning the stops plus the derived
// current stop and progress.
func (h *RouteHandler) Get(c *gin.Context) {
	providerID := c.GetString(middleware.CtxProviderID)

	view, err := h.Routes.GetRoute(c.Request.Context(), providerID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// TransitionStop handles PUT /api/routes/:id/stops/:stopId.
func (h *RouteHandler) TransitionStop(c *gin.Context) {
	providerID := c.GetString(middleware.CtxProviderID)

	var req models.StopTransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	stop, err := h.Routes.TransitionStop(c.Request.Context(), providerID, c.Param("id"), c.Param("stopId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stop)
}
