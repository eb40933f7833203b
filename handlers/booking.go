package handlers

import (
	"net/http"

	"hoofline/middleware"
	"hoofline/models"
	bookingSvc "hoofline/services/booking"
	"hoofline/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the customer booking flow and booking lifecycle.
type BookingHandler struct {
	Bookings bookingSvc.BookingService
}

func NewBookingHandler(bookings bookingSvc.BookingService) *BookingHandler {
	return &BookingHandler{Bookings: bookings}
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	customerID := c.GetString(middleware.CtxCustomerID)

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	booking, err := h.Bookings.CreateBooking(c.Request.Context(), customerID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// UpdateStatusByCustomer handles PUT /api/bookings/:id/status. The only
// transition a customer session can drive is a cancellation of their own
// booking; the service enforces that.
func (h *BookingHandler) UpdateStatusByCustomer(c *gin.Context) {
	h.updateStatus(c, bookingSvc.Actor{Role: bookingSvc.ActorCustomer, ID: c.GetString(middleware.CtxCustomerID)})
}

// UpdateStatusByProvider handles PUT /api/providers/bookings/:id/status.
func (h *BookingHandler) UpdateStatusByProvider(c *gin.Context) {
	h.updateStatus(c, bookingSvc.Actor{Role: bookingSvc.ActorProvider, ID: c.GetString(middleware.CtxProviderID)})
}

func (h *BookingHandler) updateStatus(c *gin.Context, actor bookingSvc.Actor) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	booking, err := h.Bookings.UpdateStatus(c.Request.Context(), actor, c.Param("id"), input.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ListForCustomer handles GET /api/bookings for the authenticated customer.
func (h *BookingHandler) ListForCustomer(c *gin.Context) {
	customerID := c.GetString(middleware.CtxCustomerID)

	bookings, err := h.Bookings.ListForCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListForProvider handles GET /api/providers/bookings for the authenticated provider.
func (h *BookingHandler) ListForProvider(c *gin.Context) {
	providerID := c.GetString(middleware.CtxProviderID)

	bookings, err := h.Bookings.ListForProvider(c.Request.Context(), providerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
