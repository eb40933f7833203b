package handlers

import (
	"errors"
	"net/http"

	bookingSvc "hoofline/services/booking"
	"hoofline/services/scheduling"
	"hoofline/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// respondError maps service errors onto the HTTP error envelope.
func respondError(c *gin.Context, err error) {
	var validationErr *scheduling.ValidationError
	var notFoundErr *scheduling.NotFoundError
	var forbiddenErr *scheduling.ForbiddenError
	var slotErr *bookingSvc.SlotError

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", validationErr.Message)
	case errors.As(err, &notFoundErr):
		utils.JSONError(c, http.StatusNotFound, "Not found", notFoundErr.Message)
	case errors.As(err, &forbiddenErr):
		utils.JSONError(c, http.StatusForbidden, "Forbidden", forbiddenErr.Message)
	case errors.As(err, &slotErr):
		utils.JSONError(c, http.StatusConflict, "Slot not bookable", slotErr.Error())
	case errors.Is(err, mongo.ErrNoDocuments):
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
	}
}
