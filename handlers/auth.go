package handlers

import (
	"net/http"

	"hoofline/middleware"
	"hoofline/models"
	customerSvc "hoofline/services/customer"
	providerSvc "hoofline/services/provider"
	"hoofline/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes registration, login and device-token endpoints for
// both account types.
type AuthHandler struct {
	Customers customerSvc.CustomerService
	Providers providerSvc.ProviderService
}

func NewAuthHandler(customers customerSvc.CustomerService, providers providerSvc.ProviderService) *AuthHandler {
	return &AuthHandler{Customers: customers, Providers: providers}
}

// RegisterCustomer handles POST /api/customers/register.
func (h *AuthHandler) RegisterCustomer(c *gin.Context) {
	var reg models.CustomerRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	customer, token, err := h.Customers.Register(c.Request.Context(), reg)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"customer": customer, "token": token})
}

// LoginCustomer handles POST /api/customers/login.
func (h *AuthHandler) LoginCustomer(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	customer, token, err := h.Customers.SignIn(c.Request.Context(), creds)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer, "token": token})
}

// RegisterProvider handles POST /api/providers/register.
func (h *AuthHandler) RegisterProvider(c *gin.Context) {
	var reg models.ProviderRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	provider, token, err := h.Providers.Register(c.Request.Context(), reg)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"provider": provider, "token": token})
}

// LoginProvider handles POST /api/providers/login.
func (h *AuthHandler) LoginProvider(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	provider, token, err := h.Providers.SignIn(c.Request.Context(), creds)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"provider": provider, "token": token})
}

// SetCustomerFCMToken handles PUT /api/customers/fcm-token.
func (h *AuthHandler) SetCustomerFCMToken(c *gin.Context) {
	h.setFCMToken(c, func(token string) error {
		return h.Customers.SetFCMToken(c.Request.Context(), c.GetString(middleware.CtxCustomerID), token)
	})
}

// SetProviderFCMToken handles PUT /api/providers/fcm-token.
func (h *AuthHandler) SetProviderFCMToken(c *gin.Context) {
	h.setFCMToken(c, func(token string) error {
		return h.Providers.SetFCMToken(c.Request.Context(), c.GetString(middleware.CtxProviderID), token)
	})
}

func (h *AuthHandler) setFCMToken(c *gin.Context, set func(string) error) {
	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if err := set(input.Token); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
