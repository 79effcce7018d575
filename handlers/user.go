package handlers

import (
	"net/http"

	"tinyhouse/middleware"
	"tinyhouse/resolvers"
	"tinyhouse/services/user"
	"tinyhouse/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler serves login, profile and Stripe endpoints.
type UserHandler struct {
	Service  user.UserService
	Resolver *resolvers.Resolver
}

type codeRequest struct {
	Code string `json:"code" binding:"required"`
}

// AuthURL returns the Google consent URL.
func (h *UserHandler) AuthURL(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"authUrl": h.Service.AuthURL()})
}

// LogIn exchanges a Google authorization code for a viewer.
func (h *UserHandler) LogIn(c *gin.Context) {
	var req codeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	viewer, err := h.Service.LogIn(c.Request.Context(), req.Code)
	if err != nil {
		respondError(c, "Failed to log in", err)
		return
	}
	c.JSON(http.StatusOK, viewer)
}

// LogOut acknowledges a logout.
func (h *UserHandler) LogOut(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.LogOut())
}

// GetUser returns a user profile; income is only included for the user themself.
func (h *UserHandler) GetUser(c *gin.Context) {
	u, authorized, err := h.Service.GetUser(c.Request.Context(), middleware.ViewerID(c), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to query user", err)
		return
	}
	c.JSON(http.StatusOK, resolvers.User(u, authorized))
}

// UserBookings returns the user's bookings, or null unless requested by the user.
func (h *UserHandler) UserBookings(c *gin.Context) {
	limit, page := pageParams(c)
	bookings, err := h.Service.UserBookings(c.Request.Context(), middleware.ViewerID(c), c.Param("id"), limit, page)
	if err != nil {
		respondError(c, "Failed to query user bookings", err)
		return
	}
	dto, err := h.Resolver.BookingsPage(c.Request.Context(), bookings)
	if err != nil {
		respondError(c, "Failed to query user bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": dto})
}

// UserListings returns the listings the user hosts.
func (h *UserHandler) UserListings(c *gin.Context) {
	limit, page := pageParams(c)
	listings, err := h.Service.UserListings(c.Request.Context(), c.Param("id"), limit, page)
	if err != nil {
		respondError(c, "Failed to query user listings", err)
		return
	}
	result, err := h.Resolver.ListingList(c.Request.Context(), listings.Result)
	if err != nil {
		respondError(c, "Failed to query user listings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": gin.H{"total": listings.Total, "result": result}})
}

// ConnectStripe links the viewer's Stripe account.
func (h *UserHandler) ConnectStripe(c *gin.Context) {
	var req codeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	viewer, err := h.Service.ConnectStripe(c.Request.Context(), middleware.ViewerID(c), req.Code)
	if err != nil {
		respondError(c, "Failed to connect with Stripe", err)
		return
	}
	c.JSON(http.StatusOK, viewer)
}

// DisconnectStripe unlinks the viewer's Stripe account.
func (h *UserHandler) DisconnectStripe(c *gin.Context) {
	viewer, err := h.Service.DisconnectStripe(c.Request.Context(), middleware.ViewerID(c))
	if err != nil {
		respondError(c, "Failed to disconnect from Stripe", err)
		return
	}
	c.JSON(http.StatusOK, viewer)
}
