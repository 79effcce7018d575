package handlers

import (
	"net/http"

	"tinyhouse/middleware"
	"tinyhouse/models"
	"tinyhouse/resolvers"
	"tinyhouse/services/listing"
	"tinyhouse/utils"

	"github.com/gin-gonic/gin"
)

// ListingHandler serves listing search, detail, hosting and availability.
type ListingHandler struct {
	Service  listing.ListingService
	Resolver *resolvers.Resolver
}

// ListListings searches listings by ?location, ?filter, ?limit and ?page.
func (h *ListingHandler) ListListings(c *gin.Context) {
	filter := models.ListingsFilter(c.Query("filter"))
	if filter != "" && filter != models.FilterPriceLowToHigh && filter != models.FilterPriceHighToLow {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter", string(filter))
		return
	}
	limit, page := pageParams(c)

	result, err := h.Service.ListListings(c.Request.Context(), c.Query("location"), filter, limit, page)
	if err != nil {
		respondError(c, "Failed to query listings", err)
		return
	}
	dto, err := h.Resolver.ListingsPage(c.Request.Context(), result)
	if err != nil {
		respondError(c, "Failed to query listings", err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// GetListing returns one listing.
func (h *ListingHandler) GetListing(c *gin.Context) {
	l, authorized, err := h.Service.GetListing(c.Request.Context(), middleware.ViewerID(c), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to query listing", err)
		return
	}
	dto, err := h.Resolver.Listing(c.Request.Context(), l, authorized)
	if err != nil {
		respondError(c, "Failed to query listing", err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// ListingBookings returns the listing's bookings to its host, null to others.
func (h *ListingHandler) ListingBookings(c *gin.Context) {
	limit, page := pageParams(c)
	bookings, err := h.Service.ListingBookings(c.Request.Context(), middleware.ViewerID(c), c.Param("id"), limit, page)
	if err != nil {
		respondError(c, "Failed to query listing bookings", err)
		return
	}
	dto, err := h.Resolver.BookingsPage(c.Request.Context(), bookings)
	if err != nil {
		respondError(c, "Failed to query listing bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": dto})
}

// Availability previews whether ?checkIn..?checkOut could be booked.
func (h *ListingHandler) Availability(c *gin.Context) {
	report, err := h.Service.Availability(c.Request.Context(), c.Param("id"), c.Query("checkIn"), c.Query("checkOut"))
	if err != nil {
		respondError(c, "Failed to check availability", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// HostListing creates a listing owned by the viewer.
func (h *ListingHandler) HostListing(c *gin.Context) {
	var in models.HostListingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	l, err := h.Service.HostListing(c.Request.Context(), middleware.ViewerID(c), in)
	if err != nil {
		respondError(c, "Failed to create listing", err)
		return
	}
	dto, err := h.Resolver.Listing(c.Request.Context(), l, true)
	if err != nil {
		respondError(c, "Failed to create listing", err)
		return
	}
	c.JSON(http.StatusCreated, dto)
}
