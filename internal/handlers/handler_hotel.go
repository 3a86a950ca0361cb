package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/stayfront/hotel_management_app/internal/core/ports/services"
	"github.com/stayfront/hotel_management_app/internal/dto"
	"github.com/stayfront/hotel_management_app/internal/middleware"
)

// hotelHandler handles HTTP requests related to hotels and staff membership.
type hotelHandler struct {
	hotelService portssvc.HotelSvcFacade
}

// registerHotelRoutes registers routes for hotels and everything nested under
// a specific hotel: reservations, rooms, folios, reports and exports.
func registerHotelRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &hotelHandler{hotelService: services.Hotel}

	hotelsTopLevel := rg.Group("/hotels")
	{
		hotelsTopLevel.POST("", h.createHotel)
		hotelsTopLevel.GET("", h.listUserHotels)
	}

	hotelSpecific := rg.Group("/hotels/:hotel_id")
	{
		hotelSpecific.GET("", h.getHotel)
		hotelSpecific.PUT("", h.updateHotel)

		members := hotelSpecific.Group("/members")
		{
			members.GET("", h.listMembers)
			members.POST("", h.addMember)
			members.DELETE("/:user_id", h.removeMember)
		}

		registerReservationRoutes(hotelSpecific, services.Reservation, services.Folio)
		registerRoomRoutes(hotelSpecific, services.Room)
		registerReportingRoutes(hotelSpecific, services.Reporting)
		registerExportRoutes(hotelSpecific, services.Export)
	}
}

// createHotel godoc
// @Summary Create a new hotel
// @Description Creates a hotel and assigns the creator as OWNER.
// @Tags hotels
// @Accept json
// @Produce json
// @Param hotel body dto.CreateHotelRequest true "Hotel details"
// @Success 201 {object} dto.HotelResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /hotels [post]
func (h *hotelHandler) createHotel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createHotel", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	hotel, err := h.hotelService.CreateHotel(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create hotel", slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to create hotel")
		return
	}

	logger.Info("Hotel created", slog.String("hotel_id", hotel.HotelID))
	c.JSON(http.StatusCreated, dto.ToHotelResponse(hotel))
}

// listUserHotels godoc
// @Summary List hotels for current user
// @Description Retrieves the hotels the authenticated user is a member of.
// @Tags hotels
// @Produce json
// @Success 200 {array} dto.HotelResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /hotels [get]
func (h *hotelHandler) listUserHotels(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	hotels, err := h.hotelService.ListUserHotels(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list hotels", slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to list hotels")
		return
	}

	c.JSON(http.StatusOK, dto.ToHotelResponses(hotels))
}

// getHotel godoc
// @Summary Get hotel details
// @Tags hotels
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Success 200 {object} dto.HotelResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Hotel not found"
// @Security BearerAuth
// @Router /hotels/{hotel_id} [get]
func (h *hotelHandler) getHotel(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	hotel, err := h.hotelService.FindHotelByID(c.Request.Context(), c.Param("hotel_id"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to load hotel")
		return
	}

	c.JSON(http.StatusOK, dto.ToHotelResponse(hotel))
}

// updateHotel godoc
// @Summary Update hotel details
// @Description Updates hotel settings including the tax rate override. Requires MANAGER.
// @Tags hotels
// @Accept json
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Param hotel body dto.UpdateHotelRequest true "Fields to update"
// @Success 200 {object} dto.HotelResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /hotels/{hotel_id} [put]
func (h *hotelHandler) updateHotel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	hotel, err := h.hotelService.UpdateHotel(c.Request.Context(), c.Param("hotel_id"), req, userID)
	if err != nil {
		logger.Error("Failed to update hotel", slog.String("error", err.Error()), slog.String("hotel_id", c.Param("hotel_id")))
		respondServiceError(c, err, "Failed to update hotel")
		return
	}

	c.JSON(http.StatusOK, dto.ToHotelResponse(hotel))
}

// listMembers godoc
// @Summary List hotel staff
// @Tags hotels
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Success 200 {array} dto.HotelMemberResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /hotels/{hotel_id}/members [get]
func (h *hotelHandler) listMembers(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	members, err := h.hotelService.ListHotelMembers(c.Request.Context(), c.Param("hotel_id"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list members")
		return
	}

	c.JSON(http.StatusOK, dto.ToHotelMemberResponses(members))
}

// addMember godoc
// @Summary Add a staff member
// @Description Grants a user a role on the hotel. Requires MANAGER; granting OWNER requires OWNER.
// @Tags hotels
// @Accept json
// @Param hotel_id path string true "Hotel ID"
// @Param member body dto.AddMemberRequest true "Username and role"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /hotels/{hotel_id}/members [post]
func (h *hotelHandler) addMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.hotelService.AddUserToHotel(c.Request.Context(), userID, c.Param("hotel_id"), req); err != nil {
		logger.Error("Failed to add member", slog.String("error", err.Error()), slog.String("hotel_id", c.Param("hotel_id")))
		respondServiceError(c, err, "Failed to add member")
		return
	}

	c.Status(http.StatusNoContent)
}

// removeMember godoc
// @Summary Remove a staff member
// @Tags hotels
// @Param hotel_id path string true "Hotel ID"
// @Param user_id path string true "User ID to remove"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Membership not found"
// @Security BearerAuth
// @Router /hotels/{hotel_id}/members/{user_id} [delete]
func (h *hotelHandler) removeMember(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.hotelService.RemoveUserFromHotel(c.Request.Context(), userID, c.Param("user_id"), c.Param("hotel_id")); err != nil {
		respondServiceError(c, err, "Failed to remove member")
		return
	}

	c.Status(http.StatusNoContent)
}
