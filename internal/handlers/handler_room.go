package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/stayfront/hotel_management_app/internal/core/ports/services"
	"github.com/stayfront/hotel_management_app/internal/dto"
	"github.com/stayfront/hotel_management_app/internal/middleware"
)

// roomHandler handles HTTP requests for rooms and room types.
type roomHandler struct {
	roomService portssvc.RoomSvcFacade
}

// registerRoomRoutes registers room and room type routes nested under a hotel.
func registerRoomRoutes(rg *gin.RouterGroup, roomService portssvc.RoomSvcFacade) {
	h := &roomHandler{roomService: roomService}

	rooms := rg.Group("/rooms")
	{
		rooms.GET("", h.listRooms)
		rooms.POST("", h.createRoom)
		rooms.PUT("/:room_id/status", h.updateRoomStatus)
	}

	roomTypes := rg.Group("/room-types")
	{
		roomTypes.GET("", h.listRoomTypes)
		roomTypes.POST("", h.createRoomType)
	}
}

// listRooms godoc
// @Summary List rooms
// @Tags rooms
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Success 200 {array} dto.RoomResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /hotels/{hotel_id}/rooms [get]
func (h *roomHandler) listRooms(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rooms, err := h.roomService.ListRooms(c.Request.Context(), c.Param("hotel_id"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list rooms")
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponses(rooms))
}

// createRoom godoc
// @Summary Register a room
// @Description Registers a numbered room under an existing room type. Requires MANAGER.
// @Tags rooms
// @Accept json
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Param room body dto.CreateRoomRequest true "Room details"
// @Success 201 {object} dto.RoomResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Room number already exists"
// @Security BearerAuth
// @Router /hotels/{hotel_id}/rooms [post]
func (h *roomHandler) createRoom(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	room, err := h.roomService.CreateRoom(c.Request.Context(), c.Param("hotel_id"), req, userID)
	if err != nil {
		logger.Error("Failed to create room", slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to create room")
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

// updateRoomStatus godoc
// @Summary Update room housekeeping status
// @Tags rooms
// @Accept json
// @Param hotel_id path string true "Hotel ID"
// @Param room_id path string true "Room ID"
// @Param status body dto.UpdateRoomStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Security BearerAuth
// @Router /hotels/{hotel_id}/rooms/{room_id}/status [put]
func (h *roomHandler) updateRoomStatus(c *gin.Context) {
	var req dto.UpdateRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.roomService.UpdateRoomStatus(c.Request.Context(), c.Param("hotel_id"), c.Param("room_id"), req.Status, userID); err != nil {
		respondServiceError(c, err, "Failed to update room status")
		return
	}

	c.Status(http.StatusNoContent)
}

// listRoomTypes godoc
// @Summary List room types
// @Tags rooms
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Success 200 {array} dto.RoomTypeResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /hotels/{hotel_id}/room-types [get]
func (h *roomHandler) listRoomTypes(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	roomTypes, err := h.roomService.ListRoomTypes(c.Request.Context(), c.Param("hotel_id"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list room types")
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomTypeResponses(roomTypes))
}

// createRoomType godoc
// @Summary Create a room type
// @Description Creates a named room category with a default nightly rate. Requires MANAGER.
// @Tags rooms
// @Accept json
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Param roomType body dto.CreateRoomTypeRequest true "Room type details"
// @Success 201 {object} dto.RoomTypeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /hotels/{hotel_id}/room-types [post]
func (h *roomHandler) createRoomType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	roomType, err := h.roomService.CreateRoomType(c.Request.Context(), c.Param("hotel_id"), req, userID)
	if err != nil {
		logger.Error("Failed to create room type", slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to create room type")
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoomTypeResponse(roomType))
}
