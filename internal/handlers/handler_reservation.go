package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/stayfront/hotel_management_app/internal/core/ports/services"
	"github.com/stayfront/hotel_management_app/internal/dto"
	"github.com/stayfront/hotel_management_app/internal/middleware"
)

// reservationHandler handles HTTP requests for the reservation lifecycle.
type reservationHandler struct {
	reservationService portssvc.ReservationSvcFacade
}

// registerReservationRoutes registers reservation routes nested under a hotel,
// plus the folio routes nested under a reservation.
func registerReservationRoutes(rg *gin.RouterGroup, reservationService portssvc.ReservationSvcFacade, folioService portssvc.FolioSvcFacade) {
	h := &reservationHandler{reservationService: reservationService}

	reservations := rg.Group("/reservations")
	{
		reservations.POST("", h.createReservation)
		reservations.GET("", h.listReservations)
		reservations.POST("/quote", h.quoteStay)
		reservations.POST("/bulk-transition", h.bulkTransition)
		reservations.POST("/mark-no-shows", h.markNoShows)

		specific := reservations.Group("/:reservation_id")
		{
			specific.GET("", h.getReservation)
			specific.PUT("", h.updateReservation)
			specific.POST("/transition", h.transitionReservation)

			registerFolioRoutes(specific, folioService)
		}
	}
}

// createReservation godoc
// @Summary Create a reservation
// @Description Creates a confirmed reservation with derived totals. Requires FRONTDESK.
// @Tags reservations
// @Accept json
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Param reservation body dto.CreateReservationRequest true "Reservation details"
// @Success 201 {object} dto.ReservationResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /hotels/{hotel_id}/reservations [post]
func (h *reservationHandler) createReservation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createReservation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reservation, err := h.reservationService.CreateReservation(c.Request.Context(), c.Param("hotel_id"), req, userID)
	if err != nil {
		logger.Error("Failed to create reservation", slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to create reservation")
		return
	}

	logger.Info("Reservation created", slog.String("reservation_id", reservation.ReservationID))
	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

// listReservations godoc
// @Summary List reservations
// @Description Returns a filtered, sorted, paginated reservation list. Filters combine with AND.
// @Tags reservations
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Param search query string false "Search across guest name, email, phone, reservation and room numbers"
// @Param status query string false "Lifecycle status filter"
// @Param paymentStatus query string false "Payment status filter"
// @Param roomType query string false "Room type filter"
// @Param dateBucket query string false "Date bucket filter"
// @Param sortBy query string false "Sort key (default created_at)"
// @Param sortDesc query bool false "Sort descending"
// @Param page query int false "1-based page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.ListReservationsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /hotels/{hotel_id}/reservations [get]
func (h *reservationHandler) listReservations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListReservationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.reservationService.ListReservations(c.Request.Context(), c.Param("hotel_id"), userID, params)
	if err != nil {
		logger.Error("Failed to list reservations", slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to list reservations")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getReservation godoc
// @Summary Get a reservation
// @Tags reservations
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Param reservation_id path string true "Reservation ID"
// @Success 200 {object} dto.ReservationResponse
// @Failure 404 {object} ErrorResponse "Reservation not found"
// @Security BearerAuth
// @Router /hotels/{hotel_id}/reservations/{reservation_id} [get]
func (h *reservationHandler) getReservation(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reservation, err := h.reservationService.GetReservationByID(c.Request.Context(), c.Param("hotel_id"), c.Param("reservation_id"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to load reservation")
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

// updateReservation godoc
// @Summary Update a reservation
// @Description Updates guest and stay details and recomputes totals. Terminal reservations cannot change.
// @Tags reservations
// @Accept json
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Param reservation_id path string true "Reservation ID"
// @Param reservation body dto.UpdateReservationRequest true "Fields to update"
// @Success 200 {object} dto.ReservationResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Reservation is terminal"
// @Security BearerAuth
// @Router /hotels/{hotel_id}/reservations/{reservation_id} [put]
func (h *reservationHandler) updateReservation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reservation, err := h.reservationService.UpdateReservation(c.Request.Context(), c.Param("hotel_id"), c.Param("reservation_id"), req, userID)
	if err != nil {
		logger.Error("Failed to update reservation", slog.String("error", err.Error()), slog.String("reservation_id", c.Param("reservation_id")))
		respondServiceError(c, err, "Failed to update reservation")
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

// transitionReservation godoc
// @Summary Transition a reservation
// @Description Moves the reservation through its lifecycle (check in, check out, cancel). Checkout requires a settled folio.
// @Tags reservations
// @Accept json
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Param reservation_id path string true "Reservation ID"
// @Param transition body dto.TransitionRequest true "Target status"
// @Success 200 {object} dto.ReservationResponse
// @Failure 400 {object} ErrorResponse "Invalid target or unsettled folio"
// @Failure 409 {object} ErrorResponse "Transition not allowed"
// @Security BearerAuth
// @Router /hotels/{hotel_id}/reservations/{reservation_id}/transition [post]
func (h *reservationHandler) transitionReservation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reservation, err := h.reservationService.TransitionReservation(c.Request.Context(), c.Param("hotel_id"), c.Param("reservation_id"), req.TargetStatus, userID)
	if err != nil {
		logger.Warn("Reservation transition rejected", slog.String("error", err.Error()), slog.String("reservation_id", c.Param("reservation_id")))
		respondServiceError(c, err, "Failed to transition reservation")
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

// bulkTransition godoc
// @Summary Bulk transition reservations
// @Description Applies one transition to many reservations. Per-item failures do not abort the batch.
// @Tags reservations
// @Accept json
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Param bulk body dto.BulkTransitionRequest true "Reservation IDs and target status"
// @Success 200 {object} dto.BulkTransitionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /hotels/{hotel_id}/reservations/bulk-transition [post]
func (h *reservationHandler) bulkTransition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BulkTransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.reservationService.BulkTransition(c.Request.Context(), c.Param("hotel_id"), req, userID)
	if err != nil {
		logger.Error("Bulk transition failed", slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to apply bulk transition")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// markNoShows godoc
// @Summary Mark overdue reservations as no-show
// @Description Flags confirmed reservations whose check-in date has passed. Requires MANAGER.
// @Tags reservations
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Success 200 {object} map[string]int
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /hotels/{hotel_id}/reservations/mark-no-shows [post]
func (h *reservationHandler) markNoShows(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	marked, err := h.reservationService.MarkNoShows(c.Request.Context(), c.Param("hotel_id"), time.Now(), userID)
	if err != nil {
		logger.Error("No-show sweep failed", slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to mark no-shows")
		return
	}

	c.JSON(http.StatusOK, gin.H{"marked": marked})
}

// quoteStay godoc
// @Summary Quote a stay
// @Description Computes the billing breakdown for a prospective stay without persisting anything.
// @Tags reservations
// @Accept json
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Param quote body dto.QuoteRequest true "Stay parameters"
// @Success 200 {object} billing.Quote
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /hotels/{hotel_id}/reservations/quote [post]
func (h *reservationHandler) quoteStay(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	quote, err := h.reservationService.QuoteStay(c.Request.Context(), c.Param("hotel_id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to compute quote")
		return
	}

	c.JSON(http.StatusOK, quote)
}
