package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/stayfront/hotel_management_app/internal/core/ports/services"
	"github.com/stayfront/hotel_management_app/internal/dto"
	"github.com/stayfront/hotel_management_app/internal/middleware"
)

// folioHandler handles HTTP requests for the per-stay ledger.
type folioHandler struct {
	folioService portssvc.FolioSvcFacade
}

// registerFolioRoutes registers folio routes nested under a reservation.
func registerFolioRoutes(rg *gin.RouterGroup, folioService portssvc.FolioSvcFacade) {
	h := &folioHandler{folioService: folioService}

	folio := rg.Group("/folio")
	{
		folio.GET("", h.getFolio)
		folio.POST("/charges", h.postCharge)
		folio.POST("/payments", h.postPayment)
	}
}

// getFolio godoc
// @Summary Get the guest folio
// @Description Returns all charges, payments, totals and the outstanding balance.
// @Tags folio
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Param reservation_id path string true "Reservation ID"
// @Success 200 {object} dto.FolioResponse
// @Failure 404 {object} ErrorResponse "Reservation not found"
// @Security BearerAuth
// @Router /hotels/{hotel_id}/reservations/{reservation_id}/folio [get]
func (h *folioHandler) getFolio(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	folio, err := h.folioService.GetFolio(c.Request.Context(), c.Param("hotel_id"), c.Param("reservation_id"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to load folio")
		return
	}

	c.JSON(http.StatusOK, dto.ToFolioResponse(folio))
}

// postCharge godoc
// @Summary Post a charge
// @Description Appends a charge line to the folio. Corrections are posted as new negative lines.
// @Tags folio
// @Accept json
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Param reservation_id path string true "Reservation ID"
// @Param charge body dto.PostChargeRequest true "Charge details"
// @Success 201 {object} dto.FolioLineResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Reservation is terminal"
// @Security BearerAuth
// @Router /hotels/{hotel_id}/reservations/{reservation_id}/folio/charges [post]
func (h *folioHandler) postCharge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PostChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	line, err := h.folioService.PostCharge(c.Request.Context(), c.Param("hotel_id"), c.Param("reservation_id"), req, userID)
	if err != nil {
		logger.Warn("Charge rejected", slog.String("error", err.Error()), slog.String("reservation_id", c.Param("reservation_id")))
		respondServiceError(c, err, "Failed to post charge")
		return
	}

	c.JSON(http.StatusCreated, dto.ToFolioLineResponse(line))
}

// postPayment godoc
// @Summary Post a payment
// @Description Records a payment or refund and refreshes the reservation's settlement fields.
// @Tags folio
// @Accept json
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Param reservation_id path string true "Reservation ID"
// @Param payment body dto.PostPaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Reservation is terminal"
// @Security BearerAuth
// @Router /hotels/{hotel_id}/reservations/{reservation_id}/folio/payments [post]
func (h *folioHandler) postPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PostPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payment, err := h.folioService.PostPayment(c.Request.Context(), c.Param("hotel_id"), c.Param("reservation_id"), req, userID)
	if err != nil {
		logger.Warn("Payment rejected", slog.String("error", err.Error()), slog.String("reservation_id", c.Param("reservation_id")))
		respondServiceError(c, err, "Failed to post payment")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}
