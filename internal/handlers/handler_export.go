package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/stayfront/hotel_management_app/internal/core/ports/services"
	"github.com/stayfront/hotel_management_app/internal/dto"
	"github.com/stayfront/hotel_management_app/internal/middleware"
)

// exportHandler handles reservation export downloads.
type exportHandler struct {
	exportService portssvc.ExportService
}

// registerExportRoutes registers the export route nested under a hotel.
func registerExportRoutes(rg *gin.RouterGroup, exportService portssvc.ExportService) {
	h := &exportHandler{exportService: exportService}

	rg.GET("/reservations/export", h.exportReservations)
}

// exportReservations godoc
// @Summary Export reservations
// @Description Downloads the filtered reservation list as CSV or JSON. Repeat ids to export only a selection; the list filters apply either way. Pagination does not.
// @Tags reservations
// @Produce text/csv
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Param format query string false "csv (default) or json"
// @Param ids query []string false "Export only these reservation IDs" collectionFormat(multi)
// @Param search query string false "Search filter"
// @Param status query string false "Lifecycle status filter"
// @Param paymentStatus query string false "Payment status filter"
// @Param roomType query string false "Room type filter"
// @Param dateBucket query string false "Date bucket filter"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Unsupported format"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /hotels/{hotel_id}/reservations/export [get]
func (h *exportHandler) exportReservations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ExportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.exportService.ExportReservations(c.Request.Context(), c.Param("hotel_id"), userID, params)
	if err != nil {
		logger.Warn("Export rejected", slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to export reservations")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
