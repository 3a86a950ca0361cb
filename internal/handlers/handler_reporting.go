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

// reportingHandler handles HTTP requests for back-office reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// registerReportingRoutes registers report routes nested under a hotel.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := &reportingHandler{reportingService: reportingService}

	reports := rg.Group("/reports")
	{
		reports.GET("/daily-revenue", h.dailyRevenue)
		reports.GET("/occupancy", h.occupancy)
		reports.GET("/status-counts", h.statusCounts)
	}
}

func bindReportRange(c *gin.Context) (from, to time.Time, ok bool) {
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return time.Time{}, time.Time{}, false
	}
	from, err := time.Parse("2006-01-02", params.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be a YYYY-MM-DD date"})
		return time.Time{}, time.Time{}, false
	}
	to, err = time.Parse("2006-01-02", params.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must be a YYYY-MM-DD date"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// dailyRevenue godoc
// @Summary Daily revenue report
// @Description Posted folio revenue per day, broken out by charge type. Requires MANAGER.
// @Tags reports
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD), inclusive"
// @Success 200 {object} dto.DailyRevenueResponse
// @Failure 400 {object} ErrorResponse "Invalid range"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /hotels/{hotel_id}/reports/daily-revenue [get]
func (h *reportingHandler) dailyRevenue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, ok := bindReportRange(c)
	if !ok {
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.reportingService.DailyRevenue(c.Request.Context(), c.Param("hotel_id"), from, to, userID)
	if err != nil {
		logger.Error("Failed to build daily revenue report", slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to build report")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// occupancy godoc
// @Summary Occupancy report
// @Description Occupancy percentage, ADR and RevPAR for a date range. Requires MANAGER.
// @Tags reports
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD), inclusive"
// @Success 200 {object} dto.OccupancyResponse
// @Failure 400 {object} ErrorResponse "Invalid range"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /hotels/{hotel_id}/reports/occupancy [get]
func (h *reportingHandler) occupancy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, ok := bindReportRange(c)
	if !ok {
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.reportingService.Occupancy(c.Request.Context(), c.Param("hotel_id"), from, to, userID)
	if err != nil {
		logger.Error("Failed to build occupancy report", slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to build report")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// statusCounts godoc
// @Summary Reservation status counts
// @Description Number of reservations per lifecycle status, for the dashboard tiles.
// @Tags reports
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Success 200 {object} dto.StatusCountsResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /hotels/{hotel_id}/reports/status-counts [get]
func (h *reportingHandler) statusCounts(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.reportingService.StatusCounts(c.Request.Context(), c.Param("hotel_id"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to build status counts")
		return
	}

	c.JSON(http.StatusOK, resp)
}
