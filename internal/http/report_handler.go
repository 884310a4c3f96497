package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) reportDate(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Time{}, true
	}
	date, err := parseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return time.Time{}, false
	}
	return date, true
}

func (h *Handler) dailyReport(c *gin.Context) {
	date, ok := h.reportDate(c)
	if !ok {
		return
	}
	report, err := h.reports.Daily(c.Request.Context(), date)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) exportDailyReport(c *gin.Context) {
	date, ok := h.reportDate(c)
	if !ok {
		return
	}
	result, err := h.reports.ExportDailyExcel(c.Request.Context(), date)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, excelContentType, result.Content)
}

func (h *Handler) exportDailyReportPDF(c *gin.Context) {
	date, ok := h.reportDate(c)
	if !ok {
		return
	}
	result, err := h.reports.ExportDailyPDF(c.Request.Context(), date)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}
