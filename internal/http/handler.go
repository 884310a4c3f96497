package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/smartpack/carwash-service/internal/http/middleware"
	"github.com/smartpack/carwash-service/internal/service"
)

type Handler struct {
	cars     *service.CarService
	packages *service.PackageService
	records  *service.ServicePackageService
	payments *service.PaymentService
	reports  *service.ReportService
	log      zerolog.Logger
}

func NewHandler(
	cars *service.CarService,
	packages *service.PackageService,
	records *service.ServicePackageService,
	payments *service.PaymentService,
	reports *service.ReportService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		cars:     cars,
		packages: packages,
		records:  records,
		payments: payments,
		reports:  reports,
		log:      log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	api := router.Group("/api")
	api.Use(authMiddleware)

	adminOnly := middleware.RequireAdmin()

	cars := api.Group("/cars")
	cars.GET("", h.listCars)
	cars.GET("/:id", h.getCar)
	cars.GET("/plate/:plateNumber", h.getCarByPlate)
	cars.POST("", h.createCar)
	cars.PUT("/:id", h.updateCar)
	cars.DELETE("/:id", adminOnly, h.deleteCar)

	packages := api.Group("/packages")
	packages.GET("", h.listPackages)
	packages.GET("/:id", h.getPackage)
	packages.POST("", h.createPackage)
	packages.PUT("/:id", h.updatePackage)
	packages.DELETE("/:id", adminOnly, h.deletePackage)

	records := api.Group("/servicepackages")
	records.GET("", h.listServicePackages)
	records.GET("/:id", h.getServicePackage)
	records.POST("", h.createServicePackage)
	records.PUT("/:id", h.updateServicePackage)
	records.DELETE("/:id", adminOnly, h.deleteServicePackage)

	payments := api.Group("/payments")
	payments.GET("", h.listPayments)
	payments.GET("/reports/daily", h.dailyReport)
	payments.GET("/reports/daily/export", h.exportDailyReport)
	payments.GET("/reports/daily/export/pdf", h.exportDailyReportPDF)
	payments.GET("/:id", h.getPayment)
	payments.POST("", h.createPayment)
	payments.PUT("/:id", h.updatePayment)
	payments.DELETE("/:id", adminOnly, h.deletePayment)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func parseOptionalID(raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*raw))
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// parseDate accepts a bare calendar date or a full timestamp. Bare dates
// are anchored in server-local time so day boundaries line up with the
// daily report.
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	if parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local); err == nil {
		return parsed, nil
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, nil
	}
	// Zone-less timestamps are local too, so they fall in the same
	// report day as the bare-date form.
	if parsed, err := time.ParseInLocation("2006-01-02T15:04:05", raw, time.Local); err == nil {
		return parsed, nil
	}
	return time.Time{}, service.ErrInvalidInput
}

func parseOptionalDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	parsed, err := parseDate(*raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
