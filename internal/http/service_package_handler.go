package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smartpack/carwash-service/internal/model"
	"github.com/smartpack/carwash-service/internal/service"
)

type createServicePackageRequest struct {
	RecordNumber string  `json:"recordNumber" binding:"required"`
	ServiceDate  *string `json:"serviceDate"`
	CarID        string  `json:"carId" binding:"required"`
	PackageID    string  `json:"packageId" binding:"required"`
}

type updateServicePackageRequest struct {
	RecordNumber *string `json:"recordNumber"`
	ServiceDate  *string `json:"serviceDate"`
	CarID        *string `json:"carId"`
	PackageID    *string `json:"packageId"`
}

func (h *Handler) listServicePackages(c *gin.Context) {
	records, err := h.records.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) getServicePackage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	record, err := h.records.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *Handler) createServicePackage(c *gin.Context) {
	var req createServicePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	carID, err := uuid.Parse(strings.TrimSpace(req.CarID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid carId"})
		return
	}
	packageID, err := uuid.Parse(strings.TrimSpace(req.PackageID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid packageId"})
		return
	}

	input := service.CreateServicePackageInput{
		RecordNumber: req.RecordNumber,
		CarID:        carID,
		PackageID:    packageID,
	}
	if req.ServiceDate != nil {
		serviceDate, err := parseDate(*req.ServiceDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid serviceDate"})
			return
		}
		input.ServiceDate = serviceDate
	}

	record, err := h.records.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *Handler) updateServicePackage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updateServicePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := model.ServicePackagePatch{RecordNumber: req.RecordNumber}
	var err error
	if patch.ServiceDate, err = parseOptionalDate(req.ServiceDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid serviceDate"})
		return
	}
	if patch.CarID, err = parseOptionalID(req.CarID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid carId"})
		return
	}
	if patch.PackageID, err = parseOptionalID(req.PackageID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid packageId"})
		return
	}

	record, err := h.records.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *Handler) deleteServicePackage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.records.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service package deleted"})
}
