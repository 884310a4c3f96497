package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartpack/carwash-service/internal/model"
	"github.com/smartpack/carwash-service/internal/service"
)

type createPackageRequest struct {
	PackageNumber      string   `json:"packageNumber" binding:"required"`
	PackageName        string   `json:"packageName" binding:"required"`
	PackageDescription string   `json:"packageDescription" binding:"required"`
	PackagePrice       *float64 `json:"packagePrice" binding:"required"`
}

type updatePackageRequest struct {
	PackageNumber      *string  `json:"packageNumber"`
	PackageName        *string  `json:"packageName"`
	PackageDescription *string  `json:"packageDescription"`
	PackagePrice       *float64 `json:"packagePrice"`
}

func (h *Handler) listPackages(c *gin.Context) {
	packages, err := h.packages.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

func (h *Handler) getPackage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	pkg, err := h.packages.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

func (h *Handler) createPackage(c *gin.Context) {
	var req createPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pkg, err := h.packages.Create(c.Request.Context(), service.CreatePackageInput{
		PackageNumber:      req.PackageNumber,
		PackageName:        req.PackageName,
		PackageDescription: req.PackageDescription,
		PackagePrice:       *req.PackagePrice,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

func (h *Handler) updatePackage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pkg, err := h.packages.Update(c.Request.Context(), id, model.PackagePatch{
		PackageNumber:      req.PackageNumber,
		PackageName:        req.PackageName,
		PackageDescription: req.PackageDescription,
		PackagePrice:       req.PackagePrice,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

func (h *Handler) deletePackage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.packages.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "package deleted"})
}
