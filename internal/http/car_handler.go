package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartpack/carwash-service/internal/model"
	"github.com/smartpack/carwash-service/internal/service"
)

type createCarRequest struct {
	PlateNumber string `json:"plateNumber" binding:"required"`
	CarType     string `json:"carType" binding:"required"`
	CarSize     string `json:"carSize" binding:"required"`
	DriverName  string `json:"driverName" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

type updateCarRequest struct {
	PlateNumber *string `json:"plateNumber"`
	CarType     *string `json:"carType"`
	CarSize     *string `json:"carSize"`
	DriverName  *string `json:"driverName"`
	PhoneNumber *string `json:"phoneNumber"`
}

func (h *Handler) listCars(c *gin.Context) {
	cars, err := h.cars.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, cars)
}

func (h *Handler) getCar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	car, err := h.cars.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}

func (h *Handler) getCarByPlate(c *gin.Context) {
	car, err := h.cars.GetByPlate(c.Request.Context(), c.Param("plateNumber"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}

func (h *Handler) createCar(c *gin.Context) {
	var req createCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	car, err := h.cars.Create(c.Request.Context(), service.CreateCarInput{
		PlateNumber: req.PlateNumber,
		CarType:     req.CarType,
		CarSize:     req.CarSize,
		DriverName:  req.DriverName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, car)
}

func (h *Handler) updateCar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	car, err := h.cars.Update(c.Request.Context(), id, model.CarPatch{
		PlateNumber: req.PlateNumber,
		CarType:     req.CarType,
		CarSize:     req.CarSize,
		DriverName:  req.DriverName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}

func (h *Handler) deleteCar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.cars.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "car deleted"})
}
