package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smartpack/carwash-service/internal/model"
	"github.com/smartpack/carwash-service/internal/service"
)

type createPaymentRequest struct {
	PaymentNumber    string   `json:"paymentNumber" binding:"required"`
	AmountPaid       *float64 `json:"amountPaid" binding:"required"`
	PaymentDate      *string  `json:"paymentDate"`
	ServicePackageID string   `json:"servicePackageId" binding:"required"`
}

type updatePaymentRequest struct {
	PaymentNumber    *string  `json:"paymentNumber"`
	AmountPaid       *float64 `json:"amountPaid"`
	PaymentDate      *string  `json:"paymentDate"`
	ServicePackageID *string  `json:"servicePackageId"`
}

func (h *Handler) listPayments(c *gin.Context) {
	payments, err := h.payments.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *Handler) getPayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	payment, err := h.payments.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *Handler) createPayment(c *gin.Context) {
	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	servicePackageID, err := uuid.Parse(strings.TrimSpace(req.ServicePackageID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid servicePackageId"})
		return
	}

	input := service.CreatePaymentInput{
		PaymentNumber:    req.PaymentNumber,
		AmountPaid:       *req.AmountPaid,
		ServicePackageID: servicePackageID,
	}
	if req.PaymentDate != nil {
		paymentDate, err := parseDate(*req.PaymentDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid paymentDate"})
			return
		}
		input.PaymentDate = paymentDate
	}

	payment, err := h.payments.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (h *Handler) updatePayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := model.PaymentPatch{
		PaymentNumber: req.PaymentNumber,
		AmountPaid:    req.AmountPaid,
	}
	var err error
	if patch.PaymentDate, err = parseOptionalDate(req.PaymentDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid paymentDate"})
		return
	}
	if patch.ServicePackageID, err = parseOptionalID(req.ServicePackageID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid servicePackageId"})
		return
	}

	payment, err := h.payments.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *Handler) deletePayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.payments.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payment deleted"})
}
