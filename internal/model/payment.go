package model

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID               uuid.UUID `json:"id"`
	PaymentNumber    string    `json:"paymentNumber"`
	AmountPaid       float64   `json:"amountPaid"`
	PaymentDate      time.Time `json:"paymentDate"`
	ServicePackageID uuid.UUID `json:"servicePackageId"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// PaymentView hydrates the referenced service record two levels deep:
// Payment -> ServicePackage -> {Car, Package}. A dangling service record
// reference leaves ServicePackage nil and stops the chain there.
type PaymentView struct {
	Payment
	ServicePackage *ServicePackageView `json:"servicePackage"`
}

type PaymentPatch struct {
	PaymentNumber    *string
	AmountPaid       *float64
	PaymentDate      *time.Time
	ServicePackageID *uuid.UUID
}
