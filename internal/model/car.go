package model

import (
	"time"

	"github.com/google/uuid"
)

// Car sizes offered by the admin UI. The store does not constrain the
// column, so historical records may carry other values.
const (
	CarSizeSmall  = "Small"
	CarSizeMedium = "Medium"
	CarSizeLarge  = "Large"
	CarSizeSUV    = "SUV"
)

type Car struct {
	ID          uuid.UUID `json:"id"`
	PlateNumber string    `json:"plateNumber"`
	CarType     string    `json:"carType"`
	CarSize     string    `json:"carSize"`
	DriverName  string    `json:"driverName"`
	PhoneNumber string    `json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CarPatch carries a partial update: nil fields are left unchanged.
type CarPatch struct {
	PlateNumber *string
	CarType     *string
	CarSize     *string
	DriverName  *string
	PhoneNumber *string
}
