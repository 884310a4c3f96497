package model

import (
	"time"

	"github.com/google/uuid"
)

// ServicePackage is a service record: one car washed with one package.
// CarID and PackageID are non-owning references; the targets may be
// deleted independently and the stored ids left dangling.
type ServicePackage struct {
	ID           uuid.UUID `json:"id"`
	RecordNumber string    `json:"recordNumber"`
	ServiceDate  time.Time `json:"serviceDate"`
	CarID        uuid.UUID `json:"carId"`
	PackageID    uuid.UUID `json:"packageId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ServicePackageView is the hydrated read shape. Car and Package are nil
// when the stored reference dangles; readers render those as absent.
type ServicePackageView struct {
	ServicePackage
	Car     *Car     `json:"car"`
	Package *Package `json:"package"`
}

type ServicePackagePatch struct {
	RecordNumber *string
	ServiceDate  *time.Time
	CarID        *uuid.UUID
	PackageID    *uuid.UUID
}
