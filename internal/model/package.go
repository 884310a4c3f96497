package model

import (
	"time"

	"github.com/google/uuid"
)

type Package struct {
	ID                 uuid.UUID `json:"id"`
	PackageNumber      string    `json:"packageNumber"`
	PackageName        string    `json:"packageName"`
	PackageDescription string    `json:"packageDescription"`
	PackagePrice       float64   `json:"packagePrice"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type PackagePatch struct {
	PackageNumber      *string
	PackageName        *string
	PackageDescription *string
	PackagePrice       *float64
}
