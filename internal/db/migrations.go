package db

import (
	"fmt"

	"gorm.io/gorm"
)

// Reference columns carry no FOREIGN KEY constraints: deletes never
// cascade, and a stored reference is allowed to dangle. Reads resolve
// dangling references to an absent relation instead of failing.
var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE TABLE IF NOT EXISTS cars (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		plate_number VARCHAR(32) NOT NULL,
		car_type VARCHAR(64) NOT NULL,
		car_size VARCHAR(32) NOT NULL,
		driver_name VARCHAR(128) NOT NULL,
		phone_number VARCHAR(32) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_cars_plate_number ON cars (plate_number);`,
	`CREATE TABLE IF NOT EXISTS packages (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		package_number VARCHAR(32) NOT NULL,
		package_name VARCHAR(128) NOT NULL,
		package_description TEXT NOT NULL,
		package_price NUMERIC(10,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_packages_package_number ON packages (package_number);`,
	`CREATE TABLE IF NOT EXISTS service_packages (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		record_number VARCHAR(32) NOT NULL,
		service_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		car_id UUID NOT NULL,
		package_id UUID NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_service_packages_record_number ON service_packages (record_number);`,
	`CREATE INDEX IF NOT EXISTS idx_service_packages_car_id ON service_packages (car_id);`,
	`CREATE INDEX IF NOT EXISTS idx_service_packages_package_id ON service_packages (package_id);`,
	`CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		payment_number VARCHAR(32) NOT NULL,
		amount_paid NUMERIC(10,2) NOT NULL,
		payment_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		service_package_id UUID NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_payments_payment_number ON payments (payment_number);`,
	`CREATE INDEX IF NOT EXISTS idx_payments_payment_date ON payments (payment_date);`,
	`CREATE INDEX IF NOT EXISTS idx_payments_service_package_id ON payments (service_package_id);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
