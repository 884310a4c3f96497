package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartpack/carwash-service/internal/model"
)

const servicePackageColumns = `id, record_number, service_date, car_id, package_id, created_at, updated_at`

// servicePackageViewQuery resolves the car and package references with
// LEFT JOINs so a dangling reference scans as NULLs instead of dropping
// the row or failing.
const servicePackageViewQuery = `
	SELECT
		sp.id,
		sp.record_number,
		sp.service_date,
		sp.car_id,
		sp.package_id,
		sp.created_at,
		sp.updated_at,
		c.id AS car_row_id,
		c.plate_number,
		c.car_type,
		c.car_size,
		c.driver_name,
		c.phone_number,
		c.created_at AS car_created_at,
		c.updated_at AS car_updated_at,
		pkg.id AS pkg_row_id,
		pkg.package_number,
		pkg.package_name,
		pkg.package_description,
		pkg.package_price,
		pkg.created_at AS pkg_created_at,
		pkg.updated_at AS pkg_updated_at
	FROM service_packages sp
	LEFT JOIN cars c ON c.id = sp.car_id
	LEFT JOIN packages pkg ON pkg.id = sp.package_id
`

type servicePackageViewRow struct {
	ID           uuid.UUID
	RecordNumber string
	ServiceDate  time.Time
	CarID        uuid.UUID
	PackageID    uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time

	CarRowID     *uuid.UUID
	PlateNumber  *string
	CarType      *string
	CarSize      *string
	DriverName   *string
	PhoneNumber  *string
	CarCreatedAt *time.Time
	CarUpdatedAt *time.Time

	PkgRowID           *uuid.UUID
	PackageNumber      *string
	PackageName        *string
	PackageDescription *string
	PackagePrice       *float64
	PkgCreatedAt       *time.Time
	PkgUpdatedAt       *time.Time
}

func (row servicePackageViewRow) toView() model.ServicePackageView {
	view := model.ServicePackageView{
		ServicePackage: model.ServicePackage{
			ID:           row.ID,
			RecordNumber: row.RecordNumber,
			ServiceDate:  row.ServiceDate,
			CarID:        row.CarID,
			PackageID:    row.PackageID,
			CreatedAt:    row.CreatedAt,
			UpdatedAt:    row.UpdatedAt,
		},
	}
	if row.CarRowID != nil {
		view.Car = &model.Car{
			ID:          *row.CarRowID,
			PlateNumber: deref(row.PlateNumber),
			CarType:     deref(row.CarType),
			CarSize:     deref(row.CarSize),
			DriverName:  deref(row.DriverName),
			PhoneNumber: deref(row.PhoneNumber),
			CreatedAt:   derefTime(row.CarCreatedAt),
			UpdatedAt:   derefTime(row.CarUpdatedAt),
		}
	}
	if row.PkgRowID != nil {
		view.Package = &model.Package{
			ID:                 *row.PkgRowID,
			PackageNumber:      deref(row.PackageNumber),
			PackageName:        deref(row.PackageName),
			PackageDescription: deref(row.PackageDescription),
			PackagePrice:       derefFloat(row.PackagePrice),
			CreatedAt:          derefTime(row.PkgCreatedAt),
			UpdatedAt:          derefTime(row.PkgUpdatedAt),
		}
	}
	return view
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func derefFloat(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}

func derefTime(value *time.Time) time.Time {
	if value == nil {
		return time.Time{}
	}
	return *value
}

type ServicePackageRepository struct {
	db *gorm.DB
}

func NewServicePackageRepository(db *gorm.DB) *ServicePackageRepository {
	return &ServicePackageRepository{db: db}
}

func (r *ServicePackageRepository) Create(ctx context.Context, record model.ServicePackage) (*model.ServicePackage, error) {
	var saved model.ServicePackage
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO service_packages (record_number, service_date, car_id, package_id)
		VALUES (?, ?, ?, ?)
		RETURNING `+servicePackageColumns,
		record.RecordNumber,
		record.ServiceDate,
		record.CarID,
		record.PackageID,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *ServicePackageRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ServicePackage, error) {
	var record model.ServicePackage
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+servicePackageColumns+`
		FROM service_packages
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&record).Error
	if err != nil {
		return nil, err
	}
	if record.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &record, nil
}

func (r *ServicePackageRepository) GetView(ctx context.Context, id uuid.UUID) (*model.ServicePackageView, error) {
	var row servicePackageViewRow
	err := r.db.WithContext(ctx).Raw(servicePackageViewQuery+`
		WHERE sp.id = ?
		LIMIT 1
	`, id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	view := row.toView()
	return &view, nil
}

func (r *ServicePackageRepository) ListViews(ctx context.Context) ([]model.ServicePackageView, error) {
	var rows []servicePackageViewRow
	err := r.db.WithContext(ctx).Raw(servicePackageViewQuery + `
		ORDER BY sp.created_at ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	views := make([]model.ServicePackageView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.toView())
	}
	return views, nil
}

func (r *ServicePackageRepository) Update(ctx context.Context, record model.ServicePackage) (*model.ServicePackage, error) {
	var saved model.ServicePackage
	err := r.db.WithContext(ctx).Raw(`
		UPDATE service_packages
		SET
			record_number = ?,
			service_date = ?,
			car_id = ?,
			package_id = ?,
			updated_at = NOW()
		WHERE id = ?
		RETURNING `+servicePackageColumns,
		record.RecordNumber,
		record.ServiceDate,
		record.CarID,
		record.PackageID,
		record.ID,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	if saved.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

func (r *ServicePackageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM service_packages WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ServicePackageRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).Raw(`
		SELECT EXISTS (SELECT 1 FROM service_packages WHERE id = ?)
	`, id).Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *ServicePackageRepository) ExistsByNumber(ctx context.Context, recordNumber string) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).Raw(`
		SELECT EXISTS (SELECT 1 FROM service_packages WHERE record_number = ?)
	`, recordNumber).Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists, nil
}
