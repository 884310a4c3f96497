package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartpack/carwash-service/internal/model"
)

const paymentColumns = `id, payment_number, amount_paid, payment_date, service_package_id, created_at, updated_at`

// paymentViewQuery hydrates two levels deep. Every join is a LEFT JOIN:
// if the service record is gone the chain stops at a NULL sp_row_id, and
// a missing car or package only blanks its own columns.
const paymentViewQuery = `
	SELECT
		p.id,
		p.payment_number,
		p.amount_paid,
		p.payment_date,
		p.service_package_id,
		p.created_at,
		p.updated_at,
		sp.id AS sp_row_id,
		sp.record_number,
		sp.service_date,
		sp.car_id,
		sp.package_id,
		sp.created_at AS sp_created_at,
		sp.updated_at AS sp_updated_at,
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
	FROM payments p
	LEFT JOIN service_packages sp ON sp.id = p.service_package_id
	LEFT JOIN cars c ON c.id = sp.car_id
	LEFT JOIN packages pkg ON pkg.id = sp.package_id
`

type paymentViewRow struct {
	ID               uuid.UUID
	PaymentNumber    string
	AmountPaid       float64
	PaymentDate      time.Time
	ServicePackageID uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time

	SpRowID      *uuid.UUID
	RecordNumber *string
	ServiceDate  *time.Time
	CarID        *uuid.UUID
	PackageID    *uuid.UUID
	SpCreatedAt  *time.Time
	SpUpdatedAt  *time.Time

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

func (row paymentViewRow) toView() model.PaymentView {
	view := model.PaymentView{
		Payment: model.Payment{
			ID:               row.ID,
			PaymentNumber:    row.PaymentNumber,
			AmountPaid:       row.AmountPaid,
			PaymentDate:      row.PaymentDate,
			ServicePackageID: row.ServicePackageID,
			CreatedAt:        row.CreatedAt,
			UpdatedAt:        row.UpdatedAt,
		},
	}
	if row.SpRowID == nil {
		return view
	}

	spRow := servicePackageViewRow{
		ID:           *row.SpRowID,
		RecordNumber: deref(row.RecordNumber),
		ServiceDate:  derefTime(row.ServiceDate),
		CarID:        derefUUID(row.CarID),
		PackageID:    derefUUID(row.PackageID),
		CreatedAt:    derefTime(row.SpCreatedAt),
		UpdatedAt:    derefTime(row.SpUpdatedAt),

		CarRowID:     row.CarRowID,
		PlateNumber:  row.PlateNumber,
		CarType:      row.CarType,
		CarSize:      row.CarSize,
		DriverName:   row.DriverName,
		PhoneNumber:  row.PhoneNumber,
		CarCreatedAt: row.CarCreatedAt,
		CarUpdatedAt: row.CarUpdatedAt,

		PkgRowID:           row.PkgRowID,
		PackageNumber:      row.PackageNumber,
		PackageName:        row.PackageName,
		PackageDescription: row.PackageDescription,
		PackagePrice:       row.PackagePrice,
		PkgCreatedAt:       row.PkgCreatedAt,
		PkgUpdatedAt:       row.PkgUpdatedAt,
	}
	sp := spRow.toView()
	view.ServicePackage = &sp
	return view
}

func derefUUID(value *uuid.UUID) uuid.UUID {
	if value == nil {
		return uuid.Nil
	}
	return *value
}

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment model.Payment) (*model.Payment, error) {
	var saved model.Payment
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO payments (payment_number, amount_paid, payment_date, service_package_id)
		VALUES (?, ?, ?, ?)
		RETURNING `+paymentColumns,
		payment.PaymentNumber,
		payment.AmountPaid,
		payment.PaymentDate,
		payment.ServicePackageID,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	var payment model.Payment
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+paymentColumns+`
		FROM payments
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&payment).Error
	if err != nil {
		return nil, err
	}
	if payment.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &payment, nil
}

func (r *PaymentRepository) GetView(ctx context.Context, id uuid.UUID) (*model.PaymentView, error) {
	var row paymentViewRow
	err := r.db.WithContext(ctx).Raw(paymentViewQuery+`
		WHERE p.id = ?
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

func (r *PaymentRepository) ListViews(ctx context.Context) ([]model.PaymentView, error) {
	var rows []paymentViewRow
	err := r.db.WithContext(ctx).Raw(paymentViewQuery + `
		ORDER BY p.created_at ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	views := make([]model.PaymentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.toView())
	}
	return views, nil
}

func (r *PaymentRepository) Update(ctx context.Context, payment model.Payment) (*model.Payment, error) {
	var saved model.Payment
	err := r.db.WithContext(ctx).Raw(`
		UPDATE payments
		SET
			payment_number = ?,
			amount_paid = ?,
			payment_date = ?,
			service_package_id = ?,
			updated_at = NOW()
		WHERE id = ?
		RETURNING `+paymentColumns,
		payment.PaymentNumber,
		payment.AmountPaid,
		payment.PaymentDate,
		payment.ServicePackageID,
		payment.ID,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	if saved.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM payments WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PaymentRepository) ExistsByNumber(ctx context.Context, paymentNumber string) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).Raw(`
		SELECT EXISTS (SELECT 1 FROM payments WHERE payment_number = ?)
	`, paymentNumber).Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists, nil
}
