package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

var carCols = []string{"id", "plate_number", "car_type", "car_size", "driver_name", "phone_number", "created_at", "updated_at"}

func TestCarRepositoryGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCarRepository(db)

	id := uuid.New()
	now := time.Now()
	mock.ExpectQuery(`(?s)SELECT.+FROM cars.+WHERE id =`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(carCols).
			AddRow(id.String(), "ABC-123", "Sedan", "Medium", "John Doe", "555-0101", now, now))

	car, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, car.ID)
	assert.Equal(t, "ABC-123", car.PlateNumber)
	assert.Equal(t, "John Doe", car.DriverName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarRepositoryGetByIDMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCarRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`(?s)SELECT.+FROM cars.+WHERE id =`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(carCols))

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarRepositoryDeleteMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCarRepository(db)

	id := uuid.New()
	mock.ExpectExec(`DELETE FROM cars WHERE id =`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarRepositoryExistsByPlate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCarRepository(db)

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM cars WHERE plate_number =`).
		WithArgs("ABC-123").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByPlate(context.Background(), "ABC-123")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

var servicePackageViewCols = []string{
	"id", "record_number", "service_date", "car_id", "package_id", "created_at", "updated_at",
	"car_row_id", "plate_number", "car_type", "car_size", "driver_name", "phone_number", "car_created_at", "car_updated_at",
	"pkg_row_id", "package_number", "package_name", "package_description", "package_price", "pkg_created_at", "pkg_updated_at",
}

func TestServicePackageViewHydrates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewServicePackageRepository(db)

	recordID := uuid.New()
	carID := uuid.New()
	packageID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`(?s)SELECT.+FROM service_packages sp.+LEFT JOIN cars c.+WHERE sp\.id =`).
		WithArgs(recordID).
		WillReturnRows(sqlmock.NewRows(servicePackageViewCols).AddRow(
			recordID.String(), "REC-1", now, carID.String(), packageID.String(), now, now,
			carID.String(), "ABC-123", "Sedan", "Medium", "John Doe", "555-0101", now, now,
			packageID.String(), "PKG-1", "Deluxe", "Wash and wax", 49.99, now, now,
		))

	view, err := repo.GetView(context.Background(), recordID)
	require.NoError(t, err)
	assert.Equal(t, "REC-1", view.RecordNumber)
	require.NotNil(t, view.Car)
	assert.Equal(t, "ABC-123", view.Car.PlateNumber)
	require.NotNil(t, view.Package)
	assert.Equal(t, "Deluxe", view.Package.PackageName)
	assert.InDelta(t, 49.99, view.Package.PackagePrice, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServicePackageViewDanglingCar(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewServicePackageRepository(db)

	recordID := uuid.New()
	carID := uuid.New()
	packageID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`(?s)SELECT.+FROM service_packages sp.+LEFT JOIN cars c.+WHERE sp\.id =`).
		WithArgs(recordID).
		WillReturnRows(sqlmock.NewRows(servicePackageViewCols).AddRow(
			recordID.String(), "REC-1", now, carID.String(), packageID.String(), now, now,
			nil, nil, nil, nil, nil, nil, nil, nil,
			packageID.String(), "PKG-1", "Deluxe", "Wash and wax", 49.99, now, now,
		))

	view, err := repo.GetView(context.Background(), recordID)
	require.NoError(t, err)
	assert.Nil(t, view.Car)
	assert.Equal(t, carID, view.CarID)
	require.NotNil(t, view.Package)
	assert.NoError(t, mock.ExpectationsWereMet())
}

var paymentViewCols = []string{
	"id", "payment_number", "amount_paid", "payment_date", "service_package_id", "created_at", "updated_at",
	"sp_row_id", "record_number", "service_date", "car_id", "package_id", "sp_created_at", "sp_updated_at",
	"car_row_id", "plate_number", "car_type", "car_size", "driver_name", "phone_number", "car_created_at", "car_updated_at",
	"pkg_row_id", "package_number", "package_name", "package_description", "package_price", "pkg_created_at", "pkg_updated_at",
}

func TestPaymentViewDanglingServicePackage(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)

	paymentID := uuid.New()
	recordID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`(?s)SELECT.+FROM payments p.+LEFT JOIN service_packages sp.+WHERE p\.id =`).
		WithArgs(paymentID).
		WillReturnRows(sqlmock.NewRows(paymentViewCols).AddRow(
			paymentID.String(), "PAY-1", 25.00, now, recordID.String(), now, now,
			nil, nil, nil, nil, nil, nil, nil,
			nil, nil, nil, nil, nil, nil, nil, nil,
			nil, nil, nil, nil, nil, nil, nil,
		))

	view, err := repo.GetView(context.Background(), paymentID)
	require.NoError(t, err)
	assert.Equal(t, "PAY-1", view.PaymentNumber)
	assert.Equal(t, recordID, view.ServicePackageID)
	assert.Nil(t, view.ServicePackage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryRangeBounds(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReportRepository(db)

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	to := from.Add(24*time.Hour - time.Millisecond)

	mock.ExpectQuery(`(?s)SELECT.+FROM payments p.+WHERE p\.payment_date >= .+ AND p\.payment_date <=`).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows(paymentViewCols))

	views, err := repo.ListPaymentsBetween(context.Background(), from, to)
	require.NoError(t, err)
	assert.Empty(t, views)
	assert.NoError(t, mock.ExpectationsWereMet())
}
