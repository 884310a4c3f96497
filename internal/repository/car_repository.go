package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartpack/carwash-service/internal/model"
)

const carColumns = `id, plate_number, car_type, car_size, driver_name, phone_number, created_at, updated_at`

type CarRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{db: db}
}

func (r *CarRepository) Create(ctx context.Context, car model.Car) (*model.Car, error) {
	var saved model.Car
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO cars (plate_number, car_type, car_size, driver_name, phone_number)
		VALUES (?, ?, ?, ?, ?)
		RETURNING `+carColumns,
		car.PlateNumber,
		car.CarType,
		car.CarSize,
		car.DriverName,
		car.PhoneNumber,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *CarRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Car, error) {
	var car model.Car
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+carColumns+`
		FROM cars
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&car).Error
	if err != nil {
		return nil, err
	}
	if car.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &car, nil
}

func (r *CarRepository) GetByPlate(ctx context.Context, plateNumber string) (*model.Car, error) {
	var car model.Car
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+carColumns+`
		FROM cars
		WHERE plate_number = ?
		LIMIT 1
	`, plateNumber).Scan(&car).Error
	if err != nil {
		return nil, err
	}
	if car.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &car, nil
}

func (r *CarRepository) List(ctx context.Context) ([]model.Car, error) {
	var cars []model.Car
	err := r.db.WithContext(ctx).Raw(`
		SELECT ` + carColumns + `
		FROM cars
		ORDER BY created_at ASC
	`).Scan(&cars).Error
	if err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *CarRepository) Update(ctx context.Context, car model.Car) (*model.Car, error) {
	var saved model.Car
	err := r.db.WithContext(ctx).Raw(`
		UPDATE cars
		SET
			plate_number = ?,
			car_type = ?,
			car_size = ?,
			driver_name = ?,
			phone_number = ?,
			updated_at = NOW()
		WHERE id = ?
		RETURNING `+carColumns,
		car.PlateNumber,
		car.CarType,
		car.CarSize,
		car.DriverName,
		car.PhoneNumber,
		car.ID,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	if saved.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

func (r *CarRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM cars WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CarRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).Raw(`
		SELECT EXISTS (SELECT 1 FROM cars WHERE id = ?)
	`, id).Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *CarRepository) ExistsByPlate(ctx context.Context, plateNumber string) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).Raw(`
		SELECT EXISTS (SELECT 1 FROM cars WHERE plate_number = ?)
	`, plateNumber).Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists, nil
}
