package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/smartpack/carwash-service/internal/model"
)

// CarStore is the persistence surface the car service needs. The
// production implementation is repository.CarRepository.
type CarStore interface {
	Create(ctx context.Context, car model.Car) (*model.Car, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Car, error)
	GetByPlate(ctx context.Context, plateNumber string) (*model.Car, error)
	List(ctx context.Context) ([]model.Car, error)
	Update(ctx context.Context, car model.Car) (*model.Car, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByPlate(ctx context.Context, plateNumber string) (bool, error)
}

type CarService struct {
	store CarStore
}

func NewCarService(store CarStore) *CarService {
	return &CarService{store: store}
}

type CreateCarInput struct {
	PlateNumber string
	CarType     string
	CarSize     string
	DriverName  string
	PhoneNumber string
}

func (s *CarService) Create(ctx context.Context, input CreateCarInput) (*model.Car, error) {
	car := model.Car{}
	var err error
	if car.PlateNumber, err = requireText("plateNumber", input.PlateNumber); err != nil {
		return nil, err
	}
	if car.CarType, err = requireText("carType", input.CarType); err != nil {
		return nil, err
	}
	if car.CarSize, err = requireText("carSize", input.CarSize); err != nil {
		return nil, err
	}
	if car.DriverName, err = requireText("driverName", input.DriverName); err != nil {
		return nil, err
	}
	if car.PhoneNumber, err = requireText("phoneNumber", input.PhoneNumber); err != nil {
		return nil, err
	}

	taken, err := s.store.ExistsByPlate(ctx, car.PlateNumber)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: plate number already in use", ErrInvalidInput)
	}

	return s.store.Create(ctx, car)
}

func (s *CarService) Get(ctx context.Context, id uuid.UUID) (*model.Car, error) {
	car, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	return car, nil
}

func (s *CarService) GetByPlate(ctx context.Context, plateNumber string) (*model.Car, error) {
	plateNumber, err := requireText("plateNumber", plateNumber)
	if err != nil {
		return nil, err
	}
	car, err := s.store.GetByPlate(ctx, plateNumber)
	if err != nil {
		return nil, fromStore(err)
	}
	return car, nil
}

func (s *CarService) List(ctx context.Context) ([]model.Car, error) {
	return s.store.List(ctx)
}

// Update applies a partial patch: nil fields keep their stored value.
// The plate number is not re-checked for uniqueness here; the admin UI
// treats business codes as immutable and the unique index backstops it.
func (s *CarService) Update(ctx context.Context, id uuid.UUID, patch model.CarPatch) (*model.Car, error) {
	car, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}

	if patch.PlateNumber != nil {
		if car.PlateNumber, err = requireText("plateNumber", *patch.PlateNumber); err != nil {
			return nil, err
		}
	}
	if patch.CarType != nil {
		if car.CarType, err = requireText("carType", *patch.CarType); err != nil {
			return nil, err
		}
	}
	if patch.CarSize != nil {
		if car.CarSize, err = requireText("carSize", *patch.CarSize); err != nil {
			return nil, err
		}
	}
	if patch.DriverName != nil {
		if car.DriverName, err = requireText("driverName", *patch.DriverName); err != nil {
			return nil, err
		}
	}
	if patch.PhoneNumber != nil {
		if car.PhoneNumber, err = requireText("phoneNumber", *patch.PhoneNumber); err != nil {
			return nil, err
		}
	}

	updated, err := s.store.Update(ctx, *car)
	if err != nil {
		return nil, fromStore(err)
	}
	return updated, nil
}

func (s *CarService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fromStore(err)
	}
	return nil
}
