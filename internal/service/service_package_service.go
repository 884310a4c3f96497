package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smartpack/carwash-service/internal/model"
)

type ServicePackageStore interface {
	Create(ctx context.Context, record model.ServicePackage) (*model.ServicePackage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.ServicePackage, error)
	GetView(ctx context.Context, id uuid.UUID) (*model.ServicePackageView, error)
	ListViews(ctx context.Context) ([]model.ServicePackageView, error)
	Update(ctx context.Context, record model.ServicePackage) (*model.ServicePackage, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByNumber(ctx context.Context, recordNumber string) (bool, error)
}

// CarLookup and PackageLookup are the existence probes used to validate
// references at write time. Reads never use them; dangling references
// resolve softly in the store views.
type CarLookup interface {
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type PackageLookup interface {
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type ServicePackageService struct {
	store    ServicePackageStore
	cars     CarLookup
	packages PackageLookup
}

func NewServicePackageService(store ServicePackageStore, cars CarLookup, packages PackageLookup) *ServicePackageService {
	return &ServicePackageService{store: store, cars: cars, packages: packages}
}

type CreateServicePackageInput struct {
	RecordNumber string
	ServiceDate  time.Time
	CarID        uuid.UUID
	PackageID    uuid.UUID
}

func (s *ServicePackageService) Create(ctx context.Context, input CreateServicePackageInput) (*model.ServicePackageView, error) {
	record := model.ServicePackage{
		ServiceDate: input.ServiceDate,
		CarID:       input.CarID,
		PackageID:   input.PackageID,
	}
	var err error
	if record.RecordNumber, err = requireText("recordNumber", input.RecordNumber); err != nil {
		return nil, err
	}
	if err = requireID("carId", input.CarID); err != nil {
		return nil, err
	}
	if err = requireID("packageId", input.PackageID); err != nil {
		return nil, err
	}
	if record.ServiceDate.IsZero() {
		record.ServiceDate = time.Now()
	}

	taken, err := s.store.ExistsByNumber(ctx, record.RecordNumber)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: record number already in use", ErrInvalidInput)
	}

	if err := s.checkReferences(ctx, record.CarID, record.PackageID); err != nil {
		return nil, err
	}

	created, err := s.store.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	view, err := s.store.GetView(ctx, created.ID)
	if err != nil {
		return nil, fromStore(err)
	}
	return view, nil
}

func (s *ServicePackageService) Get(ctx context.Context, id uuid.UUID) (*model.ServicePackageView, error) {
	view, err := s.store.GetView(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	return view, nil
}

func (s *ServicePackageService) List(ctx context.Context) ([]model.ServicePackageView, error) {
	return s.store.ListViews(ctx)
}

func (s *ServicePackageService) Update(ctx context.Context, id uuid.UUID, patch model.ServicePackagePatch) (*model.ServicePackageView, error) {
	record, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}

	if patch.RecordNumber != nil {
		if record.RecordNumber, err = requireText("recordNumber", *patch.RecordNumber); err != nil {
			return nil, err
		}
	}
	if patch.ServiceDate != nil {
		record.ServiceDate = *patch.ServiceDate
	}
	if patch.CarID != nil {
		if err = requireID("carId", *patch.CarID); err != nil {
			return nil, err
		}
		record.CarID = *patch.CarID
	}
	if patch.PackageID != nil {
		if err = requireID("packageId", *patch.PackageID); err != nil {
			return nil, err
		}
		record.PackageID = *patch.PackageID
	}

	if patch.CarID != nil || patch.PackageID != nil {
		if err := s.checkReferences(ctx, record.CarID, record.PackageID); err != nil {
			return nil, err
		}
	}

	if _, err := s.store.Update(ctx, *record); err != nil {
		return nil, fromStore(err)
	}
	view, err := s.store.GetView(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	return view, nil
}

func (s *ServicePackageService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fromStore(err)
	}
	return nil
}

func (s *ServicePackageService) checkReferences(ctx context.Context, carID, packageID uuid.UUID) error {
	exists, err := s.cars.ExistsByID(ctx, carID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("car %w", ErrNotFound)
	}
	exists, err = s.packages.ExistsByID(ctx, packageID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("package %w", ErrNotFound)
	}
	return nil
}
