package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/smartpack/carwash-service/internal/model"
)

type PackageStore interface {
	Create(ctx context.Context, pkg model.Package) (*model.Package, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Package, error)
	List(ctx context.Context) ([]model.Package, error)
	Update(ctx context.Context, pkg model.Package) (*model.Package, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByNumber(ctx context.Context, packageNumber string) (bool, error)
}

type PackageService struct {
	store PackageStore
}

func NewPackageService(store PackageStore) *PackageService {
	return &PackageService{store: store}
}

type CreatePackageInput struct {
	PackageNumber      string
	PackageName        string
	PackageDescription string
	PackagePrice       float64
}

func (s *PackageService) Create(ctx context.Context, input CreatePackageInput) (*model.Package, error) {
	pkg := model.Package{PackagePrice: input.PackagePrice}
	var err error
	if pkg.PackageNumber, err = requireText("packageNumber", input.PackageNumber); err != nil {
		return nil, err
	}
	if pkg.PackageName, err = requireText("packageName", input.PackageName); err != nil {
		return nil, err
	}
	if pkg.PackageDescription, err = requireText("packageDescription", input.PackageDescription); err != nil {
		return nil, err
	}
	if err = requireAmount("packagePrice", input.PackagePrice); err != nil {
		return nil, err
	}

	taken, err := s.store.ExistsByNumber(ctx, pkg.PackageNumber)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: package number already in use", ErrInvalidInput)
	}

	return s.store.Create(ctx, pkg)
}

func (s *PackageService) Get(ctx context.Context, id uuid.UUID) (*model.Package, error) {
	pkg, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	return pkg, nil
}

func (s *PackageService) List(ctx context.Context) ([]model.Package, error) {
	return s.store.List(ctx)
}

func (s *PackageService) Update(ctx context.Context, id uuid.UUID, patch model.PackagePatch) (*model.Package, error) {
	pkg, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}

	if patch.PackageNumber != nil {
		if pkg.PackageNumber, err = requireText("packageNumber", *patch.PackageNumber); err != nil {
			return nil, err
		}
	}
	if patch.PackageName != nil {
		if pkg.PackageName, err = requireText("packageName", *patch.PackageName); err != nil {
			return nil, err
		}
	}
	if patch.PackageDescription != nil {
		if pkg.PackageDescription, err = requireText("packageDescription", *patch.PackageDescription); err != nil {
			return nil, err
		}
	}
	if patch.PackagePrice != nil {
		if err = requireAmount("packagePrice", *patch.PackagePrice); err != nil {
			return nil, err
		}
		pkg.PackagePrice = *patch.PackagePrice
	}

	updated, err := s.store.Update(ctx, *pkg)
	if err != nil {
		return nil, fromStore(err)
	}
	return updated, nil
}

func (s *PackageService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fromStore(err)
	}
	return nil
}
