package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartpack/carwash-service/internal/model"
)

const packageColumns = `id, package_number, package_name, package_description, package_price, created_at, updated_at`

type PackageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) Create(ctx context.Context, pkg model.Package) (*model.Package, error) {
	var saved model.Package
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO packages (package_number, package_name, package_description, package_price)
		VALUES (?, ?, ?, ?)
		RETURNING `+packageColumns,
		pkg.PackageNumber,
		pkg.PackageName,
		pkg.PackageDescription,
		pkg.PackagePrice,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *PackageRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Package, error) {
	var pkg model.Package
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+packageColumns+`
		FROM packages
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&pkg).Error
	if err != nil {
		return nil, err
	}
	if pkg.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &pkg, nil
}

func (r *PackageRepository) List(ctx context.Context) ([]model.Package, error) {
	var pkgs []model.Package
	err := r.db.WithContext(ctx).Raw(`
		SELECT ` + packageColumns + `
		FROM packages
		ORDER BY created_at ASC
	`).Scan(&pkgs).Error
	if err != nil {
		return nil, err
	}
	return pkgs, nil
}

func (r *PackageRepository) Update(ctx context.Context, pkg model.Package) (*model.Package, error) {
	var saved model.Package
	err := r.db.WithContext(ctx).Raw(`
		UPDATE packages
		SET
			package_number = ?,
			package_name = ?,
			package_description = ?,
			package_price = ?,
			updated_at = NOW()
		WHERE id = ?
		RETURNING `+packageColumns,
		pkg.PackageNumber,
		pkg.PackageName,
		pkg.PackageDescription,
		pkg.PackagePrice,
		pkg.ID,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	if saved.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

func (r *PackageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM packages WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PackageRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).Raw(`
		SELECT EXISTS (SELECT 1 FROM packages WHERE id = ?)
	`, id).Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PackageRepository) ExistsByNumber(ctx context.Context, packageNumber string) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).Raw(`
		SELECT EXISTS (SELECT 1 FROM packages WHERE package_number = ?)
	`, packageNumber).Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists, nil
}
