package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartpack/carwash-service/internal/model"
)

// In-memory stores mirroring the repository contracts, including the
// soft hydration of dangling references.

type fakeCarStore struct {
	cars  map[uuid.UUID]model.Car
	order []uuid.UUID
}

func newFakeCarStore() *fakeCarStore {
	return &fakeCarStore{cars: map[uuid.UUID]model.Car{}}
}

func (f *fakeCarStore) Create(_ context.Context, car model.Car) (*model.Car, error) {
	car.ID = uuid.New()
	now := time.Now()
	car.CreatedAt = now
	car.UpdatedAt = now
	f.cars[car.ID] = car
	f.order = append(f.order, car.ID)
	return &car, nil
}

func (f *fakeCarStore) GetByID(_ context.Context, id uuid.UUID) (*model.Car, error) {
	car, ok := f.cars[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &car, nil
}

func (f *fakeCarStore) GetByPlate(_ context.Context, plateNumber string) (*model.Car, error) {
	for _, car := range f.cars {
		if car.PlateNumber == plateNumber {
			return &car, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCarStore) List(_ context.Context) ([]model.Car, error) {
	cars := make([]model.Car, 0, len(f.order))
	for _, id := range f.order {
		if car, ok := f.cars[id]; ok {
			cars = append(cars, car)
		}
	}
	return cars, nil
}

func (f *fakeCarStore) Update(_ context.Context, car model.Car) (*model.Car, error) {
	stored, ok := f.cars[car.ID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	car.CreatedAt = stored.CreatedAt
	car.UpdatedAt = time.Now()
	f.cars[car.ID] = car
	return &car, nil
}

func (f *fakeCarStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.cars[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.cars, id)
	return nil
}

func (f *fakeCarStore) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.cars[id]
	return ok, nil
}

func (f *fakeCarStore) ExistsByPlate(_ context.Context, plateNumber string) (bool, error) {
	for _, car := range f.cars {
		if car.PlateNumber == plateNumber {
			return true, nil
		}
	}
	return false, nil
}

type fakePackageStore struct {
	packages map[uuid.UUID]model.Package
	order    []uuid.UUID
}

func newFakePackageStore() *fakePackageStore {
	return &fakePackageStore{packages: map[uuid.UUID]model.Package{}}
}

func (f *fakePackageStore) Create(_ context.Context, pkg model.Package) (*model.Package, error) {
	pkg.ID = uuid.New()
	now := time.Now()
	pkg.CreatedAt = now
	pkg.UpdatedAt = now
	f.packages[pkg.ID] = pkg
	f.order = append(f.order, pkg.ID)
	return &pkg, nil
}

func (f *fakePackageStore) GetByID(_ context.Context, id uuid.UUID) (*model.Package, error) {
	pkg, ok := f.packages[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &pkg, nil
}

func (f *fakePackageStore) List(_ context.Context) ([]model.Package, error) {
	pkgs := make([]model.Package, 0, len(f.order))
	for _, id := range f.order {
		if pkg, ok := f.packages[id]; ok {
			pkgs = append(pkgs, pkg)
		}
	}
	return pkgs, nil
}

func (f *fakePackageStore) Update(_ context.Context, pkg model.Package) (*model.Package, error) {
	stored, ok := f.packages[pkg.ID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	pkg.CreatedAt = stored.CreatedAt
	pkg.UpdatedAt = time.Now()
	f.packages[pkg.ID] = pkg
	return &pkg, nil
}

func (f *fakePackageStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.packages[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.packages, id)
	return nil
}

func (f *fakePackageStore) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.packages[id]
	return ok, nil
}

func (f *fakePackageStore) ExistsByNumber(_ context.Context, packageNumber string) (bool, error) {
	for _, pkg := range f.packages {
		if pkg.PackageNumber == packageNumber {
			return true, nil
		}
	}
	return false, nil
}

type fakeServicePackageStore struct {
	records  map[uuid.UUID]model.ServicePackage
	order    []uuid.UUID
	cars     *fakeCarStore
	packages *fakePackageStore
}

func newFakeServicePackageStore(cars *fakeCarStore, packages *fakePackageStore) *fakeServicePackageStore {
	return &fakeServicePackageStore{
		records:  map[uuid.UUID]model.ServicePackage{},
		cars:     cars,
		packages: packages,
	}
}

func (f *fakeServicePackageStore) Create(_ context.Context, record model.ServicePackage) (*model.ServicePackage, error) {
	record.ID = uuid.New()
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now
	f.records[record.ID] = record
	f.order = append(f.order, record.ID)
	return &record, nil
}

func (f *fakeServicePackageStore) GetByID(_ context.Context, id uuid.UUID) (*model.ServicePackage, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &record, nil
}

func (f *fakeServicePackageStore) view(record model.ServicePackage) model.ServicePackageView {
	view := model.ServicePackageView{ServicePackage: record}
	if car, ok := f.cars.cars[record.CarID]; ok {
		view.Car = &car
	}
	if pkg, ok := f.packages.packages[record.PackageID]; ok {
		view.Package = &pkg
	}
	return view
}

func (f *fakeServicePackageStore) GetView(_ context.Context, id uuid.UUID) (*model.ServicePackageView, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	view := f.view(record)
	return &view, nil
}

func (f *fakeServicePackageStore) ListViews(_ context.Context) ([]model.ServicePackageView, error) {
	views := make([]model.ServicePackageView, 0, len(f.order))
	for _, id := range f.order {
		if record, ok := f.records[id]; ok {
			views = append(views, f.view(record))
		}
	}
	return views, nil
}

func (f *fakeServicePackageStore) Update(_ context.Context, record model.ServicePackage) (*model.ServicePackage, error) {
	stored, ok := f.records[record.ID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	record.CreatedAt = stored.CreatedAt
	record.UpdatedAt = time.Now()
	f.records[record.ID] = record
	return &record, nil
}

func (f *fakeServicePackageStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.records[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.records, id)
	return nil
}

func (f *fakeServicePackageStore) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.records[id]
	return ok, nil
}

func (f *fakeServicePackageStore) ExistsByNumber(_ context.Context, recordNumber string) (bool, error) {
	for _, record := range f.records {
		if record.RecordNumber == recordNumber {
			return true, nil
		}
	}
	return false, nil
}

type fakePaymentStore struct {
	payments map[uuid.UUID]model.Payment
	order    []uuid.UUID
	records  *fakeServicePackageStore
}

func newFakePaymentStore(records *fakeServicePackageStore) *fakePaymentStore {
	return &fakePaymentStore{payments: map[uuid.UUID]model.Payment{}, records: records}
}

func (f *fakePaymentStore) Create(_ context.Context, payment model.Payment) (*model.Payment, error) {
	payment.ID = uuid.New()
	now := time.Now()
	payment.CreatedAt = now
	payment.UpdatedAt = now
	f.payments[payment.ID] = payment
	f.order = append(f.order, payment.ID)
	return &payment, nil
}

func (f *fakePaymentStore) GetByID(_ context.Context, id uuid.UUID) (*model.Payment, error) {
	payment, ok := f.payments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &payment, nil
}

func (f *fakePaymentStore) view(payment model.Payment) model.PaymentView {
	view := model.PaymentView{Payment: payment}
	if record, ok := f.records.records[payment.ServicePackageID]; ok {
		sp := f.records.view(record)
		view.ServicePackage = &sp
	}
	return view
}

func (f *fakePaymentStore) GetView(_ context.Context, id uuid.UUID) (*model.PaymentView, error) {
	payment, ok := f.payments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	view := f.view(payment)
	return &view, nil
}

func (f *fakePaymentStore) ListViews(_ context.Context) ([]model.PaymentView, error) {
	views := make([]model.PaymentView, 0, len(f.order))
	for _, id := range f.order {
		if payment, ok := f.payments[id]; ok {
			views = append(views, f.view(payment))
		}
	}
	return views, nil
}

func (f *fakePaymentStore) ListPaymentsBetween(_ context.Context, from, to time.Time) ([]model.PaymentView, error) {
	views := make([]model.PaymentView, 0)
	for _, id := range f.order {
		payment, ok := f.payments[id]
		if !ok {
			continue
		}
		if payment.PaymentDate.Before(from) || payment.PaymentDate.After(to) {
			continue
		}
		views = append(views, f.view(payment))
	}
	return views, nil
}

func (f *fakePaymentStore) Update(_ context.Context, payment model.Payment) (*model.Payment, error) {
	stored, ok := f.payments[payment.ID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	payment.CreatedAt = stored.CreatedAt
	payment.UpdatedAt = time.Now()
	f.payments[payment.ID] = payment
	return &payment, nil
}

func (f *fakePaymentStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.payments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.payments, id)
	return nil
}

func (f *fakePaymentStore) ExistsByNumber(_ context.Context, paymentNumber string) (bool, error) {
	for _, payment := range f.payments {
		if payment.PaymentNumber == paymentNumber {
			return true, nil
		}
	}
	return false, nil
}
