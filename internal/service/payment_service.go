package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smartpack/carwash-service/internal/model"
)

type PaymentStore interface {
	Create(ctx context.Context, payment model.Payment) (*model.Payment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Payment, error)
	GetView(ctx context.Context, id uuid.UUID) (*model.PaymentView, error)
	ListViews(ctx context.Context) ([]model.PaymentView, error)
	Update(ctx context.Context, payment model.Payment) (*model.Payment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByNumber(ctx context.Context, paymentNumber string) (bool, error)
}

type ServicePackageLookup interface {
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type PaymentService struct {
	store   PaymentStore
	records ServicePackageLookup
}

func NewPaymentService(store PaymentStore, records ServicePackageLookup) *PaymentService {
	return &PaymentService{store: store, records: records}
}

type CreatePaymentInput struct {
	PaymentNumber    string
	AmountPaid       float64
	PaymentDate      time.Time
	ServicePackageID uuid.UUID
}

// Create validates the referenced service record before writing. The
// check and the insert are separate statements, so a concurrent delete
// can still leave the new payment dangling; reads tolerate that.
func (s *PaymentService) Create(ctx context.Context, input CreatePaymentInput) (*model.PaymentView, error) {
	payment := model.Payment{
		AmountPaid:       input.AmountPaid,
		PaymentDate:      input.PaymentDate,
		ServicePackageID: input.ServicePackageID,
	}
	var err error
	if payment.PaymentNumber, err = requireText("paymentNumber", input.PaymentNumber); err != nil {
		return nil, err
	}
	if err = requireAmount("amountPaid", input.AmountPaid); err != nil {
		return nil, err
	}
	if err = requireID("servicePackageId", input.ServicePackageID); err != nil {
		return nil, err
	}
	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = time.Now()
	}

	taken, err := s.store.ExistsByNumber(ctx, payment.PaymentNumber)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: payment number already in use", ErrInvalidInput)
	}

	exists, err := s.records.ExistsByID(ctx, payment.ServicePackageID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("service package %w", ErrNotFound)
	}

	created, err := s.store.Create(ctx, payment)
	if err != nil {
		return nil, err
	}
	view, err := s.store.GetView(ctx, created.ID)
	if err != nil {
		return nil, fromStore(err)
	}
	return view, nil
}

func (s *PaymentService) Get(ctx context.Context, id uuid.UUID) (*model.PaymentView, error) {
	view, err := s.store.GetView(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	return view, nil
}

func (s *PaymentService) List(ctx context.Context) ([]model.PaymentView, error) {
	return s.store.ListViews(ctx)
}

func (s *PaymentService) Update(ctx context.Context, id uuid.UUID, patch model.PaymentPatch) (*model.PaymentView, error) {
	payment, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}

	if patch.PaymentNumber != nil {
		if payment.PaymentNumber, err = requireText("paymentNumber", *patch.PaymentNumber); err != nil {
			return nil, err
		}
	}
	if patch.AmountPaid != nil {
		if err = requireAmount("amountPaid", *patch.AmountPaid); err != nil {
			return nil, err
		}
		payment.AmountPaid = *patch.AmountPaid
	}
	if patch.PaymentDate != nil {
		payment.PaymentDate = *patch.PaymentDate
	}
	if patch.ServicePackageID != nil {
		if err = requireID("servicePackageId", *patch.ServicePackageID); err != nil {
			return nil, err
		}
		exists, err := s.records.ExistsByID(ctx, *patch.ServicePackageID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("service package %w", ErrNotFound)
		}
		payment.ServicePackageID = *patch.ServicePackageID
	}

	if _, err := s.store.Update(ctx, *payment); err != nil {
		return nil, fromStore(err)
	}
	view, err := s.store.GetView(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	return view, nil
}

func (s *PaymentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fromStore(err)
	}
	return nil
}
