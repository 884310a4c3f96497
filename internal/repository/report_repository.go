package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/smartpack/carwash-service/internal/model"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// ListPaymentsBetween returns hydrated payments whose payment date falls
// inside [from, to], both bounds inclusive.
func (r *ReportRepository) ListPaymentsBetween(ctx context.Context, from, to time.Time) ([]model.PaymentView, error) {
	var rows []paymentViewRow
	err := r.db.WithContext(ctx).Raw(paymentViewQuery+`
		WHERE p.payment_date >= ? AND p.payment_date <= ?
		ORDER BY p.created_at ASC
	`, from, to).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	views := make([]model.PaymentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.toView())
	}
	return views, nil
}
