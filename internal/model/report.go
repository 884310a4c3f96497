package model

// DailyReport summarizes the payments of one calendar day.
// Date is the day in ISO form (YYYY-MM-DD).
type DailyReport struct {
	Date           string        `json:"date"`
	TotalAmount    float64       `json:"totalAmount"`
	Count          int           `json:"count"`
	AveragePayment float64       `json:"averagePayment"`
	Payments       []PaymentView `json:"payments"`
}
