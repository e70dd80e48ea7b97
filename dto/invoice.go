package dto

import "time"

// InvoiceResponse là DTO cho response của hóa đơn
type InvoiceResponse struct {
	ID              uint       `json:"id"`
	InvoiceCode     string     `json:"invoiceCode"`
	ReservationID   uint       `json:"reservationId"`
	ReservationCode string     `json:"reservationCode"`
	Guest           ActorResponse `json:"guest"`
	TotalAmount     float64    `json:"totalAmount"`
	PaidAmount      float64    `json:"paidAmount"`
	RemainingAmount float64    `json:"remainingAmount"`
	Status          int        `json:"status"`
	PaymentDate     *time.Time `json:"paymentDate,omitempty"`
	PaymentType     *int       `json:"paymentType"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// UpdatePaymentStatusRequest cập nhật thanh toán hóa đơn
type UpdatePaymentStatusRequest struct {
	ID          uint    `json:"id" binding:"required"`
	PaidAmount  float64 `json:"paidAmount"`
	PaymentType *int    `json:"paymentType"`
}
