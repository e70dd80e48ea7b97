package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Invoice struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	InvoiceCode     string      `json:"invoiceCode" gorm:"unique;size:20"` // mã hóa đơn duy nhất
	ReservationID   uint        `json:"reservationId"`
	Reservation     Reservation `json:"reservation" gorm:"foreignKey:ReservationID"`
	TotalAmount     float64     `json:"totalAmount"`
	PaidAmount      float64     `json:"paidAmount"`
	RemainingAmount float64     `json:"remainingAmount"`
	Status          int         `json:"status"`                // 0: chưa thanh toán, 1: đã thanh toán
	PaymentDate     *time.Time  `json:"paymentDate,omitempty"`
	PaymentType     *int        `json:"paymentType"` // 0: tiền mặt, 1: chuyển khoản, 2: cổng thanh toán
	CreatedAt       time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (invoice *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	invoice.InvoiceCode = fmt.Sprintf("INV%d", time.Now().UnixNano())

	var count int64
	if err := tx.Model(&Invoice{}).Where("invoice_code = ?", invoice.InvoiceCode).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("mã hóa đơn đã tồn tại, hãy thử lại")
	}
	return nil
}
