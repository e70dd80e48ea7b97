package dto

import (
	"time"

	"hms/models"
)

// CreateReservationRequest là DTO cho yêu cầu đặt phòng
type CreateReservationRequest struct {
	UserID        uint     `json:"userId"`
	RoomID        uint     `json:"roomId" binding:"required"`
	CheckInDate   string   `json:"checkInDate" binding:"required"`
	CheckOutDate  string   `json:"checkOutDate" binding:"required"`
	GuestName     string   `json:"guestName,omitempty"`
	GuestEmail    string   `json:"guestEmail,omitempty"`
	GuestPhone    string   `json:"guestPhone,omitempty"`
	ExtraServices []string `json:"extraServices,omitempty"`
}

// ReservationRoomResponse thông tin phòng rút gọn trong đơn
type ReservationRoomResponse struct {
	ID       uint    `json:"id"`
	RoomName string  `json:"roomName"`
	RoomType string  `json:"roomType"`
	Price    float64 `json:"price"`
}

// ReservationResponse là DTO cho response của đơn đặt phòng
type ReservationResponse struct {
	ID             uint                    `json:"id"`
	Code           string                  `json:"code"`
	User           ActorResponse           `json:"user"`
	Room           ReservationRoomResponse `json:"room"`
	CheckInDate    string                  `json:"checkInDate"`
	CheckOutDate   string                  `json:"checkOutDate"`
	Status         int                     `json:"status"`
	ExtraServices  []string                `json:"extraServices,omitempty"`
	EstimatedTotal float64                 `json:"estimatedTotal"`
	Bill           *models.Bill            `json:"bill,omitempty"`
	InvoiceText    string                  `json:"invoiceText,omitempty"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

// ConfirmReservationRequest xác nhận đơn (thanh toán thành công hoặc staff xác nhận tay)
type ConfirmReservationRequest struct {
	Code string `json:"code" binding:"required"`
}

// CheckInRequest nhận phòng
type CheckInRequest struct {
	ID uint `json:"id" binding:"required"`
}

// CheckOutRequest trả phòng
type CheckOutRequest struct {
	ID uint `json:"id" binding:"required"`
}

// CancelReservationRequest hủy đơn
type CancelReservationRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Reason string `json:"reason,omitempty"`
}
