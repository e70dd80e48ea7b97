package builders

import (
	"encoding/json"

	"hms/models"
)

// ReservationBuilder giúp tạo đơn đặt phòng theo từng bước
type ReservationBuilder struct {
	reservation *models.Reservation
}

// NewReservationBuilder tạo instance mới của ReservationBuilder
func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		reservation: &models.Reservation{},
	}
}

// WithUser thêm thông tin user
func (b *ReservationBuilder) WithUser(userID uint) *ReservationBuilder {
	b.reservation.UserID = &userID
	return b
}

// WithRoom thêm thông tin phòng
func (b *ReservationBuilder) WithRoom(roomID uint) *ReservationBuilder {
	b.reservation.RoomID = roomID
	return b
}

// WithStatus thêm trạng thái
func (b *ReservationBuilder) WithStatus(status int) *ReservationBuilder {
	b.reservation.Status = status
	return b
}

// WithGuestInfo thêm thông tin khách
func (b *ReservationBuilder) WithGuestInfo(guestName, guestPhone, guestEmail string) *ReservationBuilder {
	b.reservation.GuestName = guestName
	b.reservation.GuestPhone = guestPhone
	b.reservation.GuestEmail = guestEmail
	return b
}

// WithCheckIn thêm ngày nhận phòng
func (b *ReservationBuilder) WithCheckIn(checkIn string) *ReservationBuilder {
	b.reservation.CheckInDate = checkIn
	return b
}

// WithCheckOut thêm ngày trả phòng
func (b *ReservationBuilder) WithCheckOut(checkOut string) *ReservationBuilder {
	b.reservation.CheckOutDate = checkOut
	return b
}

// WithExtraServices thêm dịch vụ kèm theo
func (b *ReservationBuilder) WithExtraServices(names []string) *ReservationBuilder {
	if len(names) > 0 {
		if raw, err := json.Marshal(names); err == nil {
			b.reservation.ExtraServices = raw
		}
	}
	return b
}

// WithEstimatedTotal thêm giá ước tính
func (b *ReservationBuilder) WithEstimatedTotal(total float64) *ReservationBuilder {
	b.reservation.EstimatedTotal = total
	return b
}

// Build tạo đơn hoàn chỉnh
func (b *ReservationBuilder) Build() *models.Reservation {
	return b.reservation
}
