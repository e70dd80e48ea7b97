package models

import "errors"

// ReservationState định nghĩa interface cho các trạng thái đặt phòng
type ReservationState interface {
	Confirm(r *Reservation) error
	CheckIn(r *Reservation) error
	CheckOut(r *Reservation) error
	Cancel(r *Reservation) error
}

// PendingState trạng thái chờ thanh toán
type PendingState struct{}

func (s *PendingState) Confirm(r *Reservation) error {
	r.Status = ReservationStatusConfirmed
	return nil
}

func (s *PendingState) CheckIn(r *Reservation) error {
	return errors.New("đơn chưa được xác nhận, không thể nhận phòng")
}

func (s *PendingState) CheckOut(r *Reservation) error {
	return errors.New("đơn chưa nhận phòng, không thể trả phòng")
}

func (s *PendingState) Cancel(r *Reservation) error {
	r.Status = ReservationStatusCancelled
	return nil
}

// ConfirmedState trạng thái đã xác nhận
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(r *Reservation) error {
	// Xác nhận lặp lại (webhook gửi trùng) là no-op
	return nil
}

func (s *ConfirmedState) CheckIn(r *Reservation) error {
	r.Status = ReservationStatusCheckedIn
	return nil
}

func (s *ConfirmedState) CheckOut(r *Reservation) error {
	return errors.New("đơn chưa nhận phòng, không thể trả phòng")
}

func (s *ConfirmedState) Cancel(r *Reservation) error {
	r.Status = ReservationStatusCancelled
	return nil
}

// CheckedInState trạng thái khách đang ở
type CheckedInState struct{}

func (s *CheckedInState) Confirm(r *Reservation) error {
	return errors.New("khách đã nhận phòng, không thể xác nhận lại")
}

func (s *CheckedInState) CheckIn(r *Reservation) error {
	return errors.New("khách đã nhận phòng rồi")
}

func (s *CheckedInState) CheckOut(r *Reservation) error {
	r.Status = ReservationStatusCheckedOut
	return nil
}

func (s *CheckedInState) Cancel(r *Reservation) error {
	return errors.New("khách đang ở, không thể hủy đơn")
}

// CheckedOutState trạng thái đã trả phòng (kết thúc)
type CheckedOutState struct{}

func (s *CheckedOutState) Confirm(r *Reservation) error {
	return errors.New("đơn đã trả phòng")
}

func (s *CheckedOutState) CheckIn(r *Reservation) error {
	return errors.New("đơn đã trả phòng, không thể nhận phòng lại")
}

func (s *CheckedOutState) CheckOut(r *Reservation) error {
	return errors.New("đơn đã trả phòng rồi")
}

func (s *CheckedOutState) Cancel(r *Reservation) error {
	return errors.New("đơn đã trả phòng, không thể hủy")
}

// CancelledState trạng thái đã hủy (kết thúc)
type CancelledState struct{}

func (s *CancelledState) Confirm(r *Reservation) error {
	return errors.New("đơn đã hủy, không thể xác nhận")
}

func (s *CancelledState) CheckIn(r *Reservation) error {
	return errors.New("đơn đã hủy, không thể nhận phòng")
}

func (s *CancelledState) CheckOut(r *Reservation) error {
	return errors.New("đơn đã hủy, không thể trả phòng")
}

func (s *CancelledState) Cancel(r *Reservation) error {
	return errors.New("đơn đã hủy rồi")
}

// GetReservationState trả về state tương ứng với trạng thái đơn
func GetReservationState(status int) ReservationState {
	switch status {
	case ReservationStatusPending:
		return &PendingState{}
	case ReservationStatusConfirmed:
		return &ConfirmedState{}
	case ReservationStatusCheckedIn:
		return &CheckedInState{}
	case ReservationStatusCheckedOut:
		return &CheckedOutState{}
	case ReservationStatusCancelled:
		return &CancelledState{}
	default:
		return &PendingState{}
	}
}
