package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPendingStateTransitions(t *testing.T) {
	r := &Reservation{Status: ReservationStatusPending}
	assert.NoError(t, GetReservationState(r.Status).Confirm(r))
	assert.Equal(t, ReservationStatusConfirmed, r.Status)

	r = &Reservation{Status: ReservationStatusPending}
	assert.Error(t, GetReservationState(r.Status).CheckIn(r))
	assert.Equal(t, ReservationStatusPending, r.Status)

	r = &Reservation{Status: ReservationStatusPending}
	assert.Error(t, GetReservationState(r.Status).CheckOut(r))

	r = &Reservation{Status: ReservationStatusPending}
	assert.NoError(t, GetReservationState(r.Status).Cancel(r))
	assert.Equal(t, ReservationStatusCancelled, r.Status)
}

func TestConfirmedStateTransitions(t *testing.T) {
	r := &Reservation{Status: ReservationStatusConfirmed}
	assert.NoError(t, GetReservationState(r.Status).CheckIn(r))
	assert.Equal(t, ReservationStatusCheckedIn, r.Status)

	r = &Reservation{Status: ReservationStatusConfirmed}
	assert.Error(t, GetReservationState(r.Status).CheckOut(r))

	r = &Reservation{Status: ReservationStatusConfirmed}
	assert.NoError(t, GetReservationState(r.Status).Cancel(r))
	assert.Equal(t, ReservationStatusCancelled, r.Status)
}

// Webhook thanh toán có thể gửi trùng, xác nhận đơn đã xác nhận phải là
// no-op chứ không phải lỗi
func TestConfirmIsIdempotent(t *testing.T) {
	r := &Reservation{Status: ReservationStatusConfirmed}
	assert.NoError(t, GetReservationState(r.Status).Confirm(r))
	assert.Equal(t, ReservationStatusConfirmed, r.Status)

	assert.NoError(t, GetReservationState(r.Status).Confirm(r))
	assert.Equal(t, ReservationStatusConfirmed, r.Status)
}

func TestCheckedInStateTransitions(t *testing.T) {
	r := &Reservation{Status: ReservationStatusCheckedIn}
	assert.Error(t, GetReservationState(r.Status).Confirm(r))
	assert.Error(t, GetReservationState(r.Status).CheckIn(r))
	assert.Error(t, GetReservationState(r.Status).Cancel(r))
	assert.Equal(t, ReservationStatusCheckedIn, r.Status)

	assert.NoError(t, GetReservationState(r.Status).CheckOut(r))
	assert.Equal(t, ReservationStatusCheckedOut, r.Status)
}

// CheckedOut và Cancelled là trạng thái kết thúc, mọi thao tác đều bị từ chối
func TestTerminalStates(t *testing.T) {
	for _, status := range []int{ReservationStatusCheckedOut, ReservationStatusCancelled} {
		r := &Reservation{Status: status}
		state := GetReservationState(status)
		assert.Error(t, state.Confirm(r))
		assert.Error(t, state.CheckIn(r))
		assert.Error(t, state.CheckOut(r))
		assert.Error(t, state.Cancel(r))
		assert.Equal(t, status, r.Status)
	}
}

func TestIsBlocking(t *testing.T) {
	assert.True(t, (&Reservation{Status: ReservationStatusPending}).IsBlocking())
	assert.True(t, (&Reservation{Status: ReservationStatusConfirmed}).IsBlocking())
	assert.True(t, (&Reservation{Status: ReservationStatusCheckedIn}).IsBlocking())
	assert.False(t, (&Reservation{Status: ReservationStatusCheckedOut}).IsBlocking())
	assert.False(t, (&Reservation{Status: ReservationStatusCancelled}).IsBlocking())
}
