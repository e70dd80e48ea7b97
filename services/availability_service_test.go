package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hms/constants"
	"hms/models"
	"hms/utils"
)

func blockingReservation(roomID uint, checkIn, checkOut string, status int) models.Reservation {
	return models.Reservation{
		RoomID:       roomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       status,
	}
}

func TestBusyRoomIDsOverlapCases(t *testing.T) {
	reservations := []models.Reservation{
		blockingReservation(1, "2026-03-10", "2026-03-15", models.ReservationStatusConfirmed),
		blockingReservation(2, "2026-03-15", "2026-03-20", models.ReservationStatusConfirmed),
		blockingReservation(3, "2026-03-01", "2026-03-05", models.ReservationStatusConfirmed),
	}

	busy := BusyRoomIDs(reservations, mustDate(t, "2026-03-12"), mustDate(t, "2026-03-16"))

	assert.True(t, busy[1])  // giao một phần
	assert.True(t, busy[2])  // giao đêm 15
	assert.False(t, busy[3]) // tách rời
}

// Trả phòng đúng ngày khách sau nhận phòng không tính trùng lịch
func TestBusyRoomIDsBackToBackStays(t *testing.T) {
	reservations := []models.Reservation{
		blockingReservation(1, "2026-03-10", "2026-03-15", models.ReservationStatusConfirmed),
	}

	busy := BusyRoomIDs(reservations, mustDate(t, "2026-03-15"), mustDate(t, "2026-03-20"))
	assert.False(t, busy[1])

	busy = BusyRoomIDs(reservations, mustDate(t, "2026-03-05"), mustDate(t, "2026-03-10"))
	assert.False(t, busy[1])
}

// Đơn Pending vẫn giữ phòng, đơn Cancelled/CheckedOut thì không
func TestBusyRoomIDsStatusFilter(t *testing.T) {
	checkIn, checkOut := mustDate(t, "2026-03-12"), mustDate(t, "2026-03-14")

	for _, tc := range []struct {
		status int
		busy   bool
	}{
		{models.ReservationStatusPending, true},
		{models.ReservationStatusConfirmed, true},
		{models.ReservationStatusCheckedIn, true},
		{models.ReservationStatusCheckedOut, false},
		{models.ReservationStatusCancelled, false},
	} {
		reservations := []models.Reservation{
			blockingReservation(1, "2026-03-10", "2026-03-15", tc.status),
		}
		busy := BusyRoomIDs(reservations, checkIn, checkOut)
		assert.Equal(t, tc.busy, busy[1], "status %d", tc.status)
	}
}

// So sánh kết quả với duyệt từng đêm: hai khoảng giao nhau khi và chỉ khi
// có ít nhất một đêm chung
func TestBusyRoomIDsMatchesBruteForce(t *testing.T) {
	base := mustDate(t, "2026-03-01")

	overlapByNights := func(aIn, aOut, bIn, bOut utils.CalendarDate) bool {
		for d := aIn; d.Before(aOut); d = d.AddDays(1) {
			if !d.Before(bIn) && d.Before(bOut) {
				return true
			}
		}
		return false
	}

	for aStart := 0; aStart < 8; aStart++ {
		for aLen := 1; aLen <= 4; aLen++ {
			for bStart := 0; bStart < 8; bStart++ {
				for bLen := 1; bLen <= 4; bLen++ {
					aIn, aOut := base.AddDays(aStart), base.AddDays(aStart+aLen)
					bIn, bOut := base.AddDays(bStart), base.AddDays(bStart+bLen)

					reservations := []models.Reservation{
						blockingReservation(1, bIn.String(), bOut.String(), models.ReservationStatusConfirmed),
					}
					busy := BusyRoomIDs(reservations, aIn, aOut)

					expected := overlapByNights(aIn, aOut, bIn, bOut)
					require.Equal(t, expected, busy[1],
						"[%s,%s) vs [%s,%s)", aIn, aOut, bIn, bOut)
				}
			}
		}
	}
}

func TestFilterAvailableRooms(t *testing.T) {
	rooms := []models.Room{
		{RoomId: 1, RoomName: "101", Status: constants.RoomStatusAvailable},
		{RoomId: 2, RoomName: "102", Status: constants.RoomStatusClean},
		{RoomId: 3, RoomName: "103", Status: constants.RoomStatusMaintenance},
		{RoomId: 4, RoomName: "104", Status: constants.RoomStatusAvailable},
	}
	reservations := []models.Reservation{
		blockingReservation(1, "2026-03-10", "2026-03-15", models.ReservationStatusConfirmed),
		blockingReservation(2, "2026-03-01", "2026-03-05", models.ReservationStatusConfirmed),
		blockingReservation(4, "2026-03-08", "2026-03-12", models.ReservationStatusCancelled),
	}

	available := FilterAvailableRooms(rooms, reservations, mustDate(t, "2026-03-09"), mustDate(t, "2026-03-11"))

	ids := make([]uint, 0)
	for _, room := range available {
		ids = append(ids, room.RoomId)
	}

	// Phòng 1 trùng lịch, phòng 3 đang bảo trì, phòng 4 chỉ dính đơn đã hủy
	assert.Equal(t, []uint{2, 4}, ids)
}

// Kết quả tìm phòng trống phải đầy đủ: mọi phòng nhận khách được và không
// trùng lịch đều phải có mặt
func TestFilterAvailableRoomsCompleteness(t *testing.T) {
	rooms := []models.Room{
		{RoomId: 1, Status: constants.RoomStatusAvailable},
		{RoomId: 2, Status: constants.RoomStatusAvailable},
		{RoomId: 3, Status: constants.RoomStatusAvailable},
	}
	var reservations []models.Reservation

	available := FilterAvailableRooms(rooms, reservations, mustDate(t, "2026-03-09"), mustDate(t, "2026-03-11"))
	assert.Len(t, available, 3)
}

func TestBusyRoomIDsSkipsMalformedDates(t *testing.T) {
	reservations := []models.Reservation{
		blockingReservation(1, "không phải ngày", "2026-03-15", models.ReservationStatusConfirmed),
	}
	busy := BusyRoomIDs(reservations, mustDate(t, "2026-03-09"), mustDate(t, "2026-03-11"))
	assert.False(t, busy[1])
}
