package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hms/constants"
)

func TestReservationActorTransitions(t *testing.T) {
	// Nhận phòng: Available/Clean -> Occupied
	room := &Room{Status: constants.RoomStatusAvailable}
	assert.NoError(t, TransitionRoom(room, constants.RoomActorReservation, constants.RoomStatusOccupied))
	assert.Equal(t, constants.RoomStatusOccupied, room.Status)

	room = &Room{Status: constants.RoomStatusClean}
	assert.NoError(t, TransitionRoom(room, constants.RoomActorReservation, constants.RoomStatusOccupied))

	// Trả phòng: Occupied -> Available
	assert.NoError(t, TransitionRoom(room, constants.RoomActorReservation, constants.RoomStatusAvailable))
	assert.Equal(t, constants.RoomStatusAvailable, room.Status)

	// Không nhận khách vào phòng đang dọn hoặc bảo trì
	room = &Room{Status: constants.RoomStatusCleaning}
	assert.Error(t, TransitionRoom(room, constants.RoomActorReservation, constants.RoomStatusOccupied))

	room = &Room{Status: constants.RoomStatusMaintenance}
	assert.Error(t, TransitionRoom(room, constants.RoomActorReservation, constants.RoomStatusOccupied))
}

func TestHousekeepingActorTransitions(t *testing.T) {
	room := &Room{Status: constants.RoomStatusAvailable}
	assert.NoError(t, TransitionRoom(room, constants.RoomActorHousekeeping, constants.RoomStatusCleaning))
	assert.NoError(t, TransitionRoom(room, constants.RoomActorHousekeeping, constants.RoomStatusClean))
	assert.Equal(t, constants.RoomStatusClean, room.Status)

	// Buồng phòng không được đụng vào phòng đang có khách
	room = &Room{Status: constants.RoomStatusOccupied}
	assert.Error(t, TransitionRoom(room, constants.RoomActorHousekeeping, constants.RoomStatusCleaning))

	// Buồng phòng không kết thúc được bảo trì
	room = &Room{Status: constants.RoomStatusMaintenance}
	assert.Error(t, TransitionRoom(room, constants.RoomActorHousekeeping, constants.RoomStatusClean))
}

func TestMaintenanceActorTransitions(t *testing.T) {
	for _, from := range []int{constants.RoomStatusAvailable, constants.RoomStatusClean, constants.RoomStatusCleaning} {
		room := &Room{Status: from}
		assert.NoError(t, TransitionRoom(room, constants.RoomActorMaintenance, constants.RoomStatusMaintenance))
		assert.Equal(t, constants.RoomStatusMaintenance, room.Status)
	}

	room := &Room{Status: constants.RoomStatusMaintenance}
	assert.NoError(t, TransitionRoom(room, constants.RoomActorMaintenance, constants.RoomStatusAvailable))

	// Không đưa phòng đang có khách đi bảo trì
	room = &Room{Status: constants.RoomStatusOccupied}
	assert.Error(t, TransitionRoom(room, constants.RoomActorMaintenance, constants.RoomStatusMaintenance))
}

func TestTransitionRoomRejectsUnknownActor(t *testing.T) {
	room := &Room{Status: constants.RoomStatusAvailable}
	assert.Error(t, TransitionRoom(room, 99, constants.RoomStatusOccupied))
	assert.Equal(t, constants.RoomStatusAvailable, room.Status)
}

func TestFailedTransitionLeavesStatusUnchanged(t *testing.T) {
	room := &Room{Status: constants.RoomStatusOccupied}
	_ = TransitionRoom(room, constants.RoomActorHousekeeping, constants.RoomStatusCleaning)
	assert.Equal(t, constants.RoomStatusOccupied, room.Status)
}

func TestIsBookable(t *testing.T) {
	assert.True(t, (&Room{Status: constants.RoomStatusAvailable}).IsBookable())
	assert.True(t, (&Room{Status: constants.RoomStatusClean}).IsBookable())
	assert.False(t, (&Room{Status: constants.RoomStatusOccupied}).IsBookable())
	assert.False(t, (&Room{Status: constants.RoomStatusCleaning}).IsBookable())
	assert.False(t, (&Room{Status: constants.RoomStatusMaintenance}).IsBookable())
}

func TestRoomStatusName(t *testing.T) {
	assert.Equal(t, "Available", RoomStatusName(constants.RoomStatusAvailable))
	assert.Equal(t, "Occupied", RoomStatusName(constants.RoomStatusOccupied))
	assert.Equal(t, "Unknown(42)", RoomStatusName(42))
}
