package models

import (
	"fmt"

	"hms/constants"
)

// roomTransitions là bảng chuyển trạng thái phòng theo từng actor.
// Trạng thái phòng chỉ được ghi qua bảng này, không gán tự do.
var roomTransitions = map[int]map[int][]int{
	constants.RoomActorReservation: {
		constants.RoomStatusAvailable: {constants.RoomStatusOccupied},
		constants.RoomStatusClean:     {constants.RoomStatusOccupied},
		constants.RoomStatusOccupied:  {constants.RoomStatusAvailable},
	},
	constants.RoomActorHousekeeping: {
		constants.RoomStatusAvailable: {constants.RoomStatusCleaning},
		constants.RoomStatusClean:     {constants.RoomStatusCleaning},
		constants.RoomStatusCleaning:  {constants.RoomStatusClean},
	},
	constants.RoomActorMaintenance: {
		constants.RoomStatusAvailable:   {constants.RoomStatusMaintenance},
		constants.RoomStatusClean:       {constants.RoomStatusMaintenance},
		constants.RoomStatusCleaning:    {constants.RoomStatusMaintenance},
		constants.RoomStatusMaintenance: {constants.RoomStatusAvailable},
	},
}

var roomStatusNames = map[int]string{
	constants.RoomStatusAvailable:   "Available",
	constants.RoomStatusOccupied:    "Occupied",
	constants.RoomStatusCleaning:    "Cleaning",
	constants.RoomStatusMaintenance: "Maintenance",
	constants.RoomStatusClean:       "Clean",
}

// RoomStatusName trả về tên trạng thái phòng
func RoomStatusName(status int) string {
	if name, ok := roomStatusNames[status]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", status)
}

// CanTransitionRoom kiểm tra actor có được chuyển phòng từ from sang to không
func CanTransitionRoom(actor, from, to int) error {
	byActor, ok := roomTransitions[actor]
	if !ok {
		return fmt.Errorf("actor %d không được phép đổi trạng thái phòng", actor)
	}
	for _, allowed := range byActor[from] {
		if allowed == to {
			return nil
		}
	}
	return fmt.Errorf("không thể chuyển phòng từ %s sang %s", RoomStatusName(from), RoomStatusName(to))
}

// TransitionRoom áp dụng chuyển trạng thái sau khi kiểm tra bảng
func TransitionRoom(room *Room, actor, to int) error {
	if err := CanTransitionRoom(actor, room.Status, to); err != nil {
		return err
	}
	room.Status = to
	return nil
}
