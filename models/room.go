package models

import (
	"encoding/json"
	"fmt"
	"time"

	"hms/constants"
)

type Room struct {
	RoomId      uint            `json:"id" gorm:"primaryKey"`
	RoomName    string          `json:"roomName"`
	RoomType    string          `json:"roomType"` // tên loại phòng, khớp với bảng giá trong settings
	Price       float64         `json:"price"`    // giá cố định cũ, chỉ dùng khi loại phòng chưa có bảng giá
	Description string          `json:"description"`
	Status      int             `json:"status" gorm:"default:0"`
	People      int             `json:"people"`
	NumBed      int             `json:"numBed"`
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img" gorm:"type:json"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Room) ValidateStatus() error {
	if r.Status < constants.RoomStatusAvailable || r.Status > constants.RoomStatusClean {
		return fmt.Errorf("invalid status: %d, must be between %d and %d", r.Status, constants.RoomStatusAvailable, constants.RoomStatusClean)
	}
	return nil
}

// IsBookable kiểm tra phòng có thể nhận đặt mới không
func (r *Room) IsBookable() bool {
	return r.Status == constants.RoomStatusAvailable || r.Status == constants.RoomStatusClean
}
