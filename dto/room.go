package dto

import "encoding/json"

// CreateRoomRequest là DTO cho yêu cầu tạo phòng
type CreateRoomRequest struct {
	RoomName    string          `json:"roomName" binding:"required"`
	RoomType    string          `json:"roomType" binding:"required"`
	Price       float64         `json:"price"`
	Description string          `json:"description"`
	People      int             `json:"people"`
	NumBed      int             `json:"numBed"`
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img"`
}

// UpdateRoomRequest là DTO cho yêu cầu cập nhật phòng
type UpdateRoomRequest struct {
	RoomId      uint            `json:"id" binding:"required"`
	RoomName    string          `json:"roomName"`
	RoomType    string          `json:"roomType"`
	Price       float64         `json:"price"`
	Description string          `json:"description"`
	People      int             `json:"people"`
	NumBed      int             `json:"numBed"`
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img"`
}

// ChangeRoomStatusRequest chuyển trạng thái phòng (housekeeping/bảo trì)
type ChangeRoomStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

// RoomResponse là DTO cho response của phòng
type RoomResponse struct {
	ID          uint            `json:"id"`
	RoomName    string          `json:"roomName"`
	RoomType    string          `json:"roomType"`
	Price       float64         `json:"price"`
	Description string          `json:"description"`
	Status      int             `json:"status"`
	StatusName  string          `json:"statusName"`
	People      int             `json:"people"`
	NumBed      int             `json:"numBed"`
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img"`
}
