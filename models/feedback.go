package models

import "time"

// Feedback đánh giá của khách cho một kỳ lưu trú, mỗi đơn chỉ một lần
type Feedback struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	ReservationID uint      `json:"reservationId" gorm:"uniqueIndex"`
	UserID        *uint     `json:"userId"`
	User          *User     `json:"user" gorm:"foreignKey:UserID"`
	Star          int       `json:"star"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
