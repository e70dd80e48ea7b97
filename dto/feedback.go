package dto

import "time"

// CreateFeedbackRequest là DTO cho yêu cầu gửi đánh giá
type CreateFeedbackRequest struct {
	ReservationID uint   `json:"reservationId" binding:"required"`
	Star          int    `json:"star" binding:"required"`
	Comment       string `json:"comment"`
}

// FeedbackResponse là DTO cho response của đánh giá
type FeedbackResponse struct {
	ID            uint      `json:"id"`
	ReservationID uint      `json:"reservationId"`
	User          ActorResponse `json:"user"`
	Star          int       `json:"star"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"createdAt"`
}
