package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hms/config"
	"hms/dto"
	apperrors "hms/errors"
	"hms/models"
	"hms/response"
	"hms/services"
	"hms/validator"
)

func convertToFeedbackResponse(feedback models.Feedback) dto.FeedbackResponse {
	var user dto.ActorResponse
	if feedback.User != nil {
		user = dto.ActorResponse{Name: feedback.User.Name, Email: feedback.User.Email, PhoneNumber: feedback.User.PhoneNumber}
	}
	return dto.FeedbackResponse{
		ID:            feedback.ID,
		ReservationID: feedback.ReservationID,
		User:          user,
		Star:          feedback.Star,
		Comment:       feedback.Comment,
		CreatedAt:     feedback.CreatedAt,
	}
}

// CreateFeedback gửi đánh giá cho một kỳ lưu trú đã trả phòng.
// Mỗi đơn chỉ được đánh giá một lần.
func CreateFeedback(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, _, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var request dto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateFeedback(&request); err != nil {
		response.BadRequest(c, apperrors.GetAppError(err).Message)
		return
	}

	var reservation models.Reservation
	if err := config.DB.First(&reservation, request.ReservationID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if reservation.Status != models.ReservationStatusCheckedOut {
		response.BadRequest(c, "Chỉ được đánh giá sau khi trả phòng")
		return
	}

	if reservation.UserID == nil || *reservation.UserID != currentUserID {
		response.Forbidden(c)
		return
	}

	var count int64
	if err := config.DB.Model(&models.Feedback{}).Where("reservation_id = ?", request.ReservationID).Count(&count).Error; err != nil {
		response.ServerError(c)
		return
	}
	if count > 0 {
		response.Conflict(c, "Đơn đặt phòng này đã được đánh giá")
		return
	}

	feedback := models.Feedback{
		ReservationID: request.ReservationID,
		UserID:        &currentUserID,
		Star:          request.Star,
		Comment:       request.Comment,
	}

	if err := config.DB.Create(&feedback).Error; err != nil {
		// unique index trên reservation_id chặn race hai request cùng lúc
		response.Conflict(c, "Đơn đặt phòng này đã được đánh giá")
		return
	}

	if err := config.DB.Preload("User").First(&feedback, feedback.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToFeedbackResponse(feedback))
}

// GetFeedbacks danh sách đánh giá, phân trang
func GetFeedbacks(c *gin.Context) {
	pageStr := c.Query("page")
	limitStr := c.Query("limit")

	page := 0
	limit := 10
	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	var total int64
	if err := config.DB.Model(&models.Feedback{}).Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var feedbacks []models.Feedback
	if err := config.DB.Preload("User").
		Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&feedbacks).Error; err != nil {
		response.ServerError(c)
		return
	}

	feedbackResponses := make([]dto.FeedbackResponse, 0)
	for _, feedback := range feedbacks {
		feedbackResponses = append(feedbackResponses, convertToFeedbackResponse(feedback))
	}

	response.SuccessWithPagination(c, feedbackResponses, page, limit, int(total))
}
