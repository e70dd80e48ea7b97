package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"hms/config"
	"hms/dto"
	apperrors "hms/errors"
	"hms/models"
	"hms/response"
	"hms/services"
	"hms/utils"
	"hms/validator"
)

// CreateContact nhận tin nhắn từ form liên hệ, chuyển tiếp cho nhân viên
// qua email nếu có cấu hình
func CreateContact(c *gin.Context) {
	var request dto.CreateContactRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateContact(&request); err != nil {
		response.BadRequest(c, apperrors.GetAppError(err).Message)
		return
	}

	contact := models.Contact{
		Name:    request.Name,
		Email:   request.Email,
		Phone:   request.Phone,
		Subject: request.Subject,
		Message: request.Message,
	}

	if err := config.DB.Create(&contact).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Chuyển tiếp cho nhân viên, lỗi gửi mail không làm fail request
	if setting, err := loadSetting(config.DB); err == nil && setting.Notifications.EmailEnabled && setting.Notifications.StaffEmail != "" {
		if err := services.SendContactEmail(setting.Notifications.StaffEmail, contact.Name, contact.Email, contact.Subject, contact.Message); err != nil {
			utils.LogError("Gửi email liên hệ không thành công: %v", err)
		}
	}

	response.Success(c, gin.H{"message": "Đã gửi liên hệ thành công"})
}

// GetContacts danh sách liên hệ cho nhân viên
func GetContacts(c *gin.Context) {
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
	if err := config.DB.Model(&models.Contact{}).Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var contacts []models.Contact
	if err := config.DB.Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&contacts).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, contacts, page, limit, int(total))
}

// ResolveContact đánh dấu liên hệ đã xử lý
func ResolveContact(c *gin.Context) {
	contactId := c.Param("id")

	var contact models.Contact
	if err := config.DB.First(&contact, contactId).Error; err != nil {
		response.NotFound(c)
		return
	}

	contact.Resolved = true
	if err := config.DB.Save(&contact).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, contact)
}
