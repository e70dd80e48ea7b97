package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hms/config"
	"hms/dto"
	"hms/models"
	"hms/response"
)

// GetUsers danh sách tài khoản cho admin, lọc theo role và tìm theo tên
func GetUsers(c *gin.Context) {
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	roleFilter := c.Query("role")
	nameFilter := c.Query("name")

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

	query := config.DB.Model(&models.User{})
	if roleFilter != "" {
		if parsedRole, err := strconv.Atoi(roleFilter); err == nil {
			query = query.Where("role = ?", parsedRole)
		}
	}
	if nameFilter != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(nameFilter)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var users []models.User
	if err := query.Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&users).Error; err != nil {
		response.ServerError(c)
		return
	}

	userResponses := make([]dto.UserResponse, 0)
	for _, user := range users {
		userResponses = append(userResponses, convertToUserResponse(user))
	}

	response.SuccessWithPagination(c, userResponses, page, limit, int(total))
}

// ChangeUserStatus khóa/mở khóa tài khoản (admin)
func ChangeUserStatus(c *gin.Context) {
	var request dto.ChangeUserStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if request.Status != 0 && request.Status != 1 {
		response.BadRequest(c, "Trạng thái tài khoản không hợp lệ")
		return
	}

	var user models.User
	if err := config.DB.First(&user, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	user.Status = request.Status
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToUserResponse(user))
}
