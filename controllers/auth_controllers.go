package controllers

import (
	"context"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"

	"hms/config"
	"hms/constants"
	"hms/dto"
	apperrors "hms/errors"
	"hms/models"
	"hms/response"
	"hms/services"
	"hms/validator"
)

func convertToUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		Status:      user.Status,
	}
}

// Register đăng ký tài khoản khách mới
func Register(c *gin.Context) {
	var request dto.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user := models.User{
		Name:        request.Name,
		Email:       request.Email,
		Password:    request.Password,
		PhoneNumber: request.PhoneNumber,
		Role:        constants.RoleGuest,
		Status:      1,
	}

	if err := validator.ValidateUser(&user); err != nil {
		response.BadRequest(c, apperrors.GetAppError(err).Message)
		return
	}

	var count int64
	if err := config.DB.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		response.ServerError(c)
		return
	}
	if count > 0 {
		response.Conflict(c, "Email đã được đăng ký")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		response.ServerError(c)
		return
	}
	user.Password = string(hashedPassword)

	if err := config.DB.Create(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToUserResponse(user))
}

// Login đăng nhập bằng email và mật khẩu
func Login(c *gin.Context) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", request.Email).First(&user).Error; err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không đúng")
		return
	}

	if user.Status == 0 {
		response.Forbidden(c)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không đúng")
		return
	}

	accessToken, err := services.GenerateToken(&user, 60*24)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"user_info":   convertToUserResponse(user),
		"accessToken": accessToken,
	})
}

// verifyGoogleIDToken xác thực ID token từ Google
func verifyGoogleIDToken(tokenId string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	payload, err := idtoken.Validate(context.Background(), tokenId, clientID)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// AuthGoogle đăng nhập bằng tài khoản Google, tự tạo tài khoản lần đầu
func AuthGoogle(c *gin.Context) {
	var request dto.GoogleAuthRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	payload, err := verifyGoogleIDToken(request.IDToken)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	googleID := payload.Subject

	if email == "" {
		response.BadRequest(c, "Token Google không chứa email")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		user = models.User{
			Name:       name,
			Email:      email,
			Role:       constants.RoleGuest,
			Status:     1,
			IsVerified: true,
			GoogleID:   googleID,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			response.ServerError(c)
			return
		}
	} else if user.GoogleID == "" {
		user.GoogleID = googleID
		user.IsVerified = true
		if err := config.DB.Save(&user).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	if user.Status == 0 {
		response.Forbidden(c)
		return
	}

	accessToken, err := services.GenerateToken(&user, 60*24)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"user_info":   convertToUserResponse(user),
		"accessToken": accessToken,
	})
}

// GetProfile thông tin tài khoản đang đăng nhập
func GetProfile(c *gin.Context) {
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

	var user models.User
	if err := config.DB.First(&user, currentUserID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToUserResponse(user))
}
