package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hms/config"
	"hms/dto"
	apperrors "hms/errors"
	"hms/models"
	"hms/response"
	"hms/services"
	"hms/utils"
	"hms/validator"
)

const settingCacheKey = "settings:current"

func invalidateSettingCache() {
	rdb, redisErr := config.ConnectRedis()
	if redisErr != nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, rdb, settingCacheKey)
}

// GetSettings trả về cấu hình hệ thống. Lần gọi đầu trên database trống
// sẽ seed cấu hình mặc định để admin có cái sửa.
func GetSettings(c *gin.Context) {
	var setting models.Setting

	rdb, redisErr := config.ConnectRedis()
	if redisErr == nil {
		if err := services.GetFromRedis(config.Ctx, rdb, settingCacheKey, &setting); err == nil && setting.ID != 0 {
			response.Success(c, setting)
			return
		}
	}

	if err := config.DB.First(&setting).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			response.ServerError(c)
			return
		}
		seeded := models.DefaultSetting()
		if err := config.DB.Create(seeded).Error; err != nil {
			response.ServerError(c)
			return
		}
		setting = *seeded
	}

	if redisErr == nil {
		if err := services.SetToRedis(config.Ctx, rdb, settingCacheKey, setting, 30*time.Minute); err != nil {
			utils.LogError("Lỗi khi lưu cấu hình vào Redis: %v", err)
		}
	}

	response.Success(c, setting)
}

// UpdateSettingSection cập nhật từng section của cấu hình. Mỗi section
// được validate riêng trước khi ghi, bảng giá sai không lọt vào hệ thống.
func UpdateSettingSection(c *gin.Context) {
	var request dto.UpdateSettingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var setting models.Setting
	if err := config.DB.First(&setting).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			response.ServerError(c)
			return
		}
		setting = *models.DefaultSetting()
	}

	updated := false

	if request.General != nil {
		setting.General = *request.General
		updated = true
	}
	if request.Policies != nil {
		if request.Policies.CancellationHours < 0 || request.Policies.PendingHoldHours < 0 {
			response.BadRequest(c, "Số giờ trong chính sách không được âm")
			return
		}
		setting.Policies = *request.Policies
		updated = true
	}
	if request.Taxes != nil {
		if err := validator.ValidateTaxSection(request.Taxes); err != nil {
			response.BadRequest(c, apperrors.GetAppError(err).Message)
			return
		}
		setting.Taxes = *request.Taxes
		updated = true
	}
	if request.Notifications != nil {
		if request.Notifications.StaffEmail != "" {
			if err := validator.ValidateEmail(request.Notifications.StaffEmail); err != nil {
				response.BadRequest(c, apperrors.GetAppError(err).Message)
				return
			}
		}
		setting.Notifications = *request.Notifications
		updated = true
	}
	if request.RoomRates != nil {
		if err := validator.ValidateRateSection(request.RoomRates); err != nil {
			response.BadRequest(c, apperrors.GetAppError(err).Message)
			return
		}
		setting.RoomRates = *request.RoomRates
		updated = true
	}
	if request.Extras != nil {
		if err := validator.ValidateExtrasSection(request.Extras); err != nil {
			response.BadRequest(c, apperrors.GetAppError(err).Message)
			return
		}
		setting.Extras = *request.Extras
		updated = true
	}
	if request.Holidays != nil {
		if err := validator.ValidateHolidaySection(request.Holidays); err != nil {
			response.BadRequest(c, apperrors.GetAppError(err).Message)
			return
		}
		setting.Holidays = *request.Holidays
		updated = true
	}

	if !updated {
		response.BadRequest(c, "Không có section nào để cập nhật")
		return
	}

	if err := config.DB.Save(&setting).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateSettingCache()

	response.Success(c, setting)
}
