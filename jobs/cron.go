package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"

	"hms/commands"
	"hms/config"
	"hms/models"
	"hms/services"
	"hms/utils"
)

// ExpirePendingHolds hủy các đơn Pending quá hạn giữ chỗ chưa thanh toán.
// Hạn giữ chỗ lấy từ cấu hình hệ thống, chưa có cấu hình thì bỏ qua lượt chạy.
func ExpirePendingHolds(m *melody.Melody) error {
	var setting models.Setting
	if err := config.DB.First(&setting).Error; err != nil {
		return nil
	}

	holdHours := setting.Policies.PendingHoldHours
	if holdHours <= 0 {
		return nil
	}

	deadline := time.Now().Add(-time.Duration(holdHours) * time.Hour)

	var stale []models.Reservation
	if err := config.DB.
		Where("status = ? AND created_at < ?", models.ReservationStatusPending, deadline).
		Find(&stale).Error; err != nil {
		return err
	}

	for i := range stale {
		reservation := &stale[i]

		state := models.GetReservationState(reservation.Status)
		if err := state.Cancel(reservation); err != nil {
			continue
		}
		reservation.CancelledByName = "Hệ thống"

		if err := commands.NewUpdateReservationCommand(reservation, config.DB).Execute(); err != nil {
			utils.LogError("Lỗi khi hủy đơn quá hạn %s: %v", reservation.Code, err)
			continue
		}

		services.Broadcast(m, fmt.Sprintf("⏰ Đơn %s bị hủy do quá hạn thanh toán", reservation.Code))
		utils.LogInfo("Đã hủy đơn quá hạn giữ chỗ: %s", reservation.Code)
	}

	if len(stale) > 0 {
		rdb, redisErr := config.ConnectRedis()
		if redisErr == nil {
			_ = services.DeleteFromRedis(config.Ctx, rdb, "reservations:all")
		}
	}

	return nil
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Quét đơn giữ chỗ quá hạn mỗi 30 phút
	_, err := c.AddFunc("*/30 * * * *", func() {
		if err := ExpirePendingHolds(m); err != nil {
			log.Printf("Lỗi khi quét đơn giữ chỗ quá hạn: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
