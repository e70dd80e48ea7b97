package controllers

import (
	"fmt"
	"net/url"

	"github.com/gin-gonic/gin"

	"hms/config"
	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/services"
)

// SendPay tạo phiên thanh toán cho một đơn Pending và trả về URL chuyển
// hướng sang cổng thanh toán. Cổng sẽ gọi về PaymentWebhook khi xong.
func SendPay(c *gin.Context) {
	var request dto.CreatePaymentSessionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var reservation models.Reservation
	if err := config.DB.Where("code = ?", request.Code).First(&reservation).Error; err != nil {
		response.NotFound(c)
		return
	}

	if reservation.Status != models.ReservationStatusPending {
		response.Conflict(c, "Chỉ đơn đang chờ thanh toán mới tạo được phiên thanh toán")
		return
	}

	gatewayBase := config.GetEnv("PAYMENT_GATEWAY_URL")
	if gatewayBase == "" {
		gatewayBase = "https://pay.example.com/checkout"
	}

	redirectURL := fmt.Sprintf("%s?code=%s&amount=%.2f",
		gatewayBase, url.QueryEscape(reservation.Code), reservation.EstimatedTotal)

	response.Success(c, dto.PaymentSessionResponse{
		Code:        reservation.Code,
		Amount:      reservation.EstimatedTotal,
		RedirectURL: redirectURL,
	})
}

// PaymentWebhook nhận kết quả từ cổng thanh toán. Thanh toán thành công
// xác nhận đơn, webhook gửi trùng không gây lỗi.
func PaymentWebhook(c *gin.Context) {
	var request dto.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var reservation models.Reservation
	if err := config.DB.Where("code = ?", request.Code).First(&reservation).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Status != 1 {
		services.Broadcast(wsHub, fmt.Sprintf("⚠️ Thanh toán thất bại cho đơn %s", reservation.Code))
		response.Success(c, gin.H{"message": "Đã ghi nhận thanh toán thất bại", "code": reservation.Code})
		return
	}

	state := models.GetReservationState(reservation.Status)
	if err := state.Confirm(&reservation); err != nil {
		response.Conflict(c, err.Error())
		return
	}

	if err := config.DB.Save(&reservation).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.Broadcast(wsHub, fmt.Sprintf("💰 Đơn %s đã thanh toán và được xác nhận", reservation.Code))
	invalidateReservationCaches()

	response.Success(c, gin.H{"message": "Đơn đặt phòng đã được xác nhận", "code": reservation.Code})
}
