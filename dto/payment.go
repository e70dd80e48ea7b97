package dto

// CreatePaymentSessionRequest tạo phiên thanh toán cho một đơn đặt phòng
type CreatePaymentSessionRequest struct {
	Code string `json:"code" binding:"required"`
}

// PaymentSessionResponse chứa URL chuyển hướng sang cổng thanh toán
type PaymentSessionResponse struct {
	Code        string  `json:"code"`
	Amount      float64 `json:"amount"`
	RedirectURL string  `json:"redirectUrl"`
}

// PaymentWebhookRequest là payload cổng thanh toán gọi về
type PaymentWebhookRequest struct {
	Code   string `json:"code" binding:"required"`
	Status int    `json:"status"` // 1: thành công, 2: thất bại
}
