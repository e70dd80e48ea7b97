package controllers

import (
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hms/config"
	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/services"
	"hms/utils"
)

func convertToInvoiceResponse(invoice models.Invoice) dto.InvoiceResponse {
	var guest dto.ActorResponse
	if invoice.Reservation.UserID != nil && invoice.Reservation.User != nil {
		guest = dto.ActorResponse{Name: invoice.Reservation.User.Name, Email: invoice.Reservation.User.Email, PhoneNumber: invoice.Reservation.User.PhoneNumber}
	} else {
		guest = dto.ActorResponse{Name: invoice.Reservation.GuestName, Email: invoice.Reservation.GuestEmail, PhoneNumber: invoice.Reservation.GuestPhone}
	}

	return dto.InvoiceResponse{
		ID:              invoice.ID,
		InvoiceCode:     invoice.InvoiceCode,
		ReservationID:   invoice.ReservationID,
		ReservationCode: invoice.Reservation.Code,
		Guest:           guest,
		TotalAmount:     invoice.TotalAmount,
		PaidAmount:      invoice.PaidAmount,
		RemainingAmount: invoice.RemainingAmount,
		Status:          invoice.Status,
		PaymentDate:     invoice.PaymentDate,
		PaymentType:     invoice.PaymentType,
		CreatedAt:       invoice.CreatedAt,
	}
}

// GetInvoices danh sách hóa đơn cho nhân viên, có lọc và phân trang.
// Cache theo từng bộ lọc trạng thái (invoices:all, invoices:status:<n>),
// khi hóa đơn đổi thì xóa cả cụm bằng pattern invoices:*
func GetInvoices(c *gin.Context) {
	statusFilter := c.Query("status")

	cacheKey := "invoices:all"
	query := config.DB.Preload("Reservation").Preload("Reservation.User")
	if statusFilter != "" {
		if parsedStatus, err := strconv.Atoi(statusFilter); err == nil {
			cacheKey = "invoices:status:" + statusFilter
			query = query.Where("status = ?", parsedStatus)
		}
	}

	var allInvoices []models.Invoice

	rdb, redisErr := config.ConnectRedis()
	if redisErr != nil {
		utils.LogError("Không kết nối được Redis: %v", redisErr)
	}

	if redisErr != nil || services.GetFromRedis(config.Ctx, rdb, cacheKey, &allInvoices) != nil || len(allInvoices) == 0 {
		if err := query.Find(&allInvoices).Error; err != nil {
			response.ServerError(c)
			return
		}
		if redisErr == nil {
			if err := services.SetToRedis(config.Ctx, rdb, cacheKey, allInvoices, 10*time.Minute); err != nil {
				utils.LogError("Lỗi khi lưu danh sách hóa đơn vào Redis: %v", err)
			}
		}
	}

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

	filtered := allInvoices
	total := len(filtered)

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.Invoice{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	invoiceResponses := make([]dto.InvoiceResponse, 0)
	for _, invoice := range filtered {
		invoiceResponses = append(invoiceResponses, convertToInvoiceResponse(invoice))
	}

	response.SuccessWithPagination(c, invoiceResponses, page, limit, total)
}

// GetInvoiceDetail chi tiết một hóa đơn, kèm bản in đã chốt lúc trả phòng
func GetInvoiceDetail(c *gin.Context) {
	invoiceId := c.Param("id")

	var invoice models.Invoice
	if err := config.DB.Preload("Reservation").Preload("Reservation.User").
		Where("id = ?", invoiceId).
		First(&invoice).Error; err != nil {
		response.NotFound(c)
		return
	}

	resp := convertToInvoiceResponse(invoice)

	response.Success(c, gin.H{
		"invoice":     resp,
		"invoiceText": invoice.Reservation.InvoiceText,
	})
}

// UpdatePaymentStatus ghi nhận thanh toán cho hóa đơn
func UpdatePaymentStatus(c *gin.Context) {
	var request dto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if request.PaidAmount <= 0 {
		response.BadRequest(c, "Số tiền thanh toán phải lớn hơn 0")
		return
	}

	var invoice models.Invoice
	if err := config.DB.Preload("Reservation").Preload("Reservation.User").First(&invoice, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.PaidAmount > invoice.RemainingAmount {
		response.BadRequest(c, "Số tiền thanh toán vượt quá số tiền còn lại")
		return
	}

	invoice.PaidAmount += request.PaidAmount
	invoice.RemainingAmount = invoice.TotalAmount - invoice.PaidAmount
	invoice.PaymentType = request.PaymentType

	if invoice.RemainingAmount <= 0 {
		invoice.Status = 1
		now := time.Now()
		invoice.PaymentDate = &now
	}

	if err := config.DB.Save(&invoice).Error; err != nil {
		response.ServerError(c)
		return
	}

	rdb, redisErr := config.ConnectRedis()
	if redisErr == nil {
		_ = services.DeleteKeysByPattern(config.Ctx, rdb, "invoices:*")
	}

	response.Success(c, convertToInvoiceResponse(invoice))
}
