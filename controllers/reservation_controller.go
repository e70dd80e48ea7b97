package controllers

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"gorm.io/gorm"

	"hms/builders"
	"hms/config"
	"hms/constants"
	"hms/dto"
	apperrors "hms/errors"
	"hms/models"
	"hms/response"
	"hms/services"
	"hms/utils"
	"hms/validator"
)

// wsHub nhận thông báo realtime cho dashboard nhân viên
var wsHub *melody.Melody

// SetNotifier gắn melody instance cho các controller
func SetNotifier(m *melody.Melody) {
	wsHub = m
}

func convertToReservationRoomResponse(room models.Room) dto.ReservationRoomResponse {
	return dto.ReservationRoomResponse{
		ID:       room.RoomId,
		RoomName: room.RoomName,
		RoomType: room.RoomType,
		Price:    room.Price,
	}
}

func convertToReservationResponse(reservation models.Reservation) dto.ReservationResponse {
	var actor dto.ActorResponse
	if reservation.UserID != nil && reservation.User != nil {
		actor = dto.ActorResponse{Name: reservation.User.Name, Email: reservation.User.Email, PhoneNumber: reservation.User.PhoneNumber}
	} else {
		actor = dto.ActorResponse{Name: reservation.GuestName, Email: reservation.GuestEmail, PhoneNumber: reservation.GuestPhone}
	}

	resp := dto.ReservationResponse{
		ID:             reservation.ID,
		Code:           reservation.Code,
		User:           actor,
		Room:           convertToReservationRoomResponse(reservation.Room),
		CheckInDate:    reservation.CheckInDate,
		CheckOutDate:   reservation.CheckOutDate,
		Status:         reservation.Status,
		ExtraServices:  reservation.ExtraServiceNames(),
		EstimatedTotal: reservation.EstimatedTotal,
		InvoiceText:    reservation.InvoiceText,
		CreatedAt:      reservation.CreatedAt,
		UpdatedAt:      reservation.UpdatedAt,
	}

	if len(reservation.Bill) > 0 {
		var bill models.Bill
		if err := json.Unmarshal(reservation.Bill, &bill); err == nil {
			resp.Bill = &bill
		}
	}

	return resp
}

func loadSetting(db *gorm.DB) (*models.Setting, error) {
	var setting models.Setting
	if err := db.First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func invalidateReservationCaches() {
	rdb, redisErr := config.ConnectRedis()
	if redisErr != nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, rdb, "reservations:all")
	_ = services.DeleteFromRedis(config.Ctx, rdb, "rooms:all")
	_ = services.DeleteKeysByPattern(config.Ctx, rdb, "invoices:*")
}

// CreateReservation tạo đơn đặt phòng mới. Khách tự đặt thì đơn ở trạng
// thái Pending chờ thanh toán, nhân viên đặt hộ thì xác nhận luôn.
func CreateReservation(c *gin.Context) {
	var request dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var currentUserID uint
	currentUserRole := constants.RoleGuest

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, userRole, err := services.GetUserIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			return
		}
		currentUserID = userID
		currentUserRole = userRole
	}

	// Khách đã đăng nhập đặt cho chính mình, không cần nhập lại thông tin
	if request.UserID == 0 && currentUserID != 0 && currentUserRole == constants.RoleGuest {
		request.UserID = currentUserID
	}

	checkIn, checkOut, err := validator.ValidateReservationRequest(&request, utils.Today())
	if err != nil {
		response.BadRequest(c, apperrors.GetAppError(err).Message)
		return
	}

	var room models.Room
	if err := config.DB.First(&room, request.RoomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	setting, settingErr := loadSetting(config.DB)

	// Dịch vụ thêm phải nằm trong catalog
	if len(request.ExtraServices) > 0 {
		if settingErr != nil {
			response.BadRequest(c, "Chưa có cấu hình hệ thống, không thể chọn dịch vụ thêm")
			return
		}
		for _, name := range request.ExtraServices {
			if setting.Extras.Find(name) == nil {
				response.BadRequest(c, "Dịch vụ thêm không có trong catalog: "+name)
				return
			}
		}
	}

	// Nhân viên đặt hộ thì đơn được xác nhận luôn, khách tự đặt chờ thanh toán
	status := models.ReservationStatusPending
	if currentUserRole == constants.RoleAdmin || currentUserRole == constants.RoleReceptionist {
		status = models.ReservationStatusConfirmed
	}

	builder := builders.NewReservationBuilder().
		WithRoom(room.RoomId).
		WithCheckIn(checkIn.String()).
		WithCheckOut(checkOut.String()).
		WithStatus(status).
		WithExtraServices(request.ExtraServices)

	if request.UserID != 0 {
		var userInfo models.User
		if err := config.DB.First(&userInfo, request.UserID).Error; err != nil {
			response.NotFound(c)
			return
		}
		builder.WithUser(userInfo.ID)
		builder.WithGuestInfo(userInfo.Name, userInfo.PhoneNumber, userInfo.Email)
	} else {
		builder.WithGuestInfo(request.GuestName, request.GuestPhone, request.GuestEmail)
	}

	if settingErr == nil {
		builder.WithEstimatedTotal(services.EstimateTotal(room.RoomType, room.Price, checkIn, checkOut, setting))
	} else {
		builder.WithEstimatedTotal(room.Price * float64(utils.DaysBetween(checkIn, checkOut)))
	}

	reservation := builder.Build()

	// Kiểm tra trùng lịch và ghi đơn trong cùng một transaction
	availability := services.NewAvailabilityService(config.DB)
	if err := availability.CreateWithLock(reservation, checkIn, checkOut); err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil && appErr.Code == apperrors.ErrCodeRoomUnavailable {
			response.Conflict(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	if err := config.DB.Preload("User").Preload("Room").First(reservation, reservation.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	reservationResponse := convertToReservationResponse(*reservation)

	if reservationResponse.User.Email != "" {
		if err := services.SendReservationEmail(reservationResponse.User.Email, reservation.Code, reservation.EstimatedTotal, reservation.CheckInDate, reservation.CheckOutDate); err != nil {
			utils.LogError("Gửi email đặt phòng không thành công: %v", err)
		}
	}

	services.Broadcast(wsHub, fmt.Sprintf("🔔 Đơn đặt phòng mới %s: phòng %s, %s → %s", reservation.Code, reservation.Room.RoomName, reservation.CheckInDate, reservation.CheckOutDate))

	invalidateReservationCaches()

	response.Success(c, reservationResponse)
}

// GetReservations danh sách đơn đặt phòng cho nhân viên, có filter và phân trang
func GetReservations(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if _, _, err := services.GetUserIDFromToken(tokenString); err != nil {
		response.Unauthorized(c)
		return
	}

	cacheKey := "reservations:all"
	var allReservations []models.Reservation

	rdb, redisErr := config.ConnectRedis()
	if redisErr != nil {
		utils.LogError("Không kết nối được Redis: %v", redisErr)
	}

	if redisErr != nil || services.GetFromRedis(config.Ctx, rdb, cacheKey, &allReservations) != nil || len(allReservations) == 0 {
		if err := config.DB.Preload("Room").Preload("User").Find(&allReservations).Error; err != nil {
			response.ServerError(c)
			return
		}
		if redisErr == nil {
			if err := services.SetToRedis(config.Ctx, rdb, cacheKey, allReservations, 10*time.Minute); err != nil {
				utils.LogError("Lỗi khi lưu danh sách đơn vào Redis: %v", err)
			}
		}
	}

	// Lấy các tham số filter từ query
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	phoneFilter := c.Query("phoneNumber")
	nameFilter := c.Query("name")
	statusFilter := c.Query("status")

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

	filtered := make([]models.Reservation, 0)
	for _, reservation := range allReservations {
		if nameFilter != "" {
			guestName := reservation.GuestName
			if reservation.User != nil {
				guestName = reservation.User.Name
			}
			if !strings.Contains(strings.ToLower(guestName), strings.ToLower(nameFilter)) {
				continue
			}
		}
		if phoneFilter != "" {
			guestPhone := reservation.GuestPhone
			if reservation.User != nil {
				guestPhone = reservation.User.PhoneNumber
			}
			if !strings.Contains(guestPhone, phoneFilter) {
				continue
			}
		}
		if statusFilter != "" {
			parsedStatus, err := strconv.Atoi(statusFilter)
			if err == nil && reservation.Status != parsedStatus {
				continue
			}
		}
		filtered = append(filtered, reservation)
	}

	totalFiltered := len(filtered)

	// Xếp theo update mới nhất
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].UpdatedAt.After(filtered[j].UpdatedAt)
	})

	start := page * limit
	end := start + limit
	if start >= totalFiltered {
		filtered = []models.Reservation{}
	} else if end > totalFiltered {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	reservationResponses := make([]dto.ReservationResponse, 0)
	for _, reservation := range filtered {
		reservationResponses = append(reservationResponses, convertToReservationResponse(reservation))
	}

	response.SuccessWithPagination(c, reservationResponses, page, limit, totalFiltered)
}

// GetReservationDetail chi tiết một đơn đặt phòng
func GetReservationDetail(c *gin.Context) {
	reservationId := c.Param("id")

	var reservation models.Reservation
	if err := config.DB.Preload("User").Preload("Room").
		Where("id = ?", reservationId).
		First(&reservation).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToReservationResponse(reservation))
}

// GetReservationsByUser lịch sử đặt phòng của user đang đăng nhập
func GetReservationsByUser(c *gin.Context) {
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
	if err := config.DB.Model(&models.Reservation{}).Where("user_id = ?", currentUserID).Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var reservations []models.Reservation
	if err := config.DB.Preload("User").Preload("Room").
		Where("user_id = ?", currentUserID).
		Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&reservations).Error; err != nil {
		response.ServerError(c)
		return
	}

	reservationResponses := make([]dto.ReservationResponse, 0)
	for _, reservation := range reservations {
		reservationResponses = append(reservationResponses, convertToReservationResponse(reservation))
	}

	response.SuccessWithPagination(c, reservationResponses, page, limit, int(total))
}

// ConfirmReservation chuyển đơn Pending sang Confirmed sau khi thanh toán
// thành công (webhook) hoặc nhân viên xác nhận tay. Idempotent: xác nhận
// đơn đã Confirmed không phải lỗi.
func ConfirmReservation(c *gin.Context) {
	var req dto.ConfirmReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var reservation models.Reservation
	if err := config.DB.Preload("Room").Where("code = ?", req.Code).First(&reservation).Error; err != nil {
		response.NotFound(c)
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

	services.Broadcast(wsHub, fmt.Sprintf("✅ Đơn %s đã được xác nhận", reservation.Code))
	invalidateReservationCaches()

	response.Success(c, gin.H{"message": "Đơn đặt phòng đã được xác nhận", "code": reservation.Code})
}

// CheckInReservation nhận phòng: chỉ cho đơn Confirmed và trong khoảng
// [ngày nhận, ngày trả]. Phòng chuyển sang Occupied.
func CheckInReservation(c *gin.Context) {
	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var reservation models.Reservation
	if err := config.DB.Preload("Room").First(&reservation, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	checkIn, err := utils.ParseCalendarDate(reservation.CheckInDate)
	if err != nil {
		response.ServerError(c)
		return
	}
	checkOut, err := utils.ParseCalendarDate(reservation.CheckOutDate)
	if err != nil {
		response.ServerError(c)
		return
	}

	today := utils.Today()
	if today.Before(checkIn) || today.After(checkOut) {
		response.BadRequest(c, "Chỉ được nhận phòng trong khoảng từ ngày nhận đến ngày trả phòng")
		return
	}

	state := models.GetReservationState(reservation.Status)
	if err := state.CheckIn(&reservation); err != nil {
		response.Conflict(c, err.Error())
		return
	}

	room := reservation.Room
	if err := models.TransitionRoom(&room, constants.RoomActorReservation, constants.RoomStatusOccupied); err != nil {
		response.Conflict(c, err.Error())
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&reservation).Error; err != nil {
			return err
		}
		return tx.Save(&room).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	invalidateReservationCaches()

	response.Success(c, gin.H{"message": "Nhận phòng thành công", "code": reservation.Code})
}

// CheckOutReservation trả phòng: tính hóa đơn theo số đêm thực ở, chốt
// bill và bản in hóa đơn vào đơn, tạo hóa đơn thu tiền, trả phòng về
// Available. Thiếu cấu hình hệ thống thì hủy toàn bộ thao tác.
func CheckOutReservation(c *gin.Context) {
	var req dto.CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var reservation models.Reservation
	if err := config.DB.Preload("Room").Preload("User").First(&reservation, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	// Tính hóa đơn cần bảng giá và cấu hình thuế, thiếu là lỗi cứng
	setting, err := loadSetting(config.DB)
	if err != nil {
		response.BadRequest(c, "Chưa có cấu hình hệ thống, không thể trả phòng")
		return
	}

	now := time.Now()
	room := reservation.Room

	bill, err := services.ComputeBill(&reservation, &room, setting, now)
	if err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	state := models.GetReservationState(reservation.Status)
	if err := state.CheckOut(&reservation); err != nil {
		response.Conflict(c, err.Error())
		return
	}

	if err := models.TransitionRoom(&room, constants.RoomActorReservation, constants.RoomStatusAvailable); err != nil {
		response.Conflict(c, err.Error())
		return
	}

	billJSON, err := json.Marshal(bill)
	if err != nil {
		response.ServerError(c)
		return
	}
	reservation.Bill = billJSON
	reservation.InvoiceText = services.RenderInvoice(&reservation, &room, bill, setting, now)
	reservation.CheckedOutAt = &now

	invoice := models.Invoice{
		ReservationID:   reservation.ID,
		TotalAmount:     bill.Total,
		PaidAmount:      0,
		RemainingAmount: bill.Total,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&reservation).Error; err != nil {
			return err
		}
		if err := tx.Save(&room).Error; err != nil {
			return err
		}
		return tx.Create(&invoice).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	reservationResponse := convertToReservationResponse(reservation)

	// Gửi hóa đơn cho khách, lỗi gửi mail không làm fail trả phòng
	if reservationResponse.User.Email != "" {
		if err := services.SendCheckoutEmail(reservationResponse.User.Email, reservation.Code, reservation.InvoiceText); err != nil {
			utils.LogError("Gửi email hóa đơn không thành công: %v", err)
		}
	}

	services.Broadcast(wsHub, fmt.Sprintf("🏁 Đơn %s đã trả phòng, tổng %.2f", reservation.Code, bill.Total))
	invalidateReservationCaches()

	response.Success(c, reservationResponse)
}

// CancelReservation hủy đơn Pending hoặc Confirmed, ghi lại ai hủy.
// Phòng không đổi trạng thái vì đơn chưa nhận phòng chưa từng chiếm phòng.
func CancelReservation(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, currentUserRole, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var req dto.CancelReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var reservation models.Reservation
	if err := config.DB.First(&reservation, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	// Khách chỉ được hủy đơn của chính mình
	if currentUserRole == constants.RoleGuest {
		if reservation.UserID == nil || *reservation.UserID != currentUserID {
			response.Forbidden(c)
			return
		}
	}

	state := models.GetReservationState(reservation.Status)
	if err := state.Cancel(&reservation); err != nil {
		response.Conflict(c, err.Error())
		return
	}

	var currentUser models.User
	cancelledByName := "Không rõ"
	if err := config.DB.First(&currentUser, currentUserID).Error; err == nil {
		cancelledByName = currentUser.Name
	}

	reservation.CancelledByID = &currentUserID
	reservation.CancelledByName = cancelledByName
	reservation.CancelledByRole = &currentUserRole

	if err := config.DB.Save(&reservation).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.Broadcast(wsHub, fmt.Sprintf("❌ Đơn %s đã bị hủy bởi %s", reservation.Code, cancelledByName))
	invalidateReservationCaches()

	response.Success(c, gin.H{"message": "Đơn đặt phòng đã được hủy", "code": reservation.Code})
}
