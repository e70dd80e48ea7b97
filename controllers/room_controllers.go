package controllers

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"hms/config"
	"hms/constants"
	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/services"
	"hms/utils"
	"hms/validator"
)

func convertToRoomResponse(room models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:          room.RoomId,
		RoomName:    room.RoomName,
		RoomType:    room.RoomType,
		Price:       room.Price,
		Description: room.Description,
		Status:      room.Status,
		StatusName:  models.RoomStatusName(room.Status),
		People:      room.People,
		NumBed:      room.NumBed,
		Avatar:      room.Avatar,
		Img:         room.Img,
	}
}

// Chuẩn hóa chuỗi tìm kiếm: bỏ dấu tiếng Việt, về chữ thường
func normalizeInput(input string) string {
	return strings.ToLower(unidecode.Unidecode(input))
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Khoảng cách levenshtein giữa hai chuỗi đã chuẩn hóa
func fuzzyDistance(a, b string) int {
	return levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
}

// Tính điểm khớp của một phòng với chuỗi tìm kiếm
func calculateRoomScore(normalizedQuery string, room models.Room, typeMatcher *closestmatch.ClosestMatch) int {
	score := 0

	normalizedName := normalizeInput(room.RoomName)
	normalizedType := normalizeInput(room.RoomType)

	if strings.Contains(normalizedName, normalizedQuery) {
		score += 5
	} else if fuzzyDistance(normalizedQuery, normalizedName) <= 2 {
		score += 3
	}

	if typeMatcher != nil && typeMatcher.Closest(normalizedQuery) == normalizedType {
		score += 4
	} else if strings.Contains(normalizedQuery, normalizedType) {
		score += 2
	}

	if strings.Contains(normalizeInput(room.Description), normalizedQuery) {
		score++
	}

	return score
}

// searchRooms xếp hạng phòng theo mức độ khớp với chuỗi tìm kiếm
func searchRooms(rooms []models.Room, query string) []models.Room {
	normalizedQuery := normalizeInput(query)

	uniqueTypes := make(map[string]bool)
	for _, room := range rooms {
		uniqueTypes[normalizeInput(room.RoomType)] = true
	}
	keywords := make([]string, 0, len(uniqueTypes))
	for t := range uniqueTypes {
		keywords = append(keywords, t)
	}
	typeMatcher := createMatcher(keywords)

	type scoredRoom struct {
		room  models.Room
		score int
	}
	scored := make([]scoredRoom, 0)
	for _, room := range rooms {
		score := calculateRoomScore(normalizedQuery, room, typeMatcher)
		if score > 0 {
			scored = append(scored, scoredRoom{room: room, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	results := make([]models.Room, 0, len(scored))
	for _, s := range scored {
		results = append(results, s.room)
	}
	return results
}

// CreateRoom tạo phòng mới (admin)
func CreateRoom(c *gin.Context) {
	var request dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	room := models.Room{
		RoomName:    request.RoomName,
		RoomType:    request.RoomType,
		Price:       request.Price,
		Description: request.Description,
		Status:      constants.RoomStatusAvailable,
		People:      request.People,
		NumBed:      request.NumBed,
		Avatar:      request.Avatar,
		Img:         request.Img,
	}

	if err := validator.ValidateRoom(&room); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCaches()

	response.Success(c, convertToRoomResponse(room))
}

func invalidateRoomCaches() {
	rdb, redisErr := config.ConnectRedis()
	if redisErr != nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, rdb, "rooms:all")
}

// GetRooms danh sách phòng, hỗ trợ tìm kiếm mờ, lọc và phân trang
func GetRooms(c *gin.Context) {
	cacheKey := "rooms:all"
	var allRooms []models.Room

	rdb, redisErr := config.ConnectRedis()
	if redisErr != nil {
		utils.LogError("Không kết nối được Redis: %v", redisErr)
	}

	if redisErr != nil || services.GetFromRedis(config.Ctx, rdb, cacheKey, &allRooms) != nil || len(allRooms) == 0 {
		if err := config.DB.Find(&allRooms).Error; err != nil {
			response.ServerError(c)
			return
		}
		if redisErr == nil {
			if err := services.SetToRedis(config.Ctx, rdb, cacheKey, allRooms, 10*time.Minute); err != nil {
				utils.LogError("Lỗi khi lưu danh sách phòng vào Redis: %v", err)
			}
		}
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	searchQuery := c.Query("search")
	typeFilter := c.Query("roomType")
	statusFilter := c.Query("status")
	peopleFilter := c.Query("people")

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

	filtered := allRooms
	if searchQuery != "" {
		filtered = searchRooms(filtered, searchQuery)
	}

	result := make([]models.Room, 0)
	for _, room := range filtered {
		if typeFilter != "" && !strings.EqualFold(room.RoomType, typeFilter) {
			continue
		}
		if statusFilter != "" {
			parsedStatus, err := strconv.Atoi(statusFilter)
			if err == nil && room.Status != parsedStatus {
				continue
			}
		}
		if peopleFilter != "" {
			parsedPeople, err := strconv.Atoi(peopleFilter)
			if err == nil && room.People < parsedPeople {
				continue
			}
		}
		result = append(result, room)
	}

	total := len(result)

	start := page * limit
	end := start + limit
	if start >= total {
		result = []models.Room{}
	} else if end > total {
		result = result[start:]
	} else {
		result = result[start:end]
	}

	roomResponses := make([]dto.RoomResponse, 0)
	for _, room := range result {
		roomResponses = append(roomResponses, convertToRoomResponse(room))
	}

	response.SuccessWithPagination(c, roomResponses, page, limit, total)
}

// GetRoomDetail chi tiết một phòng
func GetRoomDetail(c *gin.Context) {
	roomId := c.Param("id")

	var room models.Room
	if err := config.DB.Where("room_id = ?", roomId).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToRoomResponse(room))
}

// GetAvailableRooms danh sách phòng trống cho khoảng [checkIn, checkOut)
func GetAvailableRooms(c *gin.Context) {
	checkInStr := c.Query("checkInDate")
	checkOutStr := c.Query("checkOutDate")
	if checkInStr == "" || checkOutStr == "" {
		response.BadRequest(c, "Thiếu ngày nhận hoặc ngày trả phòng")
		return
	}

	checkIn, err := utils.ParseCalendarDate(checkInStr)
	if err != nil {
		response.BadRequest(c, "Ngày nhận phòng không hợp lệ")
		return
	}
	checkOut, err := utils.ParseCalendarDate(checkOutStr)
	if err != nil {
		response.BadRequest(c, "Ngày trả phòng không hợp lệ")
		return
	}

	availability := services.NewAvailabilityService(config.DB)
	rooms, err := availability.FindAvailableRooms(checkIn, checkOut)
	if err != nil {
		response.BadRequest(c, "Ngày trả phòng phải sau ngày nhận phòng")
		return
	}

	roomResponses := make([]dto.RoomResponse, 0)
	for _, room := range rooms {
		roomResponses = append(roomResponses, convertToRoomResponse(room))
	}

	response.Success(c, roomResponses)
}

// UpdateRoom cập nhật thông tin phòng (admin)
func UpdateRoom(c *gin.Context) {
	var request dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, request.RoomId).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.RoomName != "" {
		room.RoomName = request.RoomName
	}
	if request.RoomType != "" {
		room.RoomType = request.RoomType
	}
	if request.Price > 0 {
		room.Price = request.Price
	}
	if request.Description != "" {
		room.Description = request.Description
	}
	if request.People > 0 {
		room.People = request.People
	}
	if request.NumBed > 0 {
		room.NumBed = request.NumBed
	}
	if request.Avatar != "" {
		room.Avatar = request.Avatar
	}
	if len(request.Img) > 0 {
		room.Img = request.Img
	}

	if err := validator.ValidateRoom(&room); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCaches()

	response.Success(c, convertToRoomResponse(room))
}

// roomActorForRole ánh xạ role của người gọi sang actor trong bảng chuyển
// trạng thái phòng. Admin và lễ tân thao tác thay được cho cả hai bộ phận.
func roomActorForRole(role, targetStatus int) (int, bool) {
	switch role {
	case constants.RoleHousekeeping:
		return constants.RoomActorHousekeeping, true
	case constants.RoleMaintenance:
		return constants.RoomActorMaintenance, true
	case constants.RoleAdmin, constants.RoleReceptionist:
		if targetStatus == constants.RoomStatusCleaning || targetStatus == constants.RoomStatusClean {
			return constants.RoomActorHousekeeping, true
		}
		return constants.RoomActorMaintenance, true
	}
	return 0, false
}

// ChangeRoomStatus chuyển trạng thái vận hành của phòng (dọn phòng, bảo
// trì). Trạng thái Occupied chỉ do luồng nhận/trả phòng thay đổi.
func ChangeRoomStatus(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	_, currentUserRole, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var request dto.ChangeRoomStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	actor, ok := roomActorForRole(currentUserRole, request.Status)
	if !ok {
		response.Forbidden(c)
		return
	}

	if err := models.TransitionRoom(&room, actor, request.Status); err != nil {
		response.Conflict(c, err.Error())
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCaches()

	response.Success(c, convertToRoomResponse(room))
}
