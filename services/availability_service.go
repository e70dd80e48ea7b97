package services

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hms/commands"
	"hms/errors"
	"hms/models"
	"hms/services/logger"
	"hms/utils"
)

// AvailabilityService xác định phòng trống theo khoảng ngày dựa trên
// các đơn đặt phòng còn giữ chỗ (Pending/Confirmed/CheckedIn)
type AvailabilityService struct {
	db  *gorm.DB
	log logger.Logger
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{
		db:  db,
		log: logger.NewServiceLogger("availability", logger.InfoLevel),
	}
}

// blockingStatuses là các trạng thái đơn còn giữ phòng
var blockingStatuses = []int{
	models.ReservationStatusPending,
	models.ReservationStatusConfirmed,
	models.ReservationStatusCheckedIn,
}

// BusyRoomIDs trả về tập id phòng có đơn giữ chỗ giao với [checkIn, checkOut)
func BusyRoomIDs(reservations []models.Reservation, checkIn, checkOut utils.CalendarDate) map[uint]bool {
	busy := make(map[uint]bool)
	for _, r := range reservations {
		if !r.IsBlocking() {
			continue
		}
		rIn, err := utils.ParseCalendarDate(r.CheckInDate)
		if err != nil {
			continue
		}
		rOut, err := utils.ParseCalendarDate(r.CheckOutDate)
		if err != nil {
			continue
		}
		if utils.RangesOverlap(checkIn, checkOut, rIn, rOut) {
			busy[r.RoomID] = true
		}
	}
	return busy
}

// FilterAvailableRooms lọc danh sách phòng còn trống: không dính đơn giữ
// chỗ nào trong khoảng ngày và trạng thái vận hành cho phép nhận khách
func FilterAvailableRooms(rooms []models.Room, reservations []models.Reservation, checkIn, checkOut utils.CalendarDate) []models.Room {
	busy := BusyRoomIDs(reservations, checkIn, checkOut)
	available := make([]models.Room, 0)
	for _, room := range rooms {
		if busy[room.RoomId] {
			continue
		}
		if !room.IsBookable() {
			continue
		}
		available = append(available, room)
	}
	return available
}

// FindAvailableRooms trả về các phòng trống cho khoảng [checkIn, checkOut)
func (s *AvailabilityService) FindAvailableRooms(checkIn, checkOut utils.CalendarDate) ([]models.Room, error) {
	if !checkIn.Before(checkOut) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDateRange, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	var reservations []models.Reservation
	if err := s.db.Where("status IN ?", blockingStatuses).Find(&reservations).Error; err != nil {
		return nil, err
	}

	var rooms []models.Room
	if err := s.db.Find(&rooms).Error; err != nil {
		return nil, err
	}

	return FilterAvailableRooms(rooms, reservations, checkIn, checkOut), nil
}

// HasOverlap kiểm tra một phòng có đơn giữ chỗ giao với khoảng ngày không.
// excludeID > 0 để bỏ qua chính đơn đang sửa.
func (s *AvailabilityService) HasOverlap(roomID uint, checkIn, checkOut utils.CalendarDate, excludeID uint) (bool, error) {
	reservations, err := s.blockingForRoom(s.db, roomID, excludeID)
	if err != nil {
		return false, err
	}
	busy := BusyRoomIDs(reservations, checkIn, checkOut)
	return busy[roomID], nil
}

// CreateWithLock kiểm tra trùng lịch và ghi đơn trong cùng một transaction.
// Khóa row phòng trước rồi mới đọc các đơn giữ chỗ: phòng chưa có đơn nào
// thì SELECT FOR UPDATE trên reservations không khóa được row nào, hai
// request đặt cùng lúc sẽ cùng thấy danh sách rỗng và cùng ghi đơn. Khóa
// phòng buộc chúng tuần tự hóa qua cùng một row luôn tồn tại.
func (s *AvailabilityService) CreateWithLock(reservation *models.Reservation, checkIn, checkOut utils.CalendarDate) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, reservation.RoomID).Error; err != nil {
			return err
		}

		var existing []models.Reservation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("room_id = ? AND status IN ?", reservation.RoomID, blockingStatuses).
			Find(&existing).Error; err != nil {
			return err
		}

		busy := BusyRoomIDs(existing, checkIn, checkOut)
		if busy[reservation.RoomID] {
			s.log.Info("Từ chối đặt phòng %d: trùng lịch %s - %s", reservation.RoomID, checkIn, checkOut)
			return errors.NewAppError(errors.ErrCodeRoomUnavailable, "Phòng đã được đặt trong khoảng thời gian này", errors.ErrRoomUnavailable)
		}

		return commands.NewCreateReservationCommand(reservation, tx).Execute()
	})
}

func (s *AvailabilityService) blockingForRoom(db *gorm.DB, roomID, excludeID uint) ([]models.Reservation, error) {
	query := db.Where("room_id = ? AND status IN ?", roomID, blockingStatuses)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var reservations []models.Reservation
	if err := query.Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}
