package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Reservation status constants
const (
	ReservationStatusPending    = 0
	ReservationStatusConfirmed  = 1
	ReservationStatusCheckedIn  = 2
	ReservationStatusCheckedOut = 3
	ReservationStatusCancelled  = 4
)

type Reservation struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Code         string `json:"code" gorm:"unique;size:20"` // mã đặt phòng duy nhất
	RoomID       uint   `json:"roomId" gorm:"index"`
	Room         Room   `json:"room" gorm:"foreignKey:RoomID"`
	UserID       *uint  `json:"userId"`
	User         *User  `json:"user" gorm:"foreignKey:UserID"`
	GuestName    string `json:"guestName,omitempty"`
	GuestEmail   string `json:"guestEmail,omitempty"`
	GuestPhone   string `json:"guestPhone,omitempty"`
	CheckInDate  string `json:"checkInDate"`  // dạng "2006-01-02"
	CheckOutDate string `json:"checkOutDate"` // dạng "2006-01-02", không tính đêm ngày trả phòng
	Status       int    `json:"status"`

	// Dịch vụ thêm khách chọn lúc đặt, danh sách tên khớp catalog trong settings
	ExtraServices json.RawMessage `json:"extraServices,omitempty" gorm:"type:json"`

	// Giá ước tính lúc đặt, tính từ bảng giá hiện hành
	EstimatedTotal float64 `json:"estimatedTotal"`

	// Thông tin hủy, chỉ có khi Status = Cancelled
	CancelledByID   *uint  `json:"cancelledById,omitempty"`
	CancelledByName string `json:"cancelledByName,omitempty"`
	CancelledByRole *int   `json:"cancelledByRole,omitempty"`

	// Hóa đơn chốt tại thời điểm trả phòng, không tính lại về sau
	Bill        json.RawMessage `json:"bill,omitempty" gorm:"type:json"`
	InvoiceText string          `json:"invoiceText,omitempty" gorm:"type:text"`
	CheckedOutAt *time.Time     `json:"checkedOutAt,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) (err error) {
	if r.Code == "" {
		r.Code = fmt.Sprintf("HMS%d", time.Now().UnixNano())
	}

	var count int64
	if err := tx.Model(&Reservation{}).Where("code = ?", r.Code).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("mã đặt phòng đã tồn tại, hãy thử lại")
	}
	return nil
}

// IsBlocking cho biết đơn còn giữ phòng cho khoảng ngày của nó không.
// Cancelled và CheckedOut không còn chặn phòng.
func (r *Reservation) IsBlocking() bool {
	return r.Status != ReservationStatusCancelled && r.Status != ReservationStatusCheckedOut
}

// ExtraServiceNames giải mã danh sách tên dịch vụ thêm
func (r *Reservation) ExtraServiceNames() []string {
	if len(r.ExtraServices) == 0 {
		return nil
	}
	var names []string
	if err := json.Unmarshal(r.ExtraServices, &names); err != nil {
		return nil
	}
	return names
}
