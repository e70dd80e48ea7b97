package models

import (
	"time"

	"hms/utils"
)

// GeneralSection thông tin chung của khách sạn
type GeneralSection struct {
	HotelName    string `json:"hotelName"`
	Address      string `json:"address"`
	PhoneNumber  string `json:"phoneNumber"`
	Email        string `json:"email"`
	CheckInHour  string `json:"checkInHour"`
	CheckOutHour string `json:"checkOutHour"`
}

// PolicySection chính sách vận hành
type PolicySection struct {
	CancellationHours int `json:"cancellationHours"` // khách tự hủy trong vòng N giờ sau khi đặt
	PendingHoldHours  int `json:"pendingHoldHours"`  // đơn Pending quá N giờ chưa thanh toán sẽ bị hủy
}

// TaxSection cấu hình thuế/phí áp dụng khi trả phòng
type TaxSection struct {
	TaxRate       float64 `json:"taxRate"`       // phần trăm trên subtotal
	ServiceCharge float64 `json:"serviceCharge"` // phí dịch vụ cố định
	CityTax       float64 `json:"cityTax"`       // thuế thành phố cố định
	StateTax      float64 `json:"stateTax"`      // thuế bang cố định
}

// NotificationSection cấu hình thông báo
type NotificationSection struct {
	EmailEnabled     bool   `json:"emailEnabled"`
	BroadcastEnabled bool   `json:"broadcastEnabled"`
	StaffEmail       string `json:"staffEmail"`
}

// SeasonalRate một mùa giá, so sánh theo chuỗi "2006-01-02", bao gồm cả hai đầu
type SeasonalRate struct {
	FromDate string  `json:"fromDate"`
	ToDate   string  `json:"toDate"`
	Rate     float64 `json:"rate"`
}

// RoomRate bảng giá của một loại phòng.
// Ưu tiên từ cao xuống thấp: mùa > lễ > cuối tuần > giá gốc.
type RoomRate struct {
	RoomType      string         `json:"roomType"`
	BaseRate      float64        `json:"baseRate"`
	WeekendRate   float64        `json:"weekendRate"`
	HolidayRate   float64        `json:"holidayRate"`
	SeasonalRates []SeasonalRate `json:"seasonalRates,omitempty"`
}

// RateSection bảng giá theo loại phòng
type RateSection struct {
	RoomRates []RoomRate `json:"roomRates"`
}

// RateFor tìm bảng giá của một loại phòng, nil nếu chưa cấu hình
func (s RateSection) RateFor(roomType string) *RoomRate {
	for i := range s.RoomRates {
		if s.RoomRates[i].RoomType == roomType {
			return &s.RoomRates[i]
		}
	}
	return nil
}

// ExtraService một dịch vụ thêm trong catalog
type ExtraService struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ExtrasSection catalog dịch vụ thêm
type ExtrasSection struct {
	Services []ExtraService `json:"services"`
}

// Find tìm dịch vụ theo tên, nil nếu không có trong catalog
func (s ExtrasSection) Find(name string) *ExtraService {
	for i := range s.Services {
		if s.Services[i].Name == name {
			return &s.Services[i]
		}
	}
	return nil
}

// HolidayDate một ngày lễ cố định hàng năm
type HolidayDate struct {
	Month int    `json:"month"`
	Day   int    `json:"day"`
	Name  string `json:"name"`
}

// HolidaySection danh sách ngày lễ
type HolidaySection struct {
	Dates []HolidayDate `json:"dates"`
}

// Contains kiểm tra một ngày có phải ngày lễ không
func (s HolidaySection) Contains(d utils.CalendarDate) bool {
	for _, h := range s.Dates {
		if int(d.Month) == h.Month && d.Day == h.Day {
			return true
		}
	}
	return false
}

// Setting là document cấu hình duy nhất của hệ thống.
// Mỗi section là một struct có kiểu rõ ràng, cập nhật qua tagged union
// trong settings controller chứ không patch theo tên chuỗi.
type Setting struct {
	ID            uint                `json:"id" gorm:"primaryKey"`
	General       GeneralSection      `json:"general" gorm:"serializer:json"`
	Policies      PolicySection       `json:"policies" gorm:"serializer:json"`
	Taxes         TaxSection          `json:"taxes" gorm:"serializer:json"`
	Notifications NotificationSection `json:"notifications" gorm:"serializer:json"`
	RoomRates     RateSection         `json:"roomRates" gorm:"serializer:json"`
	Extras        ExtrasSection       `json:"extras" gorm:"serializer:json"`
	Holidays      HolidaySection      `json:"holidays" gorm:"serializer:json"`
	CreatedAt     time.Time           `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time           `gorm:"autoUpdateTime" json:"updatedAt"`
}

// DefaultSetting trả về cấu hình khởi tạo với catalog dịch vụ
// và ngày lễ mặc định của hệ thống cũ
func DefaultSetting() *Setting {
	return &Setting{
		General: GeneralSection{
			CheckInHour:  "14:00",
			CheckOutHour: "12:00",
		},
		Policies: PolicySection{
			CancellationHours: 24,
			PendingHoldHours:  24,
		},
		Notifications: NotificationSection{
			EmailEnabled:     true,
			BroadcastEnabled: true,
		},
		Extras: ExtrasSection{
			Services: []ExtraService{
				{Name: "spa", Price: 50},
				{Name: "wakeup_call", Price: 10},
				{Name: "airport_pickup", Price: 30},
			},
		},
		Holidays: HolidaySection{
			Dates: []HolidayDate{
				{Month: 1, Day: 1, Name: "Tết Dương lịch"},
				{Month: 7, Day: 4, Name: "Lễ giữa năm"},
				{Month: 12, Day: 25, Name: "Giáng sinh"},
			},
		},
	}
}
