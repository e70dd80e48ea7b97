package dto

import "hms/models"

// UpdateSettingRequest cập nhật một section cấu hình. Tagged union: đúng
// một field được set, controller switch trên từng con trỏ nên field của
// mỗi section được kiểm tra lúc compile, không patch theo tên chuỗi.
type UpdateSettingRequest struct {
	General       *models.GeneralSection      `json:"general,omitempty"`
	Policies      *models.PolicySection       `json:"policies,omitempty"`
	Taxes         *models.TaxSection          `json:"taxes,omitempty"`
	Notifications *models.NotificationSection `json:"notifications,omitempty"`
	RoomRates     *models.RateSection         `json:"roomRates,omitempty"`
	Extras        *models.ExtrasSection       `json:"extras,omitempty"`
	Holidays      *models.HolidaySection      `json:"holidays,omitempty"`
}
