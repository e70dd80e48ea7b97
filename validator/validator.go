package validator

import (
	"regexp"

	"hms/dto"
	"hms/errors"
	"hms/models"
	"hms/utils"
)

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}

// ValidateUser validate thông tin user
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.PhoneNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại không được để trống", nil)
	}

	if !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	if user.Role < 0 || user.Role > 4 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidateReservationRequest validate yêu cầu đặt phòng.
// Trả về hai ngày đã parse để caller không phải parse lại.
func ValidateReservationRequest(req *dto.CreateReservationRequest, today utils.CalendarDate) (utils.CalendarDate, utils.CalendarDate, error) {
	var zero utils.CalendarDate

	if req.RoomID == 0 {
		return zero, zero, errors.NewAppError(errors.ErrCodeRequiredField, "ID phòng không được để trống", nil)
	}

	checkIn, err := utils.ParseCalendarDate(req.CheckInDate)
	if err != nil {
		return zero, zero, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng không hợp lệ", err)
	}

	checkOut, err := utils.ParseCalendarDate(req.CheckOutDate)
	if err != nil {
		return zero, zero, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày trả phòng không hợp lệ", err)
	}

	if checkIn.Before(today) {
		return zero, zero, errors.NewAppError(errors.ErrCodeValidation, "Ngày nhận phòng không được nhỏ hơn ngày hiện tại", nil)
	}

	if !checkOut.After(checkIn) {
		return zero, zero, errors.NewAppError(errors.ErrCodeInvalidDateRange, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	if req.UserID == 0 {
		if req.GuestName == "" {
			return zero, zero, errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
		}
		if req.GuestPhone == "" {
			return zero, zero, errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại khách không được để trống", nil)
		}
		if !isValidPhone(req.GuestPhone) {
			return zero, zero, errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại khách không hợp lệ", nil)
		}
		if req.GuestEmail != "" && !isValidEmail(req.GuestEmail) {
			return zero, zero, errors.NewAppError(errors.ErrCodeInvalidEmail, "Email khách không hợp lệ", nil)
		}
	}

	return checkIn, checkOut, nil
}

// ValidateRoom validate thông tin phòng
func ValidateRoom(room *models.Room) error {
	if room.RoomName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên phòng không được để trống", nil)
	}

	if room.RoomType == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Loại phòng không được để trống", nil)
	}

	if room.Price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá phòng không được âm", nil)
	}

	return room.ValidateStatus()
}

// ValidateTaxSection validate cấu hình thuế
func ValidateTaxSection(taxes *models.TaxSection) error {
	if taxes.TaxRate < 0 || taxes.TaxRate > 100 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Thuế suất phải nằm trong khoảng từ 0 đến 100", nil)
	}
	if taxes.ServiceCharge < 0 || taxes.CityTax < 0 || taxes.StateTax < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Phí và thuế cố định không được âm", nil)
	}
	return nil
}

// ValidateRateSection validate bảng giá phòng
func ValidateRateSection(rates *models.RateSection) error {
	for _, rate := range rates.RoomRates {
		if rate.RoomType == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Loại phòng trong bảng giá không được để trống", nil)
		}
		if rate.BaseRate < 0 || rate.WeekendRate < 0 || rate.HolidayRate < 0 {
			return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá phòng không được âm", nil)
		}
		for _, season := range rate.SeasonalRates {
			fromDate, err := utils.ParseCalendarDate(season.FromDate)
			if err != nil {
				return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày bắt đầu mùa giá không hợp lệ", err)
			}
			toDate, err := utils.ParseCalendarDate(season.ToDate)
			if err != nil {
				return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày kết thúc mùa giá không hợp lệ", err)
			}
			if toDate.Before(fromDate) {
				return errors.NewAppError(errors.ErrCodeValidation, "Ngày kết thúc mùa giá phải sau ngày bắt đầu", nil)
			}
			if season.Rate < 0 {
				return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá mùa không được âm", nil)
			}
		}
	}
	return nil
}

// ValidateExtrasSection validate catalog dịch vụ thêm
func ValidateExtrasSection(extras *models.ExtrasSection) error {
	for _, service := range extras.Services {
		if service.Name == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Tên dịch vụ không được để trống", nil)
		}
		if service.Price < 0 {
			return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá dịch vụ không được âm", nil)
		}
	}
	return nil
}

// ValidateHolidaySection validate danh sách ngày lễ
func ValidateHolidaySection(holidays *models.HolidaySection) error {
	for _, h := range holidays.Dates {
		if h.Month < 1 || h.Month > 12 {
			return errors.NewAppError(errors.ErrCodeValidation, "Tháng của ngày lễ phải từ 1 đến 12", nil)
		}
		if h.Day < 1 || h.Day > 31 {
			return errors.NewAppError(errors.ErrCodeValidation, "Ngày của ngày lễ phải từ 1 đến 31", nil)
		}
	}
	return nil
}

// ValidateFeedback validate đánh giá
func ValidateFeedback(req *dto.CreateFeedbackRequest) error {
	if req.ReservationID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID đơn đặt phòng không được để trống", nil)
	}
	if req.Star < 1 || req.Star > 5 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số sao đánh giá phải từ 1 đến 5", nil)
	}
	return nil
}

// ValidateContact validate form liên hệ
func ValidateContact(req *dto.CreateContactRequest) error {
	if req.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên không được để trống", nil)
	}
	if !isValidEmail(req.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	if req.Message == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Nội dung không được để trống", nil)
	}
	return nil
}

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	return nil
}

// ValidatePhone kiểm tra số điện thoại hợp lệ
func ValidatePhone(phone string) error {
	if !isValidPhone(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}
	return nil
}
