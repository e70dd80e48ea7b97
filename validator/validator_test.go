package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hms/dto"
	"hms/errors"
	"hms/models"
	"hms/utils"
)

func mustDate(t *testing.T, s string) utils.CalendarDate {
	t.Helper()
	d, err := utils.ParseCalendarDate(s)
	require.NoError(t, err)
	return d
}

func validReservationRequest() *dto.CreateReservationRequest {
	return &dto.CreateReservationRequest{
		RoomID:       1,
		CheckInDate:  "2026-03-10",
		CheckOutDate: "2026-03-12",
		GuestName:    "Nguyễn Văn A",
		GuestPhone:   "0912345678",
		GuestEmail:   "a@example.com",
	}
}

func TestValidateReservationRequest(t *testing.T) {
	today := mustDate(t, "2026-03-01")

	checkIn, checkOut, err := ValidateReservationRequest(validReservationRequest(), today)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", checkIn.String())
	assert.Equal(t, "2026-03-12", checkOut.String())
}

func TestValidateReservationRequestDateErrors(t *testing.T) {
	today := mustDate(t, "2026-03-01")

	req := validReservationRequest()
	req.CheckInDate = "10-03-2026"
	_, _, err := ValidateReservationRequest(req, today)
	assert.Error(t, err)

	// Ngày nhận phòng trong quá khứ
	req = validReservationRequest()
	req.CheckInDate = "2026-02-28"
	_, _, err = ValidateReservationRequest(req, today)
	assert.Error(t, err)

	// Ngày nhận phòng đúng hôm nay thì hợp lệ
	req = validReservationRequest()
	req.CheckInDate = "2026-03-01"
	_, _, err = ValidateReservationRequest(req, today)
	assert.NoError(t, err)

	// Trả phòng phải sau ngày nhận
	req = validReservationRequest()
	req.CheckOutDate = req.CheckInDate
	_, _, err = ValidateReservationRequest(req, today)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidDateRange, appErr.Code)
}

func TestValidateReservationRequestGuestInfo(t *testing.T) {
	today := mustDate(t, "2026-03-01")

	// Khách vãng lai phải có tên và số điện thoại
	req := validReservationRequest()
	req.GuestName = ""
	_, _, err := ValidateReservationRequest(req, today)
	assert.Error(t, err)

	req = validReservationRequest()
	req.GuestPhone = "123"
	_, _, err = ValidateReservationRequest(req, today)
	assert.Error(t, err)

	// Đặt cho user có tài khoản thì không cần thông tin khách
	req = &dto.CreateReservationRequest{
		UserID:       5,
		RoomID:       1,
		CheckInDate:  "2026-03-10",
		CheckOutDate: "2026-03-12",
	}
	_, _, err = ValidateReservationRequest(req, today)
	assert.NoError(t, err)
}

func TestValidateRoom(t *testing.T) {
	room := &models.Room{RoomName: "101", RoomType: "standard", Price: 86}
	assert.NoError(t, ValidateRoom(room))

	room = &models.Room{RoomType: "standard"}
	assert.Error(t, ValidateRoom(room))

	room = &models.Room{RoomName: "101", RoomType: "standard", Price: -1}
	assert.Error(t, ValidateRoom(room))
}

func TestValidateTaxSection(t *testing.T) {
	assert.NoError(t, ValidateTaxSection(&models.TaxSection{TaxRate: 8.5, ServiceCharge: 10}))
	assert.NoError(t, ValidateTaxSection(&models.TaxSection{}))
	assert.Error(t, ValidateTaxSection(&models.TaxSection{TaxRate: 101}))
	assert.Error(t, ValidateTaxSection(&models.TaxSection{TaxRate: -1}))
	assert.Error(t, ValidateTaxSection(&models.TaxSection{CityTax: -5}))
}

func TestValidateRateSection(t *testing.T) {
	rates := &models.RateSection{RoomRates: []models.RoomRate{
		{
			RoomType:    "standard",
			BaseRate:    86,
			WeekendRate: 95,
			SeasonalRates: []models.SeasonalRate{
				{FromDate: "2026-06-01", ToDate: "2026-06-30", Rate: 110},
			},
		},
	}}
	assert.NoError(t, ValidateRateSection(rates))

	rates = &models.RateSection{RoomRates: []models.RoomRate{{BaseRate: 86}}}
	assert.Error(t, ValidateRateSection(rates))

	rates = &models.RateSection{RoomRates: []models.RoomRate{{RoomType: "standard", BaseRate: -1}}}
	assert.Error(t, ValidateRateSection(rates))

	// Mùa giá ngược ngày
	rates = &models.RateSection{RoomRates: []models.RoomRate{
		{
			RoomType: "standard",
			BaseRate: 86,
			SeasonalRates: []models.SeasonalRate{
				{FromDate: "2026-06-30", ToDate: "2026-06-01", Rate: 110},
			},
		},
	}}
	assert.Error(t, ValidateRateSection(rates))
}

func TestValidateExtrasSection(t *testing.T) {
	assert.NoError(t, ValidateExtrasSection(&models.ExtrasSection{Services: []models.ExtraService{
		{Name: "spa", Price: 50},
	}}))
	assert.Error(t, ValidateExtrasSection(&models.ExtrasSection{Services: []models.ExtraService{
		{Price: 50},
	}}))
	assert.Error(t, ValidateExtrasSection(&models.ExtrasSection{Services: []models.ExtraService{
		{Name: "spa", Price: -1},
	}}))
}

func TestValidateHolidaySection(t *testing.T) {
	assert.NoError(t, ValidateHolidaySection(&models.HolidaySection{Dates: []models.HolidayDate{
		{Month: 12, Day: 25},
	}}))
	assert.Error(t, ValidateHolidaySection(&models.HolidaySection{Dates: []models.HolidayDate{
		{Month: 13, Day: 1},
	}}))
	assert.Error(t, ValidateHolidaySection(&models.HolidaySection{Dates: []models.HolidayDate{
		{Month: 1, Day: 32},
	}}))
}

func TestValidateFeedback(t *testing.T) {
	assert.NoError(t, ValidateFeedback(&dto.CreateFeedbackRequest{ReservationID: 1, Star: 5}))
	assert.Error(t, ValidateFeedback(&dto.CreateFeedbackRequest{Star: 5}))
	assert.Error(t, ValidateFeedback(&dto.CreateFeedbackRequest{ReservationID: 1, Star: 0}))
	assert.Error(t, ValidateFeedback(&dto.CreateFeedbackRequest{ReservationID: 1, Star: 6}))
}

func TestValidateUser(t *testing.T) {
	user := &models.User{Name: "A", Email: "a@example.com", Password: "secret1", PhoneNumber: "0912345678"}
	assert.NoError(t, ValidateUser(user))

	user = &models.User{Email: "sai", Password: "secret1", PhoneNumber: "0912345678"}
	assert.Error(t, ValidateUser(user))

	user = &models.User{Email: "a@example.com", Password: "123", PhoneNumber: "0912345678"}
	assert.Error(t, ValidateUser(user))
}
