package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func ratesWith(entries ...models.RoomRate) models.RateSection {
	return models.RateSection{RoomRates: entries}
}

func TestRateForDatePrecedence(t *testing.T) {
	rates := ratesWith(models.RoomRate{
		RoomType:    "standard",
		BaseRate:    86,
		WeekendRate: 95,
		HolidayRate: 120,
		SeasonalRates: []models.SeasonalRate{
			{FromDate: "2026-12-20", ToDate: "2026-12-31", Rate: 150},
		},
	})
	holidays := models.HolidaySection{Dates: []models.HolidayDate{
		{Month: 12, Day: 25, Name: "Giáng sinh"},
		{Month: 1, Day: 3, Name: "Lễ thử"},
	}}

	// Mùa giá thắng ngày lễ: 25/12 vừa là lễ vừa trong mùa
	assert.Equal(t, 150.0, RateForDate("standard", mustDate(t, "2026-12-25"), rates, holidays))

	// Ngày lễ thắng cuối tuần: 03/01/2026 là thứ Bảy và là ngày lễ
	assert.Equal(t, 120.0, RateForDate("standard", mustDate(t, "2026-01-03"), rates, holidays))

	// Cuối tuần thường: 04/01/2026 là Chủ nhật
	assert.Equal(t, 95.0, RateForDate("standard", mustDate(t, "2026-01-04"), rates, holidays))

	// Ngày thường dùng giá gốc
	assert.Equal(t, 86.0, RateForDate("standard", mustDate(t, "2026-01-06"), rates, holidays))
}

func TestRateForDateZeroRatesFallThrough(t *testing.T) {
	// WeekendRate/HolidayRate = 0 nghĩa là chưa cấu hình, rơi về giá gốc
	rates := ratesWith(models.RoomRate{RoomType: "standard", BaseRate: 86})
	holidays := models.HolidaySection{Dates: []models.HolidayDate{{Month: 1, Day: 3}}}

	assert.Equal(t, 86.0, RateForDate("standard", mustDate(t, "2026-01-03"), rates, holidays)) // lễ + thứ Bảy
	assert.Equal(t, 86.0, RateForDate("standard", mustDate(t, "2026-01-04"), rates, holidays)) // Chủ nhật
}

func TestRateForDateSeasonBoundariesInclusive(t *testing.T) {
	rates := ratesWith(models.RoomRate{
		RoomType: "standard",
		BaseRate: 86,
		SeasonalRates: []models.SeasonalRate{
			{FromDate: "2026-06-01", ToDate: "2026-06-30", Rate: 110},
		},
	})
	var noHolidays models.HolidaySection

	assert.Equal(t, 110.0, RateForDate("standard", mustDate(t, "2026-06-01"), rates, noHolidays))
	assert.Equal(t, 110.0, RateForDate("standard", mustDate(t, "2026-06-30"), rates, noHolidays))
	assert.Equal(t, 86.0, RateForDate("standard", mustDate(t, "2026-05-29"), rates, noHolidays)) // thứ Sáu trước mùa
	assert.Equal(t, 86.0, RateForDate("standard", mustDate(t, "2026-07-01"), rates, noHolidays))
}

func TestRateForDateUnknownRoomType(t *testing.T) {
	rates := ratesWith(models.RoomRate{RoomType: "standard", BaseRate: 86})
	assert.Equal(t, 0.0, RateForDate("suite", mustDate(t, "2026-01-06"), rates, models.HolidaySection{}))
}

func TestStayNights(t *testing.T) {
	checkIn := mustDate(t, "2026-03-10")

	// Trả phòng ngay trong ngày nhận vẫn tính 1 đêm
	sameDay := time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, StayNights(checkIn, sameDay))

	// Giờ trả phòng trong ngày không ảnh hưởng số đêm
	lateNight := time.Date(2026, 3, 12, 23, 45, 0, 0, time.UTC)
	earlyMorning := time.Date(2026, 3, 12, 0, 15, 0, 0, time.UTC)
	assert.Equal(t, 2, StayNights(checkIn, lateNight))
	assert.Equal(t, 2, StayNights(checkIn, earlyMorning))
}

func settingForBilling() *models.Setting {
	return &models.Setting{
		ID: 1,
		Taxes: models.TaxSection{
			TaxRate:       8.5,
			ServiceCharge: 10,
			CityTax:       2,
			StateTax:      6,
		},
		RoomRates: models.RateSection{RoomRates: []models.RoomRate{
			{RoomType: "standard", BaseRate: 86, WeekendRate: 95},
		}},
		Extras: models.ExtrasSection{Services: []models.ExtraService{
			{Name: "spa", Price: 50},
			{Name: "wakeup_call", Price: 10},
			{Name: "airport_pickup", Price: 30},
		}},
	}
}

// Kịch bản đầy đủ: 2 đêm cuối tuần giá 95, thuế 8.5% cộng ba khoản phí cố định
func TestComputeBillWeekendStayWithAllTaxes(t *testing.T) {
	setting := settingForBilling()
	room := &models.Room{RoomId: 1, RoomName: "101", RoomType: "standard", Price: 70}
	reservation := &models.Reservation{
		RoomID:       1,
		CheckInDate:  "2026-01-03", // thứ Bảy
		CheckOutDate: "2026-01-05",
		Status:       models.ReservationStatusCheckedIn,
	}

	checkOutMoment := time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC)
	bill, err := ComputeBill(reservation, room, setting, checkOutMoment)
	require.NoError(t, err)

	require.Len(t, bill.Nights, 2)
	assert.Equal(t, 95.0, bill.Nights[0].Rate)
	assert.Equal(t, 95.0, bill.Nights[1].Rate)
	assert.InDelta(t, 190.0, bill.RoomCharge, 0.001)
	assert.InDelta(t, 190.0, bill.Subtotal, 0.001)

	require.Len(t, bill.Taxes, 4)
	assert.InDelta(t, 16.15, bill.Taxes[0].Amount, 0.001) // 8.5% của 190
	assert.InDelta(t, 10.0, bill.Taxes[1].Amount, 0.001)
	assert.InDelta(t, 2.0, bill.Taxes[2].Amount, 0.001)
	assert.InDelta(t, 6.0, bill.Taxes[3].Amount, 0.001)

	assert.InDelta(t, 224.15, bill.Total, 0.001)
}

func TestComputeBillTaxesAreIndependent(t *testing.T) {
	setting := settingForBilling()
	room := &models.Room{RoomId: 1, RoomType: "standard"}
	reservation := &models.Reservation{
		RoomID:       1,
		CheckInDate:  "2026-01-06", // thứ Ba
		CheckOutDate: "2026-01-07",
	}
	checkOutMoment := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)

	bill, err := ComputeBill(reservation, room, setting, checkOutMoment)
	require.NoError(t, err)

	// Mỗi dòng thuế tính trên subtotal, tổng = subtotal + tổng các dòng
	sum := bill.Subtotal
	for _, line := range bill.Taxes {
		sum += line.Amount
	}
	assert.InDelta(t, sum, bill.Total, 0.001)
}

func TestComputeBillZeroTaxes(t *testing.T) {
	setting := settingForBilling()
	setting.Taxes = models.TaxSection{}
	room := &models.Room{RoomId: 1, RoomType: "standard"}
	reservation := &models.Reservation{
		RoomID:       1,
		CheckInDate:  "2026-01-06",
		CheckOutDate: "2026-01-07",
	}
	checkOutMoment := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)

	bill, err := ComputeBill(reservation, room, setting, checkOutMoment)
	require.NoError(t, err)

	assert.Empty(t, bill.Taxes)
	assert.InDelta(t, bill.Subtotal, bill.Total, 0.001)
}

func TestComputeBillWithExtras(t *testing.T) {
	setting := settingForBilling()
	setting.Taxes = models.TaxSection{}
	room := &models.Room{RoomId: 1, RoomType: "standard"}

	extras, err := json.Marshal([]string{"spa", "wakeup_call", "airport_pickup"})
	require.NoError(t, err)

	reservation := &models.Reservation{
		RoomID:        1,
		CheckInDate:   "2026-01-06",
		CheckOutDate:  "2026-01-07",
		ExtraServices: extras,
	}
	checkOutMoment := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)

	bill, err := ComputeBill(reservation, room, setting, checkOutMoment)
	require.NoError(t, err)

	require.Len(t, bill.Extras, 3)
	assert.InDelta(t, 90.0, bill.ExtrasTotal, 0.001)
	assert.InDelta(t, 86.0+90.0, bill.Subtotal, 0.001)
}

func TestComputeBillUnknownExtra(t *testing.T) {
	setting := settingForBilling()
	room := &models.Room{RoomId: 1, RoomType: "standard"}

	extras, err := json.Marshal([]string{"helicopter_tour"})
	require.NoError(t, err)

	reservation := &models.Reservation{
		RoomID:        1,
		CheckInDate:   "2026-01-06",
		CheckOutDate:  "2026-01-07",
		ExtraServices: extras,
	}
	checkOutMoment := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)

	_, err = ComputeBill(reservation, room, setting, checkOutMoment)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeUnknownExtraOption, appErr.Code)
}

func TestComputeBillMissingSettings(t *testing.T) {
	room := &models.Room{RoomId: 1, RoomType: "standard"}
	reservation := &models.Reservation{
		RoomID:       1,
		CheckInDate:  "2026-01-06",
		CheckOutDate: "2026-01-07",
	}

	_, err := ComputeBill(reservation, room, nil, time.Now())
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeSettingsMissing, appErr.Code)
}

// Loại phòng chưa có bảng giá dùng giá cố định cũ của phòng
func TestComputeBillFallsBackToRoomPrice(t *testing.T) {
	setting := settingForBilling()
	setting.Taxes = models.TaxSection{}
	room := &models.Room{RoomId: 1, RoomType: "penthouse", Price: 300}
	reservation := &models.Reservation{
		RoomID:       1,
		CheckInDate:  "2026-01-06",
		CheckOutDate: "2026-01-08",
	}
	checkOutMoment := time.Date(2026, 1, 8, 10, 0, 0, 0, time.UTC)

	bill, err := ComputeBill(reservation, room, setting, checkOutMoment)
	require.NoError(t, err)
	assert.InDelta(t, 600.0, bill.RoomCharge, 0.001)
}

// Trả phòng muộn hơn dự kiến tính theo số đêm thực ở, không theo đơn
func TestComputeBillUsesActualCheckoutDate(t *testing.T) {
	setting := settingForBilling()
	setting.Taxes = models.TaxSection{}
	room := &models.Room{RoomId: 1, RoomType: "standard"}
	reservation := &models.Reservation{
		RoomID:       1,
		CheckInDate:  "2026-01-05", // thứ Hai
		CheckOutDate: "2026-01-07",
	}

	// Khách ở thêm một đêm so với đơn
	checkOutMoment := time.Date(2026, 1, 8, 9, 0, 0, 0, time.UTC)
	bill, err := ComputeBill(reservation, room, setting, checkOutMoment)
	require.NoError(t, err)
	assert.Len(t, bill.Nights, 3)
	assert.InDelta(t, 258.0, bill.RoomCharge, 0.001)
}

func TestEstimateTotal(t *testing.T) {
	setting := settingForBilling()

	// Thứ Sáu 02/01 + thứ Bảy 03/01: một đêm thường một đêm cuối tuần
	total := EstimateTotal("standard", 70, mustDate(t, "2026-01-02"), mustDate(t, "2026-01-04"), setting)
	assert.InDelta(t, 86.0+95.0, total, 0.001)

	// Loại phòng chưa có bảng giá dùng giá phòng
	total = EstimateTotal("penthouse", 300, mustDate(t, "2026-01-06"), mustDate(t, "2026-01-08"), setting)
	assert.InDelta(t, 600.0, total, 0.001)
}

func TestRenderInvoiceContainsBillLines(t *testing.T) {
	setting := settingForBilling()
	setting.General.HotelName = "Khách sạn Hoa Sen"
	room := &models.Room{RoomId: 1, RoomName: "101", RoomType: "standard"}
	reservation := &models.Reservation{
		Code:         "HMS123",
		RoomID:       1,
		GuestName:    "Nguyễn Văn A",
		CheckInDate:  "2026-01-03",
		CheckOutDate: "2026-01-05",
	}

	checkOutMoment := time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC)
	bill, err := ComputeBill(reservation, room, setting, checkOutMoment)
	require.NoError(t, err)

	text := RenderInvoice(reservation, room, bill, setting, checkOutMoment)
	assert.Contains(t, text, "Khách sạn Hoa Sen")
	assert.Contains(t, text, "HMS123")
	assert.Contains(t, text, "Nguyễn Văn A")
	assert.Contains(t, text, "224.15")
}
