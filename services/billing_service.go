package services

import (
	"fmt"
	"strings"
	"time"

	"hms/errors"
	"hms/models"
	"hms/utils"
)

// RateForDate trả về giá một đêm cho loại phòng vào một ngày cụ thể.
// Thứ tự ưu tiên: mùa > lễ > cuối tuần > giá gốc. Giá lễ/cuối tuần chỉ áp
// dụng khi được cấu hình > 0. Trả về 0 nếu loại phòng chưa có bảng giá,
// caller tự quyết định fallback.
func RateForDate(roomType string, date utils.CalendarDate, rates models.RateSection, holidays models.HolidaySection) float64 {
	entry := rates.RateFor(roomType)
	if entry == nil {
		return 0
	}

	// Mùa giá: so sánh chuỗi "2006-01-02", bao gồm hai đầu, mùa khai báo trước thắng
	ds := date.String()
	for _, season := range entry.SeasonalRates {
		if season.FromDate <= ds && ds <= season.ToDate {
			return season.Rate
		}
	}

	if entry.HolidayRate > 0 && holidays.Contains(date) {
		return entry.HolidayRate
	}

	if entry.WeekendRate > 0 && date.IsWeekend() {
		return entry.WeekendRate
	}

	return entry.BaseRate
}

// StayNights tính số đêm thực tế của kỳ lưu trú: từ ngày nhận phòng đến
// ngày trả phòng thực tế, tối thiểu 1 đêm (trả phòng ngay trong ngày
// nhận phòng vẫn tính 1 đêm).
func StayNights(checkIn utils.CalendarDate, checkOutMoment time.Time) int {
	nights := utils.DaysBetween(checkIn, utils.DateOf(checkOutMoment))
	if nights < 1 {
		nights = 1
	}
	return nights
}

// ComputeBill tính hóa đơn chi tiết khi trả phòng: tiền phòng theo từng
// đêm thực ở, dịch vụ thêm theo catalog, và các dòng thuế/phí tính độc
// lập trên subtotal (không chồng thuế lên nhau).
func ComputeBill(reservation *models.Reservation, room *models.Room, setting *models.Setting, checkOutMoment time.Time) (*models.Bill, error) {
	if setting == nil {
		return nil, errors.NewAppError(errors.ErrCodeSettingsMissing, "Chưa có cấu hình hệ thống, không thể tính hóa đơn", nil)
	}

	checkIn, err := utils.ParseCalendarDate(reservation.CheckInDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng không hợp lệ", err)
	}

	bill := &models.Bill{}
	nights := StayNights(checkIn, checkOutMoment)

	for i := 0; i < nights; i++ {
		night := checkIn.AddDays(i)
		rate := RateForDate(room.RoomType, night, setting.RoomRates, setting.Holidays)
		if rate == 0 {
			// Loại phòng chưa có bảng giá: dùng giá cố định cũ của phòng
			rate = room.Price
		}
		bill.Nights = append(bill.Nights, models.NightCharge{Date: night.String(), Rate: rate})
		bill.RoomCharge += rate
	}

	for _, name := range reservation.ExtraServiceNames() {
		service := setting.Extras.Find(name)
		if service == nil {
			return nil, errors.NewAppError(errors.ErrCodeUnknownExtraOption, "Dịch vụ thêm không có trong catalog: "+name, nil)
		}
		bill.Extras = append(bill.Extras, models.ExtraCharge{Name: service.Name, Price: service.Price})
		bill.ExtrasTotal += service.Price
	}

	bill.Subtotal = bill.RoomCharge + bill.ExtrasTotal

	taxes := setting.Taxes
	if taxes.TaxRate > 0 {
		bill.Taxes = append(bill.Taxes, models.TaxLine{Name: "Thuế", Amount: bill.Subtotal * taxes.TaxRate / 100})
	}
	if taxes.ServiceCharge > 0 {
		bill.Taxes = append(bill.Taxes, models.TaxLine{Name: "Phí dịch vụ", Amount: taxes.ServiceCharge})
	}
	if taxes.CityTax > 0 {
		bill.Taxes = append(bill.Taxes, models.TaxLine{Name: "Thuế thành phố", Amount: taxes.CityTax})
	}
	if taxes.StateTax > 0 {
		bill.Taxes = append(bill.Taxes, models.TaxLine{Name: "Thuế bang", Amount: taxes.StateTax})
	}

	bill.Total = bill.Subtotal
	for _, line := range bill.Taxes {
		bill.Total += line.Amount
	}

	return bill, nil
}

// EstimateTotal tính giá ước tính lúc đặt phòng cho khoảng [checkIn, checkOut)
func EstimateTotal(roomType string, roomPrice float64, checkIn, checkOut utils.CalendarDate, setting *models.Setting) float64 {
	total := 0.0
	for d := checkIn; d.Before(checkOut); d = d.AddDays(1) {
		rate := RateForDate(roomType, d, setting.RoomRates, setting.Holidays)
		if rate == 0 {
			rate = roomPrice
		}
		total += rate
	}
	return total
}

// RenderInvoice dựng bản in hóa đơn. Văn bản này được lưu nguyên văn vào
// đơn đặt phòng và không dựng lại, nên hóa đơn cũ không đổi khi bảng giá đổi.
func RenderInvoice(reservation *models.Reservation, room *models.Room, bill *models.Bill, setting *models.Setting, checkOutMoment time.Time) string {
	var b strings.Builder

	hotelName := setting.General.HotelName
	if hotelName == "" {
		hotelName = "Khách sạn"
	}

	fmt.Fprintf(&b, "========================================\n")
	fmt.Fprintf(&b, "%s\n", hotelName)
	if setting.General.Address != "" {
		fmt.Fprintf(&b, "%s\n", setting.General.Address)
	}
	fmt.Fprintf(&b, "========================================\n")
	fmt.Fprintf(&b, "HÓA ĐƠN - Mã đặt phòng: %s\n", reservation.Code)
	fmt.Fprintf(&b, "Phòng: %s (%s)\n", room.RoomName, room.RoomType)
	fmt.Fprintf(&b, "Khách: %s\n", guestDisplayName(reservation))
	fmt.Fprintf(&b, "Nhận phòng: %s\n", reservation.CheckInDate)
	fmt.Fprintf(&b, "Trả phòng:  %s\n", checkOutMoment.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "----------------------------------------\n")
	for _, night := range bill.Nights {
		fmt.Fprintf(&b, "Đêm %s  %10.2f\n", night.Date, night.Rate)
	}
	fmt.Fprintf(&b, "Tiền phòng (%d đêm): %10.2f\n", len(bill.Nights), bill.RoomCharge)
	if len(bill.Extras) > 0 {
		fmt.Fprintf(&b, "----------------------------------------\n")
		for _, extra := range bill.Extras {
			fmt.Fprintf(&b, "%-20s %10.2f\n", extra.Name, extra.Price)
		}
		fmt.Fprintf(&b, "Tổng dịch vụ thêm:   %10.2f\n", bill.ExtrasTotal)
	}
	fmt.Fprintf(&b, "----------------------------------------\n")
	fmt.Fprintf(&b, "Subtotal:            %10.2f\n", bill.Subtotal)
	for _, tax := range bill.Taxes {
		fmt.Fprintf(&b, "%-20s %10.2f\n", tax.Name, tax.Amount)
	}
	fmt.Fprintf(&b, "========================================\n")
	fmt.Fprintf(&b, "TỔNG CỘNG:           %10.2f\n", bill.Total)
	fmt.Fprintf(&b, "========================================\n")

	return b.String()
}

func guestDisplayName(reservation *models.Reservation) string {
	if reservation.User != nil && reservation.User.Name != "" {
		return reservation.User.Name
	}
	if reservation.GuestName != "" {
		return reservation.GuestName
	}
	return "Khách lẻ"
}
