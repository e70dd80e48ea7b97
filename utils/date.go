package utils

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout là định dạng ngày dùng thống nhất toàn hệ thống
const DateLayout = "2006-01-02"

// CalendarDate biểu diễn một ngày lịch thuần túy (không có giờ/phút),
// dùng cho ngày nhận phòng, trả phòng, mùa giá và ngày lễ.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseCalendarDate parse chuỗi "2006-01-02" thành CalendarDate
func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return CalendarDate{}, err
	}
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// DateOf chuẩn hóa một time.Time về ngày lịch, bỏ phần giờ
func DateOf(t time.Time) CalendarDate {
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today trả về ngày hiện tại theo giờ hệ thống
func Today() CalendarDate {
	return DateOf(time.Now())
}

// Time trả về nửa đêm UTC của ngày, chỉ dùng cho số học ngày
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d CalendarDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

func (d CalendarDate) Equal(o CalendarDate) bool {
	return d.Year == o.Year && d.Month == o.Month && d.Day == o.Day
}

func (d CalendarDate) Before(o CalendarDate) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d CalendarDate) After(o CalendarDate) bool {
	return o.Before(d)
}

// AddDays trả về ngày cách d n ngày (n có thể âm)
func (d CalendarDate) AddDays(n int) CalendarDate {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Weekday trả về thứ trong tuần của ngày
func (d CalendarDate) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// IsWeekend kiểm tra ngày rơi vào thứ Bảy hoặc Chủ nhật
func (d CalendarDate) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DaysBetween trả về số ngày từ a đến b (b - a)
func DaysBetween(a, b CalendarDate) int {
	return int(b.Time().Sub(a.Time()) / (24 * time.Hour))
}

// RangesOverlap kiểm tra hai khoảng nửa mở [aIn, aOut) và [bIn, bOut)
// có giao nhau không: aIn < bOut và aOut > bIn.
func RangesOverlap(aIn, aOut, bIn, bOut CalendarDate) bool {
	return aIn.Before(bOut) && aOut.After(bIn)
}

// MarshalJSON serialize CalendarDate thành chuỗi "2006-01-02"
func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON parse chuỗi "2006-01-02" thành CalendarDate
func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCalendarDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
