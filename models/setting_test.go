package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hms/utils"
)

func TestRateSectionRateFor(t *testing.T) {
	rates := RateSection{RoomRates: []RoomRate{
		{RoomType: "standard", BaseRate: 86},
		{RoomType: "suite", BaseRate: 150},
	}}

	entry := rates.RateFor("suite")
	require.NotNil(t, entry)
	assert.Equal(t, 150.0, entry.BaseRate)

	assert.Nil(t, rates.RateFor("penthouse"))
}

func TestExtrasSectionFind(t *testing.T) {
	extras := ExtrasSection{Services: []ExtraService{
		{Name: "spa", Price: 50},
		{Name: "wakeup_call", Price: 10},
	}}

	service := extras.Find("spa")
	require.NotNil(t, service)
	assert.Equal(t, 50.0, service.Price)

	assert.Nil(t, extras.Find("massage"))
}

func TestHolidaySectionContains(t *testing.T) {
	holidays := HolidaySection{Dates: []HolidayDate{
		{Month: 12, Day: 25, Name: "Giáng sinh"},
	}}

	christmas, err := utils.ParseCalendarDate("2026-12-25")
	require.NoError(t, err)
	assert.True(t, holidays.Contains(christmas))

	// Ngày lễ lặp lại hàng năm, không phụ thuộc năm
	christmasNextYear, err := utils.ParseCalendarDate("2027-12-25")
	require.NoError(t, err)
	assert.True(t, holidays.Contains(christmasNextYear))

	ordinary, err := utils.ParseCalendarDate("2026-12-24")
	require.NoError(t, err)
	assert.False(t, holidays.Contains(ordinary))
}

func TestDefaultSettingSeedsCatalogs(t *testing.T) {
	setting := DefaultSetting()

	require.NotNil(t, setting.Extras.Find("spa"))
	require.NotNil(t, setting.Extras.Find("wakeup_call"))
	require.NotNil(t, setting.Extras.Find("airport_pickup"))
	assert.Equal(t, 50.0, setting.Extras.Find("spa").Price)

	assert.NotEmpty(t, setting.Holidays.Dates)
	assert.Greater(t, setting.Policies.PendingHoldHours, 0)
}
