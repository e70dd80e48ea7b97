package models

// NightCharge là tiền phòng của một đêm, ghi lại giá thực áp dụng
type NightCharge struct {
	Date string  `json:"date"` // dạng "2006-01-02"
	Rate float64 `json:"rate"`
}

// ExtraCharge là một dịch vụ thêm đã chọn
type ExtraCharge struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// TaxLine là một dòng thuế/phí, tính độc lập trên subtotal
type TaxLine struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Bill là hóa đơn chi tiết chốt tại thời điểm trả phòng
type Bill struct {
	Nights      []NightCharge `json:"nights"`
	RoomCharge  float64       `json:"roomCharge"`
	Extras      []ExtraCharge `json:"extras,omitempty"`
	ExtrasTotal float64       `json:"extrasTotal"`
	Subtotal    float64       `json:"subtotal"`
	Taxes       []TaxLine     `json:"taxes,omitempty"`
	Total       float64       `json:"total"`
}
