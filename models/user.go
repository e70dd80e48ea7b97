package models

import "time"

type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Email       string    `json:"email" gorm:"unique"`
	Password    string    `json:"-"`
	PhoneNumber string    `json:"phoneNumber"`
	Role        int       `json:"role" gorm:"default:0"` // 0: khách, 1: admin, 2: lễ tân, 3: buồng phòng, 4: bảo trì
	Status      int       `json:"status" gorm:"default:1"`
	IsVerified  bool      `json:"isVerified" gorm:"default:false"`
	GoogleID    string    `json:"-"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
