package commands

import (
	"gorm.io/gorm"

	"hms/models"
)

// ReservationCommand định nghĩa interface cho các command
type ReservationCommand interface {
	Execute() error
}

// CreateReservationCommand command để tạo đơn mới
type CreateReservationCommand struct {
	reservation *models.Reservation
	db          *gorm.DB
}

func NewCreateReservationCommand(reservation *models.Reservation, db *gorm.DB) *CreateReservationCommand {
	return &CreateReservationCommand{
		reservation: reservation,
		db:          db,
	}
}

func (c *CreateReservationCommand) Execute() error {
	return c.db.Create(c.reservation).Error
}

// UpdateReservationCommand command để cập nhật đơn
type UpdateReservationCommand struct {
	reservation *models.Reservation
	db          *gorm.DB
}

func NewUpdateReservationCommand(reservation *models.Reservation, db *gorm.DB) *UpdateReservationCommand {
	return &UpdateReservationCommand{
		reservation: reservation,
		db:          db,
	}
}

func (c *UpdateReservationCommand) Execute() error {
	return c.db.Save(c.reservation).Error
}
