package constants

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// User role
const (
	RoleGuest        = 0
	RoleAdmin        = 1
	RoleReceptionist = 2
	RoleHousekeeping = 3
	RoleMaintenance  = 4
)

// Reservation status
const (
	ReservationStatusPending    = 0
	ReservationStatusConfirmed  = 1
	ReservationStatusCheckedIn  = 2
	ReservationStatusCheckedOut = 3
	ReservationStatusCancelled  = 4
)

// Room status
const (
	RoomStatusAvailable   = 0
	RoomStatusOccupied    = 1
	RoomStatusCleaning    = 2
	RoomStatusMaintenance = 3
	RoomStatusClean       = 4
)

// Payment status
const (
	PaymentStatusPending = 0
	PaymentStatusSuccess = 1
	PaymentStatusFailed  = 2
)

// Room status actor - ai được phép chuyển trạng thái phòng
const (
	RoomActorReservation  = 0
	RoomActorHousekeeping = 1
	RoomActorMaintenance  = 2
)
