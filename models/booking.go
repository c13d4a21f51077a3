package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type BookingStatus string

const (
	BookingPending    BookingStatus = "PENDING"
	BookingConfirmed  BookingStatus = "CONFIRMED"
	BookingCancelled  BookingStatus = "CANCELLED"
	BookingCheckedIn  BookingStatus = "CHECKED_IN"
	BookingCheckedOut BookingStatus = "CHECKED_OUT"
)

// Booking is read-only from the admin side; reservations are made by the
// guest-facing service.
type Booking struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	BookingReference string          `gorm:"column:booking_reference;size:64;uniqueIndex" json:"bookingReference"`
	UserID           uint            `gorm:"column:user_id;index;not null" json:"userId"`
	CheckInDate      datatypes.Date  `gorm:"column:check_in_date" json:"checkInDate"`
	CheckOutDate     datatypes.Date  `gorm:"column:check_out_date" json:"checkOutDate"`
	Status           BookingStatus   `gorm:"size:32;index" json:"status"`
	TotalAmount      decimal.Decimal `gorm:"column:total_amount;type:decimal(12,2)" json:"totalAmount"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:RESTRICT" json:"user"`
}
