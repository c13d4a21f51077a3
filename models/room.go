package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "AVAILABLE"
	RoomOccupied    RoomStatus = "OCCUPIED"
	RoomMaintenance RoomStatus = "MAINTENANCE"
)

var RoomStatuses = []RoomStatus{RoomAvailable, RoomOccupied, RoomMaintenance}

func ParseRoomStatus(raw string) (RoomStatus, error) {
	for _, s := range RoomStatuses {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown room status %q", raw)
}

type Room struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	RoomNumber  string          `gorm:"column:room_number;type:varchar(50)" json:"roomNumber"`
	RoomType    string          `gorm:"column:room_type;type:varchar(100)" json:"roomType"`
	FloorNumber int             `gorm:"column:floor_number" json:"floorNumber"`
	Capacity    int             `json:"capacity"`
	BasePrice   decimal.Decimal `gorm:"column:base_price;type:decimal(12,2)" json:"basePrice"`
	Description string          `gorm:"type:text" json:"description"`
	Amenities   string          `gorm:"type:text" json:"amenities"`
	Status      RoomStatus      `gorm:"size:32;index" json:"status"`
	IsActive    bool            `gorm:"not null" json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
