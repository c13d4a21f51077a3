package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type EventSpaceStatus string

const (
	EventSpaceAvailable   EventSpaceStatus = "AVAILABLE"
	EventSpaceBooked      EventSpaceStatus = "BOOKED"
	EventSpaceMaintenance EventSpaceStatus = "MAINTENANCE"
)

var EventSpaceStatuses = []EventSpaceStatus{EventSpaceAvailable, EventSpaceBooked, EventSpaceMaintenance}

func ParseEventSpaceStatus(raw string) (EventSpaceStatus, error) {
	for _, s := range EventSpaceStatuses {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown event space status %q", raw)
}

// EventSpace is a bookable function room (ballroom, terrace, meeting room).
type EventSpace struct {
	ID                   uint             `gorm:"primaryKey" json:"id"`
	Name                 string           `gorm:"size:150" json:"name"`
	Description          string           `gorm:"type:text" json:"description"`
	Capacity             int              `json:"capacity"`
	BasePrice            decimal.Decimal  `gorm:"column:base_price;type:decimal(12,2)" json:"basePrice"`
	SetupTypes           string           `gorm:"column:setup_types;type:text" json:"setupTypes"`
	Amenities            string           `gorm:"type:text" json:"amenities"`
	FloorNumber          int              `gorm:"column:floor_number" json:"floorNumber"`
	Dimensions           string           `gorm:"size:100" json:"dimensions"`
	CateringAvailable    bool             `json:"cateringAvailable"`
	AudioVisualEquipment bool             `gorm:"column:audio_visual_equipment" json:"audioVisualEquipment"`
	ParkingAvailable     bool             `json:"parkingAvailable"`
	Status               EventSpaceStatus `gorm:"size:32;index" json:"status"`
	IsActive             bool             `gorm:"not null" json:"isActive"`
	CreatedAt            time.Time        `json:"createdAt"`
	UpdatedAt            time.Time        `json:"updatedAt"`
}
