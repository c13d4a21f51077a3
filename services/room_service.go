package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"resort-admin/models"
	"resort-admin/utils"
)

var (
	defaultRoomFloor    = 1
	defaultRoomCapacity = 2
	defaultRoomPrice    = decimal.RequireFromString("100.00")
)

type RoomService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewRoomService(db *gorm.DB, log *zap.Logger) *RoomService {
	return &RoomService{DB: db, Log: log}
}

// RoomUpdate overwrites every editable field. A nil Status keeps the
// current status.
type RoomUpdate struct {
	RoomNumber  string          `json:"roomNumber"`
	RoomType    string          `json:"roomType"`
	FloorNumber int             `json:"floorNumber"`
	Capacity    int             `json:"capacity"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	Description string          `json:"description"`
	Amenities   string          `json:"amenities"`
	Status      *string         `json:"status"`
}

// Create builds a room from a loosely typed payload. New rooms always
// start AVAILABLE and active.
func (s *RoomService) Create(ctx context.Context, payload map[string]any) (*models.Room, error) {
	floor, err := looseField(payload, "floorNumber").Int(defaultRoomFloor)
	if err != nil {
		return nil, err
	}
	capacity, err := looseField(payload, "capacity").Int(defaultRoomCapacity)
	if err != nil {
		return nil, err
	}
	price, err := looseField(payload, "basePrice").Decimal(defaultRoomPrice)
	if err != nil {
		return nil, err
	}

	room := models.Room{
		RoomNumber:  looseString(payload, "roomNumber"),
		RoomType:    looseString(payload, "roomType"),
		FloorNumber: floor,
		Capacity:    capacity,
		BasePrice:   price,
		Description: looseString(payload, "description"),
		Amenities:   looseString(payload, "amenities"),
		Status:      models.RoomAvailable,
		IsActive:    true,
	}
	if err := s.DB.WithContext(ctx).Create(&room).Error; err != nil {
		return nil, utils.NewStorageError(err)
	}

	s.Log.Info("room created", zap.Uint("room_id", room.ID), zap.String("room_number", room.RoomNumber))
	return &room, nil
}

func (s *RoomService) Update(ctx context.Context, id uint, req RoomUpdate) (*models.Room, error) {
	room, err := findByID[models.Room](ctx, s.DB, id, "Room not found")
	if err != nil {
		return nil, err
	}

	status := room.Status
	if req.Status != nil {
		status, err = models.ParseRoomStatus(*req.Status)
		if err != nil {
			return nil, utils.NewValidationError(fmt.Sprintf("Invalid room status: %s", *req.Status))
		}
	}

	room.RoomNumber = req.RoomNumber
	room.RoomType = req.RoomType
	room.FloorNumber = req.FloorNumber
	room.Capacity = req.Capacity
	room.BasePrice = req.BasePrice
	room.Description = req.Description
	room.Amenities = req.Amenities
	room.Status = status

	if err := s.DB.WithContext(ctx).Save(room).Error; err != nil {
		return nil, utils.NewStorageError(err)
	}

	s.Log.Info("room updated", zap.Uint("room_id", room.ID), zap.String("status", string(room.Status)))
	return room, nil
}

// Delete deactivates the room. The row stays readable by id.
func (s *RoomService) Delete(ctx context.Context, id uint) error {
	room, err := findByID[models.Room](ctx, s.DB, id, "Room not found")
	if err != nil {
		return err
	}

	if err := s.DB.WithContext(ctx).Model(room).Update("is_active", false).Error; err != nil {
		return utils.NewStorageError(err)
	}

	s.Log.Info("room deactivated", zap.Uint("room_id", room.ID), zap.String("room_number", room.RoomNumber))
	return nil
}

func (s *RoomService) Get(ctx context.Context, id uint) (*models.Room, error) {
	return findByID[models.Room](ctx, s.DB, id, "Room not found")
}

func (s *RoomService) ListActive(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.WithContext(ctx).Where("is_active = ?", true).Order("id").Find(&rooms).Error; err != nil {
		return nil, utils.NewStorageError(err)
	}
	return rooms, nil
}
