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
	defaultEventSpaceFloor    = 1
	defaultEventSpaceCapacity = 50
	defaultEventSpacePrice    = decimal.RequireFromString("500.00")
)

type EventSpaceService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewEventSpaceService(db *gorm.DB, log *zap.Logger) *EventSpaceService {
	return &EventSpaceService{DB: db, Log: log}
}

type EventSpaceUpdate struct {
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	Capacity             int             `json:"capacity"`
	BasePrice            decimal.Decimal `json:"basePrice"`
	SetupTypes           string          `json:"setupTypes"`
	Amenities            string          `json:"amenities"`
	FloorNumber          int             `json:"floorNumber"`
	Dimensions           string          `json:"dimensions"`
	CateringAvailable    bool            `json:"cateringAvailable"`
	AudioVisualEquipment bool            `json:"audioVisualEquipment"`
	ParkingAvailable     bool            `json:"parkingAvailable"`
	Status               *string         `json:"status"`
}

func (s *EventSpaceService) Create(ctx context.Context, payload map[string]any) (*models.EventSpace, error) {
	capacity, err := looseField(payload, "capacity").Int(defaultEventSpaceCapacity)
	if err != nil {
		return nil, err
	}
	price, err := looseField(payload, "basePrice").Decimal(defaultEventSpacePrice)
	if err != nil {
		return nil, err
	}
	floor, err := looseField(payload, "floorNumber").Int(defaultEventSpaceFloor)
	if err != nil {
		return nil, err
	}

	space := models.EventSpace{
		Name:                 looseString(payload, "name"),
		Description:          looseString(payload, "description"),
		Capacity:             capacity,
		BasePrice:            price,
		SetupTypes:           looseString(payload, "setupTypes"),
		Amenities:            looseString(payload, "amenities"),
		FloorNumber:          floor,
		Dimensions:           looseString(payload, "dimensions"),
		CateringAvailable:    looseBool(payload, "cateringAvailable"),
		AudioVisualEquipment: looseBool(payload, "audioVisualEquipment"),
		ParkingAvailable:     looseBool(payload, "parkingAvailable"),
		Status:               models.EventSpaceAvailable,
		IsActive:             true,
	}
	if err := s.DB.WithContext(ctx).Create(&space).Error; err != nil {
		return nil, utils.NewStorageError(err)
	}

	s.Log.Info("event space created", zap.Uint("event_space_id", space.ID), zap.String("name", space.Name))
	return &space, nil
}

func (s *EventSpaceService) Update(ctx context.Context, id uint, req EventSpaceUpdate) (*models.EventSpace, error) {
	space, err := findByID[models.EventSpace](ctx, s.DB, id, "Event space not found")
	if err != nil {
		return nil, err
	}

	status := space.Status
	if req.Status != nil {
		status, err = models.ParseEventSpaceStatus(*req.Status)
		if err != nil {
			return nil, utils.NewValidationError(fmt.Sprintf("Invalid event space status: %s", *req.Status))
		}
	}

	space.Name = req.Name
	space.Description = req.Description
	space.Capacity = req.Capacity
	space.BasePrice = req.BasePrice
	space.SetupTypes = req.SetupTypes
	space.Amenities = req.Amenities
	space.FloorNumber = req.FloorNumber
	space.Dimensions = req.Dimensions
	space.CateringAvailable = req.CateringAvailable
	space.AudioVisualEquipment = req.AudioVisualEquipment
	space.ParkingAvailable = req.ParkingAvailable
	space.Status = status

	if err := s.DB.WithContext(ctx).Save(space).Error; err != nil {
		return nil, utils.NewStorageError(err)
	}

	s.Log.Info("event space updated", zap.Uint("event_space_id", space.ID), zap.String("status", string(space.Status)))
	return space, nil
}

func (s *EventSpaceService) Delete(ctx context.Context, id uint) error {
	space, err := findByID[models.EventSpace](ctx, s.DB, id, "Event space not found")
	if err != nil {
		return err
	}

	if err := s.DB.WithContext(ctx).Model(space).Update("is_active", false).Error; err != nil {
		return utils.NewStorageError(err)
	}

	s.Log.Info("event space deactivated", zap.Uint("event_space_id", space.ID), zap.String("name", space.Name))
	return nil
}

func (s *EventSpaceService) Get(ctx context.Context, id uint) (*models.EventSpace, error) {
	return findByID[models.EventSpace](ctx, s.DB, id, "Event space not found")
}

func (s *EventSpaceService) ListActive(ctx context.Context) ([]models.EventSpace, error) {
	var spaces []models.EventSpace
	if err := s.DB.WithContext(ctx).Where("is_active = ?", true).Order("id").Find(&spaces).Error; err != nil {
		return nil, utils.NewStorageError(err)
	}
	return spaces, nil
}
