package services

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"resort-admin/models"
	"resort-admin/utils"
)

// placeholderMonthlyRevenue is shown on the dashboard until revenue
// aggregation exists. It is not computed from bookings.
var placeholderMonthlyRevenue = decimal.RequireFromString("15420.00")

type Statistics struct {
	TotalUsers     int64           `json:"totalUsers"`
	AvailableRooms int64           `json:"availableRooms"`
	ActiveBookings int64           `json:"activeBookings"`
	MonthlyRevenue decimal.Decimal `json:"monthlyRevenue"`
}

type StatisticsService struct {
	DB *gorm.DB
}

func NewStatisticsService(db *gorm.DB) *StatisticsService {
	return &StatisticsService{DB: db}
}

func (s *StatisticsService) Get(ctx context.Context) (*Statistics, error) {
	db := s.DB.WithContext(ctx)
	stats := Statistics{MonthlyRevenue: placeholderMonthlyRevenue}

	if err := db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, utils.NewStorageError(err)
	}
	// counts every room in AVAILABLE status, deactivated ones included
	if err := db.Model(&models.Room{}).Where("status = ?", models.RoomAvailable).Count(&stats.AvailableRooms).Error; err != nil {
		return nil, utils.NewStorageError(err)
	}
	if err := db.Model(&models.Booking{}).Where("status = ?", models.BookingConfirmed).Count(&stats.ActiveBookings).Error; err != nil {
		return nil, utils.NewStorageError(err)
	}
	return &stats, nil
}
