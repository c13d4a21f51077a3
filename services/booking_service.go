package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"resort-admin/models"
	"resort-admin/utils"
)

const (
	recentBookingsLimit = 5
	bookingDateLayout   = "2006-01-02"
	// every booking listed by the admin is a room booking
	bookingTypeRoom = "Room"
)

// BookingView is the flattened row the admin booking tables render.
type BookingView struct {
	BookingReference string          `json:"bookingReference"`
	GuestName        string          `json:"guestName"`
	Type             string          `json:"type"`
	CheckInDate      string          `json:"checkInDate"`
	CheckOutDate     string          `json:"checkOutDate"`
	Status           string          `json:"status"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
}

func NewBookingView(b models.Booking) BookingView {
	return BookingView{
		BookingReference: b.BookingReference,
		GuestName:        b.User.FullName(),
		Type:             bookingTypeRoom,
		CheckInDate:      time.Time(b.CheckInDate).Format(bookingDateLayout),
		CheckOutDate:     time.Time(b.CheckOutDate).Format(bookingDateLayout),
		Status:           string(b.Status),
		TotalAmount:      b.TotalAmount,
	}
}

type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// Recent returns the first few bookings in store order.
func (s *BookingService) Recent(ctx context.Context) ([]BookingView, error) {
	return s.list(ctx, recentBookingsLimit)
}

func (s *BookingService) All(ctx context.Context) ([]BookingView, error) {
	return s.list(ctx, 0)
}

func (s *BookingService) list(ctx context.Context, limit int) ([]BookingView, error) {
	q := s.DB.WithContext(ctx).Preload("User").Order("id")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, utils.NewStorageError(err)
	}

	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, NewBookingView(b))
	}
	return views, nil
}
