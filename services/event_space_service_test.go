package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"resort-admin/models"
	"resort-admin/testutil"
	"resort-admin/utils"
)

func newEventSpaceService(t *testing.T) *EventSpaceService {
	return NewEventSpaceService(testutil.NewDB(t), zap.NewNop())
}

func TestCreateEventSpaceAppliesDefaults(t *testing.T) {
	svc := newEventSpaceService(t)

	space, err := svc.Create(ctx, decode(t, `{"name": "Palm Hall", "setupTypes": "Theatre,Banquet", "cateringAvailable": true}`))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if space.Capacity != 50 || space.FloorNumber != 1 || !space.BasePrice.Equal(decimal.RequireFromString("500.00")) {
		t.Fatalf("defaults not applied: %+v", space)
	}
	if space.Status != models.EventSpaceAvailable || !space.IsActive || !space.CateringAvailable {
		t.Fatalf("unexpected event space: %+v", space)
	}
}

func TestCreateEventSpaceRejectsMalformedPrice(t *testing.T) {
	svc := newEventSpaceService(t)
	_, err := svc.Create(ctx, decode(t, `{"name": "Terrace", "basePrice": "cheap"}`))
	if utils.KindOf(err) != utils.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateEventSpace(t *testing.T) {
	svc := newEventSpaceService(t)
	space := mustCreateEventSpace(t, svc.DB, "Palm Hall")

	booked := "BOOKED"
	updated, err := svc.Update(ctx, space.ID, EventSpaceUpdate{
		Name:             "Palm Ballroom",
		Capacity:         200,
		BasePrice:        decimal.RequireFromString("1500.00"),
		ParkingAvailable: true,
		Status:           &booked,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != models.EventSpaceBooked || updated.Capacity != 200 || !updated.ParkingAvailable {
		t.Fatalf("unexpected event space: %+v", updated)
	}

	occupied := "OCCUPIED"
	if _, err := svc.Update(ctx, space.ID, EventSpaceUpdate{Status: &occupied}); utils.KindOf(err) != utils.KindValidation {
		t.Fatalf("room status must not be accepted, got %v", err)
	}
	if _, err := svc.Update(ctx, 77, EventSpaceUpdate{}); err == nil || err.Error() != "Event space not found" {
		t.Fatalf("expected Event space not found, got %v", err)
	}
}

func TestDeleteEventSpaceIsSoft(t *testing.T) {
	svc := newEventSpaceService(t)
	space := mustCreateEventSpace(t, svc.DB, "Palm Hall")

	if err := svc.Delete(ctx, space.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err := svc.Get(ctx, space.ID)
	if err != nil || got.IsActive {
		t.Fatalf("expected inactive row, got %+v %v", got, err)
	}
	active, _ := svc.ListActive(ctx)
	if len(active) != 0 {
		t.Fatalf("active = %+v", active)
	}
}
