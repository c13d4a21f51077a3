package services

import (
	"bytes"
	"context"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"resort-admin/models"
	"resort-admin/testutil"
)

var ctx = context.Background()

// pngBytes is a PNG signature followed by padding; enough for sniffing.
var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR"), bytes.Repeat([]byte{0x01}, 128)...)

func mustCreateRoom(t *testing.T, db *gorm.DB, number string, active bool) *models.Room {
	t.Helper()
	room := models.Room{
		RoomNumber: number,
		RoomType:   "Deluxe",
		Capacity:   2,
		BasePrice:  decimal.RequireFromString("120.00"),
		Status:     models.RoomAvailable,
		IsActive:   active,
	}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("create room: %v", err)
	}
	return &room
}

func mustCreateEventSpace(t *testing.T, db *gorm.DB, name string) *models.EventSpace {
	t.Helper()
	space := models.EventSpace{
		Name:      name,
		Capacity:  80,
		BasePrice: decimal.RequireFromString("900.00"),
		Status:    models.EventSpaceAvailable,
		IsActive:  true,
	}
	if err := db.Create(&space).Error; err != nil {
		t.Fatalf("create event space: %v", err)
	}
	return &space
}

func newPhotoService(t *testing.T) (*PhotoService, *gorm.DB, string) {
	t.Helper()
	db := testutil.NewDB(t)
	root := t.TempDir()
	return NewPhotoService(db, NewLocalBlobStore(root), zap.NewNop()), db, root
}

func countFiles(t *testing.T, root string) int {
	t.Helper()
	n := 0
	err := filepath.WalkDir(root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			n++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
	return n
}
