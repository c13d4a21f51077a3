package services

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"gorm.io/gorm"

	"resort-admin/models"
	"resort-admin/utils"
)

func uploadPNG(t *testing.T, svc *PhotoService, owner models.PhotoOwner, name string) *models.Photo {
	t.Helper()
	photo, err := svc.Upload(ctx, UploadInput{
		Owner:            owner,
		OriginalFileName: name,
		UploadedBy:       "admin",
		File:             bytes.NewReader(pngBytes),
	})
	if err != nil {
		t.Fatalf("upload %s: %v", name, err)
	}
	return photo
}

func displayOrders(t *testing.T, svc *PhotoService, owner models.PhotoOwner) map[uint]int {
	t.Helper()
	photos, err := svc.List(ctx, owner)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	out := make(map[uint]int, len(photos))
	for _, p := range photos {
		out[p.ID] = p.DisplayOrder
	}
	return out
}

func TestUploadAssignsSequentialDisplayOrder(t *testing.T) {
	svc, db, root := newPhotoService(t)
	room := mustCreateRoom(t, db, "101", true)
	owner := models.RoomOwner(room.ID)

	var ids []uint
	for i, name := range []string{"a.png", "b.png", "c.png"} {
		p := uploadPNG(t, svc, owner, name)
		if p.DisplayOrder != i {
			t.Fatalf("%s display order = %d, want %d", name, p.DisplayOrder, i)
		}
		if !p.IsActive || p.UploadedAt.IsZero() || p.ContentType != "image/png" || p.FileSize != int64(len(pngBytes)) {
			t.Fatalf("unexpected photo: %+v", p)
		}
		ids = append(ids, p.ID)
	}

	photos, _ := svc.List(ctx, owner)
	for i, p := range photos {
		if p.ID != ids[i] {
			t.Fatalf("list order = %v, want %v", photos, ids)
		}
	}
	if n := countFiles(t, root); n != 3 {
		t.Fatalf("blob count = %d", n)
	}
}

func TestUploadOrderIsPerOwner(t *testing.T) {
	svc, db, _ := newPhotoService(t)
	room := mustCreateRoom(t, db, "101", true)
	space := mustCreateEventSpace(t, db, "Palm Hall")

	uploadPNG(t, svc, models.RoomOwner(room.ID), "r.png")
	p := uploadPNG(t, svc, models.EventSpaceOwner(space.ID), "e.png")
	if p.DisplayOrder != 0 {
		t.Fatalf("first event space photo order = %d", p.DisplayOrder)
	}
	if p.Owner.Kind != models.OwnerEventSpace || !strings.HasPrefix(p.FilePath, "event-spaces/") {
		t.Fatalf("unexpected photo: %+v", p)
	}
	if got := displayOrders(t, svc, models.RoomOwner(room.ID)); len(got) != 1 {
		t.Fatalf("room photos = %v", got)
	}
	if got := displayOrders(t, svc, models.EventSpaceOwner(space.ID)); len(got) != 1 {
		t.Fatalf("event space photos = %v", got)
	}
}

func TestUploadRejectsMissingOrInactiveOwner(t *testing.T) {
	svc, db, root := newPhotoService(t)
	inactive := mustCreateRoom(t, db, "101", false)

	for _, owner := range []models.PhotoOwner{
		models.RoomOwner(999),
		models.RoomOwner(inactive.ID),
		models.EventSpaceOwner(5),
	} {
		_, err := svc.Upload(ctx, UploadInput{Owner: owner, OriginalFileName: "a.png", File: bytes.NewReader(pngBytes)})
		if utils.KindOf(err) != utils.KindNotFound {
			t.Fatalf("owner %s: expected not found, got %v", owner, err)
		}
	}
	if n := countFiles(t, root); n != 0 {
		t.Fatalf("blobs written for rejected uploads: %d", n)
	}
}

func TestUploadRejectsNonImages(t *testing.T) {
	svc, db, root := newPhotoService(t)
	room := mustCreateRoom(t, db, "101", true)

	_, err := svc.Upload(ctx, UploadInput{
		Owner:            models.RoomOwner(room.ID),
		OriginalFileName: "notes.txt",
		File:             bytes.NewReader([]byte("just some text, not a picture")),
	})
	if utils.KindOf(err) != utils.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if n := countFiles(t, root); n != 0 {
		t.Fatalf("blob written for rejected upload")
	}
}

func TestUploadRemovesBlobWhenInsertFails(t *testing.T) {
	svc, db, root := newPhotoService(t)
	room := mustCreateRoom(t, db, "101", true)

	err := db.Callback().Create().Before("gorm:create").Register("test:fail_photo_insert", func(tx *gorm.DB) {
		if tx.Statement.Table == "photos" {
			tx.AddError(errors.New("disk full"))
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	var observed []string
	svc.OnUpload = func(_ models.OwnerKind, result string) { observed = append(observed, result) }

	_, err = svc.Upload(ctx, UploadInput{Owner: models.RoomOwner(room.ID), OriginalFileName: "a.png", File: bytes.NewReader(pngBytes)})
	if utils.KindOf(err) != utils.KindStorage {
		t.Fatalf("expected storage error, got %v", err)
	}
	if n := countFiles(t, root); n != 0 {
		t.Fatalf("orphaned blob left behind")
	}
	if len(observed) != 1 || observed[0] != UploadFailed {
		t.Fatalf("observed = %v", observed)
	}
}

func TestDeletePhotoKeepsSiblingOrder(t *testing.T) {
	svc, db, _ := newPhotoService(t)
	room := mustCreateRoom(t, db, "101", true)
	owner := models.RoomOwner(room.ID)

	first := uploadPNG(t, svc, owner, "a.png")
	second := uploadPNG(t, svc, owner, "b.png")
	third := uploadPNG(t, svc, owner, "c.png")

	if err := svc.Delete(ctx, second.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got := displayOrders(t, svc, owner)
	if len(got) != 2 || got[first.ID] != 0 || got[third.ID] != 2 {
		t.Fatalf("orders after delete = %v", got)
	}

	if err := svc.Delete(ctx, second.ID); utils.KindOf(err) != utils.KindNotFound {
		t.Fatalf("deleting twice should be not found, got %v", err)
	}
	if err := svc.Delete(ctx, 12345); utils.KindOf(err) != utils.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}

	next := uploadPNG(t, svc, owner, "d.png")
	if next.DisplayOrder != 3 {
		t.Fatalf("next order = %d, want 3", next.DisplayOrder)
	}
}

func TestReorderPhotos(t *testing.T) {
	svc, db, _ := newPhotoService(t)
	room := mustCreateRoom(t, db, "101", true)
	owner := models.RoomOwner(room.ID)

	a := uploadPNG(t, svc, owner, "a.png")
	b := uploadPNG(t, svc, owner, "b.png")
	c := uploadPNG(t, svc, owner, "c.png")

	if err := svc.Reorder(ctx, []uint{c.ID, a.ID, b.ID}); err != nil {
		t.Fatalf("reorder: %v", err)
	}
	photos, _ := svc.List(ctx, owner)
	want := []uint{c.ID, a.ID, b.ID}
	for i, p := range photos {
		if p.ID != want[i] || p.DisplayOrder != i {
			t.Fatalf("position %d: got id=%d order=%d", i, p.ID, p.DisplayOrder)
		}
	}

	if err := svc.Reorder(ctx, nil); err != nil {
		t.Fatalf("empty reorder: %v", err)
	}
}

func TestReorderIsAtomic(t *testing.T) {
	svc, db, _ := newPhotoService(t)
	room := mustCreateRoom(t, db, "101", true)
	owner := models.RoomOwner(room.ID)

	a := uploadPNG(t, svc, owner, "a.png")
	b := uploadPNG(t, svc, owner, "b.png")
	deleted := uploadPNG(t, svc, owner, "c.png")
	if err := svc.Delete(ctx, deleted.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	before := displayOrders(t, svc, owner)

	if err := svc.Reorder(ctx, []uint{b.ID, a.ID, 999}); utils.KindOf(err) != utils.KindNotFound {
		t.Fatalf("unknown id: expected not found, got %v", err)
	}
	if err := svc.Reorder(ctx, []uint{b.ID, deleted.ID}); utils.KindOf(err) != utils.KindNotFound {
		t.Fatalf("inactive id: expected not found, got %v", err)
	}
	if err := svc.Reorder(ctx, []uint{a.ID, a.ID}); utils.KindOf(err) != utils.KindValidation {
		t.Fatalf("duplicate ids: expected validation error, got %v", err)
	}

	after := displayOrders(t, svc, owner)
	for id, order := range before {
		if after[id] != order {
			t.Fatalf("photo %d moved from %d to %d after failed reorder", id, order, after[id])
		}
	}
}

func TestOpenPhoto(t *testing.T) {
	svc, db, _ := newPhotoService(t)
	room := mustCreateRoom(t, db, "101", true)
	p := uploadPNG(t, svc, models.RoomOwner(room.ID), "pool.png")

	photo, rc, size, err := svc.Open(ctx, p.ID)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	body, _ := io.ReadAll(rc)
	rc.Close()
	if !bytes.Equal(body, pngBytes) || size != int64(len(pngBytes)) || photo.OriginalFileName != "pool.png" {
		t.Fatalf("unexpected download: %d bytes, %+v", len(body), photo)
	}

	if err := svc.Blobs.Remove(p.FilePath); err != nil {
		t.Fatalf("remove blob: %v", err)
	}
	if _, _, _, err := svc.Open(ctx, p.ID); utils.KindOf(err) != utils.KindStorage {
		t.Fatalf("missing blob: expected storage error, got %v", err)
	}

	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, _, _, err := svc.Open(ctx, p.ID); utils.KindOf(err) != utils.KindNotFound {
		t.Fatalf("inactive photo: expected not found, got %v", err)
	}
}
