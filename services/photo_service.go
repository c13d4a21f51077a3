package services

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"resort-admin/models"
	"resort-admin/utils"
)

const sniffLen = 3072

// Upload outcomes reported to UploadObserver.
const (
	UploadOK       = "ok"
	UploadRejected = "rejected"
	UploadFailed   = "failed"
)

type UploadObserver func(owner models.OwnerKind, result string)

type UploadInput struct {
	Owner            models.PhotoOwner
	OriginalFileName string
	ContentType      string
	UploadedBy       string
	File             io.Reader
}

type PhotoService struct {
	DB       *gorm.DB
	Blobs    BlobStore
	Log      *zap.Logger
	OnUpload UploadObserver
}

func NewPhotoService(db *gorm.DB, blobs BlobStore, log *zap.Logger) *PhotoService {
	return &PhotoService{DB: db, Blobs: blobs, Log: log}
}

func ownerNotFound(owner models.PhotoOwner) error {
	if owner.Kind == models.OwnerEventSpace {
		return utils.NewNotFoundError("Event space not found")
	}
	return utils.NewNotFoundError("Room not found")
}

// loadOwner fails unless the owner row exists and is active. With lock set
// the row stays locked until tx ends, serialising uploads per owner.
func loadOwner(tx *gorm.DB, owner models.PhotoOwner, lock bool) error {
	var row any
	switch owner.Kind {
	case models.OwnerRoom:
		row = &models.Room{}
	case models.OwnerEventSpace:
		row = &models.EventSpace{}
	default:
		return utils.NewValidationError(fmt.Sprintf("Unknown photo owner kind: %s", owner.Kind))
	}

	q := tx.Where("id = ? AND is_active = ?", owner.ID, true)
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	err := q.First(row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ownerNotFound(owner)
	}
	if err != nil {
		return utils.NewStorageError(err)
	}
	return nil
}

func activePhotos(db *gorm.DB, owner models.PhotoOwner) *gorm.DB {
	return db.Model(&models.Photo{}).
		Where("owner_kind = ? AND owner_id = ? AND is_active = ?", owner.Kind, owner.ID, true)
}

// List returns the owner's active photos in display order.
func (s *PhotoService) List(ctx context.Context, owner models.PhotoOwner) ([]models.Photo, error) {
	var photos []models.Photo
	err := activePhotos(s.DB.WithContext(ctx), owner).
		Order("display_order ASC, id ASC").
		Find(&photos).Error
	if err != nil {
		return nil, utils.NewStorageError(err)
	}
	return photos, nil
}

func (s *PhotoService) observe(owner models.PhotoOwner, err error) {
	if s.OnUpload == nil {
		return
	}
	switch {
	case err == nil:
		s.OnUpload(owner.Kind, UploadOK)
	case utils.KindOf(err) == utils.KindStorage:
		s.OnUpload(owner.Kind, UploadFailed)
	default:
		s.OnUpload(owner.Kind, UploadRejected)
	}
}

// Upload stores the binary first, then records it with the next display
// order for its owner. If the row cannot be committed the binary is removed.
func (s *PhotoService) Upload(ctx context.Context, in UploadInput) (photo *models.Photo, err error) {
	defer func() { s.observe(in.Owner, err) }()

	if err := loadOwner(s.DB.WithContext(ctx), in.Owner, false); err != nil {
		return nil, err
	}

	head := make([]byte, sniffLen)
	n, readErr := io.ReadFull(in.File, head)
	if readErr != nil && !errors.Is(readErr, io.ErrUnexpectedEOF) && !errors.Is(readErr, io.EOF) {
		return nil, utils.NewStorageError(readErr)
	}
	head = head[:n]
	if n == 0 {
		return nil, utils.NewValidationError("Uploaded file is empty")
	}

	detected := mimetype.Detect(head)
	if !strings.HasPrefix(detected.String(), "image/") {
		return nil, utils.NewValidationError(fmt.Sprintf("Unsupported file type: %s", detected.String()))
	}

	contentType := strings.TrimSpace(in.ContentType)
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = detected.String()
	}

	ext := detected.Extension()
	if ext == "" {
		ext = strings.ToLower(filepath.Ext(in.OriginalFileName))
	}
	fileName := uuid.NewString() + ext

	body := io.MultiReader(bytes.NewReader(head), in.File)
	path, size, err := s.Blobs.Save(ctx, in.Owner.Subdir(), fileName, body)
	if err != nil {
		return nil, utils.NewStorageError(err)
	}

	record := models.Photo{
		FileName:         fileName,
		OriginalFileName: in.OriginalFileName,
		ContentType:      contentType,
		FileSize:         size,
		FilePath:         path,
		Owner:            in.Owner,
		IsActive:         true,
		UploadedBy:       in.UploadedBy,
		UploadedAt:       time.Now(),
	}

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := loadOwner(tx, in.Owner, true); err != nil {
			return err
		}

		var maxOrder sql.NullInt64
		if err := activePhotos(tx, in.Owner).Select("MAX(display_order)").Row().Scan(&maxOrder); err != nil {
			return utils.NewStorageError(err)
		}
		record.DisplayOrder = 0
		if maxOrder.Valid {
			record.DisplayOrder = int(maxOrder.Int64) + 1
		}

		if err := tx.Create(&record).Error; err != nil {
			return utils.NewStorageError(err)
		}
		return nil
	})
	if txErr != nil {
		if rmErr := s.Blobs.Remove(path); rmErr != nil {
			s.Log.Error("orphaned photo blob", zap.String("path", path), zap.Error(rmErr))
		}
		var appErr *utils.AppError
		if errors.As(txErr, &appErr) {
			return nil, txErr
		}
		return nil, utils.NewStorageError(txErr)
	}

	s.Log.Info("photo uploaded",
		zap.Uint("photo_id", record.ID),
		zap.Stringer("owner", in.Owner),
		zap.Int("display_order", record.DisplayOrder),
		zap.Int64("file_size", record.FileSize),
		zap.String("uploaded_by", record.UploadedBy),
	)
	return &record, nil
}

func (s *PhotoService) findActive(db *gorm.DB, id uint) (*models.Photo, error) {
	var photo models.Photo
	err := db.Where("id = ? AND is_active = ?", id, true).First(&photo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NewNotFoundError("Photo not found")
	}
	if err != nil {
		return nil, utils.NewStorageError(err)
	}
	return &photo, nil
}

// Delete deactivates the photo. Remaining photos keep their display order.
func (s *PhotoService) Delete(ctx context.Context, id uint) error {
	db := s.DB.WithContext(ctx)
	photo, err := s.findActive(db, id)
	if err != nil {
		return err
	}

	if err := db.Model(photo).Update("is_active", false).Error; err != nil {
		return utils.NewStorageError(err)
	}

	s.Log.Info("photo deactivated", zap.Uint("photo_id", photo.ID), zap.Stringer("owner", photo.Owner))
	return nil
}

// Reorder sets each photo's display order to its index in ids. Either every
// id is updated or none is.
func (s *PhotoService) Reorder(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return utils.NewValidationError(fmt.Sprintf("Duplicate photo id: %d", id))
		}
		seen[id] = struct{}{}
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var found int64
		if err := tx.Model(&models.Photo{}).
			Where("id IN ? AND is_active = ?", ids, true).
			Count(&found).Error; err != nil {
			return utils.NewStorageError(err)
		}
		if found != int64(len(ids)) {
			return utils.NewNotFoundError("Photo not found")
		}

		for i, id := range ids {
			if err := tx.Model(&models.Photo{}).Where("id = ?", id).Update("display_order", i).Error; err != nil {
				return utils.NewStorageError(err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.Log.Info("photos reordered", zap.Uints("photo_ids", ids))
	return nil
}

// Open returns an active photo together with a reader over its binary.
// The caller closes the reader.
func (s *PhotoService) Open(ctx context.Context, id uint) (*models.Photo, io.ReadCloser, int64, error) {
	photo, err := s.findActive(s.DB.WithContext(ctx), id)
	if err != nil {
		return nil, nil, 0, err
	}

	rc, size, err := s.Blobs.Open(photo.FilePath)
	if err != nil {
		return nil, nil, 0, utils.NewStorageError(err)
	}
	return photo, rc, size, nil
}
