package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices go over the wire as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type OwnerKind string

const (
	OwnerRoom       OwnerKind = "ROOM"
	OwnerEventSpace OwnerKind = "EVENT_SPACE"
)

// PhotoOwner references either a Room or an EventSpace. Both columns are
// stored on the photo row as owner_kind / owner_id.
type PhotoOwner struct {
	Kind OwnerKind `gorm:"size:16;not null;index:idx_photo_owner,priority:1" json:"kind"`
	ID   uint      `gorm:"not null;index:idx_photo_owner,priority:2" json:"id"`
}

func RoomOwner(id uint) PhotoOwner       { return PhotoOwner{Kind: OwnerRoom, ID: id} }
func EventSpaceOwner(id uint) PhotoOwner { return PhotoOwner{Kind: OwnerEventSpace, ID: id} }

func (o PhotoOwner) String() string {
	return fmt.Sprintf("%s:%d", o.Kind, o.ID)
}

// Subdir is the blob-store directory photos of this owner kind live under.
func (o PhotoOwner) Subdir() string {
	switch o.Kind {
	case OwnerEventSpace:
		return "event-spaces"
	default:
		return "rooms"
	}
}

type Photo struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	FileName         string     `gorm:"column:file_name;size:255;not null" json:"fileName"`
	OriginalFileName string     `gorm:"column:original_file_name;size:255" json:"originalFileName"`
	ContentType      string     `gorm:"column:content_type;size:100" json:"contentType"`
	FileSize         int64      `gorm:"column:file_size" json:"fileSize"`
	FilePath         string     `gorm:"column:file_path;size:512;not null" json:"filePath"`
	DisplayOrder     int        `gorm:"column:display_order;not null" json:"displayOrder"`
	Owner            PhotoOwner `gorm:"embedded;embeddedPrefix:owner_" json:"owner"`
	IsActive         bool       `gorm:"not null;index" json:"isActive"`
	UploadedBy       string     `gorm:"column:uploaded_by;size:150" json:"uploadedBy"`
	UploadedAt       time.Time  `gorm:"column:uploaded_at" json:"uploadedAt"`
}
