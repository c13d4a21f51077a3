package controllers

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resort-admin/models"
	"resort-admin/services"
	"resort-admin/utils"
)

// PhotoView is a photo as returned to clients.
type PhotoView struct {
	models.Photo
	DownloadURL string `json:"downloadUrl"`
}

func newPhotoView(p models.Photo) PhotoView {
	return PhotoView{Photo: p, DownloadURL: fmt.Sprintf("/api/photos/%d/download", p.ID)}
}

type PhotoController struct {
	PhotoSvc       *services.PhotoService
	MaxUploadBytes int64
}

func NewPhotoController(svc *services.PhotoService, maxUploadBytes int64) *PhotoController {
	return &PhotoController{PhotoSvc: svc, MaxUploadBytes: maxUploadBytes}
}

func (ctrl *PhotoController) list(c *gin.Context, owner models.PhotoOwner) {
	photos, err := ctrl.PhotoSvc.List(c.Request.Context(), owner)
	if err != nil {
		utils.RespondErrorNoBody(c, err)
		return
	}

	views := make([]PhotoView, 0, len(photos))
	for _, p := range photos {
		views = append(views, newPhotoView(p))
	}
	c.JSON(http.StatusOK, views)
}

// ListRoomPhotos (GET /api/photos/rooms/:roomId)
func (ctrl *PhotoController) ListRoomPhotos(c *gin.Context) {
	if id, ok := pathID(c, "roomId"); ok {
		ctrl.list(c, models.RoomOwner(id))
	}
}

// ListEventSpacePhotos (GET /api/photos/event-spaces/:eventSpaceId)
func (ctrl *PhotoController) ListEventSpacePhotos(c *gin.Context) {
	if id, ok := pathID(c, "eventSpaceId"); ok {
		ctrl.list(c, models.EventSpaceOwner(id))
	}
}

func (ctrl *PhotoController) upload(c *gin.Context, owner models.PhotoOwner) {
	if ctrl.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, ctrl.MaxUploadBytes)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.JSONMessage(c, http.StatusBadRequest, fmt.Sprintf("File exceeds the %d byte upload limit", tooLarge.Limit))
			return
		}
		utils.JSONMessage(c, http.StatusBadRequest, "File is required")
		return
	}

	uploadedBy := strings.TrimSpace(c.PostForm("uploadedBy"))
	if uploadedBy == "" {
		utils.JSONMessage(c, http.StatusBadRequest, "uploadedBy is required")
		return
	}

	file, err := fh.Open()
	if err != nil {
		utils.RespondErrorNoBody(c, err)
		return
	}
	defer file.Close()

	photo, err := ctrl.PhotoSvc.Upload(c.Request.Context(), services.UploadInput{
		Owner:            owner,
		OriginalFileName: fh.Filename,
		ContentType:      fh.Header.Get("Content-Type"),
		UploadedBy:       uploadedBy,
		File:             file,
	})
	if err != nil {
		utils.RespondErrorNoBody(c, err)
		return
	}
	c.JSON(http.StatusOK, newPhotoView(*photo))
}

// UploadRoomPhoto (POST /api/photos/rooms/:roomId/upload), multipart
// fields "file" and "uploadedBy".
func (ctrl *PhotoController) UploadRoomPhoto(c *gin.Context) {
	if id, ok := pathID(c, "roomId"); ok {
		ctrl.upload(c, models.RoomOwner(id))
	}
}

func (ctrl *PhotoController) UploadEventSpacePhoto(c *gin.Context) {
	if id, ok := pathID(c, "eventSpaceId"); ok {
		ctrl.upload(c, models.EventSpaceOwner(id))
	}
}

// DeletePhoto (DELETE /api/photos/:photoId)
func (ctrl *PhotoController) DeletePhoto(c *gin.Context) {
	id, ok := pathID(c, "photoId")
	if !ok {
		return
	}
	if err := ctrl.PhotoSvc.Delete(c.Request.Context(), id); err != nil {
		utils.RespondErrorNoBody(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// ReorderPhotos (POST /api/photos/reorder) takes a JSON array of photo ids
// in their new display order.
func (ctrl *PhotoController) ReorderPhotos(c *gin.Context) {
	var ids []uint
	if err := c.ShouldBindJSON(&ids); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if err := ctrl.PhotoSvc.Reorder(c.Request.Context(), ids); err != nil {
		utils.RespondErrorNoBody(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// DownloadPhoto (GET /api/photos/:photoId/download)
func (ctrl *PhotoController) DownloadPhoto(c *gin.Context) {
	id, ok := pathID(c, "photoId")
	if !ok {
		return
	}

	photo, rc, size, err := ctrl.PhotoSvc.Open(c.Request.Context(), id)
	if err != nil {
		utils.RespondErrorNoBody(c, err)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, size, photo.ContentType, rc, map[string]string{
		"Content-Disposition": contentDisposition(photo.OriginalFileName),
	})
}

// contentDisposition marks the response as a download, encoding non-ASCII
// names as RFC 2231 filename* parameters.
func contentDisposition(filename string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": filename}); v != "" {
		return v
	}
	return "attachment"
}
