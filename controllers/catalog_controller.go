package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resort-admin/services"
	"resort-admin/utils"
)

// CatalogController serves the read-only room and event space listings the
// admin pages load before editing.
type CatalogController struct {
	RoomSvc       *services.RoomService
	EventSpaceSvc *services.EventSpaceService
}

func NewCatalogController(rooms *services.RoomService, spaces *services.EventSpaceService) *CatalogController {
	return &CatalogController{RoomSvc: rooms, EventSpaceSvc: spaces}
}

func (ctrl *CatalogController) ListRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.ListActive(c.Request.Context())
	if err != nil {
		utils.RespondErrorNoBody(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoom returns the room even after it has been deactivated.
func (ctrl *CatalogController) GetRoom(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	room, err := ctrl.RoomSvc.Get(c.Request.Context(), id)
	if err != nil {
		utils.RespondErrorNoBody(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (ctrl *CatalogController) ListEventSpaces(c *gin.Context) {
	spaces, err := ctrl.EventSpaceSvc.ListActive(c.Request.Context())
	if err != nil {
		utils.RespondErrorNoBody(c, err)
		return
	}
	c.JSON(http.StatusOK, spaces)
}

func (ctrl *CatalogController) GetEventSpace(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	space, err := ctrl.EventSpaceSvc.Get(c.Request.Context(), id)
	if err != nil {
		utils.RespondErrorNoBody(c, err)
		return
	}
	c.JSON(http.StatusOK, space)
}
