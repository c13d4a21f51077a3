package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resort-admin/services"
	"resort-admin/utils"
)

type AdminController struct {
	UserSvc       *services.UserService
	RoomSvc       *services.RoomService
	EventSpaceSvc *services.EventSpaceService
	BookingSvc    *services.BookingService
	StatsSvc      *services.StatisticsService
}

func NewAdminController(
	users *services.UserService,
	rooms *services.RoomService,
	spaces *services.EventSpaceService,
	bookings *services.BookingService,
	stats *services.StatisticsService,
) *AdminController {
	return &AdminController{
		UserSvc:       users,
		RoomSvc:       rooms,
		EventSpaceSvc: spaces,
		BookingSvc:    bookings,
		StatsSvc:      stats,
	}
}

// ---------------- Users ----------------

// ListUsers (GET /api/admin/users)
func (ctrl *AdminController) ListUsers(c *gin.Context) {
	users, err := ctrl.UserSvc.List(c.Request.Context())
	if err != nil {
		utils.RespondErrorNoBody(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser (POST /api/admin/users)
func (ctrl *AdminController) CreateUser(c *gin.Context) {
	var in services.CreateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, err := ctrl.UserSvc.Create(c.Request.Context(), in)
	if err != nil {
		utils.RespondError(c, err, "Error creating user: ")
		return
	}
	c.JSON(http.StatusOK, user)
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

// UpdateUserRole (PUT /api/admin/users/:userId/role)
func (ctrl *AdminController) UpdateUserRole(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}

	var req updateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, err := ctrl.UserSvc.UpdateRole(c.Request.Context(), id, req.Role)
	if err != nil {
		utils.RespondError(c, err, "Error updating user role: ")
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser (DELETE /api/admin/users/:userId)
func (ctrl *AdminController) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}

	if err := ctrl.UserSvc.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err, "Error deleting user: ")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "User deleted successfully")
}

// ListUserRoles (GET /api/admin/user-roles)
func (ctrl *AdminController) ListUserRoles(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.UserSvc.Roles())
}

// ---------------- Dashboard ----------------

func (ctrl *AdminController) GetStatistics(c *gin.Context) {
	stats, err := ctrl.StatsSvc.Get(c.Request.Context())
	if err != nil {
		utils.RespondErrorNoBody(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (ctrl *AdminController) ListRecentBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.Recent(c.Request.Context())
	if err != nil {
		utils.RespondErrorNoBody(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (ctrl *AdminController) ListAllBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.All(c.Request.Context())
	if err != nil {
		utils.RespondErrorNoBody(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ---------------- Rooms ----------------

// CreateRoom (POST /api/admin/rooms) takes a loosely typed body; see
// services.RoomService.Create for the accepted field shapes.
func (ctrl *AdminController) CreateRoom(c *gin.Context) {
	payload, err := services.DecodeLoose(c.Request.Body)
	if err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	room, err := ctrl.RoomSvc.Create(c.Request.Context(), payload)
	if err != nil {
		utils.RespondError(c, err, "Error creating room: ")
		return
	}
	c.JSON(http.StatusOK, room)
}

func (ctrl *AdminController) UpdateRoom(c *gin.Context) {
	id, ok := pathID(c, "roomId")
	if !ok {
		return
	}

	var req services.RoomUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	room, err := ctrl.RoomSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.RespondError(c, err, "Error updating room: ")
		return
	}
	c.JSON(http.StatusOK, room)
}

func (ctrl *AdminController) DeleteRoom(c *gin.Context) {
	id, ok := pathID(c, "roomId")
	if !ok {
		return
	}

	if err := ctrl.RoomSvc.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err, "Error deleting room: ")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Room deleted successfully")
}

// ---------------- Event spaces ----------------

func (ctrl *AdminController) CreateEventSpace(c *gin.Context) {
	payload, err := services.DecodeLoose(c.Request.Body)
	if err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	space, err := ctrl.EventSpaceSvc.Create(c.Request.Context(), payload)
	if err != nil {
		utils.RespondError(c, err, "Error creating event space: ")
		return
	}
	c.JSON(http.StatusOK, space)
}

func (ctrl *AdminController) UpdateEventSpace(c *gin.Context) {
	id, ok := pathID(c, "eventSpaceId")
	if !ok {
		return
	}

	var req services.EventSpaceUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	space, err := ctrl.EventSpaceSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.RespondError(c, err, "Error updating event space: ")
		return
	}
	c.JSON(http.StatusOK, space)
}

func (ctrl *AdminController) DeleteEventSpace(c *gin.Context) {
	id, ok := pathID(c, "eventSpaceId")
	if !ok {
		return
	}

	if err := ctrl.EventSpaceSvc.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err, "Error deleting event space: ")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Event space deleted successfully")
}
