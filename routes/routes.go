package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resort-admin/controllers"
	"resort-admin/middleware"
)

type Controllers struct {
	Admin   *controllers.AdminController
	Catalog *controllers.CatalogController
	Photo   *controllers.PhotoController
}

type Options struct {
	CORSOrigins []string
	Log         *zap.Logger
	Metrics     *middleware.Metrics // nil disables /metrics
}

func corsConfig(origins []string) cors.Config {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}
}

func SetupRouter(ctl Controllers, opts Options) *gin.Engine {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(log))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware())
		r.GET("/metrics", opts.Metrics.Handler())
	}
	r.Use(cors.New(corsConfig(opts.CORSOrigins)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		admin := api.Group("/admin")
		{
			admin.GET("/users", ctl.Admin.ListUsers)
			admin.POST("/users", ctl.Admin.CreateUser)
			admin.PUT("/users/:userId/role", ctl.Admin.UpdateUserRole)
			admin.DELETE("/users/:userId", ctl.Admin.DeleteUser)
			admin.GET("/user-roles", ctl.Admin.ListUserRoles)

			admin.GET("/statistics", ctl.Admin.GetStatistics)
			admin.GET("/recent-bookings", ctl.Admin.ListRecentBookings)
			admin.GET("/bookings", ctl.Admin.ListAllBookings)

			admin.POST("/rooms", ctl.Admin.CreateRoom)
			admin.PUT("/rooms/:roomId", ctl.Admin.UpdateRoom)
			admin.DELETE("/rooms/:roomId", ctl.Admin.DeleteRoom)

			admin.POST("/event-spaces", ctl.Admin.CreateEventSpace)
			admin.PUT("/event-spaces/:eventSpaceId", ctl.Admin.UpdateEventSpace)
			admin.DELETE("/event-spaces/:eventSpaceId", ctl.Admin.DeleteEventSpace)
		}

		api.GET("/rooms", ctl.Catalog.ListRooms)
		api.GET("/rooms/:id", ctl.Catalog.GetRoom)
		api.GET("/event-spaces", ctl.Catalog.ListEventSpaces)
		api.GET("/event-spaces/:id", ctl.Catalog.GetEventSpace)

		photos := api.Group("/photos")
		{
			photos.GET("/rooms/:roomId", ctl.Photo.ListRoomPhotos)
			photos.GET("/event-spaces/:eventSpaceId", ctl.Photo.ListEventSpacePhotos)
			photos.POST("/rooms/:roomId/upload", ctl.Photo.UploadRoomPhoto)
			photos.POST("/event-spaces/:eventSpaceId/upload", ctl.Photo.UploadEventSpacePhoto)
			photos.POST("/reorder", ctl.Photo.ReorderPhotos)
			photos.DELETE("/:photoId", ctl.Photo.DeletePhoto)
			photos.GET("/:photoId/download", ctl.Photo.DownloadPhoto)
		}
	}

	return r
}
