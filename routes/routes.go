package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotel-platform/controllers"
	"hotel-platform/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers into the gin engine. Reads are public, writes
// sit behind the cookie-token guard.
func SetupRouter(
	hc *controllers.HotelController,
	rc *controllers.RateController,
	db *gorm.DB,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRequired := middleware.RequireAuth(db)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
			auth.POST("/logout", controllers.Logout)
			auth.GET("/me", authRequired, controllers.Me)
		}

		hotels := api.Group("/hotels")
		{
			hotels.GET("", hc.GetHotels)
			hotels.GET("/:id", hc.GetHotel)
			hotels.GET("/:id/room-types", hc.GetRoomTypes)

			hotels.POST("", authRequired, hc.CreateHotel)
			hotels.PUT("/:id", authRequired, hc.UpdateHotel)
			hotels.DELETE("/:id", authRequired, hc.DeleteHotel)
			hotels.POST("/:id/room-types", authRequired, hc.CreateRoomType)
		}

		roomTypes := api.Group("/room-types")
		{
			roomTypes.GET("/:id/price", rc.GetEffectivePrice)

			roomTypes.PUT("/:id", authRequired, hc.UpdateRoomType)
			roomTypes.DELETE("/:id", authRequired, hc.DeleteRoomType)
		}

		rates := api.Group("/rates")
		rates.Use(authRequired)
		{
			rates.GET("", rc.GetRateAdjustments)
			rates.POST("", rc.CreateRateAdjustment)
			rates.DELETE("/:id", rc.DeleteRateAdjustment)
		}
	}

	return r
}
