package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dive-booking/config"
	"dive-booking/controllers"
	"dive-booking/middleware"
)

// SetupRouter wires the controllers under /api.
func SetupRouter(
	cfg config.Config,
	logger *zap.Logger,
	bc *controllers.BookingController,
	wc *controllers.WizardController,
	cc *controllers.CatalogController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(logger), middleware.Recovery(logger))

	origins := cfg.Origins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.RateLimit(cfg.MaxRequestsPerMin))
	{
		api.GET("/catalog", cc.GetCatalog)
		api.GET("/steps", cc.GetSteps)

		schedule := api.Group("/schedule")
		{
			schedule.GET("/:leg/suggest", cc.SuggestDeparture)
			schedule.POST("/:leg/validate", cc.ValidateLeg)
		}

		api.POST("/quotes", bc.CreateQuote)

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBookingByID)
		}

		sessions := api.Group("/wizard/sessions")
		{
			sessions.POST("", wc.CreateSession)
			sessions.GET("/:id", wc.GetSession)
			sessions.PUT("/:id/draft", wc.UpdateDraft)
			sessions.POST("/:id/next", wc.Next)
			sessions.POST("/:id/back", wc.Back)
			sessions.GET("/:id/quote", wc.Quote)
			sessions.POST("/:id/submit", wc.Submit)
		}
	}

	return r
}
