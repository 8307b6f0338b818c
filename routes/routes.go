package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"rentals-backend/controllers"
	"rentals-backend/middleware"
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

// SetupRouter wires the controllers onto the /api route groups.
func SetupRouter(
	lc *controllers.ListingController,
	bc *controllers.BookingController,
	rc *controllers.ReviewController,
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

	api := r.Group("/api")
	{
		listings := api.Group("/listings")
		{
			listings.GET("", lc.GetListings)
			listings.GET("/:id", lc.GetListingByID)
			listings.POST("", lc.CreateListing)
			listings.PUT("/:id", lc.UpdateListing)
			listings.DELETE("/:id", lc.DeleteListing)
			listings.GET("/:id/reviews", rc.GetReviewsByListing)
			listings.GET("/:id/bookings", bc.GetBookingsByListing)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.GET("/:id", bc.GetBookingByID)
			bookings.POST("", bc.CreateBooking)
			bookings.PUT("/:id", bc.UpdateBooking)
			bookings.DELETE("/:id", bc.DeleteBooking)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", rc.GetReviews)
			reviews.GET("/:id", rc.GetReviewByID)
			reviews.POST("", rc.CreateReview)
			reviews.PUT("/:id", rc.UpdateReview)
			reviews.DELETE("/:id", rc.DeleteReview)
		}
	}

	return r
}
