package services

import (
	"testing"
	"time"

	"rentals-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see a different in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.Booking{},
		&models.Review{},
	))
	return db
}

func date(y int, m time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func createUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{Username: username}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createListing(t *testing.T, db *gorm.DB, hostID uint, price float64) models.Listing {
	t.Helper()
	listing := models.Listing{
		Title:             "Test Listing",
		Description:       "A place to stay",
		Location:          "Testville",
		PricePerNight:     price,
		NumberOfBedrooms:  1,
		NumberOfBathrooms: 1,
		MaxGuests:         2,
		PropertyType:      models.PropertyApartment,
		Availability:      true,
		HostID:            hostID,
	}
	require.NoError(t, db.Create(&listing).Error)
	return listing
}

func createBooking(t *testing.T, db *gorm.DB, listingID, guestID uint) models.Booking {
	t.Helper()
	booking := models.Booking{
		ListingID:      listingID,
		GuestID:        guestID,
		CheckInDate:    date(2024, time.March, 1),
		CheckOutDate:   date(2024, time.March, 3),
		NumberOfGuests: 1,
		TotalPrice:     200,
		Status:         models.BookingPending,
	}
	require.NoError(t, db.Create(&booking).Error)
	return booking
}

func createReview(t *testing.T, db *gorm.DB, listingID, reviewerID uint, rating int) models.Review {
	t.Helper()
	review := models.Review{
		ListingID:  listingID,
		ReviewerID: reviewerID,
		Rating:     rating,
		Comment:    "fine stay",
	}
	require.NoError(t, db.Create(&review).Error)
	return review
}
