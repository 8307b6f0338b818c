package config

import (
	"log"
	"time"

	"rentals-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func date(y int, m time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// SeedDatabase inserts demo users, listings, bookings and reviews so a fresh
// database has something to serve. Each block is guarded by a count check,
// so reruns are no-ops.
func SeedDatabase(db *gorm.DB) {
	// ---------------- Users ----------------
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		users := []models.User{
			{Username: "host_amara"},
			{Username: "guest_tomas"},
			{Username: "guest_lena"},
		}
		if err := db.Create(&users).Error; err != nil {
			log.Printf("warning: failed to seed users: %v", err)
			return
		}
		log.Println("Users seeded")
	}

	var host, tomas, lena models.User
	if err := db.Where("username = ?", "host_amara").First(&host).Error; err != nil {
		log.Printf("warning: seed host missing: %v", err)
		return
	}
	db.Where("username = ?", "guest_tomas").First(&tomas)
	db.Where("username = ?", "guest_lena").First(&lena)

	// ---------------- Listings ----------------
	var listingCount int64
	db.Model(&models.Listing{}).Count(&listingCount)
	if listingCount == 0 {
		listings := []models.Listing{
			{
				Title:             "Sunny Loft Near the Harbor",
				Description:       "Bright top-floor loft with a view over the old harbor.",
				Location:          "Lisbon",
				PricePerNight:     120.00,
				NumberOfBedrooms:  2,
				NumberOfBathrooms: 1,
				MaxGuests:         4,
				PropertyType:      models.PropertyApartment,
				Amenities:         "wifi,kitchen,washer",
				Availability:      true,
				HostID:            host.ID,
			},
			{
				Title:             "Cedar Cabin by the Lake",
				Description:       "Quiet cabin with a private dock and wood stove.",
				Location:          "Lake Bled",
				PricePerNight:     95.50,
				NumberOfBedrooms:  1,
				NumberOfBathrooms: 1,
				MaxGuests:         2,
				PropertyType:      models.PropertyCabin,
				Amenities:         "fireplace,parking,lake access",
				Availability:      true,
				HostID:            host.ID,
			},
		}
		if err := db.Create(&listings).Error; err != nil {
			log.Printf("warning: failed to seed listings: %v", err)
			return
		}
		log.Println("Listings seeded")
	}

	var loft models.Listing
	if err := db.Where("title = ?", "Sunny Loft Near the Harbor").First(&loft).Error; err != nil {
		return
	}

	// ---------------- Bookings ----------------
	var bookingCount int64
	db.Model(&models.Booking{}).Count(&bookingCount)
	if bookingCount == 0 && tomas.ID != 0 {
		booking := models.Booking{
			ListingID:      loft.ID,
			GuestID:        tomas.ID,
			CheckInDate:    date(2026, time.September, 10),
			CheckOutDate:   date(2026, time.September, 14),
			NumberOfGuests: 2,
			TotalPrice:     loft.PricePerNight * 4,
			Status:         models.BookingCompleted,
		}
		if err := db.Create(&booking).Error; err != nil {
			log.Printf("warning: failed to seed booking: %v", err)
		} else {
			log.Println("Bookings seeded")

			// ---------------- Reviews ----------------
			var reviewCount int64
			db.Model(&models.Review{}).Count(&reviewCount)
			if reviewCount == 0 {
				review := models.Review{
					ListingID:  loft.ID,
					ReviewerID: tomas.ID,
					BookingID:  &booking.ID,
					Rating:     5,
					Comment:    "Great light, great host, would stay again.",
				}
				if err := db.Create(&review).Error; err != nil {
					log.Printf("warning: failed to seed review: %v", err)
				} else {
					log.Println("Reviews seeded")
				}
			}
		}
	}
}
