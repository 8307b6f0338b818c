package services

import (
	"testing"
	"time"

	"rentals-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingCreateRejectsBadDates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	host := createUser(t, db, "host")
	guest := createUser(t, db, "guest")
	listing := createListing(t, db, host.ID, 100)

	t.Run("equal dates", func(t *testing.T) {
		err := svc.Create(&models.Booking{
			ListingID:      listing.ID,
			GuestID:        guest.ID,
			CheckInDate:    date(2024, time.January, 10),
			CheckOutDate:   date(2024, time.January, 10),
			NumberOfGuests: 2,
		})
		var vErr *models.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "check_out_date", vErr.Field)
	})

	t.Run("check_out before check_in", func(t *testing.T) {
		err := svc.Create(&models.Booking{
			ListingID:      listing.ID,
			GuestID:        guest.ID,
			CheckInDate:    date(2024, time.January, 10),
			CheckOutDate:   date(2024, time.January, 5),
			NumberOfGuests: 2,
		})
		var vErr *models.ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("unknown listing", func(t *testing.T) {
		err := svc.Create(&models.Booking{
			ListingID:      9999,
			GuestID:        guest.ID,
			CheckInDate:    date(2024, time.January, 10),
			CheckOutDate:   date(2024, time.January, 12),
			NumberOfGuests: 2,
		})
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestBookingTotalPriceAutoFill(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	host := createUser(t, db, "host")
	guest := createUser(t, db, "guest")
	listing := createListing(t, db, host.ID, 100)

	booking := models.Booking{
		ListingID:      listing.ID,
		GuestID:        guest.ID,
		CheckInDate:    date(2024, time.January, 10),
		CheckOutDate:   date(2024, time.January, 15),
		NumberOfGuests: 2,
	}
	require.NoError(t, svc.Create(&booking))
	assert.Equal(t, 500.0, booking.TotalPrice, "5 nights at 100.00")
	assert.Equal(t, models.BookingPending, booking.Status, "status defaults to pending")

	t.Run("explicit value is preserved on update", func(t *testing.T) {
		explicit := 600.0
		updated, err := svc.Update(booking.ID, UpdateBookingInput{TotalPrice: &explicit})
		require.NoError(t, err)
		assert.Equal(t, 600.0, updated.TotalPrice)

		// A later save that does not touch total_price keeps 600, even
		// though recomputing would give 500.
		note := "late arrival"
		updated, err = svc.Update(booking.ID, UpdateBookingInput{SpecialRequests: &note})
		require.NoError(t, err)
		assert.Equal(t, 600.0, updated.TotalPrice)
	})

	t.Run("clearing the price recomputes at current listing price", func(t *testing.T) {
		newPrice := 120.0
		_, err := NewListingService(db).Update(listing.ID, UpdateListingInput{PricePerNight: &newPrice})
		require.NoError(t, err)

		zero := 0.0
		updated, err := svc.Update(booking.ID, UpdateBookingInput{TotalPrice: &zero})
		require.NoError(t, err)
		assert.Equal(t, 600.0, updated.TotalPrice, "5 nights at the new 120.00")
	})

	t.Run("explicit non-positive price rejected", func(t *testing.T) {
		bad := -10.0
		_, err := svc.Update(booking.ID, UpdateBookingInput{TotalPrice: &bad})
		var vErr *models.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "total_price", vErr.Field)
	})
}

func TestBookingStatusIsFreeForm(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	host := createUser(t, db, "host")
	guest := createUser(t, db, "guest")
	listing := createListing(t, db, host.ID, 100)
	booking := createBooking(t, db, listing.ID, guest.ID)

	// Any enum value is accepted in any order; only unknown values fail.
	for _, status := range []models.BookingStatus{
		models.BookingCompleted,
		models.BookingPending,
		models.BookingCancelled,
		models.BookingConfirmed,
	} {
		st := status
		updated, err := svc.Update(booking.ID, UpdateBookingInput{Status: &st})
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}

	bad := models.BookingStatus("archived")
	_, err := svc.Update(booking.ID, UpdateBookingInput{Status: &bad})
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "status", vErr.Field)
}

func TestBookingListOrdering(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	host := createUser(t, db, "host")
	guest := createUser(t, db, "guest")
	listing := createListing(t, db, host.ID, 100)

	base := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		booking := models.Booking{
			ListingID:      listing.ID,
			GuestID:        guest.ID,
			CheckInDate:    date(2024, time.July, 1+i),
			CheckOutDate:   date(2024, time.July, 3+i),
			NumberOfGuests: 1,
			TotalPrice:     200,
			Status:         models.BookingPending,
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(&booking).Error)
	}

	bookings, err := svc.List(BookingFilter{})
	require.NoError(t, err)
	require.Len(t, bookings, 3)
	for i := 0; i < len(bookings)-1; i++ {
		assert.True(t, !bookings[i].CreatedAt.Before(bookings[i+1].CreatedAt),
			"bookings must be ordered by created_at descending")
	}
}

func TestBookingDeleteCascadesToReview(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	host := createUser(t, db, "host")
	guest := createUser(t, db, "guest")
	listing := createListing(t, db, host.ID, 100)
	booking := createBooking(t, db, listing.ID, guest.ID)

	review := models.Review{
		ListingID:  listing.ID,
		ReviewerID: guest.ID,
		BookingID:  &booking.ID,
		Rating:     4,
	}
	require.NoError(t, db.Create(&review).Error)

	require.NoError(t, svc.Delete(booking.ID))

	var reviews int64
	db.Model(&models.Review{}).Count(&reviews)
	assert.EqualValues(t, 0, reviews, "linked review goes with the booking")

	var listings int64
	db.Model(&models.Listing{}).Count(&listings)
	assert.EqualValues(t, 1, listings, "listing is untouched")

	assert.ErrorIs(t, svc.Delete(booking.ID), models.ErrNotFound)
}
