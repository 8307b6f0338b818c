package services

import (
	"fmt"
	"testing"

	"rentals-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRatingBounds(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)
	host := createUser(t, db, "host")
	listing := createListing(t, db, host.ID, 100)

	for _, rating := range []int{0, 6, -1} {
		reviewer := createUser(t, db, fmt.Sprintf("bad-rating-%d", rating))
		err := svc.Create(&models.Review{
			ListingID:  listing.ID,
			ReviewerID: reviewer.ID,
			Rating:     rating,
		})
		var vErr *models.ValidationError
		require.ErrorAs(t, err, &vErr, "rating %d must be rejected", rating)
		assert.Equal(t, "rating", vErr.Field)
	}

	for _, rating := range []int{1, 5} {
		reviewer := createUser(t, db, fmt.Sprintf("ok-rating-%d", rating))
		err := svc.Create(&models.Review{
			ListingID:  listing.ID,
			ReviewerID: reviewer.ID,
			Rating:     rating,
		})
		require.NoError(t, err, "rating %d must be accepted", rating)
	}
}

func TestReviewUniquePerListingReviewer(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)
	host := createUser(t, db, "host")
	reviewer := createUser(t, db, "reviewer")
	listing := createListing(t, db, host.ID, 100)
	other := createListing(t, db, host.ID, 100)

	require.NoError(t, svc.Create(&models.Review{
		ListingID:  listing.ID,
		ReviewerID: reviewer.ID,
		Rating:     4,
	}))

	err := svc.Create(&models.Review{
		ListingID:  listing.ID,
		ReviewerID: reviewer.ID,
		Rating:     5,
	})
	var uErr *models.UniquenessError
	require.ErrorAs(t, err, &uErr)

	// Same reviewer may still review a different listing.
	require.NoError(t, svc.Create(&models.Review{
		ListingID:  other.ID,
		ReviewerID: reviewer.ID,
		Rating:     5,
	}))
}

func TestReviewUniquePerBooking(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)
	host := createUser(t, db, "host")
	guest := createUser(t, db, "guest")
	second := createUser(t, db, "second")
	listing := createListing(t, db, host.ID, 100)
	booking := createBooking(t, db, listing.ID, guest.ID)

	require.NoError(t, svc.Create(&models.Review{
		ListingID:  listing.ID,
		ReviewerID: guest.ID,
		BookingID:  &booking.ID,
		Rating:     5,
	}))

	err := svc.Create(&models.Review{
		ListingID:  listing.ID,
		ReviewerID: second.ID,
		BookingID:  &booking.ID,
		Rating:     3,
	})
	var uErr *models.UniquenessError
	require.ErrorAs(t, err, &uErr)

	// Reviews without a booking link do not collide with each other.
	require.NoError(t, svc.Create(&models.Review{
		ListingID:  listing.ID,
		ReviewerID: second.ID,
		Rating:     3,
	}))
}

func TestReviewUpdateRevalidates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)
	host := createUser(t, db, "host")
	reviewer := createUser(t, db, "reviewer")
	listing := createListing(t, db, host.ID, 100)
	review := createReview(t, db, listing.ID, reviewer.ID, 3)

	bad := 6
	_, err := svc.Update(review.ID, UpdateReviewInput{Rating: &bad})
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)

	good := 5
	comment := "much better second time"
	updated, err := svc.Update(review.ID, UpdateReviewInput{Rating: &good, Comment: &comment})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, comment, updated.Comment)

	// Updating a review does not trip its own uniqueness pre-check.
	updated, err = svc.Update(review.ID, UpdateReviewInput{Comment: &comment})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
}

func TestReviewDeleteLeavesNeighbors(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)
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

	require.NoError(t, svc.Delete(review.ID))

	var listings, bookings int64
	db.Model(&models.Listing{}).Count(&listings)
	db.Model(&models.Booking{}).Count(&bookings)
	assert.EqualValues(t, 1, listings)
	assert.EqualValues(t, 1, bookings)

	assert.ErrorIs(t, svc.Delete(review.ID), models.ErrNotFound)
}

func TestReviewListByListingOrdering(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)
	host := createUser(t, db, "host")
	listing := createListing(t, db, host.ID, 100)

	for i := 0; i < 3; i++ {
		reviewer := createUser(t, db, fmt.Sprintf("reviewer-%d", i))
		createReview(t, db, listing.ID, reviewer.ID, i+2)
	}

	reviews, err := svc.ListByListing(listing.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	for i := 0; i < len(reviews)-1; i++ {
		assert.True(t, !reviews[i].CreatedAt.Before(reviews[i+1].CreatedAt))
	}
}
