package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"rentals-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BookingService wraps *gorm.DB with the booking business rules.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// BookingFilter narrows List results. Zero values mean "no filter".
type BookingFilter struct {
	ListingID uint
	GuestID   uint
	Status    models.BookingStatus
}

// UpdateBookingInput carries partial updates; nil fields are left unchanged.
// Setting TotalPrice to 0 clears it, so the auto-fill rule runs on save.
type UpdateBookingInput struct {
	CheckInDate     *datatypes.Date
	CheckOutDate    *datatypes.Date
	NumberOfGuests  *int
	TotalPrice      *float64
	Status          *models.BookingStatus
	SpecialRequests *string
}

func validateBookingDates(b *models.Booking) error {
	in := time.Time(b.CheckInDate)
	out := time.Time(b.CheckOutDate)
	if !out.After(in) {
		return models.NewValidationError("check_out_date", "must be after check_in_date")
	}
	return nil
}

// normalizeBooking enforces the date ordering, fills an unset total price
// from the listing's current nightly price, and rejects non-positive totals.
// An already-set total is never recomputed, even when the dates changed.
func normalizeBooking(b *models.Booking, listing *models.Listing) error {
	if err := validateBookingDates(b); err != nil {
		return err
	}
	if b.NumberOfGuests <= 0 {
		return models.NewValidationError("number_of_guests", "must be a positive integer")
	}
	if !b.Status.Valid() {
		return models.NewValidationError("status", fmt.Sprintf("unknown value %q", b.Status))
	}
	if b.TotalPrice == 0 {
		b.TotalPrice = math.Round(listing.PricePerNight*float64(b.Nights())*100) / 100
	}
	if b.TotalPrice <= 0 {
		return models.NewValidationError("total_price", "must be greater than 0.00")
	}
	return nil
}

func (s *BookingService) loadListing(tx *gorm.DB, listingID uint) (models.Listing, error) {
	var listing models.Listing
	err := tx.First(&listing, listingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return listing, models.ErrNotFound
	}
	return listing, err
}

// Create validates and persists a new booking. Status defaults to pending
// and an unset total price is computed from the referenced listing's current
// price_per_night times the number of nights.
func (s *BookingService) Create(booking *models.Booking) error {
	if booking.Status == "" {
		booking.Status = models.BookingPending
	}
	if booking.GuestID == 0 {
		return models.NewValidationError("guest_id", "is required")
	}
	if err := validateBookingDates(booking); err != nil {
		return err
	}
	listing, err := s.loadListing(s.DB, booking.ListingID)
	if err != nil {
		return err
	}
	if err := normalizeBooking(booking, &listing); err != nil {
		return err
	}
	return s.DB.Create(booking).Error
}

func (s *BookingService) GetByID(id uint) (models.Booking, error) {
	var booking models.Booking
	err := s.DB.First(&booking, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return booking, models.ErrNotFound
	}
	return booking, err
}

// List returns bookings matching the filter, newest-created first.
func (s *BookingService) List(filter BookingFilter) ([]models.Booking, error) {
	q := s.DB.Order("created_at DESC")
	if filter.ListingID != 0 {
		q = q.Where("listing_id = ?", filter.ListingID)
	}
	if filter.GuestID != 0 {
		q = q.Where("guest_id = ?", filter.GuestID)
	}
	if filter.Status != "" {
		if !filter.Status.Valid() {
			return nil, models.NewValidationError("status", fmt.Sprintf("unknown value %q", filter.Status))
		}
		q = q.Where("status = ?", filter.Status)
	}

	var bookings []models.Booking
	err := q.Find(&bookings).Error
	return bookings, err
}

// Update applies the non-nil fields and re-runs the same validation and
// price auto-fill as on create, against the listing's current price. Status
// changes are free-form field updates; no transition order is enforced here.
func (s *BookingService) Update(id uint, input UpdateBookingInput) (models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return booking, models.ErrNotFound
		}
		return booking, err
	}

	if input.CheckInDate != nil {
		booking.CheckInDate = *input.CheckInDate
	}
	if input.CheckOutDate != nil {
		booking.CheckOutDate = *input.CheckOutDate
	}
	if input.NumberOfGuests != nil {
		booking.NumberOfGuests = *input.NumberOfGuests
	}
	if input.TotalPrice != nil {
		booking.TotalPrice = *input.TotalPrice
	}
	if input.Status != nil {
		booking.Status = *input.Status
	}
	if input.SpecialRequests != nil {
		booking.SpecialRequests = *input.SpecialRequests
	}

	if err := validateBookingDates(&booking); err != nil {
		return booking, err
	}
	listing, err := s.loadListing(s.DB, booking.ListingID)
	if err != nil {
		return booking, err
	}
	if err := normalizeBooking(&booking, &listing); err != nil {
		return booking, err
	}
	if err := s.DB.Save(&booking).Error; err != nil {
		return booking, err
	}
	return booking, nil
}

// Delete removes the booking and its linked review, if any, as one unit of
// work.
func (s *BookingService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return err
		}
		if err := tx.Where("booking_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&booking).Error
	})
}
