package services

import (
	"errors"
	"fmt"

	"rentals-backend/models"

	"gorm.io/gorm"
)

// ListingService wraps *gorm.DB with the listing business rules.
type ListingService struct {
	DB *gorm.DB
}

func NewListingService(db *gorm.DB) *ListingService {
	return &ListingService{DB: db}
}

// ListingFilter narrows List results. Zero values mean "no filter".
type ListingFilter struct {
	Location     string
	MinPrice     float64
	MaxPrice     float64
	Availability *bool
	PropertyType models.PropertyType
}

// UpdateListingInput carries partial updates; nil fields are left unchanged.
type UpdateListingInput struct {
	Title             *string
	Description       *string
	Location          *string
	PricePerNight     *float64
	NumberOfBedrooms  *int
	NumberOfBathrooms *int
	MaxGuests         *int
	PropertyType      *models.PropertyType
	Amenities         *string
	Availability      *bool
}

func validateListing(l *models.Listing) error {
	if l.Title == "" {
		return models.NewValidationError("title", "is required")
	}
	if len(l.Title) > 200 {
		return models.NewValidationError("title", "must be at most 200 characters")
	}
	if l.Location == "" {
		return models.NewValidationError("location", "is required")
	}
	if len(l.Location) > 200 {
		return models.NewValidationError("location", "must be at most 200 characters")
	}
	if l.PricePerNight <= 0 {
		return models.NewValidationError("price_per_night", "must be greater than 0.00")
	}
	if !l.PropertyType.Valid() {
		return models.NewValidationError("property_type", fmt.Sprintf("unknown value %q", l.PropertyType))
	}
	if l.NumberOfBedrooms < 0 || l.NumberOfBathrooms < 0 || l.MaxGuests < 0 {
		return models.NewValidationError("number_of_bedrooms", "counts must not be negative")
	}
	if l.HostID == 0 {
		return models.NewValidationError("host_id", "is required")
	}
	return nil
}

// Create validates and persists a new listing. Callers that leave
// PropertyType empty get the apartment default.
func (s *ListingService) Create(listing *models.Listing) error {
	if listing.PropertyType == "" {
		listing.PropertyType = models.PropertyApartment
	}
	if err := validateListing(listing); err != nil {
		return err
	}
	return s.DB.Create(listing).Error
}

// GetByID loads a listing with its reviews so AverageRating is usable.
func (s *ListingService) GetByID(id uint) (models.Listing, error) {
	var listing models.Listing
	err := s.DB.Preload("Reviews").First(&listing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return listing, models.ErrNotFound
	}
	return listing, err
}

// List returns listings matching the filter, newest-created first.
func (s *ListingService) List(filter ListingFilter) ([]models.Listing, error) {
	q := s.DB.Preload("Reviews").Order("created_at DESC")
	if filter.Location != "" {
		q = q.Where("location LIKE ?", "%"+filter.Location+"%")
	}
	if filter.MinPrice > 0 {
		q = q.Where("price_per_night >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		q = q.Where("price_per_night <= ?", filter.MaxPrice)
	}
	if filter.Availability != nil {
		q = q.Where("availability = ?", *filter.Availability)
	}
	if filter.PropertyType != "" {
		if !filter.PropertyType.Valid() {
			return nil, models.NewValidationError("property_type", fmt.Sprintf("unknown value %q", filter.PropertyType))
		}
		q = q.Where("property_type = ?", filter.PropertyType)
	}

	var listings []models.Listing
	err := q.Find(&listings).Error
	return listings, err
}

// Update applies the non-nil fields and re-validates every constraint exactly
// as on create.
func (s *ListingService) Update(id uint, input UpdateListingInput) (models.Listing, error) {
	var listing models.Listing
	if err := s.DB.First(&listing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return listing, models.ErrNotFound
		}
		return listing, err
	}

	if input.Title != nil {
		listing.Title = *input.Title
	}
	if input.Description != nil {
		listing.Description = *input.Description
	}
	if input.Location != nil {
		listing.Location = *input.Location
	}
	if input.PricePerNight != nil {
		listing.PricePerNight = *input.PricePerNight
	}
	if input.NumberOfBedrooms != nil {
		listing.NumberOfBedrooms = *input.NumberOfBedrooms
	}
	if input.NumberOfBathrooms != nil {
		listing.NumberOfBathrooms = *input.NumberOfBathrooms
	}
	if input.MaxGuests != nil {
		listing.MaxGuests = *input.MaxGuests
	}
	if input.PropertyType != nil {
		listing.PropertyType = *input.PropertyType
	}
	if input.Amenities != nil {
		listing.Amenities = *input.Amenities
	}
	if input.Availability != nil {
		listing.Availability = *input.Availability
	}

	if err := validateListing(&listing); err != nil {
		return listing, err
	}
	if err := s.DB.Save(&listing).Error; err != nil {
		return listing, err
	}
	return listing, nil
}

// Delete removes the listing and, as one unit of work, every booking and
// review that references it. Reviews always carry a listing_id, so deleting
// by listing covers booking-linked reviews too.
func (s *ListingService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var listing models.Listing
		if err := tx.First(&listing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return err
		}
		if err := tx.Where("listing_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("listing_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&listing).Error
	})
}
