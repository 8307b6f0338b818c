package services

import (
	"errors"
	"strings"

	"rentals-backend/models"

	"gorm.io/gorm"
)

// ReviewService wraps *gorm.DB with the review business rules.
type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

// UpdateReviewInput carries partial updates; nil fields are left unchanged.
type UpdateReviewInput struct {
	Rating    *int
	Comment   *string
	BookingID *uint
}

func validateReview(r *models.Review) error {
	if r.Rating < 1 || r.Rating > 5 {
		return models.NewValidationError("rating", "must be between 1 and 5")
	}
	if r.ListingID == 0 {
		return models.NewValidationError("listing_id", "is required")
	}
	if r.ReviewerID == 0 {
		return models.NewValidationError("reviewer_id", "is required")
	}
	return nil
}

// isDuplicateKeyErr catches unique index violations that race past the
// pre-checks; the store rejects the second row atomically.
func isDuplicateKeyErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}

// checkUnique rejects a second review for the same (listing, reviewer) pair
// or the same booking. excludeID skips the review being updated.
func (s *ReviewService) checkUnique(review *models.Review, excludeID uint) error {
	var existing models.Review

	q := s.DB.Where("listing_id = ? AND reviewer_id = ?", review.ListingID, review.ReviewerID)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.First(&existing).Error
	if err == nil {
		return &models.UniquenessError{Constraint: "review for (listing, reviewer)"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if review.BookingID != nil {
		q := s.DB.Where("booking_id = ?", *review.BookingID)
		if excludeID != 0 {
			q = q.Where("id <> ?", excludeID)
		}
		err := q.First(&existing).Error
		if err == nil {
			return &models.UniquenessError{Constraint: "review for booking"}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}
	return nil
}

// Create validates and persists a new review.
func (s *ReviewService) Create(review *models.Review) error {
	if err := validateReview(review); err != nil {
		return err
	}
	if err := s.checkUnique(review, 0); err != nil {
		return err
	}
	if err := s.DB.Create(review).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return &models.UniquenessError{Constraint: "review"}
		}
		return err
	}
	return nil
}

func (s *ReviewService) GetByID(id uint) (models.Review, error) {
	var review models.Review
	err := s.DB.First(&review, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return review, models.ErrNotFound
	}
	return review, err
}

// ListByListing returns a listing's reviews, newest-created first.
func (s *ReviewService) ListByListing(listingID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.DB.Where("listing_id = ?", listingID).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

// List returns all reviews, newest-created first.
func (s *ReviewService) List() ([]models.Review, error) {
	var reviews []models.Review
	err := s.DB.Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

// Update applies the non-nil fields and re-validates the rating bounds and
// uniqueness constraints.
func (s *ReviewService) Update(id uint, input UpdateReviewInput) (models.Review, error) {
	var review models.Review
	if err := s.DB.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return review, models.ErrNotFound
		}
		return review, err
	}

	if input.Rating != nil {
		review.Rating = *input.Rating
	}
	if input.Comment != nil {
		review.Comment = *input.Comment
	}
	if input.BookingID != nil {
		review.BookingID = input.BookingID
	}

	if err := validateReview(&review); err != nil {
		return review, err
	}
	if err := s.checkUnique(&review, review.ID); err != nil {
		return review, err
	}
	if err := s.DB.Save(&review).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return review, &models.UniquenessError{Constraint: "review"}
		}
		return review, err
	}
	return review, nil
}

// Delete removes the review only; the listing, reviewer and booking are
// untouched.
func (s *ReviewService) Delete(id uint) error {
	res := s.DB.Delete(&models.Review{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
