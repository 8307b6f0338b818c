package models

import "time"

// Review rates a listing on a 1-5 scale. A reviewer may review a listing only
// once, and a booking carries at most one review.
type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ListingID uint    `gorm:"not null;uniqueIndex:idx_reviews_listing_reviewer" json:"listing_id"`
	Listing   Listing `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"-"`

	ReviewerID uint `gorm:"not null;uniqueIndex:idx_reviews_listing_reviewer" json:"reviewer_id"`
	Reviewer   User `gorm:"foreignKey:ReviewerID;constraint:OnDelete:CASCADE" json:"-"`

	// Nullable so a review can exist without a booking; the unique index keeps
	// the link one-to-one (NULLs do not collide).
	BookingID *uint    `gorm:"uniqueIndex" json:"booking_id,omitempty"`
	Booking   *Booking `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"-"`

	Rating  int    `gorm:"not null;index;check:chk_rating_range,rating >= 1 AND rating <= 5" json:"rating"`
	Comment string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
