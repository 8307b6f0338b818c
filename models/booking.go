package models

import (
	"time"

	"gorm.io/datatypes"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Booking reserves a listing for a guest over a date range. Status records
// the current state only; transition order is the caller's concern.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ListingID uint    `gorm:"not null;index" json:"listing_id"`
	Listing   Listing `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"-"`

	GuestID uint `gorm:"not null;index" json:"guest_id"`
	Guest   User `gorm:"foreignKey:GuestID;constraint:OnDelete:CASCADE" json:"-"`

	CheckInDate  datatypes.Date `gorm:"not null;index:idx_bookings_dates" json:"check_in_date"`
	CheckOutDate datatypes.Date `gorm:"not null;index:idx_bookings_dates;check:chk_check_out_after_check_in,check_out_date > check_in_date" json:"check_out_date"`

	NumberOfGuests int `gorm:"not null" json:"number_of_guests"`

	// A zero TotalPrice means "unset" and is filled from the listing's current
	// price_per_night at save time; a positive value is never recomputed.
	TotalPrice float64 `gorm:"type:decimal(10,2);not null" json:"total_price"`

	Status          BookingStatus `gorm:"size:20;not null;index" json:"status"`
	SpecialRequests string        `gorm:"type:text" json:"special_requests"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Review *Review `gorm:"foreignKey:BookingID" json:"-"`
}

// Nights returns the stay length in whole days.
func (b *Booking) Nights() int {
	in := time.Time(b.CheckInDate)
	out := time.Time(b.CheckOutDate)
	return int(out.Sub(in).Hours() / 24)
}
