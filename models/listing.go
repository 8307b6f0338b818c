package models

import "time"

type PropertyType string

const (
	PropertyHouse     PropertyType = "house"
	PropertyApartment PropertyType = "apartment"
	PropertyCondo     PropertyType = "condo"
	PropertyVilla     PropertyType = "villa"
	PropertyCabin     PropertyType = "cabin"
	PropertyOther     PropertyType = "other"
)

func (p PropertyType) Valid() bool {
	switch p {
	case PropertyHouse, PropertyApartment, PropertyCondo, PropertyVilla, PropertyCabin, PropertyOther:
		return true
	}
	return false
}

// Listing is a rentable property owned by a host user. Deleting the host
// cascades to its listings; deleting a listing cascades to its bookings and
// reviews (see ListingService.Delete).
type Listing struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Title         string  `gorm:"size:200;not null" json:"title"`
	Description   string  `gorm:"type:text" json:"description"`
	Location      string  `gorm:"size:200;not null;index" json:"location"`
	PricePerNight float64 `gorm:"type:decimal(10,2);not null;index" json:"price_per_night"`

	NumberOfBedrooms  int `gorm:"not null" json:"number_of_bedrooms"`
	NumberOfBathrooms int `gorm:"not null" json:"number_of_bathrooms"`
	MaxGuests         int `gorm:"not null" json:"max_guests"`

	PropertyType PropertyType `gorm:"size:20;not null" json:"property_type"`

	// Comma-separated amenity tags, e.g. "wifi,parking,pool".
	Amenities    string `gorm:"type:text" json:"amenities"`
	Availability bool   `gorm:"not null;index" json:"availability"`

	HostID uint `gorm:"not null;index" json:"host_id"`
	Host   User `gorm:"foreignKey:HostID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Bookings []Booking `gorm:"foreignKey:ListingID" json:"-"`
	Reviews  []Review  `gorm:"foreignKey:ListingID" json:"-"`
}

// AverageRating is the arithmetic mean of the loaded reviews' ratings, or
// exactly 0 when the listing has none. Callers must preload Reviews first.
// 0 falls outside the 1-5 rating range and means "no reviews", not a score.
func (l *Listing) AverageRating() float64 {
	if len(l.Reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range l.Reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(l.Reviews))
}
