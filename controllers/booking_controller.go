package controllers

import (
	"net/http"
	"time"

	"rentals-backend/models"
	"rentals-backend/services"
	"rentals-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type BookingController struct {
	service *services.BookingService
}

func NewBookingController(service *services.BookingService) *BookingController {
	return &BookingController{service: service}
}

type CreateBookingRequest struct {
	ListingID       uint     `json:"listing_id" validate:"required"`
	GuestID         uint     `json:"guest_id" validate:"required"`
	CheckInDate     string   `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate    string   `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	NumberOfGuests  int      `json:"number_of_guests" validate:"required,gt=0"`
	TotalPrice      *float64 `json:"total_price"`
	Status          string   `json:"status"`
	SpecialRequests string   `json:"special_requests"`
}

type UpdateBookingRequest struct {
	CheckInDate     *string  `json:"check_in_date" validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate    *string  `json:"check_out_date" validate:"omitempty,datetime=2006-01-02"`
	NumberOfGuests  *int     `json:"number_of_guests" validate:"omitempty,gt=0"`
	TotalPrice      *float64 `json:"total_price"`
	Status          *string  `json:"status"`
	SpecialRequests *string  `json:"special_requests"`
}

type BookingResponse struct {
	ID              uint    `json:"id"`
	ListingID       uint    `json:"listing_id"`
	GuestID         uint    `json:"guest_id"`
	CheckInDate     string  `json:"check_in_date"`
	CheckOutDate    string  `json:"check_out_date"`
	NumberOfGuests  int     `json:"number_of_guests"`
	TotalPrice      float64 `json:"total_price"`
	Status          string  `json:"status"`
	SpecialRequests string  `json:"special_requests"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

func toBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		ListingID:       b.ListingID,
		GuestID:         b.GuestID,
		CheckInDate:     time.Time(b.CheckInDate).Format(dateLayout),
		CheckOutDate:    time.Time(b.CheckOutDate).Format(dateLayout),
		NumberOfGuests:  b.NumberOfGuests,
		TotalPrice:      b.TotalPrice,
		Status:          string(b.Status),
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
	}
}

func parseDate(raw string) datatypes.Date {
	t, _ := time.Parse(dateLayout, raw)
	return datatypes.Date(t)
}

// GetBookings handles GET /api/bookings with optional listing_id, guest_id
// and status query filters.
func (bc *BookingController) GetBookings(c *gin.Context) {
	filter := services.BookingFilter{
		Status: models.BookingStatus(c.Query("status")),
	}
	listingID, ok := parseQueryID(c, "listing_id")
	if !ok {
		return
	}
	filter.ListingID = listingID

	guestID, ok := parseQueryID(c, "guest_id")
	if !ok {
		return
	}
	filter.GuestID = guestID

	bookings, err := bc.service.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}

// GetBookingsByListing handles GET /api/listings/:id/bookings.
func (bc *BookingController) GetBookingsByListing(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	bookings, err := bc.service.List(services.BookingFilter{ListingID: id})
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}

// GetBookingByID handles GET /api/bookings/:id.
func (bc *BookingController) GetBookingByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	booking, err := bc.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toBookingResponse(&booking))
}

// CreateBooking handles POST /api/bookings. When total_price is omitted it
// is computed from the listing's current nightly price.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	booking := models.Booking{
		ListingID:       req.ListingID,
		GuestID:         req.GuestID,
		CheckInDate:     parseDate(req.CheckInDate),
		CheckOutDate:    parseDate(req.CheckOutDate),
		NumberOfGuests:  req.NumberOfGuests,
		Status:          models.BookingStatus(req.Status),
		SpecialRequests: req.SpecialRequests,
	}
	if req.TotalPrice != nil {
		booking.TotalPrice = *req.TotalPrice
	}

	if err := bc.service.Create(&booking); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, toBookingResponse(&booking))
}

// UpdateBooking handles PUT /api/bookings/:id with a partial payload. Status
// changes, including backwards ones, are accepted as-is.
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	input := services.UpdateBookingInput{
		NumberOfGuests:  req.NumberOfGuests,
		TotalPrice:      req.TotalPrice,
		SpecialRequests: req.SpecialRequests,
	}
	if req.CheckInDate != nil {
		d := parseDate(*req.CheckInDate)
		input.CheckInDate = &d
	}
	if req.CheckOutDate != nil {
		d := parseDate(*req.CheckOutDate)
		input.CheckOutDate = &d
	}
	if req.Status != nil {
		st := models.BookingStatus(*req.Status)
		input.Status = &st
	}

	booking, err := bc.service.Update(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toBookingResponse(&booking))
}

// DeleteBooking handles DELETE /api/bookings/:id. The linked review, if any,
// is removed with the booking.
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := bc.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
