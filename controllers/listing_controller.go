package controllers

import (
	"net/http"
	"strconv"
	"time"

	"rentals-backend/models"
	"rentals-backend/services"
	"rentals-backend/utils"

	"github.com/gin-gonic/gin"
)

type ListingController struct {
	service *services.ListingService
}

func NewListingController(service *services.ListingService) *ListingController {
	return &ListingController{service: service}
}

type CreateListingRequest struct {
	Title             string  `json:"title" validate:"required,max=200"`
	Description       string  `json:"description"`
	Location          string  `json:"location" validate:"required,max=200"`
	PricePerNight     float64 `json:"price_per_night" validate:"required,gt=0"`
	NumberOfBedrooms  *int    `json:"number_of_bedrooms" validate:"omitempty,min=0"`
	NumberOfBathrooms *int    `json:"number_of_bathrooms" validate:"omitempty,min=0"`
	MaxGuests         *int    `json:"max_guests" validate:"omitempty,min=0"`
	PropertyType      string  `json:"property_type"`
	Amenities         string  `json:"amenities"`
	Availability      *bool   `json:"availability"`
	HostID            uint    `json:"host_id" validate:"required"`
}

type UpdateListingRequest struct {
	Title             *string  `json:"title" validate:"omitempty,max=200"`
	Description       *string  `json:"description"`
	Location          *string  `json:"location" validate:"omitempty,max=200"`
	PricePerNight     *float64 `json:"price_per_night" validate:"omitempty,gt=0"`
	NumberOfBedrooms  *int     `json:"number_of_bedrooms" validate:"omitempty,min=0"`
	NumberOfBathrooms *int     `json:"number_of_bathrooms" validate:"omitempty,min=0"`
	MaxGuests         *int     `json:"max_guests" validate:"omitempty,min=0"`
	PropertyType      *string  `json:"property_type"`
	Amenities         *string  `json:"amenities"`
	Availability      *bool    `json:"availability"`
}

type ListingResponse struct {
	ID                uint    `json:"id"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	Location          string  `json:"location"`
	PricePerNight     float64 `json:"price_per_night"`
	NumberOfBedrooms  int     `json:"number_of_bedrooms"`
	NumberOfBathrooms int     `json:"number_of_bathrooms"`
	MaxGuests         int     `json:"max_guests"`
	PropertyType      string  `json:"property_type"`
	Amenities         string  `json:"amenities"`
	Availability      bool    `json:"availability"`
	HostID            uint    `json:"host_id"`
	AverageRating     float64 `json:"average_rating"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

func toListingResponse(l *models.Listing) ListingResponse {
	return ListingResponse{
		ID:                l.ID,
		Title:             l.Title,
		Description:       l.Description,
		Location:          l.Location,
		PricePerNight:     l.PricePerNight,
		NumberOfBedrooms:  l.NumberOfBedrooms,
		NumberOfBathrooms: l.NumberOfBathrooms,
		MaxGuests:         l.MaxGuests,
		PropertyType:      string(l.PropertyType),
		Amenities:         l.Amenities,
		Availability:      l.Availability,
		HostID:            l.HostID,
		AverageRating:     l.AverageRating(),
		CreatedAt:         l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         l.UpdatedAt.Format(time.RFC3339),
	}
}

// GetListings handles GET /api/listings with optional location, min_price,
// max_price, available and property_type query filters.
func (lc *ListingController) GetListings(c *gin.Context) {
	filter := services.ListingFilter{
		Location:     c.Query("location"),
		PropertyType: models.PropertyType(c.Query("property_type")),
	}
	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid min_price")
			return
		}
		filter.MinPrice = v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid max_price")
			return
		}
		filter.MaxPrice = v
	}
	if raw := c.Query("available"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid available")
			return
		}
		filter.Availability = &v
	}

	listings, err := lc.service.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]ListingResponse, 0, len(listings))
	for i := range listings {
		out = append(out, toListingResponse(&listings[i]))
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}

// GetListingByID handles GET /api/listings/:id.
func (lc *ListingController) GetListingByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	listing, err := lc.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toListingResponse(&listing))
}

// CreateListing handles POST /api/listings.
func (lc *ListingController) CreateListing(c *gin.Context) {
	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	listing := models.Listing{
		Title:             req.Title,
		Description:       req.Description,
		Location:          req.Location,
		PricePerNight:     req.PricePerNight,
		NumberOfBedrooms:  1,
		NumberOfBathrooms: 1,
		MaxGuests:         1,
		PropertyType:      models.PropertyType(req.PropertyType),
		Amenities:         req.Amenities,
		Availability:      true,
		HostID:            req.HostID,
	}
	if req.NumberOfBedrooms != nil {
		listing.NumberOfBedrooms = *req.NumberOfBedrooms
	}
	if req.NumberOfBathrooms != nil {
		listing.NumberOfBathrooms = *req.NumberOfBathrooms
	}
	if req.MaxGuests != nil {
		listing.MaxGuests = *req.MaxGuests
	}
	if req.Availability != nil {
		listing.Availability = *req.Availability
	}

	if err := lc.service.Create(&listing); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, toListingResponse(&listing))
}

// UpdateListing handles PUT /api/listings/:id with a partial payload.
func (lc *ListingController) UpdateListing(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	input := services.UpdateListingInput{
		Title:             req.Title,
		Description:       req.Description,
		Location:          req.Location,
		PricePerNight:     req.PricePerNight,
		NumberOfBedrooms:  req.NumberOfBedrooms,
		NumberOfBathrooms: req.NumberOfBathrooms,
		MaxGuests:         req.MaxGuests,
		Amenities:         req.Amenities,
		Availability:      req.Availability,
	}
	if req.PropertyType != nil {
		pt := models.PropertyType(*req.PropertyType)
		input.PropertyType = &pt
	}

	listing, err := lc.service.Update(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toListingResponse(&listing))
}

// DeleteListing handles DELETE /api/listings/:id. Dependent bookings and
// reviews are removed with the listing.
func (lc *ListingController) DeleteListing(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := lc.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
