package controllers

import (
	"net/http"
	"time"

	"rentals-backend/models"
	"rentals-backend/services"
	"rentals-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	service *services.ReviewService
}

func NewReviewController(service *services.ReviewService) *ReviewController {
	return &ReviewController{service: service}
}

type CreateReviewRequest struct {
	ListingID  uint   `json:"listing_id" validate:"required"`
	ReviewerID uint   `json:"reviewer_id" validate:"required"`
	BookingID  *uint  `json:"booking_id"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}

type UpdateReviewRequest struct {
	Rating    *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment   *string `json:"comment"`
	BookingID *uint   `json:"booking_id"`
}

type ReviewResponse struct {
	ID         uint   `json:"id"`
	ListingID  uint   `json:"listing_id"`
	ReviewerID uint   `json:"reviewer_id"`
	BookingID  *uint  `json:"booking_id,omitempty"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func toReviewResponse(r *models.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		ListingID:  r.ListingID,
		ReviewerID: r.ReviewerID,
		BookingID:  r.BookingID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  r.UpdatedAt.Format(time.RFC3339),
	}
}

func reviewResponses(reviews []models.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, toReviewResponse(&reviews[i]))
	}
	return out
}

// GetReviews handles GET /api/reviews.
func (rc *ReviewController) GetReviews(c *gin.Context) {
	reviews, err := rc.service.List()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reviewResponses(reviews))
}

// GetReviewsByListing handles GET /api/listings/:id/reviews.
func (rc *ReviewController) GetReviewsByListing(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	reviews, err := rc.service.ListByListing(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reviewResponses(reviews))
}

// GetReviewByID handles GET /api/reviews/:id.
func (rc *ReviewController) GetReviewByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	review, err := rc.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toReviewResponse(&review))
}

// CreateReview handles POST /api/reviews. A second review for the same
// (listing, reviewer) pair or the same booking is rejected with 409.
func (rc *ReviewController) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	review := models.Review{
		ListingID:  req.ListingID,
		ReviewerID: req.ReviewerID,
		BookingID:  req.BookingID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := rc.service.Create(&review); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, toReviewResponse(&review))
}

// UpdateReview handles PUT /api/reviews/:id with a partial payload.
func (rc *ReviewController) UpdateReview(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	review, err := rc.service.Update(id, services.UpdateReviewInput{
		Rating:    req.Rating,
		Comment:   req.Comment,
		BookingID: req.BookingID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toReviewResponse(&review))
}

// DeleteReview handles DELETE /api/reviews/:id. Only the review row is
// removed.
func (rc *ReviewController) DeleteReview(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := rc.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
