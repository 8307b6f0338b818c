package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"rentals-backend/models"
	"rentals-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

const dateLayout = "2006-01-02"

// parseID reads the numeric :id route parameter.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// parseQueryID reads an optional numeric query parameter; absence yields 0.
func parseQueryID(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// respondError maps service errors onto HTTP status codes. Validation and
// uniqueness failures are surfaced to the caller as-is; anything else is a
// database error the caller cannot act on.
func respondError(c *gin.Context, err error) {
	var vErr *models.ValidationError
	var uErr *models.UniquenessError
	switch {
	case errors.Is(err, models.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.As(err, &vErr):
		utils.JSONError(c, http.StatusBadRequest, vErr.Error())
	case errors.As(err, &uErr):
		utils.JSONError(c, http.StatusConflict, uErr.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "database error")
	}
}
