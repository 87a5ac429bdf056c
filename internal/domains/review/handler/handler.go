package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"whiskybase-backend/internal/domains/review/model"
	"whiskybase-backend/internal/domains/review/service"
	"whiskybase-backend/internal/shared/response"
	"whiskybase-backend/pkg/logger"
)

type ReviewHandler struct {
	service service.ServiceInterface
}

func NewReviewHandler(service service.ServiceInterface) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// ListReviewsForWhisky handles GET /reviews/whisky/:whiskyId
func (h *ReviewHandler) ListReviewsForWhisky(c *gin.Context) {
	whiskyID, err := uuid.Parse(c.Param("whiskyId"))
	if err != nil {
		response.BadRequest(c, "Invalid whisky id")
		return
	}

	reviews, err := h.service.ListReviewsForWhisky(c.Request.Context(), whiskyID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, reviews)
}

// CreateReview handles POST /reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	rv, err := h.service.CreateReview(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, rv)
}

// UpdateReview handles PUT /reviews/:id
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review id")
		return
	}

	var req model.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	rv, err := h.service.UpdateReview(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, rv)
}

// DeleteReview handles DELETE /reviews/:id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review id")
		return
	}

	if err := h.service.DeleteReview(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Review removed"})
}

func (h *ReviewHandler) respondError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, model.ErrReviewNotFound):
		response.NotFound(c, "Review not found")
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", vErrs)
	default:
		logger.Error("review request failed", err)
		response.InternalServerError(c, "Server error")
	}
}
