package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"whiskybase-backend/internal/domains/whisky/model"
	"whiskybase-backend/internal/domains/whisky/service"
	"whiskybase-backend/internal/shared/response"
	"whiskybase-backend/pkg/logger"
)

type WhiskyHandler struct {
	service service.ServiceInterface
}

func NewWhiskyHandler(service service.ServiceInterface) *WhiskyHandler {
	return &WhiskyHandler{service: service}
}

// ListWhiskies handles GET /whiskies?page=&limit=
// Absent, unparsable or zero paging values fall back to the defaults; other
// values pass through unchecked.
func (h *WhiskyHandler) ListWhiskies(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page == 0 {
		page = model.DefaultPage
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit == 0 {
		limit = model.DefaultLimit
	}

	result, err := h.service.ListWhiskies(c.Request.Context(), page, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetWhisky handles GET /whiskies/:id
func (h *WhiskyHandler) GetWhisky(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid whisky id")
		return
	}

	w, err := h.service.GetWhisky(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, w)
}

// SearchWhiskies handles GET /whiskies/search/:query
func (h *WhiskyHandler) SearchWhiskies(c *gin.Context) {
	whiskies, err := h.service.SearchWhiskies(c.Request.Context(), c.Param("query"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, whiskies)
}

// CreateWhisky handles POST /whiskies
func (h *WhiskyHandler) CreateWhisky(c *gin.Context) {
	var req model.CreateWhiskyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	w, err := h.service.CreateWhisky(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, w)
}

// UpdateWhisky handles PUT /whiskies/:id
func (h *WhiskyHandler) UpdateWhisky(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid whisky id")
		return
	}

	var req model.UpdateWhiskyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	w, err := h.service.UpdateWhisky(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, w)
}

// DeleteWhisky handles DELETE /whiskies/:id
func (h *WhiskyHandler) DeleteWhisky(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid whisky id")
		return
	}

	if err := h.service.DeleteWhisky(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Whisky removed"})
}

func (h *WhiskyHandler) respondError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, model.ErrWhiskyNotFound):
		response.NotFound(c, "Whisky not found")
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", vErrs)
	default:
		logger.Error("whisky request failed", err)
		response.InternalServerError(c, "Server error")
	}
}
