package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"whiskybase-backend/internal/domains/price/model"
	"whiskybase-backend/internal/domains/price/service"
	"whiskybase-backend/internal/shared/response"
	"whiskybase-backend/pkg/logger"
)

type PriceHandler struct {
	service service.ServiceInterface
}

func NewPriceHandler(service service.ServiceInterface) *PriceHandler {
	return &PriceHandler{service: service}
}

// ListPricesForWhisky handles GET /prices/whisky/:whiskyId
func (h *PriceHandler) ListPricesForWhisky(c *gin.Context) {
	whiskyID, err := uuid.Parse(c.Param("whiskyId"))
	if err != nil {
		response.BadRequest(c, "Invalid whisky id")
		return
	}

	prices, err := h.service.ListPricesForWhisky(c.Request.Context(), whiskyID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, prices)
}

// CreatePrice handles POST /prices
func (h *PriceHandler) CreatePrice(c *gin.Context) {
	var req model.CreatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	p, err := h.service.CreatePrice(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, p)
}

// UpdatePrice handles PUT /prices/:id
func (h *PriceHandler) UpdatePrice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid price id")
		return
	}

	var req model.UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	p, err := h.service.UpdatePrice(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, p)
}

// DeletePrice handles DELETE /prices/:id
func (h *PriceHandler) DeletePrice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid price id")
		return
	}

	if err := h.service.DeletePrice(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Price removed"})
}

func (h *PriceHandler) respondError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, model.ErrPriceNotFound):
		response.NotFound(c, "Price not found")
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", vErrs)
	default:
		logger.Error("price request failed", err)
		response.InternalServerError(c, "Server error")
	}
}
