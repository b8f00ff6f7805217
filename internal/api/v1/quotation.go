package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quotedesk/quotedesk/internal/api/dto"
	ierr "github.com/quotedesk/quotedesk/internal/errors"
	"github.com/quotedesk/quotedesk/internal/logger"
	"github.com/quotedesk/quotedesk/internal/service"
	"github.com/quotedesk/quotedesk/internal/types"
)

type QuotationHandler struct {
	service service.QuotationService
	log     *logger.Logger
}

func NewQuotationHandler(service service.QuotationService, log *logger.Logger) *QuotationHandler {
	return &QuotationHandler{service: service, log: log}
}

// @Summary Create a new quotation
// @Description Create a new quotation in draft status
// @Tags Quotations
// @Accept json
// @Produce json
// @Param quotation body dto.CreateQuotationRequest true "Quotation details"
// @Success 201 {object} dto.QuotationResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /quotations [post]
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var req dto.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorw("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateQuotation(c.Request.Context(), req)
	if err != nil {
		h.log.Errorw("Failed to create quotation", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a quotation by ID
// @Description Get a quotation by ID
// @Tags Quotations
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} dto.QuotationResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /quotations/{id} [get]
func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Quotation ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetQuotation(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List quotations
// @Description List quotations with optional filtering
// @Tags Quotations
// @Accept json
// @Produce json
// @Param filter query types.QuotationFilter false "Filter"
// @Success 200 {object} dto.ListQuotationsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /quotations [get]
func (h *QuotationHandler) ListQuotations(c *gin.Context) {
	var filter types.QuotationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.log.Errorw("Failed to bind query parameters", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}

	resp, err := h.service.ListQuotations(c.Request.Context(), &filter)
	if err != nil {
		h.log.Errorw("Failed to list quotations", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a quotation
// @Description Update client and project details of a quotation
// @Tags Quotations
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param quotation body dto.UpdateQuotationRequest true "Fields to update"
// @Success 200 {object} dto.QuotationResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /quotations/{id} [put]
func (h *QuotationHandler) UpdateQuotation(c *gin.Context) {
	id := c.Param("id")
	var req dto.UpdateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateQuotation(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a quotation's discount
// @Description Change the discount type and value applied to the quotation
// @Tags Quotations
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param discount body dto.UpdateDiscountRequest true "Discount"
// @Success 200 {object} dto.QuotationResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /quotations/{id}/discount [patch]
func (h *QuotationHandler) UpdateDiscount(c *gin.Context) {
	id := c.Param("id")
	var req dto.UpdateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateDiscount(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a quotation's status
// @Description Move the quotation through its lifecycle
// @Tags Quotations
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param status body dto.UpdateStatusRequest true "Status"
// @Success 200 {object} dto.QuotationResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /quotations/{id}/status [patch]
func (h *QuotationHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a quotation's annexures
// @Description Toggle which annexures the agreement pack includes
// @Tags Quotations
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param annexures body dto.UpdateAnnexuresRequest true "Annexure flags"
// @Success 200 {object} dto.QuotationResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /quotations/{id}/annexures [patch]
func (h *QuotationHandler) UpdateAnnexures(c *gin.Context) {
	id := c.Param("id")
	var req dto.UpdateAnnexuresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateAnnexures(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a quotation
// @Description Delete a quotation and its line items
// @Tags Quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /quotations/{id} [delete]
func (h *QuotationHandler) DeleteQuotation(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.DeleteQuotation(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get a quotation's money summary
// @Description Get the aggregated subtotals plus combined and per-document discount/tax breakdowns
// @Tags Quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} dto.QuotationSummaryResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /quotations/{id}/summary [get]
func (h *QuotationHandler) GetSummary(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Quotation ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetSummary(c.Request.Context(), id)
	if err != nil {
		h.log.Errorw("Failed to build quotation summary", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
